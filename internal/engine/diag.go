package engine

// Warning codes reported to the diagnostics channel.
const (
	WarnUnknownEasing   = "unknown-easing"
	WarnUnitMismatch    = "unit-mismatch"
	WarnScrubOutOfRange = "scrub-out-of-range"
)

// Warning is a recoverable condition. Warnings never abort an in-flight
// slot.
type Warning struct {
	Code    string
	Message string
}

// Reporter receives recoverable warnings. Implementations are called from
// the driving goroutine only.
type Reporter interface {
	Report(w Warning)
}

// Collector is the default Reporter; it accumulates warnings in order.
type Collector struct {
	warnings []Warning
}

func NewCollector() *Collector {
	return &Collector{warnings: make([]Warning, 0)}
}

func (c *Collector) Report(w Warning) {
	c.warnings = append(c.warnings, w)
}

// Warnings returns the accumulated warnings.
func (c *Collector) Warnings() []Warning {
	return c.warnings
}
