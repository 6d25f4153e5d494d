// Package timeline merges per-property animation specs into one absolute
// schedule. A built Master is immutable; it is rebuilt only when the
// configuration changes.
package timeline

import (
	"fmt"

	"github.com/EmanueleCodes/animlab/internal/ease"
	"github.com/EmanueleCodes/animlab/internal/value"
)

// Property describes one animated property. From/To must be parseable
// values; Unit, when set, is applied to bare-number endpoints so the
// emitted values carry it. UseGlobal opts this property into the shared
// global timing; the opt-in is per property, not slot-wide.
type Property struct {
	Name      string
	From, To  value.Value
	Duration  float64
	Delay     float64
	Easing    ease.Spec
	Unit      string
	UseGlobal bool
}

// Global is the optional shared timing that opted-in properties resolve
// against.
type Global struct {
	Duration float64
	Delay    float64
	Easing   ease.Spec
}

// Span is one property bound to its absolute [Start, End) window. The
// Property field holds the resolved timing, global already applied.
type Span struct {
	Property Property
	Start    float64
	End      float64
}

// Master is the merged schedule of all properties in one animation slot.
type Master struct {
	Spans []Span
	Total float64
}

// Build validates and merges properties into a Master. Each property
// resolves its effective duration/delay/easing (its own values, or the
// global ones when opted in), then occupies the absolute window
// [delay, delay+duration). Total is the max end; an empty property list
// yields Total 0 and an immediately complete timeline.
func Build(props []Property, global *Global) (*Master, error) {
	m := &Master{Spans: make([]Span, 0, len(props))}
	seen := make(map[string]bool, len(props))

	for _, p := range props {
		if p.Name == "" {
			return nil, &ConfigError{Property: p.Name, Wrapped: ErrUnnamedProperty}
		}
		if seen[p.Name] {
			return nil, &ConfigError{Property: p.Name, Wrapped: ErrDuplicateProperty}
		}
		seen[p.Name] = true

		resolved := p
		if p.UseGlobal && global != nil {
			resolved.Duration = global.Duration
			resolved.Delay = global.Delay
			resolved.Easing = global.Easing
		}
		if resolved.Duration <= 0 {
			return nil, &ConfigError{
				Property: p.Name,
				Wrapped:  fmt.Errorf("%w, got %f", ErrNonPositiveDuration, resolved.Duration),
			}
		}
		if resolved.Delay < 0 {
			return nil, &ConfigError{
				Property: p.Name,
				Wrapped:  fmt.Errorf("%w, got %f", ErrNegativeDelay, resolved.Delay),
			}
		}
		if err := applyUnit(&resolved); err != nil {
			return nil, &ConfigError{Property: p.Name, Wrapped: err}
		}

		span := Span{
			Property: resolved,
			Start:    resolved.Delay,
			End:      resolved.Delay + resolved.Duration,
		}
		m.Spans = append(m.Spans, span)
		if span.End > m.Total {
			m.Total = span.End
		}
	}

	return m, nil
}

// applyUnit attaches the property's default unit to bare-number endpoints.
func applyUnit(p *Property) error {
	if p.Unit == "" {
		return nil
	}
	if p.From.Kind == value.KindNumber {
		v, err := value.WithUnit(p.From.Num, p.Unit)
		if err != nil {
			return err
		}
		p.From = v
	}
	if p.To.Kind == value.KindNumber {
		v, err := value.WithUnit(p.To.Num, p.Unit)
		if err != nil {
			return err
		}
		p.To = v
	}
	return nil
}

// Names returns the property names in span order.
func (m *Master) Names() []string {
	names := make([]string, len(m.Spans))
	for i, s := range m.Spans {
		names[i] = s.Property.Name
	}
	return names
}
