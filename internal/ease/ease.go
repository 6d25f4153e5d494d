package ease

import "math"

// Family selects the curve family of a Spec.
type Family int

const (
	FamilyLinear Family = iota
	FamilyPower
	FamilySpring
)

// Kind selects the power curve shape.
type Kind int

const (
	Quad Kind = iota
	Cubic
	Quart
	Quint
	Sine
	Expo
	Circ
)

// Direction selects which end of a power curve accelerates.
type Direction int

const (
	In Direction = iota
	Out
	InOut
)

// Power parameterizes a monotonic power-family curve.
type Power struct {
	Kind      Kind
	Direction Direction
}

// Spring parameterizes a decaying-oscillation curve. Amplitude controls
// overshoot magnitude (values below 1 are treated as 1), Period controls
// oscillation frequency in progress units.
type Spring struct {
	Amplitude float64
	Period    float64
}

// Spec is a tagged easing description. The zero value is linear.
type Spec struct {
	Family Family
	Power  Power
	Spring Spring
}

// Linear returns the identity easing spec.
func Linear() Spec {
	return Spec{Family: FamilyLinear}
}

// NewPower returns a power-family spec.
func NewPower(kind Kind, dir Direction) Spec {
	return Spec{Family: FamilyPower, Power: Power{Kind: kind, Direction: dir}}
}

// NewSpring returns a spring spec. Non-positive periods fall back to the
// default period.
func NewSpring(amplitude, period float64) Spec {
	return Spec{Family: FamilySpring, Spring: Spring{Amplitude: amplitude, Period: period}}
}

// DefaultSpringPeriod is used when a spring spec carries a non-positive period.
const DefaultSpringPeriod = 0.3

// Apply maps time progress p (expected in [0,1]) to eased progress. Power
// curves stay in [0,1]; spring output is unbounded and must not be clamped
// by the caller.
func Apply(p float64, s Spec) float64 {
	switch s.Family {
	case FamilyPower:
		return applyPower(p, s.Power)
	case FamilySpring:
		return applySpring(p, s.Spring)
	default:
		return p
	}
}

func applyPower(p float64, pw Power) float64 {
	// Endpoint guards keep f(0) and f(1) exact for every kind; sine and
	// expo would otherwise miss the endpoints by float rounding.
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	switch pw.Direction {
	case Out:
		return 1 - powerIn(1-p, pw.Kind)
	case InOut:
		if p < 0.5 {
			return powerIn(2*p, pw.Kind) / 2
		}
		return 1 - powerIn(2*(1-p), pw.Kind)/2
	default:
		return powerIn(p, pw.Kind)
	}
}

func powerIn(t float64, k Kind) float64 {
	switch k {
	case Cubic:
		return t * t * t
	case Quart:
		return t * t * t * t
	case Quint:
		return t * t * t * t * t
	case Sine:
		return 1 - math.Cos(t*math.Pi/2)
	case Expo:
		return math.Pow(2, 10*(t-1))
	case Circ:
		return 1 - math.Sqrt(1-t*t)
	default:
		return t * t
	}
}

// applySpring is a decaying sinusoid settling at 1. f(0) is exactly 0;
// f(1) is close to but not exactly 1 (residual envelope 2^-10), which the
// timeline contract allows for springs only.
func applySpring(p float64, sp Spring) float64 {
	if p <= 0 {
		return 0
	}
	a := sp.Amplitude
	if a < 1 {
		a = 1
	}
	period := sp.Period
	if period <= 0 {
		period = DefaultSpringPeriod
	}
	s := period / (2 * math.Pi) * math.Asin(1/a)
	return a*math.Pow(2, -10*p)*math.Sin((p-s)*(2*math.Pi)/period) + 1
}
