package value

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Domain errors for value parsing and interpolation.
var (
	// ErrMalformedValue indicates a value string that parses as neither a
	// number, a number+unit pair, nor a color.
	ErrMalformedValue = errors.New("value: malformed value")

	// ErrUnknownUnit indicates a unit suffix outside the known unit table.
	ErrUnknownUnit = errors.New("value: unknown unit")

	// ErrUnitMismatch indicates from/to values whose unit families differ.
	// Interpolation recovers by holding an endpoint; the error is reported,
	// never fatal.
	ErrUnitMismatch = errors.New("value: unit family mismatch")
)

// Kind tags the variant held by a Value.
type Kind int

const (
	KindNumber Kind = iota
	KindUnit
	KindColor
)

// Family groups units that may interpolate against each other.
type Family int

const (
	FamilyNone Family = iota
	FamilyLength
	FamilyPercent
	FamilyAngle
	FamilyTime
)

var unitFamilies = map[string]Family{
	"px":   FamilyLength,
	"em":   FamilyLength,
	"rem":  FamilyLength,
	"vw":   FamilyLength,
	"vh":   FamilyLength,
	"%":    FamilyPercent,
	"deg":  FamilyAngle,
	"rad":  FamilyAngle,
	"turn": FamilyAngle,
	"s":    FamilyTime,
	"ms":   FamilyTime,
}

// RGBA holds color channels: R, G, B in [0,255], A in [0,1].
type RGBA struct {
	R, G, B, A float64
}

// Value is a tagged animatable value: a bare number, a number+unit pair,
// or a color. Values are immutable once built into a timeline.
type Value struct {
	Kind  Kind
	Num   float64
	Unit  string
	Color RGBA
}

// Number returns a bare numeric value.
func Number(n float64) Value {
	return Value{Kind: KindNumber, Num: n}
}

// WithUnit returns a number+unit value. The unit must be in the known
// unit table.
func WithUnit(n float64, unit string) (Value, error) {
	if _, ok := unitFamilies[unit]; !ok {
		return Value{}, fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
	}
	return Value{Kind: KindUnit, Num: n, Unit: unit}, nil
}

// FromColor returns a color value.
func FromColor(c RGBA) Value {
	return Value{Kind: KindColor, Color: c}
}

// UnitFamily returns the family a value interpolates within. Bare numbers
// are FamilyNone.
func (v Value) UnitFamily() Family {
	if v.Kind != KindUnit {
		return FamilyNone
	}
	return unitFamilies[v.Unit]
}

// Parse reads a scalar value string: "0.5", "300px", "-45deg", "120%",
// "#22ccff", "#22ccff88".
func Parse(s string) (Value, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Value{}, fmt.Errorf("%w: empty string", ErrMalformedValue)
	}
	if s[0] == '#' {
		c, err := parseHexColor(s)
		if err != nil {
			return Value{}, err
		}
		return FromColor(c), nil
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return Number(n), nil
	}

	// Longest known unit suffix wins ("ms" before "s").
	unit := ""
	for u := range unitFamilies {
		if strings.HasSuffix(s, u) && len(u) > len(unit) {
			unit = u
		}
	}
	if unit == "" {
		return Value{}, fmt.Errorf("%w: %q", ErrMalformedValue, s)
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s[:len(s)-len(unit)]), 64)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %q", ErrMalformedValue, s)
	}
	return Value{Kind: KindUnit, Num: n, Unit: unit}, nil
}

func parseHexColor(s string) (RGBA, error) {
	hex := s[1:]
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6, 8:
	default:
		return RGBA{}, fmt.Errorf("%w: %q", ErrMalformedValue, s)
	}
	parse := func(b string) (float64, error) {
		v, err := strconv.ParseUint(b, 16, 16)
		return float64(v), err
	}
	r, err1 := parse(hex[0:2])
	g, err2 := parse(hex[2:4])
	b, err3 := parse(hex[4:6])
	if err1 != nil || err2 != nil || err3 != nil {
		return RGBA{}, fmt.Errorf("%w: %q", ErrMalformedValue, s)
	}
	a := 1.0
	if len(hex) == 8 {
		av, err := parse(hex[6:8])
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: %q", ErrMalformedValue, s)
		}
		a = av / 255
	}
	return RGBA{R: r, G: g, B: b, A: a}, nil
}

// String formats a value the way Parse reads it.
func (v Value) String() string {
	switch v.Kind {
	case KindUnit:
		return strconv.FormatFloat(v.Num, 'f', -1, 64) + v.Unit
	case KindColor:
		c := v.Color
		if c.A < 1 {
			return fmt.Sprintf("#%02x%02x%02x%02x",
				roundChannel(c.R), roundChannel(c.G), roundChannel(c.B), roundChannel(c.A*255))
		}
		return fmt.Sprintf("#%02x%02x%02x", roundChannel(c.R), roundChannel(c.G), roundChannel(c.B))
	default:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	}
}

func roundChannel(v float64) int {
	n := int(v + 0.5)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}
