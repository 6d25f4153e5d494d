package ease

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownEasing is returned by Parse for unrecognized names. Callers
// recover by substituting Linear and reporting a warning; the error is
// never fatal to a running animation.
var ErrUnknownEasing = errors.New("ease: unknown easing name")

var named = buildNames()

func buildNames() map[string]Spec {
	kinds := map[string]Kind{
		"quad":  Quad,
		"cubic": Cubic,
		"quart": Quart,
		"quint": Quint,
		"sine":  Sine,
		"expo":  Expo,
		"circ":  Circ,
	}
	m := map[string]Spec{
		"linear": Linear(),
		"spring": NewSpring(1, DefaultSpringPeriod),
	}
	for name, k := range kinds {
		m["in-"+name] = NewPower(k, In)
		m["out-"+name] = NewPower(k, Out)
		m["in-out-"+name] = NewPower(k, InOut)
	}
	return m
}

// Parse resolves a config-level easing name ("linear", "out-quad",
// "in-out-expo", "spring", ...) to a Spec.
func Parse(name string) (Spec, error) {
	s, ok := named[name]
	if !ok {
		return Linear(), fmt.Errorf("%w: %s", ErrUnknownEasing, name)
	}
	return s, nil
}

// Names returns all registered easing names, sorted.
func Names() []string {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
