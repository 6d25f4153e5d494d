package ease

import (
	"math"
	"testing"
)

func TestLinearIdentity(t *testing.T) {
	spec := Linear()
	for i := 0; i <= 100; i++ {
		p := float64(i) / 100
		if got := Apply(p, spec); got != p {
			t.Errorf("linear(%f) = %f, want identity", p, got)
		}
	}
}

func TestPowerEndpointsExact(t *testing.T) {
	for _, name := range Names() {
		spec, err := Parse(name)
		if err != nil {
			t.Fatalf("parse %s: %v", name, err)
		}
		if spec.Family == FamilySpring {
			continue
		}
		if got := Apply(0, spec); got != 0 {
			t.Errorf("%s(0) = %v, want exactly 0", name, got)
		}
		if got := Apply(1, spec); got != 1 {
			t.Errorf("%s(1) = %v, want exactly 1", name, got)
		}
	}
}

func TestPowerMonotoneAndBounded(t *testing.T) {
	for _, name := range Names() {
		spec, _ := Parse(name)
		if spec.Family == FamilySpring {
			continue
		}
		prev := 0.0
		for i := 0; i <= 200; i++ {
			p := float64(i) / 200
			got := Apply(p, spec)
			if got < 0 || got > 1 {
				t.Errorf("%s(%f) = %f outside [0,1]", name, p, got)
			}
			if got < prev-1e-12 {
				t.Errorf("%s not monotone at p=%f: %f < %f", name, p, got, prev)
			}
			prev = got
		}
	}
}

func TestSpringOvershoots(t *testing.T) {
	tests := []struct {
		name      string
		amplitude float64
		period    float64
	}{
		{"default", 1.0, 0.3},
		{"stiff", 1.0, 0.15},
		{"loose", 2.5, 0.6},
	}

	for _, tt := range tests {
		spec := NewSpring(tt.amplitude, tt.period)
		overshoots := false
		for i := 1; i < 1000; i++ {
			p := float64(i) / 1000
			got := Apply(p, spec)
			if got > 1 || got < 0 {
				overshoots = true
				break
			}
		}
		if !overshoots {
			t.Errorf("spring %s never left [0,1]", tt.name)
		}
	}
}

func TestSpringBoundaries(t *testing.T) {
	spec := NewSpring(1.2, 0.4)

	if got := Apply(0, spec); got != 0 {
		t.Errorf("spring(0) = %v, want exactly 0", got)
	}
	// Springs settle near 1 but the residual envelope is part of the
	// contract: f(1) is not forced to exactly 1.
	if got := Apply(1, spec); math.Abs(got-1) > 0.01 {
		t.Errorf("spring(1) = %v, want within 0.01 of 1", got)
	}
}

func TestSpringFirstPeakExceedsOne(t *testing.T) {
	// First peak of the envelope sits at s + period/4 where sin = 1.
	amplitude, period := 1.0, 0.3
	spec := NewSpring(amplitude, period)
	s := period / (2 * math.Pi) * math.Asin(1/amplitude)
	peak := s + period/4

	want := amplitude*math.Pow(2, -10*peak) + 1
	got := Apply(peak, spec)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("spring(%f) = %f, want %f", peak, got, want)
	}
	if got <= 1 {
		t.Errorf("first peak %f should exceed 1", got)
	}
}

func TestParseUnknown(t *testing.T) {
	spec, err := Parse("wobble")
	if err == nil {
		t.Fatal("expected error for unknown easing")
	}
	if spec.Family != FamilyLinear {
		t.Errorf("unknown easing should degrade to linear, got family %d", spec.Family)
	}
}

func TestApplyDeterministic(t *testing.T) {
	spec := NewSpring(1.8, 0.25)
	for i := 0; i <= 50; i++ {
		p := float64(i) / 50
		if Apply(p, spec) != Apply(p, spec) {
			t.Fatalf("spring not deterministic at p=%f", p)
		}
	}
}
