package value

import (
	"errors"
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Value
	}{
		{"0.5", Number(0.5)},
		{"-12", Number(-12)},
		{"300px", Value{Kind: KindUnit, Num: 300, Unit: "px"}},
		{"-45deg", Value{Kind: KindUnit, Num: -45, Unit: "deg"}},
		{"120%", Value{Kind: KindUnit, Num: 120, Unit: "%"}},
		{"250ms", Value{Kind: KindUnit, Num: 250, Unit: "ms"}},
		{"1.5turn", Value{Kind: KindUnit, Num: 1.5, Unit: "turn"}},
		{"#ff0000", FromColor(RGBA{R: 255, A: 1})},
		{"#0f0", FromColor(RGBA{G: 255, A: 1})},
		{"#00000080", FromColor(RGBA{A: 128.0 / 255})},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseMalformed(t *testing.T) {
	for _, in := range []string{"", "px", "12qx", "#12345", "#zzzzzz", "abc"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) should fail", in)
		}
	}
}

func TestParseStringRoundTrip(t *testing.T) {
	for _, in := range []string{"0.5", "300px", "-45deg", "#ff8800", "#ff880080"} {
		v, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		back, err := Parse(v.String())
		if err != nil {
			t.Fatalf("Parse(String(%q)): %v", in, err)
		}
		if back != v {
			t.Errorf("round trip %q: %+v != %+v", in, back, v)
		}
	}
}

func TestInterpolateEndpointsExact(t *testing.T) {
	pairs := []struct {
		name     string
		from, to Value
	}{
		{"number", Number(0.5), Number(1)},
		{"unit", mustParse(t, "0px"), mustParse(t, "300px")},
		{"color", mustParse(t, "#000000"), mustParse(t, "#ffffff")},
	}

	for _, p := range pairs {
		got, err := Interpolate(p.from, p.to, 0)
		if err != nil {
			t.Fatalf("%s: %v", p.name, err)
		}
		if got != p.from {
			t.Errorf("%s: interpolate(.., 0) = %+v, want from exactly", p.name, got)
		}
		got, err = Interpolate(p.from, p.to, 1)
		if err != nil {
			t.Fatalf("%s: %v", p.name, err)
		}
		if got != p.to {
			t.Errorf("%s: interpolate(.., 1) = %+v, want to exactly", p.name, got)
		}
	}
}

func TestInterpolateOvershootPassesThrough(t *testing.T) {
	got, err := Interpolate(Number(0), Number(100), 1.2)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got.Num-120) > 1e-9 {
		t.Errorf("overshoot: got %f, want 120", got.Num)
	}

	got, err = Interpolate(mustParse(t, "0px"), mustParse(t, "300px"), -0.1)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got.Num+30) > 1e-9 {
		t.Errorf("undershoot: got %f, want -30", got.Num)
	}
}

func TestInterpolateColorClamps(t *testing.T) {
	from := mustParse(t, "#000000")
	to := mustParse(t, "#ffffff")

	got, err := Interpolate(from, to, 1.5)
	if err != nil {
		t.Fatal(err)
	}
	c := got.Color
	if c.R != 255 || c.G != 255 || c.B != 255 || c.A != 1 {
		t.Errorf("channels should clamp at their bounds, got %+v", c)
	}

	got, err = Interpolate(from, to, -0.5)
	if err != nil {
		t.Fatal(err)
	}
	c = got.Color
	if c.R != 0 || c.G != 0 || c.B != 0 {
		t.Errorf("channels should clamp at zero, got %+v", c)
	}
}

func TestInterpolateUnitMismatch(t *testing.T) {
	px := mustParse(t, "10px")
	deg := mustParse(t, "10deg")

	if _, err := Interpolate(px, deg, 0.5); !errors.Is(err, ErrUnitMismatch) {
		t.Errorf("expected ErrUnitMismatch, got %v", err)
	}
	if _, err := Interpolate(Number(1), px, 0.5); !errors.Is(err, ErrUnitMismatch) {
		t.Errorf("number vs unit should mismatch, got %v", err)
	}

	if got := Endpoint(px, deg, 0.4); got != px {
		t.Errorf("endpoint below 1 should hold from, got %+v", got)
	}
	if got := Endpoint(px, deg, 1); got != deg {
		t.Errorf("endpoint at 1 should hold to, got %+v", got)
	}
}

func TestInterpolateSameFamilyUnits(t *testing.T) {
	// px and em share the length family; the result carries the to unit.
	from := mustParse(t, "0px")
	to := mustParse(t, "10em")
	got, err := Interpolate(from, to, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if got.Unit != "em" || math.Abs(got.Num-5) > 1e-9 {
		t.Errorf("got %+v, want 5em", got)
	}
}

func mustParse(t *testing.T, s string) Value {
	t.Helper()
	v, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	return v
}
