package value

// Interpolate computes from + (to-from) * eased for every value kind.
// Eased progress may lie outside [0,1]; numeric and unit results pass the
// overshoot through. Color channels are clamped after the lerp because
// channel values are bounded; this is a per-channel post-clamp, not a
// progress clamp. At eased 0 and 1 the endpoints are returned exactly.
func Interpolate(from, to Value, eased float64) (Value, error) {
	if err := checkCompatible(from, to); err != nil {
		return Value{}, err
	}
	if eased == 0 {
		return from, nil
	}
	if eased == 1 {
		return to, nil
	}

	switch from.Kind {
	case KindColor:
		f, t := from.Color, to.Color
		return FromColor(RGBA{
			R: clampChannel(lerp(f.R, t.R, eased), 255),
			G: clampChannel(lerp(f.G, t.G, eased), 255),
			B: clampChannel(lerp(f.B, t.B, eased), 255),
			A: clampChannel(lerp(f.A, t.A, eased), 1),
		}), nil
	case KindUnit:
		return Value{Kind: KindUnit, Num: lerp(from.Num, to.Num, eased), Unit: to.Unit}, nil
	default:
		return Number(lerp(from.Num, to.Num, eased)), nil
	}
}

// Endpoint is the degraded fallback for incompatible from/to pairs: hold
// the endpoint selected by the clamped time progress, as if the easing
// were linear and clamped.
func Endpoint(from, to Value, timeProgress float64) Value {
	if timeProgress >= 1 {
		return to
	}
	return from
}

func checkCompatible(from, to Value) error {
	if from.Kind != to.Kind {
		return ErrUnitMismatch
	}
	if from.Kind == KindUnit && from.UnitFamily() != to.UnitFamily() {
		return ErrUnitMismatch
	}
	return nil
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clampChannel(v, hi float64) float64 {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}
