package stagger

import (
	"fmt"
	"math"
	"math/rand"
)

// linearOffsets assigns each element a rank under the order rule and
// multiplies by the base delay. Ranks for center-out and edges-in are the
// raw distances from the center, so symmetric elements tie exactly.
func linearOffsets(n int, order Order, cfg Config) ([]float64, error) {
	out := make([]float64, n)
	center := float64(n-1) / 2

	switch order {
	case FirstToLast:
		for i := range out {
			out[i] = float64(i) * cfg.BaseDelay
		}
	case LastToFirst:
		for i := range out {
			out[i] = float64(n-1-i) * cfg.BaseDelay
		}
	case CenterOut:
		for i := range out {
			out[i] = math.Abs(float64(i)-center) * cfg.BaseDelay
		}
	case EdgesIn:
		for i := range out {
			out[i] = (center - math.Abs(float64(i)-center)) * cfg.BaseDelay
		}
	case Random:
		// Seeded PRNG state, never the ambient global source; identical
		// seeds must produce identical permutations.
		perm := rand.New(rand.NewSource(cfg.Seed)).Perm(n)
		for i := range out {
			out[i] = float64(perm[i]) * cfg.BaseDelay
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownOrder, order)
	}
	return out, nil
}
