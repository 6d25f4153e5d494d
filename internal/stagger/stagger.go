// Package stagger computes deterministic per-element timing offsets from
// element ordering (linear strategy) or spatial grid position (grid
// strategy). Offsets are a pure function of (elementCount, Config): the
// same inputs always produce bit-identical output, including for seeded
// random ordering.
package stagger

import (
	"errors"
	"fmt"
)

// Domain errors for stagger configuration.
var (
	// ErrUnknownStrategy indicates a strategy value outside the known set.
	ErrUnknownStrategy = errors.New("stagger: unknown strategy")

	// ErrUnknownOrder indicates an order rule outside the known set.
	ErrUnknownOrder = errors.New("stagger: unknown order rule")

	// ErrNegativeDelay indicates a negative base delay.
	ErrNegativeDelay = errors.New("stagger: base delay must not be negative")
)

// Strategy selects how offsets are derived.
type Strategy int

const (
	StrategyLinear Strategy = iota
	StrategyGrid
)

// Order is the rank rule for the linear strategy.
type Order int

const (
	FirstToLast Order = iota
	LastToFirst
	CenterOut
	EdgesIn
	Random
)

// Metric selects the grid distance function.
type Metric int

const (
	Euclidean Metric = iota
	Manhattan
)

// Origin selects the grid distance origin.
type Origin int

const (
	OriginCorner Origin = iota
	OriginCenter
	OriginCustom
)

// ReverseMode controls which grid elements lead when playback reverses:
// ReverseSymmetric keeps the forward leaders leading; ReverseLatestFirst
// lets the elements that finished last lead the reversed run.
type ReverseMode int

const (
	ReverseSymmetric ReverseMode = iota
	ReverseLatestFirst
)

// Grid parameterizes the grid strategy. Zero Rows/Cols auto-infers a
// near-square factorization from the element count.
type Grid struct {
	Rows, Cols           int
	Origin               Origin
	OriginRow, OriginCol float64
	Metric               Metric
	Reverse              ReverseMode
}

// Config is pure configuration; it carries no mutable state. Order applies
// to forward playback and ReverseOrder to backward playback, so directional
// staggering keeps both rules available to the driver.
type Config struct {
	Strategy     Strategy
	BaseDelay    float64
	Order        Order
	ReverseOrder Order
	Seed         int64
	Grid         Grid
}

// Offsets computes the forward per-element offsets.
func Offsets(n int, cfg Config) ([]float64, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}
	if n <= 0 {
		return []float64{}, nil
	}
	switch cfg.Strategy {
	case StrategyLinear:
		return linearOffsets(n, cfg.Order, cfg)
	case StrategyGrid:
		return gridOffsets(n, cfg)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, cfg.Strategy)
	}
}

// OffsetsBackward computes the offsets used for backward playback. The
// linear strategy switches to the configured reverse order rule; the grid
// strategy applies its reverse mode.
func OffsetsBackward(n int, cfg Config) ([]float64, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}
	if n <= 0 {
		return []float64{}, nil
	}
	switch cfg.Strategy {
	case StrategyLinear:
		return linearOffsets(n, cfg.ReverseOrder, cfg)
	case StrategyGrid:
		forward, err := gridOffsets(n, cfg)
		if err != nil {
			return nil, err
		}
		switch cfg.Grid.Reverse {
		case ReverseLatestFirst:
			// The elements that finished last lead the reversed run.
			max := 0.0
			for _, o := range forward {
				if o > max {
					max = o
				}
			}
			out := make([]float64, len(forward))
			for i, o := range forward {
				out[i] = max - o
			}
			return out, nil
		default:
			// Symmetric: the forward leaders keep leading.
			return forward, nil
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, cfg.Strategy)
	}
}

func validate(cfg Config) error {
	if cfg.BaseDelay < 0 {
		return fmt.Errorf("%w, got %f", ErrNegativeDelay, cfg.BaseDelay)
	}
	if cfg.Strategy != StrategyLinear && cfg.Strategy != StrategyGrid {
		return fmt.Errorf("%w: %d", ErrUnknownStrategy, cfg.Strategy)
	}
	return nil
}
