// Package scene turns a declarative scene configuration into an executable
// animation slot, resolving string identifiers to engine types.
package scene

import (
	"fmt"

	"github.com/EmanueleCodes/animlab/internal/config"
	"github.com/EmanueleCodes/animlab/internal/ease"
	"github.com/EmanueleCodes/animlab/internal/engine"
	"github.com/EmanueleCodes/animlab/internal/stagger"
	"github.com/EmanueleCodes/animlab/internal/timeline"
	"github.com/EmanueleCodes/animlab/internal/value"
)

var driveModes = map[string]engine.DriveMode{
	"timed":    engine.Timed{},
	"scrubbed": engine.Scrubbed{},
}

var policies = map[string]engine.InterruptPolicy{
	"immediate":      engine.Immediate,
	"preserve-phase": engine.PreservePhase,
}

var strategies = map[string]stagger.Strategy{
	"linear": stagger.StrategyLinear,
	"grid":   stagger.StrategyGrid,
}

var orders = map[string]stagger.Order{
	"first-to-last": stagger.FirstToLast,
	"last-to-first": stagger.LastToFirst,
	"center-out":    stagger.CenterOut,
	"edges-in":      stagger.EdgesIn,
	"random":        stagger.Random,
}

var origins = map[string]stagger.Origin{
	"corner": stagger.OriginCorner,
	"center": stagger.OriginCenter,
	"custom": stagger.OriginCustom,
}

var gridMetrics = map[string]stagger.Metric{
	"euclidean": stagger.Euclidean,
	"manhattan": stagger.Manhattan,
}

var reverseModes = map[string]stagger.ReverseMode{
	"symmetric":    stagger.ReverseSymmetric,
	"latest-first": stagger.ReverseLatestFirst,
}

// Build assembles a slot from cfg. Malformed endpoint values and invalid
// timing are fatal; an unknown easing name is reported to the returned
// collector and the property falls back to linear.
func Build(cfg *config.Config) (*engine.Slot, *engine.Collector, error) {
	collector := engine.NewCollector()

	handles := cfg.Handles
	if len(handles) == 0 {
		handles = make([]string, cfg.Elements)
		for i := range handles {
			handles[i] = fmt.Sprintf("el%d", i)
		}
	}

	mode, ok := driveModes[cfg.Drive]
	if !ok {
		return nil, nil, fmt.Errorf("scene: unknown drive mode %q", cfg.Drive)
	}
	policy, ok := policies[cfg.Interrupt]
	if !ok {
		return nil, nil, fmt.Errorf("scene: unknown interrupt policy %q", cfg.Interrupt)
	}

	props := make([]timeline.Property, 0, len(cfg.Properties))
	for _, pc := range cfg.Properties {
		p, err := buildProperty(pc, collector)
		if err != nil {
			return nil, nil, err
		}
		props = append(props, p)
	}

	var global *timeline.Global
	if cfg.Global != nil {
		g := timeline.Global{
			Duration: cfg.Global.Duration,
			Delay:    cfg.Global.Delay,
			Easing:   resolveEasing(cfg.Global.Easing, cfg.Global.Spring, "global", collector),
		}
		global = &g
	}

	stg, err := buildStagger(cfg.Stagger)
	if err != nil {
		return nil, nil, err
	}

	slot, err := engine.NewSlot(engine.SlotConfig{
		Elements:   handles,
		Properties: props,
		Global:     global,
		Stagger:    stg,
		Policy:     policy,
		Mode:       mode,
		Reporter:   collector,
	})
	if err != nil {
		return nil, nil, err
	}
	return slot, collector, nil
}

func buildProperty(pc config.PropertyConfig, collector *engine.Collector) (timeline.Property, error) {
	from, err := value.Parse(string(pc.From))
	if err != nil {
		return timeline.Property{}, fmt.Errorf("scene: property %q from: %w", pc.Property, err)
	}
	to, err := value.Parse(string(pc.To))
	if err != nil {
		return timeline.Property{}, fmt.Errorf("scene: property %q to: %w", pc.Property, err)
	}
	return timeline.Property{
		Name:      pc.Property,
		From:      from,
		To:        to,
		Duration:  pc.Duration,
		Delay:     pc.Delay,
		Easing:    resolveEasing(pc.Easing, pc.Spring, pc.Property, collector),
		Unit:      pc.Unit,
		UseGlobal: pc.UseGlobal,
	}, nil
}

// resolveEasing degrades an unrecognized easing name to linear rather than
// failing the whole scene.
func resolveEasing(name string, spring *config.SpringConfig, owner string, collector *engine.Collector) ease.Spec {
	if spring != nil {
		return ease.NewSpring(spring.Amplitude, spring.Period)
	}
	if name == "" {
		return ease.Linear()
	}
	spec, err := ease.Parse(name)
	if err != nil {
		collector.Report(engine.Warning{
			Code:    engine.WarnUnknownEasing,
			Message: fmt.Sprintf("%s: easing %q not recognized, using linear", owner, name),
		})
		return ease.Linear()
	}
	return spec
}

func buildStagger(sc config.StaggerConfig) (stagger.Config, error) {
	strategy, ok := strategies[sc.Strategy]
	if !ok {
		return stagger.Config{}, fmt.Errorf("scene: unknown stagger strategy %q", sc.Strategy)
	}

	cfg := stagger.Config{
		Strategy:  strategy,
		BaseDelay: sc.BaseDelay,
		Seed:      sc.Seed,
	}

	if sc.Order != "" {
		order, ok := orders[sc.Order]
		if !ok {
			return stagger.Config{}, fmt.Errorf("scene: unknown stagger order %q", sc.Order)
		}
		cfg.Order = order
	}
	cfg.ReverseOrder = cfg.Order
	if sc.ReverseOrder != "" {
		order, ok := orders[sc.ReverseOrder]
		if !ok {
			return stagger.Config{}, fmt.Errorf("scene: unknown stagger reverse order %q", sc.ReverseOrder)
		}
		cfg.ReverseOrder = order
	}

	if strategy == stagger.StrategyGrid {
		grid, err := buildGrid(sc.Grid)
		if err != nil {
			return stagger.Config{}, err
		}
		cfg.Grid = grid
	}
	return cfg, nil
}

func buildGrid(gc config.GridConfig) (stagger.Grid, error) {
	grid := stagger.Grid{
		Rows:      gc.Rows,
		Cols:      gc.Cols,
		OriginRow: gc.OriginRow,
		OriginCol: gc.OriginCol,
	}
	if gc.Origin != "" {
		origin, ok := origins[gc.Origin]
		if !ok {
			return stagger.Grid{}, fmt.Errorf("scene: unknown grid origin %q", gc.Origin)
		}
		grid.Origin = origin
	}
	if gc.Metric != "" {
		metric, ok := gridMetrics[gc.Metric]
		if !ok {
			return stagger.Grid{}, fmt.Errorf("scene: unknown grid metric %q", gc.Metric)
		}
		grid.Metric = metric
	}
	if gc.Reverse != "" {
		mode, ok := reverseModes[gc.Reverse]
		if !ok {
			return stagger.Grid{}, fmt.Errorf("scene: unknown grid reverse mode %q", gc.Reverse)
		}
		grid.Reverse = mode
	}
	return grid, nil
}
