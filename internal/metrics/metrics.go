package metrics

import (
	"math"

	"github.com/EmanueleCodes/animlab/internal/engine"
	"github.com/EmanueleCodes/animlab/internal/timeline"
	"github.com/EmanueleCodes/animlab/internal/value"
)

// Metric observes emitted frames during a run and reduces them to one
// number for the run summary.
type Metric interface {
	Name() string
	Observe(f engine.Frame)
	Value() float64
	Reset()
}

// FrameCount counts emitted frames.
type FrameCount struct {
	frames int
}

func NewFrameCount() *FrameCount { return &FrameCount{} }

func (c *FrameCount) Name() string           { return "frames" }
func (c *FrameCount) Observe(f engine.Frame) { c.frames++ }
func (c *FrameCount) Value() float64         { return float64(c.frames) }
func (c *FrameCount) Reset()                 { c.frames = 0 }

// MaxOvershoot tracks the largest excursion of any numeric property
// outside its configured [from, to] range, as a fraction of that range.
// Spring easings make this non-zero; monotonic easings keep it at 0.
type MaxOvershoot struct {
	ranges map[string][2]float64
	max    float64
}

// NewMaxOvershoot reads the numeric property ranges from the timeline.
func NewMaxOvershoot(m *timeline.Master) *MaxOvershoot {
	ranges := make(map[string][2]float64)
	for _, span := range m.Spans {
		p := span.Property
		if p.From.Kind == value.KindColor || p.To.Kind == value.KindColor {
			continue
		}
		lo, hi := p.From.Num, p.To.Num
		if lo > hi {
			lo, hi = hi, lo
		}
		ranges[p.Name] = [2]float64{lo, hi}
	}
	return &MaxOvershoot{ranges: ranges}
}

func (o *MaxOvershoot) Name() string { return "max_overshoot" }

func (o *MaxOvershoot) Observe(f engine.Frame) {
	for _, batch := range f.Elements {
		for name, v := range batch {
			r, ok := o.ranges[name]
			if !ok {
				continue
			}
			span := r[1] - r[0]
			if span == 0 {
				continue
			}
			var excess float64
			if v.Num > r[1] {
				excess = (v.Num - r[1]) / span
			} else if v.Num < r[0] {
				excess = (r[0] - v.Num) / span
			}
			o.max = math.Max(o.max, excess)
		}
	}
}

func (o *MaxOvershoot) Value() float64 { return o.max }
func (o *MaxOvershoot) Reset()         { o.max = 0 }

// Settle records the slot time at which the run first reported Done.
// Value is -1 until then.
type Settle struct {
	settled bool
	at      float64
}

func NewSettle() *Settle { return &Settle{at: -1} }

func (s *Settle) Name() string { return "settle_time" }

func (s *Settle) Observe(f engine.Frame) {
	if !s.settled && f.Done {
		s.settled = true
		s.at = f.Time
	}
}

func (s *Settle) Value() float64 { return s.at }

func (s *Settle) Reset() {
	s.settled = false
	s.at = -1
}
