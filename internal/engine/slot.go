package engine

import (
	"fmt"

	"github.com/EmanueleCodes/animlab/internal/ease"
	"github.com/EmanueleCodes/animlab/internal/stagger"
	"github.com/EmanueleCodes/animlab/internal/timeline"
	"github.com/EmanueleCodes/animlab/internal/value"
)

// Frame is the value batch emitted for one tick or scrub call: for every
// element handle, a complete property→value map. A consumer never sees a
// partially updated property set for an element.
type Frame struct {
	Time     float64
	Elements map[string]map[string]value.Value
	Done     bool
}

// SlotConfig assembles everything a slot needs. Mode defaults to Timed
// and Reporter to a fresh Collector.
type SlotConfig struct {
	Elements   []string
	Properties []timeline.Property
	Global     *timeline.Global
	Stagger    stagger.Config
	Policy     InterruptPolicy
	Mode       DriveMode
	Reporter   Reporter
}

// Slot is the unit of execution: target elements, one master timeline,
// stagger offsets for both play directions, an interrupt policy, and
// per-element execution state.
type Slot struct {
	elements    []string
	master      *timeline.Master
	offsets     []float64
	backOffsets []float64
	policy      InterruptPolicy
	mode        DriveMode
	reporter    Reporter

	states       []ExecutionState
	fromOverride []map[string]value.Value
	lastValues   []map[string]value.Value
	lastTime     float64
	started      bool
	cancelled    bool
	span         float64
	mismatchSeen map[string]bool

	subs    []subscriber
	nextSub int
}

// NewSlot builds the timeline and stagger offsets up front; any
// configuration error fails here, before a tick can run.
func NewSlot(cfg SlotConfig) (*Slot, error) {
	if len(cfg.Elements) == 0 {
		return nil, ErrNoElements
	}

	master, err := timeline.Build(cfg.Properties, cfg.Global)
	if err != nil {
		return nil, err
	}

	n := len(cfg.Elements)
	offsets, err := stagger.Offsets(n, cfg.Stagger)
	if err != nil {
		return nil, err
	}
	backOffsets, err := stagger.OffsetsBackward(n, cfg.Stagger)
	if err != nil {
		return nil, err
	}

	span := master.Total
	for _, o := range offsets {
		if o+master.Total > span {
			span = o + master.Total
		}
	}

	mode := cfg.Mode
	if mode == nil {
		mode = Timed{}
	}
	reporter := cfg.Reporter
	if reporter == nil {
		reporter = NewCollector()
	}

	elements := make([]string, n)
	copy(elements, cfg.Elements)

	return &Slot{
		elements:     elements,
		master:       master,
		offsets:      offsets,
		backOffsets:  backOffsets,
		policy:       cfg.Policy,
		mode:         mode,
		reporter:     reporter,
		states:       make([]ExecutionState, n),
		fromOverride: make([]map[string]value.Value, n),
		lastValues:   make([]map[string]value.Value, n),
		span:         span,
		mismatchSeen: make(map[string]bool),
	}, nil
}

// StartTimed activates the slot under the timed drive mode. When the
// activation conflicts with running (or freshly interrupted) elements the
// interrupt policy is applied once, here.
func (s *Slot) StartTimed(now float64, dir Direction) error {
	return s.mode.start(s, now, dir)
}

// Tick advances a timed slot to the given monotonic clock reading and
// returns the emitted frame.
func (s *Slot) Tick(now float64) (Frame, error) {
	return s.mode.tick(s, now)
}

// FeedScrub maps an externally supplied progress in [0,1] onto the
// timeline and returns the emitted frame. Out-of-domain input is clamped
// at this boundary and reported.
func (s *Slot) FeedScrub(progress float64) (Frame, error) {
	return s.mode.feedScrub(s, progress)
}

// Cancel transitions every element to Interrupted synchronously. No tick
// or scrub emits values after cancellation until the slot is restarted.
func (s *Slot) Cancel() {
	for i := range s.states {
		s.states[i].Phase = Interrupted
	}
	s.cancelled = true
}

// Elements returns the element handles in slot order.
func (s *Slot) Elements() []string {
	return s.elements
}

// Master exposes the immutable merged timeline.
func (s *Slot) Master() *timeline.Master {
	return s.master
}

// Span is the full slot extent: total timeline duration plus the largest
// forward stagger offset.
func (s *Slot) Span() float64 {
	return s.span
}

// ElementPhase reports the execution phase of one element.
func (s *Slot) ElementPhase(i int) Phase {
	return s.states[i].Phase
}

func (s *Slot) activate(now float64, dir Direction) {
	conflict := false
	for i := range s.states {
		if s.states[i].Phase == Running || s.states[i].Phase == Interrupted {
			conflict = true
			break
		}
	}

	if conflict && s.started {
		switch s.policy {
		case PreservePhase:
			// Shift the clock so each element resumes at the phase it
			// held when last observed; values never snap because the
			// eased position is identical before and after.
			for i := range s.states {
				elapsed := s.lastTime - s.states[i].StartClock
				s.states[i].StartClock = now - elapsed
				s.states[i].Phase = Running
				s.states[i].Direction = dir
			}
			s.cancelled = false
			return
		default:
			// Immediate: restart cleanly from the current emitted values
			// rather than the configured from, so nothing snaps back.
			for i := range s.states {
				if s.lastValues[i] != nil {
					override := make(map[string]value.Value, len(s.lastValues[i]))
					for k, v := range s.lastValues[i] {
						override[k] = v
					}
					s.fromOverride[i] = override
				}
			}
		}
	} else {
		for i := range s.fromOverride {
			s.fromOverride[i] = nil
		}
	}

	for i := range s.states {
		s.states[i] = ExecutionState{Phase: Running, StartClock: now, Direction: dir}
	}
	s.started = true
	s.cancelled = false
	s.lastTime = now
}

// evaluate computes one element's atomic property batch at the given
// element-local time. The returned flag reports whether every property
// has consumed its full window.
func (s *Slot) evaluate(idx int, elementTime float64, dir Direction) (map[string]value.Value, bool) {
	batch := make(map[string]value.Value, len(s.master.Spans))
	done := true

	for _, span := range s.master.Spans {
		prop := span.Property
		dur := span.End - span.Start

		windowStart := span.Start
		if dir == Backward {
			windowStart = s.master.Total - span.End
		}

		raw := (elementTime - windowStart) / dur
		if raw < 1 {
			done = false
		}
		// The one and only clamp: clock to time progress, before easing.
		tp := clamp01(raw)
		if dir == Backward {
			tp = 1 - tp
		}

		eased := ease.Apply(tp, prop.Easing)

		from := prop.From
		if ov := s.fromOverride[idx]; ov != nil {
			if v, ok := ov[prop.Name]; ok {
				from = v
			}
		}

		v, err := value.Interpolate(from, prop.To, eased)
		if err != nil {
			// Degrade to holding the time-clamped endpoint; the slot
			// keeps running.
			v = value.Endpoint(from, prop.To, tp)
			if !s.mismatchSeen[prop.Name] {
				s.mismatchSeen[prop.Name] = true
				s.reporter.Report(Warning{
					Code:    WarnUnitMismatch,
					Message: fmt.Sprintf("property %q: from/to unit families differ", prop.Name),
				})
			}
		}
		batch[prop.Name] = v
	}

	return batch, done
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
