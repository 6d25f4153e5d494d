package engine

import (
	"fmt"

	"github.com/EmanueleCodes/animlab/internal/value"
)

// DriveMode is selected once at slot construction; both variants satisfy
// the same driver surface, so call sites never branch on a mode flag.
type DriveMode interface {
	start(s *Slot, now float64, dir Direction) error
	tick(s *Slot, now float64) (Frame, error)
	feedScrub(s *Slot, progress float64) (Frame, error)
}

// Timed advances the timeline by sampling a monotonic clock every frame.
type Timed struct{}

func (Timed) start(s *Slot, now float64, dir Direction) error {
	s.activate(now, dir)
	return nil
}

func (Timed) tick(s *Slot, now float64) (Frame, error) {
	if s.cancelled {
		return Frame{}, ErrCancelled
	}
	if !s.started {
		return Frame{}, ErrNotStarted
	}

	frame := Frame{
		Time:     now,
		Elements: make(map[string]map[string]value.Value, len(s.elements)),
	}
	allDone := true

	for i, handle := range s.elements {
		st := &s.states[i]

		offset := s.offsets[i]
		if st.Direction == Backward {
			offset = s.backOffsets[i]
		}
		elementTime := now - st.StartClock - offset

		batch, done := s.evaluate(i, elementTime, st.Direction)
		if done {
			st.Phase = Completed
		} else {
			allDone = false
		}
		if s.master.Total > 0 {
			st.LastProgress = clamp01(elementTime / s.master.Total)
		} else {
			st.LastProgress = 1
		}

		frame.Elements[handle] = batch
		s.lastValues[i] = batch
	}

	frame.Done = allDone
	s.lastTime = now
	s.publish(frame)
	return frame, nil
}

func (Timed) feedScrub(s *Slot, progress float64) (Frame, error) {
	return Frame{}, fmt.Errorf("%w: timed slot fed scrub progress", ErrWrongMode)
}

// Scrubbed has no clock; every call maps the supplied progress across the
// slot span. It never completes on its own.
type Scrubbed struct{}

func (Scrubbed) start(s *Slot, now float64, dir Direction) error {
	return fmt.Errorf("%w: scrubbed slot started as timed", ErrWrongMode)
}

func (Scrubbed) tick(s *Slot, now float64) (Frame, error) {
	return Frame{}, fmt.Errorf("%w: scrubbed slot ticked", ErrWrongMode)
}

func (Scrubbed) feedScrub(s *Slot, progress float64) (Frame, error) {
	if s.cancelled {
		return Frame{}, ErrCancelled
	}

	if progress < 0 || progress > 1 {
		s.reporter.Report(Warning{
			Code:    WarnScrubOutOfRange,
			Message: fmt.Sprintf("scrub progress %f outside [0,1], clamped", progress),
		})
		progress = clamp01(progress)
	}

	slotTime := progress * s.span
	frame := Frame{
		Time:     slotTime,
		Elements: make(map[string]map[string]value.Value, len(s.elements)),
	}

	for i, handle := range s.elements {
		st := &s.states[i]
		st.Phase = Scrubbing
		st.LastProgress = progress

		batch, _ := s.evaluate(i, slotTime-s.offsets[i], Forward)
		frame.Elements[handle] = batch
		s.lastValues[i] = batch
	}

	s.started = true
	s.lastTime = slotTime
	s.publish(frame)
	return frame, nil
}
