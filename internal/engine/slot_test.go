package engine_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/EmanueleCodes/animlab/internal/engine"
	"github.com/EmanueleCodes/animlab/internal/stagger"
	"github.com/EmanueleCodes/animlab/internal/timeline"
	"github.com/EmanueleCodes/animlab/internal/value"
)

func baseProperties() []timeline.Property {
	return []timeline.Property{
		{Name: "translateX", From: value.Number(0), To: value.Number(300), Duration: 1.0, Unit: "px"},
		{Name: "opacity", From: value.Number(0), To: value.Number(1), Duration: 0.5, Delay: 0.2},
	}
}

func baseStagger() stagger.Config {
	return stagger.Config{
		Strategy:  stagger.StrategyLinear,
		BaseDelay: 0.1,
		Order:     stagger.FirstToLast,
	}
}

var _ = Describe("Slot", func() {
	var (
		warnings *engine.Collector
		slot     *engine.Slot
	)

	newSlot := func(cfg engine.SlotConfig) *engine.Slot {
		warnings = engine.NewCollector()
		cfg.Reporter = warnings
		s, err := engine.NewSlot(cfg)
		Expect(err).NotTo(HaveOccurred())
		return s
	}

	Describe("timed drive", func() {
		BeforeEach(func() {
			slot = newSlot(engine.SlotConfig{
				Elements:   []string{"el0", "el1"},
				Properties: baseProperties(),
				Stagger:    baseStagger(),
			})
		})

		It("rejects ticks before start", func() {
			_, err := slot.Tick(0)
			Expect(err).To(MatchError(engine.ErrNotStarted))
		})

		It("emits the from values at activation time", func() {
			Expect(slot.StartTimed(0, engine.Forward)).To(Succeed())
			frame, err := slot.Tick(0)
			Expect(err).NotTo(HaveOccurred())

			Expect(frame.Elements["el0"]["translateX"].Num).To(Equal(0.0))
			Expect(frame.Elements["el0"]["translateX"].Unit).To(Equal("px"))
			Expect(frame.Elements["el0"]["opacity"].Num).To(Equal(0.0))
			Expect(frame.Done).To(BeFalse())
		})

		It("interpolates with per-element stagger offsets", func() {
			Expect(slot.StartTimed(0, engine.Forward)).To(Succeed())
			frame, err := slot.Tick(0.5)
			Expect(err).NotTo(HaveOccurred())

			Expect(frame.Elements["el0"]["translateX"].Num).To(BeNumerically("~", 150, 1e-9))
			Expect(frame.Elements["el0"]["opacity"].Num).To(BeNumerically("~", 0.6, 1e-9))

			Expect(frame.Elements["el1"]["translateX"].Num).To(BeNumerically("~", 120, 1e-9))
			Expect(frame.Elements["el1"]["opacity"].Num).To(BeNumerically("~", 0.4, 1e-9))
		})

		It("emits every property of an element as one batch", func() {
			Expect(slot.StartTimed(0, engine.Forward)).To(Succeed())
			frame, _ := slot.Tick(0.3)
			for _, handle := range slot.Elements() {
				Expect(frame.Elements[handle]).To(HaveLen(2))
				Expect(frame.Elements[handle]).To(HaveKey("translateX"))
				Expect(frame.Elements[handle]).To(HaveKey("opacity"))
			}
		})

		It("completes once every element consumed its window", func() {
			Expect(slot.StartTimed(0, engine.Forward)).To(Succeed())

			frame, _ := slot.Tick(1.05)
			Expect(frame.Done).To(BeFalse(), "staggered element still in flight")
			Expect(slot.ElementPhase(0)).To(Equal(engine.Completed))
			Expect(slot.ElementPhase(1)).To(Equal(engine.Running))

			frame, _ = slot.Tick(1.1)
			Expect(frame.Done).To(BeTrue())
			Expect(slot.ElementPhase(1)).To(Equal(engine.Completed))
			Expect(frame.Elements["el1"]["translateX"].Num).To(Equal(300.0))
			Expect(frame.Elements["el1"]["opacity"].Num).To(Equal(1.0))
		})

		It("clamps time progress so endpoints hold beyond the window", func() {
			Expect(slot.StartTimed(0, engine.Forward)).To(Succeed())
			frame, _ := slot.Tick(5)
			Expect(frame.Elements["el0"]["translateX"].Num).To(Equal(300.0))
			Expect(frame.Done).To(BeTrue())
		})

		It("rejects scrub input on a timed slot", func() {
			_, err := slot.FeedScrub(0.5)
			Expect(err).To(MatchError(engine.ErrWrongMode))
		})

		It("plays backward from the to values", func() {
			Expect(slot.StartTimed(0, engine.Backward)).To(Succeed())
			frame, err := slot.Tick(0)
			Expect(err).NotTo(HaveOccurred())

			Expect(frame.Elements["el0"]["translateX"].Num).To(Equal(300.0))
			Expect(frame.Elements["el0"]["opacity"].Num).To(Equal(1.0))

			frame, _ = slot.Tick(1.1)
			Expect(frame.Done).To(BeTrue())
			Expect(frame.Elements["el0"]["translateX"].Num).To(Equal(0.0))
		})
	})

	Describe("cancellation", func() {
		BeforeEach(func() {
			slot = newSlot(engine.SlotConfig{
				Elements:   []string{"el0"},
				Properties: baseProperties(),
				Stagger:    baseStagger(),
			})
		})

		It("stops emission synchronously", func() {
			Expect(slot.StartTimed(0, engine.Forward)).To(Succeed())
			_, err := slot.Tick(0.3)
			Expect(err).NotTo(HaveOccurred())

			slot.Cancel()
			Expect(slot.ElementPhase(0)).To(Equal(engine.Interrupted))

			_, err = slot.Tick(0.4)
			Expect(err).To(MatchError(engine.ErrCancelled))
		})
	})

	Describe("interrupt policies", func() {
		It("immediate restart begins from the last emitted values", func() {
			slot = newSlot(engine.SlotConfig{
				Elements:   []string{"el0"},
				Properties: baseProperties(),
				Stagger:    baseStagger(),
				Policy:     engine.Immediate,
			})

			Expect(slot.StartTimed(0, engine.Forward)).To(Succeed())
			mid, err := slot.Tick(0.5)
			Expect(err).NotTo(HaveOccurred())
			Expect(mid.Elements["el0"]["translateX"].Num).To(BeNumerically("~", 150, 1e-9))

			slot.Cancel()
			Expect(slot.StartTimed(0.5, engine.Forward)).To(Succeed())

			restarted, err := slot.Tick(0.5)
			Expect(err).NotTo(HaveOccurred())
			Expect(restarted.Elements["el0"]["translateX"]).To(Equal(mid.Elements["el0"]["translateX"]))
			Expect(restarted.Elements["el0"]["opacity"]).To(Equal(mid.Elements["el0"]["opacity"]))
		})

		It("immediate retarget runs the full duration from the current value", func() {
			slot = newSlot(engine.SlotConfig{
				Elements:   []string{"el0"},
				Properties: baseProperties(),
				Stagger:    baseStagger(),
				Policy:     engine.Immediate,
			})

			Expect(slot.StartTimed(0, engine.Forward)).To(Succeed())
			_, err := slot.Tick(0.5)
			Expect(err).NotTo(HaveOccurred())

			Expect(slot.StartTimed(0.5, engine.Forward)).To(Succeed())
			frame, _ := slot.Tick(1.0)
			// Halfway through the restarted run: from 150 toward 300.
			Expect(frame.Elements["el0"]["translateX"].Num).To(BeNumerically("~", 225, 1e-9))
		})

		It("preserve-phase restart continues the eased phase", func() {
			slot = newSlot(engine.SlotConfig{
				Elements:   []string{"el0"},
				Properties: baseProperties(),
				Stagger:    baseStagger(),
				Policy:     engine.PreservePhase,
			})

			Expect(slot.StartTimed(0, engine.Forward)).To(Succeed())
			before, err := slot.Tick(0.4)
			Expect(err).NotTo(HaveOccurred())

			Expect(slot.StartTimed(10, engine.Forward)).To(Succeed())
			after, err := slot.Tick(10)
			Expect(err).NotTo(HaveOccurred())

			Expect(after.Elements["el0"]["translateX"].Num).To(
				BeNumerically("~", before.Elements["el0"]["translateX"].Num, 1e-9))
			Expect(after.Elements["el0"]["opacity"].Num).To(
				BeNumerically("~", before.Elements["el0"]["opacity"].Num, 1e-9))
		})
	})

	Describe("scrubbed drive", func() {
		BeforeEach(func() {
			slot = newSlot(engine.SlotConfig{
				Elements:   []string{"el0", "el1"},
				Properties: baseProperties(),
				Stagger:    baseStagger(),
				Mode:       engine.Scrubbed{},
			})
		})

		It("tracks supplied progress without completing", func() {
			frame, err := slot.FeedScrub(0)
			Expect(err).NotTo(HaveOccurred())
			Expect(frame.Elements["el0"]["translateX"].Num).To(Equal(0.0))
			Expect(frame.Done).To(BeFalse())

			frame, err = slot.FeedScrub(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(frame.Elements["el0"]["translateX"].Num).To(Equal(300.0))
			Expect(frame.Elements["el1"]["translateX"].Num).To(Equal(300.0))
			Expect(frame.Done).To(BeFalse(), "scrubbed slots never self-complete")
			Expect(slot.ElementPhase(0)).To(Equal(engine.Scrubbing))
		})

		It("is reactive, not stateful, between calls", func() {
			a, _ := slot.FeedScrub(0.7)
			_, _ = slot.FeedScrub(0.2)
			b, _ := slot.FeedScrub(0.7)
			Expect(b.Elements).To(Equal(a.Elements))
		})

		It("clamps out-of-domain progress at the boundary and reports", func() {
			frame, err := slot.FeedScrub(1.4)
			Expect(err).NotTo(HaveOccurred())
			Expect(frame.Elements["el0"]["translateX"].Num).To(Equal(300.0))

			Expect(warnings.Warnings()).To(HaveLen(1))
			Expect(warnings.Warnings()[0].Code).To(Equal(engine.WarnScrubOutOfRange))
		})

		It("rejects timed entry points", func() {
			Expect(slot.StartTimed(0, engine.Forward)).To(MatchError(engine.ErrWrongMode))
			_, err := slot.Tick(0.5)
			Expect(err).To(MatchError(engine.ErrWrongMode))
		})
	})

	Describe("degraded interpolation", func() {
		It("holds the time-clamped endpoint on unit family mismatch", func() {
			px, _ := value.Parse("10px")
			deg, _ := value.Parse("90deg")
			slot = newSlot(engine.SlotConfig{
				Elements: []string{"el0"},
				Properties: []timeline.Property{
					{Name: "rotate", From: px, To: deg, Duration: 1.0},
				},
				Stagger: baseStagger(),
			})

			Expect(slot.StartTimed(0, engine.Forward)).To(Succeed())

			frame, err := slot.Tick(0.5)
			Expect(err).NotTo(HaveOccurred(), "mismatch degrades, never halts")
			Expect(frame.Elements["el0"]["rotate"]).To(Equal(px))

			frame, _ = slot.Tick(1.0)
			Expect(frame.Elements["el0"]["rotate"]).To(Equal(deg))

			Expect(warnings.Warnings()).To(HaveLen(1), "mismatch reported once")
			Expect(warnings.Warnings()[0].Code).To(Equal(engine.WarnUnitMismatch))
		})
	})

	Describe("subscriptions", func() {
		It("fans frames out and honors unsubscribe", func() {
			slot = newSlot(engine.SlotConfig{
				Elements:   []string{"el0"},
				Properties: baseProperties(),
				Stagger:    baseStagger(),
			})

			var seen []engine.Frame
			unsubscribe := slot.Subscribe(func(f engine.Frame) {
				seen = append(seen, f)
			})

			Expect(slot.StartTimed(0, engine.Forward)).To(Succeed())
			_, _ = slot.Tick(0.1)
			_, _ = slot.Tick(0.2)
			Expect(seen).To(HaveLen(2))

			unsubscribe()
			_, _ = slot.Tick(0.3)
			Expect(seen).To(HaveLen(2))
		})
	})

	Describe("construction", func() {
		It("fails fast on configuration errors", func() {
			_, err := engine.NewSlot(engine.SlotConfig{
				Elements: []string{"el0"},
				Properties: []timeline.Property{
					{Name: "opacity", Duration: 0},
				},
				Stagger: baseStagger(),
			})
			Expect(err).To(MatchError(timeline.ErrNonPositiveDuration))
		})

		It("requires target elements", func() {
			_, err := engine.NewSlot(engine.SlotConfig{Properties: baseProperties()})
			Expect(err).To(MatchError(engine.ErrNoElements))
		})

		It("completes an empty timeline immediately", func() {
			slot = newSlot(engine.SlotConfig{
				Elements: []string{"el0"},
				Stagger:  baseStagger(),
			})
			Expect(slot.StartTimed(0, engine.Forward)).To(Succeed())
			frame, err := slot.Tick(0)
			Expect(err).NotTo(HaveOccurred())
			Expect(frame.Done).To(BeTrue())
		})
	})
})
