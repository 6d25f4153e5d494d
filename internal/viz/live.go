// Package viz renders an animation slot live in the terminal.
package viz

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/EmanueleCodes/animlab/internal/engine"
)

const historyCapacity = 600

type TickMsg time.Time

// Model drives one slot from bubbletea's tick loop and renders the
// emitted frames.
type Model struct {
	slot      *engine.Slot
	collector *engine.Collector
	sceneName string
	scrubbed  bool

	fps     float64
	clock   float64
	scrub   float64
	running bool
	frame   engine.Frame

	traceLabel string
	history    []float64
	showHelp   bool
}

// NewModel wires a built slot for live playback. The scrubbed flag selects
// whether ticks advance a clock or the arrow keys move a progress head.
func NewModel(slot *engine.Slot, collector *engine.Collector, sceneName string, fps float64, scrubbed bool) Model {
	label := ""
	if len(slot.Elements()) > 0 && len(slot.Master().Names()) > 0 {
		label = fmt.Sprintf("%s.%s", slot.Elements()[0], slot.Master().Names()[0])
	}
	return Model{
		slot:       slot,
		collector:  collector,
		sceneName:  sceneName,
		scrubbed:   scrubbed,
		fps:        fps,
		running:    true,
		traceLabel: label,
		history:    make([]float64, 0, historyCapacity),
	}
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(time.Duration(float64(time.Second)/m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	if !m.scrubbed {
		m.slot.StartTimed(0, engine.Forward)
	}
	return m.tickCmd()
}

// Update handles input and advances playback.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.slot.Cancel()
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.retrigger()
		case "left", "h":
			m.nudge(-0.02)
		case "right", "l":
			m.nudge(0.02)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		m.step()
		return m, m.tickCmd()
	}
	return m, nil
}

// retrigger restarts playback mid-flight, so the configured interrupt
// policy decides how values continue.
func (m *Model) retrigger() {
	if m.scrubbed {
		m.scrub = 0
		return
	}
	m.slot.StartTimed(m.clock, engine.Forward)
}

func (m *Model) nudge(delta float64) {
	if !m.scrubbed {
		return
	}
	m.scrub += delta
	if m.scrub < 0 {
		m.scrub = 0
	}
	if m.scrub > 1 {
		m.scrub = 1
	}
}

func (m *Model) step() {
	if m.scrubbed {
		frame, err := m.slot.FeedScrub(m.scrub)
		if err == nil {
			m.frame = frame
		}
	} else {
		if !m.running {
			return
		}
		m.clock += 1 / m.fps
		frame, err := m.slot.Tick(m.clock)
		if err != nil {
			return
		}
		m.frame = frame
	}
	m.record()
}

func (m *Model) record() {
	if m.traceLabel == "" {
		return
	}
	parts := strings.SplitN(m.traceLabel, ".", 2)
	batch, ok := m.frame.Elements[parts[0]]
	if !ok {
		return
	}
	v, ok := batch[parts[1]]
	if !ok {
		return
	}
	m.history = append(m.history, v.Num)
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

func (m Model) progress() float64 {
	if m.scrubbed {
		return m.scrub
	}
	span := m.slot.Span()
	if span == 0 {
		return 1
	}
	p := m.clock / span
	if p > 1 {
		p = 1
	}
	return p
}

func (m Model) status() string {
	switch {
	case m.frame.Done:
		return statusDone.Render("DONE")
	case !m.running && !m.scrubbed:
		return statusPaused.Render("PAUSED")
	case m.scrubbed:
		return statusRunning.Render(fmt.Sprintf("SCRUB %.0f%%", m.scrub*100))
	default:
		return statusRunning.Render("RUNNING")
	}
}

// View renders the playback screen.
func (m Model) View() string {
	if m.showHelp {
		return helpScreen
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.sceneName)) + "\n")
	s.WriteString(m.status() + "\n\n")

	s.WriteString(ProgressBar(m.progress(), 40) + "\n")
	if !m.scrubbed {
		s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs / %.2fs", m.clock, m.slot.Span())) + "\n")
	}
	if len(m.history) > 0 {
		s.WriteString(labelStyle.Render("Trace") + Sparkline(m.history, 40) + "\n")
	}

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history,
			asciigraph.Height(6), asciigraph.Width(40), asciigraph.Caption(m.traceLabel))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString("\n")
	for _, el := range m.slot.Elements() {
		batch, ok := m.frame.Elements[el]
		if !ok {
			continue
		}
		props := make([]string, 0, len(batch))
		for name := range batch {
			props = append(props, name)
		}
		sort.Strings(props)

		line := make([]string, 0, len(props))
		for _, name := range props {
			line = append(line, fmt.Sprintf("%s=%s", name, batch[name].String()))
		}
		s.WriteString(labelStyle.Render(el) + valueStyle.Render(strings.Join(line, "  ")) + "\n")
	}

	if warnings := m.collector.Warnings(); len(warnings) > 0 {
		s.WriteString("\n" + warnStyle.Render(fmt.Sprintf("%d warning(s): %s", len(warnings), warnings[len(warnings)-1].Message)) + "\n")
	}

	s.WriteString(helpStyle.Render("SP:Pause R:Retrigger Q:Quit ?:Help ←→:Scrub"))
	return s.String()
}

const helpScreen = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume playback    ║
║  R        - Retrigger animation      ║
║  ← →      - Scrub (scrubbed drive)   ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
`
