package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/mewbak/sile/internal/debug"
	"github.com/mewbak/sile/internal/replay"
	"github.com/mewbak/sile/internal/sessionlog"
)

const (
	ringCapacity = 256
	tracePane    = 5
	stackPane    = 8
	autoplayTick = 400 * time.Millisecond
)

type viewerModel struct {
	name      string
	events    []sessionlog.Event
	traceback bool

	session *replay.Session
	ring    *debug.RingLogger
	index   int

	autoplay bool
	spinner  spinner.Model
	prog     progress.Model
	width    int
}

type playMsg struct{}

// NewViewerModel returns a Bubble Tea model that steps through a recorded
// session, showing the stack, the location head, and the push/pop trace at
// every position. With autoplay the session starts advancing on its own.
func NewViewerModel(name string, events []sessionlog.Event, traceback, autoplay bool) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76 // Default width

	m := &viewerModel{
		name:      name,
		events:    events,
		traceback: traceback,
		autoplay:  autoplay,
		spinner:   sp,
		prog:      prog,
		width:     80,
	}
	m.seek(0)
	return m
}

func (m *viewerModel) Init() tea.Cmd {
	if m.autoplay {
		return tea.Batch(m.spinner.Tick, m.play())
	}
	return m.spinner.Tick
}

// seek rebuilds the session from the start up to position n. Stacks only
// move forward, so stepping back means replaying the prefix onto a fresh
// stack and a fresh trace ring.
func (m *viewerModel) seek(n int) {
	if n < 0 {
		n = 0
	}
	if n > len(m.events) {
		n = len(m.events)
	}
	m.ring = debug.NewRingLogger(ringCapacity, debug.ParseCategories(debug.CategoryStack))
	m.session = replay.NewSession(replay.Options{Traceback: m.traceback, Debug: m.ring})
	for i := 0; i < n; i++ {
		m.session.Apply(m.events[i])
	}
	m.index = n
}

func (m *viewerModel) step() tea.Cmd {
	if m.index >= len(m.events) {
		m.autoplay = false
		return nil
	}
	m.session.Apply(m.events[m.index])
	m.index++
	return m.prog.SetPercent(m.position())
}

func (m *viewerModel) position() float64 {
	if len(m.events) == 0 {
		return 1.0
	}
	return float64(m.index) / float64(len(m.events))
}

func (m *viewerModel) play() tea.Cmd {
	return tea.Tick(autoplayTick, func(time.Time) tea.Msg { return playMsg{} })
}

func (m *viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l":
			m.autoplay = false
			return m, m.step()
		case "left", "h":
			m.autoplay = false
			m.seek(m.index - 1)
			return m, m.prog.SetPercent(m.position())
		case "home", "g":
			m.autoplay = false
			m.seek(0)
			return m, m.prog.SetPercent(m.position())
		case "end", "G":
			m.autoplay = false
			m.seek(len(m.events))
			return m, m.prog.SetPercent(m.position())
		case " ":
			m.autoplay = !m.autoplay
			if m.autoplay {
				return m, m.play()
			}
			return m, nil
		}
		return m, nil
	case playMsg:
		if !m.autoplay {
			return m, nil
		}
		return m, tea.Batch(m.step(), m.play())
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case progress.FrameMsg:
		progressModel, cmd := m.prog.Update(msg)
		m.prog = progressModel.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *viewerModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	header := fmt.Sprintf("%s · event %d/%d", m.name, m.index, len(m.events))
	if m.autoplay {
		header = fmt.Sprintf("%s %s", m.spinner.View(), header)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	if m.index > 0 {
		b.WriteString(dimStyle.Render("  last: " + eventLabel(m.events[m.index-1])))
		b.WriteString("\n")
	}

	stack := m.session.Stack()
	b.WriteString(labelStyle.Render("  location: "))
	b.WriteString(truncate(stack.LocationInfo(), m.width-13))
	b.WriteString("\n\n")

	frames := stack.Frames()
	b.WriteString(labelStyle.Render(fmt.Sprintf("  stack (%d):", len(frames))))
	b.WriteString("\n")
	shown := len(frames)
	if shown > stackPane {
		shown = stackPane
	}
	for i := 0; i < shown; i++ {
		frame := frames[len(frames)-1-i]
		marker := "  "
		if i == 0 {
			marker = "▸ "
		}
		b.WriteString(fmt.Sprintf("    %s%s\n", marker, truncate(frame.Render(false), m.width-8)))
	}
	if len(frames) > shown {
		b.WriteString(dimStyle.Render(fmt.Sprintf("    … %d more\n", len(frames)-shown)))
	}

	res := m.session.Result(m.name)
	b.WriteString("\n")
	summary := fmt.Sprintf("  warnings: %d   markers: %d", len(res.Warnings), len(res.Markers))
	if len(res.Warnings) > 0 {
		b.WriteString(warnStyle.Render(summary))
	} else {
		b.WriteString(summary)
	}
	b.WriteString("\n\n")

	lines := m.ring.Snapshot()
	if len(lines) > 0 {
		b.WriteString(labelStyle.Render("  trace:"))
		b.WriteString("\n")
		start := len(lines) - tracePane
		if start < 0 {
			start = 0
		}
		for _, line := range lines[start:] {
			text := strings.TrimRight(string(debug.FormatLine(line, debug.FormatText)), "\n")
			b.WriteString("    " + truncate(text, m.width-6) + "\n")
		}
		b.WriteString("\n")
	}

	if m.index == len(m.events) {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  ←/→ step · space autoplay · g/G ends · q quit"))
	b.WriteString("\n")

	return b.String()
}

// eventLabel renders one recorded event for the step indicator.
func eventLabel(ev sessionlog.Event) string {
	switch ev.Kind {
	case sessionlog.EventPushCommand, sessionlog.EventPushContent:
		return fmt.Sprintf("%s \\%s (id %d)", ev.Kind, ev.Command, ev.ID)
	case sessionlog.EventPushText:
		return fmt.Sprintf("%s %q (id %d)", ev.Kind, ev.Text, ev.ID)
	case sessionlog.EventPushFrame:
		return fmt.Sprintf("%s (id %d)", ev.Kind, ev.ID)
	case sessionlog.EventPop:
		return fmt.Sprintf("pop (id %d)", ev.ID)
	case sessionlog.EventFile:
		return fmt.Sprintf("file %s", ev.File)
	case sessionlog.EventMark:
		return fmt.Sprintf("mark %q", ev.Message)
	default:
		return ev.Kind.String()
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
