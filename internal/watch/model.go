// Package watch renders a live dashboard over continuous idle
// observation.
package watch

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"onidle/internal/probe"
	"onidle/internal/report"
)

// historyLength is how many past decisions the strip at the bottom
// keeps.
const historyLength = 30

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	idleDotStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	busyDotStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Evaluator runs one evaluation cycle. Implemented by poll.Loop.
type Evaluator interface {
	RunOnce(ctx context.Context) ([]probe.Result, bool)
}

type cycleMsg struct {
	at      time.Time
	results []probe.Result
	idle    bool
}

type tickMsg time.Time

// Model is the bubbletea model for the watch dashboard.
type Model struct {
	evaluator Evaluator
	interval  time.Duration

	cycle    int
	lastAt   time.Time
	results  []probe.Result
	idle     bool
	history  []bool
	quitting bool
}

// NewModel creates a watch model polling through the evaluator.
func NewModel(evaluator Evaluator, interval time.Duration) Model {
	return Model{evaluator: evaluator, interval: interval}
}

// Init schedules the first evaluation cycle immediately.
func (m Model) Init() tea.Cmd {
	return m.runCycle
}

// runCycle performs one evaluation off the update loop and delivers
// its outcome as a message.
func (m Model) runCycle() tea.Msg {
	results, idle := m.evaluator.RunOnce(context.Background())
	return cycleMsg{at: time.Now(), results: results, idle: idle}
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case cycleMsg:
		m.cycle++
		m.lastAt = msg.at
		m.results = msg.results
		m.idle = msg.idle
		m.history = append(m.history, msg.idle)
		if len(m.history) > historyLength {
			m.history = m.history[len(m.history)-historyLength:]
		}
		return m, tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })

	case tickMsg:
		return m, m.runCycle
	}

	return m, nil
}

// View renders the dashboard
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("onidle watch"))
	b.WriteString("\n\n")

	if m.cycle == 0 {
		b.WriteString(dimStyle.Render("waiting for first check..."))
		b.WriteString("\n")
		return b.String()
	}

	fmt.Fprintf(&b, "cycle %d at %s (every %s)\n\n", m.cycle, m.lastAt.Format(time.Stamp), m.interval)

	for _, r := range m.results {
		fmt.Fprintf(&b, "  %-28s %s\n", r.Name, report.RenderResult(r))
	}

	fmt.Fprintf(&b, "\n  decision: %s\n\n", report.RenderDecision(m.idle))

	b.WriteString("  " + renderHistory(m.history) + "\n\n")
	b.WriteString(dimStyle.Render("q to quit"))
	b.WriteString("\n")

	return b.String()
}

// renderHistory draws the most recent decisions as a strip of dots,
// oldest first.
func renderHistory(history []bool) string {
	var b strings.Builder
	for _, idle := range history {
		if idle {
			b.WriteString(idleDotStyle.Render("●"))
		} else {
			b.WriteString(busyDotStyle.Render("●"))
		}
	}
	return b.String()
}
