// Package report formats per-cycle progress for the operator.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"onidle/internal/probe"
	"onidle/internal/runner"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	idleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	busyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	unknownStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	failedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// Console writes human-readable cycle reports. In quiet mode only the
// start and action lines are printed; per-cycle detail needs verbose.
type Console struct {
	out     io.Writer
	verbose bool
}

// NewConsole creates a reporter writing to out.
func NewConsole(out io.Writer, verbose bool) *Console {
	return &Console{out: out, verbose: verbose}
}

// Starting prints the one-shot banner. It prints regardless of
// verbosity so a quiet run still shows what will happen.
func (c *Console) Starting(at time.Time, cmdline []string) {
	fmt.Fprintf(c.out, "onidle starting at %s with command '%s'\n",
		at.Format(time.UnixDate), strings.Join(cmdline, " "))
}

// Cycle prints one evaluation cycle.
func (c *Console) Cycle(cycle int, at time.Time, results []probe.Result, idle bool) {
	if !c.verbose {
		return
	}

	header := fmt.Sprintf(">>> idle check %d at %s", cycle, at.Format(time.Stamp))
	fmt.Fprintln(c.out, headerStyle.Render(header))
	for _, r := range results {
		fmt.Fprintf(c.out, "  %-28s %s\n", r.Name, RenderResult(r))
	}
	fmt.Fprintf(c.out, "  decision: %s (from %d probes)\n\n", RenderDecision(idle), len(results))
}

// Acting prints the action launch line.
func (c *Console) Acting(at time.Time, waited time.Duration, cmdline []string) {
	fmt.Fprintf(c.out, "running command at %s after %s\n",
		at.Format(time.UnixDate), waited.Round(time.Second))
}

// Acted prints the command outcome. Success stays quiet; the command's
// own output already went to the terminal.
func (c *Console) Acted(res runner.Result) {
	if res.ExitCode != 0 {
		fmt.Fprintf(c.out, "command exited with %d\n", res.ExitCode)
	}
}

// RenderResult formats one probe result with verdict coloring.
func RenderResult(r probe.Result) string {
	if r.Err != nil {
		return failedStyle.Render(fmt.Sprintf("failed: %v", r.Err))
	}
	switch r.Verdict {
	case probe.Idle:
		return idleStyle.Render("idle")
	case probe.Busy:
		return busyStyle.Render("busy")
	default:
		return unknownStyle.Render("unknown")
	}
}

// RenderDecision formats the aggregate decision.
func RenderDecision(idle bool) string {
	if idle {
		return idleStyle.Render("idle")
	}
	return busyStyle.Render("not idle")
}
