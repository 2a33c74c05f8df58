package watch

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"onidle/internal/probe"
)

type fakeEvaluator struct {
	results []probe.Result
	idle    bool
	calls   int
}

func (f *fakeEvaluator) RunOnce(ctx context.Context) ([]probe.Result, bool) {
	f.calls++
	return f.results, f.idle
}

func TestModel_CycleMsgUpdatesState(t *testing.T) {
	m := NewModel(&fakeEvaluator{}, time.Minute)

	results := []probe.Result{{Name: "uptime", Verdict: probe.Idle}}
	updated, cmd := m.Update(cycleMsg{at: time.Now(), results: results, idle: true})

	next := updated.(Model)
	if next.cycle != 1 {
		t.Errorf("Expected cycle 1, got %d", next.cycle)
	}
	if !next.idle {
		t.Error("Expected idle decision recorded")
	}
	if len(next.history) != 1 || !next.history[0] {
		t.Errorf("Expected history [true], got %v", next.history)
	}
	if cmd == nil {
		t.Error("Expected a tick command scheduling the next cycle")
	}
}

func TestModel_HistoryBounded(t *testing.T) {
	m := NewModel(&fakeEvaluator{}, time.Minute)

	var model tea.Model = m
	for i := 0; i < historyLength+10; i++ {
		model, _ = model.(Model).Update(cycleMsg{at: time.Now(), idle: i%2 == 0})
	}

	next := model.(Model)
	if len(next.history) != historyLength {
		t.Errorf("Expected history capped at %d, got %d", historyLength, len(next.history))
	}
}

func TestModel_QuitKeys(t *testing.T) {
	for _, key := range []string{"q", "ctrl+c", "esc"} {
		t.Run(key, func(t *testing.T) {
			m := NewModel(&fakeEvaluator{}, time.Minute)

			var msg tea.KeyMsg
			switch key {
			case "ctrl+c":
				msg = tea.KeyMsg{Type: tea.KeyCtrlC}
			case "esc":
				msg = tea.KeyMsg{Type: tea.KeyEsc}
			default:
				msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
			}

			updated, cmd := m.Update(msg)
			if !updated.(Model).quitting {
				t.Errorf("Expected %s to quit", key)
			}
			if cmd == nil {
				t.Errorf("Expected quit command for %s", key)
			}
		})
	}
}

func TestModel_TickRunsEvaluator(t *testing.T) {
	eval := &fakeEvaluator{results: []probe.Result{{Name: "uptime", Verdict: probe.Busy}}}
	m := NewModel(eval, time.Minute)

	_, cmd := m.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("Expected tick to schedule an evaluation")
	}

	msg := cmd()
	cycle, ok := msg.(cycleMsg)
	if !ok {
		t.Fatalf("Expected cycleMsg, got %T", msg)
	}
	if eval.calls != 1 {
		t.Errorf("Expected one evaluator call, got %d", eval.calls)
	}
	if cycle.idle {
		t.Error("Expected busy decision passed through")
	}
}

func TestModel_View(t *testing.T) {
	m := NewModel(&fakeEvaluator{}, time.Minute)

	if !strings.Contains(m.View(), "waiting for first check") {
		t.Errorf("Expected placeholder before the first cycle, got %q", m.View())
	}

	updated, _ := m.Update(cycleMsg{
		at:      time.Now(),
		results: []probe.Result{{Name: "load-average", Verdict: probe.Busy}},
		idle:    false,
	})

	view := updated.(Model).View()
	for _, want := range []string{"cycle 1", "load-average", "decision:"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected view to contain %q, got:\n%s", want, view)
		}
	}
}
