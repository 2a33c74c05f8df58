package probe

import (
	"errors"
	"testing"
)

func TestDecide_Conservative(t *testing.T) {
	tests := []struct {
		name     string
		verdicts []Verdict
		want     bool
	}{
		{"empty vector", nil, true},
		{"all idle", []Verdict{Idle, Idle, Idle}, true},
		{"all unknown", []Verdict{Unknown, Unknown}, true},
		{"idle and unknown", []Verdict{Idle, Unknown, Idle}, true},
		{"single busy blocks", []Verdict{Idle, Busy, Idle}, false},
		{"busy among unknowns", []Verdict{Unknown, Busy}, false},
		{"all busy", []Verdict{Busy, Busy}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decide(tt.verdicts); got != tt.want {
				t.Errorf("Decide(%v) = %v, want %v", tt.verdicts, got, tt.want)
			}
		})
	}
}

func TestDecide_OrderIndependent(t *testing.T) {
	verdicts := []Verdict{Idle, Unknown, Busy, Idle}

	permutations := [][]Verdict{
		{Idle, Unknown, Busy, Idle},
		{Busy, Idle, Idle, Unknown},
		{Unknown, Busy, Idle, Idle},
		{Idle, Idle, Unknown, Busy},
	}

	want := Decide(verdicts)
	for _, p := range permutations {
		if got := Decide(p); got != want {
			t.Errorf("Decide(%v) = %v, want %v (order must not matter)", p, got, want)
		}
	}
}

func TestCollectVerdicts_ExcludesFailures(t *testing.T) {
	results := []Result{
		{Name: "uptime", Verdict: Idle},
		{Name: "wake-recency", Verdict: Busy, Err: errors.New("journalctl failed")},
		{Name: "load-average", Verdict: Unknown},
	}

	verdicts := CollectVerdicts(results)

	if len(verdicts) != 2 {
		t.Fatalf("Expected 2 verdicts, got %d", len(verdicts))
	}
	if verdicts[0] != Idle || verdicts[1] != Unknown {
		t.Errorf("Expected [idle unknown], got %v", verdicts)
	}

	// The failed probe's Busy verdict must not block the decision
	if !Decide(verdicts) {
		t.Error("Expected failed probe to be excluded from the decision")
	}
}

func TestVerdict_String(t *testing.T) {
	if Idle.String() != "idle" || Busy.String() != "busy" || Unknown.String() != "unknown" {
		t.Errorf("Unexpected verdict names: %s %s %s", Idle, Busy, Unknown)
	}
}
