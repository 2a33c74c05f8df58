package probe

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"onidle/internal/config"
)

func writeUptimeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "uptime")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write uptime file: %v", err)
	}
	return path
}

func TestUptimeProbe_ThresholdBoundary(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Verdict
	}{
		{"just above threshold", "601.00 1202.00\n", Idle},
		{"just below threshold", "599.00 1198.00\n", Busy},
		{"exactly at threshold", "600.00 1200.00\n", Busy},
		{"long uptime", "86400.55 170000.12\n", Idle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newUptimeProbe(config.DefaultConfig().Probes)
			p.path = writeUptimeFile(t, tt.content)

			got, err := p.Check(context.Background())
			if err != nil {
				t.Fatalf("Check() failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Check() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestUptimeProbe_UnreadableSource(t *testing.T) {
	p := newUptimeProbe(config.DefaultConfig().Probes)
	p.path = filepath.Join(t.TempDir(), "missing")

	if _, err := p.Check(context.Background()); err == nil {
		t.Error("Expected error for unreadable uptime source")
	}
}

func TestUptimeProbe_MalformedSource(t *testing.T) {
	p := newUptimeProbe(config.DefaultConfig().Probes)
	p.path = writeUptimeFile(t, "not-a-number 12.0\n")

	if _, err := p.Check(context.Background()); err == nil {
		t.Error("Expected error for malformed uptime value")
	}
}

func TestUptimeProbe_Name(t *testing.T) {
	p := newUptimeProbe(config.DefaultConfig().Probes)
	if p.Name() != "uptime" {
		t.Errorf("Expected name uptime, got %s", p.Name())
	}
}

func TestUptimeProbe_CustomThreshold(t *testing.T) {
	cfg := config.DefaultConfig().Probes
	cfg.UptimeMinutes = 1

	p := newUptimeProbe(cfg)
	p.path = writeUptimeFile(t, "61.00 120.00\n")

	got, err := p.Check(context.Background())
	if err != nil {
		t.Fatalf("Check() failed: %v", err)
	}
	if got != Idle {
		t.Errorf("Expected idle with 1 minute threshold at 61s uptime, got %s", got)
	}

	if p.threshold != time.Minute {
		t.Errorf("Expected threshold 1m, got %s", p.threshold)
	}
}
