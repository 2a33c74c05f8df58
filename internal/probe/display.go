package probe

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"onidle/internal/config"
)

// displayProbe asks xprintidle for the milliseconds since the last X11
// input event. The registry only selects it when the helper is on
// PATH.
type displayProbe struct {
	threshold time.Duration
	run       func(ctx context.Context) (string, error)
}

func newDisplayProbe(cfg config.ProbesConfig, facts HostFacts) *displayProbe {
	path := facts.XprintidlePath
	return &displayProbe{
		threshold: time.Duration(cfg.DisplayIdleMinutes) * time.Minute,
		run: func(ctx context.Context) (string, error) {
			return runCommand(ctx, path)
		},
	}
}

func (p *displayProbe) Name() string { return "display-server-inactivity" }

func (p *displayProbe) Check(ctx context.Context) (Verdict, error) {
	out, err := p.run(ctx)
	if err != nil {
		return Unknown, err
	}

	lines := splitLines(out)
	if len(lines) != 1 {
		return Unknown, fmt.Errorf("unexpected xprintidle output: %q", out)
	}

	ms, err := strconv.ParseInt(strings.TrimSpace(lines[0]), 10, 64)
	if err != nil {
		return Unknown, fmt.Errorf("invalid xprintidle value %q: %w", lines[0], err)
	}

	idle := time.Duration(ms) * time.Millisecond
	return boolVerdict(idle >= p.threshold), nil
}
