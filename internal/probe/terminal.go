package probe

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"onidle/internal/config"
)

// terminalInactivityProbe inspects the idle column of `who -u`. The
// minimum inactivity across all logged-in sessions decides: a single
// currently-active session contributes zero and keeps the host busy
// through the threshold, not through a special case.
type terminalInactivityProbe struct {
	threshold time.Duration
	who       func(ctx context.Context) (string, error)
}

func newTerminalInactivityProbe(cfg config.ProbesConfig) *terminalInactivityProbe {
	return &terminalInactivityProbe{
		threshold: time.Duration(cfg.TerminalIdleMinutes) * time.Minute,
		who: func(ctx context.Context) (string, error) {
			return runCommand(ctx, "who", "-u")
		},
	}
}

func (p *terminalInactivityProbe) Name() string { return "terminal-inactivity" }

func (p *terminalInactivityProbe) Check(ctx context.Context) (Verdict, error) {
	out, err := p.who(ctx)
	if err != nil {
		return Unknown, err
	}

	// greg     pts/2        2023-02-06 15:17   .         59698 (:0)
	// greg     pts/3        2023-02-06 15:56 20:13       65114 (:0)
	var minIdle time.Duration
	found := false
	for _, line := range splitLines(out) {
		fields := strings.Fields(line)
		if len(fields) < 5 {
			return Unknown, fmt.Errorf("unexpected who output: %q", line)
		}

		idle, ok, err := parseWhoIdle(fields[4])
		if err != nil {
			return Unknown, err
		}
		if !ok {
			continue
		}
		if !found || idle < minIdle {
			minIdle = idle
			found = true
		}
	}

	if !found {
		// Nobody logged in, or only sessions without a usable
		// inactivity value.
		return Unknown, nil
	}

	return boolVerdict(minIdle >= p.threshold), nil
}

// parseWhoIdle parses the idle column of `who -u`: "." marks a session
// active within the last minute, "HH:MM" gives the inactivity
// duration, "old" means inactive for more than a day. The ok result is
// false for values carrying no duration.
func parseWhoIdle(s string) (time.Duration, bool, error) {
	if s == "." {
		return 0, true, nil
	}
	if !strings.Contains(s, ":") {
		return 0, false, nil
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, false, fmt.Errorf("unexpected who idle value %q", s)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false, fmt.Errorf("unexpected who idle value %q", s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false, fmt.Errorf("unexpected who idle value %q", s)
	}

	return time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute, true, nil
}
