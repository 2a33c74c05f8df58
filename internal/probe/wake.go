package probe

import (
	"context"
	"fmt"
	"strings"
	"time"

	"onidle/internal/config"
)

// wakeSuffix is the journal line systemd-sleep writes on resume.
const wakeSuffix = "System returned from sleep state."

// wakeRecencyProbe reports Busy for a window after the most recent
// resume-from-sleep event, and Unknown when the retained journal holds
// no such event (a host that never sleeps).
type wakeRecencyProbe struct {
	threshold time.Duration
	now       func() time.Time
	journal   func(ctx context.Context) (string, error)
}

func newWakeRecencyProbe(cfg config.ProbesConfig) *wakeRecencyProbe {
	return &wakeRecencyProbe{
		threshold: time.Duration(cfg.WakeRecencyMinutes) * time.Minute,
		now:       time.Now,
		journal: func(ctx context.Context) (string, error) {
			return runCommand(ctx, "journalctl", "-t", "systemd-sleep")
		},
	}
}

func (p *wakeRecencyProbe) Name() string { return "wake-recency" }

func (p *wakeRecencyProbe) Check(ctx context.Context) (Verdict, error) {
	out, err := p.journal(ctx)
	if err != nil {
		return Unknown, err
	}

	var lastWake string
	for _, line := range splitLines(out) {
		if strings.HasSuffix(line, wakeSuffix) {
			lastWake = line
		}
	}
	if lastWake == "" {
		return Unknown, nil
	}

	now := p.now()
	at, err := parseJournalTimestamp(lastWake, now)
	if err != nil {
		return Unknown, err
	}

	return boolVerdict(now.Sub(at) >= p.threshold), nil
}

// parseJournalTimestamp parses the "Feb 07 09:48:59" prefix of a
// short-format journalctl line. The journal omits the year: assume the
// current one, and step back a year when that would place the event in
// the future (a December wake read in January).
func parseJournalTimestamp(line string, now time.Time) (time.Time, error) {
	if len(line) < 15 {
		return time.Time{}, fmt.Errorf("journal line too short: %q", line)
	}

	stamp, err := time.ParseInLocation("Jan _2 15:04:05", line[:15], now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("unparseable journal timestamp %q: %w", line[:15], err)
	}

	stamp = stamp.AddDate(now.Year()-stamp.Year(), 0, 0)
	if stamp.After(now) {
		stamp = stamp.AddDate(-1, 0, 0)
	}

	return stamp, nil
}
