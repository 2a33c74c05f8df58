package probe

import (
	"context"
	"errors"
	"testing"
	"time"

	"onidle/internal/config"
)

func wakeProbeAt(now time.Time, journal string, err error) *wakeRecencyProbe {
	p := newWakeRecencyProbe(config.DefaultConfig().Probes)
	p.now = func() time.Time { return now }
	p.journal = func(ctx context.Context) (string, error) {
		return journal, err
	}
	return p
}

func TestWakeProbe_RecentWakeIsBusy(t *testing.T) {
	now := time.Date(2023, time.February, 7, 9, 52, 0, 0, time.Local)
	journal := "Feb 07 09:30:00 fedora systemd-sleep[129000]: Entering sleep state 'suspend'...\n" +
		"Feb 07 09:48:59 fedora systemd-sleep[129721]: System returned from sleep state.\n"

	p := wakeProbeAt(now, journal, nil)
	got, err := p.Check(context.Background())
	if err != nil {
		t.Fatalf("Check() failed: %v", err)
	}
	if got != Busy {
		t.Errorf("Expected busy 3 minutes after wake, got %s", got)
	}
}

func TestWakeProbe_OldWakeIsIdle(t *testing.T) {
	now := time.Date(2023, time.February, 7, 10, 30, 0, 0, time.Local)
	journal := "Feb 07 09:48:59 fedora systemd-sleep[129721]: System returned from sleep state.\n"

	p := wakeProbeAt(now, journal, nil)
	got, err := p.Check(context.Background())
	if err != nil {
		t.Fatalf("Check() failed: %v", err)
	}
	if got != Idle {
		t.Errorf("Expected idle long after wake, got %s", got)
	}
}

func TestWakeProbe_LastWakeWins(t *testing.T) {
	now := time.Date(2023, time.February, 7, 10, 0, 0, 0, time.Local)
	// The second resume is 5 minutes old; an earlier one the day before
	// must not mask it
	journal := "Feb 06 08:00:00 fedora systemd-sleep[100]: System returned from sleep state.\n" +
		"Feb 07 09:55:00 fedora systemd-sleep[200]: System returned from sleep state.\n"

	p := wakeProbeAt(now, journal, nil)
	got, err := p.Check(context.Background())
	if err != nil {
		t.Fatalf("Check() failed: %v", err)
	}
	if got != Busy {
		t.Errorf("Expected busy from the most recent wake, got %s", got)
	}
}

func TestWakeProbe_NoWakeEventIsUnknown(t *testing.T) {
	now := time.Date(2023, time.February, 7, 10, 0, 0, 0, time.Local)
	journal := "Feb 07 09:30:00 fedora systemd-sleep[129000]: Entering sleep state 'suspend'...\n"

	p := wakeProbeAt(now, journal, nil)
	got, err := p.Check(context.Background())
	if err != nil {
		t.Fatalf("Check() failed: %v", err)
	}
	if got != Unknown {
		t.Errorf("Expected unknown without wake events, got %s", got)
	}
}

func TestWakeProbe_JournalFailure(t *testing.T) {
	now := time.Date(2023, time.February, 7, 10, 0, 0, 0, time.Local)
	p := wakeProbeAt(now, "", errors.New("journalctl failed"))

	if _, err := p.Check(context.Background()); err == nil {
		t.Error("Expected error when journalctl fails")
	}
}

func TestParseJournalTimestamp_YearWrap(t *testing.T) {
	// A December wake read in January belongs to the previous year
	now := time.Date(2024, time.January, 2, 3, 0, 0, 0, time.Local)

	at, err := parseJournalTimestamp("Dec 31 23:59:00 fedora systemd-sleep[1]: System returned from sleep state.", now)
	if err != nil {
		t.Fatalf("parseJournalTimestamp() failed: %v", err)
	}

	if at.Year() != 2023 {
		t.Errorf("Expected year 2023 for a wrapped timestamp, got %d", at.Year())
	}
	if at.After(now) {
		t.Error("Expected parsed timestamp to be in the past")
	}
}

func TestParseJournalTimestamp_Malformed(t *testing.T) {
	now := time.Now()

	if _, err := parseJournalTimestamp("short", now); err == nil {
		t.Error("Expected error for truncated journal line")
	}
	if _, err := parseJournalTimestamp("not a timestamp here at all", now); err == nil {
		t.Error("Expected error for unparseable timestamp")
	}
}
