package probe

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"onidle/internal/config"
)

// loadAverageProbe compares the 1-minute load average against a
// fraction of the logical CPU count. The comparison is strict: a load
// exactly at the threshold is Busy.
type loadAverageProbe struct {
	threshold float64
	path      string
}

func newLoadAverageProbe(cfg config.ProbesConfig, facts HostFacts) *loadAverageProbe {
	return &loadAverageProbe{
		threshold: cfg.LoadFactor * float64(facts.CPUCount),
		path:      "/proc/loadavg",
	}
}

func (p *loadAverageProbe) Name() string { return "load-average" }

func (p *loadAverageProbe) Check(ctx context.Context) (Verdict, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return Unknown, fmt.Errorf("failed to read %s: %w", p.path, err)
	}

	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return Unknown, fmt.Errorf("empty %s", p.path)
	}

	load, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Unknown, fmt.Errorf("invalid load average %q: %w", fields[0], err)
	}

	return boolVerdict(load < p.threshold), nil
}
