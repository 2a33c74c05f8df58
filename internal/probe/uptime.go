package probe

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"onidle/internal/config"
)

// uptimeProbe guards against firing right after a boot by requiring a
// minimum total uptime. The first field of /proc/uptime is seconds
// since boot.
type uptimeProbe struct {
	threshold time.Duration
	path      string
}

func newUptimeProbe(cfg config.ProbesConfig) *uptimeProbe {
	return &uptimeProbe{
		threshold: time.Duration(cfg.UptimeMinutes) * time.Minute,
		path:      "/proc/uptime",
	}
}

func (p *uptimeProbe) Name() string { return "uptime" }

func (p *uptimeProbe) Check(ctx context.Context) (Verdict, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return Unknown, fmt.Errorf("failed to read %s: %w", p.path, err)
	}

	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return Unknown, fmt.Errorf("empty %s", p.path)
	}

	seconds, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Unknown, fmt.Errorf("invalid uptime value %q: %w", fields[0], err)
	}

	uptime := time.Duration(seconds * float64(time.Second))
	return boolVerdict(uptime > p.threshold), nil
}
