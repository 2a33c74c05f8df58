package config

// Default thresholds. Each is the single tunable for its probe; the
// config file overrides these for a whole run.
const (
	// DefaultIntervalSeconds is the pause between evaluation cycles.
	DefaultIntervalSeconds = 60

	// DefaultWakeRecencyMinutes is how long after a resume-from-sleep
	// event the host is still considered busy.
	DefaultWakeRecencyMinutes = 10

	// DefaultUptimeMinutes guards against firing right after a boot.
	DefaultUptimeMinutes = 10

	// DefaultLoadFactor is the fraction of the logical CPU count the
	// 1-minute load average must stay strictly below.
	DefaultLoadFactor = 0.5

	// DefaultTerminalIdleMinutes is the minimum inactivity across all
	// logged-in sessions.
	DefaultTerminalIdleMinutes = 5

	// DefaultDisplayIdleMinutes is the minimum X11 input inactivity.
	DefaultDisplayIdleMinutes = 5

	// DefaultGPUUtilThresholdPct is the GPU utilization below which a
	// GPU counts as idle.
	DefaultGPUUtilThresholdPct = 10.0
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		Poll: PollConfig{
			IntervalSeconds: DefaultIntervalSeconds,
		},
		Probes: ProbesConfig{
			WakeRecencyMinutes:  DefaultWakeRecencyMinutes,
			UptimeMinutes:       DefaultUptimeMinutes,
			LoadFactor:          DefaultLoadFactor,
			TerminalIdleMinutes: DefaultTerminalIdleMinutes,
			DisplayIdleMinutes:  DefaultDisplayIdleMinutes,
			GPUUtilThresholdPct: DefaultGPUUtilThresholdPct,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
