package config

// Config represents the complete onidle configuration
type Config struct {
	Poll    PollConfig    `yaml:"poll"`
	Probes  ProbesConfig  `yaml:"probes"`
	Logging LoggingConfig `yaml:"logging"`
}

// PollConfig represents polling loop configuration
type PollConfig struct {
	IntervalSeconds int `yaml:"interval_seconds"`
}

// ProbesConfig represents per-probe threshold configuration.
// Each threshold has a single default; a config file overrides it for
// the whole run, never per cycle.
type ProbesConfig struct {
	WakeRecencyMinutes  int     `yaml:"wake_recency_minutes"`
	UptimeMinutes       int     `yaml:"uptime_minutes"`
	LoadFactor          float64 `yaml:"load_factor"`
	TerminalIdleMinutes int     `yaml:"terminal_idle_minutes"`
	DisplayIdleMinutes  int     `yaml:"display_idle_minutes"`
	GPUUtilThresholdPct float64 `yaml:"gpu_util_threshold_pct"`

	// Disabled lists probe names to exclude even when available.
	Disabled []string `yaml:"disabled"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// ValidationError represents a configuration validation error
type ValidationError struct {
	Path    string
	Message string
}

func (e ValidationError) Error() string {
	return e.Path + ": " + e.Message
}
