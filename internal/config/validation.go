package config

import (
	"fmt"
)

// KnownProbeNames lists every probe name a config file may disable.
var KnownProbeNames = []string{
	"wake-recency",
	"uptime",
	"load-average",
	"terminal-inactivity",
	"display-server-inactivity",
	"gpu-utilization",
}

// Validate checks if the configuration is valid
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validatePoll()...)
	errors = append(errors, c.validateProbes()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func (c *Config) validatePoll() []ValidationError {
	if c.Poll.IntervalSeconds >= 1 {
		return nil
	}

	return []ValidationError{{
		Path:    "poll.interval_seconds",
		Message: fmt.Sprintf("must be at least 1, got %d", c.Poll.IntervalSeconds),
	}}
}

func (c *Config) validateProbes() []ValidationError {
	var errors []ValidationError

	positiveMinutes := []struct {
		path  string
		value int
	}{
		{"probes.wake_recency_minutes", c.Probes.WakeRecencyMinutes},
		{"probes.uptime_minutes", c.Probes.UptimeMinutes},
		{"probes.terminal_idle_minutes", c.Probes.TerminalIdleMinutes},
		{"probes.display_idle_minutes", c.Probes.DisplayIdleMinutes},
	}
	for _, m := range positiveMinutes {
		if m.value < 1 {
			errors = append(errors, ValidationError{
				Path:    m.path,
				Message: fmt.Sprintf("must be at least 1, got %d", m.value),
			})
		}
	}

	if c.Probes.LoadFactor <= 0 || c.Probes.LoadFactor > 1 {
		errors = append(errors, ValidationError{
			Path:    "probes.load_factor",
			Message: fmt.Sprintf("must be in (0, 1], got %g", c.Probes.LoadFactor),
		})
	}

	if c.Probes.GPUUtilThresholdPct < 0 || c.Probes.GPUUtilThresholdPct > 100 {
		errors = append(errors, ValidationError{
			Path:    "probes.gpu_util_threshold_pct",
			Message: fmt.Sprintf("must be between 0 and 100, got %g", c.Probes.GPUUtilThresholdPct),
		})
	}

	for _, name := range c.Probes.Disabled {
		if !contains(KnownProbeNames, name) {
			errors = append(errors, ValidationError{
				Path:    "probes.disabled",
				Message: fmt.Sprintf("unknown probe name '%s'", name),
			})
		}
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, c.Logging.Level) {
		errors = append(errors, ValidationError{
			Path:    "logging.level",
			Message: fmt.Sprintf("must be one of %v, got '%s'", validLevels, c.Logging.Level),
		})
	}

	validFormats := []string{"json", "text"}
	if !contains(validFormats, c.Logging.Format) {
		errors = append(errors, ValidationError{
			Path:    "logging.format",
			Message: fmt.Sprintf("must be one of %v, got '%s'", validFormats, c.Logging.Format),
		})
	}

	return errors
}

// contains checks if a string is in a slice
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
