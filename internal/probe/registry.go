package probe

import (
	"onidle/internal/config"
	"onidle/internal/logging"
)

// Registry holds the probe set selected for this host. It is built
// once at startup and read-only afterwards; evaluation order is the
// table order below, which keeps reporting deterministic.
type Registry struct {
	facts  HostFacts
	probes []Probe
}

// capability pairs a probe constructor with its availability check.
// The table is consulted exactly once, when the registry is built.
type capability struct {
	name      string
	available func(facts HostFacts) bool
	build     func(cfg config.ProbesConfig, facts HostFacts) Probe
}

func capabilities() []capability {
	always := func(HostFacts) bool { return true }
	return []capability{
		{
			name:      "wake-recency",
			available: always,
			build: func(cfg config.ProbesConfig, _ HostFacts) Probe {
				return newWakeRecencyProbe(cfg)
			},
		},
		{
			name:      "uptime",
			available: always,
			build: func(cfg config.ProbesConfig, _ HostFacts) Probe {
				return newUptimeProbe(cfg)
			},
		},
		{
			name:      "load-average",
			available: always,
			build: func(cfg config.ProbesConfig, facts HostFacts) Probe {
				return newLoadAverageProbe(cfg, facts)
			},
		},
		{
			name:      "terminal-inactivity",
			available: always,
			build: func(cfg config.ProbesConfig, _ HostFacts) Probe {
				return newTerminalInactivityProbe(cfg)
			},
		},
		{
			name:      "display-server-inactivity",
			available: func(facts HostFacts) bool { return facts.XprintidlePath != "" },
			build: func(cfg config.ProbesConfig, facts HostFacts) Probe {
				return newDisplayProbe(cfg, facts)
			},
		},
		{
			name:      "gpu-utilization",
			available: func(HostFacts) bool { return gpuProbeSupported },
			build: func(cfg config.ProbesConfig, _ HostFacts) Probe {
				return newGPUProbe(cfg)
			},
		},
	}
}

// NewRegistry builds the probe set for this host: universal probes
// first, optional ones only when their prerequisite is present, minus
// any the config disables. Building the set never executes a probe.
func NewRegistry(cfg config.ProbesConfig, facts HostFacts, logger *logging.Logger) *Registry {
	disabled := make(map[string]bool, len(cfg.Disabled))
	for _, name := range cfg.Disabled {
		disabled[name] = true
	}

	r := &Registry{facts: facts}
	for _, c := range capabilities() {
		if disabled[c.name] {
			logger.Debug("registry.probe.disabled", "Probe disabled by config", map[string]interface{}{
				"probe": c.name,
			})
			continue
		}
		if !c.available(facts) {
			logger.Debug("registry.probe.unavailable", "Probe prerequisite missing", map[string]interface{}{
				"probe": c.name,
			})
			continue
		}
		r.probes = append(r.probes, c.build(cfg, facts))
	}

	logger.Debug("registry.built", "Probe set selected", map[string]interface{}{
		"probes":    r.Names(),
		"cpu_count": facts.CPUCount,
	})

	return r
}

// Probes returns the selected probes in evaluation order.
func (r *Registry) Probes() []Probe {
	return r.probes
}

// Names returns the selected probe names without executing any probe.
func (r *Registry) Names() []string {
	names := make([]string, len(r.probes))
	for i, p := range r.probes {
		names[i] = p.Name()
	}
	return names
}

// Facts returns the host facts resolved when the registry was built.
func (r *Registry) Facts() HostFacts {
	return r.facts
}
