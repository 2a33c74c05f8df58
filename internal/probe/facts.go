package probe

import (
	"os/exec"
	"runtime"
)

// HostFacts holds host properties that cannot change during a run.
// They are resolved exactly once, when the registry is built, and
// shared read-only by the probes.
type HostFacts struct {
	// CPUCount is the number of logical CPUs.
	CPUCount int

	// XprintidlePath is the absolute path of the xprintidle helper, or
	// empty when the tool is not on PATH.
	XprintidlePath string
}

// GatherHostFacts resolves the host facts for this process.
func GatherHostFacts() HostFacts {
	facts := HostFacts{CPUCount: runtime.NumCPU()}
	if path, err := exec.LookPath("xprintidle"); err == nil {
		facts.XprintidlePath = path
	}
	return facts
}
