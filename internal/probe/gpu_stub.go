//go:build !cuda

package probe

import (
	"context"

	"onidle/internal/config"
)

// gpuProbeSupported reports whether this build can talk to NVML.
const gpuProbeSupported = false

// gpuProbe is a stand-in for builds without the cuda tag. The registry
// never selects it.
type gpuProbe struct{}

func newGPUProbe(cfg config.ProbesConfig) *gpuProbe { return &gpuProbe{} }

func (p *gpuProbe) Name() string { return "gpu-utilization" }

func (p *gpuProbe) Check(ctx context.Context) (Verdict, error) {
	return Unknown, nil
}
