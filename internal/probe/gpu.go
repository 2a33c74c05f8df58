//go:build cuda

package probe

import (
	"context"
	"fmt"

	"github.com/NVIDIA/go-nvml/pkg/nvml"

	"onidle/internal/config"
)

// gpuProbeSupported reports whether this build can talk to NVML.
const gpuProbeSupported = true

// gpuProbe reports Busy while any NVIDIA GPU runs above the
// utilization threshold. NVML is initialized on the first check and
// the outcome memoized for the process lifetime; a host without a
// working driver makes the probe abstain rather than fail every cycle.
type gpuProbe struct {
	thresholdPct  float64
	initAttempted bool
	available     bool
}

func newGPUProbe(cfg config.ProbesConfig) *gpuProbe {
	return &gpuProbe{thresholdPct: cfg.GPUUtilThresholdPct}
}

func (p *gpuProbe) Name() string { return "gpu-utilization" }

func (p *gpuProbe) Check(ctx context.Context) (Verdict, error) {
	if !p.initAttempted {
		p.initAttempted = true
		p.available = nvml.Init() == nvml.SUCCESS
	}
	if !p.available {
		return Unknown, nil
	}

	count, ret := nvml.DeviceGetCount()
	if ret != nvml.SUCCESS {
		return Unknown, fmt.Errorf("nvml device count: %s", nvml.ErrorString(ret))
	}
	if count == 0 {
		return Unknown, nil
	}

	for i := 0; i < count; i++ {
		device, ret := nvml.DeviceGetHandleByIndex(i)
		if ret != nvml.SUCCESS {
			return Unknown, fmt.Errorf("nvml device %d: %s", i, nvml.ErrorString(ret))
		}
		util, ret := device.GetUtilizationRates()
		if ret != nvml.SUCCESS {
			return Unknown, fmt.Errorf("nvml utilization for device %d: %s", i, nvml.ErrorString(ret))
		}
		if float64(util.Gpu) >= p.thresholdPct {
			return Busy, nil
		}
	}

	return Idle, nil
}
