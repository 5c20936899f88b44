package main

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// hostInfo summarizes the machine the render runs on
type hostInfo struct {
	CPUModel        string
	LogicalCores    int
	TotalMemory     uint64
	AvailableMemory uint64
}

// probeHost queries CPU and memory details. Fields that cannot be read keep
// their fallbacks so rendering never depends on the probe.
func probeHost() hostInfo {
	info := hostInfo{
		CPUModel:     "unknown",
		LogicalCores: runtime.NumCPU(),
	}

	if cpus, err := cpu.Info(); err == nil && len(cpus) > 0 {
		info.CPUModel = cpus[0].ModelName
	} else if err != nil {
		logger.Debugf("cpu info unavailable: %v", err)
	}

	if cores, err := cpu.Counts(true); err == nil && cores > 0 {
		info.LogicalCores = cores
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		info.TotalMemory = vm.Total
		info.AvailableMemory = vm.Available
	} else {
		logger.Debugf("memory info unavailable: %v", err)
	}

	return info
}

func (h hostInfo) String() string {
	return fmt.Sprintf("%s, %d logical cores, %s free of %s",
		h.CPUModel, h.LogicalCores, formatBytes(h.AvailableMemory), formatBytes(h.TotalMemory))
}

func formatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
