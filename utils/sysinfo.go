package utils

import (
	"fmt"
	"runtime"

	"github.com/klauspost/cpuid/v2"
)

// CPUInfo returns a one line description of the host processor.
func CPUInfo() string {
	brand := cpuid.CPU.BrandName
	if brand == "" {
		brand = runtime.GOARCH
	}
	physical := cpuid.CPU.PhysicalCores
	logical := cpuid.CPU.LogicalCores
	if logical == 0 {
		logical = runtime.NumCPU()
	}
	if physical == 0 {
		return fmt.Sprintf("%s (%d logical cores)", brand, logical)
	}
	return fmt.Sprintf("%s (%d physical / %d logical cores)", brand, physical, logical)
}
