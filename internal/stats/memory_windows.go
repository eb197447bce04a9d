//go:build windows

package stats

import (
	"context"
	"fmt"
	"math"

	"github.com/yusufpapurcu/wmi"
)

type win32ComputerSystem struct {
	TotalPhysicalMemory uint64
}

// TotalMemoryMB returns the installed physical memory in megabytes,
// rounded, as reported by Win32_ComputerSystem.
func TotalMemoryMB(ctx context.Context) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var cs []win32ComputerSystem
	if err := wmi.Query("SELECT TotalPhysicalMemory FROM Win32_ComputerSystem", &cs); err != nil {
		return 0, fmt.Errorf("query total memory: %w", err)
	}

	var mb float64
	for _, c := range cs {
		mb += math.Round(float64(c.TotalPhysicalMemory) / (1024 * 1024))
	}
	return mb, nil
}
