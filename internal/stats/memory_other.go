//go:build !windows

package stats

import (
	"context"
	"fmt"
	"math"

	"github.com/shirou/gopsutil/v4/mem"
)

// TotalMemoryMB returns the installed physical memory in megabytes,
// rounded.
func TotalMemoryMB(ctx context.Context) (float64, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("query total memory: %w", err)
	}
	return math.Round(float64(vm.Total) / (1024 * 1024)), nil
}
