// Package platform gathers operating system and firmware facts about the
// local host and presents them as the Platform pseudo-class bag.
package platform

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"strings"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"

	"github.com/go-tangra/go-tangra-sysexplorer/internal/collector"
	"github.com/go-tangra/go-tangra-sysexplorer/internal/propbag"
)

// Local reads platform facts from the running host.
type Local struct {
	// IncludeEnv adds the process environment to the bag.
	IncludeEnv bool
	Logger     *slog.Logger

	hostInfo   func(ctx context.Context) (*host.InfoStat, error)
	partitions func(ctx context.Context) ([]disk.PartitionStat, error)
	firmware   func() (Firmware, error)
	hostname   func() (string, error)
	environ    func() []string
}

// NewLocal returns a Local backed by gopsutil and the firmware tables.
func NewLocal(includeEnv bool, logger *slog.Logger) *Local {
	if logger == nil {
		logger = slog.Default()
	}
	return &Local{
		IncludeEnv: includeEnv,
		Logger:     logger,
		hostInfo:   host.InfoWithContext,
		partitions: func(ctx context.Context) ([]disk.PartitionStat, error) {
			return disk.PartitionsWithContext(ctx, false)
		},
		firmware: readFirmware,
		hostname: os.Hostname,
		environ:  os.Environ,
	}
}

// PlatformBag implements collector.PlatformSource. Host information is
// required; logical drives and firmware tables are best effort.
func (l *Local) PlatformBag(ctx context.Context) (propbag.Bag, error) {
	name, err := l.hostname()
	if err != nil {
		return nil, fmt.Errorf("hostname: %w", err)
	}
	info, err := l.hostInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("host info: %w", err)
	}

	bag := propbag.Bag{
		collector.KeyMachineName:     name,
		collector.KeyIs64BitOS:       is64Bit(info.KernelArch),
		collector.KeyOS:              info.OS,
		collector.KeyPlatform:        info.Platform,
		collector.KeyPlatformFamily:  info.PlatformFamily,
		collector.KeyPlatformVersion: info.PlatformVersion,
		collector.KeyKernelVersion:   info.KernelVersion,
		collector.KeyKernelArch:      info.KernelArch,
		collector.KeyRuntimeVersion:  runtime.Version(),
		collector.KeyProcessorCount:  runtime.NumCPU(),
	}

	if parts, err := l.partitions(ctx); err != nil {
		l.Logger.Warn("list logical drives", "error", err)
	} else {
		bag[collector.KeyLogicalDrives] = mountpoints(parts)
	}

	if fw, err := l.firmware(); err != nil {
		l.Logger.Debug("read firmware", "error", err)
	} else {
		bag[collector.KeySMBIOSVersion] = fw.Version
		bag[collector.KeyBIOSVendor] = fw.BIOSVendor
		bag[collector.KeyBIOSVersion] = fw.BIOSVersion
		bag[collector.KeyBIOSReleaseDate] = fw.BIOSReleaseDate
		bag[collector.KeySystemManufacturer] = fw.SystemManufacturer
		bag[collector.KeySystemProduct] = fw.SystemProduct
		bag[collector.KeySystemSerial] = fw.SystemSerial
		bag[collector.KeySystemUUID] = fw.SystemUUID
	}

	if l.IncludeEnv {
		env := append([]string(nil), l.environ()...)
		sort.Strings(env)
		bag[collector.KeyEnvironment] = env
	}
	return bag, nil
}

func mountpoints(parts []disk.PartitionStat) []string {
	seen := make(map[string]bool, len(parts))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p.Mountpoint == "" || seen[p.Mountpoint] {
			continue
		}
		seen[p.Mountpoint] = true
		out = append(out, p.Mountpoint)
	}
	sort.Strings(out)
	return out
}

func is64Bit(kernelArch string) bool {
	switch strings.ToLower(kernelArch) {
	case "x86_64", "amd64", "arm64", "aarch64", "ia64", "ppc64", "ppc64le", "s390x", "riscv64":
		return true
	case "":
		return strings.HasSuffix(runtime.GOARCH, "64") || runtime.GOARCH == "s390x"
	}
	return false
}
