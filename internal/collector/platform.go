package collector

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-tangra/go-tangra-sysexplorer/internal/propbag"
)

// Property names of the Platform pseudo-class.
const (
	KeyMachineName        = "MachineName"
	KeyIs64BitOS          = "Is64BitOperatingSystem"
	KeyOS                 = "OS"
	KeyPlatform           = "Platform"
	KeyPlatformFamily     = "PlatformFamily"
	KeyPlatformVersion    = "PlatformVersion"
	KeyKernelVersion      = "KernelVersion"
	KeyKernelArch         = "KernelArch"
	KeyRuntimeVersion     = "RuntimeVersion"
	KeyProcessorCount     = "ProcessorCount"
	KeyLogicalDrives      = "LogicalDrives"
	KeyEnvironment        = "Environment"
	KeySMBIOSVersion      = "SMBIOSVersion"
	KeyBIOSVendor         = "BIOSVendor"
	KeyBIOSVersion        = "BIOSVersion"
	KeyBIOSReleaseDate    = "BIOSReleaseDate"
	KeySystemManufacturer = "SystemManufacturer"
	KeySystemProduct      = "SystemProduct"
	KeySystemSerial       = "SystemSerial"
	KeySystemUUID         = "SystemUUID"
)

// PlatformSource supplies the Platform pseudo-class bag.
type PlatformSource interface {
	PlatformBag(ctx context.Context) (propbag.Bag, error)
}

// ExtractPlatform builds a Platform from a Platform pseudo-class bag.
func ExtractPlatform(bag propbag.Bag) (Platform, error) {
	r := propbag.NewReader(bag)

	p := Platform{
		MachineName:        r.String(KeyMachineName),
		Is64BitOS:          r.Bool(KeyIs64BitOS),
		OS:                 r.StringOr(KeyOS, ""),
		Platform:           r.StringOr(KeyPlatform, ""),
		PlatformFamily:     r.StringOr(KeyPlatformFamily, ""),
		PlatformVersion:    r.StringOr(KeyPlatformVersion, ""),
		KernelVersion:      r.StringOr(KeyKernelVersion, ""),
		KernelArch:         r.StringOr(KeyKernelArch, ""),
		RuntimeVersion:     r.StringOr(KeyRuntimeVersion, ""),
		ProcessorCount:     r.Int(KeyProcessorCount),
		LogicalDrives:      r.Strings(KeyLogicalDrives),
		Environment:        r.Strings(KeyEnvironment),
		SMBIOSVersion:      r.StringOr(KeySMBIOSVersion, ""),
		BIOSVendor:         r.StringOr(KeyBIOSVendor, ""),
		BIOSVersion:        r.StringOr(KeyBIOSVersion, ""),
		BIOSReleaseDate:    r.StringOr(KeyBIOSReleaseDate, ""),
		SystemManufacturer: r.StringOr(KeySystemManufacturer, ""),
		SystemProduct:      r.StringOr(KeySystemProduct, ""),
		SystemSerial:       r.StringOr(KeySystemSerial, ""),
		SystemUUID:         r.StringOr(KeySystemUUID, ""),
	}
	if err := r.Err(); err != nil {
		return Platform{}, fmt.Errorf("platform: %w", err)
	}
	return p, nil
}

func (p Platform) String() string {
	var l lines
	l.bool("Is 64 Bit Operating System", p.Is64BitOS)
	l.str("Machine Name", p.MachineName)
	l.str("OS", p.OS)
	l.str("Platform", strings.TrimSpace(p.Platform+" "+p.PlatformVersion))
	l.str("Platform Family", p.PlatformFamily)
	l.str("Kernel Version", p.KernelVersion)
	l.str("Kernel Architecture", p.KernelArch)
	l.str("Runtime Version", p.RuntimeVersion)
	l.int("Processor Count", int64(p.ProcessorCount))
	l.str("Logical Drives", strings.Join(p.LogicalDrives, ", "))
	l.str("SMBIOS Version", p.SMBIOSVersion)
	l.str("BIOS Vendor", p.BIOSVendor)
	l.str("BIOS Version", p.BIOSVersion)
	l.str("BIOS Release Date", p.BIOSReleaseDate)
	l.str("System Manufacturer", p.SystemManufacturer)
	l.str("System Product", p.SystemProduct)
	l.str("System Serial Number", p.SystemSerial)
	l.str("System UUID", p.SystemUUID)
	if len(p.Environment) > 0 {
		l.int("Environment Variables", int64(len(p.Environment)))
		for _, kv := range p.Environment {
			l.b.WriteString("  ")
			l.b.WriteString(kv)
			l.b.WriteByte('\n')
		}
	}
	return l.String()
}
