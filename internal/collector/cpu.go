package collector

import (
	"fmt"
	"strings"

	"github.com/go-tangra/go-tangra-sysexplorer/internal/lookup"
	"github.com/go-tangra/go-tangra-sysexplorer/internal/propbag"
)

// ExtractCPU builds a CPU from a Win32_Processor bag.
func ExtractCPU(bag propbag.Bag) (CPU, error) {
	r := propbag.NewReader(bag)

	c := CPU{
		Name:                      strings.Join(strings.Fields(r.StringOr("Name", "")), " "),
		AddressWidth:              r.Int("AddressWidth"),
		Status:                    propbag.Enum(r, "CpuStatus", lookup.ParseCPUStatus),
		DataWidth:                 r.Int("DataWidth"),
		DeviceID:                  r.String("DeviceID"),
		Family:                    propbag.Enum(r, "Family", lookup.ParseFamily),
		Manufacturer:              r.String("Manufacturer"),
		MaxClockSpeed:             r.Int("MaxClockSpeed"),
		CurrentClockSpeed:         r.Int("CurrentClockSpeed"),
		PartNumber:                strings.TrimSpace(r.StringOr("PartNumber", "")),
		SerialNumber:              strings.TrimSpace(r.StringOr("SerialNumber", "")),
		UniqueID:                  r.StringOr("UniqueId", ""),
		ProcessorType:             r.Int("ProcessorType"),
		ProcessorID:               r.String("ProcessorId"),
		LoadPercentage:            r.IntOr("LoadPercentage", -1),
		Architecture:              propbag.Enum(r, "Architecture", lookup.ParseArchitecture),
		CurrentVoltage:            propbag.EnumOr(r, "CurrentVoltage", lookup.VoltageUnknown, lookup.ParseVoltage),
		NumberOfLogicalProcessors: r.Int("NumberOfLogicalProcessors"),
		NumberOfCores:             r.Int("NumberOfCores"),
		NumberOfEnabledCore:       r.Int("NumberOfEnabledCore"),
		Level:                     r.Int("Level"),
		L2CacheSize:               r.IntOr("L2CacheSize", -1),
		L2CacheSpeed:              r.IntOr("L2CacheSpeed", -1),
		L3CacheSize:               r.IntOr("L3CacheSize", -1),
		L3CacheSpeed:              r.IntOr("L3CacheSpeed", -1),
		ThreadCount:               r.IntOr("ThreadCount", -1),
	}
	c.VirtualizationFirmwareEnabled = r.Bool("VirtualizationFirmwareEnabled")
	if err := r.Err(); err != nil {
		return CPU{}, fmt.Errorf("processor: %w", err)
	}
	return c, nil
}

func (c CPU) String() string {
	var l lines
	l.str("Device ID", c.DeviceID)
	l.str("Name", c.Name)
	l.str("Current Clock Speed (MHz)", fmt.Sprintf("%d, Max. Clock Speed (MHz): %d", c.CurrentClockSpeed, c.MaxClockSpeed))
	l.str("Architecture", c.Architecture.String())
	l.str("Family", c.Family.String())
	l.str("Manufacturer", c.Manufacturer)
	l.int("Number Of Cores", int64(c.NumberOfCores))
	l.int("Number Of Logical Processors", int64(c.NumberOfLogicalProcessors))
	l.int("Number Of Enabled Core", int64(c.NumberOfEnabledCore))
	l.str("Virtualization Firmware", enabled(c.VirtualizationFirmwareEnabled))
	return l.String()
}

func enabled(v bool) string {
	if v {
		return "ENABLED"
	}
	return "DISABLED"
}
