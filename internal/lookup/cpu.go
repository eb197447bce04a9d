// Package lookup maps the small integer codes reported by the Win32 CIM
// classes to symbolic names. Every Parse function is total: codes outside
// the documented set map to a fallback value instead of failing.
package lookup

import (
	"fmt"
	"strconv"
)

// Architecture is Win32_Processor.Architecture.
type Architecture int

const (
	ArchNone    Architecture = -1
	ArchX86     Architecture = 0
	ArchMIPS    Architecture = 1
	ArchAlpha   Architecture = 2
	ArchPowerPC Architecture = 3
	ArchARM     Architecture = 5
	ArchIA64    Architecture = 6
	ArchX64     Architecture = 9
	ArchARM64   Architecture = 12
)

var architectureNames = map[Architecture]string{
	ArchNone:    "NONE",
	ArchX86:     "X86",
	ArchMIPS:    "MIPS",
	ArchAlpha:   "ALPHA",
	ArchPowerPC: "POWERPC",
	ArchARM:     "ARM",
	ArchIA64:    "IA64",
	ArchX64:     "X64",
	ArchARM64:   "ARM64",
}

// ParseArchitecture maps a raw code, falling back to ArchNone.
func ParseArchitecture(code int64) Architecture {
	a := Architecture(code)
	if _, ok := architectureNames[a]; !ok || int64(a) != code {
		return ArchNone
	}
	return a
}

func (a Architecture) String() string { return name(architectureNames, a) }

func (a Architecture) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Architecture) UnmarshalText(text []byte) (err error) {
	*a, err = unname(architectureNames, text)
	return err
}

// CPUStatus is Win32_Processor.CpuStatus.
type CPUStatus int

const (
	CPUStatusNone         CPUStatus = -1
	CPUStatusUnknown      CPUStatus = 0
	CPUStatusEnabled      CPUStatus = 1
	CPUStatusDisabledUser CPUStatus = 2
	CPUStatusDisabledBIOS CPUStatus = 3
	CPUStatusIdle         CPUStatus = 4
	CPUStatusReserved     CPUStatus = 5
	CPUStatusOther        CPUStatus = 7
)

var cpuStatusNames = map[CPUStatus]string{
	CPUStatusNone:         "NONE",
	CPUStatusUnknown:      "UNKNOWN",
	CPUStatusEnabled:      "ENABLED",
	CPUStatusDisabledUser: "DISABLED_USER",
	CPUStatusDisabledBIOS: "DISABLED_BIOS",
	CPUStatusIdle:         "IDLE",
	CPUStatusReserved:     "RESERVED",
	CPUStatusOther:        "OTHER",
}

// ParseCPUStatus maps a raw code. Codes 5 and 6 are both reserved.
func ParseCPUStatus(code int64) CPUStatus {
	switch code {
	case 0, 1, 2, 3, 4, 5, 7:
		return CPUStatus(code)
	case 6:
		return CPUStatusReserved
	default:
		return CPUStatusNone
	}
}

func (s CPUStatus) String() string { return name(cpuStatusNames, s) }

func (s CPUStatus) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *CPUStatus) UnmarshalText(text []byte) (err error) {
	*s, err = unname(cpuStatusNames, text)
	return err
}

// Voltage is Win32_Processor.CurrentVoltage when it carries one of the
// legacy voltage-capability codes.
type Voltage int

const (
	VoltageNone    Voltage = -1
	VoltageUnknown Voltage = 0
	Voltage5V      Voltage = 1
	Voltage3V3     Voltage = 2
	Voltage2V9     Voltage = 4
)

var voltageNames = map[Voltage]string{
	VoltageNone:    "NONE",
	VoltageUnknown: "UNKNOWN",
	Voltage5V:      "5V",
	Voltage3V3:     "3.3V",
	Voltage2V9:     "2.9V",
}

// ParseVoltage maps a raw code, falling back to VoltageNone.
func ParseVoltage(code int64) Voltage {
	switch code {
	case 0, 1, 2, 4:
		return Voltage(code)
	default:
		return VoltageNone
	}
}

func (v Voltage) String() string { return name(voltageNames, v) }

func (v Voltage) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (v *Voltage) UnmarshalText(text []byte) (err error) {
	*v, err = unname(voltageNames, text)
	return err
}

func name[K ~int](names map[K]string, k K) string {
	if s, ok := names[k]; ok {
		return s
	}
	return strconv.Itoa(int(k))
}

// unname reverses name: it accepts a symbolic name or a decimal code.
func unname[K ~int](names map[K]string, text []byte) (K, error) {
	s := string(text)
	for k, n := range names {
		if n == s {
			return k, nil
		}
	}
	code, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unknown name %q", s)
	}
	return K(code), nil
}
