package lookup

// FormFactor is Win32_PhysicalMemory.FormFactor.
type FormFactor int

const (
	FormFactorUnknown FormFactor = 0
	FormFactorOther   FormFactor = 1
	FormFactorDIMM    FormFactor = 8
	FormFactorSODIMM  FormFactor = 12
)

var formFactorNames = map[FormFactor]string{
	0: "UNKNOWN", 1: "OTHER", 2: "SIP", 3: "DIP", 4: "ZIP", 5: "SOJ", 6: "PROPRIETARY",
	7: "SIMM", 8: "DIMM", 9: "TSOP", 10: "PGA", 11: "RIMM", 12: "SODIMM", 13: "SRIMM",
	14: "SMD", 15: "SSMP", 16: "QFP", 17: "TQFP", 18: "SOIC", 19: "LCC", 20: "PLCC",
	21: "BGA", 22: "FPBGA", 23: "LGA",
}

// ParseFormFactor maps a raw code, falling back to FormFactorUnknown.
func ParseFormFactor(code int64) FormFactor {
	if code < 0 || code > 23 {
		return FormFactorUnknown
	}
	return FormFactor(code)
}

func (f FormFactor) String() string { return name(formFactorNames, f) }

func (f FormFactor) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *FormFactor) UnmarshalText(text []byte) (err error) {
	*f, err = unname(formFactorNames, text)
	return err
}

// VideoArchitecture is Win32_VideoController.VideoArchitecture.
type VideoArchitecture int

const (
	VideoArchOther   VideoArchitecture = 1
	VideoArchUnknown VideoArchitecture = 2
	VideoArchVGA     VideoArchitecture = 5
	VideoArchPC98    VideoArchitecture = 160
)

var videoArchitectureNames = map[VideoArchitecture]string{
	1: "OTHER", 2: "UNKNOWN", 3: "CGA", 4: "EGA", 5: "VGA", 6: "SVGA", 7: "MDA", 8: "HGC",
	9: "MCGA", 10: "8514A", 11: "XGA", 12: "Linear Frame Buffer", 160: "PC-98",
}

// ParseVideoArchitecture maps a raw code, falling back to VideoArchUnknown.
func ParseVideoArchitecture(code int64) VideoArchitecture {
	a := VideoArchitecture(code)
	if _, ok := videoArchitectureNames[a]; !ok || int64(a) != code {
		return VideoArchUnknown
	}
	return a
}

func (a VideoArchitecture) String() string { return name(videoArchitectureNames, a) }

func (a VideoArchitecture) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *VideoArchitecture) UnmarshalText(text []byte) (err error) {
	*a, err = unname(videoArchitectureNames, text)
	return err
}

// VideoMemoryType is Win32_VideoController.VideoMemoryType.
type VideoMemoryType int

const (
	VideoMemoryOther   VideoMemoryType = 1
	VideoMemoryUnknown VideoMemoryType = 2
	VideoMemorySGRAM   VideoMemoryType = 13
)

var videoMemoryTypeNames = map[VideoMemoryType]string{
	1: "OTHER", 2: "UNKNOWN", 3: "VRAM", 4: "DRAM", 5: "SRAM", 6: "WRAM", 7: "EDO RAM",
	8: "Burst Synchronous DRAM", 9: "Pipelined Burst SRAM", 10: "CDRAM", 11: "3DRAM",
	12: "SDRAM", 13: "SGRAM",
}

// ParseVideoMemoryType maps a raw code, falling back to VideoMemoryUnknown.
func ParseVideoMemoryType(code int64) VideoMemoryType {
	if code < 1 || code > 13 {
		return VideoMemoryUnknown
	}
	return VideoMemoryType(code)
}

func (t VideoMemoryType) String() string { return name(videoMemoryTypeNames, t) }

func (t VideoMemoryType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *VideoMemoryType) UnmarshalText(text []byte) (err error) {
	*t, err = unname(videoMemoryTypeNames, text)
	return err
}

// StatusInfo is the CIM_LogicalDevice.StatusInfo code shared by disk drives.
type StatusInfo int

const (
	StatusInfoNone          StatusInfo = -1
	StatusInfoOther         StatusInfo = 1
	StatusInfoUnknown       StatusInfo = 2
	StatusInfoEnabled       StatusInfo = 3
	StatusInfoDisabled      StatusInfo = 4
	StatusInfoNotApplicable StatusInfo = 5
)

var statusInfoNames = map[StatusInfo]string{
	1: "OTHER", 2: "UNKNOWN", 3: "ENABLED", 4: "DISABLED", 5: "NOT APPLICABLE",
}

// ParseStatusInfo maps a raw code, falling back to StatusInfoNone.
func ParseStatusInfo(code int64) StatusInfo {
	if code < 1 || code > 5 {
		return StatusInfoNone
	}
	return StatusInfo(code)
}

// String renders StatusInfoNone as the empty string so it drops out of
// record renderings.
func (s StatusInfo) String() string {
	if s == StatusInfoNone {
		return ""
	}
	return name(statusInfoNames, s)
}

func (s StatusInfo) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *StatusInfo) UnmarshalText(text []byte) (err error) {
	if len(text) == 0 {
		*s = StatusInfoNone
		return nil
	}
	*s, err = unname(statusInfoNames, text)
	return err
}
