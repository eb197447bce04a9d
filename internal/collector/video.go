package collector

import (
	"fmt"
	"time"

	"github.com/go-tangra/go-tangra-sysexplorer/internal/lookup"
	"github.com/go-tangra/go-tangra-sysexplorer/internal/propbag"
)

// driverDateLayout renders VideoController.DriverDate in reports.
const driverDateLayout = "2006-01-02 15:04:05 MST"

// ExtractVideoController builds a VideoController from a
// Win32_VideoController bag. DriverDate is converted to loc; a nil loc
// keeps it in UTC.
func ExtractVideoController(bag propbag.Bag, loc *time.Location) (VideoController, error) {
	r := propbag.NewReader(bag)

	v := VideoController{
		CurrentBitsPerPixel:         r.IntOr("CurrentBitsPerPixel", -1),
		CurrentHorizontalResolution: r.IntOr("CurrentHorizontalResolution", -1),
		CurrentNumberOfColors:       r.Int64Or("CurrentNumberOfColors", -1),
		CurrentNumberOfColumns:      r.Int64Or("CurrentNumberOfColumns", -1),
		CurrentNumberOfRows:         r.Int64Or("CurrentNumberOfRows", -1),
		CurrentRefreshRate:          r.IntOr("CurrentRefreshRate", -1),
		CurrentScanMode:             r.IntOr("CurrentScanMode", -1),
		CurrentVerticalResolution:   r.IntOr("CurrentVerticalResolution", -1),
		DeviceSpecificPens:          r.IntOr("DeviceSpecificPens", -1),
		DitherType:                  r.IntOr("DitherType", -1),
		Name:                        r.String("Name"),
		VideoModeDescription:        r.String("VideoModeDescription"),
		VideoProcessor:              r.String("VideoProcessor"),
		SystemName:                  r.String("SystemName"),
		Description:                 r.String("Description"),
		Status:                      r.String("Status"),
		AdapterRAM:                  r.Int64Or("AdapterRAM", -1),
		ColorTableEntries:           r.IntOr("ColorTableEntries", -1),
		AdapterDACType:              r.StringOr("AdapterDACType", ""),
		LastErrorCode:               r.IntOr("LastErrorCode", -1),
		MaxMemorySupported:          r.IntOr("MaxMemorySupported", -1),
		MaxNumberControlled:         r.IntOr("MaxNumberControlled", -1),
		MaxRefreshRate:              r.IntOr("MaxRefreshRate", -1),
		MinRefreshRate:              r.IntOr("MinRefreshRate", -1),
		VideoArchitecture:           propbag.EnumOr(r, "VideoArchitecture", lookup.VideoArchUnknown, lookup.ParseVideoArchitecture),
		VideoMemoryType:             propbag.EnumOr(r, "VideoMemoryType", lookup.VideoMemoryUnknown, lookup.ParseVideoMemoryType),
		VideoMode:                   r.IntOr("VideoMode", -1),
		DriverDate:                  r.DMTFTimeOr("DriverDate", loc),
	}
	if err := r.Err(); err != nil {
		return VideoController{}, fmt.Errorf("video controller: %w", err)
	}
	return v, nil
}

func (v VideoController) String() string {
	var l lines
	l.str("Name", v.Name)
	l.str("Video Processor", v.VideoProcessor)
	l.str("Video Architecture", v.VideoArchitecture.String())
	l.str("Video Memory Type", v.VideoMemoryType.String())
	l.str("Video Controller Status", v.Status)
	l.bytes("Adapter RAM (Bytes)", v.AdapterRAM)
	if !v.DriverDate.IsZero() {
		l.str("Driver Date", v.DriverDate.Format(driverDateLayout))
	}
	l.str("Video Mode Description", v.VideoModeDescription)
	return l.String()
}
