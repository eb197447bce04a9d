package collector

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-tangra/go-tangra-sysexplorer/internal/lookup"
	"github.com/go-tangra/go-tangra-sysexplorer/internal/propbag"
)

const bytesPerMB = 1024 * 1024

// ErrEmptyInput is returned when memory is aggregated over no banks.
var ErrEmptyInput = errors.New("no memory banks to aggregate")

// ExtractMemoryBank builds a MemoryBank from a Win32_PhysicalMemory bag.
func ExtractMemoryBank(bag propbag.Bag) (MemoryBank, error) {
	r := propbag.NewReader(bag)

	m := MemoryBank{
		Capacity:             r.Int64("Capacity"),
		Name:                 r.StringOr("Name", ""),
		BankLabel:            r.StringOr("BankLabel", ""),
		Description:          r.StringOr("Description", ""),
		DeviceLocator:        r.StringOr("DeviceLocator", ""),
		Manufacturer:         strings.TrimSpace(r.StringOr("Manufacturer", "")),
		SerialNumber:         strings.TrimSpace(r.String("SerialNumber")),
		SKU:                  r.StringOr("SKU", ""),
		Status:               r.StringOr("Status", ""),
		Model:                r.StringOr("Model", ""),
		OtherIdentifyingInfo: r.StringOr("OtherIdentifyingInfo", ""),
		PartNumber:           strings.TrimSpace(r.StringOr("PartNumber", "")),
		DataWidth:            r.Int("DataWidth"),
		Speed:                r.Int("Speed"),
		SMBIOSMemoryType:     r.Int("SMBIOSMemoryType"),
		Tag:                  r.StringOr("Tag", ""),
		Version:              r.StringOr("Version", ""),
		TotalWidth:           r.Int("TotalWidth"),
		TypeDetail:           r.Int("TypeDetail"),
		PositionInRow:        r.IntOr("PositionInRow", -1),
		FormFactor:           propbag.Enum(r, "FormFactor", lookup.ParseFormFactor),
	}
	if err := r.Err(); err != nil {
		return MemoryBank{}, fmt.Errorf("memory bank: %w", err)
	}
	return m, nil
}

func (m MemoryBank) String() string {
	var l lines
	l.str("Name", m.Name)
	l.str("Bank Label", m.BankLabel)
	l.str("Device Locator", m.DeviceLocator)
	l.str("Manufacturer", m.Manufacturer)
	l.str("Part Number", m.PartNumber)
	l.str("Serial Number", m.SerialNumber)
	l.bytes("Capacity (Bytes)", m.Capacity)
	l.int("Speed (MHz)", int64(m.Speed))
	l.int("Data Width", int64(m.DataWidth))
	l.int("Total Width", int64(m.TotalWidth))
	l.str("Form Factor", m.FormFactor.String())
	l.str("Status", m.Status)
	return l.String()
}

// AggregateMemory derives system-wide totals from the installed banks.
// The data width is taken from the first bank: banks are assumed to be
// homogeneous and mixed widths are not detected.
func AggregateMemory(banks []MemoryBank) (MemoryInfo, error) {
	if len(banks) == 0 {
		return MemoryInfo{}, ErrEmptyInput
	}

	var total int64
	for _, b := range banks {
		total += b.Capacity
	}
	return MemoryInfo{
		Banks:       len(banks),
		DataWidth:   banks[0].DataWidth,
		TotalSize:   total,
		TotalSizeMB: total / bytesPerMB,
	}, nil
}

// UsedPercent returns the share of TotalSize not covered by freeBytes,
// or 0 when the total is unknown.
func (m MemoryInfo) UsedPercent(freeBytes int64) float64 {
	if m.TotalSize <= 0 {
		return 0
	}
	return float64(m.TotalSize-freeBytes) * 100 / float64(m.TotalSize)
}

func (m MemoryInfo) String() string {
	var l lines
	l.int("Number of Memory Banks", int64(m.Banks))
	l.int("Memory Data Width", int64(m.DataWidth))
	l.bytes("Memory Total Size (Bytes)", m.TotalSize)
	l.int("Memory Total Size (MegaBytes)", m.TotalSizeMB)
	return l.String()
}
