package collector

import (
	"fmt"
	"strings"

	"github.com/go-tangra/go-tangra-sysexplorer/internal/lookup"
	"github.com/go-tangra/go-tangra-sysexplorer/internal/propbag"
)

// ExtractDiskDrive builds a DiskDrive from a Win32_DiskDrive bag.
func ExtractDiskDrive(bag propbag.Bag) (DiskDrive, error) {
	r := propbag.NewReader(bag)

	d := DiskDrive{
		Name:                    r.String("Name"),
		DeviceID:                r.String("DeviceID"),
		Model:                   r.String("Model"),
		Manufacturer:            r.String("Manufacturer"),
		SerialNumber:            strings.TrimSpace(r.String("SerialNumber")),
		Status:                  r.String("Status"),
		SystemCreationClassName: r.String("SystemCreationClassName"),
		SystemName:              r.String("SystemName"),
		TotalCylinders:          r.Int64Or("TotalCylinders", -1),
		TotalHeads:              r.Int64Or("TotalHeads", -1),
		TotalSectors:            r.Int64Or("TotalSectors", -1),
		TotalTracks:             r.Int64Or("TotalTracks", -1),
		Size:                    r.Int64Or("Size", -1),
		NumberOfMediaSupported:  r.IntOr("NumberOfMediaSupported", -1),
		Partitions:              r.IntOr("Partitions", -1),
		StatusInfo:              propbag.EnumOr(r, "StatusInfo", lookup.StatusInfoNone, lookup.ParseStatusInfo),
		TracksPerCylinder:       r.IntOr("TracksPerCylinder", -1),
	}
	if err := r.Err(); err != nil {
		return DiskDrive{}, fmt.Errorf("disk drive: %w", err)
	}
	return d, nil
}

func (d DiskDrive) String() string {
	var l lines
	l.str("Name", d.Name)
	l.str("Manufacturer", d.Manufacturer)
	l.str("Serial Number", d.SerialNumber)
	l.str("Model", d.Model)
	if d.Size >= 0 {
		l.bytes("Size (Bytes)", d.Size)
	}
	l.int("Partitions", int64(d.Partitions))
	l.str("Status", d.Status)
	l.str("Status Info", d.StatusInfo.String())
	return l.String()
}

// ExtractDiskPartition builds a DiskPartition from a Win32_DiskPartition bag.
func ExtractDiskPartition(bag propbag.Bag) (DiskPartition, error) {
	r := propbag.NewReader(bag)

	p := DiskPartition{
		Name:                    r.String("Name"),
		DeviceID:                r.String("DeviceID"),
		Size:                    r.Int64Or("Size", -1),
		NumberOfBlocks:          r.Int64Or("NumberOfBlocks", -1),
		Status:                  r.StringOr("Status", ""),
		SystemCreationClassName: r.String("SystemCreationClassName"),
		SystemName:              r.String("SystemName"),
		Type:                    r.String("Type"),
		Bootable:                r.BoolOr("Bootable", false),
		BootPartition:           r.BoolOr("BootPartition", false),
		PrimaryPartition:        r.BoolOr("PrimaryPartition", false),
		RewritePartition:        r.BoolOr("RewritePartition", false),
	}
	if err := r.Err(); err != nil {
		return DiskPartition{}, fmt.Errorf("disk partition: %w", err)
	}
	return p, nil
}

func (p DiskPartition) String() string {
	var l lines
	l.str("Name", p.Name)
	l.str("Type", p.Type)
	l.bytes("Size (Bytes)", p.Size)
	l.int("Number Of Blocks", p.NumberOfBlocks)
	l.str("Partition Status", p.Status)
	l.bool("Primary Partition", p.PrimaryPartition)
	l.bool("Boot Partition", p.BootPartition)
	return l.String()
}
