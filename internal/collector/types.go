package collector

import (
	"time"

	"github.com/go-tangra/go-tangra-sysexplorer/internal/lookup"
)

// WMI classes queried by the collector, in report order. Platform is a
// pseudo-class served by a PlatformSource rather than WMI.
const (
	ClassPlatform        = "Platform"
	ClassPhysicalMemory  = "Win32_PhysicalMemory"
	ClassProcessor       = "Win32_Processor"
	ClassVideoController = "Win32_VideoController"
	ClassDiskDrive       = "Win32_DiskDrive"
	ClassDiskPartition   = "Win32_DiskPartition"
)

// Classes lists the WMI classes in query order.
var Classes = []string{
	ClassPhysicalMemory,
	ClassProcessor,
	ClassVideoController,
	ClassDiskDrive,
	ClassDiskPartition,
}

// Inventory holds the complete hardware inventory of a Windows host.
type Inventory struct {
	RunID            string            `json:"run_id"`
	CollectedAt      time.Time         `json:"collected_at"`
	Hostname         string            `json:"hostname"`
	Platform         *Platform         `json:"platform,omitempty"`
	Memory           *MemoryInfo       `json:"memory,omitempty"`
	MemoryBanks      []MemoryBank      `json:"memory_banks"`
	CPUs             []CPU             `json:"cpus"`
	VideoControllers []VideoController `json:"video_controllers"`
	DiskDrives       []DiskDrive       `json:"disk_drives"`
	DiskPartitions   []DiskPartition   `json:"disk_partitions"`
	// Skipped counts, per class, the objects whose extraction failed.
	Skipped map[string]int `json:"skipped,omitempty"`
}

// CPU holds Win32_Processor details.
type CPU struct {
	Name                          string              `json:"name"`
	AddressWidth                  int                 `json:"address_width"`
	Architecture                  lookup.Architecture `json:"architecture"`
	Status                        lookup.CPUStatus    `json:"cpu_status"`
	DataWidth                     int                 `json:"data_width"`
	DeviceID                      string              `json:"device_id"`
	Family                        lookup.Family       `json:"family"`
	Manufacturer                  string              `json:"manufacturer"`
	MaxClockSpeed                 int                 `json:"max_clock_speed_mhz"`
	CurrentClockSpeed             int                 `json:"current_clock_speed_mhz"`
	PartNumber                    string              `json:"part_number"`
	SerialNumber                  string              `json:"serial_number"`
	UniqueID                      string              `json:"unique_id"`
	ProcessorType                 int                 `json:"processor_type"`
	ProcessorID                   string              `json:"processor_id"`
	LoadPercentage                int                 `json:"load_percentage"`
	CurrentVoltage                lookup.Voltage      `json:"current_voltage"`
	NumberOfCores                 int                 `json:"cores"`
	NumberOfEnabledCore           int                 `json:"enabled_cores"`
	NumberOfLogicalProcessors     int                 `json:"logical_processors"`
	Level                         int                 `json:"level"`
	L2CacheSize                   int                 `json:"l2_cache_size_kb"`
	L2CacheSpeed                  int                 `json:"l2_cache_speed_mhz"`
	L3CacheSize                   int                 `json:"l3_cache_size_kb"`
	L3CacheSpeed                  int                 `json:"l3_cache_speed_mhz"`
	ThreadCount                   int                 `json:"thread_count"`
	VirtualizationFirmwareEnabled bool                `json:"virtualization_firmware_enabled"`
}

// MemoryBank holds Win32_PhysicalMemory details for a single module.
type MemoryBank struct {
	Name                 string            `json:"name"`
	BankLabel            string            `json:"bank_label"`
	Capacity             int64             `json:"capacity_bytes"`
	DataWidth            int               `json:"data_width"`
	Description          string            `json:"description"`
	DeviceLocator        string            `json:"device_locator"`
	FormFactor           lookup.FormFactor `json:"form_factor"`
	Manufacturer         string            `json:"manufacturer"`
	Model                string            `json:"model"`
	OtherIdentifyingInfo string            `json:"other_identifying_info"`
	PartNumber           string            `json:"part_number"`
	PositionInRow        int               `json:"position_in_row"`
	SerialNumber         string            `json:"serial_number"`
	SKU                  string            `json:"sku"`
	SMBIOSMemoryType     int               `json:"smbios_memory_type"`
	Speed                int               `json:"speed_mhz"`
	Status               string            `json:"status"`
	Tag                  string            `json:"tag"`
	TotalWidth           int               `json:"total_width"`
	TypeDetail           int               `json:"type_detail"`
	Version              string            `json:"version"`
}

// MemoryInfo aggregates the installed memory banks.
type MemoryInfo struct {
	Banks       int   `json:"banks"`
	DataWidth   int   `json:"data_width"`
	TotalSize   int64 `json:"total_size_bytes"`
	TotalSizeMB int64 `json:"total_size_mb"`
}

// DiskDrive holds Win32_DiskDrive details.
type DiskDrive struct {
	Name                    string            `json:"name"`
	DeviceID                string            `json:"device_id"`
	Model                   string            `json:"model"`
	Manufacturer            string            `json:"manufacturer"`
	SerialNumber            string            `json:"serial_number"`
	Status                  string            `json:"status"`
	StatusInfo              lookup.StatusInfo `json:"status_info"`
	SystemCreationClassName string            `json:"system_creation_class_name"`
	SystemName              string            `json:"system_name"`
	Size                    int64             `json:"size_bytes"`
	TotalCylinders          int64             `json:"total_cylinders"`
	TotalHeads              int64             `json:"total_heads"`
	TotalSectors            int64             `json:"total_sectors"`
	TotalTracks             int64             `json:"total_tracks"`
	TracksPerCylinder       int               `json:"tracks_per_cylinder"`
	NumberOfMediaSupported  int               `json:"number_of_media_supported"`
	Partitions              int               `json:"partitions"`
}

// DiskPartition holds Win32_DiskPartition details.
type DiskPartition struct {
	Name                    string `json:"name"`
	DeviceID                string `json:"device_id"`
	Size                    int64  `json:"size_bytes"`
	NumberOfBlocks          int64  `json:"number_of_blocks"`
	Status                  string `json:"status"`
	SystemCreationClassName string `json:"system_creation_class_name"`
	SystemName              string `json:"system_name"`
	Type                    string `json:"type"`
	Bootable                bool   `json:"bootable"`
	BootPartition           bool   `json:"boot_partition"`
	PrimaryPartition        bool   `json:"primary_partition"`
	RewritePartition        bool   `json:"rewrite_partition"`
}

// VideoController holds Win32_VideoController details.
type VideoController struct {
	Name                        string                   `json:"name"`
	Description                 string                   `json:"description"`
	Status                      string                   `json:"status"`
	SystemName                  string                   `json:"system_name"`
	VideoProcessor              string                   `json:"video_processor"`
	VideoModeDescription        string                   `json:"video_mode_description"`
	AdapterRAM                  int64                    `json:"adapter_ram_bytes"`
	AdapterDACType              string                   `json:"adapter_dac_type"`
	ColorTableEntries           int                      `json:"color_table_entries"`
	CurrentBitsPerPixel         int                      `json:"current_bits_per_pixel"`
	CurrentHorizontalResolution int                      `json:"current_horizontal_resolution"`
	CurrentVerticalResolution   int                      `json:"current_vertical_resolution"`
	CurrentNumberOfColors       int64                    `json:"current_number_of_colors"`
	CurrentNumberOfColumns      int64                    `json:"current_number_of_columns"`
	CurrentNumberOfRows         int64                    `json:"current_number_of_rows"`
	CurrentRefreshRate          int                      `json:"current_refresh_rate"`
	CurrentScanMode             int                      `json:"current_scan_mode"`
	DeviceSpecificPens          int                      `json:"device_specific_pens"`
	DitherType                  int                      `json:"dither_type"`
	DriverDate                  time.Time                `json:"driver_date"`
	LastErrorCode               int                      `json:"last_error_code"`
	MaxMemorySupported          int                      `json:"max_memory_supported"`
	MaxNumberControlled         int                      `json:"max_number_controlled"`
	MaxRefreshRate              int                      `json:"max_refresh_rate"`
	MinRefreshRate              int                      `json:"min_refresh_rate"`
	VideoArchitecture           lookup.VideoArchitecture `json:"video_architecture"`
	VideoMemoryType             lookup.VideoMemoryType   `json:"video_memory_type"`
	VideoMode                   int                      `json:"video_mode"`
}

// Platform holds operating system and firmware facts about the local host.
type Platform struct {
	MachineName        string   `json:"machine_name"`
	Is64BitOS          bool     `json:"is_64bit_os"`
	OS                 string   `json:"os"`
	Platform           string   `json:"platform"`
	PlatformFamily     string   `json:"platform_family"`
	PlatformVersion    string   `json:"platform_version"`
	KernelVersion      string   `json:"kernel_version"`
	KernelArch         string   `json:"kernel_arch"`
	RuntimeVersion     string   `json:"runtime_version"`
	ProcessorCount     int      `json:"processor_count"`
	LogicalDrives      []string `json:"logical_drives"`
	Environment        []string `json:"environment,omitempty"`
	SMBIOSVersion      string   `json:"smbios_version"`
	BIOSVendor         string   `json:"bios_vendor"`
	BIOSVersion        string   `json:"bios_version"`
	BIOSReleaseDate    string   `json:"bios_release_date"`
	SystemManufacturer string   `json:"system_manufacturer"`
	SystemProduct      string   `json:"system_product"`
	SystemSerial       string   `json:"system_serial"`
	SystemUUID         string   `json:"system_uuid"`
}
