package platform

import (
	"fmt"
	"strings"

	"github.com/siderolabs/go-smbios/smbios"
)

// Firmware is the BIOS and system identity reported in the platform
// section.
type Firmware struct {
	Version            string
	BIOSVendor         string
	BIOSVersion        string
	BIOSReleaseDate    string
	SystemManufacturer string
	SystemProduct      string
	SystemSerial       string
	SystemUUID         string
}

type win32ComputerSystem struct {
	Manufacturer string
	Model        string
}

type win32BIOS struct {
	Manufacturer       string
	SMBIOSBIOSVersion  string
	ReleaseDate        string
	SerialNumber       string
	SMBIOSMajorVersion uint16
	SMBIOSMinorVersion uint16
}

type win32ComputerSystemProduct struct {
	UUID string
}

// firmwareFromWMI merges the first row of each WMI class. Empty results
// leave their fields blank.
func firmwareFromWMI(cs []win32ComputerSystem, bios []win32BIOS, products []win32ComputerSystemProduct) Firmware {
	var fw Firmware
	if len(cs) > 0 {
		fw.SystemManufacturer = strings.TrimSpace(cs[0].Manufacturer)
		fw.SystemProduct = strings.TrimSpace(cs[0].Model)
	}
	if len(bios) > 0 {
		b := bios[0]
		if b.SMBIOSMajorVersion > 0 {
			fw.Version = fmt.Sprintf("%d.%d", b.SMBIOSMajorVersion, b.SMBIOSMinorVersion)
		}
		fw.BIOSVendor = strings.TrimSpace(b.Manufacturer)
		fw.BIOSVersion = strings.TrimSpace(b.SMBIOSBIOSVersion)
		// CIM datetime; the date part is enough here.
		if len(b.ReleaseDate) >= 8 {
			fw.BIOSReleaseDate = b.ReleaseDate[:4] + "-" + b.ReleaseDate[4:6] + "-" + b.ReleaseDate[6:8]
		}
		fw.SystemSerial = strings.TrimSpace(b.SerialNumber)
	}
	if len(products) > 0 {
		fw.SystemUUID = strings.TrimSpace(products[0].UUID)
	}
	return fw
}

func firmwareFromSMBIOS(s *smbios.SMBIOS) Firmware {
	bios := s.BIOSInformation
	sys := s.SystemInformation
	return Firmware{
		Version:            fmt.Sprintf("%d.%d.%d", s.Version.Major, s.Version.Minor, s.Version.Revision),
		BIOSVendor:         bios.Vendor,
		BIOSVersion:        bios.Version,
		BIOSReleaseDate:    bios.ReleaseDate,
		SystemManufacturer: sys.Manufacturer,
		SystemProduct:      sys.ProductName,
		SystemSerial:       sys.SerialNumber,
		SystemUUID:         sys.UUID,
	}
}
