package platform

import (
	"testing"

	"github.com/siderolabs/go-smbios/smbios"
	"github.com/stretchr/testify/assert"
)

func TestFirmwareFromWMI(t *testing.T) {
	fw := firmwareFromWMI(
		[]win32ComputerSystem{{Manufacturer: "LENOVO ", Model: "20L8S02D00"}},
		[]win32BIOS{{
			Manufacturer:       "LENOVO",
			SMBIOSBIOSVersion:  "N22ET80W (1.57 )",
			ReleaseDate:        "20230615000000.000000+000",
			SerialNumber:       " PF1ABCDE ",
			SMBIOSMajorVersion: 3,
			SMBIOSMinorVersion: 2,
		}},
		[]win32ComputerSystemProduct{{UUID: "4C4C4544-0031-3510-8052-B4C04F4A4C32"}},
	)

	assert.Equal(t, Firmware{
		Version:            "3.2",
		BIOSVendor:         "LENOVO",
		BIOSVersion:        "N22ET80W (1.57 )",
		BIOSReleaseDate:    "2023-06-15",
		SystemManufacturer: "LENOVO",
		SystemProduct:      "20L8S02D00",
		SystemSerial:       "PF1ABCDE",
		SystemUUID:         "4C4C4544-0031-3510-8052-B4C04F4A4C32",
	}, fw)
}

func TestFirmwareFromWMIEmpty(t *testing.T) {
	assert.Equal(t, Firmware{}, firmwareFromWMI(nil, []win32BIOS{{ReleaseDate: "2023"}}, nil))
}

func TestFirmwareFromSMBIOS(t *testing.T) {
	fw := firmwareFromSMBIOS(&smbios.SMBIOS{
		Version: smbios.Version{Major: 3, Minor: 4, Revision: 0},
		BIOSInformation: smbios.BIOSInformation{
			Vendor:      "American Megatrends Inc.",
			Version:     "F12",
			ReleaseDate: "06/15/2023",
		},
		SystemInformation: smbios.SystemInformation{
			Manufacturer: "Gigabyte Technology Co., Ltd.",
			ProductName:  "B550 AORUS ELITE",
			SerialNumber: "Default string",
			UUID:         "03000200-0400-0500-0006-000700080009",
		},
	})

	assert.Equal(t, "3.4.0", fw.Version)
	assert.Equal(t, "American Megatrends Inc.", fw.BIOSVendor)
	assert.Equal(t, "F12", fw.BIOSVersion)
	assert.Equal(t, "06/15/2023", fw.BIOSReleaseDate)
	assert.Equal(t, "B550 AORUS ELITE", fw.SystemProduct)
	assert.Equal(t, "03000200-0400-0500-0006-000700080009", fw.SystemUUID)
}
