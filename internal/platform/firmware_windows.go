//go:build windows

package platform

import "github.com/yusufpapurcu/wmi"

// readFirmware queries Win32_ComputerSystem, Win32_BIOS and
// Win32_ComputerSystemProduct for the system identity.
func readFirmware() (Firmware, error) {
	var cs []win32ComputerSystem
	if err := wmi.Query("SELECT Manufacturer, Model FROM Win32_ComputerSystem", &cs); err != nil {
		return Firmware{}, err
	}

	var bios []win32BIOS
	if err := wmi.Query("SELECT Manufacturer, SMBIOSBIOSVersion, ReleaseDate, SerialNumber, SMBIOSMajorVersion, SMBIOSMinorVersion FROM Win32_BIOS", &bios); err != nil {
		return Firmware{}, err
	}

	var products []win32ComputerSystemProduct
	if err := wmi.Query("SELECT UUID FROM Win32_ComputerSystemProduct", &products); err != nil {
		return Firmware{}, err
	}
	return firmwareFromWMI(cs, bios, products), nil
}
