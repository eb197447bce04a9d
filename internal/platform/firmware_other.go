//go:build !windows

package platform

import "github.com/siderolabs/go-smbios/smbios"

// readFirmware decodes the SMBIOS tables exposed by the kernel.
func readFirmware() (Firmware, error) {
	s, err := smbios.New()
	if err != nil {
		return Firmware{}, err
	}
	return firmwareFromSMBIOS(s), nil
}
