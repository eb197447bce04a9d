//go:build !windows

package propbag

import "context"

// DefaultNamespace is the CIM namespace holding the Win32_* hardware classes.
const DefaultNamespace = `root\cimv2`

// WMIProvider is not available on this platform.
type WMIProvider struct{}

// NewWMIProvider always fails with ErrUnsupported on non-Windows platforms.
func NewWMIProvider(_ string) (*WMIProvider, error) {
	return nil, ErrUnsupported
}

func (*WMIProvider) Query(_ context.Context, _ string) ([]Bag, error) {
	return nil, ErrUnsupported
}
