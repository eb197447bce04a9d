//go:build !windows

// Package winsvc routes log output to the Windows Event Log.
package winsvc

import (
	"errors"
	"io"
)

// ErrNoEventLog is returned on platforms without a Windows Event Log.
var ErrNoEventLog = errors.New("the windows event log is not available on this platform")

// OpenEventLog is not supported on non-Windows platforms.
func OpenEventLog(string) (io.WriteCloser, error) {
	return nil, ErrNoEventLog
}
