//go:build windows

// Package winsvc routes log output to the Windows Event Log.
package winsvc

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/sys/windows/svc/eventlog"
)

// eventID is used for every entry; the source has no message file.
const eventID = 1

// eventLogWriter writes each log record as one event. The severity is
// taken from the slog level key in the record.
type eventLogWriter struct {
	elog *eventlog.Log
}

func (w *eventLogWriter) Write(p []byte) (int, error) {
	msg := string(bytes.TrimRight(p, "\r\n"))
	var err error
	switch {
	case bytes.Contains(p, []byte("level=ERROR")), bytes.Contains(p, []byte(`"level":"ERROR"`)):
		err = w.elog.Error(eventID, msg)
	case bytes.Contains(p, []byte("level=WARN")), bytes.Contains(p, []byte(`"level":"WARN"`)):
		err = w.elog.Warning(eventID, msg)
	default:
		err = w.elog.Info(eventID, msg)
	}
	if err != nil {
		return 0, err
	}
	return len(p), nil
}

func (w *eventLogWriter) Close() error { return w.elog.Close() }

// OpenEventLog opens the named event source, registering it first when it
// does not exist yet. Registration needs administrator rights.
func OpenEventLog(source string) (io.WriteCloser, error) {
	// Already-registered sources make this fail; that is expected.
	_ = eventlog.InstallAsEventCreate(source, eventlog.Error|eventlog.Warning|eventlog.Info)

	elog, err := eventlog.Open(source)
	if err != nil {
		return nil, fmt.Errorf("open event log %s: %w", source, err)
	}
	return &eventLogWriter{elog: elog}, nil
}
