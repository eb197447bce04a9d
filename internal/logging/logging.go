// Package logging builds the process logger and the console used for
// user-facing status lines.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pterm/pterm"
)

// ParseLevel maps a level name to a slog level. "trace" is an alias for
// debug.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace", "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// New returns a logger writing to w in the given format, "text" or "json".
func New(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("unknown log format %q", format)
}

// Console prints status lines for the person running the tool.
type Console struct {
	writer io.Writer
}

// NewConsole returns a Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{writer: w}
}

func (c *Console) Info(msg string) {
	pterm.Info.WithWriter(c.writer).Println(msg)
}

func (c *Console) Success(msg string) {
	pterm.Success.WithWriter(c.writer).Println(msg)
}

func (c *Console) Warning(msg string) {
	pterm.Warning.WithWriter(c.writer).Println(msg)
}

func (c *Console) Error(msg string) {
	pterm.Error.WithWriter(c.writer).Println(msg)
}

// Println writes plain text with no prefix.
func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.writer, args...)
}
