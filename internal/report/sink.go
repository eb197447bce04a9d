// Package report writes inventory reports to a text file.
package report

import (
	"log/slog"
	"os"

	"github.com/spf13/afero"
)

// Sink receives rendered report text. Implementations never fail the
// caller: write errors are logged and the text is dropped.
type Sink interface {
	// Append adds text to the end of the report.
	Append(text string)
	// Overwrite replaces the whole report with text.
	Overwrite(text string)
}

// FileSink writes to a single file. Each call opens and closes the file,
// so the report survives a crash between sections.
type FileSink struct {
	fs     afero.Fs
	path   string
	logger *slog.Logger
}

// NewFileSink returns a sink writing to path on fs. A nil fs means the OS
// filesystem and a nil logger means slog.Default.
func NewFileSink(fs afero.Fs, path string, logger *slog.Logger) *FileSink {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FileSink{fs: fs, path: path, logger: logger}
}

// Path returns the report file path.
func (s *FileSink) Path() string { return s.path }

func (s *FileSink) Append(text string) {
	s.write(os.O_CREATE|os.O_WRONLY|os.O_APPEND, text)
}

func (s *FileSink) Overwrite(text string) {
	s.write(os.O_CREATE|os.O_WRONLY|os.O_TRUNC, text)
}

func (s *FileSink) write(flag int, text string) {
	f, err := s.fs.OpenFile(s.path, flag, 0o644)
	if err != nil {
		s.logger.Error("open report file", "path", s.path, "error", err)
		return
	}
	if _, err := f.WriteString(text); err != nil {
		s.logger.Error("write report file", "path", s.path, "error", err)
	}
	if err := f.Close(); err != nil {
		s.logger.Error("close report file", "path", s.path, "error", err)
	}
}

// Discard is a Sink that drops everything.
type Discard struct{}

func (Discard) Append(string)    {}
func (Discard) Overwrite(string) {}
