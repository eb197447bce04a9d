package report

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSinkAppend(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewFileSink(fs, "devices.txt", nil)

	s.Append("first\n")
	s.Append("second\n")

	got, err := afero.ReadFile(fs, "devices.txt")
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(got))
}

func TestFileSinkAppendKeepsExistingContent(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "devices.txt", []byte("previous run\n"), 0o644))

	NewFileSink(fs, "devices.txt", nil).Append("this run\n")

	got, err := afero.ReadFile(fs, "devices.txt")
	require.NoError(t, err)
	assert.Equal(t, "previous run\nthis run\n", string(got))
}

func TestFileSinkOverwrite(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewFileSink(fs, "devices.txt", nil)

	s.Append("a long first line\n")
	s.Overwrite("short\n")

	got, err := afero.ReadFile(fs, "devices.txt")
	require.NoError(t, err)
	assert.Equal(t, "short\n", string(got))
}

func TestFileSinkLogsWriteFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	s := NewFileSink(afero.NewReadOnlyFs(afero.NewMemMapFs()), "devices.txt", logger)

	assert.NotPanics(t, func() { s.Append("dropped\n") })
	assert.Contains(t, buf.String(), "open report file")
	assert.Equal(t, "devices.txt", s.Path())
}
