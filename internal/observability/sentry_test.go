package observability

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitSentryWithoutDSN(t *testing.T) {
	flush, enabled, err := InitSentry("  ", "test", "dev")
	require.NoError(t, err)
	assert.False(t, enabled)
	assert.False(t, Enabled())

	assert.NotPanics(t, func() {
		CaptureError(errors.New("ignored"), map[string]string{"class": "Win32_Processor"})
		flush()
	})
}

func TestInitSentryBadDSN(t *testing.T) {
	_, enabled, err := InitSentry("not a dsn", "", "dev")
	require.Error(t, err)
	assert.False(t, enabled)
}
