package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArchitecture(t *testing.T) {
	tests := []struct {
		code int64
		want Architecture
		name string
	}{
		{0, ArchX86, "X86"},
		{9, ArchX64, "X64"},
		{12, ArchARM64, "ARM64"},
		{4, ArchNone, "NONE"},
		{-7, ArchNone, "NONE"},
		{1 << 40, ArchNone, "NONE"},
	}
	for _, tt := range tests {
		got := ParseArchitecture(tt.code)
		assert.Equal(t, tt.want, got, "code %d", tt.code)
		assert.Equal(t, tt.name, got.String())
	}
}

func TestParseCPUStatus(t *testing.T) {
	assert.Equal(t, CPUStatusEnabled, ParseCPUStatus(1))
	assert.Equal(t, CPUStatusReserved, ParseCPUStatus(5))
	assert.Equal(t, CPUStatusReserved, ParseCPUStatus(6))
	assert.Equal(t, CPUStatusOther, ParseCPUStatus(7))
	assert.Equal(t, CPUStatusNone, ParseCPUStatus(8))
	assert.Equal(t, "DISABLED_BIOS", ParseCPUStatus(3).String())
}

func TestParseFamilyFallsBackToNone(t *testing.T) {
	assert.Equal(t, "Intel Xeon", ParseFamily(179).String())
	assert.Equal(t, "AMD Opteron", ParseFamily(132).String())
	assert.Equal(t, FamilyNone, ParseFamily(21))
	assert.Equal(t, FamilyNone, ParseFamily(65535))
}

func TestParseVoltage(t *testing.T) {
	assert.Equal(t, Voltage3V3, ParseVoltage(2))
	assert.Equal(t, VoltageUnknown, ParseVoltage(0))
	assert.Equal(t, VoltageNone, ParseVoltage(3))
	assert.Equal(t, VoltageNone, ParseVoltage(12))
}

func TestParseFormFactor(t *testing.T) {
	assert.Equal(t, FormFactorDIMM, ParseFormFactor(8))
	assert.Equal(t, "SODIMM", ParseFormFactor(12).String())
	assert.Equal(t, FormFactorUnknown, ParseFormFactor(24))
	assert.Equal(t, FormFactorUnknown, ParseFormFactor(-1))
}

func TestParseVideoCodes(t *testing.T) {
	assert.Equal(t, VideoArchVGA, ParseVideoArchitecture(5))
	assert.Equal(t, VideoArchPC98, ParseVideoArchitecture(160))
	assert.Equal(t, VideoArchUnknown, ParseVideoArchitecture(13))
	assert.Equal(t, VideoMemorySGRAM, ParseVideoMemoryType(13))
	assert.Equal(t, VideoMemoryUnknown, ParseVideoMemoryType(0))
	assert.Equal(t, VideoMemoryUnknown, ParseVideoMemoryType(14))
}

func TestStatusInfoNoneRendersEmpty(t *testing.T) {
	assert.Equal(t, "ENABLED", ParseStatusInfo(3).String())
	assert.Equal(t, StatusInfoNone, ParseStatusInfo(9))
	assert.Equal(t, "", StatusInfoNone.String())
}

func TestMarshalTextUsesNames(t *testing.T) {
	b, err := ArchX64.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "X64", string(b))

	b, err = Family(999).MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "999", string(b))
}

func TestUnmarshalTextRoundTrip(t *testing.T) {
	var a Architecture
	require.NoError(t, a.UnmarshalText([]byte("ARM64")))
	assert.Equal(t, ArchARM64, a)

	var f Family
	require.NoError(t, f.UnmarshalText([]byte("999")))
	assert.Equal(t, Family(999), f)

	var s StatusInfo
	require.NoError(t, s.UnmarshalText(nil))
	assert.Equal(t, StatusInfoNone, s)

	var v VideoMemoryType
	assert.Error(t, v.UnmarshalText([]byte("HBM9")))
}
