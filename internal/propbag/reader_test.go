package propbag

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderRequiredFields(t *testing.T) {
	bag := Bag{
		"Name":     "CPU0",
		"Width":    int32(64),
		"Capacity": "8589934592",
		"Load":     "12.5",
		"Enabled":  "True",
		"Flag":     true,
	}
	r := NewReader(bag)

	assert.Equal(t, "CPU0", r.String("Name"))
	assert.Equal(t, 64, r.Int("Width"))
	assert.Equal(t, int64(8589934592), r.Int64("Capacity"))
	assert.Equal(t, 12.5, r.Float("Load"))
	assert.True(t, r.Bool("Enabled"))
	assert.True(t, r.Bool("Flag"))
	require.NoError(t, r.Err())
}

func TestReaderOptionalDefaults(t *testing.T) {
	r := NewReader(Bag{"Null": nil})

	assert.Equal(t, "", r.StringOr("Missing", ""))
	assert.Equal(t, -1, r.IntOr("Missing", -1))
	assert.Equal(t, int64(-1), r.Int64Or("Null", -1))
	assert.Equal(t, 0.5, r.FloatOr("Missing", 0.5))
	assert.False(t, r.BoolOr("Missing", false))
	assert.Nil(t, r.Strings("Missing"))
	assert.True(t, r.DMTFTimeOr("Missing", time.Local).IsZero())
	require.NoError(t, r.Err())
}

func TestReaderMissingRequiredField(t *testing.T) {
	r := NewReader(Bag{"DeviceID": "CPU0", "Nulled": nil})

	_ = r.String("DeviceID")
	_ = r.Int("Nulled")
	_ = r.String("DeviceID")

	err := r.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingField)

	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "Nulled", fe.Field)
}

func TestReaderFirstErrorSticks(t *testing.T) {
	r := NewReader(Bag{"A": "not-a-number", "B": int64(3)})

	assert.Equal(t, 0, r.Int("A"))
	assert.Equal(t, 0, r.Int("B"), "reads after a failure return zero values")
	assert.Equal(t, -1, r.IntOr("B", -1), "optional reads after a failure return the default")

	assert.ErrorIs(t, r.Err(), ErrParse)
	assert.Contains(t, r.Err().Error(), "A")
}

func TestReaderParseFailures(t *testing.T) {
	tests := []struct {
		name string
		read func(r *Reader)
	}{
		{"int from bool", func(r *Reader) { r.Int("V") }},
		{"optional int from text", func(r *Reader) { r.IntOr("V", -1) }},
		{"float from bool", func(r *Reader) { r.Float("V") }},
		{"bool from text", func(r *Reader) { r.Bool("V") }},
	}
	values := map[string]any{
		"int from bool":          true,
		"optional int from text": "abc",
		"float from bool":        false,
		"bool from text":         "maybe",
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(Bag{"V": values[tt.name]})
			tt.read(r)
			assert.ErrorIs(t, r.Err(), ErrParse)
		})
	}
}

func TestReaderDecimalStrings(t *testing.T) {
	r := NewReader(Bag{"Speed": "0800"})
	assert.Equal(t, 800, r.Int("Speed"))
	require.NoError(t, r.Err())
}

func TestReaderStrings(t *testing.T) {
	r := NewReader(Bag{
		"Native": []string{"C:\\", "D:\\"},
		"Mixed":  []any{"a", 1},
		"Single": "x",
	})
	assert.Equal(t, []string{"C:\\", "D:\\"}, r.Strings("Native"))
	assert.Equal(t, []string{"a", "1"}, r.Strings("Mixed"))
	assert.Equal(t, []string{"x"}, r.Strings("Single"))
	require.NoError(t, r.Err())

	r = NewReader(Bag{"Bad": 42})
	r.Strings("Bad")
	assert.ErrorIs(t, r.Err(), ErrParse)
}

func TestEnumHelpers(t *testing.T) {
	parse := func(code int64) string {
		if code == 1 {
			return "ONE"
		}
		return "OTHER"
	}
	r := NewReader(Bag{"Code": uint16(1), "Odd": 77})

	assert.Equal(t, "ONE", Enum(r, "Code", parse))
	assert.Equal(t, "OTHER", Enum(r, "Odd", parse))
	assert.Equal(t, "DEFAULT", EnumOr(r, "Missing", "DEFAULT", parse))
	require.NoError(t, r.Err())

	_ = Enum(r, "Missing", parse)
	assert.ErrorIs(t, r.Err(), ErrMissingField)
}

func TestDMTFTime(t *testing.T) {
	loc := time.FixedZone("TEST", 2*60*60)
	r := NewReader(Bag{"DriverDate": "20230615143022.000000+000"})

	got := r.DMTFTimeOr("DriverDate", loc)
	require.NoError(t, r.Err())

	assert.True(t, got.Equal(time.Date(2023, 6, 15, 14, 30, 22, 0, time.UTC)))
	assert.Equal(t, loc, got.Location())
	assert.Equal(t, 16, got.Hour())
}

func TestDMTFTimeRejectsMalformed(t *testing.T) {
	for _, in := range []string{
		"2023061514302.000000+000",
		"202306151430229.000000+000",
		"2023O615143022.000000+000",
		"2023",
		"20231315143022",
		"",
	} {
		r := NewReader(Bag{"DriverDate": in})
		r.DMTFTimeOr("DriverDate", time.Local)
		assert.ErrorIs(t, r.Err(), ErrParse, "input %q", in)
	}
}

func TestBagKeysSkipsNil(t *testing.T) {
	b := Bag{"b": 1, "a": "x", "c": nil}
	assert.Equal(t, []string{"a", "b"}, b.Keys())
}

func TestStaticProvider(t *testing.T) {
	p := Static{"Win32_Processor": {{"Name": "cpu"}}}

	bags, err := p.Query(context.Background(), "Win32_Processor")
	require.NoError(t, err)
	assert.Len(t, bags, 1)

	bags, err = p.Query(context.Background(), "Win32_Fan")
	require.NoError(t, err)
	assert.Empty(t, bags)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.Query(ctx, "Win32_Processor")
	assert.ErrorIs(t, err, context.Canceled)
}
