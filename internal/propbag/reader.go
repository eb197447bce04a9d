package propbag

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// dmtfLayout is the leading YYYYMMDDHHMMSS part of a CIM datetime such as
// "20230615143022.000000+000".
const dmtfLayout = "20060102150405"

// Reader extracts typed fields from a Bag. The first failure sticks: later
// calls return zero values and Err reports the original failure, so an
// extractor can read every field and check once.
type Reader struct {
	bag Bag
	err error
}

// NewReader returns a Reader over b.
func NewReader(b Bag) *Reader {
	return &Reader{bag: b}
}

// Err returns the first extraction failure, or nil.
func (r *Reader) Err() error { return r.err }

// Has reports whether key holds a non-nil value.
func (r *Reader) Has(key string) bool {
	_, ok := r.bag.Lookup(key)
	return ok
}

func (r *Reader) String(key string) string { return required(r, key, toString) }
func (r *Reader) StringOr(key, def string) string { return optional(r, key, def, toString) }
func (r *Reader) Int(key string) int { return int(required(r, key, toInt64)) }
func (r *Reader) IntOr(key string, def int) int { return int(optional(r, key, int64(def), toInt64)) }
func (r *Reader) Int64(key string) int64 { return required(r, key, toInt64) }
func (r *Reader) Int64Or(key string, def int64) int64 {
	return optional(r, key, def, toInt64)
}
func (r *Reader) Float(key string) float64 { return required(r, key, toFloat64) }
func (r *Reader) FloatOr(key string, def float64) float64 {
	return optional(r, key, def, toFloat64)
}
func (r *Reader) Bool(key string) bool { return required(r, key, toBool) }
func (r *Reader) BoolOr(key string, def bool) bool { return optional(r, key, def, toBool) }

// Strings reads an optional list property; absent yields nil.
func (r *Reader) Strings(key string) []string {
	return optional[[]string](r, key, nil, toStrings)
}

// DMTFTimeOr reads an optional CIM datetime and returns it in loc. An absent
// property yields the zero time; a present but malformed one is a failure.
func (r *Reader) DMTFTimeOr(key string, loc *time.Location) time.Time {
	t := optional(r, key, time.Time{}, func(v any) (time.Time, error) {
		s, err := toString(v)
		if err != nil {
			return time.Time{}, err
		}
		return ParseDMTF(s)
	})
	if t.IsZero() || loc == nil {
		return t
	}
	return t.In(loc)
}

// Enum reads a required integer code and maps it through parse.
func Enum[T any](r *Reader, key string, parse func(int64) T) T {
	return parse(r.Int64(key))
}

// EnumOr reads an optional integer code; absent yields def.
func EnumOr[T any](r *Reader, key string, def T, parse func(int64) T) T {
	if !r.Has(key) {
		return def
	}
	return parse(r.Int64(key))
}

// ParseDMTF parses the leading 14 digits of a CIM datetime as UTC. The
// digit run must be exactly 14 long.
func ParseDMTF(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) < len(dmtfLayout) {
		return time.Time{}, fmt.Errorf("datetime %q shorter than %d digits", s, len(dmtfLayout))
	}
	for i := 0; i < len(dmtfLayout); i++ {
		if s[i] < '0' || s[i] > '9' {
			return time.Time{}, fmt.Errorf("datetime %q has non-digit at offset %d", s, i)
		}
	}
	if n := len(dmtfLayout); len(s) > n && s[n] >= '0' && s[n] <= '9' {
		return time.Time{}, fmt.Errorf("datetime %q has more than %d leading digits", s, n)
	}
	return time.ParseInLocation(dmtfLayout, s[:len(dmtfLayout)], time.UTC)
}

func required[T any](r *Reader, key string, conv func(any) (T, error)) T {
	var zero T
	if r.err != nil {
		return zero
	}
	v, ok := r.bag.Lookup(key)
	if !ok {
		r.err = &FieldError{Field: key, Err: ErrMissingField}
		return zero
	}
	out, err := conv(v)
	if err != nil {
		r.err = &FieldError{Field: key, Err: fmt.Errorf("%w: %v", ErrParse, err)}
		return zero
	}
	return out
}

func optional[T any](r *Reader, key string, def T, conv func(any) (T, error)) T {
	if r.err != nil {
		return def
	}
	if _, ok := r.bag.Lookup(key); !ok {
		return def
	}
	return required(r, key, conv)
}

func toString(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case fmt.Stringer:
		return x.String(), nil
	}
	return cast.ToStringE(v)
}

// Integer strings are parsed base 10; cast would read "010" as octal.
func toInt64(v any) (int64, error) {
	switch x := v.(type) {
	case string:
		return strconv.ParseInt(strings.TrimSpace(x), 10, 64)
	case bool:
		return 0, fmt.Errorf("boolean %v is not an integer", x)
	}
	return cast.ToInt64E(v)
}

func toFloat64(v any) (float64, error) {
	switch x := v.(type) {
	case string:
		return strconv.ParseFloat(strings.TrimSpace(x), 64)
	case bool:
		return 0, fmt.Errorf("boolean %v is not a number", x)
	}
	return cast.ToFloat64E(v)
}

func toBool(v any) (bool, error) {
	if s, ok := v.(string); ok {
		return strconv.ParseBool(strings.TrimSpace(s))
	}
	return cast.ToBoolE(v)
}

func toStrings(v any) ([]string, error) {
	switch x := v.(type) {
	case []string:
		return append([]string(nil), x...), nil
	case string:
		return []string{x}, nil
	case []any:
		out := make([]string, 0, len(x))
		for _, item := range x {
			s, err := toString(item)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%T is not a list", v)
}
