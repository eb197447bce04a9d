// Package propbag models the loosely typed property sets returned by the
// Windows management interface and provides a typed reader over them.
package propbag

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrMissingField is returned when a required property is absent or null.
	ErrMissingField = errors.New("missing required field")
	// ErrParse is returned when a property cannot be coerced to its field type.
	ErrParse = errors.New("cannot parse field")
	// ErrUnavailable is returned when the query subsystem cannot be reached.
	ErrUnavailable = errors.New("query provider unavailable")
	// ErrUnsupported is returned by the WMI provider on non-Windows builds.
	ErrUnsupported = fmt.Errorf("%w: WMI requires windows", ErrUnavailable)
)

// Bag is one queried object: property name to scalar value. A key holding a
// nil value is equivalent to an absent key.
type Bag map[string]any

// Lookup returns the non-nil value stored under key.
func (b Bag) Lookup(key string) (any, bool) {
	v, ok := b[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Keys returns the property names holding a non-nil value, sorted.
func (b Bag) Keys() []string {
	keys := make([]string, 0, len(b))
	for k, v := range b {
		if v != nil {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Provider runs class queries against the management interface.
type Provider interface {
	Query(ctx context.Context, class string) ([]Bag, error)
}

// Static is an in-memory Provider keyed by class name. Unknown classes
// yield no bags.
type Static map[string][]Bag

func (s Static) Query(ctx context.Context, class string) ([]Bag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s[class], nil
}

// FieldError ties an extraction failure to the property that caused it.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }
