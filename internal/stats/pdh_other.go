//go:build !windows

package stats

// PDHSource is unavailable outside Windows.
type PDHSource struct{}

// NewPDHSource always fails with ErrUnsupported on non-Windows platforms.
func NewPDHSource() (*PDHSource, error) {
	return nil, ErrUnsupported
}

func (*PDHSource) ReadCounter(string, string, string) (float64, error) {
	return 0, ErrUnsupported
}

func (*PDHSource) Close() error { return nil }
