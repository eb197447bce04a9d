package collector

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Banner returns the section separator used in reports.
func Banner(section string) string {
	return fmt.Sprintf("********** %s **********", section)
}

// lines builds a "Label: value" rendering. Empty string values are
// dropped so no label is printed with nothing after it.
type lines struct {
	b strings.Builder
}

func (l *lines) str(label, value string) {
	if value == "" {
		return
	}
	l.b.WriteString(label)
	l.b.WriteString(": ")
	l.b.WriteString(value)
	l.b.WriteByte('\n')
}

func (l *lines) int(label string, v int64) {
	l.str(label, strconv.FormatInt(v, 10))
}

func (l *lines) bool(label string, v bool) {
	l.str(label, strconv.FormatBool(v))
}

// bytes renders a byte count followed by its IEC size, e.g. "1048576 (1.0 MiB)".
// Negative counts are unknown sizes and print as is.
func (l *lines) bytes(label string, v int64) {
	if v < 0 {
		l.int(label, v)
		return
	}
	l.str(label, fmt.Sprintf("%d (%s)", v, humanize.IBytes(uint64(v))))
}

func (l *lines) String() string { return l.b.String() }
