//go:build windows

package stats

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modpdh = windows.NewLazySystemDLL("pdh.dll")

	procPdhOpenQueryW               = modpdh.NewProc("PdhOpenQueryW")
	procPdhAddEnglishCounterW       = modpdh.NewProc("PdhAddEnglishCounterW")
	procPdhCollectQueryData         = modpdh.NewProc("PdhCollectQueryData")
	procPdhGetFormattedCounterValue = modpdh.NewProc("PdhGetFormattedCounterValue")
	procPdhCloseQuery               = modpdh.NewProc("PdhCloseQuery")
)

const (
	pdhFmtDouble   = 0x00000200
	pdhFmtNoCap100 = 0x00008000

	pdhCstatusNoObject    = 0xC0000BB8
	pdhCstatusNoCounter   = 0xC0000BB9
	pdhCstatusInvalidData = 0xC0000BBA
	pdhInvalidData        = 0xC0000BC6
	pdhNoData             = 0x800007D5
)

// pdhFmtCounterValueDouble mirrors PDH_FMT_COUNTERVALUE with the double
// member selected.
type pdhFmtCounterValueDouble struct {
	CStatus uint32
	_       uint32
	Value   float64
}

type pdhCounter struct {
	query  uintptr
	handle uintptr
	primed bool
}

// PDHSource reads counters through the Performance Data Helper library.
// Each counter path keeps its own query so a rate counter is computed over
// the interval between two reads of that counter.
type PDHSource struct {
	counters map[string]*pdhCounter
}

// NewPDHSource loads pdh.dll.
func NewPDHSource() (*PDHSource, error) {
	if err := modpdh.Load(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCounterUnavailable, err)
	}
	return &PDHSource{counters: make(map[string]*pdhCounter)}, nil
}

func (s *PDHSource) ReadCounter(category, counter, instance string) (float64, error) {
	path := Counter{Category: category, Name: counter, Instance: instance}.String()

	c, ok := s.counters[path]
	if !ok {
		var err error
		if c, err = openCounter(path); err != nil {
			return 0, err
		}
		s.counters[path] = c
	}

	if r, _, _ := procPdhCollectQueryData.Call(c.query); r != 0 && uint32(r) != pdhNoData {
		return 0, pdhError("collect "+path, uint32(r))
	}

	var v pdhFmtCounterValueDouble
	r, _, _ := procPdhGetFormattedCounterValue.Call(c.handle, pdhFmtDouble|pdhFmtNoCap100, 0, uintptr(unsafe.Pointer(&v)))
	switch uint32(r) {
	case 0:
	case pdhInvalidData, pdhCstatusInvalidData:
		// Rate counters have no value until the second collection.
		if !c.primed {
			c.primed = true
			return 0, nil
		}
		return 0, pdhError("format "+path, uint32(r))
	default:
		return 0, pdhError("format "+path, uint32(r))
	}
	c.primed = true
	return v.Value, nil
}

// Close releases every open query.
func (s *PDHSource) Close() error {
	for path, c := range s.counters {
		procPdhCloseQuery.Call(c.query)
		delete(s.counters, path)
	}
	return nil
}

func openCounter(path string) (*pdhCounter, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, fmt.Errorf("counter path %q: %w", path, err)
	}

	var c pdhCounter
	if r, _, _ := procPdhOpenQueryW.Call(0, 0, uintptr(unsafe.Pointer(&c.query))); r != 0 {
		return nil, pdhError("open query", uint32(r))
	}
	r, _, _ := procPdhAddEnglishCounterW.Call(c.query, uintptr(unsafe.Pointer(p)), 0, uintptr(unsafe.Pointer(&c.handle)))
	if r != 0 {
		procPdhCloseQuery.Call(c.query)
		return nil, pdhError("add counter "+path, uint32(r))
	}
	return &c, nil
}

func pdhError(op string, status uint32) error {
	switch status {
	case pdhCstatusNoObject, pdhCstatusNoCounter:
		return fmt.Errorf("%w: %s: pdh status 0x%08X", ErrCounterUnavailable, op, status)
	}
	return fmt.Errorf("%s: pdh status 0x%08X", op, status)
}
