// Package stats samples live performance counters.
package stats

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrSampling wraps any counter failure that aborted a sample.
	ErrSampling = errors.New("sampling failed")
	// ErrCounterUnavailable is returned when a counter or the counter
	// subsystem does not exist on this host.
	ErrCounterUnavailable = errors.New("performance counter unavailable")
	// ErrUnsupported is returned by the PDH source on non-Windows builds.
	ErrUnsupported = fmt.Errorf("%w: performance counters require windows", ErrCounterUnavailable)
)

// CPUPause separates the two reads of the processor time counter.
const CPUPause = 100 * time.Millisecond

// CounterSource reads a single formatted counter value. instance is empty
// for counters without instances.
type CounterSource interface {
	ReadCounter(category, counter, instance string) (float64, error)
}

// Counter identifies one performance counter.
type Counter struct {
	Category string
	Name     string
	Instance string
}

func (c Counter) String() string {
	if c.Instance == "" {
		return fmt.Sprintf(`\%s\%s`, c.Category, c.Name)
	}
	return fmt.Sprintf(`\%s(%s)\%s`, c.Category, c.Instance, c.Name)
}

// Counters read by Sample, in read order.
var (
	CounterAvailableMB     = Counter{"Memory", "Available MBytes", ""}
	CounterProcessorTime   = Counter{"Processor", "% Processor Time", "_Total"}
	CounterThreads         = Counter{"Process", "Thread Count", "_Total"}
	CounterContextSwitches = Counter{"System", "Context Switches/sec", ""}
	CounterHandles         = Counter{"Process", "Handle Count", "_Total"}
	CounterSystemCalls     = Counter{"System", "System Calls/sec", ""}
	CounterDiskReadBytes   = Counter{"PhysicalDisk", "Disk Read Bytes/sec", "_Total"}
	CounterDiskWriteBytes  = Counter{"PhysicalDisk", "Disk Write Bytes/sec", "_Total"}
	CounterDiskSecPerRead  = Counter{"PhysicalDisk", "Avg. Disk sec/Read", "_Total"}
	CounterDiskSecPerWrite = Counter{"PhysicalDisk", "Avg. Disk sec/Write", "_Total"}
)

// Clock pauses the sampler. Sleep returns early with ctx.Err() when ctx
// is done.
type Clock interface {
	Sleep(ctx context.Context, d time.Duration) error
}

type systemClock struct{}

func (systemClock) Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// SystemClock sleeps in real time.
var SystemClock Clock = systemClock{}

// Sampler takes Snapshots from a CounterSource.
type Sampler struct {
	src        CounterSource
	totalMemMB float64
	clock      Clock
	now        func() time.Time
}

// Option configures a Sampler.
type Option func(*Sampler)

// WithClock replaces the clock used for the processor time pause.
func WithClock(c Clock) Option {
	return func(s *Sampler) { s.clock = c }
}

// WithNow replaces the snapshot timestamp source.
func WithNow(now func() time.Time) Option {
	return func(s *Sampler) { s.now = now }
}

// NewSampler returns a Sampler. totalMemMB is captured once by the caller
// and never refreshed; zero disables the memory usage percentage.
func NewSampler(src CounterSource, totalMemMB float64, opts ...Option) *Sampler {
	s := &Sampler{
		src:        src,
		totalMemMB: totalMemMB,
		clock:      SystemClock,
		now:        time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// TotalMemMB returns the total memory size the sampler was created with.
func (s *Sampler) TotalMemMB() float64 { return s.totalMemMB }

// Sample reads every counter once, except processor time which is read
// twice CPUPause apart and the second value kept. Any failure aborts the
// sample.
func (s *Sampler) Sample(ctx context.Context) (Snapshot, error) {
	snap := Snapshot{Time: s.now(), TotalMemMB: s.totalMemMB}

	var err error
	read := func(c Counter) float64 {
		if err != nil {
			return 0
		}
		var v float64
		v, err = s.src.ReadCounter(c.Category, c.Name, c.Instance)
		if err != nil {
			err = fmt.Errorf("%w: %s: %w", ErrSampling, c, err)
		}
		return v
	}

	snap.FreeMemMB = read(CounterAvailableMB)
	read(CounterProcessorTime)
	if err == nil {
		if serr := s.clock.Sleep(ctx, CPUPause); serr != nil {
			return Snapshot{}, serr
		}
	}
	snap.CPUUsage = read(CounterProcessorTime)
	snap.ThreadCount = int64(read(CounterThreads))
	snap.ContextSwitches = int64(read(CounterContextSwitches))
	snap.HandleCount = int64(read(CounterHandles))
	snap.SystemCalls = int64(read(CounterSystemCalls))
	snap.DiskReadBytes = int64(read(CounterDiskReadBytes))
	snap.DiskWriteBytes = int64(read(CounterDiskWriteBytes))
	snap.AvgDiskSecPerRead = read(CounterDiskSecPerRead)
	snap.AvgDiskSecPerWrite = read(CounterDiskSecPerWrite)
	if err != nil {
		return Snapshot{}, err
	}

	snap.MemUsagePercent = memUsage(snap.TotalMemMB, snap.FreeMemMB)
	return snap, nil
}

func memUsage(total, free float64) float64 {
	if total <= 0 {
		return 0
	}
	return (total - free) * 100 / total
}
