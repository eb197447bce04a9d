package stats

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	values map[Counter][]float64
	fail   map[Counter]error
	reads  []Counter
}

func (f *fakeSource) ReadCounter(category, counter, instance string) (float64, error) {
	c := Counter{Category: category, Name: counter, Instance: instance}
	f.reads = append(f.reads, c)
	if err := f.fail[c]; err != nil {
		return 0, err
	}
	vs := f.values[c]
	if len(vs) == 0 {
		return 0, nil
	}
	v := vs[0]
	if len(vs) > 1 {
		f.values[c] = vs[1:]
	}
	return v, nil
}

type fakeClock struct {
	sleeps []time.Duration
	err    error
}

func (c *fakeClock) Sleep(_ context.Context, d time.Duration) error {
	c.sleeps = append(c.sleeps, d)
	return c.err
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		values: map[Counter][]float64{
			CounterAvailableMB:     {4096},
			CounterProcessorTime:   {0, 37.5},
			CounterThreads:         {2143},
			CounterContextSwitches: {15234.7},
			CounterHandles:         {98765},
			CounterSystemCalls:     {40211},
			CounterDiskReadBytes:   {1048576},
			CounterDiskWriteBytes:  {524288},
			CounterDiskSecPerRead:  {0.0005},
			CounterDiskSecPerWrite: {0.00125},
		},
		fail: map[Counter]error{},
	}
}

func TestSample(t *testing.T) {
	src := newFakeSource()
	clock := &fakeClock{}
	s := NewSampler(src, 16384, WithClock(clock))

	snap, err := s.Sample(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 16384.0, snap.TotalMemMB)
	assert.Equal(t, 4096.0, snap.FreeMemMB)
	assert.InDelta(t, 75.0, snap.MemUsagePercent, 1e-9)
	assert.Equal(t, 37.5, snap.CPUUsage)
	assert.Equal(t, int64(2143), snap.ThreadCount)
	assert.Equal(t, int64(15234), snap.ContextSwitches)
	assert.Equal(t, int64(1048576), snap.DiskReadBytes)
	assert.Equal(t, 0.00125, snap.AvgDiskSecPerWrite)

	assert.Equal(t, []time.Duration{CPUPause}, clock.sleeps)
	assert.Equal(t, []Counter{
		CounterAvailableMB,
		CounterProcessorTime,
		CounterProcessorTime,
		CounterThreads,
		CounterContextSwitches,
		CounterHandles,
		CounterSystemCalls,
		CounterDiskReadBytes,
		CounterDiskWriteBytes,
		CounterDiskSecPerRead,
		CounterDiskSecPerWrite,
	}, src.reads)
}

func TestSampleZeroTotalMemory(t *testing.T) {
	snap, err := NewSampler(newFakeSource(), 0, WithClock(&fakeClock{})).Sample(context.Background())
	require.NoError(t, err)
	assert.Zero(t, snap.MemUsagePercent)
}

func TestSampleFailureAborts(t *testing.T) {
	src := newFakeSource()
	src.fail[CounterHandles] = ErrCounterUnavailable

	_, err := NewSampler(src, 1024, WithClock(&fakeClock{})).Sample(context.Background())
	require.ErrorIs(t, err, ErrSampling)
	require.ErrorIs(t, err, ErrCounterUnavailable)
	assert.Contains(t, err.Error(), `\Process(_Total)\Handle Count`)
	assert.Equal(t, CounterHandles, src.reads[len(src.reads)-1])
}

func TestRun(t *testing.T) {
	src := newFakeSource()
	clock := &fakeClock{}
	var out bytes.Buffer

	err := Run(context.Background(), NewSampler(src, 8192, WithClock(clock)), 3, nil, &out, clock)
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(out.String(), "Total memory size: 8192 Mbytes\n"))
	assert.Equal(t, []time.Duration{CPUPause, Interval, CPUPause, Interval, CPUPause}, clock.sleeps)

	cpuReads := 0
	for _, c := range src.reads {
		if c == CounterProcessorTime {
			cpuReads++
		}
	}
	assert.Equal(t, 6, cpuReads)
}

func TestRunInvalidIterations(t *testing.T) {
	for _, n := range []int{0, -3} {
		src := newFakeSource()
		var out bytes.Buffer
		err := Run(context.Background(), NewSampler(src, 1, WithClock(&fakeClock{})), n, nil, &out, &fakeClock{})
		require.ErrorIs(t, err, ErrInvalidIterations)
		assert.Empty(t, src.reads)
		assert.Empty(t, out.String())
	}
}

func TestRunStopsOnSamplingFailure(t *testing.T) {
	src := newFakeSource()
	src.fail[CounterAvailableMB] = errors.New("counter gone")
	var out bytes.Buffer

	err := Run(context.Background(), NewSampler(src, 1, WithClock(&fakeClock{})), 5, nil, &out, &fakeClock{})
	require.ErrorIs(t, err, ErrSampling)
	assert.Len(t, src.reads, 1)
	assert.Empty(t, out.String())
}

func TestRunCancelledWait(t *testing.T) {
	clock := &fakeClock{}
	var out bytes.Buffer
	sampler := NewSampler(newFakeSource(), 1, WithClock(&fakeClock{}))
	clock.err = context.Canceled

	err := Run(context.Background(), sampler, 2, nil, &out, clock)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, strings.Count(out.String(), "CPU usage"))
}

func TestSnapshotString(t *testing.T) {
	s := Snapshot{
		TotalMemMB:         16384,
		FreeMemMB:          4096,
		MemUsagePercent:    75,
		CPUUsage:           12.5,
		ContextSwitches:    100,
		ThreadCount:        2000,
		HandleCount:        90000,
		SystemCalls:        40000,
		DiskReadBytes:      512,
		DiskWriteBytes:     1024,
		AvgDiskSecPerRead:  0.001,
		AvgDiskSecPerWrite: 0,
	}
	want := "Total memory size: 16384 Mbytes\n" +
		"Free memory: 4096 Mbytes\n" +
		"Memory usage: 75%\n" +
		"CPU usage: 12.5%\n" +
		"Context switches: 100\n" +
		"No. threads: 2000\n" +
		"No. handles: 90000\n" +
		"System calls: 40000\n" +
		"Bytes read from the disk: 512 bytes\n" +
		"Bytes written to the disk: 1024 bytes\n" +
		"Avg. disk reading time: 0.001s\n" +
		"Avg. disk writing time: 0s\n"
	assert.Equal(t, want, s.String())
}

func TestTemplateRenderer(t *testing.T) {
	r, err := NewTemplateRenderer(`cpu={{ printf "%.1f" .CPUUsage }} threads={{ .ThreadCount }} {{ "ok" | upper }}`)
	require.NoError(t, err)

	got, err := r.Render(Snapshot{CPUUsage: 37.52, ThreadCount: 12})
	require.NoError(t, err)
	assert.Equal(t, "cpu=37.5 threads=12 OK", got)

	_, err = NewTemplateRenderer(`{{ .Missing`)
	require.Error(t, err)
}

func TestCounterString(t *testing.T) {
	assert.Equal(t, `\Memory\Available MBytes`, CounterAvailableMB.String())
	assert.Equal(t, `\Processor(_Total)\% Processor Time`, CounterProcessorTime.String())
}
