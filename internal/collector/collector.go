package collector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/go-tangra/go-tangra-sysexplorer/internal/propbag"
	"github.com/go-tangra/go-tangra-sysexplorer/internal/report"
)

// Collector runs the inventory queries in a fixed order and renders each
// section to a report as soon as it is complete.
type Collector struct {
	provider propbag.Provider
	platform PlatformSource
	report   report.Sink
	logger   *slog.Logger
	onError  func(error, map[string]string)
	now      func() time.Time
	loc      *time.Location
}

// Option configures a Collector.
type Option func(*Collector)

// WithReport renders every section to s. Without it nothing is written.
func WithReport(s report.Sink) Option {
	return func(c *Collector) { c.report = s }
}

// WithLogger sets the logger used for skipped objects and failed queries.
func WithLogger(l *slog.Logger) Option {
	return func(c *Collector) { c.logger = l }
}

// WithErrorHook registers fn to receive every extraction and query failure
// together with descriptive tags.
func WithErrorHook(fn func(error, map[string]string)) Option {
	return func(c *Collector) { c.onError = fn }
}

// WithClock overrides the collection timestamp source.
func WithClock(now func() time.Time) Option {
	return func(c *Collector) { c.now = now }
}

// WithLocation sets the zone driver dates are reported in.
func WithLocation(loc *time.Location) Option {
	return func(c *Collector) { c.loc = loc }
}

// New returns a Collector reading classes from provider. platform may be
// nil, in which case the platform section is left out.
func New(provider propbag.Provider, platform PlatformSource, opts ...Option) *Collector {
	c := &Collector{
		provider: provider,
		platform: platform,
		report:   report.Discard{},
		logger:   slog.Default(),
		now:      time.Now,
		loc:      time.Local,
	}
	for _, o := range opts {
		o(c)
	}
	if c.report == nil {
		c.report = report.Discard{}
	}
	return c
}

// Collect gathers the full inventory. Objects that fail extraction are
// skipped and counted in Inventory.Skipped. A query failure drops its
// section and is returned alongside the partial inventory, except when the
// provider reports itself unavailable: that aborts the run with a nil
// inventory. The report stays untouched until the provider has answered
// its first query.
func (c *Collector) Collect(ctx context.Context) (*Inventory, error) {
	hostname, _ := os.Hostname()

	inv := &Inventory{
		RunID:       uuid.NewString(),
		CollectedAt: c.now().UTC(),
		Hostname:    hostname,
	}

	// The run header goes out with the first section.
	started := false
	emit := func(text string) {
		if text == "" {
			return
		}
		if !started {
			started = true
			c.report.Append(fmt.Sprintf("Run ID: %s\nCollected At: %s\n\n",
				inv.RunID, inv.CollectedAt.Format(time.RFC3339)))
		}
		c.report.Append(text)
	}

	var errs []error

	var platformText string
	if c.platform != nil {
		text, err := c.collectPlatform(ctx, inv)
		if err != nil {
			if fatal(err) {
				return nil, err
			}
			errs = append(errs, err)
		}
		platformText = text
	}

	banks, n, err := query(ctx, c, inv, ClassPhysicalMemory, ExtractMemoryBank)
	if fatal(err) {
		return nil, err
	}
	// Nothing is written until the provider has answered once.
	emit(platformText)
	if err != nil {
		errs = append(errs, err)
	} else {
		inv.MemoryBanks = banks
		body := stringers(banks)
		if info, err := AggregateMemory(banks); err != nil {
			c.logger.Warn("memory aggregate unavailable", "class", ClassPhysicalMemory, "objects", n, "error", err)
		} else {
			inv.Memory = &info
			body = append([]fmt.Stringer{info}, body...)
		}
		emit(section("Memory", "Memory Banks", n, body))
	}

	cpus, n, err := query(ctx, c, inv, ClassProcessor, ExtractCPU)
	if fatal(err) {
		return nil, err
	}
	if err != nil {
		errs = append(errs, err)
	} else {
		inv.CPUs = cpus
		emit(section("Processor", "Processors", n, stringers(cpus)))
	}

	extractVideo := func(b propbag.Bag) (VideoController, error) {
		return ExtractVideoController(b, c.loc)
	}
	videos, n, err := query(ctx, c, inv, ClassVideoController, extractVideo)
	if fatal(err) {
		return nil, err
	}
	if err != nil {
		errs = append(errs, err)
	} else {
		inv.VideoControllers = videos
		emit(section("Video Controller", "Video Controllers", n, stringers(videos)))
	}

	disks, n, err := query(ctx, c, inv, ClassDiskDrive, ExtractDiskDrive)
	if fatal(err) {
		return nil, err
	}
	if err != nil {
		errs = append(errs, err)
	} else {
		inv.DiskDrives = disks
		emit(section("Disk Drive", "Disk Drives", n, stringers(disks)))
	}

	parts, n, err := query(ctx, c, inv, ClassDiskPartition, ExtractDiskPartition)
	if fatal(err) {
		return nil, err
	}
	if err != nil {
		errs = append(errs, err)
	} else {
		inv.DiskPartitions = parts
		emit(section("Disk Partition", "Disk Partitions", n, stringers(parts)))
	}

	if len(errs) > 0 {
		return inv, fmt.Errorf("collection errors: %w", errors.Join(errs...))
	}
	return inv, nil
}

// collectPlatform returns the rendered platform section, or "" when the
// platform bag could not be extracted.
func (c *Collector) collectPlatform(ctx context.Context, inv *Inventory) (string, error) {
	bag, err := c.platform.PlatformBag(ctx)
	if err != nil {
		err = fmt.Errorf("%s: %w", ClassPlatform, err)
		c.fail(err, ClassPlatform, "query")
		return "", err
	}
	p, err := ExtractPlatform(bag)
	if err != nil {
		c.fail(err, ClassPlatform, "extract")
		c.skip(inv, ClassPlatform)
		return "", nil
	}
	inv.Platform = &p
	return section("Platform", "Platforms", 1, []fmt.Stringer{p}), nil
}

// query fetches every object of class and extracts the ones it can. The
// returned count is the number of objects the provider reported.
func query[T any](ctx context.Context, c *Collector, inv *Inventory, class string, extract func(propbag.Bag) (T, error)) ([]T, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	bags, err := c.provider.Query(ctx, class)
	if err != nil {
		err = fmt.Errorf("%s: %w", class, err)
		c.fail(err, class, "query")
		return nil, 0, err
	}
	c.logger.Debug("queried class", "class", class, "objects", len(bags))

	out := make([]T, 0, len(bags))
	for i, bag := range bags {
		rec, err := extract(bag)
		if err != nil {
			c.logger.Warn("skipping object", "class", class, "index", i, "error", err)
			c.fail(err, class, "extract")
			c.skip(inv, class)
			continue
		}
		out = append(out, rec)
	}
	return out, len(bags), nil
}

func section(title, items string, count int, body []fmt.Stringer) string {
	var b strings.Builder
	b.WriteString(Banner(title))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Detected %s: %d\n", items, count)
	for _, rec := range body {
		b.WriteByte('\n')
		b.WriteString(rec.String())
	}
	b.WriteByte('\n')
	return b.String()
}

func (c *Collector) fail(err error, class, stage string) {
	if stage == "query" {
		c.logger.Error("query failed", "class", class, "error", err)
	}
	if c.onError != nil {
		c.onError(err, map[string]string{"class": class, "stage": stage})
	}
}

func (c *Collector) skip(inv *Inventory, class string) {
	if inv.Skipped == nil {
		inv.Skipped = make(map[string]int)
	}
	inv.Skipped[class]++
}

func fatal(err error) bool {
	return err != nil && (errors.Is(err, propbag.ErrUnavailable) ||
		errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded))
}

func stringers[T fmt.Stringer](in []T) []fmt.Stringer {
	out := make([]fmt.Stringer, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}
