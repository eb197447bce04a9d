// Package snapshot records raw property bags to YAML and replays them as a
// query provider, so an inventory can be rendered away from the host it
// was taken on.
package snapshot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/go-tangra/go-tangra-sysexplorer/internal/collector"
	"github.com/go-tangra/go-tangra-sysexplorer/internal/propbag"
)

// ErrNoPlatform is returned when a snapshot holds no Platform bag.
var ErrNoPlatform = errors.New("snapshot has no platform facts")

// File is the on-disk snapshot layout.
type File struct {
	CapturedAt time.Time                `yaml:"captured_at"`
	Hostname   string                   `yaml:"hostname"`
	Classes    map[string][]propbag.Bag `yaml:"classes"`
}

// Capture queries every inventory class from provider, plus the platform
// bag when platform is non-nil. Failed classes are left out and reported
// in the returned error; an unavailable provider aborts the capture.
func Capture(ctx context.Context, provider propbag.Provider, platform collector.PlatformSource, hostname string) (*File, error) {
	f := &File{
		CapturedAt: time.Now().UTC(),
		Hostname:   hostname,
		Classes:    make(map[string][]propbag.Bag),
	}

	var errs []error
	if platform != nil {
		bag, err := platform.PlatformBag(ctx)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", collector.ClassPlatform, err))
		} else {
			f.Classes[collector.ClassPlatform] = []propbag.Bag{bag}
		}
	}

	for _, class := range collector.Classes {
		bags, err := provider.Query(ctx, class)
		if err != nil {
			if errors.Is(err, propbag.ErrUnavailable) || ctx.Err() != nil {
				return nil, err
			}
			errs = append(errs, fmt.Errorf("%s: %w", class, err))
			continue
		}
		f.Classes[class] = bags
	}
	return f, errors.Join(errs...)
}

// Save writes f as YAML to path.
func Save(fs afero.Fs, path string, f *File) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := afero.WriteFile(fs, path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Load reads a snapshot written by Save.
func Load(fs afero.Fs, path string) (*File, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	return &f, nil
}

// Provider replays a snapshot. It serves both class queries and the
// platform bag.
type Provider struct {
	file *File
}

// NewProvider returns a Provider over f.
func NewProvider(f *File) *Provider {
	return &Provider{file: f}
}

func (p *Provider) Query(ctx context.Context, class string) ([]propbag.Bag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return p.file.Classes[class], nil
}

func (p *Provider) PlatformBag(ctx context.Context) (propbag.Bag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	bags := p.file.Classes[collector.ClassPlatform]
	if len(bags) == 0 {
		return nil, ErrNoPlatform
	}
	return bags[0], nil
}
