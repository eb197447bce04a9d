package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/go-tangra/go-tangra-sysexplorer/internal/collector"
	"github.com/go-tangra/go-tangra-sysexplorer/internal/platform"
	"github.com/go-tangra/go-tangra-sysexplorer/internal/propbag"
	"github.com/go-tangra/go-tangra-sysexplorer/internal/stats"
)

// Deps holds the host-facing pieces the commands run against.
type Deps struct {
	Fs            afero.Fs
	Provider      func(ctx context.Context) (propbag.Provider, error)
	Platform      func(includeEnv bool, logger *slog.Logger) collector.PlatformSource
	Counters      func() (stats.CounterSource, error)
	TotalMemoryMB func(ctx context.Context) (float64, error)
	Clock         stats.Clock
}

// DefaultDeps queries the local host through WMI and PDH.
func DefaultDeps() Deps {
	return Deps{
		Fs: afero.NewOsFs(),
		Provider: func(context.Context) (propbag.Provider, error) {
			p, err := propbag.NewWMIProvider(propbag.DefaultNamespace)
			if err != nil {
				return nil, err
			}
			return p, nil
		},
		Platform: func(includeEnv bool, logger *slog.Logger) collector.PlatformSource {
			return platform.NewLocal(includeEnv, logger)
		},
		Counters: func() (stats.CounterSource, error) {
			src, err := stats.NewPDHSource()
			if err != nil {
				return nil, err
			}
			return src, nil
		},
		TotalMemoryMB: stats.TotalMemoryMB,
		Clock:         stats.SystemClock,
	}
}
