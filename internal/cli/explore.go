package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/go-tangra/go-tangra-sysexplorer/internal/collector"
	"github.com/go-tangra/go-tangra-sysexplorer/internal/config"
	"github.com/go-tangra/go-tangra-sysexplorer/internal/observability"
	"github.com/go-tangra/go-tangra-sysexplorer/internal/propbag"
	"github.com/go-tangra/go-tangra-sysexplorer/internal/report"
	"github.com/go-tangra/go-tangra-sysexplorer/internal/snapshot"
)

type exploreOptions struct {
	overwrite bool
	format    string
	snapshot  string
	env       bool
}

func addExploreFlags(cmd *cobra.Command, o *exploreOptions) {
	cmd.Flags().BoolVar(&o.overwrite, "overwrite", false, "replace the report file instead of appending to it")
	cmd.Flags().StringVar(&o.format, "format", "", "report format: text or json (default text)")
	cmd.Flags().StringVar(&o.snapshot, "snapshot", "", "render a snapshot captured with 'capture' instead of querying this host")
	cmd.Flags().BoolVar(&o.env, "env", false, "include environment variables in the platform section")
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return usageErrorf("%s takes %d argument(s), got %d", cmd.Name(), n, len(args))
		}
		return nil
	}
}

func (a *app) exploreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore <filename>",
		Short: "Run hardware explorer and log information to output file",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runExplore(cmd, args[0])
		},
	}
	addExploreFlags(cmd, &a.exploreOpts)
	return cmd
}

// applyExploreFlags lets explicitly set flags win over the config file.
func (a *app) applyExploreFlags(cmd *cobra.Command, file string) error {
	if strings.TrimSpace(file) == "" {
		return usageErrorf("an output filename is required")
	}
	cfg := a.cfg
	cfg.OutputFile = file
	if cmd.Flags().Changed("overwrite") && a.exploreOpts.overwrite {
		cfg.ReportMode = config.ModeOverwrite
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = a.exploreOpts.format
	}
	if cmd.Flags().Changed("snapshot") {
		cfg.Snapshot = a.exploreOpts.snapshot
	}
	if cmd.Flags().Changed("env") {
		cfg.IncludeEnvironment = a.exploreOpts.env
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return nil
}

func (a *app) runExplore(cmd *cobra.Command, file string) error {
	if err := a.applyExploreFlags(cmd, file); err != nil {
		return err
	}
	cfg := a.cfg
	ctx := cmd.Context()

	a.console.Info("Running the hardware explorer instance... (This may take few minutes)")

	provider, platform, err := a.sources(cmd)
	if err != nil {
		return err
	}

	opts := []collector.Option{
		collector.WithLogger(a.logger),
		collector.WithErrorHook(observability.CaptureError),
	}
	if cfg.Format == config.FormatText {
		sink := report.NewFileSink(a.deps.Fs, cfg.OutputFile, a.logger)
		if cfg.ReportMode == config.ModeOverwrite {
			sink.Overwrite("")
		}
		opts = append(opts, collector.WithReport(sink))
	}

	inv, err := collector.New(provider, platform, opts...).Collect(ctx)
	if inv == nil {
		observability.CaptureError(err, map[string]string{"command": "explore"})
		return err
	}
	if err != nil {
		a.logger.Warn("inventory incomplete", "error", err)
		a.console.Warning("Some sections could not be collected; see the log for details")
	}

	if cfg.Format == config.FormatJSON {
		if err := writeJSON(a.deps.Fs, cfg.OutputFile, inv); err != nil {
			return err
		}
	}
	a.console.Success(fmt.Sprintf("Inventory written to %s", cfg.OutputFile))
	return nil
}

// sources picks a snapshot replay when one is configured and the live
// host otherwise.
func (a *app) sources(cmd *cobra.Command) (propbag.Provider, collector.PlatformSource, error) {
	if path := a.cfg.Snapshot; path != "" {
		f, err := snapshot.Load(a.deps.Fs, path)
		if err != nil {
			return nil, nil, err
		}
		a.logger.Info("replaying snapshot", "path", path, "host", f.Hostname, "captured_at", f.CapturedAt)
		p := snapshot.NewProvider(f)
		return p, p, nil
	}

	provider, err := a.deps.Provider(cmd.Context())
	if err != nil {
		return nil, nil, fmt.Errorf("connect to management interface: %w", err)
	}
	return provider, a.deps.Platform(a.cfg.IncludeEnvironment, a.logger), nil
}

func writeJSON(fs afero.Fs, path string, inv *collector.Inventory) error {
	f, err := fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("cannot create output file: %w", err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(inv); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding inventory: %w", err)
	}
	return f.Close()
}

func (a *app) captureCmd() *cobra.Command {
	var includeEnv bool
	cmd := &cobra.Command{
		Use:   "capture <snapshot.yaml>",
		Short: "Record the raw management data of this host for later replay",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			provider, err := a.deps.Provider(ctx)
			if err != nil {
				return fmt.Errorf("connect to management interface: %w", err)
			}
			hostname, _ := os.Hostname()

			f, err := snapshot.Capture(ctx, provider, a.deps.Platform(includeEnv || a.cfg.IncludeEnvironment, a.logger), hostname)
			if f == nil {
				return err
			}
			if err != nil {
				a.logger.Warn("snapshot incomplete", "error", err)
			}
			if err := snapshot.Save(a.deps.Fs, args[0], f); err != nil {
				return err
			}
			a.console.Success(fmt.Sprintf("Snapshot written to %s", args[0]))
			return nil
		},
	}
	cmd.Flags().BoolVar(&includeEnv, "env", false, "include environment variables in the platform facts")
	return cmd
}
