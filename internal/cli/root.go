// Package cli implements the sysexplorer command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/go-tangra/go-tangra-sysexplorer/internal/config"
	"github.com/go-tangra/go-tangra-sysexplorer/internal/logging"
	"github.com/go-tangra/go-tangra-sysexplorer/internal/observability"
	"github.com/go-tangra/go-tangra-sysexplorer/internal/stats"
	"github.com/go-tangra/go-tangra-sysexplorer/internal/winsvc"
)

// Set at build time with -ldflags "-X".
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// Exit codes returned by Execute.
const (
	ExitOK      = 0
	ExitUsage   = -1
	ExitRuntime = 1
)

// eventSource names the event log source used with --event-log.
const eventSource = "SysExplorer"

// ErrInvalidArgument marks command line mistakes.
var ErrInvalidArgument = errors.New("the input arguments are invalid")

func usageErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

type app struct {
	deps    Deps
	stdout  io.Writer
	stderr  io.Writer
	cfgFile string

	cfg     *config.Config
	logger  *slog.Logger
	console *logging.Console
	cleanup []func()

	explore     string
	statsArg    string
	exploreOpts exploreOptions
	template    string
}

// Execute runs the command line in args (without the program name) and
// returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer, deps Deps) int {
	a := &app{
		deps:    deps,
		stdout:  stdout,
		stderr:  stderr,
		console: logging.NewConsole(stdout),
		logger:  slog.New(slog.NewTextHandler(stderr, nil)),
	}
	defer a.close()

	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, ErrInvalidArgument) || errors.Is(err, stats.ErrInvalidIterations) {
		fmt.Fprintf(stderr, "%v\n\n", err)
		if cmd != nil {
			fmt.Fprint(stderr, cmd.UsageString())
		}
		return ExitUsage
	}
	a.console.Error(err.Error())
	return ExitRuntime
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sysexplorer [-e filename] [-s iterations]",
		Short: "Windows hardware explorer and live system statistics",
		Long: `sysexplorer queries the Windows management interface for processor,
memory, video controller, disk and platform details and writes them to a
text report, or samples live performance counters at one second intervals.

  -e  Run hardware explorer and log information to output file
  -s  Get system statistics`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageErrorf("unexpected argument %q", args[0])
			}
			return nil
		},
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			explore, sample := cmd.Flags().Changed("explore"), cmd.Flags().Changed("stats")
			switch {
			case explore && sample:
				return usageErrorf("-e and -s cannot be combined")
			case explore:
				return a.runExplore(cmd, a.explore)
			case sample:
				return a.runStats(cmd, a.statsArg)
			}
			return usageErrorf("one of -e or -s is required")
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default: ./configs/sysexplorer.yaml)")
	pf.String("log-level", "", "log level: debug, info, warn or error (default warn)")
	pf.String("log-format", "", "log format: text or json")
	pf.Bool("event-log", false, "send log output to the Windows Event Log")

	root.Flags().StringVarP(&a.explore, "explore", "e", "", "run hardware explorer and log information to `filename`")
	root.Flags().StringVarP(&a.statsArg, "stats", "s", "", "print system statistics `iterations` times")
	addExploreFlags(root, &a.exploreOpts)
	root.Flags().StringVar(&a.template, "template", "", "Go template used to render each statistics sample")

	root.AddCommand(a.exploreCmd(), a.statsCmd(), a.captureCmd(), versionCmd())
	return root
}

// setup loads configuration and builds the logger. Flags override the
// config file and environment.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v, _ := cmd.Flags().GetString("log-format"); v != "" {
		cfg.LogFormat = v
	}
	if cmd.Flags().Changed("event-log") {
		cfg.EventLog, _ = cmd.Flags().GetBool("event-log")
	}
	a.cfg = cfg

	out := a.stderr
	if cfg.EventLog {
		w, err := winsvc.OpenEventLog(eventSource)
		if err != nil {
			a.console.Warning(fmt.Sprintf("event log unavailable, logging to stderr: %v", err))
		} else {
			out = w
			a.cleanup = append(a.cleanup, func() { _ = w.Close() })
		}
	}
	logger, err := logging.New(out, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	a.logger = logger

	flush, enabled, err := observability.InitSentry(cfg.SentryDSN, cfg.SentryEnvironment, Version)
	if err != nil {
		a.logger.Warn("sentry disabled", "error", err)
	} else if enabled {
		a.cleanup = append(a.cleanup, flush)
	}
	return nil
}

func (a *app) close() {
	for i := len(a.cleanup) - 1; i >= 0; i-- {
		a.cleanup[i]()
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  exactArgs(0),
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sysexplorer %s (commit: %s, built: %s)\n", Version, CommitHash, BuildDate)
		},
	}
}
