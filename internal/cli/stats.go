package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-tangra/go-tangra-sysexplorer/internal/observability"
	"github.com/go-tangra/go-tangra-sysexplorer/internal/stats"
)

func (a *app) statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <iterations>",
		Short: "Get system statistics",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStats(cmd, args[0])
		},
	}
	cmd.Flags().StringVar(&a.template, "template", "", "Go template used to render each statistics sample")
	return cmd
}

func (a *app) runStats(cmd *cobra.Command, arg string) error {
	a.console.Info("Running the quick statistics instance...")

	iterations, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || iterations <= 0 {
		return fmt.Errorf("%w: %q", stats.ErrInvalidIterations, arg)
	}

	text := a.cfg.StatsTemplate
	if cmd.Flags().Changed("template") {
		text = a.template
	}
	var renderer stats.Renderer
	if text != "" {
		if renderer, err = stats.NewTemplateRenderer(text); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
	}

	ctx := cmd.Context()
	src, err := a.deps.Counters()
	if err != nil {
		return fmt.Errorf("open performance counters: %w", err)
	}
	if c, ok := src.(io.Closer); ok {
		defer c.Close()
	}

	total, err := a.deps.TotalMemoryMB(ctx)
	if err != nil {
		a.logger.Warn("total memory unknown, memory usage will read 0", "error", err)
		total = 0
	}

	sampler := stats.NewSampler(src, total, stats.WithClock(a.deps.Clock))
	if err := stats.Run(ctx, sampler, iterations, renderer, a.stdout, a.deps.Clock); err != nil {
		a.logger.Error("statistics sampling stopped", "error", err)
		observability.CaptureError(err, map[string]string{"command": "stats"})
		return err
	}
	return nil
}
