package stats

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// ErrInvalidIterations is returned when Run is asked for fewer than one
// sample.
var ErrInvalidIterations = errors.New("invalid number of iterations (>0)")

// Interval separates consecutive samples in Run.
const Interval = time.Second

// Run takes iterations samples Interval apart and writes each rendering to
// out followed by a blank line. There is no wait after the last sample. A
// nil renderer means DefaultRenderer.
func Run(ctx context.Context, s *Sampler, iterations int, r Renderer, out io.Writer, clock Clock) error {
	if iterations <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidIterations, iterations)
	}
	if r == nil {
		r = DefaultRenderer
	}
	if clock == nil {
		clock = SystemClock
	}

	for i := 0; i < iterations; i++ {
		if i > 0 {
			if err := clock.Sleep(ctx, Interval); err != nil {
				return err
			}
		}
		snap, err := s.Sample(ctx)
		if err != nil {
			return err
		}
		text, err := r.Render(snap)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, text); err != nil {
			return fmt.Errorf("write sample: %w", err)
		}
	}
	return nil
}
