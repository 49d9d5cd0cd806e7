package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/tinytelemetry/statekit/internal/counter"
	"github.com/tinytelemetry/statekit/internal/model"
	"github.com/tinytelemetry/statekit/internal/schedule"
)

// runHeadless starts an interval counter on a private event loop, writes each
// tick to out, and stops it after duration or when ctx is done, whichever
// comes first. A zero duration waits for ctx. It returns the final count.
func runHeadless(ctx context.Context, cfg appConfig, duration time.Duration, out io.Writer) (int64, error) {
	loop := schedule.NewLoop(64)
	loopCtx, stopLoop := context.WithCancel(context.Background())
	defer stopLoop()

	var (
		timer  *counter.Interval
		final  int64
		outErr error
	)

	start := func() {
		timer = counter.NewInterval(loop, cfg.TickInterval)
		timer.Subscribe(func(s model.TimerState) {
			if !s.Active {
				return
			}
			log.Debug().Int64("count", s.Count).Msg("tick")
			if s.Count == 0 {
				return
			}
			if _, err := fmt.Fprintf(out, "%d\n", s.Count); err != nil && outErr == nil {
				outErr = err
			}
		})
		timer.Toggle()
		log.Info().Dur("interval", timer.Every()).Msg("headless timer started")
	}

	finish := func() {
		if timer.Active() {
			timer.Toggle()
		}
		final = timer.Count()
		timer.Close()
		log.Info().Int64("count", final).Msg("headless timer stopped")
		stopLoop()
	}

	var g errgroup.Group
	g.Go(func() error { return loop.Run(loopCtx) })

	loop.Post(start)

	g.Go(func() error {
		var deadline <-chan time.Time
		if duration > 0 {
			t := time.NewTimer(duration)
			defer t.Stop()
			deadline = t.C
		}
		select {
		case <-ctx.Done():
		case <-deadline:
		}
		loop.Post(finish)
		return nil
	})

	if err := g.Wait(); err != nil {
		return final, fmt.Errorf("headless loop: %w", err)
	}
	if outErr != nil {
		return final, fmt.Errorf("writing ticks: %w", outErr)
	}
	return final, nil
}
