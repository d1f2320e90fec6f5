package worker

import (
	"context"
	"time"
)

// Worker a long running task
type Worker interface {
	Run(ctx context.Context) error
}

// TickWorker runs a task repeatedly with a pause between rounds
type TickWorker struct {
	// Delay pause after a successful round
	Delay time.Duration
	// ErrDelay pause after a failed round
	ErrDelay time.Duration
}

// StartTick run onWork until ctx is cancelled
func (w *TickWorker) StartTick(ctx context.Context, onWork func(ctx context.Context) error) error {
	delay := w.Delay
	if delay <= 0 {
		delay = 100 * time.Millisecond
	}

	errDelay := w.ErrDelay
	if errDelay <= 0 {
		errDelay = time.Second
	}

	dur := time.Millisecond
	timer := time.NewTimer(dur)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			if err := onWork(ctx); err != nil {
				dur = errDelay
			} else {
				dur = delay
			}

			timer.Reset(dur)
		}
	}
}
