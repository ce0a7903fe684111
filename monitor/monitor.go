// Package monitor periodically samples host resource usage and writes each
// sample as a line of JSON.
//
// A Monitor stops when its context is cancelled or when Duration has elapsed,
// whichever comes first. Cancellation is observed between samples and while
// waiting for the next tick, so callers stop it by cancelling the context
// rather than through any shared flag.
package monitor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

type SampleFunc func(ctx context.Context) (Snapshot, error)

type Monitor struct {
	Interval time.Duration
	Duration time.Duration
	Sample   SampleFunc
}

func New(interval, duration time.Duration) *Monitor {
	return &Monitor{
		Interval: interval,
		Duration: duration,
		Sample:   TakeSnapshot,
	}
}

// Run samples until ctx is done or Duration elapses; a zero Duration runs
// until cancelled. It returns nil on a normal stop and an error only when
// writing to w fails.
func (m *Monitor) Run(ctx context.Context, w io.Writer) error {

	if m.Interval <= 0 {
		return fmt.Errorf("Invalid interval: %s", m.Interval)
	}

	if m.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.Duration)
		defer cancel()
	}

	sample := m.Sample
	if sample == nil {
		sample = TakeSnapshot
	}

	encoder := json.NewEncoder(w)

	ticker := time.NewTicker(m.Interval)
	defer ticker.Stop()

	for {
		if ctx.Err() != nil {
			return nil
		}

		snap, err := sample(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logrus.Warnf("Sample failed: %s", err)
		} else if err := encoder.Encode(snap); err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
