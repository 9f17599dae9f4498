package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gogpu/overlay"
)

// Status messages.
const (
	StatusWaiting = "waiting for beatmap..."
	StatusPlaying = "playing"
)

// retryDelay is the pause between failed attach attempts.
const retryDelay = 2 * time.Second

// attachFunc runs one automation session, reporting progress through
// report. It returns when the session ends or fails.
type attachFunc func(ctx context.Context, report func(string)) error

// driver owns the status line: it runs automation sessions back to back on
// its own goroutine and publishes their progress to the panel.
type driver struct {
	status *overlay.Status
	attach attachFunc
	retry  time.Duration
}

func newDriver(status *overlay.Status, attach attachFunc) *driver {
	return &driver{status: status, attach: attach, retry: retryDelay}
}

func (d *driver) run(ctx context.Context) {
	for ctx.Err() == nil {
		d.status.Store(StatusWaiting)
		err := d.attach(ctx, d.status.Store)
		if ctx.Err() != nil {
			return
		}
		if err == nil {
			continue
		}

		overlay.Logger().Debug("automation session failed", "err", err)
		d.status.Store(fmt.Sprintf("%v (retrying in %d seconds)", err, int(d.retry.Seconds())))
		t := time.NewTimer(d.retry)
		select {
		case <-ctx.Done():
			t.Stop()
			return
		case <-t.C:
		}
	}
}
