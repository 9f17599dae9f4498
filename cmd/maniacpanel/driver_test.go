package main

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gogpu/overlay"
)

func TestDriverReportsRetry(t *testing.T) {
	var status overlay.Status
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	attempts := make(chan int, 8)
	n := 0
	attach := func(ctx context.Context, report func(string)) error {
		n++
		report(StatusPlaying)
		attempts <- n
		if n >= 2 {
			<-ctx.Done()
			return ctx.Err()
		}
		return errors.New("game not found")
	}

	d := newDriver(&status, attach)
	d.retry = time.Millisecond
	done := make(chan struct{})
	go func() {
		defer close(done)
		d.run(ctx)
	}()

	for want := 1; want <= 2; want++ {
		select {
		case got := <-attempts:
			if got != want {
				t.Fatalf("attempt %d, want %d", got, want)
			}
		case <-time.After(5 * time.Second):
			t.Fatalf("attempt %d never started", want)
		}
	}
	if got := status.Load(); got != StatusPlaying {
		t.Errorf("status = %q, want %q", got, StatusPlaying)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("driver did not stop after cancel")
	}
}

func TestDriverRetryMessage(t *testing.T) {
	var status overlay.Status
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	failed := make(chan struct{})
	attach := func(context.Context, func(string)) error {
		select {
		case <-failed:
		default:
			close(failed)
		}
		return errNoAutomation
	}

	d := newDriver(&status, attach)
	d.retry = time.Hour
	done := make(chan struct{})
	go func() {
		defer close(done)
		d.run(ctx)
	}()

	<-failed
	deadline := time.Now().Add(5 * time.Second)
	for !strings.Contains(status.Load(), "retrying") {
		if time.Now().After(deadline) {
			t.Fatalf("status = %q, want a retry message", status.Load())
		}
		time.Sleep(time.Millisecond)
	}
	if got := status.Load(); !strings.HasPrefix(got, errNoAutomation.Error()) {
		t.Errorf("status = %q", got)
	}

	cancel()
	<-done
}
