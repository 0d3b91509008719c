// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/quad-market/quad/lib/clock"
)

// scriptedProber answers the first failures-many probes with an error,
// then succeeds.
type scriptedProber struct {
	failures int
	calls    int
}

func (prober *scriptedProber) Health(ctx context.Context) (map[string]any, error) {
	prober.calls++
	if prober.calls <= prober.failures {
		return nil, errors.New("connection refused")
	}
	return map[string]any{"status": "ok"}, nil
}

func TestWaitForHealthy_ImmediateSuccess(t *testing.T) {
	fake := clock.Fake(time.Unix(0, 0))
	prober := &scriptedProber{}

	err := waitForHealthy(context.Background(), prober, fake, time.Second, 10*time.Second)
	if err != nil {
		t.Fatalf("waitForHealthy() error: %v", err)
	}
	if prober.calls != 1 {
		t.Errorf("calls = %d, want 1", prober.calls)
	}
}

func TestWaitForHealthy_RecoversAfterFailures(t *testing.T) {
	fake := clock.Fake(time.Unix(0, 0))
	prober := &scriptedProber{failures: 3}

	done := make(chan error, 1)
	go func() {
		done <- waitForHealthy(context.Background(), prober, fake, time.Second, 30*time.Second)
	}()

	// Release the three backoff sleeps between the failed probes.
	for range 3 {
		waitForWaiters(t, fake)
		fake.Advance(time.Second)
	}

	if err := <-done; err != nil {
		t.Fatalf("waitForHealthy() error: %v", err)
	}
	if prober.calls != 4 {
		t.Errorf("calls = %d, want 4", prober.calls)
	}
}

func TestWaitForHealthy_TimeoutReturnsLastError(t *testing.T) {
	fake := clock.Fake(time.Unix(0, 0))
	prober := &scriptedProber{failures: 1000}

	done := make(chan error, 1)
	go func() {
		done <- waitForHealthy(context.Background(), prober, fake, time.Second, 3*time.Second)
	}()

	for {
		select {
		case err := <-done:
			if err == nil || err.Error() != "connection refused" {
				t.Fatalf("error = %v, want the last probe error", err)
			}
			if prober.calls < 2 {
				t.Errorf("calls = %d, want repeated probes before giving up", prober.calls)
			}
			return
		default:
			if fake.PendingWaiters() > 0 {
				fake.Advance(time.Second)
			}
		}
	}
}

func TestWaitForHealthy_ContextCancellation(t *testing.T) {
	fake := clock.Fake(time.Unix(0, 0))
	prober := &scriptedProber{failures: 1000}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- waitForHealthy(ctx, prober, fake, time.Second, time.Hour)
	}()

	waitForWaiters(t, fake)
	cancel()

	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}

// waitForWaiters blocks until the poll loop is parked on the fake
// clock, so an Advance cannot race past it.
func waitForWaiters(t *testing.T, fake *clock.FakeClock) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for fake.PendingWaiters() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("poll loop never parked on the clock")
		}
		time.Sleep(time.Millisecond)
	}
}
