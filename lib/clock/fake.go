// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"sort"
	"sync"
	"time"
)

// Fake returns a FakeClock initialized to the given time. Time stands
// still until Advance is called. After and Sleep register pending
// waiters that fire when the clock advances past their deadline.
//
// FakeClock is safe for concurrent use by multiple goroutines.
func Fake(initial time.Time) *FakeClock {
	return &FakeClock{current: initial}
}

// FakeClock is a deterministic Clock for testing. Time advances only
// when Advance is called. After channels and Sleep calls block until
// the clock is advanced past their deadline.
type FakeClock struct {
	mu      sync.Mutex
	current time.Time
	waiters []*fakeWaiter
}

// fakeWaiter represents a pending After or Sleep operation.
type fakeWaiter struct {
	deadline time.Time
	ch       chan time.Time
}

// Now returns the fake clock's current time.
func (clock *FakeClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.current
}

// After returns a channel that receives the clock's time once Advance
// moves the clock to or past the deadline. If d <= 0, the channel
// receives immediately.
func (clock *FakeClock) After(d time.Duration) <-chan time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()

	ch := make(chan time.Time, 1)
	if d <= 0 {
		ch <- clock.current
		return ch
	}
	clock.waiters = append(clock.waiters, &fakeWaiter{
		deadline: clock.current.Add(d),
		ch:       ch,
	})
	return ch
}

// Sleep blocks until Advance moves the clock past the deadline.
func (clock *FakeClock) Sleep(d time.Duration) {
	<-clock.After(d)
}

// Advance moves the clock forward by d, firing every waiter whose
// deadline has been reached, in deadline order.
func (clock *FakeClock) Advance(d time.Duration) {
	clock.mu.Lock()
	clock.current = clock.current.Add(d)
	now := clock.current

	sort.Slice(clock.waiters, func(i, j int) bool {
		return clock.waiters[i].deadline.Before(clock.waiters[j].deadline)
	})

	var remaining []*fakeWaiter
	var fired []*fakeWaiter
	for _, waiter := range clock.waiters {
		if waiter.deadline.After(now) {
			remaining = append(remaining, waiter)
			continue
		}
		fired = append(fired, waiter)
	}
	clock.waiters = remaining
	clock.mu.Unlock()

	for _, waiter := range fired {
		waiter.ch <- now
	}
}

// PendingWaiters reports how many After/Sleep operations are blocked
// waiting for an Advance. Useful for synchronizing tests that advance
// the clock from a separate goroutine.
func (clock *FakeClock) PendingWaiters() int {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return len(clock.waiters)
}
