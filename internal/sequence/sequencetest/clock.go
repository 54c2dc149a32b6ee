// Package sequencetest provides test doubles for the sequence package.
package sequencetest

import (
	"sort"
	"sync"
	"time"

	"github.com/ja-he/makeymakey/internal/sequence"
)

// ManualClock is a sequence.Clock whose time only moves on Advance.
type ManualClock struct {
	mtx    sync.Mutex
	now    time.Duration
	timers []*manualTimer
}

type manualTimer struct {
	clock   *ManualClock
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

// AfterFunc arms a timer firing f once the clock has advanced by d.
func (c *ManualClock) AfterFunc(d time.Duration, f func()) sequence.Timer {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	t := &manualTimer{clock: c, at: c.now + d, f: f}
	c.timers = append(c.timers, t)
	return t
}

func (t *manualTimer) Stop() bool {
	t.clock.mtx.Lock()
	defer t.clock.mtx.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Advance moves time forward by d and runs every timer that came due, in due
// order.
func (c *ManualClock) Advance(d time.Duration) {
	c.mtx.Lock()
	c.now += d
	var due []*manualTimer
	pending := c.timers[:0]
	for _, t := range c.timers {
		switch {
		case t.stopped:
		case t.at <= c.now:
			t.fired = true
			due = append(due, t)
		default:
			pending = append(pending, t)
		}
	}
	c.timers = pending
	c.mtx.Unlock()

	sort.SliceStable(due, func(i, j int) bool { return due[i].at < due[j].at })
	for _, t := range due {
		t.f()
	}
}

// Pending returns the number of armed timers.
func (c *ManualClock) Pending() int {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}
