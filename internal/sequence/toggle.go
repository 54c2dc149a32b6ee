package sequence

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"
)

// FrameToggle is a boolean that flips once per period.
//
// A key hat reports "key down AND toggle", so a held key pulses true on about
// every other step instead of staying true, and the edge-triggered hat fires
// repeatedly while the key is held.
type FrameToggle struct {
	period time.Duration
	value  atomic.Bool
}

// NewFrameToggle returns a toggle, initially false, flipping every period.
// The period is fixed for the toggle's lifetime.
func NewFrameToggle(period time.Duration) *FrameToggle {
	return &FrameToggle{period: period}
}

// Period returns the flip period.
func (t *FrameToggle) Period() time.Duration { return t.period }

// Value returns the current value.
func (t *FrameToggle) Value() bool { return t.value.Load() }

// Flip inverts the value and returns the new value.
func (t *FrameToggle) Flip() bool {
	for {
		old := t.value.Load()
		if t.value.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Run flips the toggle every period until ctx is done.
func (t *FrameToggle) Run(ctx context.Context) error {
	if t.period <= 0 {
		return fmt.Errorf("frame toggle period must be positive, is %s", t.period)
	}
	ticker := time.NewTicker(t.period)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			t.Flip()
		}
	}
}
