package viewer

import (
	"time"

	"sceneview/internal/config"
)

// spinWindow is how close to the deadline the limiter switches from
// sleeping to spinning. Sleep alone overshoots by scheduler quanta,
// which is visible at high frame caps.
const spinWindow = 200 * time.Microsecond

// FPSLimiter paces the tick loop to the configured frame cap.
type FPSLimiter struct {
	next time.Time
}

// NewFPSLimiter creates an idle limiter. The first Wait anchors it to
// the current time.
func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{}
}

// Wait blocks until the next frame deadline. A zero cap disables
// pacing and clears the anchor so a later cap starts fresh.
func (f *FPSLimiter) Wait() {
	limit := config.GetFPSLimit()
	if limit <= 0 {
		f.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(limit)

	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > spinWindow {
			time.Sleep(remaining - spinWindow)
		}
		if time.Until(f.next) <= 0 {
			break
		}
	}

	// After a hitch the deadline can be a whole frame behind; resync
	// instead of bursting frames to catch up.
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}
