package stagekit

// Timer is a delayed or repeating callback owned by a Scene.
type Timer struct {
	delayMs     float64
	intervalMs  float64
	remainingMs float64
	repeating   bool
	cancelled   bool
	cb          func()
}

// Cancel stops the timer; it will not fire again and is pruned on the next
// Scene.Update.
func (t *Timer) Cancel() {
	if t != nil {
		t.cancelled = true
	}
}

// Cancelled reports whether Cancel has been called.
func (t *Timer) Cancelled() bool { return t == nil || t.cancelled }

// newDelayTimer creates a one-shot timer that fires cb after delayMs
// milliseconds have elapsed.
func newDelayTimer(delayMs float64, cb func()) *Timer {
	return &Timer{delayMs: delayMs, remainingMs: delayMs, cb: cb}
}

// newIntervalTimer creates a repeating timer that fires cb every
// intervalMs milliseconds until cancelled.
func newIntervalTimer(intervalMs float64, cb func()) *Timer {
	return &Timer{intervalMs: intervalMs, remainingMs: intervalMs, repeating: true, cb: cb}
}

// tick advances the timer by dtMs milliseconds, firing cb and resetting
// (for repeating timers) or marking cancelled (for one-shot timers) as it
// crosses zero. A timer whose dtMs overshoots by more than one period
// fires only once per tick, matching a single cooperative simulation step
// rather than a real-time scheduler.
func (t *Timer) tick(dtMs float64) {
	if t.cancelled {
		return
	}
	t.remainingMs -= dtMs
	if t.remainingMs > 0 {
		return
	}
	if t.cb != nil {
		t.cb()
	}
	if t.repeating {
		t.remainingMs += t.intervalMs
		if t.remainingMs <= 0 {
			t.remainingMs = t.intervalMs
		}
		return
	}
	t.cancelled = true
}
