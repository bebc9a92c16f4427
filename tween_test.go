package stagekit

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenManagerToUnknownProperty(t *testing.T) {
	tm := NewTweenManager()
	e := NewEntity("e")
	tw := tm.To(e, "bogus", 10, 1.0, ease.Linear)
	if tw != nil {
		t.Error("To with an unknown property should return nil")
	}
	if tm.Count() != 0 {
		t.Error("a rejected tween should not be tracked")
	}
}

func TestTweenManagerToAnimatesField(t *testing.T) {
	tm := NewTweenManager()
	e := NewEntity("e")
	e.X = 0
	tm.To(e, "x", 100, 1.0, ease.Linear)

	tm.Advance(0.5)
	if e.X < 40 || e.X > 60 {
		t.Errorf("x at t=0.5/1.0 linear = %f, want ~50", e.X)
	}

	tm.Advance(0.5)
	if e.X < 99.9 {
		t.Errorf("x at completion = %f, want ~100", e.X)
	}
	if tm.Count() != 0 {
		t.Error("a completed tween should be pruned")
	}
}

func TestTweenOnCompleteFires(t *testing.T) {
	tm := NewTweenManager()
	e := NewEntity("e")
	fired := false
	tm.To(e, "x", 10, 0.1, ease.Linear).OnComplete(func() { fired = true })

	tm.Advance(0.2)
	if !fired {
		t.Error("OnComplete should fire once the tween finishes")
	}
}

func TestTweenOnUpdateFires(t *testing.T) {
	tm := NewTweenManager()
	e := NewEntity("e")
	count := 0
	tm.To(e, "x", 10, 1.0, ease.Linear).OnUpdate(func(v float64) { count++ })

	tm.Advance(0.25)
	tm.Advance(0.25)
	if count != 2 {
		t.Errorf("OnUpdate fired %d times, want 2", count)
	}
}

func TestTweenStopHaltsWithoutOnComplete(t *testing.T) {
	tm := NewTweenManager()
	e := NewEntity("e")
	completed := false
	tw := tm.To(e, "x", 100, 1.0, ease.Linear).OnComplete(func() { completed = true })

	tm.Advance(0.1)
	tw.Stop()
	tm.Advance(1.0)

	if completed {
		t.Error("Stop should prevent OnComplete from firing")
	}
	if tm.Count() != 0 {
		t.Error("a stopped tween should be pruned on the next Advance")
	}
}

func TestTweenThenChainsOnCompletion(t *testing.T) {
	tm := NewTweenManager()
	e := NewEntity("e")
	e.X, e.Y = 0, 0

	second := tm.To(e, "y", 50, 0.1, ease.Linear)
	tm.To(e, "x", 50, 0.1, ease.Linear).Then(second)

	// second is tracked but blocked until the first tween completes.
	tm.Advance(0.05)
	if e.Y != 0 {
		t.Errorf("blocked tween should not advance before its predecessor completes, y = %f", e.Y)
	}

	tm.Advance(0.2)
	tm.Advance(0.2)

	if e.Y < 49 {
		t.Errorf("chained tween should have run after the first completed, y = %f", e.Y)
	}
}

func TestTweenDelayPostponesStart(t *testing.T) {
	tm := NewTweenManager()
	e := NewEntity("e")
	e.X = 0
	tm.To(e, "x", 100, 1.0, ease.Linear).Delay(0.5)

	tm.Advance(0.3)
	if e.X != 0 {
		t.Errorf("x during delay = %f, want unchanged 0", e.X)
	}

	tm.Advance(0.3) // delay now exhausted; the tween runs from the next Advance
	tm.Advance(1.0)
	if e.X < 99 {
		t.Errorf("x after delay elapses and tween runs = %f, want ~100", e.X)
	}
}

func TestTweenManagerClear(t *testing.T) {
	tm := NewTweenManager()
	e := NewEntity("e")
	tm.To(e, "x", 100, 1.0, ease.Linear)
	tm.Clear()
	if tm.Count() != 0 {
		t.Error("Clear should drop all active tweens")
	}
}

func TestTweenSkipsDestroyedTarget(t *testing.T) {
	tm := NewTweenManager()
	e := NewEntity("e")
	tm.To(e, "x", 100, 1.0, ease.Linear)
	e.Destroy()

	tm.Advance(0.1)
	if tm.Count() != 0 {
		t.Error("a tween whose target was destroyed should be pruned")
	}
}

func TestTweenNilReceiverSafety(t *testing.T) {
	var tw *Tween
	tw.Delay(1).OnUpdate(nil).OnComplete(nil).Then(nil).Stop()
	if tw.State() != TweenPending {
		t.Errorf("nil *Tween.State() should be the zero value, got %v", tw.State())
	}
}

func TestToCustomUsesEasingFunc(t *testing.T) {
	tm := NewTweenManager()
	e := NewEntity("e")
	e.X = 0
	tm.ToCustom(e, "x", 100, 1.0, func(t float32) float32 { return t })

	tm.Advance(0.5)
	if e.X < 40 || e.X > 60 {
		t.Errorf("custom identity easing at t=0.5 = %f, want ~50", e.X)
	}
}
