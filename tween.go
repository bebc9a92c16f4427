package stagekit

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// fieldPtr resolves a named numeric property to the address of the backing
// field on e, per design note §9: tween targets are duck-typed by name
// rather than by reflection, so the accessor table here is the single
// place new tweenable properties are added. The bool is false for unknown
// names.
func (e *Entity) fieldPtr(name string) (*float64, bool) {
	switch name {
	case "x":
		return &e.X, true
	case "y":
		return &e.Y, true
	case "rotation":
		return &e.Rotation, true
	case "scaleX":
		return &e.ScaleX, true
	case "scaleY":
		return &e.ScaleY, true
	case "alpha":
		return &e.Alpha, true
	case "width":
		return &e.Width, true
	case "height":
		return &e.Height, true
	case "anchorX":
		return &e.AnchorX, true
	case "anchorY":
		return &e.AnchorY, true
	default:
		return nil, false
	}
}

// TweenState describes where a Tween is in its lifecycle.
type TweenState int

const (
	TweenPending TweenState = iota
	TweenRunning
	TweenCompleted
	TweenStopped
)

// Tween animates a single named numeric property on an Entity from its
// current value to a target value over a duration, using a named or custom
// easing curve. Generalizes a fixed four-slot tween group into a
// registry of named properties backed by the same github.com/tanema/gween
// dependency.
type Tween struct {
	target   *Entity
	property string
	ptr      *float64
	g        *gween.Tween
	duration float32
	delay    float64

	state   TweenState
	blocked bool // true while waiting on a Then() predecessor to complete

	onUpdate   func(value float64)
	onComplete func()
	next       *Tween
}

// Delay postpones the tween's start by seconds. Must be called before the
// manager has advanced it past TweenPending.
func (t *Tween) Delay(seconds float64) *Tween {
	if t != nil {
		t.delay = seconds
	}
	return t
}

// OnUpdate registers a callback fired with the property's new value after
// every Advance while the tween is running.
func (t *Tween) OnUpdate(fn func(value float64)) *Tween {
	if t != nil {
		t.onUpdate = fn
	}
	return t
}

// OnComplete registers a callback fired once when the tween finishes
// naturally (not when Stopped).
func (t *Tween) OnComplete(fn func()) *Tween {
	if t != nil {
		t.onComplete = fn
	}
	return t
}

// Then chains next to start the instant this tween completes naturally.
// next is normally built via TweenManager.To, which activates it
// immediately; Then blocks it from running until this tween finishes.
func (t *Tween) Then(next *Tween) *Tween {
	if t != nil && next != nil {
		t.next = next
		next.blocked = true
	}
	return t
}

// Stop halts the tween immediately without firing OnComplete, leaving the
// property at its current interpolated value.
func (t *Tween) Stop() {
	if t != nil {
		t.state = TweenStopped
	}
}

// State reports the tween's current lifecycle state.
func (t *Tween) State() TweenState {
	if t == nil {
		return TweenPending
	}
	return t.state
}

// TweenManager owns every active Tween in a Scene and advances them once
// per tick (Advance is called from Scene.Update), generalized to an
// open-ended slice of named-property tweens.
type TweenManager struct {
	active []*Tween
	warn   warnOnce
}

// NewTweenManager creates an empty manager.
func NewTweenManager() *TweenManager {
	return &TweenManager{}
}

// To creates a pending tween of target's named property from its current
// value to `to` over duration seconds using easeFn. Returns nil (after
// logging once) if property is not a known tweenable field.
func (tm *TweenManager) To(target *Entity, property string, to float64, duration float32, easeFn ease.TweenFunc) *Tween {
	ptr, ok := target.fieldPtr(property)
	if !ok {
		tm.warn.warn("tween:"+property, "unknown tween property %q ignored", property)
		return nil
	}
	t := &Tween{
		target:   target,
		property: property,
		ptr:      ptr,
		g:        gween.New(float32(*ptr), float32(to), duration, easeFn),
		duration: duration,
		state:    TweenPending,
	}
	tm.active = append(tm.active, t)
	return t
}

// ToCustom is like To but accepts a user EasingFunc instead of a named
// gween curve.
func (tm *TweenManager) ToCustom(target *Entity, property string, to float64, duration float32, fn EasingFunc) *Tween {
	return tm.To(target, property, to, duration, wrapCustomEasing(fn))
}

// Advance steps every active tween by dt seconds: counts down any pending
// delay, applies the eased value to the target field, fires OnUpdate, and
// on natural completion fires OnComplete and activates any chained tween.
// Stopped and completed tweens are pruned from the active list.
func (tm *TweenManager) Advance(dt float64) {
	if len(tm.active) == 0 {
		return
	}
	kept := tm.active[:0]
	for _, t := range tm.active {
		switch t.state {
		case TweenStopped, TweenCompleted:
			continue
		}
		if t.target.destroyed {
			continue
		}
		if t.blocked {
			kept = append(kept, t)
			continue
		}
		if t.state == TweenPending {
			if t.delay > 0 {
				t.delay -= dt
				kept = append(kept, t)
				continue
			}
			t.state = TweenRunning
		}

		value, done := t.g.Update(float32(dt))
		*t.ptr = float64(value)
		t.target.MarkDirty()
		if t.onUpdate != nil {
			t.onUpdate(float64(value))
		}

		if done {
			t.state = TweenCompleted
			if t.onComplete != nil {
				t.onComplete()
			}
			if t.next != nil {
				t.next.blocked = false
			}
			continue
		}
		kept = append(kept, t)
	}
	tm.active = kept
}

// Clear stops and drops every active tween without firing OnComplete.
func (tm *TweenManager) Clear() {
	tm.active = nil
}

// Count returns the number of tweens currently pending or running.
func (tm *TweenManager) Count() int {
	return len(tm.active)
}
