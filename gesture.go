package stagekit

import "math"

// Gesture thresholds: a pointer that moves less than
// dragThresholdPx within tapMaxDurationSec of going down is a tap; holding
// still past longPressSec fires a long-press; crossing dragThresholdPx
// starts a drag.
const (
	dragThresholdPx   = 10.0
	tapMaxDurationSec = 0.300
	longPressSec      = 0.500
	swipeMinVelocity  = 200.0 // px/sec, down-to-up displacement over the whole press duration
)

// SwipeDirection is the quadrant a swipe's displacement falls into.
type SwipeDirection int

const (
	SwipeRight SwipeDirection = iota
	SwipeDown
	SwipeLeft
	SwipeUp
)

// TapEvent, DragEvent, SwipeEvent, PinchEvent, and PointerEvent are the
// payloads delivered to an Entity's or Scene's gesture subscribers.
type TapEvent struct {
	X, Y float64
}

type DragEvent struct {
	X, Y   float64
	DeltaX float64
	DeltaY float64
	StartX float64
	StartY float64
}

type SwipeEvent struct {
	Direction SwipeDirection
	Distance  float64
	Duration  float64
}

type PinchEvent struct {
	Scale            float64
	CenterX, CenterY float64
}

type PointerEvent struct {
	X, Y float64
}

// pointerSession tracks one in-flight pointer (mouse button or touch) from
// down to up/cancel.
type pointerSession struct {
	id             int
	target         *Entity
	startX, startY float64
	startTime      float64
	lastX, lastY   float64
	lastTime       float64
	dragging       bool
	longPressFired bool
}

// GestureRecognizer turns raw PointerSample input into tap/longpress/drag/
// dragend/swipe/pinch/pointerover/pointerout events dispatched to the
// topmost hit entity. Runs a session-per-pointer-ID state machine so two
// concurrent touches can be recognized as a pinch.
type GestureRecognizer struct {
	scene    *Scene
	sessions map[int]*pointerSession
	hovered  map[int]*Entity

	pinchStartDist float64
	pinchActive    bool
}

func newGestureRecognizer(scene *Scene) *GestureRecognizer {
	return &GestureRecognizer{
		scene:    scene,
		sessions: make(map[int]*pointerSession),
		hovered:  make(map[int]*Entity),
	}
}

// Feed processes one pointer sample, updating session state and dispatching
// any gesture events it completes.
func (g *GestureRecognizer) Feed(sample PointerSample) {
	switch sample.Phase {
	case PointerDown:
		g.onDown(sample)
	case PointerMove:
		g.onMove(sample)
	case PointerUp:
		g.onUp(sample)
	case PointerCancel:
		g.onCancel(sample)
	}
}

func (g *GestureRecognizer) onDown(sample PointerSample) {
	target := g.scene.HitTest(sample.X, sample.Y)
	sess := &pointerSession{
		id:        sample.ID,
		target:    target,
		startX:    sample.X,
		startY:    sample.Y,
		startTime: sample.Time,
		lastX:     sample.X,
		lastY:     sample.Y,
		lastTime:  sample.Time,
	}
	g.sessions[sample.ID] = sess

	if target != nil {
		g.scene.notify(target, "pointerdown", sample.X, sample.Y, PointerEvent{X: sample.X, Y: sample.Y})
	}

	g.updateHover(sample.ID, sample.X, sample.Y)

	if len(g.sessions) == 2 {
		g.pinchStartDist = g.currentPinchDistance()
		g.pinchActive = g.pinchStartDist > 1e-6
	}
}

func (g *GestureRecognizer) onMove(sample PointerSample) {
	g.updateHover(sample.ID, sample.X, sample.Y)

	sess, ok := g.sessions[sample.ID]
	if !ok {
		return
	}

	dx, dy := sample.X-sess.startX, sample.Y-sess.startY
	dist := math.Hypot(dx, dy)

	startingDrag := !sess.dragging && dist >= dragThresholdPx
	if startingDrag {
		sess.dragging = true
	}

	if startingDrag && sess.target != nil {
		g.scene.notify(sess.target, "dragstart", sample.X, sample.Y, DragEvent{
			X: sample.X, Y: sample.Y,
			DeltaX: sample.X - sess.lastX,
			DeltaY: sample.Y - sess.lastY,
			StartX: sess.startX, StartY: sess.startY,
		})
	}

	if sess.dragging && sess.target != nil {
		g.scene.notify(sess.target, "drag", sample.X, sample.Y, DragEvent{
			X: sample.X, Y: sample.Y,
			DeltaX: sample.X - sess.lastX,
			DeltaY: sample.Y - sess.lastY,
			StartX: sess.startX, StartY: sess.startY,
		})
	}

	if !sess.longPressFired && !sess.dragging && sample.Time-sess.startTime >= longPressSec {
		sess.longPressFired = true
		if sess.target != nil {
			g.scene.notify(sess.target, "longpress", sample.X, sample.Y, TapEvent{X: sample.X, Y: sample.Y})
		}
	}

	sess.lastX, sess.lastY, sess.lastTime = sample.X, sample.Y, sample.Time

	if g.pinchActive && len(g.sessions) == 2 {
		g.emitPinch(sample)
	}
}

func (g *GestureRecognizer) onUp(sample PointerSample) {
	sess, ok := g.sessions[sample.ID]
	if !ok {
		return
	}
	delete(g.sessions, sample.ID)
	g.pinchActive = false

	duration := sample.Time - sess.startTime
	dx, dy := sample.X-sess.startX, sample.Y-sess.startY
	dist := math.Hypot(dx, dy)

	switch {
	case sess.dragging || dist >= dragThresholdPx:
		if sess.dragging && sess.target != nil {
			g.scene.notify(sess.target, "dragend", sample.X, sample.Y, DragEvent{
				X: sample.X, Y: sample.Y,
				DeltaX: dx, DeltaY: dy,
				StartX: sess.startX, StartY: sess.startY,
			})
		}
		velocity := dist / duration
		if velocity >= swipeMinVelocity && sess.target != nil {
			g.scene.notify(sess.target, "swipe", sample.X, sample.Y, SwipeEvent{
				Direction: swipeQuadrant(dx, dy),
				Distance:  dist,
				Duration:  duration,
			})
		}
	case !sess.longPressFired && duration <= tapMaxDurationSec && dist < dragThresholdPx:
		if sess.target != nil {
			g.scene.notify(sess.target, "tap", sample.X, sample.Y, TapEvent{X: sample.X, Y: sample.Y})
		}
	}
}

func (g *GestureRecognizer) onCancel(sample PointerSample) {
	delete(g.sessions, sample.ID)
	g.pinchActive = false
}

// updateHover fires pointerover/pointerout on the hit target transitions
// for pointer id, independent of drag/tap session state (hover tracking
// applies even to a pointer that never goes down, e.g. a mouse).
func (g *GestureRecognizer) updateHover(id int, x, y float64) {
	target := g.scene.HitTest(x, y)
	prev := g.hovered[id]
	if prev == target {
		return
	}
	if prev != nil {
		g.scene.notify(prev, "pointerout", x, y, PointerEvent{X: x, Y: y})
	}
	if target != nil {
		g.scene.notify(target, "pointerover", x, y, PointerEvent{X: x, Y: y})
	}
	g.hovered[id] = target
}

func (g *GestureRecognizer) currentPinchDistance() float64 {
	var pts []pointerSession
	for _, s := range g.sessions {
		pts = append(pts, *s)
	}
	if len(pts) != 2 {
		return 0
	}
	return math.Hypot(pts[0].lastX-pts[1].lastX, pts[0].lastY-pts[1].lastY)
}

func (g *GestureRecognizer) emitPinch(sample PointerSample) {
	if g.pinchStartDist <= 1e-6 {
		return
	}
	var pts []*pointerSession
	for _, s := range g.sessions {
		pts = append(pts, s)
	}
	if len(pts) != 2 {
		return
	}
	dist := math.Hypot(pts[0].lastX-pts[1].lastX, pts[0].lastY-pts[1].lastY)
	scale := dist / g.pinchStartDist
	cx := (pts[0].lastX + pts[1].lastX) / 2
	cy := (pts[0].lastY + pts[1].lastY) / 2

	target := pts[0].target
	if target == nil {
		target = pts[1].target
	}
	if target != nil {
		g.scene.notify(target, "pinch", cx, cy, PinchEvent{Scale: scale, CenterX: cx, CenterY: cy})
	}
}

// swipeQuadrant buckets a displacement vector into one of four swipe
// directions, grounded on the velocity-from-pointer-samples approach in
// other_examples/nextcore-drift pkg/testing/gestures.go's Fling helper.
func swipeQuadrant(dx, dy float64) SwipeDirection {
	angle := math.Atan2(dy, dx)
	switch {
	case angle >= -math.Pi/4 && angle < math.Pi/4:
		return SwipeRight
	case angle >= math.Pi/4 && angle < 3*math.Pi/4:
		return SwipeDown
	case angle >= -3*math.Pi/4 && angle < -math.Pi/4:
		return SwipeUp
	default:
		return SwipeLeft
	}
}
