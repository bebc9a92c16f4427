package stagekit

// Typed convenience wrappers over Entity's embedded emitter, one per event
// name Scene and the gesture/collision systems emit. Generalized from
// typed OnClick/OnDrag/OnPinch style callback fields into
// subscriptions on the name-keyed emitter, so a host never has to know or
// type-assert the raw payload.

// OnTap subscribes to tap gestures on this entity.
func (e *Entity) OnTap(fn func(TapEvent)) uint64 {
	return e.On("tap", func(payload any) { fn(payload.(TapEvent)) })
}

// OnLongPress subscribes to long-press gestures on this entity.
func (e *Entity) OnLongPress(fn func(TapEvent)) uint64 {
	return e.On("longpress", func(payload any) { fn(payload.(TapEvent)) })
}

// OnDragStart subscribes to the first sample that crosses the drag
// threshold, fired once before the first OnDrag for that gesture.
func (e *Entity) OnDragStart(fn func(DragEvent)) uint64 {
	return e.On("dragstart", func(payload any) { fn(payload.(DragEvent)) })
}

// OnDrag subscribes to drag-move events on this entity.
func (e *Entity) OnDrag(fn func(DragEvent)) uint64 {
	return e.On("drag", func(payload any) { fn(payload.(DragEvent)) })
}

// OnDragEnd subscribes to drag-release events on this entity.
func (e *Entity) OnDragEnd(fn func(DragEvent)) uint64 {
	return e.On("dragend", func(payload any) { fn(payload.(DragEvent)) })
}

// OnSwipe subscribes to swipe gestures on this entity.
func (e *Entity) OnSwipe(fn func(SwipeEvent)) uint64 {
	return e.On("swipe", func(payload any) { fn(payload.(SwipeEvent)) })
}

// OnPinch subscribes to pinch gestures hit-tested to this entity.
func (e *Entity) OnPinch(fn func(PinchEvent)) uint64 {
	return e.On("pinch", func(payload any) { fn(payload.(PinchEvent)) })
}

// OnPointerOver subscribes to hover-enter events on this entity.
func (e *Entity) OnPointerOver(fn func(PointerEvent)) uint64 {
	return e.On("pointerover", func(payload any) { fn(payload.(PointerEvent)) })
}

// OnPointerOut subscribes to hover-leave events on this entity.
func (e *Entity) OnPointerOut(fn func(PointerEvent)) uint64 {
	return e.On("pointerout", func(payload any) { fn(payload.(PointerEvent)) })
}

// OnCollide subscribes to every frame this entity remains in contact with
// another entity.
func (e *Entity) OnCollide(fn func(CollisionEvent)) uint64 {
	return e.On("collide", func(payload any) { fn(payload.(CollisionEvent)) })
}

// OnCollisionEnter subscribes to the first frame of contact with another
// entity.
func (e *Entity) OnCollisionEnter(fn func(CollisionEvent)) uint64 {
	return e.On("collisionenter", func(payload any) { fn(payload.(CollisionEvent)) })
}

// OnCollisionExit subscribes to the frame contact with another entity
// ends.
func (e *Entity) OnCollisionExit(fn func(CollisionEvent)) uint64 {
	return e.On("collisionexit", func(payload any) { fn(payload.(CollisionEvent)) })
}

// OnUpdate subscribes to this entity's per-tick update, payload is dt in
// seconds.
func (e *Entity) OnUpdate(fn func(dt float64)) uint64 {
	return e.On("update", func(payload any) { fn(payload.(float64)) })
}
