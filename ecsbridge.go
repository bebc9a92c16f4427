package stagekit

// EntityStore is the interface an external ECS implements to receive
// interaction events for entities that carry a non-zero EntityID.
// Generalized to stagekit's string-keyed gesture events so any host ECS
// (donburi or otherwise) can consume them without depending on stagekit's
// internal event payloads.
//
// A host wiring github.com/yohamta/donburi typically implements this by
// looking up the donburi entity for EntityID and forwarding the event onto
// its own component data; stagekit does not import donburi itself, keeping
// the simulation core free of query-machinery dependencies.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries one gesture event to an external entity store,
// alongside the raw stagekit payload for ECS systems that want the full
// detail (drag deltas, swipe direction, pinch scale).
type InteractionEvent struct {
	Name     string
	EntityID uint32
	X, Y     float64
	Payload  any
}

// notify fires name on e's own emitter and, if e carries a non-zero
// EntityID and the scene has an EntityStore wired, forwards the same event
// to the ECS. Gesture dispatch in gesture.go routes through this instead
// of calling e.emit directly so both listeners stay in sync.
func (s *Scene) notify(e *Entity, name string, x, y float64, payload any) {
	e.emit(name, payload)
	if s.entityStore == nil || e.EntityID == 0 {
		return
	}
	s.entityStore.EmitEvent(InteractionEvent{
		Name:     name,
		EntityID: e.EntityID,
		X:        x,
		Y:        y,
		Payload:  payload,
	})
}
