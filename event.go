package stagekit

// subscriber is one registered callback, optionally one-shot.
type subscriber struct {
	id   uint64
	once bool
	fn   func(payload any)
}

// emitter is a keyed set of per-event subscriber lists, embedded by
// Entity and Scene. Subscribers fire in registration order; a
// subscriber may safely unsubscribe itself during dispatch, and a
// subscriber added during dispatch is not invoked for the in-flight event
// (emit snapshots the slice length before iterating).
//
// Generalized from per-entity fixed typed callback fields to a name-keyed
// map so arbitrary event names (tap, collide, update, ...) are supported.
type emitter struct {
	subs   map[string][]subscriber
	nextID uint64
}

func (e *emitter) ensure() {
	if e.subs == nil {
		e.subs = make(map[string][]subscriber)
	}
}

// on registers a subscriber for name, returning an id usable with off.
func (e *emitter) on(name string, fn func(payload any)) uint64 {
	e.ensure()
	e.nextID++
	id := e.nextID
	e.subs[name] = append(e.subs[name], subscriber{id: id, fn: fn})
	return id
}

// onceFn registers a subscriber that removes itself before its first call.
func (e *emitter) onceFn(name string, fn func(payload any)) uint64 {
	e.ensure()
	e.nextID++
	id := e.nextID
	e.subs[name] = append(e.subs[name], subscriber{id: id, once: true, fn: fn})
	return id
}

// off removes the subscriber with the given id for name. If id is 0, every
// subscriber for name is removed.
func (e *emitter) off(name string, id uint64) {
	if e.subs == nil {
		return
	}
	if id == 0 {
		delete(e.subs, name)
		return
	}
	list := e.subs[name]
	for i, s := range list {
		if s.id == id {
			e.subs[name] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// emit invokes every subscriber registered for name, in registration
// order, with payload. Unknown names are no-ops. A subscriber flagged
// `once` is removed from the list before its callback runs, so it may
// safely re-subscribe from inside the callback. The subscriber slice is
// snapshotted by length at entry so subscribers added mid-dispatch do not
// fire for this emit.
func (e *emitter) emit(name string, payload any) {
	if e.subs == nil {
		return
	}
	list := e.subs[name]
	if len(list) == 0 {
		return
	}
	n := len(list)
	for i := 0; i < n; i++ {
		// Re-read the slice each iteration: a subscriber may have called
		// off() on itself or another subscriber for this event.
		cur := e.subs[name]
		if i >= len(cur) {
			break
		}
		s := cur[i]
		if s.once {
			e.subs[name] = append(cur[:i:i], cur[i+1:]...)
			i--
			n--
		}
		s.fn(payload)
		if !s.once {
			// If the callback removed itself or an earlier subscriber, the
			// list shifted left; step back so the next one is not skipped.
			if after := e.subs[name]; i >= len(after) || after[i].id != s.id {
				i--
				n--
			}
		}
	}
}

// clear drops every subscriber for every event name.
func (e *emitter) clear() {
	e.subs = nil
}

// On registers fn for the named event and returns a subscription id usable
// with Off. This is the public surface a host application uses; stagekit's
// own internals call the unexported on/emit directly.
func (e *emitter) On(name string, fn func(payload any)) uint64 {
	return e.on(name, fn)
}

// Once registers fn to fire at most once for the named event.
func (e *emitter) Once(name string, fn func(payload any)) uint64 {
	return e.onceFn(name, fn)
}

// Off unregisters the subscription id for the named event. id == 0 removes
// every subscriber for name.
func (e *emitter) Off(name string, id uint64) {
	e.off(name, id)
}
