package stagekit

// collisionPair is an unordered candidate pair surviving the broad filter
// (both checkCollisions && active, each side's collision tag filter accepts
// the other, not both static).
type collisionPair struct {
	a, b *Entity
}

// collectCollisionPairs builds the broad-phase candidate list from a
// snapshot of entities so a subscriber that adds/removes entities mid-pass
// cannot corrupt the iteration.
func collectCollisionPairs(entities []*Entity) []collisionPair {
	var pairs []collisionPair
	for i := 0; i < len(entities); i++ {
		a := entities[i]
		if !a.Active || !a.CheckCollisions {
			continue
		}
		for j := i + 1; j < len(entities); j++ {
			b := entities[j]
			if !b.Active || !b.CheckCollisions {
				continue
			}
			if a.Static && b.Static {
				continue
			}
			if !a.matchesCollisionTags(b) || !b.matchesCollisionTags(a) {
				continue
			}
			pairs = append(pairs, collisionPair{a: a, b: b})
		}
	}
	return pairs
}

// resolveCollisions runs the narrow phase and response for every candidate
// pair, then reconciles each participant's persistent contact set so
// enter/collide/exit events fire exactly once per transition. Diffs the
// previous and current contact sets per entity rather than re-deriving
// them from scratch each frame.
func resolveCollisions(pairs []collisionPair) {
	current := make(map[*Entity]map[*Entity]bool, len(pairs)*2)
	touch := func(e *Entity) {
		if _, ok := current[e]; !ok {
			current[e] = make(map[*Entity]bool)
		}
	}

	for _, p := range pairs {
		touch(p.a)
		touch(p.b)

		contact := intersect(p.a, p.b)
		if !contact.collides {
			continue
		}

		current[p.a][p.b] = true
		current[p.b][p.a] = true

		depenetrate(p.a, p.b, contact)

		wasColliding := p.a.IsCollidingWith(p.b)
		if wasColliding {
			settleVelocity(p.a, contact.normal)
			settleVelocity(p.b, contact.normal.Scale(-1))
		} else {
			applyRestitution(p.a, p.b, contact)
		}

		recordContact(p.a, p.b, contact.normal, p.b.Static)
		recordContact(p.b, p.a, contact.normal.Scale(-1), p.a.Static)

		if wasColliding {
			p.a.emit("collide", CollisionEvent{Other: p.b, Normal: contact.normal})
			p.b.emit("collide", CollisionEvent{Other: p.a, Normal: contact.normal.Scale(-1)})
		} else {
			p.a.emit("collisionenter", CollisionEvent{Other: p.b, Normal: contact.normal})
			p.b.emit("collisionenter", CollisionEvent{Other: p.a, Normal: contact.normal.Scale(-1)})
		}
	}

	// Any entity that participated in this pass but is no longer in contact
	// with a previous neighbour fires collisionexit for that neighbour.
	for e := range current {
		for other := range e.collidingWith {
			if !current[e][other] {
				e.emit("collisionexit", CollisionEvent{Other: other})
				delete(e.collidingWith, other)
			}
		}
	}
}

// CollisionEvent is the payload delivered to collisionenter/collide/
// collisionexit subscribers.
type CollisionEvent struct {
	Other  *Entity
	Normal Vec2
}

func recordContact(e, other *Entity, normal Vec2, otherStatic bool) {
	if e.collidingWith == nil {
		e.collidingWith = make(map[*Entity]collisionRecord)
	}
	e.collidingWith[other] = collisionRecord{normal: normal, otherStatic: otherStatic}
}

// depenetrate pushes a and b apart along contact.normal (pointing from b
// toward a) by contact.overlap: half each for two dynamic bodies, the full
// amount for the dynamic side when the other is static. The world-space
// displacement is converted through the parent's inverse rotation/scale
// before being added to the entity's local X/Y, so a parented entity
// separates correctly in world space.
func depenetrate(a, b *Entity, contact contactInfo) {
	switch {
	case a.Static && b.Static:
		return
	case a.Static:
		pushLocal(b, contact.normal.Scale(-contact.overlap))
	case b.Static:
		pushLocal(a, contact.normal.Scale(contact.overlap))
	default:
		half := contact.overlap / 2
		pushLocal(a, contact.normal.Scale(half))
		pushLocal(b, contact.normal.Scale(-half))
	}
}

// pushLocal converts a world-space displacement into e's parent's local
// frame and adds it to e.X/Y.
func pushLocal(e *Entity, worldDelta Vec2) {
	if e.Parent == nil {
		e.X += worldDelta.X
		e.Y += worldDelta.Y
		e.transformDirty = true
		return
	}
	inv := invertAffine(parentLinearTransform(e.Parent))
	dx, dy := transformVector(inv, worldDelta.X, worldDelta.Y)
	e.X += dx
	e.Y += dy
	e.transformDirty = true
}

// parentLinearTransform returns the parent's world transform with the
// translation zeroed, so transformVector applies only rotation/scale.
func parentLinearTransform(parent *Entity) [6]float64 {
	m := parent.worldTransform
	m[4], m[5] = 0, 0
	return m
}

// applyRestitution reflects each dynamic participant's velocity across the
// contact normal on a contact seen for the first time this frame, each
// side using its own bounciness (0.8 when it never set one). A contact
// already present last frame settles instead, see settleVelocity.
func applyRestitution(a, b *Entity, contact contactInfo) {
	if !a.Static && a.hasPhysics() {
		reflectVelocity(a, contact.normal, a.bouncinessOr(0.8))
	}
	if !b.Static && b.hasPhysics() {
		reflectVelocity(b, contact.normal.Scale(-1), b.bouncinessOr(0.8))
	}
}

func reflectVelocity(e *Entity, normal Vec2, restitution float64) {
	v := Vec2{X: e.vx(), Y: e.vy()}
	vn := v.Dot(normal)
	if vn >= 0 {
		return // already separating along this axis
	}
	reflected := v.Sub(normal.Scale((1 + restitution) * vn))
	e.SetVelocity(reflected.X, reflected.Y)
}

// settleVelocity zeroes the into-surface component of e's velocity for a
// contact that persisted from last frame, so a resting body stops pressing
// into its neighbour instead of bouncing off it every tick it stays in
// contact.
func settleVelocity(e *Entity, normal Vec2) {
	if e.Static || !e.hasPhysics() {
		return
	}
	v := Vec2{X: e.vx(), Y: e.vy()}
	vn := v.Dot(normal)
	if vn >= 0 {
		return
	}
	settled := v.Sub(normal.Scale(vn))
	e.SetVelocity(settled.X, settled.Y)
}
