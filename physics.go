package stagekit

import "math"

// maxSubsteps caps the sub-stepping loop so a stalled host (huge dt after a
// debugger pause) cannot spin the simulation indefinitely.
const maxSubsteps = 10

// substepOverlapFraction bounds each sub-step's travel to this fraction of
// the smaller participant's own dimension, so a fast body can't cross an
// entire thin static neighbour between two sampled positions.
const substepOverlapFraction = 0.8

// defaultSubstepDimension is the dimension used for entities that expose
// neither a radius nor a width/height (a point-like entity), so the
// sub-step formula still has something to divide by.
const defaultSubstepDimension = 10.0

// restVelocityEpsilon is the speed below which a velocity component
// resolved against gravity or a static contact is snapped to zero, so a
// settled body doesn't jitter a fraction of a pixel per frame forever.
const restVelocityEpsilon = 5.0

// integratePhysics advances one entity's velocity and position by dt,
// sub-stepping so a fast-moving body cannot tunnel through a thin static
// neighbour between frames: the step count scales with how far the body
// would travel this frame relative to its own size, not with a fixed
// interval. Gravity is snapped to rest once it has only barely nudged a
// body already resting against an opposing static surface, velocity is
// projected against every static contact to stop it pressing further into
// a neighbour, and friction is applied once after all sub-steps rather
// than per sub-step.
func integratePhysics(e *Entity, dt float64) {
	if !e.hasPhysics() || e.Static {
		return
	}

	vx, vy := e.vx(), e.vy()

	steps := 1
	if speed := math.Hypot(vx, vy); speed > 0 {
		minDim := minSubstepDimension(e)
		steps = clampInt(int(math.Ceil(speed*dt/(substepOverlapFraction*minDim))), 1, maxSubsteps)
	}
	subDt := dt / float64(steps)

	for i := 0; i < steps; i++ {
		if e.Gravity != nil {
			vy += *e.Gravity * subDt
			vy = snapRestingGravity(e, *e.Gravity, vy)
		}
		vx, vy = projectAgainstStaticContacts(e, vx, vy)
		e.X += vx * subDt
		e.Y += vy * subDt
	}

	if e.Friction != nil {
		f := *e.Friction
		vx *= f
		vy *= f
	}

	e.SetVelocity(vx, vy)
	e.transformDirty = true
}

// minSubstepDimension returns the dimension the sub-step count is scaled
// against: twice the radius for a circle, the smaller of width/height for
// a rectangle, or defaultSubstepDimension for an entity with neither.
func minSubstepDimension(e *Entity) float64 {
	if e.Radius > 0 {
		return 2 * e.Radius
	}
	dim := math.Min(e.Width, e.Height)
	if dim <= 0 {
		return defaultSubstepDimension
	}
	return dim
}

// snapRestingGravity zeroes vy once gravity has only barely pulled a body
// back toward a static surface it already rests against, so a settled
// body's velocity doesn't hover just above zero and keep re-pressing into
// the floor every sub-step.
func snapRestingGravity(e *Entity, gravity, vy float64) float64 {
	if gravity > 0 && vy > 0 && vy < restVelocityEpsilon && restingAgainstGravity(e, gravity) {
		return 0
	}
	if gravity < 0 && vy < 0 && vy > -restVelocityEpsilon && restingAgainstGravity(e, gravity) {
		return 0
	}
	return vy
}

// projectAgainstStaticContacts removes the into-surface component of
// velocity for every static neighbour e currently touches, so a body
// resting against a wall or floor stops trying to move through it between
// collision passes rather than sinking in a little further each sub-step.
// A remainder smaller than restVelocityEpsilon is snapped to zero.
func projectAgainstStaticContacts(e *Entity, vx, vy float64) (float64, float64) {
	v := Vec2{X: vx, Y: vy}
	projected := false
	for _, rec := range e.collidingWith {
		if !rec.otherStatic {
			continue
		}
		vn := v.Dot(rec.normal)
		if vn >= 0 {
			continue
		}
		v = v.Sub(rec.normal.Scale(vn))
		projected = true
	}
	if projected && v.Length() < restVelocityEpsilon {
		v = Vec2{}
	}
	return v.X, v.Y
}

// restingAgainstGravity reports whether e currently touches a static
// neighbour whose contact normal already opposes gravity's direction
// closely enough that continuing to integrate gravity would only press
// harder into the surface. Every contact is recorded, not only static ones,
// so an entity's set of neighbours can include dynamic contacts whose
// normals are irrelevant here — otherStatic filters exactly those out.
func restingAgainstGravity(e *Entity, gravity float64) bool {
	if gravity == 0 {
		return false
	}
	gravityDir := Vec2{X: 0, Y: 1}
	if gravity < 0 {
		gravityDir = Vec2{X: 0, Y: -1}
	}
	for _, rec := range e.collidingWith {
		if !rec.otherStatic {
			continue
		}
		if rec.normal.Dot(gravityDir) < -0.7 {
			return true
		}
	}
	return false
}
