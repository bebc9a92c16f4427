package stagekit

// entityIDCounter is a plain counter (no atomic — stagekit is single-threaded).
var entityIDCounter uint32

func nextEntityID() uint32 {
	entityIDCounter++
	return entityIDCounter
}

// collisionRecord is the persistent contact state stored per neighbour: the
// collision normal recorded the frame contact began or was last refreshed,
// and whether that neighbour is static (consulted by the physics gravity
// gate in physics.go — see the note there on why this is tracked for every
// contact, not only static ones).
type collisionRecord struct {
	normal      Vec2
	otherStatic bool
}

// Entity is a node in the hierarchical scene graph: a transformable,
// optionally physical, optionally interactive, optionally collidable
// object. A single flat struct is used for every entity to avoid
// interface dispatch on the simulation hot path.
type Entity struct {
	// Identity
	id   uint32
	Name string

	// Hierarchy
	Parent   *Entity
	children []*Entity
	scene    *Scene

	// Transform (local, relative to Parent)
	X, Y           float64
	Rotation       float64 // radians, normalized into [0, 2*pi) after each update
	ScaleX, ScaleY float64
	AnchorX        float64 // pivot within the unit box, 0..1; 0.5 = centered
	AnchorY        float64
	ZIndex         int

	// Computed world transform, refreshed lazily by the scene.
	worldTransform [6]float64
	worldAlpha     float64
	transformDirty bool

	// Size and shape
	Width, Height float64
	Radius        float64 // > 0 means this entity is a circle, not a rectangle

	Alpha float64 // opacity, 0..1

	// Flags
	Active          bool // participates in update
	Visible         bool // participates in render
	Interactive     bool // participates in hit testing
	CheckCollisions bool // participates in the collision pass
	Static          bool // immovable; infinite mass for collision response

	// Physics fields. Nil means "do not integrate" (per design note §9: an
	// absent field, not a zero or NaN sentinel).
	VX, VY     *float64 // px/sec
	Gravity    *float64 // px/sec^2
	Friction   *float64 // per-tick multiplier, clamped to [0,1]
	Bounciness *float64 // restitution, clamped to [0,1]

	// Collision filter and tags
	collisionTags map[string]struct{}
	tags          map[string]struct{}

	// Persistent collision state, keyed by neighbour.
	collidingWith map[*Entity]collisionRecord

	// Hit testing
	HitShape HitShape

	// UserData is an arbitrary value the host application can attach.
	UserData any
	// EntityID links this entity to an ECS entity; see ecsbridge.go.
	EntityID uint32

	emitter

	destroyed      bool
	childrenSorted bool
	sortedChildren []*Entity
}

// HitShape overrides the default rectangle/circle hit test with a custom
// local-space shape test. Nil means "use Width/Height or Radius".
type HitShape interface {
	Contains(localX, localY float64) bool
}

// NewEntity creates an inert container entity with sanitized defaults:
// full scale, full alpha, centered anchor, active and visible true,
// interactive and checkCollisions false (the caller opts in), and no
// physics fields set.
func NewEntity(name string) *Entity {
	e := &Entity{
		Name:           name,
		id:             nextEntityID(),
		ScaleX:         1,
		ScaleY:         1,
		AnchorX:        0.5,
		AnchorY:        0.5,
		Alpha:          1,
		Active:         true,
		Visible:        true,
		transformDirty: true,
		childrenSorted: true,
	}
	return e
}

// ID returns the entity's unique, never-zero identifier. Zero means the
// entity has been destroyed.
func (e *Entity) ID() uint32 { return e.id }

// IsDestroyed reports whether Destroy has been called on this entity.
func (e *Entity) IsDestroyed() bool { return e.destroyed }

// --- sanitization (construction-boundary invariants) ---

// sanitize clamps and defaults fields that a host may have set to
// nonsensical values (non-finite numbers, out-of-range fractions,
// negative sizes) instead of propagating an error. Called by Scene.Add
// and by SceneConfig.Build; the Set* setters clamp their own arguments.
func (e *Entity) sanitize() {
	e.Alpha = clamp(sanitizeFloat(e.Alpha, 1), 0, 1)
	e.AnchorX = clamp(sanitizeFloat(e.AnchorX, 0.5), 0, 1)
	e.AnchorY = clamp(sanitizeFloat(e.AnchorY, 0.5), 0, 1)
	e.Width = maxFloat(sanitizeFloat(e.Width, 0), 0)
	e.Height = maxFloat(sanitizeFloat(e.Height, 0), 0)
	e.Radius = maxFloat(sanitizeFloat(e.Radius, 0), 0)
	e.ScaleX = sanitizeFloat(e.ScaleX, 1)
	e.ScaleY = sanitizeFloat(e.ScaleY, 1)
	e.X = sanitizeFloat(e.X, 0)
	e.Y = sanitizeFloat(e.Y, 0)
	e.Rotation = sanitizeFloat(e.Rotation, 0)
	if e.Friction != nil {
		f := clamp(sanitizeFloat(*e.Friction, 1), 0, 1)
		e.Friction = &f
	}
	if e.Bounciness != nil {
		b := clamp(sanitizeFloat(*e.Bounciness, 0.8), 0, 1)
		e.Bounciness = &b
	}
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// --- tags ---

// AddTag adds a label to this entity's tag set.
func (e *Entity) AddTag(tag string) {
	if e.tags == nil {
		e.tags = make(map[string]struct{})
	}
	e.tags[tag] = struct{}{}
}

// RemoveTag removes a label from this entity's tag set.
func (e *Entity) RemoveTag(tag string) {
	delete(e.tags, tag)
}

// HasTag reports whether this entity carries tag.
func (e *Entity) HasTag(tag string) bool {
	_, ok := e.tags[tag]
	return ok
}

// AddCollisionTag restricts collision pairing: once non-empty, this
// entity only collides with others that own at least one matching tag.
func (e *Entity) AddCollisionTag(tag string) {
	if e.collisionTags == nil {
		e.collisionTags = make(map[string]struct{})
	}
	e.collisionTags[tag] = struct{}{}
}

// RemoveCollisionTag removes a collision filter tag.
func (e *Entity) RemoveCollisionTag(tag string) {
	delete(e.collisionTags, tag)
}

// matchesCollisionTags reports whether other passes e's collision tag
// filter: e has no filter tags, or other owns at least one of them.
func (e *Entity) matchesCollisionTags(other *Entity) bool {
	if len(e.collisionTags) == 0 {
		return true
	}
	for tag := range e.collisionTags {
		if other.HasTag(tag) {
			return true
		}
	}
	return false
}

// CollidingWith returns a snapshot of the entities currently in contact
// with e, mapped to the collision normal recorded for that contact
// (pointing from the other entity toward e). This set never contains a
// stale entry after a collision pass and is symmetric between two
// checkCollisions entities.
func (e *Entity) CollidingWith() map[*Entity]Vec2 {
	out := make(map[*Entity]Vec2, len(e.collidingWith))
	for other, rec := range e.collidingWith {
		out[other] = rec.normal
	}
	return out
}

// IsCollidingWith reports whether e is currently recorded as in contact
// with other.
func (e *Entity) IsCollidingWith(other *Entity) bool {
	_, ok := e.collidingWith[other]
	return ok
}

// --- physics field setters ---

// SetVelocity sets VX and VY, opting this entity into physics
// integration if it wasn't already.
func (e *Entity) SetVelocity(vx, vy float64) {
	e.VX = &vx
	e.VY = &vy
}

// ClearVelocity removes VX/VY (absent — no longer integrated).
func (e *Entity) ClearVelocity() {
	e.VX = nil
	e.VY = nil
}

// SetGravity sets the per-second downward (or directional, if negative)
// acceleration applied during physics integration.
func (e *Entity) SetGravity(g float64) { e.Gravity = &g }

// SetFriction sets the per-tick velocity multiplier, clamped to [0,1].
func (e *Entity) SetFriction(f float64) {
	f = clamp(f, 0, 1)
	e.Friction = &f
}

// SetBounciness sets the restitution coefficient used on new collision
// contact, clamped to [0,1].
func (e *Entity) SetBounciness(b float64) {
	b = clamp(b, 0, 1)
	e.Bounciness = &b
}

func (e *Entity) vx() float64 {
	if e.VX == nil {
		return 0
	}
	return *e.VX
}

func (e *Entity) vy() float64 {
	if e.VY == nil {
		return 0
	}
	return *e.VY
}

func (e *Entity) frictionOr(def float64) float64 {
	if e.Friction == nil {
		return def
	}
	return *e.Friction
}

func (e *Entity) bouncinessOr(def float64) float64 {
	if e.Bounciness == nil {
		return def
	}
	return *e.Bounciness
}

// hasPhysics reports whether any of vx, vy, gravity, friction is set.
func (e *Entity) hasPhysics() bool {
	return e.VX != nil || e.VY != nil || e.Gravity != nil || e.Friction != nil
}

// --- tree manipulation ---

// AddChild appends child to this entity's children. If child already has
// a parent (or is owned by a scene), it is detached first. Panics if
// child is nil or would create a cycle.
func (e *Entity) AddChild(child *Entity) {
	if child == nil {
		panic("stagekit: cannot add nil child")
	}
	if Debug {
		debugCheckDestroyed(e, "AddChild (parent)")
		debugCheckDestroyed(child, "AddChild (child)")
	}
	if isAncestor(child, e) {
		panic("stagekit: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	} else if child.scene != nil {
		child.scene.removeFromRoster(child)
	}
	child.Parent = e
	child.scene = e.scene
	e.children = append(e.children, child)
	e.childrenSorted = false
	markSubtreeDirty(child)
	if e.scene != nil {
		e.scene.markSortDirty()
		e.scene.addToRoster(child)
	}
	if Debug {
		debugCheckTreeDepth(child)
	}
}

// RemoveChild detaches child from this entity. Panics if child.Parent != e.
func (e *Entity) RemoveChild(child *Entity) {
	if Debug {
		debugCheckDestroyed(e, "RemoveChild (parent)")
	}
	if child.Parent != e {
		panic("stagekit: child's parent is not this entity")
	}
	e.removeChildByPtr(child)
	child.Parent = nil
	if e.scene != nil {
		e.scene.removeFromRoster(child)
	}
	child.scene = nil
	e.childrenSorted = false
}

// Children returns a copy of this entity's child list, in insertion order
// (not draw order — use Scene iteration for draw order).
func (e *Entity) Children() []*Entity {
	out := make([]*Entity, len(e.children))
	copy(out, e.children)
	return out
}

func (e *Entity) removeChildByPtr(child *Entity) {
	for i, c := range e.children {
		if c == child {
			copy(e.children[i:], e.children[i+1:])
			e.children[len(e.children)-1] = nil
			e.children = e.children[:len(e.children)-1]
			return
		}
	}
}

// isAncestor reports whether candidate is an ancestor of entity.
func isAncestor(candidate, entity *Entity) bool {
	for p := entity; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// markSubtreeDirty marks an entity as needing transform recomputation.
// Children inherit recomputation during updateWorldTransform, so only the
// subtree root needs the flag (upward-only dirty model).
func markSubtreeDirty(e *Entity) {
	e.transformDirty = true
}

// MarkDirty forces the entity's transform to recompute on the next frame.
// Useful after bulk-setting X/Y/Rotation/Scale/Anchor fields directly.
func (e *Entity) MarkDirty() {
	e.transformDirty = true
}

// --- disposal ---

// Destroy detaches this entity from its parent/scene, destroys each
// child (depth-first), and drops all event subscribers. No entity may be
// used after Destroy.
func (e *Entity) Destroy() {
	if e.destroyed {
		return
	}
	if e.Parent != nil {
		e.Parent.RemoveChild(e)
	} else if e.scene != nil {
		e.scene.removeFromRoster(e)
		e.scene = nil
	}
	e.destroy()
}

func (e *Entity) destroy() {
	// Drop subscribers first so captured references are released before
	// the hierarchy pointers are cleared (per design note §9).
	e.clear()
	e.destroyed = true
	e.id = 0
	for _, child := range e.children {
		child.Parent = nil
		child.scene = nil
		child.destroy()
	}
	e.children = nil
	e.sortedChildren = nil
	e.Parent = nil
	e.HitShape = nil
	e.UserData = nil
	e.collidingWith = nil
}
