package stagekit

import "sort"

// backgroundZIndex is low enough that a background entity sorts behind any
// ZIndex a host is likely to assign explicitly.
const backgroundZIndex = -1 << 30

// Scene owns the entity tree, the gesture recognizer, tween/timer
// scheduling, and the camera list. One cooperative tick is driven by a
// single call to Update followed by a single call to Render, mirroring
// an update-then-draw loop run once per tick.
type Scene struct {
	root *Entity

	roster       []*Entity
	sortedRoster []*Entity
	sortDirty    bool

	background *Entity

	tweens     *TweenManager
	recognizer *GestureRecognizer
	timers     []*Timer

	cameras []*Camera

	entityStore EntityStore

	emitter
}

// NewScene creates an empty scene with a hidden root container.
func NewScene() *Scene {
	root := NewEntity("root")
	s := &Scene{
		root:      root,
		sortDirty: true,
		tweens:    NewTweenManager(),
	}
	root.scene = s
	s.recognizer = newGestureRecognizer(s)
	return s
}

// Root returns the scene's invisible root entity. Top-level entities are
// children of Root.
func (s *Scene) Root() *Entity { return s.root }

// Tweens returns the scene's TweenManager.
func (s *Scene) Tweens() *TweenManager { return s.tweens }

// Gestures returns the scene's GestureRecognizer, for hosts that want to
// feed pointer samples directly instead of through a Game.
func (s *Scene) Gestures() *GestureRecognizer { return s.recognizer }

// Add inserts entity as a top-level member of the scene (a child of Root).
// Idempotent: adding an entity already owned by this scene is a no-op. An
// entity may never live in two scenes at once.
func (s *Scene) Add(entity *Entity) {
	if entity.scene == s {
		return
	}
	entity.sanitize()
	s.root.AddChild(entity)
}

// Remove detaches entity (and its subtree) from the scene.
func (s *Scene) Remove(entity *Entity) {
	if entity.Parent != nil {
		entity.Parent.RemoveChild(entity)
	}
}

// GetByTag returns every entity in the scene (at any depth) carrying tag,
// in insertion order.
func (s *Scene) GetByTag(tag string) []*Entity {
	var out []*Entity
	for _, e := range s.roster {
		if e.HasTag(tag) {
			out = append(out, e)
		}
	}
	return out
}

// SetBackground designates e as the scene's background: always sorted
// behind every other entity and skipped by Clear.
func (s *Scene) SetBackground(e *Entity) {
	if s.background != nil && s.background != e {
		s.Remove(s.background)
	}
	s.background = e
	e.ZIndex = backgroundZIndex
	s.Add(e)
}

// Clear removes every top-level entity except the background.
func (s *Scene) Clear() {
	for _, child := range s.root.Children() {
		if child == s.background {
			continue
		}
		s.root.RemoveChild(child)
	}
}

// --- roster bookkeeping, called by Entity's tree operations ---

// addToRoster recursively registers e and its existing subtree with the
// scene, so a subtree attached in one AddChild call is fully adopted, not
// only its immediate root.
func (s *Scene) addToRoster(e *Entity) {
	alreadyPresent := e.scene == s
	e.scene = s
	if !alreadyPresent {
		s.roster = append(s.roster, e)
		s.sortDirty = true
		s.emit("entityadded", e)
	}
	for _, c := range e.children {
		s.addToRoster(c)
	}
}

// removeFromRoster recursively unregisters e and its subtree.
func (s *Scene) removeFromRoster(e *Entity) {
	if e.scene != s {
		return
	}
	for i, r := range s.roster {
		if r == e {
			s.roster = append(s.roster[:i], s.roster[i+1:]...)
			break
		}
	}
	e.scene = nil
	s.sortDirty = true
	s.emit("entityremoved", e)
	for _, c := range e.children {
		s.removeFromRoster(c)
	}
}

func (s *Scene) markSortDirty() { s.sortDirty = true }

func (s *Scene) refreshSort() {
	if !s.sortDirty {
		return
	}
	s.sortedRoster = append(s.sortedRoster[:0], s.roster...)
	sort.SliceStable(s.sortedRoster, func(i, j int) bool {
		return s.sortedRoster[i].ZIndex < s.sortedRoster[j].ZIndex
	})
	s.sortDirty = false
}

// refreshTransforms recomputes every entity's world transform from Root
// down. Exposed so tests and hosts can force a refresh outside Update.
func (s *Scene) refreshTransforms() {
	updateWorldTransform(s.root, identityTransform, 1.0, false)
}

// --- timers ---

// Delay schedules cb to run once after delayMs milliseconds of simulated
// time (advanced by Update's dt, not wall clock).
func (s *Scene) Delay(delayMs float64, cb func()) *Timer {
	t := newDelayTimer(delayMs, cb)
	s.timers = append(s.timers, t)
	return t
}

// Interval schedules cb to run every intervalMs milliseconds until the
// returned Timer is cancelled.
func (s *Scene) Interval(intervalMs float64, cb func()) *Timer {
	t := newIntervalTimer(intervalMs, cb)
	s.timers = append(s.timers, t)
	return t
}

func (s *Scene) tickTimers(dtMs float64) {
	if len(s.timers) == 0 {
		return
	}
	kept := s.timers[:0]
	for _, t := range s.timers {
		if t.cancelled {
			continue
		}
		t.tick(dtMs)
		if !t.cancelled {
			kept = append(kept, t)
		}
	}
	s.timers = kept
}

// --- cameras ---

// NewCamera creates a camera with the given viewport and registers it with
// the scene so Update advances its follow/scroll/bounds state.
func (s *Scene) NewCamera(viewport Rect) *Camera {
	cam := NewCamera(viewport)
	s.cameras = append(s.cameras, cam)
	return cam
}

// RemoveCamera unregisters cam.
func (s *Scene) RemoveCamera(cam *Camera) {
	for i, c := range s.cameras {
		if c == cam {
			s.cameras = append(s.cameras[:i], s.cameras[i+1:]...)
			return
		}
	}
}

// Cameras returns the scene's registered cameras, in registration order.
func (s *Scene) Cameras() []*Camera {
	out := make([]*Camera, len(s.cameras))
	copy(out, s.cameras)
	return out
}

// SetEntityStore wires an ECS bridge; see ecsbridge.go.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.entityStore = store
}

// --- hit testing ---

// HitTest returns the topmost Interactive, Active entity whose shape
// contains the world-space point (x, y): later entries in draw order (by
// ZIndex, then insertion order) are tested first, so the topmost target
// wins. Returns nil if nothing qualifies.
func (s *Scene) HitTest(x, y float64) *Entity {
	s.refreshSort()
	for i := len(s.sortedRoster) - 1; i >= 0; i-- {
		e := s.sortedRoster[i]
		if !e.Active || !e.Interactive {
			continue
		}
		if entityContainsPoint(e, x, y) {
			return e
		}
	}
	return nil
}

func entityContainsPoint(e *Entity, wx, wy float64) bool {
	if e.HitShape != nil {
		lx, ly := e.WorldToLocal(wx, wy)
		return e.HitShape.Contains(lx, ly)
	}
	return e.WorldAABB().Contains(wx, wy)
}

// --- the tick ---

// Update advances the scene by dt seconds: resorts draw order if dirty,
// integrates physics and tweens, refreshes world transforms, runs the
// collision pass, advances cameras, and ticks timers, in that order.
func (s *Scene) Update(dt float64) {
	s.refreshSort()

	for _, e := range s.sortedRoster {
		if !e.Active {
			continue
		}
		integratePhysics(e, dt)
		e.Rotation = normalizeAngle(e.Rotation)
		e.emit("update", dt)
	}

	s.tweens.Advance(dt)

	s.refreshTransforms()

	var collidable []*Entity
	for _, e := range s.sortedRoster {
		if e.Active && e.CheckCollisions {
			collidable = append(collidable, e)
		}
	}
	pairs := collectCollisionPairs(collidable)
	resolveCollisions(pairs)

	s.refreshTransforms()

	for _, cam := range s.cameras {
		cam.update(float32(dt))
	}

	s.tickTimers(dt * 1000)

	s.emit("update", dt)
}

// Render delegates drawing of every visible entity, in draw order, to ctx.
// stagekit performs no pixel work itself; ctx interprets each entity's
// world transform and shape however the host's rendering backend requires.
func (s *Scene) Render(ctx DrawContext) {
	s.refreshSort()
	for _, e := range s.sortedRoster {
		if !e.Visible {
			continue
		}
		if e.Radius > 0 {
			ctx.DrawCircle(e.worldTransform, e.Radius, e.worldAlpha)
		} else {
			ctx.DrawRect(e.worldTransform, e.Width, e.Height, e.worldAlpha)
		}
	}
}

// FeedPointer routes one pointer sample to the scene's gesture recognizer,
// forwarding resulting interaction events to an ECS bridge if one is
// wired via SetEntityStore.
func (s *Scene) FeedPointer(sample PointerSample) {
	s.recognizer.Feed(sample)
}
