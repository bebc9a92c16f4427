package stagekit

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// computeLocalTransform computes the local affine matrix from the entity's
// transform properties. Returns [a, b, c, d, tx, ty].
//
// Composition order: Translate(-pivot) -> Scale -> Rotate -> Translate(X, Y).
// Pivot is derived from AnchorX/AnchorY against Width/Height rather than
// an absolute-pixel pivot; skew is dropped, Entity has no skew fields.
func computeLocalTransform(e *Entity) [6]float64 {
	sx := e.ScaleX
	sy := e.ScaleY

	sin, cos := math.Sincos(e.Rotation)

	px := e.AnchorX * e.Width
	py := e.AnchorY * e.Height

	// After Scale * Translate(-pivot):
	a := sx
	d := sy
	preTx := -px * sx
	preTy := -py * sy

	// After Rotate:
	ra := cos * a
	rb := sin * a
	rc := -sin * d
	rd := cos * d
	rtx := cos*preTx - sin*preTy
	rty := sin*preTx + cos*preTy

	// After Translate(X, Y):
	return [6]float64{ra, rb, rc, rd, rtx + e.X, rty + e.Y}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix. Returns the
// identity matrix if the matrix is singular (determinant near zero).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// worldScale extracts the magnitude of the two basis vectors of an affine
// matrix, used to scale a local radius into world space.
func worldScale(m [6]float64) (sx, sy float64) {
	sx = math.Hypot(m[0], m[1])
	sy = math.Hypot(m[2], m[3])
	return
}

// worldRotation extracts the net rotation encoded in an affine matrix's
// linear part, used by oriented-rectangle collision (SAT axes).
func worldRotation(m [6]float64) float64 {
	return math.Atan2(m[1], m[0])
}

// updateWorldTransform recomputes an entity's worldTransform and worldAlpha,
// recursing through children. parentRecomputed forces recomputation even
// when this entity isn't itself dirty, so a moved ancestor invalidates the
// whole subtree without an explicit downward dirty-flag walk.
func updateWorldTransform(e *Entity, parentTransform [6]float64, parentAlpha float64, parentRecomputed bool) {
	recompute := e.transformDirty || parentRecomputed
	if recompute {
		local := computeLocalTransform(e)
		e.worldTransform = multiplyAffine(parentTransform, local)
		e.worldAlpha = parentAlpha * e.Alpha
		e.transformDirty = false
	}

	for _, child := range e.children {
		updateWorldTransform(child, e.worldTransform, e.worldAlpha, recompute)
	}
}

// --- Transform property setters ---

// SetPosition sets the entity's local X and Y and marks it dirty.
func (e *Entity) SetPosition(x, y float64) {
	e.X = x
	e.Y = y
	e.transformDirty = true
}

// SetScale sets the entity's ScaleX and ScaleY and marks it dirty.
func (e *Entity) SetScale(sx, sy float64) {
	e.ScaleX = sx
	e.ScaleY = sy
	e.transformDirty = true
}

// SetRotation sets the entity's rotation in radians, normalized into
// [0, 2*pi), and marks it dirty.
func (e *Entity) SetRotation(r float64) {
	e.Rotation = normalizeAngle(r)
	e.transformDirty = true
}

// SetAnchor sets the entity's AnchorX and AnchorY (0..1) and marks it dirty.
func (e *Entity) SetAnchor(ax, ay float64) {
	e.AnchorX = clamp(ax, 0, 1)
	e.AnchorY = clamp(ay, 0, 1)
	e.transformDirty = true
}

// SetAlpha sets the entity's opacity (0..1) and marks it dirty.
func (e *Entity) SetAlpha(a float64) {
	e.Alpha = clamp(a, 0, 1)
	e.transformDirty = true
}

// --- Coordinate conversion ---

// WorldX returns the entity's world-space X translation. Valid only after
// the scene has refreshed world transforms this tick.
func (e *Entity) WorldX() float64 { return e.worldTransform[4] }

// WorldY returns the entity's world-space Y translation.
func (e *Entity) WorldY() float64 { return e.worldTransform[5] }

// WorldAlpha returns the entity's effective opacity, composed with every
// ancestor's alpha.
func (e *Entity) WorldAlpha() float64 { return e.worldAlpha }

// WorldRotation returns the entity's net rotation in world space.
func (e *Entity) WorldRotation() float64 { return worldRotation(e.worldTransform) }

// WorldToLocal converts a world-space point to this entity's local
// coordinate space.
func (e *Entity) WorldToLocal(wx, wy float64) (lx, ly float64) {
	inv := invertAffine(e.worldTransform)
	return transformPoint(inv, wx, wy)
}

// LocalToWorld converts a local-space point to world space.
func (e *Entity) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return transformPoint(e.worldTransform, lx, ly)
}

// WorldAABB returns the axis-aligned bounding box of e's rectangle or
// circle shape in world space, accounting for rotation (the rotated
// rectangle's tight enclosing box, not the unrotated local box). Used by
// hit testing and the axis-aligned rectangle test of the narrow phase.
func (e *Entity) WorldAABB() Rect {
	if e.Radius > 0 {
		sx, sy := worldScale(e.worldTransform)
		r := e.Radius * math.Max(sx, sy)
		cx, cy := e.LocalToWorld(0, 0)
		return Rect{X: cx - r, Y: cy - r, Width: 2 * r, Height: 2 * r}
	}

	// The local transform already moves the pivot onto (X, Y), so the
	// rectangle spans [0, Width] x [0, Height] in local space.
	corners := [4][2]float64{
		{0, 0},
		{e.Width, 0},
		{0, e.Height},
		{e.Width, e.Height},
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		wx, wy := e.LocalToWorld(c[0], c[1])
		minX, maxX = math.Min(minX, wx), math.Max(maxX, wx)
		minY, maxY = math.Min(minY, wy), math.Max(maxY, wy)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
