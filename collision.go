package stagekit

import "math"

// contactInfo describes an overlap found between two shapes: the axis along
// which they are separated (pointing from b toward a) and how far they
// overlap along that axis.
type contactInfo struct {
	normal   Vec2
	overlap  float64
	collides bool
}

// intersect dispatches to the right narrow-phase routine for the pair's
// shapes (circle-circle, circle-rect, or rect-rect), using each entity's
// current world transform. Handles mixed, optionally-rotated shapes.
func intersect(a, b *Entity) contactInfo {
	aCircle, bCircle := a.Radius > 0, b.Radius > 0
	switch {
	case aCircle && bCircle:
		return intersectCircleCircle(a, b)
	case aCircle && !bCircle:
		c := intersectCircleRect(a, b)
		return c
	case !aCircle && bCircle:
		c := intersectCircleRect(b, a)
		c.normal = c.normal.Scale(-1)
		return c
	default:
		return intersectRectRect(a, b)
	}
}

func worldCenter(e *Entity) Vec2 {
	x, y := e.LocalToWorld(0, 0)
	return Vec2{X: x, Y: y}
}

func worldRadius(e *Entity) float64 {
	sx, sy := worldScale(e.worldTransform)
	return e.Radius * math.Max(sx, sy)
}

// intersectCircleCircle: classic center-distance test.
func intersectCircleCircle(a, b *Entity) contactInfo {
	ca, cb := worldCenter(a), worldCenter(b)
	ra, rb := worldRadius(a), worldRadius(b)

	delta := ca.Sub(cb)
	dist := delta.Length()
	radiusSum := ra + rb
	if dist >= radiusSum {
		return contactInfo{}
	}

	normal := delta.Normalized()
	if dist < 1e-9 {
		// Coincident centers: pick an arbitrary stable axis.
		normal = Vec2{X: 1, Y: 0}
	}
	return contactInfo{normal: normal, overlap: radiusSum - dist, collides: true}
}

// intersectCircleRect finds the closest point on rect's (possibly rotated)
// box to the circle's center by working in the rect's local frame.
// Returns a contact whose normal points from rect toward circle.
func intersectCircleRect(circle, rect *Entity) contactInfo {
	center := worldCenter(circle)
	r := worldRadius(circle)

	lx, ly := rect.WorldToLocal(center.X, center.Y)
	minX, minY := 0.0, 0.0
	maxX, maxY := rect.Width, rect.Height

	closestX := clamp(lx, minX, maxX)
	closestY := clamp(ly, minY, maxY)

	inside := lx >= minX && lx <= maxX && ly >= minY && ly <= maxY

	dx, dy := lx-closestX, ly-closestY
	distSq := dx*dx + dy*dy

	rsx, rsy := worldScale(rect.worldTransform)
	worldR := r / math.Max(rsx, rsy) // approximate: compare in rect-local units

	if !inside && distSq >= worldR*worldR {
		return contactInfo{}
	}

	var localNormal Vec2
	var overlapLocal float64
	if inside {
		// Center is inside the box: push out along the shallowest axis.
		distances := [4]float64{lx - minX, maxX - lx, ly - minY, maxY - ly}
		axes := [4]Vec2{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
		best := 0
		for i := 1; i < 4; i++ {
			if distances[i] < distances[best] {
				best = i
			}
		}
		localNormal = axes[best]
		overlapLocal = distances[best] + worldR
	} else {
		dist := math.Sqrt(distSq)
		if dist < 1e-9 {
			localNormal = Vec2{X: 1, Y: 0}
		} else {
			localNormal = Vec2{X: dx / dist, Y: dy / dist}
		}
		overlapLocal = worldR - dist
	}

	wx, wy := transformVector(rect.worldTransform, localNormal.X, localNormal.Y)
	worldNormal := Vec2{X: wx, Y: wy}.Normalized()
	overlapWorld := overlapLocal * math.Max(rsx, rsy)

	return contactInfo{normal: worldNormal, overlap: overlapWorld, collides: true}
}

// intersectRectRect chooses AABB overlap when neither box is rotated, and
// falls back to full SAT the moment either box carries nonzero world
// rotation.
func intersectRectRect(a, b *Entity) contactInfo {
	if nearZero(worldRotation(a.worldTransform)) && nearZero(worldRotation(b.worldTransform)) {
		return intersectAABB(a, b)
	}
	return intersectSAT(a, b)
}

func nearZero(r float64) bool {
	n := normalizeAngle(r)
	return n < 1e-6 || n > twoPi-1e-6
}

func intersectAABB(a, b *Entity) contactInfo {
	ra, rb := a.WorldAABB(), b.WorldAABB()
	if !ra.Intersects(rb) {
		return contactInfo{}
	}
	overlapX := math.Min(ra.X+ra.Width, rb.X+rb.Width) - math.Max(ra.X, rb.X)
	overlapY := math.Min(ra.Y+ra.Height, rb.Y+rb.Height) - math.Max(ra.Y, rb.Y)

	if overlapX <= 0 || overlapY <= 0 {
		return contactInfo{}
	}

	var normal Vec2
	var overlap float64
	if overlapX < overlapY {
		overlap = overlapX
		if ra.CenterX() < rb.CenterX() {
			normal = Vec2{X: -1, Y: 0}
		} else {
			normal = Vec2{X: 1, Y: 0}
		}
	} else {
		overlap = overlapY
		if ra.CenterY() < rb.CenterY() {
			normal = Vec2{X: 0, Y: -1}
		} else {
			normal = Vec2{X: 0, Y: 1}
		}
	}
	return contactInfo{normal: normal, overlap: overlap, collides: true}
}

// intersectSAT runs the separating-axis test over both boxes' face normals
// (4 axes total, 2 are redundant opposites per box so effectively 2+2
// unique axes), returning the minimum-penetration axis as the contact
// normal.
func intersectSAT(a, b *Entity) contactInfo {
	polyA := rectCorners(a)
	polyB := rectCorners(b)

	axes := append(rectAxes(a), rectAxes(b)...)

	minOverlap := math.Inf(1)
	var minAxis Vec2

	for _, axis := range axes {
		minA, maxA := projectPolygon(polyA, axis)
		minB, maxB := projectPolygon(polyB, axis)

		overlap := math.Min(maxA, maxB) - math.Max(minA, minB)
		if overlap <= 0 {
			return contactInfo{}
		}
		if overlap < minOverlap {
			minOverlap = overlap
			minAxis = axis
		}
	}

	ca, cb := worldCenter(a), worldCenter(b)
	direction := ca.Sub(cb)
	if direction.Dot(minAxis) < 0 {
		minAxis = minAxis.Scale(-1)
	}

	return contactInfo{normal: minAxis.Normalized(), overlap: minOverlap, collides: true}
}

func rectCorners(e *Entity) [4]Vec2 {
	local := [4][2]float64{
		{0, 0},
		{e.Width, 0},
		{e.Width, e.Height},
		{0, e.Height},
	}
	var out [4]Vec2
	for i, c := range local {
		wx, wy := e.LocalToWorld(c[0], c[1])
		out[i] = Vec2{X: wx, Y: wy}
	}
	return out
}

func rectAxes(e *Entity) []Vec2 {
	rot := worldRotation(e.worldTransform)
	return []Vec2{
		(Vec2{X: 1, Y: 0}).Rotated(rot),
		(Vec2{X: 0, Y: 1}).Rotated(rot),
	}
}

func projectPolygon(poly [4]Vec2, axis Vec2) (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, p := range poly {
		d := p.Dot(axis)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return
}
