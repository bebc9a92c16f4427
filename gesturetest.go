package stagekit

// Synthetic pointer injection for tests and headless tooling, adapted from
// a synthetic-input injection queue.
// stagekit has no per-frame inject queue (FeedPointer already accepts
// discrete samples directly), so these helpers just build and feed
// PointerSample sequences against the wall-clock time the caller supplies.

// InjectTap feeds a down/up pair at (x, y), tapMaxDurationSec/2 apart,
// producing a tap gesture on whatever entity occupies that point.
func (s *Scene) InjectTap(x, y float64, startTime float64) {
	s.FeedPointer(PointerSample{ID: 0, Phase: PointerDown, X: x, Y: y, Time: startTime})
	s.FeedPointer(PointerSample{ID: 0, Phase: PointerUp, X: x, Y: y, Time: startTime + tapMaxDurationSec/2})
}

// InjectLongPress feeds a down held past longPressSec, then an up, at a
// fixed point.
func (s *Scene) InjectLongPress(x, y float64, startTime float64) {
	s.FeedPointer(PointerSample{ID: 0, Phase: PointerDown, X: x, Y: y, Time: startTime})
	s.FeedPointer(PointerSample{ID: 0, Phase: PointerMove, X: x, Y: y, Time: startTime + longPressSec + 0.01})
	s.FeedPointer(PointerSample{ID: 0, Phase: PointerUp, X: x, Y: y, Time: startTime + longPressSec + 0.02})
}

// InjectDrag feeds a press at (fromX, fromY), `steps` evenly-spaced
// intermediate moves, and a release at (toX, toY), spread evenly across
// duration seconds starting at startTime.
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, steps int, duration, startTime float64) {
	if steps < 1 {
		steps = 1
	}
	s.FeedPointer(PointerSample{ID: 0, Phase: PointerDown, X: fromX, Y: fromY, Time: startTime})
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		s.FeedPointer(PointerSample{ID: 0, Phase: PointerMove, X: x, Y: y, Time: startTime + duration*t})
	}
	s.FeedPointer(PointerSample{ID: 0, Phase: PointerUp, X: toX, Y: toY, Time: startTime + duration})
}

// InjectSwipe is InjectDrag with no intermediate moves and a duration short
// enough to clear the swipe velocity threshold, for tests that only care
// about the resulting swipe event.
func (s *Scene) InjectSwipe(fromX, fromY, toX, toY float64, startTime float64) {
	s.FeedPointer(PointerSample{ID: 0, Phase: PointerDown, X: fromX, Y: fromY, Time: startTime})
	s.FeedPointer(PointerSample{ID: 0, Phase: PointerUp, X: toX, Y: toY, Time: startTime + 0.05})
}

// InjectPinch feeds a two-pointer session starting at the given centre and
// half-distance, then spread or pinched to endHalfDistance.
func (s *Scene) InjectPinch(centerX, centerY, startHalfDistance, endHalfDistance, startTime float64) {
	s.FeedPointer(PointerSample{ID: 1, Phase: PointerDown, X: centerX - startHalfDistance, Y: centerY, Time: startTime})
	s.FeedPointer(PointerSample{ID: 2, Phase: PointerDown, X: centerX + startHalfDistance, Y: centerY, Time: startTime})
	s.FeedPointer(PointerSample{ID: 1, Phase: PointerMove, X: centerX - endHalfDistance, Y: centerY, Time: startTime + 0.1})
	s.FeedPointer(PointerSample{ID: 2, Phase: PointerMove, X: centerX + endHalfDistance, Y: centerY, Time: startTime + 0.1})
}
