package stagekit

import "testing"

type fakePointerSource struct {
	samples []PointerSample
}

func (f *fakePointerSource) PollPointers() []PointerSample {
	out := f.samples
	f.samples = nil
	return out
}

func TestGameTickClampsDelta(t *testing.T) {
	scene := NewScene()
	e := NewEntity("e")
	e.SetVelocity(1000, 0)
	scene.Add(e)

	g := NewGame(scene, nil, Config{MaxDeltaSec: 0.1})
	g.Tick(10.0, nil)

	// x should reflect at most 0.1s of motion, not 10s.
	if e.X > 150 {
		t.Errorf("x = %f, dt should have been clamped to 0.1s", e.X)
	}
}

func TestGameTickFeedsPointerSamples(t *testing.T) {
	scene := NewScene()
	e := NewEntity("e")
	e.Width, e.Height = 100, 100
	e.Interactive = true
	scene.Add(e)
	scene.refreshTransforms()

	tapped := false
	e.on("tap", func(payload any) { tapped = true })

	pointer := &fakePointerSource{samples: []PointerSample{
		{ID: 1, Phase: PointerDown, X: 10, Y: 10, Time: 0},
	}}
	g := NewGame(scene, pointer, DefaultConfig())
	g.Tick(0.016, nil)

	pointer.samples = []PointerSample{{ID: 1, Phase: PointerUp, X: 10, Y: 10, Time: 0.05}}
	g.Tick(0.016, nil)

	if !tapped {
		t.Error("Game.Tick should feed pointer samples to the scene's gesture recognizer")
	}
}

func TestGameTickRendersWhenContextProvided(t *testing.T) {
	scene := NewScene()
	e := NewEntity("e")
	e.Width, e.Height = 10, 10
	scene.Add(e)

	ctx := &fakeDrawContext{}
	g := NewGame(scene, nil, DefaultConfig())
	g.Tick(0.016, ctx)

	if ctx.rects != 1 {
		t.Error("Game.Tick should render through the provided DrawContext")
	}
}

func TestGameTickNilContextSkipsRender(t *testing.T) {
	scene := NewScene()
	g := NewGame(scene, nil, DefaultConfig())
	g.Tick(0.016, nil) // should not panic
}
