package stagekit

// Game wires a Scene to a host's pointer feed and draw surface, running
// the full per-tick pipeline: ingest pointer samples, dispatch gestures,
// step the simulation, then render. It is optional
// scaffolding — a host may instead call Scene.Update/Render/FeedPointer
// directly, as the headless tests in this package do.
type Game struct {
	Scene   *Scene
	Pointer PointerSource
	Config  Config
}

// NewGame creates a Game around an existing Scene.
func NewGame(scene *Scene, pointer PointerSource, cfg Config) *Game {
	return &Game{Scene: scene, Pointer: pointer, Config: cfg}
}

// Tick ingests this frame's pointer samples, steps the simulation by dt
// (clamped to Config.MaxDeltaSec), and renders through ctx.
func (g *Game) Tick(dt float64, ctx DrawContext) {
	if g.Config.MaxDeltaSec > 0 && dt > g.Config.MaxDeltaSec {
		dt = g.Config.MaxDeltaSec
	}
	if g.Pointer != nil {
		for _, sample := range g.Pointer.PollPointers() {
			g.Scene.FeedPointer(sample)
		}
	}
	g.Scene.Update(dt)
	if ctx != nil {
		g.Scene.Render(ctx)
	}
}
