// Package stagekit is the simulation core of a gesture-first 2D
// interactive-media engine.
//
// A [Scene] owns a tree of [Entity] values. Each tick stagekit ingests
// pointer samples through a [GestureRecognizer], integrates physics with
// sub-stepping, resolves collisions between circles and axis-aligned or
// oriented rectangles, advances [Tween] animations, and leaves drawing to
// whatever implements [DrawContext].
//
// # Quick start
//
//	scene := stagekit.NewScene()
//	ball := stagekit.NewEntity("ball")
//	ball.Width, ball.Height = 40, 40
//	ball.Radius = 20
//	ball.SetGravity(980)
//	ball.CheckCollisions = true
//	scene.Root().AddChild(ball)
//
//	for range ticks {
//		scene.Update(dt)
//		scene.Render(ctx) // ctx implements DrawContext
//	}
//
// # Scope
//
// stagekit does not draw pixels, decode images, play audio, or persist
// state. Those concerns live behind the thin contracts in external.go
// ([DrawContext], [AssetStore], [PointerSource]) supplied by the host
// application — see the ebiten-backed programs under examples/ for a
// complete wiring via [Game].
//
// # Key features
//
// Hierarchical entities with anchor/pivot transforms, sub-stepped gravity
// and friction, mixed circle/AABB/oriented-rectangle collision with
// persistent enter/collide/exit bookkeeping, a gesture recognizer for
// tap/long-press/drag/swipe/pinch, declarative property tweens (via
// [gween]), and optional ECS bridging (via [Donburi]) for host-owned game
// state that rides alongside an Entity.
//
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package stagekit
