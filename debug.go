package stagekit

import (
	"fmt"
	"log"
	"os"
)

// Debug enables assertion-style invariant checks (destroyed-entity and
// tree-depth checks; the parent-cycle check in AddChild runs regardless).
// Off by default so release builds pay nothing for them; tests
// and development builds should set it true. Mirrors a plain package-level
// flag rather than a build tag so a host can flip it at runtime.
var Debug = false

// debugCheckDestroyed panics with a descriptive message when a destroyed
// entity is used in a tree operation. Only called when Debug is true; in
// release mode callers skip this entirely.
func debugCheckDestroyed(e *Entity, op string) {
	if e.destroyed {
		panic(fmt.Sprintf("stagekit debug: %s on destroyed entity %q (id was %d)", op, e.Name, e.id))
	}
}

// debugMaxTreeDepth is the depth above which debugCheckTreeDepth warns.
const debugMaxTreeDepth = 64

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
func debugCheckTreeDepth(e *Entity) {
	depth := 0
	for p := e; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[stagekit] warning: tree depth %d exceeds %d (entity %q)\n",
			depth, debugMaxTreeDepth, e.Name)
	}
}

// warnOnce logs msg through the standard logger the first time it is called
// for a given key, and is a no-op on every subsequent call. It backs the
// "silently ignored, optionally logged once" language for missing
// prerequisites (e.g. a tween targeting an unknown property).
type warnOnce struct {
	seen map[string]bool
}

func (w *warnOnce) warn(key, format string, args ...any) {
	if w.seen == nil {
		w.seen = make(map[string]bool)
	}
	if w.seen[key] {
		return
	}
	w.seen[key] = true
	log.Printf("[stagekit] "+format, args...)
}
