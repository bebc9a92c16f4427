package stagekit

import "github.com/tanema/gween/ease"

// EasingFunc maps a normalized progress value t in [0,1] to an eased
// progress value, typically also in [0,1] (overshoot curves like back and
// elastic may briefly leave that range by design). A user-supplied pure
// function satisfying this signature is accepted anywhere a named curve
// is.
type EasingFunc func(t float32) float32

// namedEasings is the 31-curve library: the cross
// product of {quad, cubic, quart, quint, sine, expo, circ, back,
// elastic, bounce} x {in, out, inOut}, plus linear. Backed by
// github.com/tanema/gween/ease, the same tween dependency this package's
// TweenManager and Camera.ScrollTo already use.
var namedEasings = map[string]ease.TweenFunc{
	"linear": ease.Linear,

	"inQuad":    ease.InQuad,
	"outQuad":   ease.OutQuad,
	"inOutQuad": ease.InOutQuad,

	"inCubic":    ease.InCubic,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,

	"inQuart":    ease.InQuart,
	"outQuart":   ease.OutQuart,
	"inOutQuart": ease.InOutQuart,

	"inQuint":    ease.InQuint,
	"outQuint":   ease.OutQuint,
	"inOutQuint": ease.InOutQuint,

	"inSine":    ease.InSine,
	"outSine":   ease.OutSine,
	"inOutSine": ease.InOutSine,

	"inExpo":    ease.InExpo,
	"outExpo":   ease.OutExpo,
	"inOutExpo": ease.InOutExpo,

	"inCirc":    ease.InCirc,
	"outCirc":   ease.OutCirc,
	"inOutCirc": ease.InOutCirc,

	"inBack":    ease.InBack,
	"outBack":   ease.OutBack,
	"inOutBack": ease.InOutBack,

	"inElastic":    ease.InElastic,
	"outElastic":   ease.OutElastic,
	"inOutElastic": ease.InOutElastic,

	"inBounce":    ease.InBounce,
	"outBounce":   ease.OutBounce,
	"inOutBounce": ease.InOutBounce,
}

// Easing looks up a named curve by name. The bool is false for unknown
// names; callers should fall back to linear or reject the tween.
func Easing(name string) (ease.TweenFunc, bool) {
	fn, ok := namedEasings[name]
	return fn, ok
}

// EasingNames returns the registered named curves, for discovery/testing.
func EasingNames() []string {
	names := make([]string, 0, len(namedEasings))
	for name := range namedEasings {
		names = append(names, name)
	}
	return names
}

// wrapCustomEasing adapts a user EasingFunc to gween's ease.TweenFunc
// signature (t, begin, change, duration) -> value, so custom easing
// functions compose with the same gween.Tween machinery as named curves.
func wrapCustomEasing(fn EasingFunc) ease.TweenFunc {
	return func(t, begin, change, duration float32) float32 {
		if duration == 0 {
			return begin + change
		}
		progress := fn(t / duration)
		return begin + change*progress
	}
}
