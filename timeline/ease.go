package timeline

import (
	"fmt"
	"sort"

	"github.com/tanema/gween/ease"
)

// eases maps the names usable in a keyframe's ease field to their easing functions. An empty name is linear.
var eases = map[string]ease.TweenFunc{
	"":            ease.Linear,
	"linear":      ease.Linear,
	"inQuad":      ease.InQuad,
	"outQuad":     ease.OutQuad,
	"inOutQuad":   ease.InOutQuad,
	"inCubic":     ease.InCubic,
	"outCubic":    ease.OutCubic,
	"inOutCubic":  ease.InOutCubic,
	"inQuart":     ease.InQuart,
	"outQuart":    ease.OutQuart,
	"inOutQuart":  ease.InOutQuart,
	"inSine":      ease.InSine,
	"outSine":     ease.OutSine,
	"inOutSine":   ease.InOutSine,
	"inExpo":      ease.InExpo,
	"outExpo":     ease.OutExpo,
	"inOutExpo":   ease.InOutExpo,
	"inCirc":      ease.InCirc,
	"outCirc":     ease.OutCirc,
	"inOutCirc":   ease.InOutCirc,
	"inBack":      ease.InBack,
	"outBack":     ease.OutBack,
	"inOutBack":   ease.InOutBack,
	"outElastic":  ease.OutElastic,
	"outBounce":   ease.OutBounce,
	"inOutBounce": ease.InOutBounce,
}

// Ease returns the easing function registered under the name given.
func Ease(name string) (ease.TweenFunc, error) {
	fn, ok := eases[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEase, name)
	}
	return fn, nil
}

// EaseNames returns the names of every available easing function, sorted.
func EaseNames() []string {
	names := make([]string, 0, len(eases))
	for name := range eases {
		if name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
