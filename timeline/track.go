package timeline

import (
	"github.com/tanema/gween"

	"github.com/solarlune/scrollstage"
)

// track is a keyframed prop, with its keyframe values already converted to the prop's kind.
type track struct {
	prop      Prop
	keyframes []Keyframe
	values    []any
}

func newTrack(prop Prop, keyframes []Keyframe) (*track, error) {

	t := &track{
		prop:      prop,
		keyframes: keyframes,
		values:    make([]any, len(keyframes)),
	}

	for i, key := range keyframes {
		v, err := convert(prop, key.Value)
		if err != nil {
			return nil, err
		}
		t.values[i] = v
	}

	return t, nil

}

// valueAt returns the track's value at the position given; before the first keyframe and after the last, their values hold.
func (t *track) valueAt(position float64) any {

	if len(t.keyframes) == 0 {
		return nil
	}

	if first := t.keyframes[0]; position <= first.Position {
		return t.values[0]
	} else if last := t.keyframes[len(t.keyframes)-1]; position >= last.Position {
		return t.values[len(t.values)-1]
	}

	from := 0
	for i, k := range t.keyframes {
		if k.Position <= position {
			from = i
		} else {
			break
		}
	}

	to := from + 1
	start, end := t.keyframes[from], t.keyframes[to]

	if position == start.Position || start.Hold || t.prop.Kind() == KindStringLiteral {
		return t.values[from]
	}

	// Eases were checked when the state was validated. Only the eased progress goes through gween; values are mixed in float64.
	easing, _ := Ease(start.Ease)
	progress, _ := gween.New(0, 1, float32(end.Position-start.Position), easing).Set(float32(position - start.Position))
	p := float64(progress)

	switch a := t.values[from].(type) {

	case float64:
		b := t.values[to].(float64)
		return a + (b-a)*p

	case scrollstage.Color:
		b := t.values[to].(scrollstage.Color)
		return a.Lerp(b, progress)

	}

	return t.values[from]

}
