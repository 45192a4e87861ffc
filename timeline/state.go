package timeline

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/solarlune/scrollstage"
)

var (
	// ErrUnknownEase is returned when a keyframe names an easing function that doesn't exist.
	ErrUnknownEase = errors.New("timeline: unknown ease")
	// ErrStateMismatch is returned when a state document holds a value that doesn't fit an Object's props.
	ErrStateMismatch = errors.New("timeline: state does not match props")
	// ErrInvalidState is returned for state documents that are malformed.
	ErrInvalidState = errors.New("timeline: invalid state")
)

// ProjectState is the authored animation data of a Project: per Sheet, the sequence's length and, per Object, static prop
// values and keyframed tracks. It's stored as YAML.
type ProjectState struct {
	Sheets map[string]SheetState `yaml:"sheets"`
}

// SheetState holds the authored data for one Sheet.
type SheetState struct {
	Sequence SequenceState          `yaml:"sequence"`
	Objects  map[string]ObjectState `yaml:"objects,omitempty"`
}

// SequenceState holds the settings of a Sheet's sequence.
type SequenceState struct {
	Length float64 `yaml:"length"` // Length in seconds
}

// ObjectState holds the authored values of one Object. A prop with a track is animated; otherwise a static value
// overrides the prop's default.
type ObjectState struct {
	Static map[string]any        `yaml:"static,omitempty"`
	Tracks map[string][]Keyframe `yaml:"tracks,omitempty"`
}

// Keyframe is one authored value on a track. Numbers and colors interpolate towards the next keyframe using the keyframe's
// ease, unless Hold is set; string literals always hold.
type Keyframe struct {
	Position float64 `yaml:"position"` // Position on the sequence in seconds
	Value    any     `yaml:"value"`
	Ease     string  `yaml:"ease,omitempty"`
	Hold     bool    `yaml:"hold,omitempty"`
}

// ParseState decodes a YAML state document, rejecting unknown fields, and validates it.
func ParseState(data []byte) (ProjectState, error) {

	state := ProjectState{}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&state); err != nil {
		return ProjectState{}, fmt.Errorf("timeline: decoding state: %w", err)
	}

	if err := state.Validate(); err != nil {
		return ProjectState{}, err
	}

	return state, nil

}

// Marshal encodes the state as YAML.
func (state ProjectState) Marshal() ([]byte, error) {
	return yaml.Marshal(state)
}

// Validate checks that every sequence length is usable, every keyframe lies on its sequence, and every ease exists.
// Keyframes are sorted by position as a side effect.
func (state ProjectState) Validate() error {

	for sheetName, sheet := range state.Sheets {

		if sheet.Sequence.Length < 0 || math.IsNaN(sheet.Sequence.Length) || math.IsInf(sheet.Sequence.Length, 0) {
			return fmt.Errorf("%w: sheet %q has a sequence length of %v", ErrInvalidState, sheetName, sheet.Sequence.Length)
		}

		for objectName, object := range sheet.Objects {

			for path, track := range object.Tracks {

				sort.SliceStable(track, func(i, j int) bool { return track[i].Position < track[j].Position })

				for _, key := range track {

					if key.Position < 0 || key.Position > sheet.Sequence.Length {
						return fmt.Errorf("%w: keyframe of %s/%s.%s at %v lies outside of the sequence", ErrInvalidState, sheetName, objectName, path, key.Position)
					}

					if _, err := Ease(key.Ease); err != nil {
						return fmt.Errorf("%s/%s.%s: %w", sheetName, objectName, path, err)
					}

				}

			}

		}

	}

	return nil

}

func (state ProjectState) sheet(name string) SheetState {
	return state.Sheets[name]
}

// checkObject returns an error if the authored values of the Object don't fit the props given.
func checkObject(object ObjectState, props map[string]Prop) error {

	check := func(path string, value any) error {
		prop, ok := props[path]
		if !ok {
			return fmt.Errorf("%w: no prop %q", ErrStateMismatch, path)
		}
		if _, err := convert(prop, value); err != nil {
			return fmt.Errorf("%w: prop %q: %v", ErrStateMismatch, path, err)
		}
		return nil
	}

	for path, value := range object.Static {
		if err := check(path, value); err != nil {
			return err
		}
	}

	for path, track := range object.Tracks {
		for _, key := range track {
			if err := check(path, key.Value); err != nil {
				return err
			}
		}
	}

	return nil

}

// convert turns a decoded YAML value into a value of the prop's kind: float64, scrollstage.Color, or string.
func convert(prop Prop, value any) (any, error) {

	switch p := prop.(type) {

	case NumberProp:
		return toNumber(value)

	case RGBAProp:
		return toColor(value)

	case StringLiteralProp:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("expected a string, got %T", value)
		}
		if !p.allows(s) {
			return nil, fmt.Errorf("%q is not one of %v", s, p.Options)
		}
		return s, nil

	}

	return nil, fmt.Errorf("cannot hold a value in a %s prop", prop.Kind())

}

func toNumber(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	}
	return 0, fmt.Errorf("expected a number, got %T", value)
}

// toColor accepts a hex string ("#ff9900") or a map of r, g, b, and (optionally) a components ranging from 0 to 1.
func toColor(value any) (scrollstage.Color, error) {

	switch v := value.(type) {

	case string:
		return scrollstage.NewColorFromHexString(v)

	case scrollstage.Color:
		return v, nil

	case map[string]any:
		c := scrollstage.NewColor(0, 0, 0, 1)
		channels := map[string]*float32{"r": &c.R, "g": &c.G, "b": &c.B, "a": &c.A}
		for key, raw := range v {
			channel, ok := channels[key]
			if !ok {
				return scrollstage.Color{}, fmt.Errorf("unknown color channel %q", key)
			}
			n, err := toNumber(raw)
			if err != nil {
				return scrollstage.Color{}, fmt.Errorf("color channel %q: %w", key, err)
			}
			*channel = float32(n)
		}
		return c, nil

	}

	return scrollstage.Color{}, fmt.Errorf("expected a color, got %T", value)

}
