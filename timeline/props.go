package timeline

import (
	"sort"

	"github.com/solarlune/scrollstage"
)

// PropKind identifies the type of value a Prop holds.
type PropKind int

const (
	KindNumber        PropKind = iota // A float64
	KindColor                         // A scrollstage.Color
	KindStringLiteral                 // One string out of a fixed set
	KindCompound                      // A group of other props
)

func (kind PropKind) String() string {
	switch kind {
	case KindNumber:
		return "number"
	case KindColor:
		return "rgba"
	case KindStringLiteral:
		return "stringLiteral"
	case KindCompound:
		return "compound"
	}
	return "unknown"
}

// Prop describes one animatable property of an Object: its kind and its default value.
type Prop interface {
	Kind() PropKind
}

// NumberProp is a numeric property. Range is a hint for editors; values outside of it aren't clamped.
type NumberProp struct {
	Default  float64
	Min, Max float64
	HasRange bool
}

func (NumberProp) Kind() PropKind { return KindNumber }

// NumberOption customizes a NumberProp.
type NumberOption func(*NumberProp)

// Range sets the editing range hint of a NumberProp.
func Range(min, max float64) NumberOption {
	return func(prop *NumberProp) {
		prop.Min, prop.Max, prop.HasRange = min, max, true
	}
}

// Number creates a numeric property with the default value given.
func Number(defaultValue float64, options ...NumberOption) NumberProp {
	prop := NumberProp{Default: defaultValue}
	for _, opt := range options {
		opt(&prop)
	}
	return prop
}

// RGBAProp is a color property.
type RGBAProp struct {
	Default scrollstage.Color
}

func (RGBAProp) Kind() PropKind { return KindColor }

// RGBA creates a color property. With no default given, it defaults to opaque black.
func RGBA(defaultValue ...scrollstage.Color) RGBAProp {
	prop := RGBAProp{Default: scrollstage.NewColor(0, 0, 0, 1)}
	if len(defaultValue) > 0 {
		prop.Default = defaultValue[0]
	}
	return prop
}

// StringLiteralProp is a property that takes one of a fixed set of strings. Keyframes of a string literal never interpolate;
// they hold their value until the next keyframe.
type StringLiteralProp struct {
	Default string
	Options []string
}

func (StringLiteralProp) Kind() PropKind { return KindStringLiteral }

// StringLiteral creates a string literal property with the default and options given.
func StringLiteral(defaultValue string, options ...string) StringLiteralProp {
	return StringLiteralProp{Default: defaultValue, Options: options}
}

func (prop StringLiteralProp) allows(value string) bool {
	if len(prop.Options) == 0 {
		return true
	}
	for _, opt := range prop.Options {
		if opt == value {
			return true
		}
	}
	return false
}

// CompoundProp groups props under one name; their paths are joined with a dot (i.e. "rotation.x").
type CompoundProp map[string]Prop

func (CompoundProp) Kind() PropKind { return KindCompound }

// Compound creates a group of props.
func Compound(props map[string]Prop) CompoundProp {
	return CompoundProp(props)
}

// leaves flattens the compound into its non-compound props, keyed by dotted path.
func (compound CompoundProp) leaves(prefix string, out map[string]Prop) map[string]Prop {

	if out == nil {
		out = map[string]Prop{}
	}

	for name, prop := range compound {
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}
		if sub, ok := prop.(CompoundProp); ok {
			sub.leaves(path, out)
			continue
		}
		out[path] = prop
	}

	return out

}

func sortedPaths(props map[string]Prop) []string {
	paths := make([]string, 0, len(props))
	for path := range props {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
