package timeline

import "github.com/solarlune/scrollstage"

// Values is a snapshot of an Object's props at one point of its Sheet's sequence. Props are looked up by their dotted path
// (i.e. "rotation.x"); looking up a path the Object doesn't have returns the zero value.
type Values struct {
	numbers map[string]float64
	colors  map[string]scrollstage.Color
	strings map[string]string
}

func newValues() Values {
	return Values{
		numbers: map[string]float64{},
		colors:  map[string]scrollstage.Color{},
		strings: map[string]string{},
	}
}

// Number returns the numeric prop at the path given.
func (values Values) Number(path string) float64 {
	return values.numbers[path]
}

// Color returns the color prop at the path given.
func (values Values) Color(path string) scrollstage.Color {
	return values.colors[path]
}

// String returns the string literal prop at the path given.
func (values Values) String(path string) string {
	return values.strings[path]
}

// Has returns if the Values hold a prop at the path given.
func (values Values) Has(path string) bool {
	if _, ok := values.numbers[path]; ok {
		return true
	}
	if _, ok := values.colors[path]; ok {
		return true
	}
	_, ok := values.strings[path]
	return ok
}

// Equals returns if both snapshots hold the same props with the same values.
func (values Values) Equals(other Values) bool {

	if len(values.numbers) != len(other.numbers) || len(values.colors) != len(other.colors) || len(values.strings) != len(other.strings) {
		return false
	}

	for k, v := range values.numbers {
		if o, ok := other.numbers[k]; !ok || o != v {
			return false
		}
	}

	for k, v := range values.colors {
		if o, ok := other.colors[k]; !ok || o != v {
			return false
		}
	}

	for k, v := range values.strings {
		if o, ok := other.strings[k]; !ok || o != v {
			return false
		}
	}

	return true

}
