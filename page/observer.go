package page

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidRootMargin is returned when a root margin string can't be parsed.
var ErrInvalidRootMargin = errors.New("invalid root margin")

// Length is a CSS length in pixels or as a percentage of the viewport's matching dimension.
type Length struct {
	Value   float64
	Percent bool
}

// Resolve returns the Length in pixels; percentages are taken of the base given.
func (l Length) Resolve(base float64) float64 {
	if l.Percent {
		return l.Value / 100 * base
	}
	return l.Value
}

func (l Length) String() string {
	if l.Percent {
		return strconv.FormatFloat(l.Value, 'f', -1, 64) + "%"
	}
	return strconv.FormatFloat(l.Value, 'f', -1, 64) + "px"
}

// Margin grows (or, with negative lengths, shrinks) the viewport on each side.
type Margin struct {
	Top, Right, Bottom, Left Length
}

func (m Margin) String() string {
	return strings.Join([]string{m.Top.String(), m.Right.String(), m.Bottom.String(), m.Left.String()}, " ")
}

// ParseRootMargin parses a margin in the CSS shorthand form: one to four space-separated lengths, each in px or %, in
// top, right, bottom, left order. Missing sides copy their opposites, as with the margin property. Zero may be unitless.
func ParseRootMargin(margin string) (Margin, error) {

	fields := strings.Fields(margin)
	if len(fields) == 0 || len(fields) > 4 {
		return Margin{}, fmt.Errorf("%w: %q: expected 1 to 4 lengths", ErrInvalidRootMargin, margin)
	}

	lengths := make([]Length, len(fields))

	for i, f := range fields {
		l, err := parseLength(f)
		if err != nil {
			return Margin{}, fmt.Errorf("%w: %q: %v", ErrInvalidRootMargin, margin, err)
		}
		lengths[i] = l
	}

	switch len(lengths) {
	case 1:
		return Margin{lengths[0], lengths[0], lengths[0], lengths[0]}, nil
	case 2:
		return Margin{lengths[0], lengths[1], lengths[0], lengths[1]}, nil
	case 3:
		return Margin{lengths[0], lengths[1], lengths[2], lengths[1]}, nil
	default:
		return Margin{lengths[0], lengths[1], lengths[2], lengths[3]}, nil
	}

}

func parseLength(s string) (Length, error) {

	l := Length{}
	number := s

	switch {
	case strings.HasSuffix(s, "%"):
		l.Percent = true
		number = strings.TrimSuffix(s, "%")
	case strings.HasSuffix(s, "px"):
		number = strings.TrimSuffix(s, "px")
	}

	v, err := strconv.ParseFloat(number, 64)
	if err != nil || number == "" || strings.ContainsAny(number, "eEnN") {
		return l, fmt.Errorf("bad length %q", s)
	}

	if !l.Percent && number == s && v != 0 {
		return l, fmt.Errorf("length %q needs a unit", s)
	}

	l.Value = v
	return l, nil

}

// ObserverOptions configures an IntersectionObserver.
type ObserverOptions struct {
	// RootMargin grows or shrinks the viewport before testing against it, in CSS margin shorthand; "" means "0px".
	RootMargin string
	// Threshold is the fraction of a target that must be inside the root for it to count as intersecting. At 0, any contact,
	// including only sharing an edge, counts.
	Threshold float64
}

// Entry describes a change in a target's intersection with the root.
type Entry struct {
	Target             *Element
	IsIntersecting     bool
	IntersectionRatio  float64
	BoundingClientRect Rect
	RootBounds         Rect
}

type observation struct {
	target      *Element
	delivered   bool
	intersected bool
}

// IntersectionObserver watches elements and reports, in batches, when they start or stop intersecting the viewport (grown
// or shrunk by the root margin). Every observed element gets one initial entry the first time the Document updates after
// it's observed; after that, entries are only delivered when its intersection state changes.
type IntersectionObserver struct {
	doc          *Document
	callback     func(entries []Entry)
	margin       Margin
	threshold    float64
	observations []*observation
	connected    bool
}

// NewIntersectionObserver creates an IntersectionObserver on the Document that calls the callback given with each batch of
// entries. It returns an error wrapping ErrInvalidRootMargin if the options' root margin can't be parsed.
func (doc *Document) NewIntersectionObserver(callback func(entries []Entry), options ObserverOptions) (*IntersectionObserver, error) {

	rootMargin := options.RootMargin
	if strings.TrimSpace(rootMargin) == "" {
		rootMargin = "0px"
	}

	margin, err := ParseRootMargin(rootMargin)
	if err != nil {
		return nil, err
	}

	if options.Threshold < 0 || options.Threshold > 1 {
		return nil, fmt.Errorf("threshold %v is outside of [0, 1]", options.Threshold)
	}

	obs := &IntersectionObserver{
		doc:       doc,
		callback:  callback,
		margin:    margin,
		threshold: options.Threshold,
		connected: true,
	}

	doc.observers = append(doc.observers, obs)

	return obs, nil

}

// Margin returns the observer's parsed root margin.
func (obs *IntersectionObserver) Margin() Margin {
	return obs.margin
}

// Observe starts watching the element given. Observing an element twice does nothing.
func (obs *IntersectionObserver) Observe(el *Element) {

	for _, o := range obs.observations {
		if o.target == el {
			return
		}
	}

	obs.observations = append(obs.observations, &observation{target: el})

	if !obs.connected {
		obs.connected = true
		obs.doc.observers = append(obs.doc.observers, obs)
	}

}

// Unobserve stops watching the element given.
func (obs *IntersectionObserver) Unobserve(el *Element) {
	for i, o := range obs.observations {
		if o.target == el {
			obs.observations = append(obs.observations[:i], obs.observations[i+1:]...)
			return
		}
	}
}

// Disconnect stops watching every element.
func (obs *IntersectionObserver) Disconnect() {
	obs.observations = nil
	obs.connected = false
	for i, other := range obs.doc.observers {
		if other == obs {
			obs.doc.observers = append(obs.doc.observers[:i], obs.doc.observers[i+1:]...)
			break
		}
	}
}

// RootBounds returns the viewport-relative box targets are tested against.
func (obs *IntersectionObserver) RootBounds() Rect {
	vw, vh := obs.doc.width, obs.doc.height
	top := obs.margin.Top.Resolve(vh)
	bottom := obs.margin.Bottom.Resolve(vh)
	left := obs.margin.Left.Resolve(vw)
	right := obs.margin.Right.Resolve(vw)
	return Rect{X: -left, Y: -top, W: vw + left + right, H: vh + top + bottom}
}

// entry measures the target against the root.
func (obs *IntersectionObserver) entry(el *Element) Entry {

	root := obs.RootBounds()
	rect := el.BoundingClientRect()

	e := Entry{
		Target:             el,
		BoundingClientRect: rect,
		RootBounds:         root,
	}

	if root.W < 0 || root.H < 0 || !rect.Touches(root) {
		return e
	}

	if area := rect.Area(); area > 0 {
		e.IntersectionRatio = rect.Intersection(root).Area() / area
	} else {
		e.IntersectionRatio = 1
	}

	if obs.threshold == 0 {
		e.IsIntersecting = true
	} else {
		e.IsIntersecting = e.IntersectionRatio >= obs.threshold
	}

	return e

}

// TakeRecords measures every observed element and returns the entries that would be delivered, marking them delivered.
func (obs *IntersectionObserver) TakeRecords() []Entry {

	entries := []Entry{}

	for _, o := range obs.observations {
		e := obs.entry(o.target)
		if !o.delivered || e.IsIntersecting != o.intersected {
			o.delivered = true
			o.intersected = e.IsIntersecting
			entries = append(entries, e)
		}
	}

	return entries

}

func (obs *IntersectionObserver) evaluate() {
	if entries := obs.TakeRecords(); len(entries) > 0 && obs.callback != nil {
		obs.callback(entries)
	}
}
