package page

// Visibility values, as in CSS.
const (
	Visible = "visible"
	Hidden  = "hidden"
)

// Style holds the animatable presentation properties of an Element.
type Style struct {
	Opacity    float64
	Visibility string
	ScaleX     float64
	ScaleY     float64
}

// DefaultStyle returns a fully opaque, visible, unscaled Style.
func DefaultStyle() Style {
	return Style{Opacity: 1, Visibility: Visible, ScaleX: 1, ScaleY: 1}
}

// Visible returns if the Style lets its element be seen and clicked. Fully transparent elements are still "visible" and
// still receive clicks, as in CSS; only visibility: hidden hides them.
func (style Style) Visible() bool {
	return style.Visibility != Hidden
}

// Element is a positioned box in a Document.
type Element struct {
	Style Style
	Label string // Text drawn inside of the element, if any

	id             string
	doc            *Document
	frame          func(vw, vh float64) Rect
	rect           Rect
	clickListeners []*clickListener
}

type clickListener struct {
	fn func()
}

// ID returns the element's ID.
func (el *Element) ID() string {
	return el.id
}

func (el *Element) layout() {
	el.rect = el.frame(el.doc.width, el.doc.height)
}

// Rect returns the element's layout box in document coordinates.
func (el *Element) Rect() Rect {
	return el.rect
}

// BoundingClientRect returns the element's layout box relative to the viewport.
func (el *Element) BoundingClientRect() Rect {
	r := el.rect
	r.Y -= el.doc.scrollY
	return r
}

// VisualRect returns the element's box relative to the viewport, with its style's scale applied.
func (el *Element) VisualRect() Rect {
	return el.BoundingClientRect().Scaled(el.Style.ScaleX, el.Style.ScaleY)
}

// OnClick registers a function to call when the element is clicked. The returned function unregisters it.
func (el *Element) OnClick(fn func()) (remove func()) {
	l := &clickListener{fn: fn}
	el.clickListeners = append(el.clickListeners, l)
	return func() {
		for i, other := range el.clickListeners {
			if other == l {
				el.clickListeners = append(el.clickListeners[:i], el.clickListeners[i+1:]...)
				return
			}
		}
	}
}

// Clickable returns if the element has any click listeners.
func (el *Element) Clickable() bool {
	return len(el.clickListeners) > 0
}

// Click calls the element's click listeners.
func (el *Element) Click() {
	for _, l := range append([]*clickListener{}, el.clickListeners...) {
		l.fn()
	}
}
