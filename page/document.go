// Package page is a minimal stand-in for a scrolling web page: a viewport over a tall document of positioned elements, with
// styles that can be animated, click handling, resize notifications, and IntersectionObservers that report when elements
// cross a band of the viewport.
//
// A Document is driven from a single goroutine: input calls (ScrollBy, Click, Resize) change its state, and Update, called
// once per frame, delivers intersection changes.
package page

import "math"

// Rect is an axis-aligned rectangle, with Y pointing down.
type Rect struct {
	X, Y, W, H float64
}

// Top returns the Y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Left returns the X coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Contains returns if the point lies inside the Rect, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left() && x <= r.Right() && y >= r.Top() && y <= r.Bottom()
}

// Touches returns if the two Rects overlap or share an edge.
func (r Rect) Touches(other Rect) bool {
	return r.Left() <= other.Right() && other.Left() <= r.Right() && r.Top() <= other.Bottom() && other.Top() <= r.Bottom()
}

// Intersection returns the overlapping area of the two Rects; if they don't overlap, the result has no area.
func (r Rect) Intersection(other Rect) Rect {
	x0, y0 := math.Max(r.Left(), other.Left()), math.Max(r.Top(), other.Top())
	x1, y1 := math.Min(r.Right(), other.Right()), math.Min(r.Bottom(), other.Bottom())
	return Rect{X: x0, Y: y0, W: math.Max(0, x1-x0), H: math.Max(0, y1-y0)}
}

// Area returns the area of the Rect.
func (r Rect) Area() float64 {
	return r.W * r.H
}

// Scaled returns the Rect scaled around its center.
func (r Rect) Scaled(sx, sy float64) Rect {
	cx, cy := r.X+r.W/2, r.Y+r.H/2
	w, h := r.W*sx, r.H*sy
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Document is a scrollable page the size of a viewport.
type Document struct {
	width, height   float64
	scrollY         float64
	elements        []*Element
	byID            map[string]*Element
	resizeListeners []*resizeListener
	observers       []*IntersectionObserver
}

type resizeListener struct {
	fn func(w, h float64)
}

// NewDocument creates an empty Document with a viewport of the size given.
func NewDocument(width, height float64) *Document {
	return &Document{
		width:  width,
		height: height,
		byID:   map[string]*Element{},
	}
}

// Viewport returns the size of the viewport.
func (doc *Document) Viewport() (w, h float64) {
	return doc.width, doc.height
}

// NewElement adds an element to the Document. frame lays the element out in document coordinates given the viewport's size;
// it's called again whenever the viewport is resized. Elements added later are on top of elements added earlier.
func (doc *Document) NewElement(id string, frame func(vw, vh float64) Rect) *Element {

	el := &Element{
		id:    id,
		doc:   doc,
		frame: frame,
		Style: DefaultStyle(),
	}
	el.layout()

	doc.elements = append(doc.elements, el)
	if id != "" {
		doc.byID[id] = el
	}

	return el

}

// GetElementByID returns the element with the ID given, or nil.
func (doc *Document) GetElementByID(id string) *Element {
	return doc.byID[id]
}

// Elements returns every element, bottom-most first.
func (doc *Document) Elements() []*Element {
	return append([]*Element{}, doc.elements...)
}

// ScrollY returns how far the viewport is scrolled down the Document.
func (doc *Document) ScrollY() float64 {
	return doc.scrollY
}

// ScrollHeight returns the height of the Document's content; it's never less than the viewport's height.
func (doc *Document) ScrollHeight() float64 {
	h := doc.height
	for _, el := range doc.elements {
		h = math.Max(h, el.rect.Bottom())
	}
	return h
}

// MaxScroll returns the furthest the viewport can be scrolled down.
func (doc *Document) MaxScroll() float64 {
	return math.Max(0, doc.ScrollHeight()-doc.height)
}

// ScrollTo scrolls the viewport to the position given, clamped to the Document.
func (doc *Document) ScrollTo(y float64) {
	doc.scrollY = math.Max(0, math.Min(doc.MaxScroll(), y))
}

// ScrollBy scrolls the viewport by the amount given; positive values scroll down.
func (doc *Document) ScrollBy(dy float64) {
	doc.ScrollTo(doc.scrollY + dy)
}

// Resize changes the viewport's size, lays every element out again, and notifies the resize listeners.
func (doc *Document) Resize(width, height float64) {

	doc.width, doc.height = width, height

	for _, el := range doc.elements {
		el.layout()
	}

	doc.ScrollTo(doc.scrollY)

	for _, l := range append([]*resizeListener{}, doc.resizeListeners...) {
		l.fn(width, height)
	}

}

// OnResize registers a function to call whenever the viewport is resized. The returned function unregisters it.
func (doc *Document) OnResize(fn func(w, h float64)) (remove func()) {
	l := &resizeListener{fn: fn}
	doc.resizeListeners = append(doc.resizeListeners, l)
	return func() {
		for i, other := range doc.resizeListeners {
			if other == l {
				doc.resizeListeners = append(doc.resizeListeners[:i], doc.resizeListeners[i+1:]...)
				return
			}
		}
	}
}

// Click simulates a click at the viewport position given. The top-most visible element under the point (taking its style's
// scale into account) receives the click. It returns the element clicked, or nil.
func (doc *Document) Click(x, y float64) *Element {

	for i := len(doc.elements) - 1; i >= 0; i-- {

		el := doc.elements[i]

		if !el.Style.Visible() || !el.Clickable() {
			continue
		}

		if el.VisualRect().Contains(x, y) {
			el.Click()
			return el
		}

	}

	return nil

}

// Update delivers intersection changes to every IntersectionObserver. Call it once per frame, after handling input.
func (doc *Document) Update() {
	for _, obs := range append([]*IntersectionObserver{}, doc.observers...) {
		obs.evaluate()
	}
}
