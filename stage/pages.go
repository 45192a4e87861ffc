package stage

import "github.com/solarlune/scrollstage/page"

// Element IDs of the multiple-animation page.
const (
	KeyVisualID    = "section-kv"
	AboutID        = "section-about"
	FooterID       = "section-footer"
	ScrollButtonID = "scroll-button"
)

// NewSamplePage lays out the sample page: a single screen with nothing to scroll.
func NewSamplePage(w, h float64) *page.Document {
	doc := page.NewDocument(w, h)
	doc.NewElement("app", func(vw, vh float64) page.Rect {
		return page.Rect{W: vw, H: vh}
	})
	return doc
}

// NewMultiplePage lays out the multiple-animation page: a full-screen key visual with a scroll button near its bottom,
// followed by the about section the scroll trigger watches and a short footer.
func NewMultiplePage(w, h float64) *page.Document {

	doc := page.NewDocument(w, h)

	doc.NewElement(KeyVisualID, func(vw, vh float64) page.Rect {
		return page.Rect{W: vw, H: vh}
	})

	about := doc.NewElement(AboutID, func(vw, vh float64) page.Rect {
		return page.Rect{Y: vh, W: vw, H: vh}
	})
	about.Label = "About"

	footer := doc.NewElement(FooterID, func(vw, vh float64) page.Rect {
		return page.Rect{Y: vh * 2, W: vw, H: vh / 2}
	})
	footer.Label = "Thanks for scrolling"

	button := doc.NewElement(ScrollButtonID, func(vw, vh float64) page.Rect {
		return page.Rect{X: vw/2 - 60, Y: vh - 110, W: 120, H: 44}
	})
	button.Label = "SCROLL"

	return doc

}
