package render

import (
	"bytes"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/scrollstage/page"
	"golang.org/x/image/font/gofont/goregular"
)

// PageStyle holds the colors and font size DrawPage uses.
type PageStyle struct {
	Text       color.NRGBA
	Section    color.NRGBA // Outline of sections
	Button     color.NRGBA
	ButtonText color.NRGBA
	FontSize   float64 // In logical pixels
}

// DefaultPageStyle returns white labels and a white button with dark text.
func DefaultPageStyle() PageStyle {
	return PageStyle{
		Text:       color.NRGBA{255, 255, 255, 255},
		Section:    color.NRGBA{255, 255, 255, 40},
		Button:     color.NRGBA{255, 255, 255, 230},
		ButtonText: color.NRGBA{20, 20, 30, 255},
		FontSize:   20,
	}
}

// PageDrawer draws the labels and buttons of a page.Document on top of a rendered Scene.
type PageDrawer struct {
	Style PageStyle

	source *text.GoTextFaceSource
}

// NewPageDrawer creates a PageDrawer using the Go Regular font.
func NewPageDrawer() (*PageDrawer, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	return &PageDrawer{Style: DefaultPageStyle(), source: source}, nil
}

var (
	defaultDrawer     *PageDrawer
	defaultDrawerOnce sync.Once
)

// DrawPage draws the Document with a shared PageDrawer in the default style.
func DrawPage(screen *ebiten.Image, doc *page.Document, ratio float64) {
	defaultDrawerOnce.Do(func() {
		drawer, err := NewPageDrawer()
		if err != nil {
			panic(err)
		}
		defaultDrawer = drawer
	})
	defaultDrawer.DrawPage(screen, doc, ratio)
}

// DrawPage draws every labeled, visible element of the Document in viewport coordinates scaled by the pixel ratio given.
// Clickable elements are drawn as filled buttons; the rest only have their label drawn at their top-left corner, like a section
// heading, with a faint outline around the section. Opacity and scale are honored; hidden elements aren't drawn at all.
func (drawer *PageDrawer) DrawPage(screen *ebiten.Image, doc *page.Document, ratio float64) {

	face := &text.GoTextFace{Source: drawer.source, Size: drawer.Style.FontSize * ratio}

	for _, el := range doc.Elements() {

		if !el.Style.Visible() || el.Label == "" || el.Style.Opacity <= 0 {
			continue
		}

		r := el.VisualRect()
		x, y, w, h := r.X*ratio, r.Y*ratio, r.W*ratio, r.H*ratio

		if w <= 0 || h <= 0 {
			continue
		}

		opacity := float32(el.Style.Opacity)
		if opacity > 1 {
			opacity = 1
		}

		opt := &text.DrawOptions{}

		if el.Clickable() {

			bg := drawer.Style.Button
			bg.A = uint8(float32(bg.A) * opacity)
			vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), bg, true)

			opt.GeoM.Scale(el.Style.ScaleX, el.Style.ScaleY)
			opt.GeoM.Translate(x+w/2, y+h/2)
			opt.PrimaryAlign = text.AlignCenter
			opt.SecondaryAlign = text.AlignCenter
			opt.ColorScale.ScaleWithColor(drawer.Style.ButtonText)

		} else {

			if y+h < 0 || y > float64(screen.Bounds().Dy()) {
				continue
			}

			vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), float32(ratio), drawer.Style.Section, true)

			margin := 24 * ratio
			opt.GeoM.Translate(x+margin, y+margin)
			opt.ColorScale.ScaleWithColor(drawer.Style.Text)

		}

		opt.ColorScale.ScaleAlpha(opacity)
		text.Draw(screen, el.Label, face, opt)

	}

}
