// Package typeface turns text into filled 2D outlines using TrueType and OpenType fonts, ready to be extruded into solids.
package typeface

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/solarlune/scrollstage"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ErrGlyphNotFound is matched (with errors.Is) by every GlyphNotFoundError.
var ErrGlyphNotFound = errors.New("typeface: glyph not found")

// GlyphNotFoundError reports a character the typeface has no glyph for.
type GlyphNotFoundError struct {
	Rune rune
}

func (e *GlyphNotFoundError) Error() string {
	return "typeface: no glyph for " + strconv.QuoteRune(e.Rune)
}

func (e *GlyphNotFoundError) Unwrap() error {
	return ErrGlyphNotFound
}

// Face is a parsed font. A Face is safe for concurrent use.
type Face struct {
	font *sfnt.Font
	name string
	upem float64
	ppem fixed.Int26_6
}

// Parse parses TrueType or OpenType font data into a Face.
func Parse(data []byte) (*Face, error) {

	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("typeface: failed to parse font: %w", err)
	}

	upem := int(f.UnitsPerEm())

	face := &Face{
		font: f,
		upem: float64(upem),
		// Loading at one pixel per font unit keeps outlines in font units, unhinted.
		ppem: fixed.I(upem),
	}

	if name, err := f.Name(nil, sfnt.NameIDFull); err == nil {
		face.name = name
	}

	return face, nil

}

var (
	defaultOnce sync.Once
	defaultFace *Face
	defaultErr  error
)

// Default returns the bold Go font, the typeface every demo's solid text is set in. It's parsed once and shared.
func Default() (*Face, error) {
	defaultOnce.Do(func() {
		defaultFace, defaultErr = Parse(gobold.TTF)
	})
	return defaultFace, defaultErr
}

// Name returns the full name of the font, if it has one.
func (face *Face) Name() string {
	return face.name
}

// HasGlyph returns if the Face can outline the rune given.
func (face *Face) HasGlyph(r rune) bool {
	idx, err := face.font.GlyphIndex(nil, r)
	return err == nil && idx != 0
}

func (face *Face) glyph(buf *sfnt.Buffer, r rune) (sfnt.GlyphIndex, error) {
	idx, err := face.font.GlyphIndex(buf, r)
	if err != nil {
		return 0, fmt.Errorf("typeface: looking up %s: %w", strconv.QuoteRune(r), err)
	}
	if idx == 0 {
		return 0, &GlyphNotFoundError{Rune: r}
	}
	return idx, nil
}

// LineHeight returns the distance between two baselines of text set at the size given.
func (face *Face) LineHeight(size float64) float64 {
	var buf sfnt.Buffer
	metrics, err := face.font.Metrics(&buf, face.ppem, font.HintingNone)
	if err != nil {
		return size
	}
	return fixedToFloat64(metrics.Height) / face.upem * size
}

// Width returns how wide the widest line of the text given is, at the size given.
func (face *Face) Width(text string, size float64) (float64, error) {

	var buf sfnt.Buffer
	widest := 0.0

	for _, line := range strings.Split(text, "\n") {

		x := 0.0
		prev := sfnt.GlyphIndex(0)

		for _, r := range line {
			idx, err := face.glyph(&buf, r)
			if err != nil {
				return 0, err
			}
			x += face.kern(&buf, prev, idx) * size
			advance, err := face.font.GlyphAdvance(&buf, idx, face.ppem, font.HintingNone)
			if err != nil {
				return 0, fmt.Errorf("typeface: advance of %s: %w", strconv.QuoteRune(r), err)
			}
			x += fixedToFloat64(advance) / face.upem * size
			prev = idx
		}

		widest = math.Max(widest, x)

	}

	return widest, nil

}

// kern returns the kerning between the two glyphs in ems.
func (face *Face) kern(buf *sfnt.Buffer, prev, next sfnt.GlyphIndex) float64 {
	if prev == 0 {
		return 0
	}
	k, err := face.font.Kern(buf, prev, next, face.ppem, font.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat64(k) / face.upem
}

// Shapes lays the text out from the origin along +X with +Y up, at size world units per em, and returns its filled outlines. Each
// curve in a glyph is flattened into curveSegments straight segments. A newline starts a new line one LineHeight lower.
// If any character (other than a newline) has no glyph, a *GlyphNotFoundError is returned and no shapes are.
func (face *Face) Shapes(text string, size float64, curveSegments int) ([]scrollstage.Shape, error) {

	if curveSegments < 1 {
		curveSegments = 1
	}

	var buf sfnt.Buffer

	scale := size / face.upem
	lineHeight := face.LineHeight(size)
	shapes := []scrollstage.Shape{}

	for lineIndex, line := range strings.Split(text, "\n") {

		x := 0.0
		y := -float64(lineIndex) * lineHeight
		prev := sfnt.GlyphIndex(0)

		for _, r := range line {

			idx, err := face.glyph(&buf, r)
			if err != nil {
				return nil, err
			}

			x += face.kern(&buf, prev, idx) * size

			segments, err := face.font.LoadGlyph(&buf, idx, face.ppem, nil)
			if err != nil {
				return nil, fmt.Errorf("typeface: loading glyph %s: %w", strconv.QuoteRune(r), err)
			}

			contours := flatten(segments, curveSegments, scale, x, y)
			shapes = append(shapes, classify(contours)...)

			advance, err := face.font.GlyphAdvance(&buf, idx, face.ppem, font.HintingNone)
			if err != nil {
				return nil, fmt.Errorf("typeface: advance of %s: %w", strconv.QuoteRune(r), err)
			}

			x += fixedToFloat64(advance) * scale
			prev = idx

		}

	}

	return shapes, nil

}

// flatten converts glyph segments (in font units, y down) into closed polylines in world units with y up, offset by x and y.
func flatten(segments sfnt.Segments, curveSegments int, scale, x, y float64) [][]scrollstage.Vector2 {

	contours := [][]scrollstage.Vector2{}
	current := []scrollstage.Vector2{}

	toWorld := func(p fixed.Point26_6) scrollstage.Vector2 {
		return scrollstage.Vector2{
			X: x + fixedToFloat64(p.X)*scale,
			Y: y - fixedToFloat64(p.Y)*scale,
		}
	}

	finish := func() {
		if len(current) >= 3 {
			contours = append(contours, current)
		}
		current = []scrollstage.Vector2{}
	}

	for _, seg := range segments {

		switch seg.Op {

		case sfnt.SegmentOpMoveTo:
			finish()
			current = append(current, toWorld(seg.Args[0]))

		case sfnt.SegmentOpLineTo:
			current = append(current, toWorld(seg.Args[0]))

		case sfnt.SegmentOpQuadTo:
			start := current[len(current)-1]
			control, end := toWorld(seg.Args[0]), toWorld(seg.Args[1])
			for i := 1; i <= curveSegments; i++ {
				t := float64(i) / float64(curveSegments)
				mt := 1 - t
				current = append(current, scrollstage.Vector2{
					X: mt*mt*start.X + 2*mt*t*control.X + t*t*end.X,
					Y: mt*mt*start.Y + 2*mt*t*control.Y + t*t*end.Y,
				})
			}

		case sfnt.SegmentOpCubeTo:
			start := current[len(current)-1]
			c1, c2, end := toWorld(seg.Args[0]), toWorld(seg.Args[1]), toWorld(seg.Args[2])
			for i := 1; i <= curveSegments; i++ {
				t := float64(i) / float64(curveSegments)
				mt := 1 - t
				current = append(current, scrollstage.Vector2{
					X: mt*mt*mt*start.X + 3*mt*mt*t*c1.X + 3*mt*t*t*c2.X + t*t*t*end.X,
					Y: mt*mt*mt*start.Y + 3*mt*mt*t*c1.Y + 3*mt*t*t*c2.Y + t*t*t*end.Y,
				})
			}

		}

	}

	finish()

	return contours

}

// classify groups a glyph's contours into shapes by nesting: a contour inside an even number of other contours is an outline,
// and a contour inside an odd number is a hole in the smallest outline around it.
func classify(contours [][]scrollstage.Vector2) []scrollstage.Shape {

	type contourInfo struct {
		points []scrollstage.Vector2
		area   float64
		parent int
		depth  int
		shape  int
	}

	infos := make([]*contourInfo, 0, len(contours))
	for _, c := range contours {
		area := math.Abs(scrollstage.SignedArea(c))
		if area == 0 {
			continue
		}
		infos = append(infos, &contourInfo{points: c, area: area, parent: -1, shape: -1})
	}

	// Larger contours first, so a contour's possible parents are always processed before it.
	sort.SliceStable(infos, func(i, j int) bool { return infos[i].area > infos[j].area })

	shapes := []scrollstage.Shape{}

	for i, info := range infos {

		for j := i - 1; j >= 0; j-- {
			if containsContour(infos[j].points, info.points) {
				info.parent = j
				info.depth = infos[j].depth + 1
				break
			}
		}

		if info.depth%2 == 0 {
			info.shape = len(shapes)
			shapes = append(shapes, scrollstage.Shape{Outer: info.points})
		} else {
			parent := infos[info.parent]
			shapes[parent.shape].Holes = append(shapes[parent.shape].Holes, info.points)
		}

	}

	return shapes

}

// containsContour returns if most of the inner contour's points lie inside the outer contour.
func containsContour(outer, inner []scrollstage.Vector2) bool {
	inside := 0
	for _, p := range inner {
		if pointInContour(outer, p) {
			inside++
		}
	}
	return inside*2 > len(inner)
}

func pointInContour(contour []scrollstage.Vector2, p scrollstage.Vector2) bool {
	in := false
	for i, j := 0, len(contour)-1; i < len(contour); j, i = i, i+1 {
		a, b := contour[i], contour[j]
		if (a.Y > p.Y) != (b.Y > p.Y) && p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}

func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
