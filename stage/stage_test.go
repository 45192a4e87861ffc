package stage

import (
	"errors"
	"math"
	"testing"

	"github.com/solarlune/scrollstage"
	"github.com/solarlune/scrollstage/colors"
	"github.com/solarlune/scrollstage/page"
	"github.com/solarlune/scrollstage/timeline"
	"github.com/solarlune/scrollstage/typeface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type surface struct {
	w, h  int
	ratio float64
}

func (s *surface) SetSize(w, h int)            { s.w, s.h = w, h }
func (s *surface) SetPixelRatio(ratio float64) { s.ratio = ratio }

type missingGlyphs struct{}

func (missingGlyphs) Shapes(text string, size float64, curveSegments int) ([]scrollstage.Shape, error) {
	return nil, &typeface.GlyphNotFoundError{Rune: []rune(text)[0]}
}

func newMultiple(t *testing.T) (*Stage, *surface) {

	t.Helper()

	state, err := MultipleProjectState()
	require.NoError(t, err)
	project, err := timeline.NewProject(MultipleProjectName, state)
	require.NoError(t, err)

	face, err := typeface.Default()
	require.NoError(t, err)

	s := &surface{}
	ctx := NewContext(s, NewMultiplePage(800, 600))
	ctx.OnResize(800, 600, 1)

	st, err := BuildMultiple(ctx, project, scrollstage.NewTextBuilder(face, scrollstage.NewStandardMaterial("Text", colors.Amber(), colors.Azure())))
	require.NoError(t, err)

	return st, s

}

func TestOnResize(t *testing.T) {

	s := &surface{}
	ctx := NewContext(s, NewSamplePage(800, 600))
	assert.Equal(t, 800.0/600.0, ctx.Camera.AspectRatio())

	for _, size := range [][2]int{{1280, 720}, {333, 777}, {1, 1000}} {
		ctx.OnResize(size[0], size[1], 3)
		assert.Equal(t, float64(size[0])/float64(size[1]), ctx.Camera.AspectRatio())
		assert.Equal(t, size[0], s.w)
		assert.Equal(t, size[1], s.h)
		assert.Equal(t, 2.0, s.ratio, "pixel ratio is capped")
		vw, vh := ctx.Document.Viewport()
		assert.Equal(t, float64(size[0]), vw)
		assert.Equal(t, float64(size[1]), vh)
	}

	ctx.OnResize(640, 480, 1.5)
	assert.Equal(t, 1.5, s.ratio)

	ctx.OnResize(0, 480, 1)
	assert.Equal(t, 640, s.w, "empty sizes are ignored")

}

func TestScript(t *testing.T) {

	ready := false
	ran := []string{}

	script := NewScript().
		Then(func() bool { return ready }).
		Do(func() { ran = append(ran, "a") }).
		Do(func() { ran = append(ran, "b") })

	script.Update()
	script.Update()
	assert.Empty(t, ran)
	assert.False(t, script.Done())

	ready = true
	script.Update()
	assert.Equal(t, []string{"a", "b"}, ran)
	assert.True(t, script.Done())

	script.Update()
	assert.Len(t, ran, 2)

}

func TestEmbeddedStates(t *testing.T) {

	sample, err := SampleProjectState()
	require.NoError(t, err)
	assert.Equal(t, 6.0, sample.Sheets[SampleSheet].Sequence.Length)

	multiple, err := MultipleProjectState()
	require.NoError(t, err)
	for _, name := range []string{KeyVisualSheet, ScrollSheet, ScrollButtonSheet, TextLoopSheet} {
		assert.Contains(t, multiple.Sheets, name)
	}

}

func TestBuildSample(t *testing.T) {

	state, err := SampleProjectState()
	require.NoError(t, err)
	project, err := timeline.NewProject(SampleProjectName, state)
	require.NoError(t, err)

	ctx := NewContext(&surface{}, NewSamplePage(800, 600))
	st, err := BuildSample(ctx, project)
	require.NoError(t, err)

	cube := ctx.Scene.FindModel("Cube")
	require.NotNil(t, cube)
	assert.Equal(t, 7.0, cube.Mesh.Dimensions.Width())
	assert.Equal(t, colors.Azure(), cube.Mesh.Material.Emissive)
	assert.Equal(t, 50.0, ctx.Camera.LocalPosition().Z)
	assert.Len(t, ctx.Scene.Lights(), 2)

	// The cube starts out scaled down to nothing.
	assert.Equal(t, scrollstage.NewVector(0, 0, 0), cube.LocalScale())
	assert.False(t, project.IsReady())

	st.Update(0)
	assert.True(t, project.IsReady())
	assert.True(t, project.Sheet(SampleSheet).Sequence().Playing())

	st.Update(1)
	assert.Equal(t, scrollstage.NewVector(1, 1, 1), cube.LocalScale())

	st.Update(2)
	amber := colors.Amber()
	assert.InDelta(t, amber.R, cube.Mesh.Material.Color.R, 1e-6)
	assert.InDelta(t, amber.G, cube.Mesh.Material.Color.G, 1e-6)
	assert.InDelta(t, amber.B, cube.Mesh.Material.Color.B, 1e-6)
	assert.InDelta(t, 5, cube.LocalPosition().Y, 1e-5)

	// It loops forever.
	for i := 0; i < 100; i++ {
		st.Update(1)
	}
	assert.True(t, project.Sheet(SampleSheet).Sequence().Playing())

}

func TestBuildMultiple(t *testing.T) {

	st, _ := newMultiple(t)
	doc := st.Document
	button := doc.GetElementByID(ScrollButtonID)
	scrollSeq := st.Project.Sheet(ScrollSheet).Sequence()

	textGroup := st.Scene.Root.Get("TextGroup")
	require.NotNil(t, textGroup)
	require.Len(t, textGroup.Children(), 3)
	for _, name := range []string{"U", ".", "Stack"} {
		require.NotNil(t, textGroup.Get(name), name)
	}

	cube := st.Scene.FindModel("Cube")
	require.NotNil(t, cube)
	assert.Equal(t, 6.0, cube.Mesh.Dimensions.Width())
	assert.Equal(t, 45.0, st.Camera.LocalPosition().Z)

	assert.Equal(t, 0.0, button.Style.ScaleX, "the button is scaled away until the key visual plays")

	// Ready; the key visual starts.
	st.Update(0)
	assert.True(t, st.Project.Sheet(KeyVisualSheet).Sequence().Playing())
	assert.False(t, st.Project.Sheet(TextLoopSheet).Sequence().Playing())

	// The key visual ends; the text loop starts and the about section is watched. It starts below the band, which
	// doesn't play anything in reverse.
	st.Update(3)
	assert.True(t, st.Script.Done())
	assert.True(t, st.Project.Sheet(TextLoopSheet).Sequence().Playing())
	assert.False(t, st.Controller.Once())
	assert.False(t, scrollSeq.Playing())

	assert.Equal(t, 1.0, button.Style.ScaleX)
	assert.Equal(t, page.Visible, button.Style.Visibility)
	assert.Equal(t, scrollstage.NewVector(0, 0, 0), cube.LocalScale())
	u := textGroup.Get("U")
	assert.Equal(t, -13.0, u.LocalPosition().X)
	assert.Equal(t, 0.0, u.LocalPosition().Y)
	assert.Equal(t, scrollstage.NewVector(1, 1, 1), u.LocalScale())

	// Scroll the about section into the band.
	doc.ScrollTo(300)
	st.Update(0)
	assert.True(t, st.Controller.Once())
	assert.True(t, scrollSeq.Playing())

	st.Update(0.5)
	assert.Equal(t, 0.0, button.Style.Opacity)
	assert.Equal(t, page.Hidden, button.Style.Visibility)
	assert.Nil(t, doc.Click(400, 512), "hidden buttons can't be clicked")

	st.Update(1)
	assert.False(t, scrollSeq.Playing())
	assert.InDelta(t, 2*math.Pi, textGroup.LocalRotation().Y, 1e-9)

	// Scroll back up; everything plays in reverse.
	doc.ScrollTo(0)
	st.Update(0)
	st.Update(0.5)
	assert.Equal(t, 1.0, button.Style.Opacity)
	assert.Equal(t, page.Visible, button.Style.Visibility)
	assert.InDelta(t, 1.0, scrollSeq.Position(), 1e-9)

	// The button plays the scroll animation forward again.
	assert.Equal(t, button, doc.Click(400, 512))
	st.Update(0.25)
	assert.InDelta(t, 1.25, scrollSeq.Position(), 1e-9)

}

func TestBuildMultipleFailures(t *testing.T) {

	state, err := MultipleProjectState()
	require.NoError(t, err)

	project, err := timeline.NewProject(MultipleProjectName, state)
	require.NoError(t, err)
	builder := scrollstage.NewTextBuilder(missingGlyphs{}, scrollstage.NewMaterial("Text"))

	_, err = BuildMultiple(NewContext(&surface{}, NewMultiplePage(800, 600)), project, builder)
	assert.True(t, errors.Is(err, typeface.ErrGlyphNotFound))

	project, err = timeline.NewProject(MultipleProjectName, state)
	require.NoError(t, err)
	face, err := typeface.Default()
	require.NoError(t, err)

	_, err = BuildMultiple(NewContext(&surface{}, NewSamplePage(800, 600)), project, scrollstage.NewTextBuilder(face, scrollstage.NewMaterial("Text")))
	assert.ErrorIs(t, err, ErrMissingElement)

}
