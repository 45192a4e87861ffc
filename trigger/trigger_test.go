package trigger

import (
	"testing"

	"github.com/solarlune/scrollstage/page"
	"github.com/solarlune/scrollstage/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type readiness struct{ ready bool }

func (r *readiness) IsReady() bool { return r.ready }

type recorder struct {
	plays []timeline.Direction
}

func (r *recorder) Play(options timeline.PlayOptions) *timeline.Playback {
	r.plays = append(r.plays, options.Direction)
	return nil
}

func TestEnterThenLeave(t *testing.T) {

	ready := &readiness{ready: true}
	a, b := &recorder{}, &recorder{}
	c := NewController(ready, a, b)

	assert.True(t, c.Handle(true))
	assert.True(t, c.Once())
	assert.Equal(t, []timeline.Direction{timeline.Normal}, a.plays)
	assert.Equal(t, []timeline.Direction{timeline.Normal}, b.plays)

	for i := 0; i < 3; i++ {
		assert.True(t, c.Handle(false))
	}
	assert.Equal(t, []timeline.Direction{timeline.Normal, timeline.Reverse, timeline.Reverse, timeline.Reverse}, a.plays)
	assert.True(t, c.Once(), "the flag is never reset")

}

func TestLeaveBeforeEnter(t *testing.T) {

	ready := &readiness{ready: true}
	seq := &recorder{}
	c := NewController(ready, seq)

	assert.False(t, c.Leave())
	assert.False(t, c.Leave())
	assert.Empty(t, seq.plays)
	assert.False(t, c.Once())

	assert.True(t, c.Enter())
	assert.True(t, c.Leave())
	assert.Equal(t, []timeline.Direction{timeline.Normal, timeline.Reverse}, seq.plays)

}

func TestNotReadyDiscards(t *testing.T) {

	ready := &readiness{}
	seq := &recorder{}
	c := NewController(ready, seq)

	assert.False(t, c.Enter())
	assert.False(t, c.Leave())
	assert.Empty(t, seq.plays)
	assert.False(t, c.Once(), "discarded enters don't arm reverse playback")

	ready.ready = true
	assert.False(t, c.Leave(), "nothing was queued")
	assert.Empty(t, seq.plays)

	assert.True(t, c.Enter())
	assert.Equal(t, []timeline.Direction{timeline.Normal}, seq.plays)

	ready.ready = false
	assert.False(t, c.Leave(), "readiness is checked for every event")
	assert.Len(t, seq.plays, 1)

}

func TestHandleEntriesUsesFirst(t *testing.T) {

	seq := &recorder{}
	c := NewController(&readiness{ready: true}, seq)

	c.HandleEntries(nil)
	assert.Empty(t, seq.plays)

	c.HandleEntries([]page.Entry{{IsIntersecting: true}, {IsIntersecting: false}})
	assert.Equal(t, []timeline.Direction{timeline.Normal}, seq.plays)

}

func TestClickTrigger(t *testing.T) {

	doc := page.NewDocument(800, 600)
	button := doc.NewElement("scroll-button", func(vw, vh float64) page.Rect { return page.Rect{X: 0, Y: 0, W: 100, H: 100} })

	seq := &recorder{}
	ct := NewClickTrigger(seq)
	detach := ct.Attach(button)

	doc.Click(50, 50)
	doc.Click(50, 50)
	assert.Equal(t, []timeline.Direction{timeline.Normal, timeline.Normal}, seq.plays)

	detach()
	doc.Click(50, 50)
	assert.Len(t, seq.plays, 2)

}

const scrollState = `
sheets:
  Scroll:
    sequence: {length: 1}
    objects:
      Box:
        tracks:
          y:
            - {position: 0, value: 0}
            - {position: 1, value: 10}
`

// TestScrollPlayback drives a real Project through a Document: scrolling a section across the band plays the sequence
// forward, and scrolling back plays it in reverse.
func TestScrollPlayback(t *testing.T) {

	state, err := timeline.ParseState([]byte(scrollState))
	require.NoError(t, err)
	project, err := timeline.NewProject("Scroll", state)
	require.NoError(t, err)

	sheet := project.Sheet("Scroll")
	box, err := sheet.Object("Box", timeline.Compound(map[string]timeline.Prop{"y": timeline.Number(0)}))
	require.NoError(t, err)

	doc := page.NewDocument(800, 1000)
	for i := 0; i < 3; i++ {
		i := i
		doc.NewElement("", func(vw, vh float64) page.Rect { return page.Rect{Y: float64(i) * vh, W: vw, H: vh} })
	}
	about := doc.NewElement("section-about", func(vw, vh float64) page.Rect { return page.Rect{Y: vh, W: vw, H: vh} })

	c := NewController(project, sheet.Sequence())
	obs, err := c.NewObserver(doc)
	require.NoError(t, err)
	obs.Observe(about)

	// The section starts below the band, but the project isn't ready yet, so the initial entry is dropped.
	doc.Update()
	assert.False(t, c.Once())

	project.Update(0)
	require.True(t, project.IsReady())

	doc.ScrollTo(300)
	doc.Update()
	assert.True(t, c.Once())
	assert.True(t, sheet.Sequence().Playing())

	project.Update(2)
	assert.Equal(t, 10.0, box.Value().Number("y"))

	doc.ScrollTo(0)
	doc.Update()
	project.Update(0.25)
	assert.InDelta(t, 7.5, box.Value().Number("y"), 1e-9)
	project.Update(1)
	assert.Equal(t, 0.0, box.Value().Number("y"))

}
