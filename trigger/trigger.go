// Package trigger turns scroll and click events into sequence playback: a Controller plays its sequences forward when a
// watched element enters the trigger band of the viewport, and in reverse when it leaves again, but only once it has
// entered at least once.
package trigger

import (
	"github.com/solarlune/scrollstage/page"
	"github.com/solarlune/scrollstage/timeline"
)

// BandMargin is the root margin of the trigger band: a line 80% of the way down the viewport.
const BandMargin = "-80% 0px -20%"

// Readiness reports whether the animation system can accept play commands; *timeline.Project implements it.
type Readiness interface {
	IsReady() bool
}

// Player is a sequence that can be played; *timeline.Sequence implements it.
type Player interface {
	Play(options timeline.PlayOptions) *timeline.Playback
}

var (
	forward  = timeline.PlayOptions{Direction: timeline.Normal}
	backward = timeline.PlayOptions{Direction: timeline.Reverse}
)

// Controller plays a set of sequences forward or in reverse as a watched element enters and leaves the trigger band.
//
// Events that arrive while the animation system isn't ready are dropped, not queued. Readiness is checked again for every
// event. A leave event does nothing until the Controller has handled an enter event at least once; after that, every
// leave plays the sequences in reverse. Nothing is debounced: every qualifying event issues fresh play commands.
type Controller struct {
	ready     Readiness
	sequences []Player
	once      bool
}

// NewController creates a Controller driving the sequences given.
func NewController(ready Readiness, sequences ...Player) *Controller {
	return &Controller{
		ready:     ready,
		sequences: sequences,
	}
}

// Once returns whether the Controller has played its sequences forward at least once.
func (c *Controller) Once() bool {
	return c.once
}

// HandleEntries handles a batch of intersection entries from an IntersectionObserver. Only the first entry is considered.
func (c *Controller) HandleEntries(entries []page.Entry) {
	if len(entries) == 0 {
		return
	}
	c.Handle(entries[0].IsIntersecting)
}

// Handle handles a single intersection change, returning whether any play commands were issued.
func (c *Controller) Handle(isIntersecting bool) bool {
	if isIntersecting {
		return c.Enter()
	}
	return c.Leave()
}

// Enter plays every sequence forward and arms reverse playback. It returns false if the event was discarded.
func (c *Controller) Enter() bool {

	if !c.ready.IsReady() {
		Logger().Debug("enter discarded; not ready")
		return false
	}

	c.playAll(forward)
	c.once = true
	return true

}

// Leave plays every sequence in reverse, provided the Controller has entered before. It returns false if nothing was played.
func (c *Controller) Leave() bool {

	if !c.ready.IsReady() {
		Logger().Debug("leave discarded; not ready")
		return false
	}

	if !c.once {
		Logger().Debug("leave ignored; never entered")
		return false
	}

	c.playAll(backward)
	return true

}

func (c *Controller) playAll(options timeline.PlayOptions) {
	Logger().Debug("playing sequences", "direction", options.Direction, "count", len(c.sequences))
	for _, seq := range c.sequences {
		seq.Play(options)
	}
}

// NewObserver creates an IntersectionObserver on the Document that tests its targets against the trigger band and feeds
// the Controller. Nothing is watched until the observer is given an element to observe.
func (c *Controller) NewObserver(doc *page.Document) (*page.IntersectionObserver, error) {
	return doc.NewIntersectionObserver(c.HandleEntries, page.ObserverOptions{RootMargin: BandMargin})
}

// ClickTrigger plays one sequence forward whenever it fires, regardless of readiness or any Controller's state.
type ClickTrigger struct {
	sequence Player
}

// NewClickTrigger creates a ClickTrigger for the sequence given.
func NewClickTrigger(sequence Player) *ClickTrigger {
	return &ClickTrigger{sequence: sequence}
}

// Fire plays the sequence forward.
func (ct *ClickTrigger) Fire() *timeline.Playback {
	Logger().Debug("click trigger fired")
	return ct.sequence.Play(forward)
}

// Attach fires the ClickTrigger whenever the element given is clicked. The returned function detaches it.
func (ct *ClickTrigger) Attach(el *page.Element) (detach func()) {
	return el.OnClick(func() { ct.Fire() })
}
