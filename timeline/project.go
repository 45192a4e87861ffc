// Package timeline is a small keyframe animation runtime. A Project holds Sheets; each Sheet has one Sequence (a playhead
// over a fixed length of time) and any number of Objects, whose props are driven by the keyframes authored for them in the
// Project's state. Code subscribes to an Object's values and applies them to whatever it animates.
//
// Everything in a Project is meant to be used from a single goroutine, with Project.Update called once per tick.
package timeline

import (
	"fmt"
	"log/slog"
	"sort"
)

// Project is the root of an animation: a named collection of Sheets, loaded from a ProjectState.
type Project struct {
	name    string
	state   ProjectState
	sheets  map[string]*Sheet
	order   []*Sheet
	ready   chan struct{}
	isReady bool
}

// NewProject creates a Project from the state given. The state is validated immediately; the Project becomes ready on its
// first Update.
func NewProject(name string, state ProjectState) (*Project, error) {

	if err := state.Validate(); err != nil {
		return nil, fmt.Errorf("timeline: project %q: %w", name, err)
	}

	if state.Sheets == nil {
		state.Sheets = map[string]SheetState{}
	}

	return &Project{
		name:   name,
		state:  state,
		sheets: map[string]*Sheet{},
		ready:  make(chan struct{}),
	}, nil

}

// Name returns the Project's name.
func (project *Project) Name() string {
	return project.name
}

// Ready returns a channel that's closed once the Project is ready to play.
func (project *Project) Ready() <-chan struct{} {
	return project.ready
}

// IsReady returns if the Project is ready to play.
func (project *Project) IsReady() bool {
	return project.isReady
}

// State returns the Project's current state document.
func (project *Project) State() ProjectState {
	return project.state
}

// Sheet returns the Sheet with the name given, creating it if it doesn't exist yet.
func (project *Project) Sheet(name string) *Sheet {

	if sheet, ok := project.sheets[name]; ok {
		return sheet
	}

	sheet := &Sheet{
		project: project,
		name:    name,
		objects: map[string]*Object{},
	}

	sheet.sequence = &Sequence{
		sheet:  sheet,
		length: project.state.sheet(name).Sequence.Length,
	}

	project.sheets[name] = sheet
	project.order = append(project.order, sheet)

	return sheet

}

// Sheets returns every Sheet created so far, in creation order.
func (project *Project) Sheets() []*Sheet {
	return append([]*Sheet{}, project.order...)
}

// Update advances the Project by dt seconds: the first call makes the Project ready, and every call advances the playing
// Sequences and notifies the Objects whose values changed.
func (project *Project) Update(dt float64) {

	if !project.isReady {
		project.isReady = true
		close(project.ready)
		Logger().Info("project ready", slog.String("project", project.name), slog.Int("sheets", len(project.state.Sheets)))
	}

	for _, sheet := range project.order {
		if sheet.sequence.update(dt) {
			sheet.evaluate()
		}
	}

}

// ApplyState replaces the Project's state with the one given, re-evaluating every Object. If the new state is invalid or
// doesn't fit the props of an existing Object, the old state is kept and the error returned.
func (project *Project) ApplyState(state ProjectState) error {

	if err := state.Validate(); err != nil {
		return fmt.Errorf("timeline: project %q: %w", project.name, err)
	}

	if state.Sheets == nil {
		state.Sheets = map[string]SheetState{}
	}

	// Check everything before changing anything.
	tracks := map[*Object]map[string]*track{}
	for _, sheet := range project.order {
		for _, object := range sheet.objectOrder {
			t, err := object.buildTracks(state.sheet(sheet.name).Objects[object.name])
			if err != nil {
				return fmt.Errorf("timeline: project %q: %s/%s: %w", project.name, sheet.name, object.name, err)
			}
			tracks[object] = t
		}
	}

	project.state = state

	for _, sheet := range project.order {
		seq := sheet.sequence
		seq.length = state.sheet(sheet.name).Sequence.Length
		if seq.position > seq.length {
			seq.position = seq.length
		}
		if seq.length <= 0 && seq.playback != nil {
			seq.playback.finish(true)
		}
		for _, object := range sheet.objectOrder {
			object.tracks = tracks[object]
			object.static = state.sheet(sheet.name).Objects[object.name].Static
		}
		sheet.evaluate()
	}

	Logger().Info("project state applied", slog.String("project", project.name))

	return nil

}

// Sheet is a group of Objects animated together by one Sequence.
type Sheet struct {
	project     *Project
	name        string
	sequence    *Sequence
	objects     map[string]*Object
	objectOrder []*Object
}

// Name returns the Sheet's name.
func (sheet *Sheet) Name() string {
	return sheet.name
}

// Sequence returns the Sheet's Sequence.
func (sheet *Sheet) Sequence() *Sequence {
	return sheet.sequence
}

// Object returns the Object with the name given, creating it with the props given if it doesn't exist yet. An error
// wrapping ErrStateMismatch is returned if the Project's state holds values that don't fit the props.
// Asking for an existing Object returns it as it is; the props given are ignored.
func (sheet *Sheet) Object(name string, props CompoundProp) (*Object, error) {

	if object, ok := sheet.objects[name]; ok {
		return object, nil
	}

	object := &Object{
		sheet: sheet,
		name:  name,
		props: props.leaves("", nil),
	}
	object.paths = sortedPaths(object.props)

	objectState := sheet.project.state.sheet(sheet.name).Objects[name]

	tracks, err := object.buildTracks(objectState)
	if err != nil {
		return nil, fmt.Errorf("timeline: %s/%s: %w", sheet.name, name, err)
	}

	object.tracks = tracks
	object.static = objectState.Static
	object.current = object.valuesAt(sheet.sequence.position)

	sheet.objects[name] = object
	sheet.objectOrder = append(sheet.objectOrder, object)

	return object, nil

}

// Objects returns the Sheet's Objects, sorted by name.
func (sheet *Sheet) Objects() []*Object {
	out := append([]*Object{}, sheet.objectOrder...)
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// evaluate recalculates every Object's values at the Sequence's position, notifying those that changed.
func (sheet *Sheet) evaluate() {
	for _, object := range sheet.objectOrder {
		object.refresh()
	}
}

type listener struct {
	fn func(Values)
}

// Object is a set of animatable props on a Sheet.
type Object struct {
	sheet     *Sheet
	name      string
	props     map[string]Prop
	paths     []string
	tracks    map[string]*track
	static    map[string]any
	current   Values
	listeners []*listener
}

// Name returns the Object's name.
func (object *Object) Name() string {
	return object.name
}

// Value returns the Object's current values.
func (object *Object) Value() Values {
	return object.current
}

// OnValuesChange calls fn with the Object's current values right away, and then again every time they change. The returned
// function unsubscribes fn.
func (object *Object) OnValuesChange(fn func(Values)) (unsubscribe func()) {

	l := &listener{fn: fn}
	object.listeners = append(object.listeners, l)

	fn(object.current)

	return func() {
		for i, other := range object.listeners {
			if other == l {
				object.listeners = append(object.listeners[:i], object.listeners[i+1:]...)
				return
			}
		}
	}

}

func (object *Object) buildTracks(state ObjectState) (map[string]*track, error) {

	if err := checkObject(state, object.props); err != nil {
		return nil, err
	}

	tracks := map[string]*track{}

	for path, keyframes := range state.Tracks {
		if len(keyframes) == 0 {
			continue
		}
		t, err := newTrack(object.props[path], keyframes)
		if err != nil {
			return nil, err
		}
		tracks[path] = t
	}

	return tracks, nil

}

// valuesAt evaluates every prop at the position given: the track if there is one, otherwise the static value, otherwise
// the prop's default.
func (object *Object) valuesAt(position float64) Values {

	values := newValues()

	for _, path := range object.paths {

		prop := object.props[path]

		var value any

		if t, ok := object.tracks[path]; ok {
			value = t.valueAt(position)
		} else if static, ok := object.static[path]; ok {
			// Static values were checked along with the tracks.
			value, _ = convert(prop, static)
		}

		if value == nil {
			switch p := prop.(type) {
			case NumberProp:
				value = p.Default
			case RGBAProp:
				value = p.Default
			case StringLiteralProp:
				value = p.Default
			}
		}

		switch v := value.(type) {
		case float64:
			values.numbers[path] = v
		case string:
			values.strings[path] = v
		default:
			if c, err := toColor(v); err == nil {
				values.colors[path] = c
			}
		}

	}

	return values

}

func (object *Object) refresh() {

	next := object.valuesAt(object.sheet.sequence.position)

	if next.Equals(object.current) {
		return
	}

	object.current = next

	for _, l := range append([]*listener{}, object.listeners...) {
		l.fn(next)
	}

}
