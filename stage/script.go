package stage

// Script is a list of steps run in order, one tick at a time. Each step is called every Update until it reports that
// it's done; then the next step starts, in the same Update.
type Script struct {
	steps []func() bool
}

// NewScript creates an empty Script.
func NewScript() *Script {
	return &Script{}
}

// Then appends a step to the Script.
func (script *Script) Then(step func() bool) *Script {
	script.steps = append(script.steps, step)
	return script
}

// Do appends a step that runs once.
func (script *Script) Do(fn func()) *Script {
	return script.Then(func() bool {
		fn()
		return true
	})
}

// Update runs the current step, moving on for as long as steps finish.
func (script *Script) Update() {
	for len(script.steps) > 0 && script.steps[0]() {
		script.steps = script.steps[1:]
	}
}

// Done returns if every step has finished.
func (script *Script) Done() bool {
	return len(script.steps) == 0
}
