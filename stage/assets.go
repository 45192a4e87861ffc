package stage

import (
	_ "embed"

	"github.com/solarlune/scrollstage/timeline"
)

// Project names, also used as the keys project state overrides are saved under.
const (
	SampleProjectName   = "SampleProject"
	MultipleProjectName = "MultipleAnimationProject"
)

//go:embed assets/SampleProject.yaml
var sampleProjectState []byte

//go:embed assets/MultipleAnimationProject.yaml
var multipleProjectState []byte

// SampleProjectState returns the embedded animation state of the sample page.
func SampleProjectState() (timeline.ProjectState, error) {
	return timeline.ParseState(sampleProjectState)
}

// MultipleProjectState returns the embedded animation state of the multiple-animation page.
func MultipleProjectState() (timeline.ProjectState, error) {
	return timeline.ParseState(multipleProjectState)
}
