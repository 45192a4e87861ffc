package stage

import (
	"math"

	"github.com/solarlune/scrollstage"
	"github.com/solarlune/scrollstage/colors"
	"github.com/solarlune/scrollstage/timeline"
)

// SampleSheet is the name of the sample page's only sheet.
const SampleSheet = "Cube animation"

// BuildSample builds the sample page into the Context: an amber cube with a blue glow, animated by the "Cube animation"
// sheet, which starts looping endlessly as soon as the Project is ready.
func BuildSample(ctx *Context, project *timeline.Project) (*Stage, error) {

	material := scrollstage.NewStandardMaterial("Cube", colors.Amber(), colors.Azure())

	cube := scrollstage.NewModel(scrollstage.NewBox(7, 7, 7), "Cube")
	cube.Mesh.Material = material
	ctx.Scene.Add(cube)

	sheet := project.Sheet(SampleSheet)

	cubeObj, err := sheet.Object("Cube", timeline.Compound(map[string]timeline.Prop{
		"rotation": rotationProp(turnRange(), turnRange(), turnRange()),
		"position": positionProp(),
		"scale":    scaleProp(0),
		"color":    timeline.RGBA(colors.Red()),
	}))
	if err != nil {
		return nil, err
	}

	cubeObj.OnValuesChange(func(values timeline.Values) {
		applyRotation(cube, values)
		applyPosition(cube, values)
		applyScale(cube, values)
		material.SetColor(values.Color("color"))
	})

	addLights(ctx, colors.Yellow())
	ctx.Camera.SetLocalPosition(0, 0, 50)

	script := NewScript().
		Then(project.IsReady).
		Do(func() {
			sheet.Sequence().Play(timeline.PlayOptions{IterationCount: math.Inf(1)})
		})

	return &Stage{
		Context: ctx,
		Project: project,
		Script:  script,
	}, nil

}
