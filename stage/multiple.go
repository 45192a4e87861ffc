package stage

import (
	"fmt"
	"math"

	"github.com/solarlune/scrollstage"
	"github.com/solarlune/scrollstage/colors"
	"github.com/solarlune/scrollstage/timeline"
	"github.com/solarlune/scrollstage/trigger"
)

// Sheets of the multiple-animation page.
const (
	KeyVisualSheet    = "KV Animation"
	ScrollSheet       = "Scroll Animation"
	ScrollButtonSheet = "Scroll Button Animation"
	TextLoopSheet     = "Text Loop Animation"
)

// TextLoopOptions is how the text bobs once the key visual has played.
var TextLoopOptions = timeline.PlayOptions{
	IterationCount: math.Inf(1),
	Direction:      timeline.Alternate,
	Rate:           0.8,
}

// BuildMultiple builds the multiple-animation page into the Context, whose Document should be laid out by
// NewMultiplePage. The text "U.Stack" is built with the TextBuilder given; a character the builder can't outline fails the
// whole build.
//
// Once the Project is ready, the key visual plays once; when it's done, the text starts bobbing and the about section is
// watched, so scrolling it into the trigger band plays the scroll animations forward and scrolling back plays them in
// reverse. Clicking the scroll button plays the scroll animation at any time.
func BuildMultiple(ctx *Context, project *timeline.Project, text *scrollstage.TextBuilder) (*Stage, error) {

	kv := project.Sheet(KeyVisualSheet)
	scroll := project.Sheet(ScrollSheet)
	scrollButton := project.Sheet(ScrollButtonSheet)
	textLoop := project.Sheet(TextLoopSheet)

	button, err := element(ctx.Document, ScrollButtonID)
	if err != nil {
		return nil, err
	}

	about, err := element(ctx.Document, AboutID)
	if err != nil {
		return nil, err
	}

	// Text

	textGroup := scrollstage.NewGroup("TextGroup")
	ctx.Scene.Add(textGroup)

	for _, letter := range []struct{ object, text string }{
		{"Text", "U"},
		{"Period", "."},
		{"Text2", "Stack"},
	} {

		model, err := text.NewModel(letter.text)
		if err != nil {
			return nil, fmt.Errorf("stage: building text %q: %w", letter.text, err)
		}
		textGroup.AddChildren(model)

		obj, err := kv.Object(letter.object, textProps())
		if err != nil {
			return nil, err
		}

		obj.OnValuesChange(func(values timeline.Values) {
			applyPosition(model, values)
			applyUniformScale(model, values)
		})

	}

	groupObj, err := scroll.Object("TextGroup", textProps())
	if err != nil {
		return nil, err
	}

	groupObj.OnValuesChange(func(values timeline.Values) {
		applyRotation(textGroup, values)
		applyPosition(textGroup, values)
	})

	loopObj, err := textLoop.Object("TextGroup", timeline.Compound(map[string]timeline.Prop{
		"posY": timeline.Number(0, timeline.Range(-10, 10)),
	}))
	if err != nil {
		return nil, err
	}

	loopObj.OnValuesChange(func(values timeline.Values) {
		p := textGroup.LocalPosition()
		textGroup.SetLocalPosition(p.X, values.Number("posY"), p.Z)
	})

	// Cube

	material := scrollstage.NewStandardMaterial("Cube", colors.White(), colors.White())

	cube := scrollstage.NewModel(scrollstage.NewBox(6, 6, 6), "Cube")
	cube.Mesh.Material = material
	ctx.Scene.Add(cube)

	cubeObj, err := kv.Object("Cube", timeline.Compound(map[string]timeline.Prop{
		"rotation": rotationProp(turnRange(), timeline.Number(0, timeline.Range(-1, 5)), turnRange()),
		"position": positionProp(),
		"scale":    scaleProp(1),
		"color":    timeline.RGBA(),
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

	// Scroll button

	visibility := timeline.StringLiteral("visible", "visible", "hidden")

	kvButtonObj, err := kv.Object("ScrollButton", timeline.Compound(map[string]timeline.Prop{
		"scale": timeline.Compound(map[string]timeline.Prop{
			"x": timeline.Number(1, timeline.Range(0, 2)),
			"y": timeline.Number(1, timeline.Range(0, 2)),
		}),
		"visibility": visibility,
	}))
	if err != nil {
		return nil, err
	}

	kvButtonObj.OnValuesChange(func(values timeline.Values) {
		button.Style.ScaleX = values.Number("scale.x")
		button.Style.ScaleY = values.Number("scale.y")
		button.Style.Visibility = values.String("visibility")
	})

	fadeObj, err := scrollButton.Object("ScrollButton", timeline.Compound(map[string]timeline.Prop{
		"opacity":    timeline.Number(1, timeline.Range(0, 1)),
		"visibility": visibility,
	}))
	if err != nil {
		return nil, err
	}

	fadeObj.OnValuesChange(func(values timeline.Values) {
		button.Style.Opacity = values.Number("opacity")
		button.Style.Visibility = values.String("visibility")
	})

	// Triggers

	controller := trigger.NewController(project, scroll.Sequence(), scrollButton.Sequence())

	observer, err := controller.NewObserver(ctx.Document)
	if err != nil {
		return nil, err
	}

	click := trigger.NewClickTrigger(scroll.Sequence())
	click.Attach(button)

	addLights(ctx, colors.White())
	ctx.Camera.SetLocalPosition(0, 0, 45)

	var intro *timeline.Playback

	script := NewScript().
		Then(project.IsReady).
		Do(func() {
			intro = kv.Sequence().Play(timeline.PlayOptions{})
		}).
		Then(func() bool {
			return intro.Finished()
		}).
		Do(func() {
			textLoop.Sequence().Play(TextLoopOptions)
			observer.Observe(about)
		})

	return &Stage{
		Context:      ctx,
		Project:      project,
		Script:       script,
		Controller:   controller,
		ClickTrigger: click,
	}, nil

}
