package stage

import (
	"errors"
	"fmt"

	"github.com/solarlune/scrollstage"
	"github.com/solarlune/scrollstage/page"
	"github.com/solarlune/scrollstage/timeline"
)

// ErrMissingElement is returned when a page lacks an element a Stage needs.
var ErrMissingElement = errors.New("stage: missing page element")

func element(doc *page.Document, id string) (*page.Element, error) {
	el := doc.GetElementByID(id)
	if el == nil {
		return nil, fmt.Errorf("%w: #%s", ErrMissingElement, id)
	}
	return el, nil
}

// rotationProp is a rotation in turns around each axis.
func rotationProp(x, y, z timeline.NumberProp) timeline.CompoundProp {
	return timeline.Compound(map[string]timeline.Prop{"x": x, "y": y, "z": z})
}

func positionProp() timeline.CompoundProp {
	return timeline.Compound(map[string]timeline.Prop{
		"px": timeline.Number(0, timeline.Range(-100, 100)),
		"py": timeline.Number(0, timeline.Range(-100, 100)),
		"pz": timeline.Number(0, timeline.Range(-100, 100)),
	})
}

func scaleProp(defaultScale float64) timeline.CompoundProp {
	return timeline.Compound(map[string]timeline.Prop{
		"sx": timeline.Number(defaultScale, timeline.Range(0, 4)),
		"sy": timeline.Number(defaultScale, timeline.Range(0, 4)),
		"sz": timeline.Number(defaultScale, timeline.Range(0, 4)),
	})
}

func turnRange() timeline.NumberProp {
	return timeline.Number(0, timeline.Range(-1, 1))
}

// textProps are the props of every text object: a rotation, a position, and a uniform scale.
func textProps() timeline.CompoundProp {
	return timeline.Compound(map[string]timeline.Prop{
		"rotation": rotationProp(turnRange(), turnRange(), turnRange()),
		"position": positionProp(),
		"scale":    timeline.Number(1, timeline.Range(0, 2)),
	})
}

func applyRotation(node scrollstage.INode, values timeline.Values) {
	node.SetLocalRotationEuler(
		turns(values.Number("rotation.x")),
		turns(values.Number("rotation.y")),
		turns(values.Number("rotation.z")),
	)
}

func applyPosition(node scrollstage.INode, values timeline.Values) {
	node.SetLocalPosition(values.Number("position.px"), values.Number("position.py"), values.Number("position.pz"))
}

func applyScale(node scrollstage.INode, values timeline.Values) {
	node.SetLocalScale(values.Number("scale.sx"), values.Number("scale.sy"), values.Number("scale.sz"))
}

func applyUniformScale(node scrollstage.INode, values timeline.Values) {
	s := values.Number("scale")
	node.SetLocalScale(s, s, s)
}
