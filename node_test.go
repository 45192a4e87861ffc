package scrollstage

import (
	"math"
	"testing"
)

func TestNodeParenting(t *testing.T) {

	root := NewNode("Root")
	group := NewGroup("Text")
	model := NewModel(NewBox(1, 1, 1), "U")

	root.AddChildren(group)
	group.AddChildren(model)

	if model.Parent() != INode(group) {
		t.Fatal("model should be parented to the group")
	}

	if root.Get("Text/U") != INode(model) {
		t.Fatal("Get() did not find the model by path")
	}

	if root.Get("Text/Nope") != nil {
		t.Fatal("Get() should return nil for missing paths")
	}

	if len(root.ChildrenRecursive()) != 2 {
		t.Fatal("expected two recursive children, got", len(root.ChildrenRecursive()))
	}

	// Reparenting unparents first.
	root.AddChildren(model)

	if len(group.Children()) != 0 || model.Parent() != INode(root) {
		t.Fatal("reparenting should remove the model from its old parent")
	}

}

func TestNodeTransformInheritance(t *testing.T) {

	group := NewGroup("Group")
	model := NewModel(NewBox(1, 1, 1), "Cube")
	group.AddChildren(model)

	model.SetLocalPosition(1, 0, 0)
	group.SetLocalPosition(0, 5, 0)

	if model.WorldPosition().Sub(NewVector(1, 5, 0)).Magnitude() > 1e-9 {
		t.Fatal("expected {1, 5, 0}, got", model.WorldPosition())
	}

	// A parent's transform change must invalidate its children's cached transforms.
	group.SetLocalRotationEuler(0, 0, math.Pi/2)

	if model.WorldPosition().Sub(NewVector(0, 6, 0)).Magnitude() > 1e-9 {
		t.Fatal("expected {0, 6, 0} after rotating the parent, got", model.WorldPosition())
	}

	group.SetLocalScale(2, 2, 2)

	if model.WorldPosition().Sub(NewVector(0, 7, 0)).Magnitude() > 1e-9 {
		t.Fatal("expected {0, 7, 0} after scaling the parent, got", model.WorldPosition())
	}

}

func TestNodeVisibility(t *testing.T) {

	group := NewGroup("Group")
	model := NewModel(NewBox(1, 1, 1), "Cube")
	group.AddChildren(model)

	group.SetVisible(false)

	if model.Visible() {
		t.Fatal("a child of a hidden node should be hidden")
	}

}

func TestNodeLookAt(t *testing.T) {

	light := NewDirectionalLight("Sun", 1, 1, 1, 1)
	light.SetLocalPosition(5, 5, 5)
	light.LookAt(NewVectorZero(), WorldUp)

	forward := light.Transform().Forward()
	expected := NewVector(-1, -1, -1).Unit()

	if forward.Sub(expected).Magnitude() > 1e-9 {
		t.Fatal("light should face the origin, but faces", forward)
	}

	light.Prepare()
	lit := light.Light(NewVector(1, 1, 1).Unit())
	if math.Abs(float64(lit.R)-1) > 1e-6 {
		t.Fatal("a surface facing the light should be fully lit, got", lit)
	}

	unlit := light.Light(NewVector(-1, -1, -1).Unit())
	if unlit.R != 0 {
		t.Fatal("a surface facing away from the light should be unlit, got", unlit)
	}

}

func TestSceneLights(t *testing.T) {

	scene := NewScene("Test")
	amb := NewAmbientLight("Ambient", 1, 1, 1, 0.5)
	sun := NewDirectionalLight("Sun", 1, 1, 1, 1)
	sun.On = false
	scene.Add(amb, sun, NewModel(NewBox(1, 1, 1), "Cube"))

	lights := scene.Lights()

	if len(lights) != 1 || lights[0] != ILight(amb) {
		t.Fatal("only the ambient light is on; got", lights)
	}

	if len(scene.Models()) != 1 || scene.FindModel("Cube") == nil {
		t.Fatal("the cube model should be found in the scene")
	}

}
