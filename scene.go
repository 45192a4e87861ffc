package scrollstage

// Scene represents a world of sorts, and can contain a variety of Models and Nodes under its Root. Lights are found by walking the tree.
type Scene struct {
	Name       string
	Root       INode // The root Node of the Scene; everything rendered is parented to it, directly or indirectly.
	Background Color // The color the output surface is cleared to before drawing.
}

// NewScene creates a new Scene by the name given.
func NewScene(name string) *Scene {
	return &Scene{
		Name:       name,
		Root:       NewNode("Root"),
		Background: NewColor(0, 0, 0, 1),
	}
}

// Add parents the nodes given to the Scene's Root.
func (scene *Scene) Add(nodes ...INode) {
	scene.Root.AddChildren(nodes...)
}

// Models returns every visible Model in the Scene, depth-first.
func (scene *Scene) Models() []*Model {
	models := []*Model{}
	for _, node := range scene.Root.ChildrenRecursive() {
		if model, ok := node.(*Model); ok && model.Visible() && model.Mesh != nil {
			models = append(models, model)
		}
	}
	return models
}

// Lights returns every light in the Scene that is turned on.
func (scene *Scene) Lights() []ILight {
	lights := []ILight{}
	for _, node := range scene.Root.ChildrenRecursive() {
		if light, ok := node.(ILight); ok && light.IsOn() {
			lights = append(lights, light)
		}
	}
	return lights
}

// FindModel returns the first Model with the name given, or nil if there's none.
func (scene *Scene) FindModel(modelName string) *Model {
	for _, node := range scene.Root.ChildrenRecursive() {
		if model, ok := node.(*Model); ok && model.Name() == modelName {
			return model
		}
	}
	return nil
}
