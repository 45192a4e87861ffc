package scrollstage

// Model represents a singular visual instantiation of a Mesh. A Mesh contains the vertex information (what to draw); a Model references
// the Mesh to draw it with a specific Position, Rotation, and/or Scale (where and how to draw).
type Model struct {
	*Node
	Mesh *Mesh
}

// NewModel creates a new Model (or instance) of the Mesh and Name provided.
func NewModel(mesh *Mesh, name string) *Model {
	model := &Model{
		Node: NewNode(name),
		Mesh: mesh,
	}
	model.Node.owner = model
	return model
}

// AddChildren parents the provided children Nodes to the Model.
func (model *Model) AddChildren(children ...INode) {
	model.addChildren(model, children...)
}
