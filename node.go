package scrollstage

import "strings"

// INode represents an object that exists in 3D space and can be positioned relative to an origin point.
// By default, this origin point is {0, 0, 0} (or world origin), but Nodes can be parented
// to other Nodes to change this origin (making their movements relative and their transforms
// successive). Models, Cameras, and lights fully implement the INode interface by means of embedding *Node.
type INode interface {
	// Name returns the object's name.
	Name() string
	// Parent returns the Node's parent. If the Node has no parent, this will return nil.
	Parent() INode
	setParent(INode)
	// Unparent unparents the Node from its parent, removing it from the scenegraph.
	Unparent()
	// Children returns the Node's direct children.
	Children() []INode
	// ChildrenRecursive returns the Node's recursive children (i.e. children, grandchildren, etc).
	ChildrenRecursive() []INode
	// AddChildren parents the provided children Nodes to the calling Node. If the children are already
	// parented to other Nodes, they are unparented before doing so.
	AddChildren(...INode)
	// RemoveChildren removes the provided children from this object.
	RemoveChildren(...INode)

	dirtyTransform()

	LocalPosition() Vector
	SetLocalPosition(x, y, z float64)
	SetLocalPositionVec(position Vector)
	LocalScale() Vector
	SetLocalScale(x, y, z float64)
	LocalRotation() Vector
	SetLocalRotationEuler(x, y, z float64)
	WorldPosition() Vector

	// Transform returns a Matrix4 indicating the global position, rotation, and scale of the object, transformed by any parents'.
	// If there's no change between the previous Transform() call and this one, Transform() returns a cached version.
	Transform() Matrix4

	// Visible returns whether the Object is visible.
	Visible() bool
	// SetVisible sets the object's visibility.
	SetVisible(visible bool)

	// Get searches the node's hierarchy for a node with the path given, where names are separated by forward slashes.
	Get(path string) INode
}

// Node represents a minimal struct that fully implements the INode interface. Model, Camera, and the lights embed Node
// into their structs to automatically easily implement INode. A bare Node is used as a group.
type Node struct {
	name     string
	position Vector
	scale    Vector
	rotation Vector // Euler angles in radians, XYZ order
	visible  bool
	children []INode
	parent   INode
	owner    INode

	cachedTransform  Matrix4
	isTransformDirty bool
}

// NewNode returns a new Node.
func NewNode(name string) *Node {
	node := &Node{
		name:             name,
		scale:            NewVector(1, 1, 1),
		visible:          true,
		children:         []INode{},
		isTransformDirty: true,
		cachedTransform:  NewMatrix4(),
	}
	node.owner = node
	return node
}

// NewGroup returns a new, empty Node intended to hold other Nodes, transforming them together.
func NewGroup(name string) *Node {
	return NewNode(name)
}

// Name returns the object's name.
func (node *Node) Name() string {
	return node.name
}

// SetName sets the object's name.
func (node *Node) SetName(name string) {
	node.name = name
}

// Parent returns the Node's parent, or nil if it has none.
func (node *Node) Parent() INode {
	return node.parent
}

func (node *Node) setParent(parent INode) {
	node.parent = parent
	node.dirtyTransform()
}

// Unparent unparents the Node from its parent, removing it from the scenegraph.
func (node *Node) Unparent() {
	if node.parent != nil {
		node.parent.RemoveChildren(node.owner)
	}
}

// Children returns the Node's direct children.
func (node *Node) Children() []INode {
	return append([]INode{}, node.children...)
}

// ChildrenRecursive returns all of the Node's descendants, depth-first.
func (node *Node) ChildrenRecursive() []INode {
	out := []INode{}
	for _, child := range node.children {
		out = append(out, child)
		out = append(out, child.ChildrenRecursive()...)
	}
	return out
}

// AddChildren parents the provided children Nodes to the calling Node.
func (node *Node) AddChildren(children ...INode) {
	node.addChildren(node.owner, children...)
}

// addChildren is used so that types embedding Node parent children to themselves, rather than to the embedded *Node.
func (node *Node) addChildren(parent INode, children ...INode) {
	for _, child := range children {
		child.Unparent()
		child.setParent(parent)
		node.children = append(node.children, child)
	}
}

// RemoveChildren removes the provided children from this object.
func (node *Node) RemoveChildren(children ...INode) {
	for _, child := range children {
		for i, c := range node.children {
			if c == child {
				child.setParent(nil)
				node.children = append(node.children[:i], node.children[i+1:]...)
				break
			}
		}
	}
}

func (node *Node) dirtyTransform() {
	node.isTransformDirty = true
	for _, child := range node.children {
		child.dirtyTransform()
	}
}

// LocalPosition returns the object's local position (relative to its parent).
func (node *Node) LocalPosition() Vector {
	return node.position
}

// SetLocalPosition sets the object's local position (position relative to its parent).
func (node *Node) SetLocalPosition(x, y, z float64) {
	node.SetLocalPositionVec(NewVector(x, y, z))
}

// SetLocalPositionVec sets the object's local position using the Vector provided.
func (node *Node) SetLocalPositionVec(position Vector) {
	if node.position == position {
		return
	}
	node.position = position
	node.dirtyTransform()
}

// LocalScale returns the object's local scale.
func (node *Node) LocalScale() Vector {
	return node.scale
}

// SetLocalScale sets the object's local scale. 1, 1, 1 is unscaled.
func (node *Node) SetLocalScale(x, y, z float64) {
	scale := NewVector(x, y, z)
	if node.scale == scale {
		return
	}
	node.scale = scale
	node.dirtyTransform()
}

// LocalRotation returns the object's local rotation as euler angles in radians.
func (node *Node) LocalRotation() Vector {
	return node.rotation
}

// SetLocalRotationEuler sets the object's local rotation using euler angles in radians (XYZ order).
func (node *Node) SetLocalRotationEuler(x, y, z float64) {
	rotation := NewVector(x, y, z)
	if node.rotation == rotation {
		return
	}
	node.rotation = rotation
	node.dirtyTransform()
}

// Move moves a Node in local space by the x, y, and z values provided.
func (node *Node) Move(x, y, z float64) {
	node.SetLocalPositionVec(node.position.Add(NewVector(x, y, z)))
}

// LookAt rotates the Node so that its forward (-Z) axis points at the target position given, with up used to resolve the roll.
// The rotation is computed in world space and assumes the Node's parents are unrotated.
func (node *Node) LookAt(target, up Vector) {
	rot := NewLookAtMatrix(node.WorldPosition(), target, up).ToEuler()
	node.SetLocalRotationEuler(rot.X, rot.Y, rot.Z)
}

// LocalTransform returns the Node's transform without its parents' influence.
func (node *Node) LocalTransform() Matrix4 {
	transform := NewMatrix4Scale(node.scale.X, node.scale.Y, node.scale.Z)
	transform = transform.Mult(NewMatrix4RotateFromEuler(node.rotation))
	return transform.Mult(NewMatrix4Translate(node.position.X, node.position.Y, node.position.Z))
}

// Transform returns the Node's world transform, combining the transforms of all of its parents.
func (node *Node) Transform() Matrix4 {

	if !node.isTransformDirty {
		return node.cachedTransform
	}

	transform := node.LocalTransform()

	if node.parent != nil {
		transform = transform.Mult(node.parent.Transform())
	}

	node.cachedTransform = transform
	node.isTransformDirty = false

	return transform

}

// WorldPosition returns the node's world position, taking into account its parenting hierarchy.
func (node *Node) WorldPosition() Vector {
	return node.Transform().Position()
}

// Visible returns whether the Node is visible. A Node hidden by any parent is not visible either.
func (node *Node) Visible() bool {
	if node.parent != nil && !node.parent.Visible() {
		return false
	}
	return node.visible
}

// SetVisible sets the Node's visibility.
func (node *Node) SetVisible(visible bool) {
	node.visible = visible
}

// Get searches a node's hierarchy using a string to find a specified node. The path is in the format of names of nodes,
// separated by forward slashes ('/'), and is relative to the node you use to call Get. "Group/Text" would return a node named
// Text parented to a node named Group, which is a child of the calling node. If nothing is found, nil is returned.
func (node *Node) Get(path string) INode {

	var current INode = node.owner

	for _, part := range strings.Split(strings.Trim(path, "/"), "/") {

		var found INode

		for _, child := range current.Children() {
			if child.Name() == strings.TrimSpace(part) {
				found = child
				break
			}
		}

		if found == nil {
			return nil
		}

		current = found

	}

	return current

}

// HierarchyAsString returns a string displaying the hierarchy of this Node, and all recursive children.
func (node *Node) HierarchyAsString() string {

	var printNode func(n INode, level int) string

	printNode = func(n INode, level int) string {
		str := strings.Repeat("    ", level) + "\\-: " + n.Name() + "\n"
		for _, child := range n.Children() {
			str += printNode(child, level+1)
		}
		return str
	}

	return printNode(node.owner, 0)

}
