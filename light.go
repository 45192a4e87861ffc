package scrollstage

import "math"

// ILight represents an interface that is fulfilled by an object that emits light, returning the light a vertex receives given its world normal.
type ILight interface {
	INode
	// Prepare is called once per render, before any vertex is lit, so the light can cache what it needs.
	Prepare()
	// Light returns the light a vertex facing the world-space normal given receives from this light.
	Light(normal Vector) Color
	// IsOn returns if the light is on and contributing to the scene.
	IsOn() bool
}

//---------------//

// AmbientLight represents an ambient light that colors the entire Scene.
type AmbientLight struct {
	*Node
	Color Color // Color is the color of the AmbientLight.
	// Energy is the overall energy of the Light. Internally, technically there's no difference between a brighter color and a
	// higher energy, but this is here for convenience / adherance to 3D modelers.
	Energy float32
	On     bool // If the light is on and contributing to the scene.
}

// NewAmbientLight returns a new AmbientLight.
func NewAmbientLight(name string, r, g, b, energy float32) *AmbientLight {
	amb := &AmbientLight{
		Node:   NewNode(name),
		Color:  NewColor(r, g, b, 1),
		Energy: energy,
		On:     true,
	}
	amb.Node.owner = amb
	return amb
}

func (amb *AmbientLight) Prepare() {}

// Light returns the global light level for the ambient light. It doesn't use the normal argument; this is just to make it adhere to the ILight interface.
func (amb *AmbientLight) Light(normal Vector) Color {
	return amb.Color.ScaleRGB(amb.Energy)
}

// AddChildren parents the provided children Nodes to the passed parent Node, inheriting its transformations and being under it in the scenegraph
// hierarchy. If the children are already parented to other Nodes, they are unparented before doing so.
func (amb *AmbientLight) AddChildren(children ...INode) {
	amb.addChildren(amb, children...)
}

func (amb *AmbientLight) IsOn() bool {
	return amb.On
}

//---------------//

// DirectionalLight represents a directional light of infinite distance, shining down its forward (-Z) axis.
type DirectionalLight struct {
	*Node
	Color Color // Color is the color of the DirectionalLight.
	// Energy is the overall energy of the Light. Internally, technically there's no difference between a brighter color and a
	// higher energy, but this is here for convenience / adherance to 3D modelers.
	Energy float32
	On     bool // If the light is on and contributing to the scene.

	toLight Vector // cached, inverted forward vector so we don't have to calculate it for every vertex
}

// NewDirectionalLight creates a new Directional Light with the specified RGB color and energy (assuming 1.0 energy is standard / "100%" lighting).
func NewDirectionalLight(name string, r, g, b, energy float32) *DirectionalLight {
	sun := &DirectionalLight{
		Node:   NewNode(name),
		Color:  NewColor(r, g, b, 1),
		Energy: energy,
		On:     true,
	}
	sun.Node.owner = sun
	return sun
}

func (sun *DirectionalLight) Prepare() {
	sun.toLight = sun.Transform().Forward().Invert()
}

// Light returns the light for a vertex with the world normal given. Prepare() must have been called since the light last moved.
func (sun *DirectionalLight) Light(normal Vector) Color {
	diffuseFactor := float32(math.Max(normal.Dot(sun.toLight), 0.0))
	return sun.Color.ScaleRGB(diffuseFactor * sun.Energy)
}

// AddChildren parents the provided children Nodes to the passed parent Node, inheriting its transformations and being under it in the scenegraph
// hierarchy. If the children are already parented to other Nodes, they are unparented before doing so.
func (sun *DirectionalLight) AddChildren(children ...INode) {
	sun.addChildren(sun, children...)
}

func (sun *DirectionalLight) IsOn() bool {
	return sun.On
}
