package scrollstage

// Material describes how the triangles of a Mesh are shaded. A single Material can be (and usually is) shared between many Meshes;
// changing it changes all of them.
type Material struct {
	Name              string // Name is the name of the Material.
	Color             Color  // The base color of the Material, lit by the Scene's lights.
	Emissive          Color  // Emissive color is added on top of the lit color, regardless of lighting.
	EmissiveIntensity float32
	BackfaceCulling   bool // If backface culling is enabled (which it is by default), faces turned away from the camera aren't rendered.
	Lit               bool // If lighting affects the Material at all; unlit Materials just show their Color.
}

// NewMaterial creates a new Material with the name given.
func NewMaterial(name string) *Material {
	return &Material{
		Name:              name,
		Color:             NewColor(1, 1, 1, 1),
		Emissive:          NewColor(0, 0, 0, 1),
		EmissiveIntensity: 1,
		BackfaceCulling:   true,
		Lit:               true,
	}
}

// NewStandardMaterial creates a new lit Material with the base and emissive colors provided.
func NewStandardMaterial(name string, color, emissive Color) *Material {
	mat := NewMaterial(name)
	mat.Color = color
	mat.Emissive = emissive
	return mat
}

// SetColor sets the base color of the Material in place, affecting every Mesh that uses it.
func (material *Material) SetColor(color Color) {
	material.Color = color
}

// Clone creates a clone of the specified Material.
func (material *Material) Clone() *Material {
	newMat := *material
	return &newMat
}

// Shade returns the final color of a vertex on this Material given the light that reaches it.
func (material *Material) Shade(light Color) Color {
	out := material.Color
	if material.Lit {
		out = out.Mult(NewColor(light.R, light.G, light.B, 1))
	}
	out = out.AddRGB(material.Emissive.ScaleRGB(material.EmissiveIntensity))
	return out.Clamped()
}
