package scrollstage

// OutlineSource turns a string into filled 2D Shapes; typeface.Face is the implementation the demos use.
type OutlineSource interface {
	// Shapes lays out the text given at the size given (in world units per em), flattening curves into curveSegments
	// line segments each. It returns an error if the text contains a character the source can't outline.
	Shapes(text string, size float64, curveSegments int) ([]Shape, error)
}

// TextOptions holds the parameters used to build solid text.
type TextOptions struct {
	Size          float64 // Size of the text, in world units per em
	CurveSegments int     // Number of line segments each glyph curve is flattened into
	Extrude       ExtrudeOptions
	// MergeTolerance is the distance under which vertices are welded together after extrusion.
	MergeTolerance float64
}

// DefaultTextOptions returns the fixed parameters used for all solid text in the demos.
func DefaultTextOptions() TextOptions {
	return TextOptions{
		Size:          6,
		CurveSegments: 12,
		Extrude: ExtrudeOptions{
			Depth:          2.4,
			Steps:          1,
			BevelEnabled:   true,
			BevelThickness: 1,
			BevelSize:      0.5,
			BevelOffset:    0,
			BevelSegments:  5,
		},
		MergeTolerance: DefaultMergeTolerance,
	}
}

// TextBuilder turns strings into smooth-shaded, centered solids. Every Model it builds shares the TextBuilder's Material, so
// recoloring the Material recolors all of them.
type TextBuilder struct {
	Source   OutlineSource
	Options  TextOptions
	Material *Material
}

// NewTextBuilder creates a TextBuilder with the default text options.
func NewTextBuilder(source OutlineSource, material *Material) *TextBuilder {
	return &TextBuilder{
		Source:   source,
		Options:  DefaultTextOptions(),
		Material: material,
	}
}

// Geometry builds the Mesh for the text given. The text is outlined and extruded, then centered on its bounding box; the extruded
// normals are thrown away, coincident vertices are merged, and normals are recomputed so the solid shades smoothly.
// Nothing is cached; calling Geometry twice with the same text builds two identical, independent Meshes.
// If any character can't be outlined, the error is returned and no Mesh is built.
func (builder *TextBuilder) Geometry(text string) (*Mesh, error) {

	shapes, err := builder.Source.Shapes(text, builder.Options.Size, builder.Options.CurveSegments)
	if err != nil {
		return nil, err
	}

	mesh := ExtrudeShapes(shapes, builder.Options.Extrude)
	mesh.Name = text
	mesh.Center()
	mesh.DeleteNormals()
	mesh.MergeVertices(builder.Options.MergeTolerance)
	mesh.ComputeVertexNormals()
	mesh.Material = builder.Material

	return mesh, nil

}

// NewModel builds a Model of the text given, named after it and using the TextBuilder's shared Material.
func (builder *TextBuilder) NewModel(text string) (*Model, error) {
	mesh, err := builder.Geometry(text)
	if err != nil {
		return nil, err
	}
	return NewModel(mesh, text), nil
}
