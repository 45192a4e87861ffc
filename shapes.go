package scrollstage

// NewBox creates a new box Mesh of the specified width, height, and depth, centered on its origin. Each face has its own four
// vertices and normals, so the box shades flat.
func NewBox(width, height, depth float64) *Mesh {

	mesh := NewMesh("Box")

	w, h, d := width/2, height/2, depth/2

	type face struct {
		normal  Vector
		corners [4]Vector // counter-clockwise when seen from outside
	}

	faces := []face{
		{NewVector(1, 0, 0), [4]Vector{{w, -h, d}, {w, -h, -d}, {w, h, -d}, {w, h, d}}},
		{NewVector(-1, 0, 0), [4]Vector{{-w, -h, -d}, {-w, -h, d}, {-w, h, d}, {-w, h, -d}}},
		{NewVector(0, 1, 0), [4]Vector{{-w, h, d}, {w, h, d}, {w, h, -d}, {-w, h, -d}}},
		{NewVector(0, -1, 0), [4]Vector{{-w, -h, -d}, {w, -h, -d}, {w, -h, d}, {-w, -h, d}}},
		{NewVector(0, 0, 1), [4]Vector{{-w, -h, d}, {w, -h, d}, {w, h, d}, {-w, h, d}}},
		{NewVector(0, 0, -1), [4]Vector{{w, -h, -d}, {-w, -h, -d}, {-w, h, -d}, {w, h, -d}}},
	}

	mesh.Normals = []Vector{}

	for _, f := range faces {
		start := len(mesh.Positions)
		mesh.Positions = append(mesh.Positions, f.corners[:]...)
		mesh.Normals = append(mesh.Normals, f.normal, f.normal, f.normal, f.normal)
		mesh.Indices = append(mesh.Indices, start, start+1, start+2, start, start+2, start+3)
	}

	mesh.UpdateBounds()

	return mesh

}
