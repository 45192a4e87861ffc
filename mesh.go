package scrollstage

import "math"

// Dimensions represents the minimum and maximum spatial dimensions of a Mesh.
type Dimensions struct {
	Min, Max Vector
}

// Center returns the center point inbetween the two corners of the dimension set.
func (dim Dimensions) Center() Vector {
	return dim.Min.Add(dim.Max).Scale(0.5)
}

// Width returns the size of the Dimensions on the X axis.
func (dim Dimensions) Width() float64 {
	return dim.Max.X - dim.Min.X
}

// Height returns the size of the Dimensions on the Y axis.
func (dim Dimensions) Height() float64 {
	return dim.Max.Y - dim.Min.Y
}

// Depth returns the size of the Dimensions on the Z axis.
func (dim Dimensions) Depth() float64 {
	return dim.Max.Z - dim.Min.Z
}

// MaxSpan returns the maximum span out of width, height, and depth.
func (dim Dimensions) MaxSpan() float64 {
	return math.Max(math.Max(dim.Width(), dim.Height()), dim.Depth())
}

// Mesh represents a collection of triangles. Positions (and Normals, if present) are per-vertex; every three entries in Indices
// form a triangle, wound counter-clockwise when seen from the side the triangle faces.
type Mesh struct {
	Name       string
	Positions  []Vector
	Normals    []Vector // Per-vertex normals; nil if the Mesh has none
	Indices    []int
	Material   *Material // What Material to use when rendering the triangles that define this Mesh
	Dimensions Dimensions
}

// NewMesh creates a new, empty Mesh with the name given.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:      name,
		Positions: []Vector{},
		Indices:   []int{},
	}
}

// AddTriangles appends non-indexed triangles to the Mesh; every three positions form a triangle. The Mesh's normals are dropped,
// as they would no longer cover every vertex.
func (mesh *Mesh) AddTriangles(positions ...Vector) {

	if len(positions)%3 != 0 {
		panic("Error: AddTriangles() has not been given a correct number of vertices to constitute triangles (it needs to be divisible by 3).")
	}

	start := len(mesh.Positions)
	mesh.Positions = append(mesh.Positions, positions...)
	for i := range positions {
		mesh.Indices = append(mesh.Indices, start+i)
	}

	mesh.Normals = nil

}

// VertexCount returns the number of vertices in the Mesh.
func (mesh *Mesh) VertexCount() int {
	return len(mesh.Positions)
}

// TriangleCount returns the number of triangles in the Mesh.
func (mesh *Mesh) TriangleCount() int {
	return len(mesh.Indices) / 3
}

// Triangle returns the three positions of the triangle with the index given.
func (mesh *Mesh) Triangle(index int) (Vector, Vector, Vector) {
	return mesh.Positions[mesh.Indices[index*3]], mesh.Positions[mesh.Indices[index*3+1]], mesh.Positions[mesh.Indices[index*3+2]]
}

// Clone returns a deep copy of the Mesh. The Material is shared, not copied.
func (mesh *Mesh) Clone() *Mesh {
	newMesh := &Mesh{
		Name:       mesh.Name,
		Positions:  append([]Vector{}, mesh.Positions...),
		Indices:    append([]int{}, mesh.Indices...),
		Material:   mesh.Material,
		Dimensions: mesh.Dimensions,
	}
	if mesh.Normals != nil {
		newMesh.Normals = append([]Vector{}, mesh.Normals...)
	}
	return newMesh
}

// UpdateBounds updates the mesh's dimensions; call this after manually changing vertex positions.
func (mesh *Mesh) UpdateBounds() {

	if len(mesh.Positions) == 0 {
		mesh.Dimensions = Dimensions{}
		return
	}

	mesh.Dimensions.Min = NewVector(math.MaxFloat64, math.MaxFloat64, math.MaxFloat64)
	mesh.Dimensions.Max = NewVector(-math.MaxFloat64, -math.MaxFloat64, -math.MaxFloat64)

	for _, p := range mesh.Positions {
		mesh.Dimensions.Min.X = math.Min(mesh.Dimensions.Min.X, p.X)
		mesh.Dimensions.Min.Y = math.Min(mesh.Dimensions.Min.Y, p.Y)
		mesh.Dimensions.Min.Z = math.Min(mesh.Dimensions.Min.Z, p.Z)
		mesh.Dimensions.Max.X = math.Max(mesh.Dimensions.Max.X, p.X)
		mesh.Dimensions.Max.Y = math.Max(mesh.Dimensions.Max.Y, p.Y)
		mesh.Dimensions.Max.Z = math.Max(mesh.Dimensions.Max.Z, p.Z)
	}

}

// ApplyMatrix applies the Matrix provided to all vertices (and normals) of the Mesh.
func (mesh *Mesh) ApplyMatrix(matrix Matrix4) {

	for i, p := range mesh.Positions {
		mesh.Positions[i] = matrix.MultVec(p)
	}

	if mesh.Normals != nil {
		normalMatrix := matrix.Inverted().Transposed()
		for i, n := range mesh.Normals {
			mesh.Normals[i] = normalMatrix.MultDirection(n).Unit()
		}
	}

	mesh.UpdateBounds()

}

// Center translates the Mesh so that the center of its bounding box lies on its local origin.
func (mesh *Mesh) Center() {
	mesh.UpdateBounds()
	c := mesh.Dimensions.Center()
	mesh.ApplyMatrix(NewMatrix4Translate(-c.X, -c.Y, -c.Z))
}

// DeleteNormals discards the Mesh's per-vertex normals.
func (mesh *Mesh) DeleteNormals() {
	mesh.Normals = nil
}

// DefaultMergeTolerance is the distance under which MergeVertices considers two vertex positions identical.
const DefaultMergeTolerance = 1e-4

type mergeKey [3]int64

// MergeVertices collapses vertices that share a position (within the tolerance given) into a single vertex, rewriting the
// Mesh's Indices so that triangles meeting at a seam share their corners. Triangles that collapse to a line or a point are removed.
// Any existing normals are discarded, since merged vertices can no longer hold diverging normals; call ComputeVertexNormals afterwards.
func (mesh *Mesh) MergeVertices(tolerance float64) {

	if tolerance <= 0 {
		tolerance = DefaultMergeTolerance
	}

	lookup := map[mergeKey]int{}
	remap := make([]int, len(mesh.Positions))
	merged := make([]Vector, 0, len(mesh.Positions))

	for i, p := range mesh.Positions {

		key := mergeKey{
			int64(math.Round(p.X / tolerance)),
			int64(math.Round(p.Y / tolerance)),
			int64(math.Round(p.Z / tolerance)),
		}

		if existing, ok := lookup[key]; ok {
			remap[i] = existing
			continue
		}

		lookup[key] = len(merged)
		remap[i] = len(merged)
		merged = append(merged, p)

	}

	indices := make([]int, 0, len(mesh.Indices))

	for i := 0; i < len(mesh.Indices); i += 3 {
		a, b, c := remap[mesh.Indices[i]], remap[mesh.Indices[i+1]], remap[mesh.Indices[i+2]]
		if a == b || b == c || a == c {
			continue
		}
		indices = append(indices, a, b, c)
	}

	mesh.Positions = merged
	mesh.Indices = indices
	mesh.Normals = nil

	mesh.UpdateBounds()

}

// ComputeVertexNormals recalculates per-vertex normals from the Mesh's triangles. Each vertex receives the sum of the (area-weighted)
// normals of every triangle that uses it, normalized; on a Mesh with shared vertices this produces smooth shading.
func (mesh *Mesh) ComputeVertexNormals() {

	normals := make([]Vector, len(mesh.Positions))

	for i := 0; i < len(mesh.Indices); i += 3 {

		a, b, c := mesh.Indices[i], mesh.Indices[i+1], mesh.Indices[i+2]

		faceNormal := mesh.Positions[b].Sub(mesh.Positions[a]).Cross(mesh.Positions[c].Sub(mesh.Positions[a]))

		normals[a] = normals[a].Add(faceNormal)
		normals[b] = normals[b].Add(faceNormal)
		normals[c] = normals[c].Add(faceNormal)

	}

	for i := range normals {
		normals[i] = normals[i].Unit()
	}

	mesh.Normals = normals

}

// FaceNormal returns the unit normal of the triangle with the index given, according to its winding order.
func (mesh *Mesh) FaceNormal(index int) Vector {
	a, b, c := mesh.Triangle(index)
	return b.Sub(a).Cross(c.Sub(a)).Unit()
}
