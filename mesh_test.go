package scrollstage

import (
	"math"
	"testing"
)

func BenchmarkMergeVertices(b *testing.B) {

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		NewBox(1, 1, 1).MergeVertices(DefaultMergeTolerance)
	}

}

func TestBoxBounds(t *testing.T) {

	box := NewBox(7, 7, 7)

	if box.Dimensions.Width() != 7 || box.Dimensions.Height() != 7 || box.Dimensions.Depth() != 7 {
		t.Fatal("box dimensions are wrong:", box.Dimensions)
	}

	if !box.Dimensions.Center().IsZero() {
		t.Fatal("box should be centered on its origin, got", box.Dimensions.Center())
	}

	for i := 0; i < box.TriangleCount(); i++ {
		a, b, c := box.Triangle(i)
		centroid := a.Add(b).Add(c).Scale(1.0 / 3)
		if box.FaceNormal(i).Dot(centroid) <= 0 {
			t.Fatal("triangle", i, "of the box faces inwards")
		}
	}

}

func TestMeshCenter(t *testing.T) {

	mesh := NewMesh("offset")
	mesh.AddTriangles(NewVector(10, 0, 0), NewVector(14, 0, 0), NewVector(14, 2, 6))
	mesh.Center()

	center := mesh.Dimensions.Center()

	if center.Magnitude() > 1e-9 {
		t.Fatal("centered mesh's bounds should be centered on the origin, got", center)
	}

	if mesh.Dimensions.Width() != 4 || mesh.Dimensions.Height() != 2 || mesh.Dimensions.Depth() != 6 {
		t.Fatal("centering should not change the mesh's size:", mesh.Dimensions)
	}

}

func TestMergeVertices(t *testing.T) {

	box := NewBox(2, 2, 2)
	box.MergeVertices(DefaultMergeTolerance)

	if box.VertexCount() != 8 {
		t.Fatal("a merged box should have 8 vertices, got", box.VertexCount())
	}

	if box.TriangleCount() != 12 {
		t.Fatal("merging should not remove the box's triangles, got", box.TriangleCount())
	}

	if box.Normals != nil {
		t.Fatal("merging should discard normals")
	}

	seen := map[Vector]bool{}
	for _, p := range box.Positions {
		if seen[p] {
			t.Fatal("position", p, "is present twice after merging")
		}
		seen[p] = true
	}

}

func TestMergeVerticesDropsCollapsedTriangles(t *testing.T) {

	mesh := NewMesh("sliver")
	mesh.AddTriangles(
		NewVector(0, 0, 0), NewVector(1, 0, 0), NewVector(0, 1, 0),
		NewVector(0, 0, 0), NewVector(0.00001, 0, 0), NewVector(0, 1, 0),
	)

	mesh.MergeVertices(DefaultMergeTolerance)

	if mesh.TriangleCount() != 1 {
		t.Fatal("the collapsed triangle should have been dropped, triangle count is", mesh.TriangleCount())
	}

	if mesh.VertexCount() != 3 {
		t.Fatal("expected 3 vertices, got", mesh.VertexCount())
	}

}

func TestComputeVertexNormals(t *testing.T) {

	box := NewBox(2, 2, 2)
	box.MergeVertices(DefaultMergeTolerance)
	box.ComputeVertexNormals()

	if len(box.Normals) != box.VertexCount() {
		t.Fatal("there should be one normal per vertex")
	}

	for i, n := range box.Normals {

		if math.Abs(n.Magnitude()-1) > 1e-9 {
			t.Fatal("normal", i, "is not of unit length:", n)
		}

		// Smooth normals on a box's corners point away from the center.
		if n.Dot(box.Positions[i]) <= 0 {
			t.Fatal("normal", i, "points inwards:", n, "at", box.Positions[i])
		}

	}

}

func TestMeshClone(t *testing.T) {

	box := NewBox(1, 1, 1)
	clone := box.Clone()
	clone.Positions[0] = NewVector(100, 100, 100)

	if box.Positions[0].Equals(clone.Positions[0]) {
		t.Fatal("cloned mesh shares its positions with the original")
	}

}
