package scrollstage

import (
	"math"
	"testing"
)

type edgeKey [2]int

// edgeUse counts how many triangles use each undirected edge of an indexed Mesh.
func edgeUse(mesh *Mesh) map[edgeKey]int {
	edges := map[edgeKey]int{}
	for i := 0; i < len(mesh.Indices); i += 3 {
		tri := mesh.Indices[i : i+3]
		for e := 0; e < 3; e++ {
			a, b := tri[e], tri[(e+1)%3]
			if a > b {
				a, b = b, a
			}
			edges[edgeKey{a, b}]++
		}
	}
	return edges
}

func TestExtrudeSquare(t *testing.T) {

	mesh := ExtrudeShapes([]Shape{{Outer: square(0, 0, 2)}}, ExtrudeOptions{Depth: 1, Steps: 1})

	// 4 walls of 2 triangles each, and 2 caps of 2 triangles each
	if mesh.TriangleCount() != 12 {
		t.Fatal("expected 12 triangles, got", mesh.TriangleCount())
	}

	if mesh.Dimensions.Depth() != 1 || mesh.Dimensions.Width() != 2 {
		t.Fatal("unexpected dimensions", mesh.Dimensions)
	}

	mesh.MergeVertices(DefaultMergeTolerance)

	if mesh.VertexCount() != 8 {
		t.Fatal("expected 8 unique vertices, got", mesh.VertexCount())
	}

}

func TestExtrudeFacesOutwards(t *testing.T) {

	options := ExtrudeOptions{
		Depth:          2,
		Steps:          1,
		BevelEnabled:   true,
		BevelThickness: 0.5,
		BevelSize:      0.25,
		BevelSegments:  3,
	}

	// Clockwise input is fixed up
	mesh := ExtrudeShapes([]Shape{{Outer: reversed(square(0, 0, 4))}}, options)

	if math.Abs(mesh.Dimensions.Depth()-3) > 1e-9 {
		t.Fatal("bevel thickness should extend both ends, depth is", mesh.Dimensions.Depth())
	}

	if math.Abs(mesh.Dimensions.Width()-4.5) > 1e-9 {
		t.Fatal("bevel size should grow the outline, width is", mesh.Dimensions.Width())
	}

	center := mesh.Dimensions.Center()

	for i := 0; i < mesh.TriangleCount(); i++ {
		a, b, c := mesh.Triangle(i)
		centroid := a.Add(b).Add(c).Scale(1.0 / 3)
		if mesh.FaceNormal(i).Dot(centroid.Sub(center)) <= 0 {
			t.Fatal("triangle", i, "faces into the solid")
		}
	}

}

func TestExtrudeWithHoleIsClosed(t *testing.T) {

	shape := Shape{
		Outer: square(0, 0, 4),
		Holes: [][]Vector2{square(0, 0, 2)}, // Counter-clockwise hole is fixed up
	}

	mesh := ExtrudeShapes([]Shape{shape}, DefaultTextOptions().Extrude)
	mesh.MergeVertices(DefaultMergeTolerance)

	for edge, count := range edgeUse(mesh) {
		if count != 2 {
			t.Fatal("edge", edge, "is used by", count, "triangles; the solid is not closed")
		}
	}

}
