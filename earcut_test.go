package scrollstage

import (
	"math"
	"testing"
)

func square(cx, cy, size float64) []Vector2 {
	h := size / 2
	return []Vector2{{cx - h, cy - h}, {cx + h, cy - h}, {cx + h, cy + h}, {cx - h, cy + h}}
}

func triangulatedArea(points []Vector2, indices []int) (float64, bool) {
	area := 0.0
	for i := 0; i < len(indices); i += 3 {
		a := cross(points[indices[i]], points[indices[i+1]], points[indices[i+2]]) / 2
		if a < 0 {
			return 0, false
		}
		area += a
	}
	return area, true
}

func TestTriangulateConvex(t *testing.T) {

	outer := square(0, 0, 2)
	indices := Triangulate(outer, nil)

	if len(indices) != 6 {
		t.Fatal("a square should be split into two triangles, got", len(indices)/3)
	}

	area, ccw := triangulatedArea(outer, indices)
	if !ccw {
		t.Fatal("triangles should be wound counter-clockwise")
	}
	if math.Abs(area-4) > 1e-9 {
		t.Fatal("triangles should cover the square's area, got", area)
	}

}

func TestTriangulateConcave(t *testing.T) {

	// An L shape
	outer := []Vector2{{0, 0}, {2, 0}, {2, 1}, {1, 1}, {1, 2}, {0, 2}}
	indices := Triangulate(outer, nil)

	if len(indices)/3 != 4 {
		t.Fatal("expected 4 triangles, got", len(indices)/3)
	}

	area, ccw := triangulatedArea(outer, indices)
	if !ccw || math.Abs(area-3) > 1e-9 {
		t.Fatal("L shape triangulated wrongly; area", area, "ccw", ccw)
	}

}

func TestTriangulateWithHoles(t *testing.T) {

	outer := square(0, 0, 10)
	holes := [][]Vector2{
		reversed(square(-2.5, 0, 2)),
		reversed(square(2.5, 0, 2)),
	}

	indices := Triangulate(outer, holes)

	points := append([]Vector2{}, outer...)
	for _, h := range holes {
		points = append(points, h...)
	}

	// At most n + 2h - 2 triangles for a polygon with n vertices and h holes; collinear bridge vertices may be skipped
	if len(indices)/3 > len(points)+2*len(holes)-2 {
		t.Fatal("unexpected triangle count", len(indices)/3)
	}

	area, ccw := triangulatedArea(points, indices)
	if !ccw {
		t.Fatal("triangles should be wound counter-clockwise")
	}
	if math.Abs(area-(100-4-4)) > 1e-9 {
		t.Fatal("triangles should cover the area outside of the holes, got", area)
	}

}

func TestSignedArea(t *testing.T) {

	if SignedArea(square(0, 0, 2)) != 4 {
		t.Fatal("counter-clockwise square should have a positive area")
	}

	if SignedArea(reversed(square(0, 0, 2))) != -4 {
		t.Fatal("clockwise square should have a negative area")
	}

}
