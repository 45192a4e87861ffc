package scrollstage

import (
	"math"
	"sort"
)

// Vector2 is a 2D point, used for shape outlines before they're extruded into 3D.
type Vector2 struct {
	X, Y float64
}

func (v Vector2) sub(other Vector2) Vector2 {
	return Vector2{v.X - other.X, v.Y - other.Y}
}

func (v Vector2) equals(other Vector2) bool {
	return v.X == other.X && v.Y == other.Y
}

// Shape is a filled 2D region: an outer contour and any number of holes cut out of it. Outer contours are wound
// counter-clockwise and holes clockwise (y pointing up); ExtrudeShapes fixes the winding of shapes that don't follow this.
type Shape struct {
	Outer []Vector2
	Holes [][]Vector2
}

// SignedArea returns the signed area of the closed contour given; positive for counter-clockwise contours (y up).
func SignedArea(contour []Vector2) float64 {
	area := 0.0
	for i := range contour {
		a, b := contour[i], contour[(i+1)%len(contour)]
		area += a.X*b.Y - b.X*a.Y
	}
	return area / 2
}

func reversed(contour []Vector2) []Vector2 {
	out := make([]Vector2, len(contour))
	for i, p := range contour {
		out[len(contour)-1-i] = p
	}
	return out
}

// normalized returns a copy of the Shape with consecutive duplicate points removed, the outer contour counter-clockwise and holes clockwise.
func (shape Shape) normalized() Shape {

	out := Shape{Outer: cleanContour(shape.Outer)}
	if SignedArea(out.Outer) < 0 {
		out.Outer = reversed(out.Outer)
	}

	for _, hole := range shape.Holes {
		hole = cleanContour(hole)
		if len(hole) < 3 {
			continue
		}
		if SignedArea(hole) > 0 {
			hole = reversed(hole)
		}
		out.Holes = append(out.Holes, hole)
	}

	return out

}

func cleanContour(contour []Vector2) []Vector2 {
	out := make([]Vector2, 0, len(contour))
	for _, p := range contour {
		if len(out) > 0 && out[len(out)-1].equals(p) {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && out[0].equals(out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return out
}

// cross returns the z component of (a - o) x (b - o); positive when o, a, b turn counter-clockwise.
func cross(o, a, b Vector2) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// Triangulate splits the polygon described by the outer contour and holes given into triangles using ear clipping, joining each hole
// to the outer contour with a bridge edge first. The returned indices point into the outer contour followed by each hole in order, and
// each triangle is wound counter-clockwise. The outer contour should be counter-clockwise and the holes clockwise.
func Triangulate(outer []Vector2, holes [][]Vector2) []int {

	if len(outer) < 3 {
		return nil
	}

	points := append([]Vector2{}, outer...)

	polygon := make([]int, len(outer))
	for i := range polygon {
		polygon[i] = i
	}

	type holeRing struct {
		indices []int
		maxX    float64
	}

	rings := []holeRing{}

	for _, hole := range holes {
		if len(hole) < 3 {
			continue
		}
		ring := holeRing{maxX: -math.MaxFloat64}
		for _, p := range hole {
			ring.indices = append(ring.indices, len(points))
			ring.maxX = math.Max(ring.maxX, p.X)
			points = append(points, p)
		}
		rings = append(rings, ring)
	}

	// Holes furthest to the right are bridged first, so later bridges can't cross earlier ones.
	sort.SliceStable(rings, func(i, j int) bool { return rings[i].maxX > rings[j].maxX })

	for h, ring := range rings {
		remaining := [][]int{}
		for _, other := range rings[h+1:] {
			remaining = append(remaining, other.indices)
		}
		polygon = bridgeHole(points, polygon, ring.indices, remaining)
	}

	return clipEars(points, polygon)

}

// bridgeHole splices the hole into the polygon through its rightmost vertex and the closest polygon vertex that can see it.
func bridgeHole(points []Vector2, polygon []int, hole []int, otherHoles [][]int) []int {

	m := 0
	for i, idx := range hole {
		if points[idx].X > points[hole[m]].X || (points[idx].X == points[hole[m]].X && points[idx].Y < points[hole[m]].Y) {
			m = i
		}
	}
	mp := points[hole[m]]

	candidates := make([]int, len(polygon))
	for i := range candidates {
		candidates[i] = i
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		di := points[polygon[candidates[i]]].sub(mp)
		dj := points[polygon[candidates[j]]].sub(mp)
		return di.X*di.X+di.Y*di.Y < dj.X*dj.X+dj.Y*dj.Y
	})

	chosen := candidates[0]

	for _, c := range candidates {
		pp := points[polygon[c]]
		prev := points[polygon[(c-1+len(polygon))%len(polygon)]]
		next := points[polygon[(c+1)%len(polygon)]]
		if !locallyInside(prev, pp, next, mp) {
			continue
		}
		if segmentCrossesRing(points, polygon, pp, mp) || segmentCrossesRing(points, hole, pp, mp) {
			continue
		}
		blocked := false
		for _, other := range otherHoles {
			if segmentCrossesRing(points, other, pp, mp) {
				blocked = true
				break
			}
		}
		if !blocked {
			chosen = c
			break
		}
	}

	out := make([]int, 0, len(polygon)+len(hole)+2)
	out = append(out, polygon[:chosen+1]...)
	for i := 0; i <= len(hole); i++ {
		out = append(out, hole[(m+i)%len(hole)])
	}
	out = append(out, polygon[chosen])
	out = append(out, polygon[chosen+1:]...)

	return out

}

// locallyInside returns if the point target lies inside the polygon's interior angle at p, with prev and next being p's neighbors.
func locallyInside(prev, p, next, target Vector2) bool {
	if cross(prev, p, next) >= 0 {
		return cross(p, next, target) >= 0 && cross(p, target, prev) >= 0
	}
	return cross(p, next, target) >= 0 || cross(p, target, prev) >= 0
}

// segmentCrossesRing returns if the segment a-b properly crosses any edge of the ring. Edges touching a or b don't count.
func segmentCrossesRing(points []Vector2, ring []int, a, b Vector2) bool {
	for i := range ring {
		p := points[ring[i]]
		q := points[ring[(i+1)%len(ring)]]
		if p.equals(a) || p.equals(b) || q.equals(a) || q.equals(b) {
			continue
		}
		if segmentsIntersect(a, b, p, q) {
			return true
		}
	}
	return false
}

func segmentsIntersect(p1, q1, p2, q2 Vector2) bool {
	o1 := sign(cross(p1, q1, p2))
	o2 := sign(cross(p1, q1, q2))
	o3 := sign(cross(p2, q2, p1))
	o4 := sign(cross(p2, q2, q1))
	if o1 != o2 && o3 != o4 && o1 != 0 && o2 != 0 && o3 != 0 && o4 != 0 {
		return true
	}
	return (o1 == 0 && onSegment(p1, p2, q1)) || (o2 == 0 && onSegment(p1, q2, q1)) ||
		(o3 == 0 && onSegment(p2, p1, q2)) || (o4 == 0 && onSegment(p2, q1, q2))
}

// onSegment returns if q, already known to be collinear with p and r, lies between them.
func onSegment(p, q, r Vector2) bool {
	return q.X <= math.Max(p.X, r.X) && q.X >= math.Min(p.X, r.X) && q.Y <= math.Max(p.Y, r.Y) && q.Y >= math.Min(p.Y, r.Y)
}

func sign(v float64) int {
	if v > 0 {
		return 1
	} else if v < 0 {
		return -1
	}
	return 0
}

func pointInTriangle(a, b, c, p Vector2) bool {
	return cross(a, b, p) >= 0 && cross(b, c, p) >= 0 && cross(c, a, p) >= 0
}

// clipEars triangulates a single counter-clockwise ring of point indices.
func clipEars(points []Vector2, ring []int) []int {

	triangles := make([]int, 0, (len(ring)-2)*3)
	ring = append([]int{}, ring...)

	failures := 0

	for len(ring) > 3 {

		clipped := false

		for i := range ring {

			ia, ib, ic := ring[(i-1+len(ring))%len(ring)], ring[i], ring[(i+1)%len(ring)]
			a, b, c := points[ia], points[ib], points[ic]

			if cross(a, b, c) <= 0 {
				continue
			}

			if isEar(points, ring, a, b, c) {
				triangles = append(triangles, ia, ib, ic)
				ring = append(ring[:i], ring[i+1:]...)
				clipped = true
				break
			}

		}

		if clipped {
			failures = 0
			continue
		}

		// No ear; drop a degenerate vertex if there is one, otherwise force a clip so the loop always terminates.
		failures++
		removed := false
		for i := range ring {
			a, b, c := points[ring[(i-1+len(ring))%len(ring)]], points[ring[i]], points[ring[(i+1)%len(ring)]]
			if cross(a, b, c) == 0 {
				ring = append(ring[:i], ring[i+1:]...)
				removed = true
				break
			}
		}

		if !removed {
			if failures > len(ring) {
				break
			}
			triangles = append(triangles, ring[len(ring)-1], ring[0], ring[1])
			ring = ring[1:]
		}

	}

	if len(ring) == 3 && cross(points[ring[0]], points[ring[1]], points[ring[2]]) > 0 {
		triangles = append(triangles, ring[0], ring[1], ring[2])
	}

	return triangles

}

func isEar(points []Vector2, ring []int, a, b, c Vector2) bool {
	for _, idx := range ring {
		p := points[idx]
		if p.equals(a) || p.equals(b) || p.equals(c) {
			continue
		}
		if pointInTriangle(a, b, c, p) {
			return false
		}
	}
	return true
}
