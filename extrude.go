package scrollstage

import "math"

// ExtrudeOptions controls how ExtrudeShapes turns flat Shapes into solids.
type ExtrudeOptions struct {
	Depth          float64 // Depth of the straight walls, along +Z
	Steps          int     // Number of wall subdivisions along the depth; values below 1 are treated as 1
	BevelEnabled   bool
	BevelThickness float64 // How far the bevel extends past the walls along Z, on each side
	BevelSize      float64 // How far the bevel pushes the outline outwards
	BevelOffset    float64 // Outline offset at the start of the bevel
	BevelSegments  int     // Number of layers each bevel is built of
}

type extrudeLayer struct {
	z, offset float64
}

func (opt ExtrudeOptions) layers() []extrudeLayer {

	steps := opt.Steps
	if steps < 1 {
		steps = 1
	}

	layers := []extrudeLayer{}

	segments := opt.BevelSegments
	if !opt.BevelEnabled {
		segments = 0
	}

	wallOffset := 0.0
	if segments > 0 {
		wallOffset = opt.BevelSize + opt.BevelOffset
	}

	for b := 0; b < segments; b++ {
		t := float64(b) / float64(segments) * math.Pi / 2
		layers = append(layers, extrudeLayer{
			z:      -opt.BevelThickness * math.Cos(t),
			offset: opt.BevelSize*math.Sin(t) + opt.BevelOffset,
		})
	}

	for s := 0; s <= steps; s++ {
		layers = append(layers, extrudeLayer{z: opt.Depth * float64(s) / float64(steps), offset: wallOffset})
	}

	for b := segments - 1; b >= 0; b-- {
		t := float64(b) / float64(segments) * math.Pi / 2
		layers = append(layers, extrudeLayer{
			z:      opt.Depth + opt.BevelThickness*math.Cos(t),
			offset: opt.BevelSize*math.Sin(t) + opt.BevelOffset,
		})
	}

	return layers

}

// bevelDirections returns, for each point of the closed contour, the direction the point moves in when the outline is grown.
// For counter-clockwise contours this points outwards; for clockwise holes it points into the hole.
func bevelDirections(contour []Vector2) []Vector2 {

	dirs := make([]Vector2, len(contour))

	edgeNormal := func(a, b Vector2) Vector2 {
		d := b.sub(a)
		l := math.Hypot(d.X, d.Y)
		if l == 0 {
			return Vector2{}
		}
		return Vector2{d.Y / l, -d.X / l}
	}

	for i := range contour {

		prev := contour[(i-1+len(contour))%len(contour)]
		next := contour[(i+1)%len(contour)]

		n1 := edgeNormal(prev, contour[i])
		n2 := edgeNormal(contour[i], next)

		avg := Vector2{n1.X + n2.X, n1.Y + n2.Y}
		l := math.Hypot(avg.X, avg.Y)
		if l == 0 {
			dirs[i] = n2
			continue
		}
		avg = Vector2{avg.X / l, avg.Y / l}

		// Miter length, clamped so sharp corners don't spike.
		scale := 1 / math.Max(avg.X*n1.X+avg.Y*n1.Y, 0.5)
		dirs[i] = Vector2{avg.X * scale, avg.Y * scale}

	}

	return dirs

}

// ExtrudeShapes builds a closed solid out of the Shapes given: the outline is swept along +Z for the Depth given, optionally with a
// rounded bevel on both ends, and capped on the front and back with triangulated faces. The returned Mesh is non-indexed (every
// triangle has its own three vertices) and has no normals; each triangle is wound so its face normal points out of the solid.
func ExtrudeShapes(shapes []Shape, options ExtrudeOptions) *Mesh {

	mesh := NewMesh("Extrusion")
	layers := options.layers()
	positions := []Vector{}

	at := func(p, dir Vector2, layer extrudeLayer) Vector {
		return NewVector(p.X+dir.X*layer.offset, p.Y+dir.Y*layer.offset, layer.z)
	}

	for _, shape := range shapes {

		shape = shape.normalized()
		if len(shape.Outer) < 3 {
			continue
		}

		contours := append([][]Vector2{shape.Outer}, shape.Holes...)

		// Walls
		for _, contour := range contours {

			dirs := bevelDirections(contour)

			for l := 0; l < len(layers)-1; l++ {
				for i := range contour {
					j := (i + 1) % len(contour)
					a := at(contour[i], dirs[i], layers[l])
					b := at(contour[j], dirs[j], layers[l])
					c := at(contour[j], dirs[j], layers[l+1])
					d := at(contour[i], dirs[i], layers[l+1])
					positions = append(positions, a, b, c, a, c, d)
				}
			}

		}

		// Caps
		flat := []Vector2{}
		capDirs := []Vector2{}
		for _, contour := range contours {
			flat = append(flat, contour...)
			capDirs = append(capDirs, bevelDirections(contour)...)
		}

		front, back := layers[0], layers[len(layers)-1]
		indices := Triangulate(shape.Outer, shape.Holes)

		for t := 0; t < len(indices); t += 3 {
			a, b, c := indices[t], indices[t+1], indices[t+2]
			positions = append(positions,
				at(flat[a], capDirs[a], front), at(flat[c], capDirs[c], front), at(flat[b], capDirs[b], front),
			)
			positions = append(positions,
				at(flat[a], capDirs[a], back), at(flat[b], capDirs[b], back), at(flat[c], capDirs[c], back),
			)
		}

	}

	if len(positions) > 0 {
		mesh.AddTriangles(positions...)
	}
	mesh.UpdateBounds()

	return mesh

}
