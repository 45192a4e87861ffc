// Package render draws scrollstage Scenes and Documents onto Ebitengine images.
package render

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/scrollstage"
)

// maxBatchVertices is the most vertices a single DrawTriangles call can address with uint16 indices.
const maxBatchVertices = 65535 / 3 * 3

var defaultImg *ebiten.Image

func init() {
	defaultImg = ebiten.NewImage(4, 4)
	defaultImg.Fill(color.White)
}

// RenderInfo holds what the last call to Render drew.
type RenderInfo struct {
	Models         int
	TotalTriangles int
	DrawnTriangles int
	DrawCalls      int
}

// Renderer draws a Scene through a Camera onto a screen image. It also stands in for the output surface of a stage.Context:
// the size and pixel ratio it's given are what Layout reports back to Ebitengine.
type Renderer struct {
	width, height int
	pixelRatio    float64

	// Info is updated on every call to Render.
	Info RenderInfo

	triangles   []projectedTriangle
	vertexList  []ebiten.Vertex
	indexList   []uint16
	drawOptions ebiten.DrawTrianglesOptions
}

type projectedTriangle struct {
	screen [3]scrollstage.Vector // pixel coordinates, Z being clip depth
	colors [3]scrollstage.Color
	depth  float64
}

// NewRenderer creates a Renderer with a pixel ratio of 1 and no size; the size is set once the window lays out.
func NewRenderer() *Renderer {
	return &Renderer{
		pixelRatio: 1,
		triangles:  make([]projectedTriangle, 0, 1024),
		vertexList: make([]ebiten.Vertex, 0, maxBatchVertices),
		indexList:  make([]uint16, 0, maxBatchVertices),
	}
}

// SetSize sets the logical size of the surface, in CSS-like pixels.
func (renderer *Renderer) SetSize(w, h int) {
	renderer.width = w
	renderer.height = h
}

// SetPixelRatio sets how many device pixels make up one logical pixel.
func (renderer *Renderer) SetPixelRatio(ratio float64) {
	renderer.pixelRatio = ratio
}

// Size returns the logical size of the surface.
func (renderer *Renderer) Size() (int, int) {
	return renderer.width, renderer.height
}

// PixelRatio returns the pixel ratio last set.
func (renderer *Renderer) PixelRatio() float64 {
	return renderer.pixelRatio
}

// DeviceSize returns the size of the surface in device pixels, which is what Layout should return to Ebitengine.
func (renderer *Renderer) DeviceSize() (int, int) {
	return int(float64(renderer.width) * renderer.pixelRatio), int(float64(renderer.height) * renderer.pixelRatio)
}

// Render clears the screen to the Scene's background color and draws every visible Model in the Scene as seen through the Camera.
// Vertices are lit once each by every light in the Scene, then shaded by their Mesh's Material. Triangles are sorted back to front
// before drawing, as there's no depth buffer.
func (renderer *Renderer) Render(screen *ebiten.Image, scene *scrollstage.Scene, camera *scrollstage.Camera) {

	screen.Fill(scene.Background.ToRGBA64())

	bounds := screen.Bounds()
	renderer.project(scene, camera, float64(bounds.Dx()), float64(bounds.Dy()))
	renderer.flush(screen)

}

// project lights and projects the Scene's triangles onto a w by h pixel surface, then sorts them back to front.
func (renderer *Renderer) project(scene *scrollstage.Scene, camera *scrollstage.Camera, w, h float64) {

	renderer.Info = RenderInfo{}
	renderer.triangles = renderer.triangles[:0]

	lights := scene.Lights()
	for _, light := range lights {
		light.Prepare()
	}

	viewProjection := camera.ViewProjection()
	cameraPos := camera.WorldPosition()

	for _, model := range scene.Models() {

		renderer.Info.Models++

		mesh := model.Mesh
		material := mesh.Material
		if material == nil {
			material = scrollstage.NewMaterial("Default")
		}

		transform := model.Transform()
		normalMatrix := transform.Inverted().Transposed()
		mvp := transform.Mult(viewProjection)

		worldPositions := make([]scrollstage.Vector, len(mesh.Positions))
		colors := make([]scrollstage.Color, len(mesh.Positions))

		for i, pos := range mesh.Positions {

			worldPositions[i] = transform.MultVec(pos)

			var light scrollstage.Color
			if material.Lit && len(mesh.Normals) == len(mesh.Positions) {
				normal := normalMatrix.MultDirection(mesh.Normals[i]).Unit()
				for _, l := range lights {
					light = light.AddRGB(l.Light(normal))
				}
			}
			colors[i] = material.Shade(light)

		}

		triCount := mesh.TriangleCount()
		renderer.Info.TotalTriangles += triCount

		for t := 0; t < triCount; t++ {

			i0, i1, i2 := mesh.Indices[t*3], mesh.Indices[t*3+1], mesh.Indices[t*3+2]

			a, b, c := worldPositions[i0], worldPositions[i1], worldPositions[i2]

			if material.BackfaceCulling {
				faceNormal := b.Sub(a).Cross(c.Sub(a))
				if faceNormal.Dot(cameraPos.Sub(a)) <= 0 {
					continue
				}
			}

			tri := projectedTriangle{colors: [3]scrollstage.Color{colors[i0], colors[i1], colors[i2]}}
			visible := true

			for v, index := range [3]int{i0, i1, i2} {
				clip := mvp.MultVecW(mesh.Positions[index])
				if clip.W <= 0 {
					visible = false
					break
				}
				x, y, z := clip.X/clip.W, clip.Y/clip.W, clip.Z/clip.W
				tri.screen[v] = scrollstage.NewVector((x+1)/2*w, (1-y)/2*h, z)
				tri.depth += clip.W
			}

			if !visible {
				continue
			}

			renderer.triangles = append(renderer.triangles, tri)

		}

	}

	sort.SliceStable(renderer.triangles, func(i, j int) bool {
		return renderer.triangles[i].depth > renderer.triangles[j].depth
	})

	renderer.Info.DrawnTriangles = len(renderer.triangles)

}

// flush draws the sorted triangles in as few DrawTriangles calls as the index size allows.
func (renderer *Renderer) flush(screen *ebiten.Image) {

	renderer.vertexList = renderer.vertexList[:0]
	renderer.indexList = renderer.indexList[:0]

	draw := func() {
		if len(renderer.vertexList) == 0 {
			return
		}
		screen.DrawTriangles(renderer.vertexList, renderer.indexList, defaultImg, &renderer.drawOptions)
		renderer.Info.DrawCalls++
		renderer.vertexList = renderer.vertexList[:0]
		renderer.indexList = renderer.indexList[:0]
	}

	for _, tri := range renderer.triangles {

		if len(renderer.vertexList)+3 > maxBatchVertices {
			draw()
		}

		for v := 0; v < 3; v++ {
			c := tri.colors[v]
			renderer.indexList = append(renderer.indexList, uint16(len(renderer.vertexList)))
			renderer.vertexList = append(renderer.vertexList, ebiten.Vertex{
				DstX:   float32(tri.screen[v].X),
				DstY:   float32(tri.screen[v].Y),
				SrcX:   1,
				SrcY:   1,
				ColorR: c.R * c.A,
				ColorG: c.G * c.A,
				ColorB: c.B * c.A,
				ColorA: c.A,
			})
		}

	}

	draw()

}
