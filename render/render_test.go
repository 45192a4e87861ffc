package render

import (
	"testing"

	"github.com/solarlune/scrollstage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boxScene(z float64) (*scrollstage.Scene, *scrollstage.Camera) {

	scene := scrollstage.NewScene("test")

	mesh := scrollstage.NewBox(2, 2, 2)
	mesh.Material = scrollstage.NewMaterial("Box")
	mesh.Material.Color = scrollstage.NewColor(1, 0.5, 0, 1)

	box := scrollstage.NewModel(mesh, "Box")
	box.SetLocalPosition(0, 0, z)

	camera := scrollstage.NewCamera(45, 1, 1000, 1)
	camera.SetLocalPosition(0, 0, 10)

	scene.Add(box, camera, scrollstage.NewAmbientLight("Ambient", 1, 1, 1, 1))

	return scene, camera

}

func TestRendererSurface(t *testing.T) {

	renderer := NewRenderer()
	assert.Equal(t, 1.0, renderer.PixelRatio())

	renderer.SetSize(640, 360)
	renderer.SetPixelRatio(2)

	w, h := renderer.Size()
	assert.Equal(t, 640, w)
	assert.Equal(t, 360, h)

	w, h = renderer.DeviceSize()
	assert.Equal(t, 1280, w)
	assert.Equal(t, 720, h)

}

func TestProjectCullsBackfaces(t *testing.T) {

	scene, camera := boxScene(0)
	renderer := NewRenderer()
	renderer.project(scene, camera, 100, 100)

	assert.Equal(t, 1, renderer.Info.Models)
	assert.Equal(t, 12, renderer.Info.TotalTriangles)
	// Looking straight down -Z, only the front face of the box is turned towards the camera.
	require.Equal(t, 2, renderer.Info.DrawnTriangles)

	for _, tri := range renderer.triangles {
		for v := 0; v < 3; v++ {
			assert.InDelta(t, 50, tri.screen[v].X, 15)
			assert.InDelta(t, 50, tri.screen[v].Y, 15)
			assert.InDelta(t, 1, tri.colors[v].R, 1e-5)
			assert.InDelta(t, 0.5, tri.colors[v].G, 1e-5)
			assert.InDelta(t, 0, tri.colors[v].B, 1e-5)
		}
	}

}

func TestProjectUnlitWithoutLights(t *testing.T) {

	scene, camera := boxScene(0)
	for _, light := range scene.Lights() {
		scene.Root.RemoveChildren(light)
	}

	renderer := NewRenderer()
	renderer.project(scene, camera, 100, 100)

	require.NotEmpty(t, renderer.triangles)
	c := renderer.triangles[0].colors[0]
	assert.InDelta(t, 0, c.R, 1e-5)
	assert.InDelta(t, 1, c.A, 1e-5)

}

func TestProjectRejectsBehindCamera(t *testing.T) {

	scene, camera := boxScene(20)
	renderer := NewRenderer()
	renderer.project(scene, camera, 100, 100)

	assert.Equal(t, 12, renderer.Info.TotalTriangles)
	assert.Equal(t, 0, renderer.Info.DrawnTriangles)

}

func TestProjectSortsBackToFront(t *testing.T) {

	scene, camera := boxScene(0)

	far := scrollstage.NewModel(scrollstage.NewBox(2, 2, 2), "Far")
	far.SetLocalPosition(0, 0, -20)
	scene.Add(far)

	renderer := NewRenderer()
	renderer.project(scene, camera, 100, 100)

	require.Equal(t, 4, renderer.Info.DrawnTriangles)
	for i := 1; i < len(renderer.triangles); i++ {
		assert.GreaterOrEqual(t, renderer.triangles[i-1].depth, renderer.triangles[i].depth)
	}

}
