package gltfexport

import (
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/solarlune/scrollstage"
	"github.com/solarlune/scrollstage/colors"
	"github.com/solarlune/scrollstage/typeface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMesh(t *testing.T) {

	mat := scrollstage.NewStandardMaterial("Cube", colors.Amber(), colors.Azure())

	a := scrollstage.NewBox(2, 2, 2)
	a.Material = mat
	b := scrollstage.NewBox(1, 1, 1)
	b.Material = mat

	doc := gltf.NewDocument()
	assert.Equal(t, 0, AddMesh(doc, a, "A"))
	assert.Equal(t, 1, AddMesh(doc, b, "B"))

	require.Len(t, doc.Meshes, 2)
	require.Len(t, doc.Materials, 1, "materials are shared by name")
	assert.Equal(t, []int{0, 1}, doc.Scenes[*doc.Scene].Nodes)
	assert.Equal(t, "B", doc.Nodes[1].Name)

	prim := doc.Meshes[0].Primitives[0]
	assert.Contains(t, prim.Attributes, gltf.NORMAL)
	assert.Equal(t, 36, doc.Accessors[*prim.Indices].Count)

}

func TestRoundTrip(t *testing.T) {

	face, err := typeface.Default()
	require.NoError(t, err)

	mat := scrollstage.NewStandardMaterial("Text", colors.Amber(), colors.Azure())
	builder := scrollstage.NewTextBuilder(face, mat)

	text, err := builder.Geometry("U")
	require.NoError(t, err)

	raw := scrollstage.ExtrudeShapes([]scrollstage.Shape{{Outer: []scrollstage.Vector2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}}}, scrollstage.ExtrudeOptions{Depth: 1})
	raw.Indices = nil
	raw.Name = "Raw"

	path := filepath.Join(t.TempDir(), "text.glb")
	require.NoError(t, WriteGLB(path, text, raw))

	meshes, err := Load(path)
	require.NoError(t, err)
	require.Len(t, meshes, 2)

	loaded := meshes[0]
	assert.Equal(t, "U", loaded.Name)
	assert.Equal(t, text.VertexCount(), loaded.VertexCount())
	assert.Equal(t, text.Indices, loaded.Indices)
	require.Len(t, loaded.Normals, len(text.Normals))
	assert.InDelta(t, text.Dimensions.Width(), loaded.Dimensions.Width(), 1e-4)
	assert.InDelta(t, text.Dimensions.Depth(), loaded.Dimensions.Depth(), 1e-4)

	require.NotNil(t, loaded.Material)
	assert.Equal(t, "Text", loaded.Material.Name)
	assert.InDelta(t, mat.Color.G, loaded.Material.Color.G, 1e-6)
	assert.InDelta(t, mat.Emissive.B, loaded.Material.Emissive.B, 1e-6)

	// Meshes without indices are written with sequential ones.
	assert.Equal(t, raw.VertexCount(), meshes[1].TriangleCount()*3)
	assert.Nil(t, meshes[1].Material)

}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.glb"))
	assert.Error(t, err)
}
