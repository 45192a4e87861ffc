package main

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/solarlune/scrollstage"
	"github.com/solarlune/scrollstage/gltfexport"
	"github.com/solarlune/scrollstage/typeface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBuilder(t *testing.T) *scrollstage.TextBuilder {
	face, err := typeface.Default()
	require.NoError(t, err)
	return scrollstage.NewTextBuilder(face, scrollstage.NewMaterial("Text"))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "00-U.glb", FileName(0, "U"))
	assert.Equal(t, "01-text.glb", FileName(1, "."))
	assert.Equal(t, "12-UStack.glb", FileName(12, "U.Stack"))
}

func TestExport(t *testing.T) {

	dir := filepath.Join(t.TempDir(), "meshes")

	paths, err := Export(context.Background(), newBuilder(t), dir, []string{"U", ".", "Stack"})
	require.NoError(t, err)
	require.Len(t, paths, 3)

	assert.Equal(t, filepath.Join(dir, "00-U.glb"), paths[0])
	assert.Equal(t, filepath.Join(dir, "02-Stack.glb"), paths[2])

	for _, path := range paths {
		meshes, err := gltfexport.Load(path)
		require.NoError(t, err)
		require.Len(t, meshes, 1)
		assert.NotZero(t, meshes[0].TriangleCount())
	}

}

func TestExportMissingGlyph(t *testing.T) {

	paths, err := Export(context.Background(), newBuilder(t), t.TempDir(), []string{"U", "漢"})
	assert.Nil(t, paths)
	assert.True(t, errors.Is(err, typeface.ErrGlyphNotFound))

}
