// Package gltfexport writes scrollstage meshes to glTF documents, so built geometry (like text solids) can be inspected in
// other tools, and reads them back.
package gltfexport

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/solarlune/scrollstage"
)

// AddMesh adds the mesh given to the document as a new node of its default scene, with its material (shared by name with
// any already in the document), returning the node's index. Non-indexed meshes are written with sequential indices.
func AddMesh(doc *gltf.Document, mesh *scrollstage.Mesh, name string) int {

	positions := make([][3]float32, len(mesh.Positions))
	for i, p := range mesh.Positions {
		positions[i] = [3]float32{float32(p.X), float32(p.Y), float32(p.Z)}
	}

	indices := make([]uint32, 0, len(mesh.Positions))
	if len(mesh.Indices) > 0 {
		for _, index := range mesh.Indices {
			indices = append(indices, uint32(index))
		}
	} else {
		for i := range mesh.Positions {
			indices = append(indices, uint32(i))
		}
	}

	attributes := gltf.PrimitiveAttributes{
		gltf.POSITION: modeler.WritePosition(doc, positions),
	}

	if len(mesh.Normals) == len(mesh.Positions) && len(mesh.Normals) > 0 {
		normals := make([][3]float32, len(mesh.Normals))
		for i, n := range mesh.Normals {
			normals[i] = [3]float32{float32(n.X), float32(n.Y), float32(n.Z)}
		}
		attributes[gltf.NORMAL] = modeler.WriteNormal(doc, normals)
	}

	primitive := &gltf.Primitive{
		Indices:    gltf.Index(modeler.WriteIndices(doc, indices)),
		Attributes: attributes,
	}

	if mesh.Material != nil {
		primitive.Material = gltf.Index(addMaterial(doc, mesh.Material))
	}

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name:       name,
		Primitives: []*gltf.Primitive{primitive},
	})

	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name: name,
		Mesh: gltf.Index(len(doc.Meshes) - 1),
	})

	node := len(doc.Nodes) - 1

	if doc.Scene == nil || len(doc.Scenes) == 0 {
		doc.Scenes = append(doc.Scenes, &gltf.Scene{Name: "Root Scene"})
		doc.Scene = gltf.Index(len(doc.Scenes) - 1)
	}

	scene := doc.Scenes[*doc.Scene]
	scene.Nodes = append(scene.Nodes, node)

	return node

}

func addMaterial(doc *gltf.Document, material *scrollstage.Material) int {

	for i, existing := range doc.Materials {
		if existing.Name == material.Name {
			return i
		}
	}

	c := material.Color
	e := material.Emissive.ScaleRGB(material.EmissiveIntensity).Clamped()

	doc.Materials = append(doc.Materials, &gltf.Material{
		Name:        material.Name,
		DoubleSided: !material.BackfaceCulling,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float64{float64(c.R), float64(c.G), float64(c.B), float64(c.A)},
		},
		EmissiveFactor: [3]float64{float64(e.R), float64(e.G), float64(e.B)},
	})

	return len(doc.Materials) - 1

}

// Encode creates a new document holding the meshes given, each named after its Mesh.
func Encode(meshes ...*scrollstage.Mesh) *gltf.Document {
	doc := gltf.NewDocument()
	for _, mesh := range meshes {
		AddMesh(doc, mesh, mesh.Name)
	}
	return doc
}

// WriteGLB writes the meshes given to a binary glTF file at the path given.
func WriteGLB(path string, meshes ...*scrollstage.Mesh) error {
	if err := gltf.SaveBinary(Encode(meshes...), path); err != nil {
		return fmt.Errorf("gltfexport: writing %s: %w", path, err)
	}
	return nil
}

// Decode reads every mesh of the document back, one Mesh per primitive. Materials are recreated from their base and
// emissive colors.
func Decode(doc *gltf.Document) ([]*scrollstage.Mesh, error) {

	materials := make([]*scrollstage.Material, len(doc.Materials))

	for i, gltfMat := range doc.Materials {
		mat := scrollstage.NewMaterial(gltfMat.Name)
		mat.BackfaceCulling = !gltfMat.DoubleSided
		if pbr := gltfMat.PBRMetallicRoughness; pbr != nil && pbr.BaseColorFactor != nil {
			color := pbr.BaseColorFactor
			mat.Color = scrollstage.NewColor(float32(color[0]), float32(color[1]), float32(color[2]), float32(color[3]))
		}
		e := gltfMat.EmissiveFactor
		mat.Emissive = scrollstage.NewColor(float32(e[0]), float32(e[1]), float32(e[2]), 1)
		materials[i] = mat
	}

	meshes := []*scrollstage.Mesh{}

	for _, gltfMesh := range doc.Meshes {

		for _, prim := range gltfMesh.Primitives {

			mesh := scrollstage.NewMesh(gltfMesh.Name)

			posAccessor, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				return nil, fmt.Errorf("gltfexport: mesh %q has no positions", gltfMesh.Name)
			}

			positions, err := modeler.ReadPosition(doc, doc.Accessors[posAccessor], nil)
			if err != nil {
				return nil, fmt.Errorf("gltfexport: mesh %q: %w", gltfMesh.Name, err)
			}

			for _, p := range positions {
				mesh.Positions = append(mesh.Positions, scrollstage.NewVector(float64(p[0]), float64(p[1]), float64(p[2])))
			}

			if normalAccessor, exists := prim.Attributes[gltf.NORMAL]; exists {

				normals, err := modeler.ReadNormal(doc, doc.Accessors[normalAccessor], nil)
				if err != nil {
					return nil, fmt.Errorf("gltfexport: mesh %q: %w", gltfMesh.Name, err)
				}

				mesh.Normals = make([]scrollstage.Vector, 0, len(normals))
				for _, n := range normals {
					mesh.Normals = append(mesh.Normals, scrollstage.NewVector(float64(n[0]), float64(n[1]), float64(n[2])))
				}

			}

			if prim.Indices != nil {

				indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
				if err != nil {
					return nil, fmt.Errorf("gltfexport: mesh %q: %w", gltfMesh.Name, err)
				}

				mesh.Indices = make([]int, len(indices))
				for i, j := range indices {
					mesh.Indices[i] = int(j)
				}

			} else {

				mesh.Indices = make([]int, len(mesh.Positions))
				for i := range mesh.Indices {
					mesh.Indices[i] = i
				}

			}

			if prim.Material != nil && *prim.Material < len(materials) {
				mesh.Material = materials[*prim.Material]
			}

			mesh.UpdateBounds()
			meshes = append(meshes, mesh)

		}

	}

	return meshes, nil

}

// Load reads the meshes of the glTF or GLB file at the path given.
func Load(path string) ([]*scrollstage.Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltfexport: opening %s: %w", path, err)
	}
	return Decode(doc)
}
