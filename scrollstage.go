// Package scrollstage is a small, headless 3D scene graph for scripted, scroll-driven scenes: Nodes, Models, Meshes, lights,
// and a perspective Camera, along with the geometry helpers needed to turn text into extruded solids. Drawing is left to the
// render package, which draws a Scene through Ebitengine.
package scrollstage
