package scrollstage

// Camera represents a perspective camera, rendering the Scene it's in from its position, looking down its forward (-Z) axis.
// The Camera doesn't own a render target; whatever draws its view (see the render package) reads its view and projection matrices.
type Camera struct {
	*Node

	fieldOfView float64 // Vertical field of view in degrees
	near, far   float64
	aspect      float64

	cachedProjection Matrix4
	projectionDirty  bool
}

// NewCamera creates a new perspective Camera with the vertical field of view (in degrees), near and far clipping planes,
// and aspect ratio given.
func NewCamera(fovY, near, far, aspect float64) *Camera {
	cam := &Camera{
		Node:            NewNode("Camera"),
		fieldOfView:     fovY,
		near:            near,
		far:             far,
		aspect:          aspect,
		projectionDirty: true,
	}
	cam.Node.owner = cam
	return cam
}

// SetAspect sets the width / height ratio the Camera projects onto; call this whenever the output surface is resized.
func (camera *Camera) SetAspect(aspect float64) {
	if camera.aspect == aspect {
		return
	}
	camera.aspect = aspect
	camera.projectionDirty = true
}

// AspectRatio returns the camera's aspect ratio (width / height).
func (camera *Camera) AspectRatio() float64 {
	return camera.aspect
}

// SetFieldOfView sets the vertical field of view of the camera in degrees.
func (camera *Camera) SetFieldOfView(fovY float64) {
	if camera.fieldOfView == fovY {
		return
	}
	camera.fieldOfView = fovY
	camera.projectionDirty = true
}

// FieldOfView returns the vertical field of view in degrees.
func (camera *Camera) FieldOfView() float64 {
	return camera.fieldOfView
}

// Near returns the near clipping plane.
func (camera *Camera) Near() float64 {
	return camera.near
}

// SetNear sets the near clipping plane.
func (camera *Camera) SetNear(near float64) {
	if camera.near == near {
		return
	}
	camera.near = near
	camera.projectionDirty = true
}

// Far returns the far clipping plane.
func (camera *Camera) Far() float64 {
	return camera.far
}

// SetFar sets the far clipping plane.
func (camera *Camera) SetFar(far float64) {
	if camera.far == far {
		return
	}
	camera.far = far
	camera.projectionDirty = true
}

// Projection returns the Camera's projection matrix.
func (camera *Camera) Projection() Matrix4 {

	if camera.projectionDirty {
		camera.cachedProjection = NewProjectionPerspective(camera.fieldOfView, camera.near, camera.far, camera.aspect)
		camera.projectionDirty = false
	}

	return camera.cachedProjection

}

// ViewMatrix returns the Camera's view matrix, the inverse of its world transform.
func (camera *Camera) ViewMatrix() Matrix4 {
	return camera.Transform().Inverted()
}

// ViewProjection returns the view and projection matrices combined.
func (camera *Camera) ViewProjection() Matrix4 {
	return camera.ViewMatrix().Mult(camera.Projection())
}

// WorldToClip transforms a world-space position into clip space. W is left undivided; points with W <= 0 lie behind the camera.
func (camera *Camera) WorldToClip(vert Vector) Vector4 {
	return camera.ViewProjection().MultVecW(vert)
}

// WorldToScreen transforms a world-space position into normalized device coordinates (X and Y from -1 to 1, +Y up).
// The second return value is false if the point lies behind the camera.
func (camera *Camera) WorldToScreen(vert Vector) (Vector, bool) {
	clip := camera.WorldToClip(vert)
	if clip.W <= 0 {
		return Vector{}, false
	}
	return NewVector(clip.X/clip.W, clip.Y/clip.W, clip.Z/clip.W), true
}

// AddChildren parents the provided children Nodes to the passed parent Node, inheriting its transformations and being under it in the scenegraph
// hierarchy. If the children are already parented to other Nodes, they are unparented before doing so.
func (camera *Camera) AddChildren(children ...INode) {
	camera.addChildren(camera, children...)
}
