// Package stage builds the two demo pages: their scene graphs, the page documents they sit behind, the bindings from
// animation values onto scene nodes and page elements, and the scripts that start playback once the animation project is
// ready.
package stage

import (
	"math"

	"github.com/solarlune/scrollstage"
	"github.com/solarlune/scrollstage/colors"
	"github.com/solarlune/scrollstage/page"
	"github.com/solarlune/scrollstage/timeline"
	"github.com/solarlune/scrollstage/trigger"
)

// Camera defaults shared by both pages.
const (
	FieldOfView = 45
	Near        = 1
	Far         = 1000
)

// MaxPixelRatio caps the device scale factor the output surface renders at.
const MaxPixelRatio = 2

// Surface is whatever the scene is drawn onto; render.Renderer implements it.
type Surface interface {
	SetSize(w, h int)
	SetPixelRatio(ratio float64)
}

// Context holds the single instance of everything a page draws and animates.
type Context struct {
	Scene    *scrollstage.Scene
	Camera   *scrollstage.Camera
	Surface  Surface
	Document *page.Document
}

// NewContext creates a Context with an empty Scene and a Camera sized to the Document's viewport.
func NewContext(surface Surface, doc *page.Document) *Context {

	scene := scrollstage.NewScene("Stage")
	scene.Background = colors.Stage()

	w, h := doc.Viewport()
	aspect := 1.0
	if h > 0 {
		aspect = w / h
	}

	camera := scrollstage.NewCamera(FieldOfView, Near, Far, aspect)
	scene.Add(camera)

	return &Context{
		Scene:    scene,
		Camera:   camera,
		Surface:  surface,
		Document: doc,
	}

}

// OnResize adapts everything to a new viewport size: the surface is resized and its pixel ratio set to the device scale
// (capped at MaxPixelRatio), the camera's aspect ratio becomes w/h, and the Document is laid out again.
func (ctx *Context) OnResize(w, h int, deviceScale float64) {

	if w <= 0 || h <= 0 {
		return
	}

	if ctx.Surface != nil {
		ctx.Surface.SetSize(w, h)
		ctx.Surface.SetPixelRatio(math.Min(deviceScale, MaxPixelRatio))
	}

	ctx.Camera.SetAspect(float64(w) / float64(h))

	if vw, vh := ctx.Document.Viewport(); vw != float64(w) || vh != float64(h) {
		ctx.Document.Resize(float64(w), float64(h))
	}

}

// Stage is a built page: its Context, the animation Project driving it, and the script run every tick.
type Stage struct {
	*Context
	Project *timeline.Project
	Script  *Script

	// Controller is the scroll trigger, if the page has one.
	Controller *trigger.Controller
	// ClickTrigger is the scroll button's trigger, if the page has one.
	ClickTrigger *trigger.ClickTrigger
}

// Update advances the page by dt seconds: the Project ticks (becoming ready on the first call), the Script runs, and the
// Document delivers any intersection changes.
func (stage *Stage) Update(dt float64) {
	stage.Project.Update(dt)
	stage.Script.Update()
	stage.Document.Update()
}

// turns converts a rotation in turns to radians.
func turns(t float64) float64 {
	return t * 2 * math.Pi
}

// addLights adds the two lights both pages use: a soft white ambient light and a strong light shining on the origin from
// the upper left, in the color given.
func addLights(ctx *Context, key scrollstage.Color) {

	ambient := scrollstage.NewAmbientLight("Ambient", 1, 1, 1, 0.4)

	sun := scrollstage.NewDirectionalLight("Key", key.R, key.G, key.B, 0.8)
	sun.SetLocalPosition(-20, 40, 10)
	sun.LookAt(scrollstage.NewVectorZero(), scrollstage.NewVector(0, 1, 0))

	ctx.Scene.Add(ambient, sun)

}
