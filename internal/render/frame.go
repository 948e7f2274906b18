package render

import (
	"sceneview/internal/camera"
	"sceneview/internal/profiling"
	"sceneview/internal/scene"
	"sceneview/internal/shading"

	"github.com/go-gl/mathgl/mgl32"
)

// ClearColor fills the back buffer at the start of every pass.
var ClearColor = mgl32.Vec4{0, 0.4, 0.9, 1}

// groundWorld drops the ground one unit below the origin.
var groundWorld = mgl32.Translate3D(0, -1, 0)

// Frame orchestrates one rendering pass over the scene. The pass order
// is fixed: clear, shading controls, camera matrices, batched position
// and color arrays, the per-object draws in registry order, the ground
// under its reserved index, overlays, present. Backends may cache
// between stages and rely on that order.
type Frame struct {
	device   Device
	backend  Shading
	camera   *camera.Camera
	registry *scene.Registry
	params   *shading.Params
	overlays []Overlay
}

// NewFrame wires the orchestrator to its collaborators. Any of them
// may still be nil; Render stays a no-op until all are bound.
func NewFrame(device Device, backend Shading, cam *camera.Camera, reg *scene.Registry, params *shading.Params) *Frame {
	return &Frame{
		device:   device,
		backend:  backend,
		camera:   cam,
		registry: reg,
		params:   params,
	}
}

// AddOverlay appends a post-scene draw hook. Overlays run in the order
// they were added.
func (f *Frame) AddOverlay(o Overlay) {
	f.overlays = append(f.overlays, o)
}

// Ready reports whether every collaborator is bound.
func (f *Frame) Ready() bool {
	return f.device != nil && f.backend != nil && f.camera != nil &&
		f.registry != nil && f.params != nil
}

// Render executes one pass. An unbound orchestrator draws nothing and
// returns; a half-wired viewer shows a silent window, not a crash.
func (f *Frame) Render() {
	if !f.Ready() {
		return
	}
	defer profiling.Track("render.Frame")()

	f.device.Clear(ClearColor)

	f.backend.PushControls(f.params.Snapshot(), f.registry.Len())
	f.backend.PushCamera(f.camera.View(), f.camera.Projection(), f.camera.Eye())
	f.backend.PushPositions(f.registry.PositionData())
	f.backend.PushColors(f.registry.ColorData())

	for i := 0; i < f.registry.Len(); i++ {
		obj := f.registry.Object(i)
		f.backend.PushObject(f.registry.WorldMatrix(i), i)
		f.device.DrawIndexed(obj.Buffer(), obj.IndexCount())
	}

	if ground := f.registry.Ground(); ground != nil {
		f.backend.PushObject(groundWorld, GroundIndex)
		f.device.DrawIndexed(ground.Buffer(), ground.IndexCount())
	}

	for _, o := range f.overlays {
		o.Draw()
	}

	f.device.Present()
}

// SetViewport forwards a window resize to the device.
func (f *Frame) SetViewport(width, height int) {
	if f.device != nil {
		f.device.SetViewport(width, height)
	}
}

// Dispose tears down the overlays in reverse order.
func (f *Frame) Dispose() {
	for i := len(f.overlays) - 1; i >= 0; i-- {
		f.overlays[i].Dispose()
	}
	f.overlays = nil
}
