package render

import (
	"sceneview/internal/scene"
	"sceneview/internal/shading"

	"github.com/go-gl/mathgl/mgl32"
)

// GroundIndex is the reserved object index the backend sees for the
// ground draw. Registry slots are zero based and never collide with
// it.
const GroundIndex = -1

// Device is the narrow drawing service the frame orchestrator uses.
// The graphics package implements it on OpenGL; tests substitute a
// recorder.
type Device interface {
	Clear(color mgl32.Vec4)
	DrawIndexed(buf scene.Buffer, indexCount int32)
	Present()
	SetViewport(width, height int)
}

// Shading receives the per-frame uniform pushes, in the order Render
// documents.
type Shading interface {
	PushControls(snap shading.Snapshot, objectCount int)
	PushCamera(view, proj mgl32.Mat4, eye mgl32.Vec3)
	PushPositions(positions []mgl32.Vec4)
	PushColors(colors []mgl32.Vec4)
	PushObject(world mgl32.Mat4, index int)
}

// Overlay draws on top of the scene, after the ground and before
// present.
type Overlay interface {
	Draw()
	Dispose()
}
