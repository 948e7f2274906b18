package graphics

import (
	"fmt"

	"sceneview/internal/shading"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Backend drives the scene shader program. It receives the frame
// orchestrator's uniform pushes and owns the floor texture unit.
type Backend struct {
	shader       *Shader
	floorTexture uint32
}

// NewBackend compiles the scene program. floorTexture is the GL
// texture sampled when the ground index is pushed.
func NewBackend(floorTexture uint32) (*Backend, error) {
	shader, err := NewShader(sceneVertexSrc, sceneFragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("scene program: %w", err)
	}
	return &Backend{shader: shader, floorTexture: floorTexture}, nil
}

// PushControls activates the program and uploads the knob values and
// object count for the frame. Everything in an oversized batch still
// draws; only the first MaxObjects slots take part in lighting.
func (b *Backend) PushControls(snap shading.Snapshot, objectCount int) {
	if objectCount > MaxObjects {
		objectCount = MaxObjects
	}

	b.shader.Use()
	b.shader.SetInt("count_processed", int32(objectCount))
	b.shader.SetInt("ColorNumVar", int32(snap.Channel))
	b.shader.SetFloat("brightness", snap.Brightness)
	b.shader.SetFloat("reflectance", snap.Reflectance)
	b.shader.SetFloat("skybright", snap.SkyBrightness)
	b.shader.SetFloat("diffuseStr", snap.DiffuseStrength)
	b.shader.SetFloat("gamma", snap.Gamma)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, b.floorTexture)
	b.shader.SetInt("FloorTexture", 0)
}

// PushCamera uploads the view and projection matrices and the eye
// position.
func (b *Backend) PushCamera(view, proj mgl32.Mat4, eye mgl32.Vec3) {
	b.shader.SetMatrix4("View", view)
	b.shader.SetMatrix4("Projection", proj)
	b.shader.SetVector3("CamEye", eye)
}

// PushPositions uploads the batched object positions.
func (b *Backend) PushPositions(positions []mgl32.Vec4) {
	if len(positions) > MaxObjects {
		positions = positions[:MaxObjects]
	}
	b.shader.SetVector4Array("BigBalls", positions)
}

// PushColors uploads the batched object colors.
func (b *Backend) PushColors(colors []mgl32.Vec4) {
	if len(colors) > MaxObjects {
		colors = colors[:MaxObjects]
	}
	b.shader.SetVector4Array("OColors", colors)
}

// PushObject uploads one object's world matrix and slot index. The
// ground arrives under the reserved index -1.
func (b *Backend) PushObject(world mgl32.Mat4, index int) {
	b.shader.SetMatrix4("World", world)
	b.shader.SetInt("num_processed", int32(index))
}

// Dispose deletes the scene program.
func (b *Backend) Dispose() {
	b.shader.Dispose()
}
