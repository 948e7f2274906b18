package graphics

import (
	"fmt"

	"sceneview/internal/geometry"
	"sceneview/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// bufferSet is one arena entry: a vertex array with its two buffers
// and the number of owners holding the handle.
type bufferSet struct {
	vao  uint32
	vbo  uint32
	ebo  uint32
	refs int
}

// Device owns the GL state shared by every draw: the reference counted
// buffer arena and the window to present into. It serves as both the
// scene buffer store and the frame orchestrator's device.
type Device struct {
	window  *glfw.Window
	buffers map[scene.Buffer]*bufferSet
	nextID  scene.Buffer
}

// NewDevice initializes OpenGL for the given window.
func NewDevice(window *glfw.Window) (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initialize OpenGL: %w", err)
	}

	// Configure OpenGL
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	return &Device{
		window:  window,
		buffers: make(map[scene.Buffer]*bufferSet),
	}, nil
}

// CreateBuffers uploads an interleaved vertex stream with its indices
// into a fresh vertex array and returns the handle with one reference.
func (d *Device) CreateBuffers(vertices []float32, indices []uint32) (scene.Buffer, error) {
	if len(vertices) == 0 || len(indices) == 0 {
		return 0, fmt.Errorf("graphics: refusing an empty buffer upload")
	}

	set := &bufferSet{refs: 1}
	gl.GenVertexArrays(1, &set.vao)
	gl.GenBuffers(1, &set.vbo)
	gl.GenBuffers(1, &set.ebo)

	gl.BindVertexArray(set.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, set.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*geometry.FloatSize, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, set.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	// Position, normal, color, matching the geometry stride
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, geometry.Stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, geometry.Stride, gl.PtrOffset(3*geometry.FloatSize))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, geometry.Stride, gl.PtrOffset(6*geometry.FloatSize))

	gl.BindVertexArray(0)

	d.nextID++
	d.buffers[d.nextID] = set
	return d.nextID, nil
}

// Retain adds an owner to the handle.
func (d *Device) Retain(buf scene.Buffer) {
	if set, ok := d.buffers[buf]; ok {
		set.refs++
	}
}

// Release drops an owner. The GL objects are deleted once the last
// owner is gone.
func (d *Device) Release(buf scene.Buffer) {
	set, ok := d.buffers[buf]
	if !ok {
		return
	}
	set.refs--
	if set.refs > 0 {
		return
	}
	gl.DeleteBuffers(1, &set.vbo)
	gl.DeleteBuffers(1, &set.ebo)
	gl.DeleteVertexArrays(1, &set.vao)
	delete(d.buffers, buf)
}

// Clear fills the back buffer with color and resets the depth buffer.
func (d *Device) Clear(color mgl32.Vec4) {
	gl.ClearColor(color.X(), color.Y(), color.Z(), color.W())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawIndexed draws indexCount indices from the handle's vertex
// array. Unknown handles are skipped.
func (d *Device) DrawIndexed(buf scene.Buffer, indexCount int32) {
	set, ok := d.buffers[buf]
	if !ok {
		return
	}
	gl.BindVertexArray(set.vao)
	gl.DrawElements(gl.TRIANGLES, indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

// Present swaps the back buffer onto the window.
func (d *Device) Present() {
	d.window.SwapBuffers()
}

// SetViewport resizes the GL viewport.
func (d *Device) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// LiveBuffers returns the number of arena entries still held.
func (d *Device) LiveBuffers() int {
	return len(d.buffers)
}

// Dispose deletes every remaining arena entry regardless of owners.
func (d *Device) Dispose() {
	for handle, set := range d.buffers {
		gl.DeleteBuffers(1, &set.vbo)
		gl.DeleteBuffers(1, &set.ebo)
		gl.DeleteVertexArrays(1, &set.vao)
		delete(d.buffers, handle)
	}
}
