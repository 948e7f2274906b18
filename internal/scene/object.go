package scene

import (
	"fmt"

	"sceneview/internal/geometry"
)

// Buffer is a handle into the device buffer arena. The zero value is
// never a live handle.
type Buffer uint32

// BufferStore owns GPU vertex/index buffer pairs keyed by handle and
// reference counts them. The graphics device implements it; tests use
// an in-memory fake.
type BufferStore interface {
	CreateBuffers(vertices []float32, indices []uint32) (Buffer, error)
	Retain(Buffer)
	Release(Buffer)
}

// Object is one drawable mesh upload. Clones share the underlying
// buffer pair; the arena entry is freed when the last owner calls
// Destroy.
type Object struct {
	store       BufferStore
	buffer      Buffer
	vertexCount int
	indexCount  int32
}

// NewObject uploads mesh through store and wraps the handle.
func NewObject(store BufferStore, mesh geometry.Mesh) (*Object, error) {
	if len(mesh.Vertices) == 0 || len(mesh.Indices) == 0 {
		return nil, fmt.Errorf("scene: refusing to upload an empty mesh")
	}
	buf, err := store.CreateBuffers(mesh.Interleave(), mesh.Indices)
	if err != nil {
		return nil, fmt.Errorf("scene: upload mesh: %w", err)
	}
	return &Object{
		store:       store,
		buffer:      buf,
		vertexCount: len(mesh.Vertices),
		indexCount:  int32(len(mesh.Indices)),
	}, nil
}

// Clone returns a new owner of the same buffer pair.
func (o *Object) Clone() *Object {
	o.store.Retain(o.buffer)
	clone := *o
	return &clone
}

// Destroy drops this owner's reference. Safe to call twice; the second
// call is a no-op.
func (o *Object) Destroy() {
	if o.buffer == 0 {
		return
	}
	o.store.Release(o.buffer)
	o.buffer = 0
}

// Buffer returns the arena handle, zero after Destroy.
func (o *Object) Buffer() Buffer { return o.buffer }

// IndexCount returns the number of indices to draw.
func (o *Object) IndexCount() int32 { return o.indexCount }

// VertexCount returns the number of uploaded vertices.
func (o *Object) VertexCount() int { return o.vertexCount }
