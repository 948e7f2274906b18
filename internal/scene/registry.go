package scene

import (
	"fmt"

	"sceneview/internal/geometry"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultColor is assigned to entries inserted without an explicit
// color.
var DefaultColor = mgl32.Vec4{0.4, 0.7, 0.2, 1}

// Registry is the ordered scene collection. The objects, colors and
// positions slices advance in lock step; index i of each belongs to
// the same entity. The ground object lives outside the slices and is
// drawn under the reserved backend index instead of a slot.
type Registry struct {
	store     BufferStore
	objects   []*Object
	colors    []mgl32.Vec4
	positions []mgl32.Vec3
	ground    *Object
}

// NewRegistry returns an empty registry backed by store.
func NewRegistry(store BufferStore) *Registry {
	return &Registry{store: store}
}

// Insert uploads mesh and appends it at the origin. Returns the new
// entry's index.
func (r *Registry) Insert(mesh geometry.Mesh, color mgl32.Vec4) (int, error) {
	return r.InsertAt(mesh, color, mgl32.Vec3{})
}

// InsertAt uploads mesh and appends it at pos.
func (r *Registry) InsertAt(mesh geometry.Mesh, color mgl32.Vec4, pos mgl32.Vec3) (int, error) {
	obj, err := NewObject(r.store, mesh)
	if err != nil {
		return 0, err
	}
	r.objects = append(r.objects, obj)
	r.colors = append(r.colors, color)
	r.positions = append(r.positions, pos)
	return len(r.objects) - 1, nil
}

// InsertCopy appends a shared reference to an existing object with the
// default color, at the origin.
func (r *Registry) InsertCopy(obj *Object) int {
	r.objects = append(r.objects, obj.Clone())
	r.colors = append(r.colors, DefaultColor)
	r.positions = append(r.positions, mgl32.Vec3{})
	return len(r.objects) - 1
}

// Remove deletes the entry at index and releases its buffers. Entries
// above it shift down one slot, so indices cached before a removal go
// stale.
func (r *Registry) Remove(index int) error {
	if index < 0 || index >= len(r.objects) {
		return fmt.Errorf("scene: remove index %d out of range, have %d objects", index, len(r.objects))
	}
	r.objects[index].Destroy()
	r.objects = append(r.objects[:index], r.objects[index+1:]...)
	r.colors = append(r.colors[:index], r.colors[index+1:]...)
	r.positions = append(r.positions[:index], r.positions[index+1:]...)
	return nil
}

// Clear releases every entry. The ground object stays.
func (r *Registry) Clear() {
	for _, o := range r.objects {
		o.Destroy()
	}
	r.objects = r.objects[:0]
	r.colors = r.colors[:0]
	r.positions = r.positions[:0]
}

// UpdateColor replaces the color at index. Out-of-range indices are
// ignored; a color write is advisory where a removal is not.
func (r *Registry) UpdateColor(index int, color mgl32.Vec4) {
	if index < 0 || index >= len(r.colors) {
		return
	}
	r.colors[index] = color
}

// SetPosition moves the entry at index, ignored when out of range like
// UpdateColor.
func (r *Registry) SetPosition(index int, pos mgl32.Vec3) {
	if index < 0 || index >= len(r.positions) {
		return
	}
	r.positions[index] = pos
}

// SetGround uploads mesh as the ground object, releasing any previous
// one.
func (r *Registry) SetGround(mesh geometry.Mesh) error {
	obj, err := NewObject(r.store, mesh)
	if err != nil {
		return err
	}
	if r.ground != nil {
		r.ground.Destroy()
	}
	r.ground = obj
	return nil
}

// Ground returns the ground object, nil when none is set.
func (r *Registry) Ground() *Object { return r.ground }

// Len returns the number of slot entries, the ground excluded.
func (r *Registry) Len() int { return len(r.objects) }

// Object returns the entry at slot i.
func (r *Registry) Object(i int) *Object { return r.objects[i] }

// Color returns the color at slot i.
func (r *Registry) Color(i int) mgl32.Vec4 { return r.colors[i] }

// Position returns the position at slot i.
func (r *Registry) Position(i int) mgl32.Vec3 { return r.positions[i] }

// WorldMatrix returns the world transform for slot i.
func (r *Registry) WorldMatrix(i int) mgl32.Mat4 {
	p := r.positions[i]
	return mgl32.Translate3D(p.X(), p.Y(), p.Z())
}

// PositionData returns the batched positions pushed to the shading
// backend once per frame, w set to 1.
func (r *Registry) PositionData() []mgl32.Vec4 {
	out := make([]mgl32.Vec4, len(r.positions))
	for i, p := range r.positions {
		out[i] = p.Vec4(1)
	}
	return out
}

// ColorData returns a copy of the batched colors.
func (r *Registry) ColorData() []mgl32.Vec4 {
	out := make([]mgl32.Vec4, len(r.colors))
	copy(out, r.colors)
	return out
}

// Dispose releases every entry and the ground.
func (r *Registry) Dispose() {
	r.Clear()
	if r.ground != nil {
		r.ground.Destroy()
		r.ground = nil
	}
}
