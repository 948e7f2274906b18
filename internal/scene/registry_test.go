package scene

import (
	"testing"

	"sceneview/internal/geometry"

	"github.com/go-gl/mathgl/mgl32"
)

// fakeStore reference counts handles without touching a GPU.
type fakeStore struct {
	next     Buffer
	refs     map[Buffer]int
	released []Buffer
}

func newFakeStore() *fakeStore {
	return &fakeStore{refs: make(map[Buffer]int)}
}

func (f *fakeStore) CreateBuffers(vertices []float32, indices []uint32) (Buffer, error) {
	f.next++
	f.refs[f.next] = 1
	return f.next, nil
}

func (f *fakeStore) Retain(b Buffer) { f.refs[b]++ }

func (f *fakeStore) Release(b Buffer) {
	f.refs[b]--
	if f.refs[b] <= 0 {
		delete(f.refs, b)
		f.released = append(f.released, b)
	}
}

func testMesh(t *testing.T) geometry.Mesh {
	t.Helper()
	m, err := geometry.GenerateSphere(6, 4, 1, mgl32.Vec4{1, 0, 0, 1})
	if err != nil {
		t.Fatalf("sphere: %v", err)
	}
	return m
}

func TestInsertKeepsSequencesInLockStep(t *testing.T) {
	store := newFakeStore()
	r := NewRegistry(store)
	mesh := testMesh(t)

	colors := []mgl32.Vec4{{1, 0, 0, 1}, {0, 1, 0, 1}, {0, 0, 1, 1}}
	for i, c := range colors {
		idx, err := r.Insert(mesh, c)
		if err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
		if idx != i {
			t.Fatalf("insert %d: got index %d, want %d", i, idx, i)
		}
	}
	if r.Len() != 3 {
		t.Fatalf("got %d objects, want 3", r.Len())
	}
	if len(r.objects) != len(r.colors) || len(r.colors) != len(r.positions) {
		t.Fatalf("slices out of step: %d objects, %d colors, %d positions",
			len(r.objects), len(r.colors), len(r.positions))
	}
	for i, c := range colors {
		if r.Color(i) != c {
			t.Fatalf("slot %d: color %v, want %v", i, r.Color(i), c)
		}
	}
}

func TestRemoveMiddleShiftsLaterEntries(t *testing.T) {
	store := newFakeStore()
	r := NewRegistry(store)
	mesh := testMesh(t)

	red := mgl32.Vec4{1, 0, 0, 1}
	green := mgl32.Vec4{0, 1, 0, 1}
	blue := mgl32.Vec4{0, 0, 1, 1}
	for _, c := range []mgl32.Vec4{red, green, blue} {
		if _, err := r.Insert(mesh, c); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	if err := r.Remove(1); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if r.Len() != 2 {
		t.Fatalf("got %d objects, want 2", r.Len())
	}
	if r.Color(0) != red {
		t.Fatalf("slot 0: color %v, want %v", r.Color(0), red)
	}
	// The old slot 2 is now slot 1; the old index is stale.
	if r.Color(1) != blue {
		t.Fatalf("slot 1: color %v, want %v", r.Color(1), blue)
	}
	if err := r.Remove(2); err == nil {
		t.Fatal("stale index 2: expected an error")
	}

	// Re-insertion fills the tail slot; the removed object never comes back.
	yellow := mgl32.Vec4{1, 1, 0, 1}
	if _, err := r.Insert(mesh, yellow); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if r.Color(1) == green {
		t.Fatal("stale index 1 resurrected the removed color")
	}
	if r.Color(2) != yellow {
		t.Fatalf("slot 2: color %v, want %v", r.Color(2), yellow)
	}
}

func TestRemoveOutOfRangeFails(t *testing.T) {
	store := newFakeStore()
	r := NewRegistry(store)
	mesh := testMesh(t)
	if _, err := r.Insert(mesh, DefaultColor); err != nil {
		t.Fatalf("insert: %v", err)
	}

	if err := r.Remove(-1); err == nil {
		t.Fatal("index -1: expected an error")
	}
	if err := r.Remove(1); err == nil {
		t.Fatal("index 1 of 1: expected an error")
	}
	if r.Len() != 1 {
		t.Fatalf("failed removals must not change the registry, got %d objects", r.Len())
	}
}

func TestUpdateColorOutOfRangeIsIgnored(t *testing.T) {
	store := newFakeStore()
	r := NewRegistry(store)
	mesh := testMesh(t)
	colors := []mgl32.Vec4{{1, 0, 0, 1}, {0, 1, 0, 1}, {0, 0, 1, 1}}
	for _, c := range colors {
		if _, err := r.Insert(mesh, c); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	white := mgl32.Vec4{1, 1, 1, 1}
	r.UpdateColor(999, white)
	r.UpdateColor(3, white)
	r.UpdateColor(-1, white)
	for i, c := range colors {
		if r.Color(i) != c {
			t.Fatalf("slot %d: color %v, want %v untouched", i, r.Color(i), c)
		}
	}

	r.UpdateColor(0, white)
	if r.Color(0) != white {
		t.Fatalf("slot 0: color %v, want %v", r.Color(0), white)
	}
}

func TestClearReleasesEveryBuffer(t *testing.T) {
	store := newFakeStore()
	r := NewRegistry(store)
	mesh := testMesh(t)
	for i := 0; i < 3; i++ {
		if _, err := r.Insert(mesh, DefaultColor); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	if err := r.SetGround(mesh); err != nil {
		t.Fatalf("set ground: %v", err)
	}

	r.Clear()
	if r.Len() != 0 {
		t.Fatalf("got %d objects after clear, want 0", r.Len())
	}
	if got := len(store.released); got != 3 {
		t.Fatalf("released %d buffers, want 3", got)
	}
	if r.Ground() == nil {
		t.Fatal("clear must keep the ground object")
	}

	r.Dispose()
	if len(store.refs) != 0 {
		t.Fatalf("dispose left %d live buffers", len(store.refs))
	}
}

func TestInsertCopySharesBuffers(t *testing.T) {
	store := newFakeStore()
	r := NewRegistry(store)
	mesh := testMesh(t)
	if _, err := r.Insert(mesh, mgl32.Vec4{1, 0, 0, 1}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	idx := r.InsertCopy(r.Object(0))
	if idx != 1 {
		t.Fatalf("got index %d, want 1", idx)
	}
	if r.Color(1) != DefaultColor {
		t.Fatalf("copy color %v, want the default %v", r.Color(1), DefaultColor)
	}
	buf := r.Object(0).Buffer()
	if r.Object(1).Buffer() != buf {
		t.Fatalf("copy buffer %d, want shared %d", r.Object(1).Buffer(), buf)
	}
	if store.refs[buf] != 2 {
		t.Fatalf("refcount %d, want 2", store.refs[buf])
	}

	if err := r.Remove(0); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if store.refs[buf] != 1 {
		t.Fatalf("refcount %d after removing one owner, want 1", store.refs[buf])
	}
	if err := r.Remove(0); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(store.refs) != 0 {
		t.Fatalf("buffer still live after the last owner was removed")
	}
}

func TestSetGroundReplacesPrevious(t *testing.T) {
	store := newFakeStore()
	r := NewRegistry(store)
	mesh := testMesh(t)

	if err := r.SetGround(mesh); err != nil {
		t.Fatalf("set ground: %v", err)
	}
	first := r.Ground().Buffer()
	if err := r.SetGround(mesh); err != nil {
		t.Fatalf("set ground: %v", err)
	}
	if r.Ground().Buffer() == first {
		t.Fatal("second ground kept the first buffer")
	}
	if store.refs[first] != 0 {
		t.Fatalf("first ground buffer still has %d refs", store.refs[first])
	}
}

func TestPositionDataCarriesUnitW(t *testing.T) {
	store := newFakeStore()
	r := NewRegistry(store)
	mesh := testMesh(t)
	want := mgl32.Vec3{3, -1, 7}
	if _, err := r.InsertAt(mesh, DefaultColor, want); err != nil {
		t.Fatalf("insert: %v", err)
	}

	data := r.PositionData()
	if len(data) != 1 {
		t.Fatalf("got %d positions, want 1", len(data))
	}
	if got := data[0]; got != want.Vec4(1) {
		t.Fatalf("got %v, want %v", got, want.Vec4(1))
	}

	world := r.WorldMatrix(0)
	if got := mgl32.TransformCoordinate(mgl32.Vec3{}, world); got.Sub(want).Len() > 1e-6 {
		t.Fatalf("world matrix moves the origin to %v, want %v", got, want)
	}

	r.SetPosition(0, mgl32.Vec3{})
	if got := r.Position(0); got != (mgl32.Vec3{}) {
		t.Fatalf("got %v after SetPosition, want origin", got)
	}
	r.SetPosition(9, mgl32.Vec3{1, 1, 1})
}

func TestEmptyMeshIsRejected(t *testing.T) {
	store := newFakeStore()
	r := NewRegistry(store)
	if _, err := r.Insert(geometry.Mesh{}, DefaultColor); err == nil {
		t.Fatal("empty mesh: expected an error")
	}
	if r.Len() != 0 {
		t.Fatalf("failed insert must not add a slot, got %d", r.Len())
	}
}
