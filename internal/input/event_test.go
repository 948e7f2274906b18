package input

import (
	"reflect"
	"testing"
)

type recordingCamera struct {
	calls []string
	args  []float32
}

func (r *recordingCamera) PanForward(direction float32) {
	r.calls = append(r.calls, "panForward")
	r.args = append(r.args, direction)
}

func (r *recordingCamera) PanLateral(direction float32) {
	r.calls = append(r.calls, "panLateral")
	r.args = append(r.args, direction)
}

func (r *recordingCamera) OrbitVertical(angle float32) {
	r.calls = append(r.calls, "orbitVertical")
	r.args = append(r.args, angle)
}

func (r *recordingCamera) OrbitHorizontal(angle float32) {
	r.calls = append(r.calls, "orbitHorizontal")
	r.args = append(r.args, angle)
}

func (r *recordingCamera) OrbitLookAt(direction float32) {
	r.calls = append(r.calls, "orbitLook")
	r.args = append(r.args, direction)
}

type recordingParams struct {
	selected []int
	adjusted []float32
}

func (r *recordingParams) Select(index int)     { r.selected = append(r.selected, index) }
func (r *recordingParams) Adjust(delta float32) { r.adjusted = append(r.adjusted, delta) }

func TestDispatchRoutesByKind(t *testing.T) {
	cam := &recordingCamera{}
	params := &recordingParams{}

	Dispatch([]Event{
		{Kind: KindPanForward, Value: 1},
		{Kind: KindPanLateral, Value: -1},
		{Kind: KindOrbitVertical, Value: 0.25},
		{Kind: KindOrbitHorizontal, Value: -0.5},
		{Kind: KindOrbitLook, Value: 1},
		{Kind: KindSelectParameter, Index: 3},
		{Kind: KindAdjustParameter, Value: -1},
	}, cam, params)

	wantCalls := []string{"panForward", "panLateral", "orbitVertical", "orbitHorizontal", "orbitLook"}
	if !reflect.DeepEqual(cam.calls, wantCalls) {
		t.Fatalf("camera calls %v, want %v", cam.calls, wantCalls)
	}
	wantArgs := []float32{1, -1, 0.25, -0.5, 1}
	if !reflect.DeepEqual(cam.args, wantArgs) {
		t.Fatalf("camera args %v, want %v", cam.args, wantArgs)
	}
	if !reflect.DeepEqual(params.selected, []int{3}) {
		t.Fatalf("selected %v, want [3]", params.selected)
	}
	if !reflect.DeepEqual(params.adjusted, []float32{-1}) {
		t.Fatalf("adjusted %v, want [-1]", params.adjusted)
	}
}

func TestDispatchPreservesOrder(t *testing.T) {
	cam := &recordingCamera{}
	Dispatch([]Event{
		{Kind: KindOrbitLook, Value: 1},
		{Kind: KindPanForward, Value: 1},
		{Kind: KindOrbitLook, Value: -1},
	}, cam, nil)

	want := []string{"orbitLook", "panForward", "orbitLook"}
	if !reflect.DeepEqual(cam.calls, want) {
		t.Fatalf("calls %v, want %v", cam.calls, want)
	}
}

func TestDispatchSkipsNilSinks(t *testing.T) {
	params := &recordingParams{}
	// A nil camera must not panic and must not eat the parameter
	// events behind it.
	Dispatch([]Event{
		{Kind: KindPanForward, Value: 1},
		{Kind: KindSelectParameter, Index: 2},
	}, nil, params)
	if !reflect.DeepEqual(params.selected, []int{2}) {
		t.Fatalf("selected %v, want [2]", params.selected)
	}

	cam := &recordingCamera{}
	Dispatch([]Event{
		{Kind: KindAdjustParameter, Value: 1},
		{Kind: KindPanLateral, Value: -1},
	}, cam, nil)
	if !reflect.DeepEqual(cam.calls, []string{"panLateral"}) {
		t.Fatalf("calls %v, want [panLateral]", cam.calls)
	}

	Dispatch([]Event{{Kind: KindPanForward, Value: 1}}, nil, nil)
}

func TestDispatchEmptyBatch(t *testing.T) {
	cam := &recordingCamera{}
	params := &recordingParams{}
	Dispatch(nil, cam, params)
	if len(cam.calls) != 0 || len(params.selected) != 0 || len(params.adjusted) != 0 {
		t.Fatal("empty batch must not call any sink")
	}
}
