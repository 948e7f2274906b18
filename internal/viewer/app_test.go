package viewer

import (
	"testing"

	"sceneview/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// The tests drive the input manager with raw key events; GLFW key
// constants need no window or init.

func TestCollectEventsMapsHeldPans(t *testing.T) {
	im := input.NewInputManager()
	a := &App{im: im}

	im.HandleKeyEvent(glfw.KeyUp, glfw.Press)
	im.HandleKeyEvent(glfw.KeyRight, glfw.Press)

	events := a.collectEvents()
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Kind != input.KindPanForward || events[0].Value != 1 {
		t.Fatalf("event 0 = %+v, want forward pan +1", events[0])
	}
	if events[1].Kind != input.KindPanLateral || events[1].Value != 1 {
		t.Fatalf("event 1 = %+v, want lateral pan +1", events[1])
	}
}

func TestCollectEventsOppositeDirectionsBothEmit(t *testing.T) {
	im := input.NewInputManager()
	a := &App{im: im}

	im.HandleKeyEvent(glfw.KeyUp, glfw.Press)
	im.HandleKeyEvent(glfw.KeyDown, glfw.Press)

	events := a.collectEvents()
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Value != 1 || events[1].Value != -1 {
		t.Fatalf("events = %+v, want +1 then -1", events)
	}
}

func TestCollectEventsSelectIsEdgeTriggered(t *testing.T) {
	im := input.NewInputManager()
	a := &App{im: im}

	im.HandleKeyEvent(glfw.Key3, glfw.Press)

	events := a.collectEvents()
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Kind != input.KindSelectParameter || events[0].Index != 3 {
		t.Fatalf("event = %+v, want select knob 3", events[0])
	}

	// The key is still down next frame but the edge is consumed.
	im.PostUpdate()
	if events := a.collectEvents(); len(events) != 0 {
		t.Fatalf("second frame got %d events, want 0", len(events))
	}
}

func TestCollectEventsAdjustRepeatsWhileHeld(t *testing.T) {
	im := input.NewInputManager()
	a := &App{im: im}

	im.HandleKeyEvent(glfw.KeyKPSubtract, glfw.Press)

	for frame := 0; frame < 3; frame++ {
		events := a.collectEvents()
		if len(events) != 1 {
			t.Fatalf("frame %d: got %d events, want 1", frame, len(events))
		}
		if events[0].Kind != input.KindAdjustParameter || events[0].Value != -1 {
			t.Fatalf("frame %d: event = %+v, want adjust -1", frame, events[0])
		}
		im.PostUpdate()
	}
}

func TestCollectEventsLookKeysMapToOrbitLook(t *testing.T) {
	im := input.NewInputManager()
	a := &App{im: im}

	im.HandleKeyEvent(glfw.KeyA, glfw.Press)
	events := a.collectEvents()
	if len(events) != 1 || events[0].Kind != input.KindOrbitLook || events[0].Value != 1 {
		t.Fatalf("events = %+v, want one orbit look +1", events)
	}

	im.HandleKeyEvent(glfw.KeyA, glfw.Release)
	im.HandleKeyEvent(glfw.KeyD, glfw.Press)
	events = a.collectEvents()
	if len(events) != 1 || events[0].Kind != input.KindOrbitLook || events[0].Value != -1 {
		t.Fatalf("events = %+v, want one orbit look -1", events)
	}
}
