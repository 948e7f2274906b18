package input

// Kind tags an Event with the operation it drives.
type Kind int

const (
	// KindPanForward moves the camera along its flattened view
	// direction; Value carries the sign.
	KindPanForward Kind = iota
	// KindPanLateral strafes the camera; Value carries the sign.
	KindPanLateral
	// KindOrbitVertical orbits the eye vertically; Value is the angle
	// in radians.
	KindOrbitVertical
	// KindOrbitHorizontal orbits the eye horizontally; Value is the
	// angle in radians.
	KindOrbitHorizontal
	// KindOrbitLook turns the look-at point around the eye; Value
	// carries the sign.
	KindOrbitLook
	// KindSelectParameter picks the active shading knob; Index carries
	// the knob number.
	KindSelectParameter
	// KindAdjustParameter nudges the active shading knob; Value
	// carries the sign.
	KindAdjustParameter
)

// Event is one input sample routed to the active controllers. Value
// carries the signed magnitude for continuous kinds, Index the knob
// number for KindSelectParameter.
type Event struct {
	Kind  Kind
	Value float32
	Index int
}

// CameraSink consumes the camera motion events.
type CameraSink interface {
	PanForward(direction float32)
	PanLateral(direction float32)
	OrbitVertical(angle float32)
	OrbitHorizontal(angle float32)
	OrbitLookAt(direction float32)
}

// ParameterSink consumes the shading parameter events.
type ParameterSink interface {
	Select(index int)
	Adjust(delta float32)
}

// Dispatch routes a batch of events to whichever sinks are present.
// A nil sink drops its events; the rest of the batch still runs.
func Dispatch(events []Event, cam CameraSink, params ParameterSink) {
	for _, ev := range events {
		switch ev.Kind {
		case KindPanForward:
			if cam != nil {
				cam.PanForward(ev.Value)
			}
		case KindPanLateral:
			if cam != nil {
				cam.PanLateral(ev.Value)
			}
		case KindOrbitVertical:
			if cam != nil {
				cam.OrbitVertical(ev.Value)
			}
		case KindOrbitHorizontal:
			if cam != nil {
				cam.OrbitHorizontal(ev.Value)
			}
		case KindOrbitLook:
			if cam != nil {
				cam.OrbitLookAt(ev.Value)
			}
		case KindSelectParameter:
			if params != nil {
				params.Select(ev.Index)
			}
		case KindAdjustParameter:
			if params != nil {
				params.Adjust(ev.Value)
			}
		}
	}
}
