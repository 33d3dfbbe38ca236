package model

// Stick identifies which analog stick a joystick event targets.
type Stick int

const (
	LeftStick Stick = iota
	RightStick
)

func (s Stick) String() string {
	if s == LeftStick {
		return "left"
	}
	return "right"
}

// ButtonEvent is a discrete press-state transition on a controller
// button.
type ButtonEvent struct {
	Button ControllerButton
	State  PressState
}

// JoyStickEvent is a directional deflection input targeting one stick's
// axis.
type JoyStickEvent struct {
	Stick    Stick
	Axis     Axis
	Polarity Polarity
	State    PressState
}

// ControllerEvent is the tagged union the EventRouter produces and
// ControllerCore consumes. Exactly one of Button/JoyStick is set.
type ControllerEvent struct {
	Button   *ButtonEvent
	JoyStick *JoyStickEvent
}

// ButtonControllerEvent builds a ControllerEvent carrying a button
// transition.
func ButtonControllerEvent(b ControllerButton, s PressState) ControllerEvent {
	return ControllerEvent{Button: &ButtonEvent{Button: b, State: s}}
}

// JoyStickControllerEvent builds a ControllerEvent carrying a joystick
// deflection.
func JoyStickControllerEvent(stick Stick, axis Axis, p Polarity, s PressState) ControllerEvent {
	return ControllerEvent{JoyStick: &JoyStickEvent{Stick: stick, Axis: axis, Polarity: p, State: s}}
}

// CanonicalEvent is what a VirtualGamepadSink receives: either a button
// press-state or an absolute axis value on one stick.
type CanonicalEvent struct {
	Button *CanonicalButton
	Axis   *CanonicalAxis
}

// CanonicalButton is a button state destined for the sink.
type CanonicalButton struct {
	Button ControllerButton
	State  PressState
}

// CanonicalAxis is an absolute axis value destined for the sink, already
// scaled into the int16 range the virtual device reports.
type CanonicalAxis struct {
	Stick Stick
	Axis  Axis
	Value int32
}
