// Package model holds the canonical controller data taxonomy: buttons,
// press states, axes, polarity, vectors, directions and motion classes.
package model

import "fmt"

// ControllerButton is the closed set of virtual-gamepad inputs. Forward,
// Backward, Starboard and Port are not physical gamepad buttons: they are
// left-stick direction inputs routed through the binding map like any
// other button.
type ControllerButton int

const (
	South ControllerButton = iota
	East
	North
	West
	Up
	Down
	Left
	Right
	Forward
	Backward
	Starboard
	Port
	L1
	R1
	L2
	R2
	L3
	R3
	Start
	Select
)

// AllButtons returns every ControllerButton in the fixed order used for
// binding-file serialization and default-map construction.
func AllButtons() []ControllerButton {
	return []ControllerButton{
		South, East, North, West, Up, Down, Left, Right,
		Forward, Backward, Starboard, Port,
		L1, R1, L2, R2, L3, R3, Start, Select,
	}
}

var buttonNames = map[ControllerButton]string{
	South: "south", East: "east", North: "north", West: "west",
	Up: "up", Down: "down", Left: "left", Right: "right",
	Forward: "forward", Backward: "backward", Starboard: "starboard", Port: "port",
	L1: "l1", R1: "r1", L2: "l2", R2: "r2", L3: "l3", R3: "r3",
	Start: "start", Select: "select",
}

func (b ControllerButton) String() string {
	if s, ok := buttonNames[b]; ok {
		return s
	}
	return fmt.Sprintf("button(%d)", int(b))
}

// IsJoystickButton reports whether the button is one of the four virtual
// left-stick direction inputs rather than a discrete gamepad button.
func (b ControllerButton) IsJoystickButton() bool {
	switch b {
	case Forward, Backward, Starboard, Port:
		return true
	default:
		return false
	}
}

// ParseControllerButton parses the lowercase snake-case form produced by
// String back into a ControllerButton.
func ParseControllerButton(s string) (ControllerButton, error) {
	for b, name := range buttonNames {
		if name == s {
			return b, nil
		}
	}
	return 0, fmt.Errorf("model: unknown controller button %q", s)
}
