// Package router implements the EventRouter: it translates raw physical
// key and mouse events into the model's ControllerEvent taxonomy by
// consulting the binding registry.
package router

import (
	"github.com/clemenscodes/joymouse/internal/bindings"
	"github.com/clemenscodes/joymouse/internal/keys"
	"github.com/clemenscodes/joymouse/internal/model"
)

// Router translates raw physical events into ControllerEvents using a
// fixed binding registry. It holds no mutable state of its own.
type Router struct {
	registry *bindings.Registry
}

// New builds a Router over the given registry.
func New(registry *bindings.Registry) *Router {
	return &Router{registry: registry}
}

// joystickAxis reports the (axis, positive?) pair a left-stick direction
// button maps to. Only called for buttons where IsJoystickButton is true.
func joystickAxis(b model.ControllerButton) (model.Axis, bool) {
	switch b {
	case model.Forward:
		return model.AxisY, true
	case model.Backward:
		return model.AxisY, false
	case model.Starboard:
		return model.AxisX, true
	case model.Port:
		return model.AxisX, false
	default:
		return model.AxisX, true
	}
}

// RouteKey translates a physical key transition into a ControllerEvent.
// It reports false if the key is unbound, which the caller should treat
// as "drop the event".
func (r *Router) RouteKey(k keys.Key, state model.PressState) (model.ControllerEvent, bool) {
	button, ok := r.registry.ButtonFor(k)
	if !ok {
		return model.ControllerEvent{}, false
	}

	if !button.IsJoystickButton() {
		return model.ButtonControllerEvent(button, state), true
	}

	axis, positive := joystickAxis(button)
	var polarity model.Polarity
	if positive {
		polarity = model.Positive(1)
	} else {
		polarity = model.Negative(1)
	}
	return model.JoyStickControllerEvent(model.LeftStick, axis, polarity, state), true
}

// RouteMouseAxis translates a raw relative mouse delta on one axis into a
// right-stick ControllerEvent. It reports false for a zero delta, which
// carries no directional information.
func (r *Router) RouteMouseAxis(axis model.Axis, delta int32) (model.ControllerEvent, bool) {
	if delta == 0 {
		return model.ControllerEvent{}, false
	}
	polarity, err := model.NewPolarity(float64(delta))
	if err != nil {
		return model.ControllerEvent{}, false
	}
	return model.JoyStickControllerEvent(model.RightStick, axis, polarity, model.Pressed), true
}
