package router

import (
	"testing"

	"github.com/clemenscodes/joymouse/internal/bindings"
	"github.com/clemenscodes/joymouse/internal/keys"
	"github.com/clemenscodes/joymouse/internal/model"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *Router {
	t.Helper()
	reg, err := bindings.DefaultRegistry()
	require.NoError(t, err)
	return New(reg)
}

func TestRouteKeyJoystickButton(t *testing.T) {
	r := newTestRouter(t)

	ev, ok := r.RouteKey(keys.Alphabetic('W'), model.Pressed)
	require.True(t, ok)
	require.NotNil(t, ev.JoyStick)
	require.Equal(t, model.LeftStick, ev.JoyStick.Stick)
	require.Equal(t, model.AxisY, ev.JoyStick.Axis)
	require.False(t, ev.JoyStick.Polarity.IsNegative())
	require.Equal(t, model.Pressed, ev.JoyStick.State)

	ev, ok = r.RouteKey(keys.Alphabetic('A'), model.Released)
	require.True(t, ok)
	require.Equal(t, model.AxisX, ev.JoyStick.Axis)
	require.True(t, ev.JoyStick.Polarity.IsNegative())
	require.Equal(t, model.Released, ev.JoyStick.State)
}

func TestRouteKeyDiscreteButton(t *testing.T) {
	r := newTestRouter(t)

	ev, ok := r.RouteKey(keys.System(keys.SystemSpace), model.Pressed)
	require.True(t, ok)
	require.NotNil(t, ev.Button)
	require.Equal(t, model.South, ev.Button.Button)
	require.Equal(t, model.Pressed, ev.Button.State)
}

func TestRouteKeyUnbound(t *testing.T) {
	r := newTestRouter(t)
	_, ok := r.RouteKey(keys.Function(7), model.Pressed)
	require.False(t, ok)
}

func TestRouteMouseAxis(t *testing.T) {
	r := newTestRouter(t)

	ev, ok := r.RouteMouseAxis(model.AxisX, 5)
	require.True(t, ok)
	require.Equal(t, model.RightStick, ev.JoyStick.Stick)
	require.Equal(t, model.AxisX, ev.JoyStick.Axis)
	require.Equal(t, 5.0, ev.JoyStick.Polarity.Signed())

	ev, ok = r.RouteMouseAxis(model.AxisY, -3)
	require.True(t, ok)
	require.Equal(t, -3.0, ev.JoyStick.Polarity.Signed())

	_, ok = r.RouteMouseAxis(model.AxisX, 0)
	require.False(t, ok)
}
