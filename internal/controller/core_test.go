package controller

import (
	"testing"

	"github.com/clemenscodes/joymouse/internal/config"
	"github.com/clemenscodes/joymouse/internal/model"
	"github.com/stretchr/testify/require"
)

type fakeSink struct {
	events [][]model.CanonicalEvent
}

func (f *fakeSink) Emit(events []model.CanonicalEvent) error {
	f.events = append(f.events, events)
	return nil
}

func (f *fakeSink) Disconnect() error { return nil }

// lastAxis returns the last-published (x,y) pair for the given stick.
func (f *fakeSink) lastAxis(stick model.Stick) (int32, int32, bool) {
	var x, y int32
	var found bool
	for _, batch := range f.events {
		for _, ev := range batch {
			if ev.Axis == nil || ev.Axis.Stick != stick {
				continue
			}
			found = true
			if ev.Axis.Axis == model.AxisX {
				x = ev.Axis.Value
			} else {
				y = ev.Axis.Value
			}
		}
	}
	return x, y, found
}

func TestButtonEventRoundTrip(t *testing.T) {
	sink := &fakeSink{}
	c := New(config.Default(), sink, nil, nil, nil)

	c.HandleEvent(model.ButtonControllerEvent(model.South, model.Pressed))
	c.HandleEvent(model.ButtonControllerEvent(model.South, model.Released))

	require.Len(t, sink.events, 2)
	require.Equal(t, model.South, sink.events[0][0].Button.Button)
	require.Equal(t, model.Pressed, sink.events[0][0].Button.State)
	require.Equal(t, model.Released, sink.events[1][0].Button.State)
}

func TestPureNorthRampAndRelease(t *testing.T) {
	sink := &fakeSink{}
	c := New(config.Default(), sink, nil, nil, nil)

	c.HandleEvent(model.JoyStickControllerEvent(model.LeftStick, model.AxisY, model.Positive(1), model.Pressed))

	for i := 0; i < 4; i++ {
		c.LeftTick()
	}
	x, y, ok := sink.lastAxis(model.LeftStick)
	require.True(t, ok)
	require.Equal(t, int32(0), x)
	require.Equal(t, int32(-32767), y)

	c.HandleEvent(model.JoyStickControllerEvent(model.LeftStick, model.AxisY, model.Positive(1), model.Released))
	c.LeftTick()
	x, y, ok = sink.lastAxis(model.LeftStick)
	require.True(t, ok)
	require.Equal(t, int32(0), x)
	require.Equal(t, int32(0), y)
}

func TestCenterRightStickIdempotent(t *testing.T) {
	sink := &fakeSink{}
	c := New(config.Default(), sink, nil, nil, nil)

	c.CenterRightStick()
	firstBatches := len(sink.events)
	c.CenterRightStick()
	require.Equal(t, firstBatches+1, len(sink.events), "a second centre call still publishes one (0,0) batch")

	x, y, ok := sink.lastAxis(model.RightStick)
	require.True(t, ok)
	require.Equal(t, int32(0), x)
	require.Equal(t, int32(0), y)
}

func TestRightStickMicroCommitMirrorsTrace(t *testing.T) {
	sink := &fakeSink{}
	var mirrored int
	trace := commitMirrorFunc(func(model.Vector, model.Motion, float64, bool, float64, float64) { mirrored++ })
	c := New(config.Default(), sink, nil, trace, nil)

	for i := 0; i < 6; i++ {
		c.HandleEvent(model.JoyStickControllerEvent(model.RightStick, model.AxisX, model.Positive(40), model.Pressed))
	}
	require.Greater(t, mirrored, 0)
}

type commitMirrorFunc func(model.Vector, model.Motion, float64, bool, float64, float64)

func (f commitMirrorFunc) MirrorCommit(pos model.Vector, m model.Motion, angle float64, hasAngle bool, raw, norm float64) {
	f(pos, m, angle, hasAngle, raw, norm)
}
