// Package controller implements ControllerCore and its two tick drivers:
// the component that owns both stick models, dispatches routed events
// to them, and publishes the result to a virtual gamepad sink.
package controller

import (
	"sync"

	"github.com/clemenscodes/joymouse/internal/config"
	"github.com/clemenscodes/joymouse/internal/ioevent"
	"github.com/clemenscodes/joymouse/internal/model"
	"github.com/clemenscodes/joymouse/internal/stick"
)

// EventMirror receives every routed ControllerEvent, for the structured
// event log. It must not block: a slow or failing mirror must swallow
// its own errors rather than propagate them onto the hot path.
type EventMirror interface {
	MirrorEvent(model.ControllerEvent)
}

// CommitMirror receives one record per right-stick commit, for the
// optional trace recorder. Same best-effort contract as EventMirror.
type CommitMirror interface {
	MirrorCommit(pos model.Vector, motion model.Motion, angleDeg float64, hasAngle bool, rawSpeed, normSpeed float64)
}

// Logger is the minimal diagnostic-logging surface Core needs to report
// a persistently failing sink without blocking on a full logger type.
type Logger interface {
	Error(msg string)
}

// Core owns both stick models behind one outer mutex, mirrors every
// event to best-effort side channels, and publishes state to the
// virtual gamepad sink. It is safe for concurrent use by the ingestion
// goroutine and both tick drivers.
type Core struct {
	mu sync.Mutex

	settings config.Settings
	left     *stick.LeftStick
	right    *stick.RightStick
	sink     ioevent.Sink

	events EventMirror
	trace  CommitMirror
	log    Logger
}

// New builds a Core with freshly centred sticks. events, trace and log
// may be nil; Core degrades to silently skipping the corresponding side
// channel.
func New(settings config.Settings, sink ioevent.Sink, events EventMirror, trace CommitMirror, log Logger) *Core {
	return &Core{
		settings: settings,
		left:     stick.NewLeftStick(),
		right:    stick.NewRightStick(settings),
		sink:     sink,
		events:   events,
		trace:    trace,
		log:      log,
	}
}

// HandleEvent dispatches a routed event to its button or joystick
// handler, holding the outer lock for the update and its emit so the
// two are atomic with respect to other events and the tick drivers.
func (c *Core) HandleEvent(ev model.ControllerEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.events != nil {
		c.events.MirrorEvent(ev)
	}

	switch {
	case ev.Button != nil:
		c.emit([]model.CanonicalEvent{{
			Button: &model.CanonicalButton{Button: ev.Button.Button, State: ev.Button.State},
		}})
	case ev.JoyStick != nil:
		c.handleJoystickLocked(*ev.JoyStick)
	}
}

func (c *Core) handleJoystickLocked(je model.JoyStickEvent) {
	switch je.Stick {
	case model.LeftStick:
		c.handleLeftLocked(je)
	case model.RightStick:
		c.handleRightLocked(je)
	}
}

func (c *Core) handleLeftLocked(je model.JoyStickEvent) {
	negative := je.Polarity.IsNegative()
	switch je.Axis {
	case model.AxisY:
		if negative {
			c.left.SetDown(je.State)
		} else {
			c.left.SetUp(je.State)
		}
	case model.AxisX:
		if negative {
			c.left.SetLeft(je.State)
		} else {
			c.left.SetRight(je.State)
		}
	}
	c.left.UpdateDirection()

	dir, ok := c.left.Direction()
	v := model.Zero()
	if ok {
		v = dir.Vector().Scale(c.settings.LeftStickSensitivity)
	}
	pos := c.left.Tilt(v)
	c.publishLeftLocked(pos, dir, ok)
}

func (c *Core) handleRightLocked(je model.JoyStickEvent) {
	delta := je.Polarity.Signed()
	var v model.Vector
	switch je.Axis {
	case model.AxisX:
		v = model.Vector{X: delta}
	case model.AxisY:
		v = model.Vector{Y: delta}
	}

	before := c.right.TickStart()
	pos := c.right.Micro(v)
	committed := c.right.TickStart() != before
	if !committed {
		return
	}

	c.publishRightLocked(pos)
	if c.trace != nil {
		angle, hasAngle := c.right.Angle()
		raw, norm := c.right.LastSpeeds()
		c.trace.MirrorCommit(pos, c.right.Motion(), angle, hasAngle, raw, norm)
	}
}

// publishLeftLocked applies the y-flip and pure-North doubling rule
// before publishing the left stick's position.
func (c *Core) publishLeftLocked(pos model.Vector, dir model.Direction, hasDir bool) {
	out := pos.FlippedY()
	if hasDir && dir == model.N && c.settings.PureNorthBoost {
		out = model.Vector{X: 0, Y: 2 * out.Y}.ClampLen(model.MaxStickTilt)
	}
	c.publishAxesLocked(model.LeftStick, out)
}

func (c *Core) publishRightLocked(pos model.Vector) {
	c.publishAxesLocked(model.RightStick, pos.FlippedY())
}

func (c *Core) publishAxesLocked(which model.Stick, v model.Vector) {
	c.emit([]model.CanonicalEvent{
		{Axis: &model.CanonicalAxis{Stick: which, Axis: model.AxisX, Value: int32(v.X)}},
		{Axis: &model.CanonicalAxis{Stick: which, Axis: model.AxisY, Value: int32(v.Y)}},
	})
}

// CenterLeftStick recentres the left stick and publishes (0,0).
func (c *Core) CenterLeftStick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.left.Recenter()
	c.publishAxesLocked(model.LeftStick, model.Zero())
}

// CenterRightStick recentres the right stick and publishes (0,0).
func (c *Core) CenterRightStick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.right.Recenter()
	c.publishAxesLocked(model.RightStick, model.Zero())
}

// LeftDirection reports the left stick's current derived direction,
// used by the right-stick tick driver's idle-timeout boost.
func (c *Core) LeftDirection() (model.Direction, bool) {
	return c.left.Direction()
}

// RightHandleIdle recentres the right stick if it has been idle long
// enough, publishing (0,0) if it did.
func (c *Core) RightHandleIdle(leftDirection bool) {
	if c.right.HandleIdle(leftDirection) {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.publishAxesLocked(model.RightStick, model.Zero())
	}
}

// LeftTick runs one iteration of the left-stick ramp: if a direction is
// held, it tilts by the sensitivity-scaled unit vector and publishes;
// otherwise it centres.
func (c *Core) LeftTick() {
	c.mu.Lock()
	defer c.mu.Unlock()

	dir, ok := c.left.Direction()
	if !ok {
		c.left.Recenter()
		c.publishAxesLocked(model.LeftStick, model.Zero())
		return
	}
	v := dir.Vector().Scale(c.settings.LeftStickSensitivity)
	pos := c.left.Tilt(v)
	c.publishLeftLocked(pos, dir, ok)
}

// Disconnect tells the sink to release the virtual device. Called once
// during shutdown, after all three goroutines have stopped touching it.
func (c *Core) Disconnect() error {
	return c.sink.Disconnect()
}

// emit publishes events to the sink, retrying once on failure before
// giving up and logging; the caller always observes the attempt as
// having happened, per the spec's best-effort sink policy.
func (c *Core) emit(events []model.CanonicalEvent) {
	if err := c.sink.Emit(events); err != nil {
		if err2 := c.sink.Emit(events); err2 != nil && c.log != nil {
			c.log.Error("controller: sink emit failed: " + err2.Error())
		}
	}
}
