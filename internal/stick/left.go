// Package stick implements the two analog stick models: the discrete
// ramp-based LeftStick and the continuous, speed-classified RightStick.
package stick

import (
	"sync"
	"time"

	"github.com/clemenscodes/joymouse/internal/model"
)

// LeftStick is the discrete eight-way stick that ramps toward its
// maximum tilt along whichever compass direction is currently held.
type LeftStick struct {
	mu sync.Mutex

	x, y float64

	up, down, left, right model.PressState
	direction              model.Direction
	hasDirection           bool

	lastEvent time.Time
}

// NewLeftStick returns a freshly centred left stick.
func NewLeftStick() *LeftStick {
	return &LeftStick{lastEvent: time.Now()}
}

// SetUp sets the Up flag. The caller must invoke UpdateDirection
// afterward for the derived direction to reflect the new flag state.
func (s *LeftStick) SetUp(state model.PressState) { s.mu.Lock(); s.up = state; s.mu.Unlock() }

// SetDown sets the Down flag.
func (s *LeftStick) SetDown(state model.PressState) { s.mu.Lock(); s.down = state; s.mu.Unlock() }

// SetLeft sets the Left flag.
func (s *LeftStick) SetLeft(state model.PressState) { s.mu.Lock(); s.left = state; s.mu.Unlock() }

// SetRight sets the Right flag.
func (s *LeftStick) SetRight(state model.PressState) { s.mu.Lock(); s.right = state; s.mu.Unlock() }

// UpdateDirection recomputes the derived Direction from the four flags.
func (s *LeftStick) UpdateDirection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updateDirectionLocked()
}

func (s *LeftStick) updateDirectionLocked() {
	d, ok := model.DirectionFromFlags(
		s.up == model.Pressed || s.up == model.Held,
		s.down == model.Pressed || s.down == model.Held,
		s.left == model.Pressed || s.left == model.Held,
		s.right == model.Pressed || s.right == model.Held,
	)
	s.direction, s.hasDirection = d, ok
}

// Direction returns the current derived direction, if any.
func (s *LeftStick) Direction() (model.Direction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.direction, s.hasDirection
}

// Position returns the current (x,y) as a Vector.
func (s *LeftStick) Position() model.Vector {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.Vector{X: s.x, Y: s.y}
}

// Tilt adds v (already scaled by the caller) to the current position,
// clamps the resulting magnitude to MaxStickTilt, and records the tick
// as the last event.
func (s *LeftStick) Tilt(v model.Vector) model.Vector {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := model.NewVector(s.x+v.X, s.y+v.Y).ClampLen(model.MaxStickTilt)
	s.x, s.y = sum.X, sum.Y
	s.lastEvent = time.Now()
	return sum
}

// Recenter replaces the state with a freshly centred instance, keeping
// the same mutex (the container is never destroyed, per the spec's
// lifecycle note).
func (s *LeftStick) Recenter() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.x, s.y = 0, 0
	s.up, s.down, s.left, s.right = model.Released, model.Released, model.Released, model.Released
	s.hasDirection = false
	s.lastEvent = time.Now()
}
