package model

import "fmt"

// PressState is the ternary state of a physical or virtual button. The
// integer encoding is part of the wire contract and must not change.
type PressState int

const (
	Released PressState = 0
	Pressed  PressState = 1
	Held     PressState = 2
)

func (s PressState) String() string {
	switch s {
	case Released:
		return "released"
	case Pressed:
		return "pressed"
	case Held:
		return "held"
	default:
		return fmt.Sprintf("press_state(%d)", int(s))
	}
}

// PressStateFromInt validates a raw integer press code, returning
// InvalidPressStateError for anything outside {0,1,2}.
func PressStateFromInt(v int) (PressState, error) {
	switch v {
	case 0, 1, 2:
		return PressState(v), nil
	default:
		return Released, &InvalidPressStateError{Value: v}
	}
}

// Axis is one of the two stick axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Polarity is a signed, non-zero deflection. Magnitude is carried as a
// float64 so the same type serves both raw integer mouse deltas and
// normalised stick values; callers that need an integer round it.
type Polarity struct {
	negative  bool
	magnitude float64
}

// NewPolarity builds a Polarity from a signed magnitude. A zero magnitude
// is invalid: neutral state is modelled as PressState Released, not as a
// Polarity value.
func NewPolarity(signed float64) (Polarity, error) {
	if signed == 0 {
		return Polarity{}, &InvalidPolarityError{Value: signed}
	}
	if signed < 0 {
		return Polarity{negative: true, magnitude: -signed}, nil
	}
	return Polarity{magnitude: signed}, nil
}

// Positive builds a positive polarity of the given magnitude; panics if
// magnitude is not strictly positive, since this constructor is only used
// with compile-time-known positive constants.
func Positive(magnitude float64) Polarity {
	if magnitude <= 0 {
		panic("model: Positive requires a strictly positive magnitude")
	}
	return Polarity{magnitude: magnitude}
}

// Negative builds a negative polarity of the given magnitude.
func Negative(magnitude float64) Polarity {
	if magnitude <= 0 {
		panic("model: Negative requires a strictly positive magnitude")
	}
	return Polarity{negative: true, magnitude: magnitude}
}

// Signed returns the signed magnitude: negative if this polarity is
// negative, positive otherwise.
func (p Polarity) Signed() float64 {
	if p.negative {
		return -p.magnitude
	}
	return p.magnitude
}

// Magnitude returns the unsigned magnitude.
func (p Polarity) Magnitude() float64 { return p.magnitude }

// IsNegative reports the sign of the polarity.
func (p Polarity) IsNegative() bool { return p.negative }
