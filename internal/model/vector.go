package model

import "math"

// MaxStickTilt is the rim magnitude for any stick axis, matching the
// int16 range a virtual gamepad axis is reported in.
const MaxStickTilt = 32767.0

// MinStickTilt is the most negative representable axis value.
const MinStickTilt = -32768.0

// Vector is a 2D floating point deflection, always clamped on
// construction to [MinStickTilt, MaxStickTilt] per component.
type Vector struct {
	X, Y float64
}

func clampComponent(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if v > MaxStickTilt {
		return MaxStickTilt
	}
	if v < MinStickTilt {
		return MinStickTilt
	}
	return v
}

// NewVector builds a Vector, clamping each component independently.
func NewVector(x, y float64) Vector {
	return Vector{X: clampComponent(x), Y: clampComponent(y)}
}

// Zero is the origin vector.
func Zero() Vector { return Vector{} }

// Len returns the Euclidean magnitude.
func (v Vector) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Scale multiplies both components by a scalar and re-clamps.
func (v Vector) Scale(s float64) Vector {
	return NewVector(v.X*s, v.Y*s)
}

// Add sums two vectors and re-clamps.
func (v Vector) Add(o Vector) Vector {
	return NewVector(v.X+o.X, v.Y+o.Y)
}

// FlippedY returns the vector with its Y component negated, used when
// translating the model's "up is positive" convention into the
// "down is positive" convention a virtual gamepad axis expects.
func (v Vector) FlippedY() Vector {
	return NewVector(v.X, -v.Y)
}

// ClampLen scales the vector down, if necessary, so its length does not
// exceed max. A vector already within the limit is returned unchanged.
func (v Vector) ClampLen(max float64) Vector {
	l := v.Len()
	if l <= max || l == 0 {
		return v
	}
	factor := max / l
	return NewVector(v.X*factor, v.Y*factor)
}

// SumVectors returns the componentwise sum of vs, clamped.
func SumVectors(vs []Vector) Vector {
	var x, y float64
	for _, v := range vs {
		x += v.X
		y += v.Y
	}
	return NewVector(x, y)
}
