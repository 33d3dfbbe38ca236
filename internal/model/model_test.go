package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVectorClampsOnConstruction(t *testing.T) {
	v := NewVector(math.Inf(1), 0)
	require.Equal(t, MaxStickTilt, v.X)
	require.Equal(t, 0.0, v.Y)
}

func TestVectorClampLenPreservesAngle(t *testing.T) {
	v := NewVector(40000, 0).ClampLen(MaxStickTilt)
	require.InDelta(t, MaxStickTilt, v.Len(), 1.0)

	d := NewVector(30000, 30000).ClampLen(MaxStickTilt)
	require.InDelta(t, MaxStickTilt, d.Len(), 1.0)
	require.InDelta(t, math.Pi/4, math.Atan2(d.Y, d.X), 1e-9)
}

func TestDirectionFromFlagsSOCD(t *testing.T) {
	_, ok := DirectionFromFlags(true, true, false, false)
	require.False(t, ok, "opposite cardinal directions must cancel")

	d, ok := DirectionFromFlags(true, false, false, true)
	require.True(t, ok)
	require.Equal(t, NE, d)

	d, ok = DirectionFromFlags(false, false, false, false)
	require.False(t, ok)
	_ = d
}

func TestDirectionVectorTable(t *testing.T) {
	require.Equal(t, Vector{X: 0, Y: 1}, N.Vector())
	require.Equal(t, Vector{X: 1, Y: 1}, NE.Vector())
	require.Equal(t, Vector{X: -1, Y: 1}, NW.Vector())
}

func TestPressStateFromInt(t *testing.T) {
	_, err := PressStateFromInt(3)
	require.Error(t, err)
	var ips *InvalidPressStateError
	require.ErrorAs(t, err, &ips)

	s, err := PressStateFromInt(1)
	require.NoError(t, err)
	require.Equal(t, Pressed, s)
}

func TestPolarityRejectsZero(t *testing.T) {
	_, err := NewPolarity(0)
	require.Error(t, err)
}

func TestMotionOrdering(t *testing.T) {
	require.Less(t, int(Idle), int(Micro))
	require.Less(t, int(Micro), int(Macro))
	require.Less(t, int(Macro), int(Flick))
}

func TestControllerButtonAllHasTwenty(t *testing.T) {
	require.Len(t, AllButtons(), 20)
}

func TestControllerButtonRoundTrip(t *testing.T) {
	for _, b := range AllButtons() {
		parsed, err := ParseControllerButton(b.String())
		require.NoError(t, err)
		require.Equal(t, b, parsed)
	}
}
