package stick

import (
	"math"
	"testing"
	"time"

	"github.com/clemenscodes/joymouse/internal/config"
	"github.com/clemenscodes/joymouse/internal/model"
	"github.com/stretchr/testify/require"
)

func TestLeftStickTiltRampAndClamp(t *testing.T) {
	s := NewLeftStick()
	sensitivity := config.Default().LeftStickSensitivity

	s.SetUp(model.Pressed)
	s.UpdateDirection()
	dir, ok := s.Direction()
	require.True(t, ok)
	require.Equal(t, model.N, dir)

	var last model.Vector
	for i := 0; i < 4; i++ {
		last = s.Tilt(dir.Vector().Scale(sensitivity))
	}
	require.InDelta(t, model.MaxStickTilt, last.Len(), 1.0)
	require.LessOrEqual(t, last.X*last.X+last.Y*last.Y, model.MaxStickTilt*model.MaxStickTilt+1e-6)
}

func TestLeftStickWDHeldClampsToFortyFiveDegrees(t *testing.T) {
	s := NewLeftStick()
	sensitivity := config.Default().LeftStickSensitivity

	s.SetUp(model.Pressed)
	s.UpdateDirection()
	s.SetRight(model.Pressed)
	s.UpdateDirection()
	dir, ok := s.Direction()
	require.True(t, ok)
	require.Equal(t, model.NE, dir)

	var pos model.Vector
	for i := 0; i < 3; i++ {
		pos = s.Tilt(dir.Vector().Scale(sensitivity))
	}
	require.InDelta(t, 23170, pos.X, 2)
	require.InDelta(t, 23170, pos.Y, 2)
}

func TestLeftStickSOCDRecentres(t *testing.T) {
	s := NewLeftStick()
	s.SetUp(model.Pressed)
	s.SetDown(model.Pressed)
	s.UpdateDirection()
	_, ok := s.Direction()
	require.False(t, ok, "opposite directions held together must cancel")
}

func TestLeftStickRecenter(t *testing.T) {
	s := NewLeftStick()
	s.SetUp(model.Pressed)
	s.UpdateDirection()
	s.Tilt(model.N.Vector().Scale(10000))
	s.Recenter()
	pos := s.Position()
	require.Equal(t, model.Vector{}, pos)
	_, ok := s.Direction()
	require.False(t, ok)
}

func TestRightStickSlowDriftApproachesMinTilt(t *testing.T) {
	cfg := config.Default()
	s := NewRightStick(cfg)

	var last model.Vector
	for i := 0; i < 2; i++ {
		time.Sleep(cfg.Tickrate())
		last = s.Micro(model.Vector{X: 1, Y: 0})
	}
	require.InDelta(t, cfg.MinTiltRange, last.X, 1500)
	require.InDelta(t, 0, last.Y, 1)
	require.Equal(t, model.Micro, s.Motion())
}

func TestRightStickSingleDeltaDoesNotCommit(t *testing.T) {
	cfg := config.Default()
	cfg.TickrateMS = 10000
	s := NewRightStick(cfg)

	before := s.Position()
	after := s.Micro(model.Vector{X: 1, Y: 0})
	require.Equal(t, before, after, "a single pending delta must not trigger a commit")
}

func TestRightStickFlickAsymptotesToMaxTilt(t *testing.T) {
	cfg := config.Default()
	s := NewRightStick(cfg)

	var last model.Vector
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			last = s.Micro(model.Vector{X: 40, Y: 0})
		}
	}
	require.Equal(t, model.Flick, s.Motion())
	// Commits land on every second call, 12 in all. The first is raised to
	// MinTiltRange by the magnitude floor; each later one moves Blend of the
	// remaining distance toward MaxTiltRange.
	want := cfg.MaxTiltRange - (cfg.MaxTiltRange-cfg.MinTiltRange)*math.Pow(1-cfg.Blend, 11)
	require.InDelta(t, want, last.X, 1)
	require.InDelta(t, 0, last.Y, 1)
}

func TestRightStickBoundedMagnitude(t *testing.T) {
	cfg := config.Default()
	s := NewRightStick(cfg)
	for i := 0; i < 50; i++ {
		pos := s.Micro(model.Vector{X: 1000, Y: 1000})
		require.LessOrEqual(t, pos.X*pos.X+pos.Y*pos.Y, model.MaxStickTilt*model.MaxStickTilt+1e-6)
	}
}

func TestRightStickHistoryBounded(t *testing.T) {
	cfg := config.Default()
	s := NewRightStick(cfg)
	for i := 0; i < 20; i++ {
		s.Micro(model.Vector{X: 2, Y: 0})
	}
	require.LessOrEqual(t, s.HistoryLen(), historyLen)
}

func TestRightStickIdleRecentreExtendedDuringWalkMicro(t *testing.T) {
	cfg := config.Default()
	cfg.TickrateMS = 1
	cfg.MouseIdleTimeoutMS = 10
	s := NewRightStick(cfg)

	time.Sleep(cfg.Tickrate())
	s.Micro(model.Vector{X: 1, Y: 0})
	time.Sleep(cfg.Tickrate())
	s.Micro(model.Vector{X: 1, Y: 0})
	require.Equal(t, model.Micro, s.Motion())

	time.Sleep(20 * time.Millisecond)
	require.False(t, s.HandleIdle(true), "extended timeout while walking+micro-aiming must not recentre yet")

	time.Sleep(60 * time.Millisecond)
	require.True(t, s.HandleIdle(true))
	pos := s.Position()
	require.Equal(t, model.Vector{}, pos)
}

func TestResolveMotionHysteresis(t *testing.T) {
	cfg := config.Default()
	require.Equal(t, model.Macro, resolveMotion(0.02, model.Macro, cfg), "must stay Macro above the recover threshold")
	require.Equal(t, model.Micro, resolveMotion(0.005, model.Macro, cfg), "must drop to Micro below the recover threshold")
	require.Equal(t, model.Micro, resolveMotion(0.028, model.Micro, cfg), "must stay Micro below the micro->macro threshold")
	require.Equal(t, model.Macro, resolveMotion(0.031, model.Micro, cfg), "must promote to Macro above the micro->macro threshold")
}
