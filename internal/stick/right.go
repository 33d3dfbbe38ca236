package stick

import (
	"math"
	"sync"
	"time"

	"github.com/clemenscodes/joymouse/internal/config"
	"github.com/clemenscodes/joymouse/internal/model"
)

const historyLen = 5

// RightStick is the continuous mouse-delta integrator: it classifies
// incoming motion into Idle/Micro/Macro/Flick, smooths the target
// deflection with a blend filter, and recentres after an idle timeout.
type RightStick struct {
	mu sync.Mutex

	settings config.Settings

	x, y float64

	motion  model.Motion
	history []float64

	hasAngle bool
	angleDeg float64

	lastEvent time.Time
	tickStart time.Time

	pending []model.Vector

	lastRawSpeed  float64
	lastNormSpeed float64
}

// NewRightStick builds a right stick using the given tuning settings.
func NewRightStick(settings config.Settings) *RightStick {
	now := time.Now()
	return &RightStick{
		settings:  settings,
		lastEvent: now,
		tickStart: now,
	}
}

// Position returns the current (x,y).
func (s *RightStick) Position() model.Vector {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.Vector{X: s.x, Y: s.y}
}

// Motion returns the current motion classification.
func (s *RightStick) Motion() model.Motion {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.motion
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func normalizeSpeed(rawSpeed float64, st config.Settings) float64 {
	scaled := rawSpeed * st.Sensitivity
	clamped := clampf(scaled, st.MinSpeedClamp, st.MaxSpeedClamp)
	span := st.MaxSpeedClamp - st.MinSpeedClamp
	if span <= 0 {
		return 0
	}
	return (clamped - st.MinSpeedClamp) / span
}

// resolveMotion classifies avg into a motion band and applies sticky
// hysteresis against the current motion, so the classifier does not
// flap back and forth near a threshold.
func resolveMotion(avg float64, current model.Motion, st config.Settings) model.Motion {
	var resolved model.Motion
	switch {
	case avg >= st.MotionThresholdMacroFlick:
		resolved = model.Flick
	case avg >= st.MotionThresholdMicroMacro:
		resolved = model.Macro
	default:
		resolved = model.Micro
	}

	if current == model.Macro && resolved == model.Micro && avg > st.MotionThresholdMicroMacroRecover {
		return model.Macro
	}
	if current == model.Micro && resolved == model.Macro && avg < st.MotionThresholdMacroMicro {
		return model.Micro
	}
	return resolved
}

// Micro is invoked once per raw mouse delta event.
func (s *RightStick) Micro(delta model.Vector) model.Vector {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.pending = append(s.pending, delta)

	if len(s.pending) < 2 && now.Sub(s.tickStart) < s.settings.Tickrate() {
		return model.Vector{X: s.x, Y: s.y}
	}

	sum := model.SumVectors(s.pending)
	rawSpeed := sum.Len()
	norm := normalizeSpeed(rawSpeed, s.settings)

	s.history = append(s.history, norm)
	if len(s.history) > historyLen {
		s.history = s.history[len(s.history)-historyLen:]
	}
	var avg float64
	for _, v := range s.history {
		avg += v
	}
	avg /= float64(len(s.history))

	newMotion := resolveMotion(avg, s.motion, s.settings)
	s.motion = newMotion

	if newMotion == model.Flick {
		return s.commitLocked(now)
	}
	if newMotion == model.Micro {
		s.lastEvent = now
	}

	if now.Sub(s.tickStart) >= s.settings.Tickrate() {
		return s.commitLocked(now)
	}
	return model.Vector{X: s.x, Y: s.y}
}

// commitLocked reduces the pending mouse deltas into a new smoothed
// position. Caller must hold s.mu.
func (s *RightStick) commitLocked(now time.Time) model.Vector {
	s.tickStart = now
	s.lastEvent = now

	if len(s.pending) < 2 {
		return model.Vector{X: s.x, Y: s.y}
	}

	sum := model.SumVectors(s.pending)
	angle := math.Atan2(sum.Y, sum.X)
	norm := normalizeSpeed(sum.Len(), s.settings)
	s.lastRawSpeed = sum.Len()
	s.lastNormSpeed = norm

	var tiltMag float64
	if s.motion == model.Flick {
		tiltMag = s.settings.MaxTiltRange
	} else {
		tiltMag = s.settings.MinTiltRange + (s.settings.MaxTiltRange-s.settings.MinTiltRange)*norm
	}

	boost := 1.0
	if sum.X != 0 && sum.Y != 0 {
		boost = s.settings.DiagonalBoost
	}

	target := model.Vector{
		X: tiltMag * math.Cos(angle) * boost,
		Y: tiltMag * math.Sin(angle) * boost,
	}

	s.updateSmoothedPositionLocked(target)
	s.pending = s.pending[:0]
	return model.Vector{X: s.x, Y: s.y}
}

func (s *RightStick) updateSmoothedPositionLocked(target model.Vector) {
	blend := s.settings.Blend
	px, py := s.x, s.y

	xPrime := (1-blend)*px + blend*target.X
	yPrime := (1-blend)*py + blend*target.Y

	mag := math.Hypot(xPrime, yPrime)
	prevMag := math.Hypot(px, py)
	if math.Abs(mag-prevMag) < s.settings.SpeedStabilizeThreshold {
		mag = prevMag
	}
	if mag > 0.001 && mag < s.settings.MinTiltRange {
		mag = s.settings.MinTiltRange
	}

	angleDeg := math.Atan2(yPrime, xPrime) * 180 / math.Pi
	if s.hasAngle {
		delta := shortestAngleDelta(s.angleDeg, angleDeg)
		if math.Abs(delta) < s.settings.AngleDeltaLimit {
			angleDeg = s.angleDeg
		}
	}
	s.angleDeg = angleDeg
	s.hasAngle = true

	angleRad := angleDeg * math.Pi / 180
	result := model.NewVector(mag*math.Cos(angleRad), mag*math.Sin(angleRad)).ClampLen(model.MaxStickTilt)
	s.x, s.y = result.X, result.Y
}

// shortestAngleDelta returns the signed shortest angular distance from
// `from` to `to`, both in degrees, normalised to (-180, 180].
func shortestAngleDelta(from, to float64) float64 {
	d := math.Mod(to-from+180, 360)
	if d < 0 {
		d += 360
	}
	return d - 180
}

// HandleIdle recentres the stick if it has been idle longer than the
// timeout (extended 5x when gently micro-aiming while walking), and
// reports whether it did so.
func (s *RightStick) HandleIdle(leftStickDirection bool) bool {
	s.mu.Lock()
	now := time.Now()
	timeout := s.settings.MouseIdleTimeout()
	if s.motion == model.Micro && leftStickDirection {
		timeout *= 5
	}
	idle := now.Sub(s.lastEvent) > timeout && (s.x != 0 || s.y != 0)
	s.mu.Unlock()

	if idle {
		s.Recenter()
		return true
	}
	return false
}

// Recenter resets position, motion history and pending buffer, without
// dropping the container.
func (s *RightStick) Recenter() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.x, s.y = 0, 0
	s.motion = model.Idle
	s.history = s.history[:0]
	s.pending = s.pending[:0]
	s.hasAngle = false
	s.lastEvent = time.Now()
	s.tickStart = s.lastEvent
}

// HistoryLen reports the current motion-history length, for tests
// asserting the bounded-window invariant.
func (s *RightStick) HistoryLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}

// TickStart returns the start of the current commit window. A caller
// that snapshots this before and after a Micro call can detect whether
// that call produced a commit, without Micro's return value having to
// carry a separate signal.
func (s *RightStick) TickStart() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tickStart
}

// Angle returns the last committed deflection angle in degrees, if any
// commit has happened since the last recentre.
func (s *RightStick) Angle() (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.angleDeg, s.hasAngle
}

// LastSpeeds returns the raw and normalised speed computed at the most
// recent commit, for the trace recorder.
func (s *RightStick) LastSpeeds() (raw, norm float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRawSpeed, s.lastNormSpeed
}
