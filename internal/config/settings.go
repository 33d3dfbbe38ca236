// Package config resolves and persists the tuning settings file
// (joymouse.toml) alongside the binding registry's bindings.toml, both
// rooted at the platform config directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/clemenscodes/joymouse/internal/model"
)

// Settings holds every tunable constant for the two stick models. Field
// names and units mirror the flat snake_case TOML table from the spec.
type Settings struct {
	TickrateMS                       int64   `toml:"tickrate_ms"`
	MouseIdleTimeoutMS               int64   `toml:"mouse_idle_timeout_ms"`
	Sensitivity                      float64 `toml:"sensitivity"`
	LeftStickSensitivity             float64 `toml:"left_stick_sensitivity"`
	Blend                            float64 `toml:"blend"`
	DiagonalBoost                    float64 `toml:"diagonal_boost"`
	MinTiltRange                     float64 `toml:"min_tilt_range"`
	MaxTiltRange                     float64 `toml:"max_tilt_range"`
	MinSpeedClamp                    float64 `toml:"min_speed_clamp"`
	MaxSpeedClamp                    float64 `toml:"max_speed_clamp"`
	MotionThresholdMicroMacro        float64 `toml:"motion_threshold_micro_macro"`
	MotionThresholdMacroFlick        float64 `toml:"motion_threshold_macro_flick"`
	MotionThresholdMacroMicro        float64 `toml:"motion_threshold_macro_micro"`
	MotionThresholdMicroMacroRecover float64 `toml:"motion_threshold_micro_macro_recover"`
	AngleDeltaLimit                  float64 `toml:"angle_delta_limit"`
	SpeedStabilizeThreshold          float64 `toml:"speed_stabilize_threshold"`
	PureNorthBoost                   bool    `toml:"pure_north_boost"`
}

// Tickrate returns the tick period as a time.Duration.
func (s Settings) Tickrate() time.Duration {
	return time.Duration(s.TickrateMS) * time.Millisecond
}

// MouseIdleTimeout returns the idle timeout as a time.Duration.
func (s Settings) MouseIdleTimeout() time.Duration {
	return time.Duration(s.MouseIdleTimeoutMS) * time.Millisecond
}

// Default returns the canonical tuning defaults, matching the constants
// named throughout the component design.
func Default() Settings {
	const tickrateMS = 16
	return Settings{
		TickrateMS:                       tickrateMS,
		MouseIdleTimeoutMS:               tickrateMS * 4,
		Sensitivity:                      7.0,
		LeftStickSensitivity:             10000.0,
		Blend:                            0.2,
		DiagonalBoost:                    1.41,
		MinTiltRange:                     model.MaxStickTilt * 0.4,
		MaxTiltRange:                     model.MaxStickTilt * 1.0,
		MinSpeedClamp:                    1.0,
		MaxSpeedClamp:                    500.0,
		MotionThresholdMicroMacro:        0.025,
		MotionThresholdMacroFlick:        0.5,
		MotionThresholdMacroMicro:        0.03,
		MotionThresholdMicroMacroRecover: 0.01,
		AngleDeltaLimit:                  0.5,
		SpeedStabilizeThreshold:          200.0,
		PureNorthBoost:                   true,
	}
}

// Path returns the canonical tuning file path under configDir.
func Path(configDir string) string {
	return filepath.Join(configDir, "joymouse.toml")
}

// Load reads settings from path, writing and returning Default if the
// file does not yet exist.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		def := Default()
		if err := Save(path, def); err != nil {
			return Settings{}, err
		}
		return def, nil
	}
	var s Settings
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return Settings{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return s, nil
}

// Save writes settings to path.
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: creating config dir: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".joymouse-*.toml")
	if err != nil {
		return fmt.Errorf("config: creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := toml.NewEncoder(tmp).Encode(s); err != nil {
		tmp.Close()
		return fmt.Errorf("config: encoding: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("config: closing temp file: %w", err)
	}
	return os.Rename(tmp.Name(), path)
}

// ConfigDir resolves <os-config-dir>/joymouse, creating it if absent.
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: resolving user config dir: %w", err)
	}
	dir := filepath.Join(base, "joymouse")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("config: creating %s: %w", dir, err)
	}
	return dir, nil
}
