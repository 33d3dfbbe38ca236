//go:build windows

package main

import (
	"github.com/clemenscodes/joymouse/internal/adapter/devio"
	"github.com/clemenscodes/joymouse/internal/adapter/winio"
	"github.com/clemenscodes/joymouse/internal/ioevent"
)

// newSource builds the Windows low-level-hook PhysicalEventSource, or
// the cross-platform GLFW development adapter when -dev is set.
func newSource(cfg *cliConfig) (ioevent.Source, error) {
	if cfg.Dev {
		return devio.NewSource(), nil
	}
	return winio.NewSource(), nil
}

// newSink builds the ViGEm-backed VirtualGamepadSink.
func newSink() (ioevent.Sink, error) {
	return winio.NewSink()
}
