//go:build linux

package main

import (
	"github.com/clemenscodes/joymouse/internal/adapter/devio"
	"github.com/clemenscodes/joymouse/internal/adapter/linuxio"
	"github.com/clemenscodes/joymouse/internal/ioevent"
)

// newSource builds the Linux evdev PhysicalEventSource, or the
// cross-platform GLFW development adapter when -dev is set.
func newSource(cfg *cliConfig) (ioevent.Source, error) {
	if cfg.Dev {
		return devio.NewSource(), nil
	}
	return linuxio.NewSource(nil)
}

// newSink builds the uinput-backed VirtualGamepadSink.
func newSink() (ioevent.Sink, error) {
	return linuxio.NewSink()
}
