// Package devio implements the cross-platform development
// PhysicalEventSource: a hidden GLFW window whose keyboard/mouse
// callbacks are translated into the same canonical event stream the
// platform-native evdev and low-level-hook adapters produce. It needs
// no elevated OS permissions, at the cost of only seeing input while
// the hidden window has focus, so it is for development and the test
// harness's manual-exercise mode, not production capture.
package devio

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/clemenscodes/joymouse/internal/ioevent"
	"github.com/clemenscodes/joymouse/internal/keys"
	"github.com/clemenscodes/joymouse/internal/model"
)

func init() {
	runtime.LockOSThread()
}

var glfwKeyToKey = map[glfw.Key]keys.Key{
	glfw.KeyEscape:       keys.Modifier(keys.ModifierEscape),
	glfw.KeyEnter:        keys.System(keys.SystemEnter),
	glfw.KeyTab:          keys.System(keys.SystemTab),
	glfw.KeySpace:        keys.System(keys.SystemSpace),
	glfw.KeyBackspace:    keys.System(keys.SystemBackspace),
	glfw.KeyCapsLock:     keys.Modifier(keys.ModifierCaps),
	glfw.KeyLeftShift:    keys.Modifier(keys.ModifierShift),
	glfw.KeyRightShift:   keys.Modifier(keys.ModifierShift),
	glfw.KeyLeftControl:  keys.Modifier(keys.ModifierCtrl),
	glfw.KeyRightControl: keys.Modifier(keys.ModifierCtrl),
	glfw.KeyLeftAlt:      keys.Modifier(keys.ModifierAlt),
	glfw.KeyRightAlt:     keys.Modifier(keys.ModifierAlt),
	glfw.KeyLeftSuper:    keys.Modifier(keys.ModifierSuper),
	glfw.KeyRightSuper:   keys.Modifier(keys.ModifierSuper),
	glfw.KeyUp:           keys.Arrow(keys.ArrowUp),
	glfw.KeyDown:         keys.Arrow(keys.ArrowDown),
	glfw.KeyLeft:         keys.Arrow(keys.ArrowLeft),
	glfw.KeyRight:        keys.Arrow(keys.ArrowRight),
}

func translateKey(k glfw.Key) (keys.Key, bool) {
	if k >= glfw.KeyA && k <= glfw.KeyZ {
		return keys.Alphabetic(byte('A' + (k - glfw.KeyA))), true
	}
	if k >= glfw.Key0 && k <= glfw.Key9 {
		return keys.Numeric(int(k - glfw.Key0)), true
	}
	if k >= glfw.KeyF1 && k <= glfw.KeyF12 {
		return keys.Function(int(k-glfw.KeyF1) + 1), true
	}
	kk, ok := glfwKeyToKey[k]
	return kk, ok
}

func translateMouseButton(b glfw.MouseButton) (keys.Key, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return keys.Mouse(keys.MouseLeft), true
	case glfw.MouseButtonRight:
		return keys.Mouse(keys.MouseRight), true
	case glfw.MouseButtonMiddle:
		return keys.Mouse(keys.MouseMiddle), true
	case glfw.MouseButton4:
		return keys.Mouse(keys.MouseSide), true
	case glfw.MouseButton5:
		return keys.Mouse(keys.MouseExtra), true
	}
	return keys.Key{}, false
}

// Source is the GLFW-backed development PhysicalEventSource.
type Source struct {
	width, height int
}

// NewSource builds a Source. The hidden window is created in Run, since
// GLFW must be initialised and driven from a single locked OS thread.
func NewSource() *Source {
	return &Source{width: 640, height: 480}
}

// Run creates a hidden GLFW window, installs key/mouse-button/cursor
// callbacks, and polls events at a steady rate until ctx is cancelled.
func (s *Source) Run(ctx context.Context, handle func(ioevent.Event, time.Time)) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := glfw.Init(); err != nil {
		return &model.DeviceInitError{Cause: fmt.Errorf("devio: glfw.Init: %w", err)}
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Visible, glfw.False)
	window, err := glfw.CreateWindow(s.width, s.height, "joymouse dev capture", nil, nil)
	if err != nil {
		return &model.DeviceInitError{Cause: fmt.Errorf("devio: glfw.CreateWindow: %w", err)}
	}
	defer window.Destroy()
	window.MakeContextCurrent()

	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		k, ok := translateKey(key)
		if !ok || action == glfw.Repeat {
			return
		}
		kind := ioevent.KeyUp
		if action == glfw.Press {
			kind = ioevent.KeyDown
		}
		handle(ioevent.Event{Kind: kind, Key: k}, time.Now())
	})

	window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		k, ok := translateMouseButton(button)
		if !ok {
			return
		}
		kind := ioevent.KeyUp
		if action == glfw.Press {
			kind = ioevent.KeyDown
		}
		handle(ioevent.Event{Kind: kind, Key: k}, time.Now())
	})

	var lastX, lastY float64
	haveLast := false
	window.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		if haveLast {
			if dx := xpos - lastX; dx != 0 {
				handle(ioevent.Event{Kind: ioevent.RelMouseAxis, Axis: model.AxisX, Delta: int32(dx)}, time.Now())
			}
			if dy := ypos - lastY; dy != 0 {
				handle(ioevent.Event{Kind: ioevent.RelMouseAxis, Axis: model.AxisY, Delta: int32(dy)}, time.Now())
			}
		}
		lastX, lastY = xpos, ypos
		haveLast = true
	})

	ticker := time.NewTicker(2 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			glfw.PollEvents()
			if window.ShouldClose() {
				return nil
			}
		}
	}
}
