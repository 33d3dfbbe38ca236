//go:build windows

package winio

import (
	"context"
	"fmt"
	"time"
	"unsafe"

	"github.com/gonutz/w32/v3"

	"github.com/clemenscodes/joymouse/internal/ioevent"
	"github.com/clemenscodes/joymouse/internal/keys"
	"github.com/clemenscodes/joymouse/internal/model"
)

// rawEvent is what the low-level hook callbacks push onto the channel.
// The hook procedure itself must return immediately to avoid blocking
// cursor movement, so it only translates the raw code and enqueues;
// dispatch happens in Run, which drains this channel.
type rawEvent struct {
	event ioevent.Event
	at    time.Time
}

// Source is the Windows PhysicalEventSource: a pair of low-level
// keyboard/mouse hooks feeding a buffered channel drained by Run.
type Source struct {
	raw chan rawEvent
}

// NewSource constructs a Source. The hooks are installed by Run, since
// SetWindowsHookEx and the message loop must live on the same thread.
func NewSource() *Source {
	return &Source{raw: make(chan rawEvent, 256)}
}

// Run installs the keyboard and mouse hooks, pumps the Windows message
// loop, and translates queued hook events into ioevent.Event until ctx
// is cancelled.
func (s *Source) Run(ctx context.Context, handle func(ioevent.Event, time.Time)) error {
	hInst, err := w32.GetModuleHandle(nil)
	if err != nil {
		return &model.DeviceInitError{Cause: fmt.Errorf("winio: GetModuleHandle: %w", err)}
	}

	kbProc := w32.NewHookProcedure(func(code int32, wParam, lParam uintptr) uintptr {
		if code >= 0 {
			k := (*w32.KBDLLHOOKSTRUCT)(unsafe.Pointer(lParam))
			s.pushKey(int(k.VkCode), wParam)
		}
		return w32.CallNextHookEx(0, code, wParam, lParam)
	})
	kbHook, err := w32.SetWindowsHookEx(w32.WH_KEYBOARD_LL, kbProc, hInst, 0)
	if err != nil || kbHook == 0 {
		return &model.DeviceInitError{Cause: fmt.Errorf("winio: SetWindowsHookEx(WH_KEYBOARD_LL): %w", err)}
	}
	defer w32.UnhookWindowsHookEx(kbHook)

	var lastX, lastY int32
	haveLast := false
	msProc := w32.NewHookProcedure(func(code int32, wParam, lParam uintptr) uintptr {
		if code >= 0 {
			m := (*w32.MSLLHOOKSTRUCT)(unsafe.Pointer(lParam))
			switch wParam {
			case w32.WM_MOUSEMOVE:
				x, y := m.Pt.X, m.Pt.Y
				if haveLast {
					if dx := x - lastX; dx != 0 {
						s.pushAxis(model.AxisX, dx)
					}
					if dy := y - lastY; dy != 0 {
						s.pushAxis(model.AxisY, dy)
					}
				}
				lastX, lastY = x, y
				haveLast = true
			case w32.WM_LBUTTONDOWN:
				s.pushKeyDirect(keys.Mouse(keys.MouseLeft), true)
			case w32.WM_LBUTTONUP:
				s.pushKeyDirect(keys.Mouse(keys.MouseLeft), false)
			case w32.WM_RBUTTONDOWN:
				s.pushKeyDirect(keys.Mouse(keys.MouseRight), true)
			case w32.WM_RBUTTONUP:
				s.pushKeyDirect(keys.Mouse(keys.MouseRight), false)
			case w32.WM_MBUTTONDOWN:
				s.pushKeyDirect(keys.Mouse(keys.MouseMiddle), true)
			case w32.WM_MBUTTONUP:
				s.pushKeyDirect(keys.Mouse(keys.MouseMiddle), false)
			}
		}
		return w32.CallNextHookEx(0, code, wParam, lParam)
	})
	msHook, err := w32.SetWindowsHookEx(w32.WH_MOUSE_LL, msProc, hInst, 0)
	if err != nil || msHook == 0 {
		return &model.DeviceInitError{Cause: fmt.Errorf("winio: SetWindowsHookEx(WH_MOUSE_LL): %w", err)}
	}
	defer w32.UnhookWindowsHookEx(msHook)

	done := make(chan struct{})
	go func() {
		var msg w32.MSG
		for {
			ret, err := w32.GetMessage(&msg, 0, 0, 0)
			if err != nil || !ret {
				break
			}
			w32.TranslateMessage(&msg)
			w32.DispatchMessage(&msg)
		}
		close(done)
	}()

	for {
		select {
		case <-ctx.Done():
			w32.PostQuitMessage(0)
			return nil
		case <-done:
			return nil
		case re := <-s.raw:
			handle(re.event, re.at)
		}
	}
}

func (s *Source) pushKey(vk int, wParam uintptr) {
	k, ok := keys.FromVirtualKeyCode(vk)
	if !ok {
		return
	}
	var kind ioevent.Kind
	switch wParam {
	case w32.WM_KEYDOWN, w32.WM_SYSKEYDOWN:
		kind = ioevent.KeyDown
	case w32.WM_KEYUP, w32.WM_SYSKEYUP:
		kind = ioevent.KeyUp
	default:
		return
	}
	s.enqueue(ioevent.Event{Kind: kind, Key: k})
}

func (s *Source) pushKeyDirect(k keys.Key, down bool) {
	kind := ioevent.KeyUp
	if down {
		kind = ioevent.KeyDown
	}
	s.enqueue(ioevent.Event{Kind: kind, Key: k})
}

func (s *Source) pushAxis(axis model.Axis, delta int32) {
	s.enqueue(ioevent.Event{Kind: ioevent.RelMouseAxis, Axis: axis, Delta: delta})
}

// enqueue is non-blocking: a full channel drops the event rather than
// stall the hook thread, since a late keyboard/mouse event is worse
// than a dropped one for this source.
func (s *Source) enqueue(ev ioevent.Event) {
	select {
	case s.raw <- rawEvent{event: ev, at: time.Now()}:
	default:
	}
}
