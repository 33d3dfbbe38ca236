//go:build windows

// Package winio implements the Windows PhysicalEventSource (low-level
// keyboard/mouse hooks) and VirtualGamepadSink (a ViGEm-backed virtual
// Xbox 360 controller), both reached through direct syscall bindings
// rather than cgo, matching the calling convention this program already
// uses for its other Windows DLL integration.
package winio

import (
	"fmt"
	"sync"
	"syscall"
	"unsafe"

	"github.com/clemenscodes/joymouse/internal/model"
)

var (
	vigemDLL         = syscall.NewLazyDLL("ViGEmClient.dll")
	procAlloc        = vigemDLL.NewProc("vigem_alloc")
	procFree         = vigemDLL.NewProc("vigem_free")
	procConnect      = vigemDLL.NewProc("vigem_connect")
	procDisconnect   = vigemDLL.NewProc("vigem_disconnect")
	procX360Alloc    = vigemDLL.NewProc("vigem_target_x360_alloc")
	procTargetFree   = vigemDLL.NewProc("vigem_target_free")
	procTargetAdd    = vigemDLL.NewProc("vigem_target_add")
	procTargetRemove = vigemDLL.NewProc("vigem_target_remove")
	procX360Update   = vigemDLL.NewProc("vigem_target_x360_update")
)

// xusbReport mirrors ViGEmClient's XUSB_REPORT.
type xusbReport struct {
	Buttons      uint16
	LeftTrigger  byte
	RightTrigger byte
	ThumbLX      int16
	ThumbLY      int16
	ThumbRX      int16
	ThumbRY      int16
}

// XUSB_BUTTON bitmasks.
const (
	xusbDpadUp        = 0x0001
	xusbDpadDown      = 0x0002
	xusbDpadLeft      = 0x0004
	xusbDpadRight     = 0x0008
	xusbStart         = 0x0010
	xusbBack          = 0x0020
	xusbLeftThumb     = 0x0040
	xusbRightThumb    = 0x0080
	xusbLeftShoulder  = 0x0100
	xusbRightShoulder = 0x0200
	xusbA             = 0x1000
	xusbB             = 0x2000
	xusbX             = 0x4000
	xusbY             = 0x8000
)

// canonicalButtonBit maps every ControllerButton with a direct XUSB
// bitmask equivalent. L2/R2 are analog triggers and handled separately.
var canonicalButtonBit = map[model.ControllerButton]uint16{
	model.South: xusbA, model.East: xusbB, model.West: xusbX, model.North: xusbY,
	model.L1: xusbLeftShoulder, model.R1: xusbRightShoulder,
	model.L3: xusbLeftThumb, model.R3: xusbRightThumb,
	model.Start: xusbStart, model.Select: xusbBack,
	model.Up: xusbDpadUp, model.Down: xusbDpadDown, model.Left: xusbDpadLeft, model.Right: xusbDpadRight,
}

// Sink drives a ViGEm virtual Xbox 360 controller. The XUSB_REPORT is
// accumulated across Emit calls (button/axis updates are sparse) and
// pushed to the driver as a whole on every call, mirroring the way the
// real device reports a full gamepad state per packet.
type Sink struct {
	mu     sync.Mutex
	client uintptr
	target uintptr
	report xusbReport
}

// NewSink allocates a ViGEm client, connects to the bus driver, and
// plugs in a virtual Xbox 360 target.
func NewSink() (*Sink, error) {
	client, _, _ := procAlloc.Call()
	if client == 0 {
		return nil, &model.DeviceInitError{Cause: fmt.Errorf("winio: vigem_alloc returned NULL (is ViGEmBus installed?)")}
	}
	if r, _, _ := procConnect.Call(client); r != 0 {
		procFree.Call(client)
		return nil, &model.DeviceInitError{Cause: fmt.Errorf("winio: vigem_connect failed: code %#x", r)}
	}
	target, _, _ := procX360Alloc.Call()
	if target == 0 {
		procDisconnect.Call(client)
		procFree.Call(client)
		return nil, &model.DeviceInitError{Cause: fmt.Errorf("winio: vigem_target_x360_alloc returned NULL")}
	}
	if r, _, _ := procTargetAdd.Call(client, target); r != 0 {
		procTargetFree.Call(target)
		procDisconnect.Call(client)
		procFree.Call(client)
		return nil, &model.DeviceInitError{Cause: fmt.Errorf("winio: vigem_target_add failed: code %#x", r)}
	}
	return &Sink{client: client, target: target}, nil
}

// Emit folds every canonical event into the accumulated report and
// pushes it to the driver.
func (s *Sink) Emit(events []model.CanonicalEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ev := range events {
		switch {
		case ev.Button != nil:
			s.applyButtonLocked(ev.Button.Button, ev.Button.State)
		case ev.Axis != nil:
			s.applyAxisLocked(ev.Axis.Stick, ev.Axis.Axis, ev.Axis.Value)
		}
	}

	r, _, _ := procX360Update.Call(s.client, s.target, uintptr(unsafe.Pointer(&s.report)))
	if r != 0 {
		return &model.SinkError{Cause: fmt.Errorf("winio: vigem_target_x360_update failed: code %#x", r)}
	}
	return nil
}

func (s *Sink) applyButtonLocked(button model.ControllerButton, state model.PressState) {
	active := state == model.Pressed || state == model.Held
	switch button {
	case model.L2:
		if active {
			s.report.LeftTrigger = 255
		} else {
			s.report.LeftTrigger = 0
		}
		return
	case model.R2:
		if active {
			s.report.RightTrigger = 255
		} else {
			s.report.RightTrigger = 0
		}
		return
	}
	bit, ok := canonicalButtonBit[button]
	if !ok {
		return
	}
	if active {
		s.report.Buttons |= bit
	} else {
		s.report.Buttons &^= bit
	}
}

func (s *Sink) applyAxisLocked(stick model.Stick, axis model.Axis, value int32) {
	v := int16(value)
	switch {
	case stick == model.LeftStick && axis == model.AxisX:
		s.report.ThumbLX = v
	case stick == model.LeftStick:
		s.report.ThumbLY = v
	case stick == model.RightStick && axis == model.AxisX:
		s.report.ThumbRX = v
	default:
		s.report.ThumbRY = v
	}
}

// Disconnect unplugs the virtual target and releases the client.
func (s *Sink) Disconnect() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	procTargetRemove.Call(s.client, s.target)
	procTargetFree.Call(s.target)
	procDisconnect.Call(s.client)
	procFree.Call(s.client)
	return nil
}
