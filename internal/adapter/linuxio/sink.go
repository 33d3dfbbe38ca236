//go:build linux

package linuxio

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/clemenscodes/joymouse/internal/model"
)

var canonicalButtonCode = map[model.ControllerButton]uint16{
	model.South: btnSouth, model.East: btnEast, model.North: btnNorth, model.West: btnWest,
	model.L1: btnTL, model.R1: btnTR, model.L2: btnTL2, model.R2: btnTR2,
	model.Start: btnStart, model.Select: btnSelect, model.L3: btnThumbL, model.R3: btnThumbR,
	model.Up: btnDpadUp, model.Down: btnDpadDown, model.Left: btnDpadLeft, model.Right: btnDpadRight,
}

// Sink is the uinput-backed VirtualGamepadSink: a virtual Xbox-layout
// gamepad with two absolute sticks and the canonical button set.
type Sink struct {
	file *os.File
}

// NewSink creates and registers the virtual gamepad device with the
// kernel, matching the vendor/product/version and axis ranges the
// spec requires.
func NewSink() (*Sink, error) {
	f, err := openUinput()
	if err != nil {
		return nil, &model.DeviceInitError{Cause: err}
	}
	fd := int(f.Fd())

	if err := ioctlInt(fd, uiSetEvBit, evKey); err != nil {
		f.Close()
		return nil, &model.DeviceInitError{Cause: fmt.Errorf("linuxio: UI_SET_EVBIT EV_KEY: %w", err)}
	}
	if err := ioctlInt(fd, uiSetEvBit, evAbs); err != nil {
		f.Close()
		return nil, &model.DeviceInitError{Cause: fmt.Errorf("linuxio: UI_SET_EVBIT EV_ABS: %w", err)}
	}
	for _, code := range canonicalButtonCode {
		if err := ioctlInt(fd, uiSetKeyBit, int(code)); err != nil {
			f.Close()
			return nil, &model.DeviceInitError{Cause: fmt.Errorf("linuxio: UI_SET_KEYBIT %#x: %w", code, err)}
		}
	}
	for _, code := range []int{absX, absY, absRX, absRY} {
		if err := ioctlInt(fd, uiSetAbsBit, code); err != nil {
			f.Close()
			return nil, &model.DeviceInitError{Cause: fmt.Errorf("linuxio: UI_SET_ABSBIT %#x: %w", code, err)}
		}
	}

	var dev uinputUserDev
	copy(dev.Name[:], "JoyMouse Virtual Gamepad")
	dev.ID = inputID{BusType: 0x03, Vendor: 0x1234, Product: 0x5678, Version: 0x0100}
	for _, axis := range []int{absX, absY, absRX, absRY} {
		dev.AbsMin[axis] = int32(model.MinStickTilt)
		dev.AbsMax[axis] = int32(model.MaxStickTilt)
		dev.AbsFuzz[axis] = 0
		dev.AbsFlat[axis] = 0
	}

	if _, err := f.Write((*[unsafe.Sizeof(dev)]byte)(unsafe.Pointer(&dev))[:]); err != nil {
		f.Close()
		return nil, &model.DeviceInitError{Cause: fmt.Errorf("linuxio: writing uinput_user_dev: %w", err)}
	}
	if err := ioctlInt(fd, uiDevCreate, 0); err != nil {
		f.Close()
		return nil, &model.DeviceInitError{Cause: fmt.Errorf("linuxio: UI_DEV_CREATE: %w", err)}
	}

	return &Sink{file: f}, nil
}

func (s *Sink) writeEvent(typ, code uint16, value int32) error {
	ev := inputEvent{Type: typ, Code: code, Value: value}
	_, err := s.file.Write((*[unsafe.Sizeof(ev)]byte)(unsafe.Pointer(&ev))[:])
	return err
}

// Emit writes every canonical event followed by a single EV_SYN report,
// so the kernel delivers them to readers as one atomic frame.
func (s *Sink) Emit(events []model.CanonicalEvent) error {
	for _, ev := range events {
		switch {
		case ev.Button != nil:
			code, ok := canonicalButtonCode[ev.Button.Button]
			if !ok {
				continue
			}
			value := int32(0)
			if ev.Button.State == model.Pressed || ev.Button.State == model.Held {
				value = 1
			}
			if err := s.writeEvent(evKey, code, value); err != nil {
				return &model.SinkError{Cause: err}
			}
		case ev.Axis != nil:
			code := absAxisCode(ev.Axis.Stick, ev.Axis.Axis)
			if err := s.writeEvent(evAbs, code, ev.Axis.Value); err != nil {
				return &model.SinkError{Cause: err}
			}
		}
	}
	if err := s.writeEvent(evSyn, 0, 0); err != nil {
		return &model.SinkError{Cause: err}
	}
	return nil
}

func absAxisCode(stick model.Stick, axis model.Axis) uint16 {
	switch {
	case stick == model.LeftStick && axis == model.AxisX:
		return absX
	case stick == model.LeftStick && axis == model.AxisY:
		return absY
	case stick == model.RightStick && axis == model.AxisX:
		return absRX
	default:
		return absRY
	}
}

// Disconnect destroys the virtual device and closes the descriptor.
func (s *Sink) Disconnect() error {
	fd := int(s.file.Fd())
	_ = ioctlInt(fd, uiDevDestroy, 0)
	return s.file.Close()
}
