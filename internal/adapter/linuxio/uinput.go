//go:build linux

// Package linuxio implements the Linux PhysicalEventSource and
// VirtualGamepadSink: a grabbed evdev read loop and a uinput virtual
// Xbox-layout gamepad. Both talk to the kernel through golang.org/x/sys/unix
// raw ioctl/read/write primitives rather than a third-party uinput or
// evdev wrapper, per this program's adapter design.
package linuxio

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Event type codes, from linux/input-event-codes.h.
const (
	evSyn = 0x00
	evKey = 0x01
	evRel = 0x02
	evAbs = 0x03
)

// Relative axis codes.
const (
	relX = 0x00
	relY = 0x01
)

// Absolute axis codes for the virtual gamepad's two sticks.
const (
	absX  = 0x00
	absY  = 0x01
	absRX = 0x03
	absRY = 0x04
)

// Gamepad button codes.
const (
	btnSouth  = 0x130
	btnEast   = 0x131
	btnNorth  = 0x133
	btnWest   = 0x134
	btnTL     = 0x136
	btnTR     = 0x137
	btnTL2    = 0x138
	btnTR2    = 0x139
	btnSelect = 0x13a
	btnStart  = 0x13b
	btnThumbL = 0x13d
	btnThumbR = 0x13e

	btnDpadUp    = 0x220
	btnDpadDown  = 0x221
	btnDpadLeft  = 0x222
	btnDpadRight = 0x223
)

// uinput ioctl request numbers, computed from the _IOW/_IO macros in
// linux/uinput.h ('U' magic, int-sized payload).
const (
	uiSetEvBit   = 0x40045564
	uiSetKeyBit  = 0x40045565
	uiSetRelBit  = 0x40045566
	uiSetAbsBit  = 0x40045567
	uiDevCreate  = 0x5501
	uiDevDestroy = 0x5502
)

// evIocGrab is EVIOCGRAB: _IOW('E', 0x90, int).
const evIocGrab = 0x40044590

const (
	uinputMaxNameSize = 80
	absCnt            = 64
)

// inputID mirrors struct input_id.
type inputID struct {
	BusType uint16
	Vendor  uint16
	Product uint16
	Version uint16
}

// uinputUserDev mirrors the legacy struct uinput_user_dev, written
// directly to /dev/uinput to describe the virtual device before
// UI_DEV_CREATE.
type uinputUserDev struct {
	Name       [uinputMaxNameSize]byte
	ID         inputID
	EffectsMax uint32
	AbsMax     [absCnt]int32
	AbsMin     [absCnt]int32
	AbsFuzz    [absCnt]int32
	AbsFlat    [absCnt]int32
}

// inputEvent mirrors struct input_event on a 64-bit Linux host (16-byte
// timeval, matching the kernel ABI this program targets).
type inputEvent struct {
	Sec   int64
	Usec  int64
	Type  uint16
	Code  uint16
	Value int32
}

func ioctlInt(fd int, req uint, arg int) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(req), uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

func ioctlPtr(fd int, req uint, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(req), uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

func openUinput() (*os.File, error) {
	for _, path := range []string{"/dev/uinput", "/dev/input/uinput"} {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_NONBLOCK, 0)
		if err == nil {
			return f, nil
		}
	}
	return nil, fmt.Errorf("linuxio: could not open /dev/uinput (is the uinput module loaded, and do you have permission?)")
}
