//go:build linux

package linuxio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/clemenscodes/joymouse/internal/ioevent"
	"github.com/clemenscodes/joymouse/internal/keys"
	"github.com/clemenscodes/joymouse/internal/model"
)

const (
	keyA  = 30
	relX0 = 0x00
	relY0 = 0x01
)

func evIocGBit(ev, length int) uint {
	const iocRead = 2
	return uint(iocRead)<<30 | uint(length)<<16 | uint('E')<<8 | uint(0x20+ev)
}

func hasBit(buf []byte, bit int) bool {
	idx := bit / 8
	if idx >= len(buf) {
		return false
	}
	return buf[idx]&(1<<uint(bit%8)) != 0
}

// capable reports whether the device at fd supports EV_KEY with KEY_A
// (a heuristic for "is a keyboard") or EV_REL with REL_X/REL_Y (a
// heuristic for "is a mouse").
func capable(fd int) (isKeyboard, isMouse bool) {
	const bufLen = 96
	buf := make([]byte, bufLen)

	if err := ioctlPtr(fd, evIocGBit(evKey, bufLen), unsafe.Pointer(&buf[0])); err == nil {
		isKeyboard = hasBit(buf, keyA)
	}
	for i := range buf {
		buf[i] = 0
	}
	if err := ioctlPtr(fd, evIocGBit(evRel, bufLen), unsafe.Pointer(&buf[0])); err == nil {
		isMouse = hasBit(buf, relX0) && hasBit(buf, relY0)
	}
	return
}

// discoverDevices scans /dev/input/event* and returns the paths of
// devices that look like a keyboard or a mouse.
func discoverDevices() ([]string, error) {
	matches, err := filepath.Glob("/dev/input/event*")
	if err != nil {
		return nil, fmt.Errorf("linuxio: globbing /dev/input: %w", err)
	}
	var found []string
	for _, path := range matches {
		f, err := os.OpenFile(path, os.O_RDONLY, 0)
		if err != nil {
			continue
		}
		kb, mouse := capable(int(f.Fd()))
		f.Close()
		if kb || mouse {
			found = append(found, path)
		}
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("linuxio: no keyboard or mouse device found under /dev/input")
	}
	return found, nil
}

// Source is the evdev-backed PhysicalEventSource: it grabs every
// discovered keyboard/mouse device exclusively and multiplexes their
// event streams with epoll.
type Source struct {
	devicePaths []string
}

// NewSource discovers input devices. Pass explicit paths to bypass
// auto-discovery (e.g. when the caller already knows which nodes to
// grab); an empty slice triggers discovery.
func NewSource(devicePaths []string) (*Source, error) {
	if len(devicePaths) == 0 {
		found, err := discoverDevices()
		if err != nil {
			return nil, &model.DeviceInitError{Cause: err}
		}
		devicePaths = found
	}
	return &Source{devicePaths: devicePaths}, nil
}

// Run grabs every device, then blocks in an epoll loop translating raw
// input_events into ioevent.Event until ctx is cancelled.
func (s *Source) Run(ctx context.Context, handle func(ioevent.Event, time.Time)) error {
	var files []*os.File
	defer func() {
		for _, f := range files {
			ioctlInt(int(f.Fd()), evIocGrab, 0)
			f.Close()
		}
	}()

	epfd, err := unix.EpollCreate1(0)
	if err != nil {
		return &model.DeviceInitError{Cause: fmt.Errorf("linuxio: epoll_create1: %w", err)}
	}
	defer unix.Close(epfd)

	for _, path := range s.devicePaths {
		f, err := os.OpenFile(path, os.O_RDONLY, 0)
		if err != nil {
			return &model.DeviceInitError{Cause: fmt.Errorf("linuxio: opening %s: %w", path, err)}
		}
		if err := ioctlInt(int(f.Fd()), evIocGrab, 1); err != nil {
			f.Close()
			return &model.DeviceInitError{Cause: fmt.Errorf("linuxio: grabbing %s: %w", path, err)}
		}
		files = append(files, f)
		if err := unix.EpollCtl(epfd, unix.EPOLL_CTL_ADD, int(f.Fd()), &unix.EpollEvent{Events: unix.EPOLLIN, Fd: int32(f.Fd())}); err != nil {
			return &model.DeviceInitError{Cause: fmt.Errorf("linuxio: epoll_ctl %s: %w", path, err)}
		}
	}

	byFd := make(map[int32]*os.File, len(files))
	for _, f := range files {
		byFd[int32(f.Fd())] = f
	}

	events := make([]unix.EpollEvent, len(files))
	const evSize = int(unsafe.Sizeof(inputEvent{}))
	raw := make([]byte, evSize*16)

	for {
		if ctx.Err() != nil {
			return nil
		}
		n, err := unix.EpollWait(epfd, events, 250)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return &model.DeviceInitError{Cause: fmt.Errorf("linuxio: epoll_wait: %w", err)}
		}
		for i := 0; i < n; i++ {
			f, ok := byFd[events[i].Fd]
			if !ok {
				continue
			}
			read, err := f.Read(raw)
			if err != nil || read < evSize {
				continue
			}
			for off := 0; off+evSize <= read; off += evSize {
				ev := (*inputEvent)(unsafe.Pointer(&raw[off]))
				now := time.Now()
				s.translate(*ev, handle, now)
			}
		}
	}
}

func (s *Source) translate(ev inputEvent, handle func(ioevent.Event, time.Time), now time.Time) {
	switch ev.Type {
	case evKey:
		k, ok := keys.FromEvdevCode(int(ev.Code))
		if !ok {
			return
		}
		kind := ioevent.KeyUp
		if ev.Value != 0 {
			kind = ioevent.KeyDown
		}
		handle(ioevent.Event{Kind: kind, Key: k}, now)
	case evRel:
		switch ev.Code {
		case relX0:
			handle(ioevent.Event{Kind: ioevent.RelMouseAxis, Axis: model.AxisX, Delta: ev.Value}, now)
		case relY0:
			handle(ioevent.Event{Kind: ioevent.RelMouseAxis, Axis: model.AxisY, Delta: ev.Value}, now)
		}
	}
}
