// Package ioevent defines the thin contract between the core motion
// engine and its OS-specific collaborators: the PhysicalEventSource that
// yields raw key/mouse events, and the VirtualGamepadSink that accepts
// canonical button/axis updates. Everything in this package is data and
// interfaces only -- no OS calls live here.
package ioevent

import (
	"context"
	"time"

	"github.com/clemenscodes/joymouse/internal/keys"
	"github.com/clemenscodes/joymouse/internal/model"
)

// Kind distinguishes the three raw physical events a source can report.
type Kind int

const (
	KeyDown Kind = iota
	KeyUp
	RelMouseAxis
)

func (k Kind) String() string {
	switch k {
	case KeyDown:
		return "key_down"
	case KeyUp:
		return "key_up"
	case RelMouseAxis:
		return "rel_mouse_axis"
	default:
		return "unknown"
	}
}

// Event is a single raw physical event. Key is valid for KeyDown/KeyUp;
// Axis and Delta are valid for RelMouseAxis. Delta is the raw signed
// relative motion reported by the device, not yet normalised.
type Event struct {
	Kind  Kind
	Key   keys.Key
	Axis  model.Axis
	Delta int32
}

// Source is implemented once per OS (and once for the development
// adapter) and is driven by the ingestion goroutine. Run blocks,
// invoking handle for every event it reads, until ctx is cancelled or
// the underlying device closes. Implementations must return promptly
// once ctx.Done() fires.
type Source interface {
	Run(ctx context.Context, handle func(Event, time.Time)) error
}

// Sink is implemented once per OS and is driven by every goroutine that
// touches the controller: the ingestion goroutine (per input event) and
// both tick drivers (per tick publish). Emit must be safe to call
// from multiple goroutines serialised by the caller's lock; it need not
// be internally synchronised.
type Sink interface {
	Emit(events []model.CanonicalEvent) error
	Disconnect() error
}
