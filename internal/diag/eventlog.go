package diag

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/clemenscodes/joymouse/internal/model"
	"github.com/clemenscodes/joymouse/pkg/telemetry"
)

// EventLog is a thread-safe NDJSON writer mirroring every translated
// ControllerEvent for offline review. Write failures are reported to an
// optional fallback Logger rather than returned, since MirrorEvent sits
// on ControllerCore's hot path and must never block on I/O errors.
type EventLog struct {
	file     *os.File
	writer   *bufio.Writer
	mu       sync.Mutex
	fallback *Logger
}

// NewEventLog creates (or appends to) the NDJSON file at path.
func NewEventLog(path string, fallback *Logger) (*EventLog, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("diag: opening event log: %w", err)
	}
	return &EventLog{file: file, writer: bufio.NewWriter(file), fallback: fallback}, nil
}

// LogEvent encodes ev as a single JSON line.
func (e *EventLog) LogEvent(ev telemetry.Event) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("diag: marshal event: %w", err)
	}
	if _, err := e.writer.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("diag: write event: %w", err)
	}
	return e.writer.Flush()
}

// MirrorEvent implements controller.EventMirror: it renders a routed
// ControllerEvent as a telemetry.Event and logs it, swallowing any
// write failure after reporting it to the fallback logger.
func (e *EventLog) MirrorEvent(ev model.ControllerEvent) {
	rec := telemetry.Event{Timestamp: telemetry.EpochTime(time.Now())}
	switch {
	case ev.Button != nil:
		rec.EventType = telemetry.EventTypeControllerEvent.String()
		rec.EventLevel = telemetry.EventLevelButton.String()
		rec.Content = fmt.Sprintf("%s %s", ev.Button.Button, ev.Button.State)
		rec.Value = float64(ev.Button.State)
	case ev.JoyStick != nil:
		rec.EventType = telemetry.EventTypeControllerEvent.String()
		rec.EventLevel = telemetry.EventLevelAxis.String()
		rec.Content = fmt.Sprintf("%s %s %s", ev.JoyStick.Stick, ev.JoyStick.Axis, ev.JoyStick.State)
		rec.Value = ev.JoyStick.Polarity.Signed()
	default:
		return
	}
	if err := e.LogEvent(rec); err != nil && e.fallback != nil {
		e.fallback.Warn("diag: event log write failed: " + err.Error())
	}
}

// LogLifecycle records a one-off lifecycle marker (startup, shutdown,
// device reconnect) outside the per-event hot path.
func (e *EventLog) LogLifecycle(content string) {
	rec := telemetry.Event{
		Timestamp:  telemetry.EpochTime(time.Now()),
		EventType:  telemetry.EventTypeLifecycle.String(),
		EventLevel: telemetry.EventLevelLog.String(),
		Content:    content,
	}
	if err := e.LogEvent(rec); err != nil && e.fallback != nil {
		e.fallback.Warn("diag: lifecycle event write failed: " + err.Error())
	}
}

// Close flushes and closes the underlying file.
func (e *EventLog) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.writer.Flush(); err != nil {
		return fmt.Errorf("diag: flushing event log: %w", err)
	}
	return e.file.Close()
}
