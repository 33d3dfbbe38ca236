package telemetry

// EventType distinguishes the structured-event-log record kinds.
type EventType int

const (
	EventTypeControllerEvent EventType = iota
	EventTypeLifecycle
)

func (e EventType) String() string {
	switch e {
	case EventTypeControllerEvent:
		return "CONTROLLER_EVENT"
	case EventTypeLifecycle:
		return "LIFECYCLE"
	default:
		return "UNKNOWN"
	}
}

// EventLevel classifies a record for filtering during offline review.
type EventLevel int

const (
	EventLevelLog EventLevel = iota
	EventLevelWarning
	EventLevelError
	EventLevelButton
	EventLevelAxis
)

func (e EventLevel) String() string {
	switch e {
	case EventLevelLog:
		return "LOG"
	case EventLevelWarning:
		return "WARNING"
	case EventLevelError:
		return "ERROR"
	case EventLevelButton:
		return "BUTTON"
	case EventLevelAxis:
		return "AXIS"
	default:
		return "UNKNOWN"
	}
}

// Event is one NDJSON record: a ControllerEvent translation, or a
// lifecycle marker (startup, shutdown, recentre).
type Event struct {
	Timestamp  EpochTime `json:"timestamp"`
	EventType  string    `json:"eventType"`
	EventLevel string    `json:"eventLevel"`
	Content    string    `json:"content"`
	Value      float64   `json:"value"`
}
