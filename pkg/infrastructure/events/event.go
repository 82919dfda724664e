package events

import "time"

// Event is a single audit record emitted by a pipeline run. Events are
// grouped into streams keyed by run ID and versioned within their stream.
type Event struct {
	EventType string      `json:"event_type"`
	RunID     string      `json:"run_id"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
	Version   int         `json:"version"`
}

// Handler receives events it has subscribed to
type Handler interface {
	Handle(event Event) error
	CanHandle(eventType string) bool
}

// Store persists pipeline events for later inspection
type Store interface {
	Append(runID string, event Event) error
	ReadRun(runID string) ([]Event, error)
	ReadAll() ([]Event, error)
	Subscribe(eventTypes []string, handler Handler) error
}

// New creates an unversioned event; the store assigns the version on append
func New(eventType, runID string, data interface{}) Event {
	return Event{
		EventType: eventType,
		RunID:     runID,
		Data:      data,
		Timestamp: time.Now(),
	}
}
