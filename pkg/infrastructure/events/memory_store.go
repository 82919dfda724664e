package events

import (
	"fmt"
	"sync"
)

// InMemoryStore keeps events in process memory. Streams are keyed by run ID;
// each stream is versioned independently.
type InMemoryStore struct {
	streams     map[string][]Event
	subscribers map[string][]Handler
	allEvents   []Event
	mutex       sync.RWMutex
}

// NewInMemoryStore creates an empty in-memory event store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		streams:     make(map[string][]Event),
		subscribers: make(map[string][]Handler),
		allEvents:   make([]Event, 0),
	}
}

var _ Store = (*InMemoryStore)(nil)

// Append adds an event to the run's stream, assigning the next version
func (s *InMemoryStore) Append(runID string, event Event) error {
	s.mutex.Lock()

	event.RunID = runID
	event.Version = len(s.streams[runID]) + 1

	s.streams[runID] = append(s.streams[runID], event)
	s.allEvents = append(s.allEvents, event)
	s.mutex.Unlock()

	s.notifySubscribers(event)
	return nil
}

// ReadRun returns the events of a single run in append order
func (s *InMemoryStore) ReadRun(runID string) ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	stream, exists := s.streams[runID]
	if !exists {
		return []Event{}, nil
	}

	out := make([]Event, len(stream))
	copy(out, stream)
	return out, nil
}

// ReadAll returns every stored event across runs in append order
func (s *InMemoryStore) ReadAll() ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]Event, len(s.allEvents))
	copy(out, s.allEvents)
	return out, nil
}

// Subscribe registers a handler for the given event types
func (s *InMemoryStore) Subscribe(eventTypes []string, handler Handler) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, eventType := range eventTypes {
		s.subscribers[eventType] = append(s.subscribers[eventType], handler)
	}
	return nil
}

func (s *InMemoryStore) notifySubscribers(event Event) {
	s.mutex.RLock()
	handlers := s.subscribers[event.EventType]
	s.mutex.RUnlock()

	for _, handler := range handlers {
		if handler.CanHandle(event.EventType) {
			if err := handler.Handle(event); err != nil {
				fmt.Printf("Error handling event %s: %v\n", event.EventType, err)
			}
		}
	}
}
