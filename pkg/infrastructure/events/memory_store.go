package events

import "sync"

// InMemoryEventStore keeps events per stream and in global append order.
// It is never durable; the log resets with the process.
type InMemoryEventStore struct {
	mu        sync.RWMutex
	streams   map[string][]Event
	allEvents []Event
}

// NewInMemoryEventStore creates an empty event store
func NewInMemoryEventStore() *InMemoryEventStore {
	return &InMemoryEventStore{
		streams: make(map[string][]Event),
	}
}

// AppendEvent records an event on its stream, assigning the stream version
func (s *InMemoryEventStore) AppendEvent(streamID string, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	versioned := BaseEvent{
		EventType:    event.Type(),
		Stream:       streamID,
		EventData:    event.Data(),
		EventTime:    event.Timestamp(),
		EventVersion: len(s.streams[streamID]) + 1,
	}

	s.streams[streamID] = append(s.streams[streamID], versioned)
	s.allEvents = append(s.allEvents, versioned)
	return nil
}

// ReadEvents returns a stream's events starting at fromVersion (1-based)
func (s *InMemoryEventStore) ReadEvents(streamID string, fromVersion int) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stream, exists := s.streams[streamID]
	if !exists {
		return []Event{}, nil
	}
	if fromVersion < 1 {
		fromVersion = 1
	}
	if fromVersion > len(stream) {
		return []Event{}, nil
	}

	out := make([]Event, len(stream)-fromVersion+1)
	copy(out, stream[fromVersion-1:])
	return out, nil
}

// ReadRecent returns up to limit events, newest last
func (s *InMemoryEventStore) ReadRecent(limit int) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.allEvents) {
		limit = len(s.allEvents)
	}

	out := make([]Event, limit)
	copy(out, s.allEvents[len(s.allEvents)-limit:])
	return out, nil
}
