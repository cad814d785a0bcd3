// Package events records what happened to the cafe's entities as an
// append-only in-memory log. The presentation layer reads it as an activity
// feed; nothing in the core depends on it for correctness, since callers
// re-fetch collection state after every mutation.
package events

import "time"

// Event is one recorded domain occurrence
type Event interface {
	Type() string
	StreamID() string
	Data() interface{}
	Timestamp() time.Time
	Version() int
}

// BaseEvent is the concrete event carried by the store
type BaseEvent struct {
	EventType    string      `json:"type"`
	Stream       string      `json:"stream"`
	EventData    interface{} `json:"data"`
	EventTime    time.Time   `json:"time"`
	EventVersion int         `json:"version"`
}

func (e BaseEvent) Type() string         { return e.EventType }
func (e BaseEvent) StreamID() string     { return e.Stream }
func (e BaseEvent) Data() interface{}    { return e.EventData }
func (e BaseEvent) Timestamp() time.Time { return e.EventTime }
func (e BaseEvent) Version() int         { return e.EventVersion }

// NewEvent creates an event stamped with the current time. The store assigns
// the per-stream version on append.
func NewEvent(eventType, streamID string, data interface{}) Event {
	return BaseEvent{
		EventType: eventType,
		Stream:    streamID,
		EventData: data,
		EventTime: time.Now(),
	}
}
