package feed

import json2 "encoding/json"

type EventType string

const (
	EventReplayDecoded EventType = "replay.decoded"
	EventResultPosted  EventType = "replay.result"
	EventSummaryReady  EventType = "replay.summary"
	EventReplayDeleted EventType = "replay.deleted"
)

// Event is one feed notification. Detail carries the event-specific payload
// and must marshal cleanly; watchers receive the whole event as one JSON
// object.
type Event struct {
	Type   EventType `json:"type"`
	Replay string    `json:"replay"`
	Detail any       `json:"detail,omitempty"`
}

func (e Event) marshal() ([]byte, error) {
	return json2.Marshal(e)
}
