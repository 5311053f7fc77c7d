package feed

import (
	"testing"

	"ScoreScreenApi/internal/assert"
)

func TestEventMarshal(t *testing.T) {
	event := Event{
		Type:   EventResultPosted,
		Replay: "a1b2c3",
		Detail: map[string]any{"team": 1, "result": "Win"},
	}

	message, err := event.marshal()
	assert.NilError(t, err)
	assert.StringContains(t, string(message), `"type":"replay.result"`)
	assert.StringContains(t, string(message), `"replay":"a1b2c3"`)
	assert.StringContains(t, string(message), `"result":"Win"`)
}

func TestEventMarshalOmitsEmptyDetail(t *testing.T) {
	event := Event{Type: EventReplayDecoded, Replay: "a1b2c3"}

	message, err := event.marshal()
	assert.NilError(t, err)
	assert.Equal(t, string(message), `{"type":"replay.decoded","replay":"a1b2c3"}`)
}

func TestRegistryRoomsAreKeyedByPin(t *testing.T) {
	registry := NewRegistry()

	first := registry.Room("a1b2c3")
	second := registry.Room("a1b2c3")
	other := registry.Room("d4e5f6")

	assert.Equal(t, first, second)
	if first == other {
		t.Errorf("distinct pins share a hub")
	}

	registry.Close("a1b2c3")
	reopened := registry.Room("a1b2c3")
	if reopened == first {
		t.Errorf("closed hub was handed out again")
	}
	registry.Close("a1b2c3")
	registry.Close("d4e5f6")
}

func TestPublishWithoutRoomIsDropped(t *testing.T) {
	registry := NewRegistry()

	// Must not panic or start a hub.
	registry.Publish("nobody", Event{Type: EventReplayDecoded, Replay: "nobody"})

	registry.mu.Lock()
	defer registry.mu.Unlock()
	assert.Equal(t, len(registry.rooms), 0)
}
