package broadcast

import "time"

// EventType names a WebSocket push event, per spec.md §6's event
// table.
type EventType string

const (
	EventConnected    EventType = "connected"
	EventSubscribed   EventType = "subscribed"
	EventUnsubscribed EventType = "unsubscribed"
	EventPong         EventType = "pong"
	EventGameUpdated  EventType = "game:updated"
	EventPlayerJoined EventType = "player:joined"
	EventGameStarted  EventType = "game:started"
	EventGameEnded    EventType = "game:ended"
	EventTurnEnded    EventType = "turn:ended"
)

// Event is the envelope every WebSocket push shares, per spec.md §6's
// server-to-client contract `{event, game_id?, data, timestamp}`.
type Event struct {
	Type      EventType   `json:"event"`
	GameID    string      `json:"game_id,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// stamp sets Timestamp to now if it hasn't already been set, so every
// code path that builds an Event (handler publishes, connection acks)
// gets one without repeating time.Now() at every call site.
func (e Event) stamp() Event {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	return e
}
