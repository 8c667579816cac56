package broadcast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplySubscription_AddsAndRemoves(t *testing.T) {
	h := NewHub(nil)
	conn := &Connection{ID: "c1", send: make(chan Event, 4), done: make(chan struct{})}

	h.applySubscription(subscription{conn: conn, gameID: "game-1"})
	assert.Contains(t, h.byGame["game-1"], conn)
	assert.Equal(t, "game-1", conn.gameID)

	h.applySubscription(subscription{conn: conn, gameID: "game-1", remove: true})
	assert.NotContains(t, h.byGame["game-1"], conn)
	assert.Equal(t, "", conn.gameID)
}

func TestDeliverLocally_OnlyReachesSubscribedConnections(t *testing.T) {
	h := NewHub(nil)
	inGame := &Connection{ID: "in", send: make(chan Event, 4), done: make(chan struct{})}
	outOfGame := &Connection{ID: "out", send: make(chan Event, 4), done: make(chan struct{})}

	h.applySubscription(subscription{conn: inGame, gameID: "game-1"})

	h.deliverLocally(Event{Type: EventGameUpdated, GameID: "game-1"})

	select {
	case e := <-inGame.send:
		assert.Equal(t, EventGameUpdated, e.Type)
	default:
		t.Fatal("expected subscribed connection to receive event")
	}

	select {
	case <-outOfGame.send:
		t.Fatal("unsubscribed connection should not receive event")
	default:
	}
}

func TestDeliver_DropsWhenBufferFull(t *testing.T) {
	conn := &Connection{ID: "c1", send: make(chan Event, 1), done: make(chan struct{})}
	conn.Deliver(Event{Type: EventPong})
	conn.Deliver(Event{Type: EventPong}) // buffer full, dropped rather than blocking

	assert.Len(t, conn.send, 1)
}

func TestDeliver_NoOpAfterSendClosed(t *testing.T) {
	conn := &Connection{ID: "c1", send: make(chan Event, 1), done: make(chan struct{})}
	conn.closeSend()
	conn.Deliver(Event{Type: EventPong}) // must not panic on a closed channel
	assert.True(t, conn.sendClosed)
}

func TestNewHub_AssignsDistinctInstanceIDs(t *testing.T) {
	a := NewHub(nil)
	b := NewHub(nil)
	assert.NotEmpty(t, a.instanceID)
	assert.NotEqual(t, a.instanceID, b.instanceID)
}
