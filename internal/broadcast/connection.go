package broadcast

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"monopoly-backend/internal/logger"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024
)

// inboundMessage is the shape of a client-to-server WebSocket frame:
// subscribe/unsubscribe/ping, per spec.md §6.
type inboundMessage struct {
	Action string `json:"action"`
	GameID string `json:"game_id,omitempty"`
}

// Connection wraps one client's WebSocket, pumping reads and writes on
// dedicated goroutines the way the teacher's core.Connection does.
type Connection struct {
	ID     string
	conn   *websocket.Conn
	send   chan Event
	hub    *Hub
	gameID string

	mu         sync.RWMutex
	closeOnce  sync.Once
	done       chan struct{}
	sendClosed bool
}

func newConnection(id string, conn *websocket.Conn, hub *Hub) *Connection {
	return &Connection{
		ID:   id,
		conn: conn,
		send: make(chan Event, 256),
		hub:  hub,
		done: make(chan struct{}),
	}
}

func (c *Connection) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.conn.Close()
	})
}

func (c *Connection) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.sendClosed {
		close(c.send)
		c.sendClosed = true
	}
}

// Deliver queues an event for this connection, dropping it if the
// send buffer is full rather than blocking the hub.
func (c *Connection) Deliver(e Event) {
	c.mu.RLock()
	closed := c.sendClosed
	c.mu.RUnlock()
	if closed {
		return
	}
	select {
	case c.send <- e:
	case <-c.done:
	default:
		logger.WithClientContext(c.ID, "", c.gameID).Warn("connection send buffer full, dropping event")
	}
}

// ReadPump reads subscribe/unsubscribe/ping frames until the
// connection closes, handing each to the hub for processing.
func (c *Connection) ReadPump() {
	defer func() {
		c.hub.unregister <- c
		c.close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var msg inboundMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.WithClientContext(c.ID, "", c.gameID).Warn("websocket read error", zap.Error(err))
			}
			return
		}
		c.handle(msg)
	}
}

func (c *Connection) handle(msg inboundMessage) {
	switch msg.Action {
	case "subscribe":
		c.hub.subscribe(c, msg.GameID)
		c.Deliver(Event{Type: EventSubscribed, GameID: msg.GameID}.stamp())
	case "unsubscribe":
		c.hub.unsubscribe(c, msg.GameID)
		c.Deliver(Event{Type: EventUnsubscribed, GameID: msg.GameID}.stamp())
	case "ping":
		c.Deliver(Event{Type: EventPong}.stamp())
	default:
		logger.Debug("unknown websocket action", zap.String("action", msg.Action))
	}
}

// WritePump pumps queued events to the client and keeps the
// connection alive with periodic pings.
func (c *Connection) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case event, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(event); err != nil {
				logger.WithClientContext(c.ID, "", c.gameID).Warn("websocket write error", zap.Error(err))
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.done:
			return
		}
	}
}
