package broadcast

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"monopoly-backend/internal/logger"
)

// channelName is the Redis pub/sub channel every server instance
// publishes game events to and subscribes from, so a broadcast
// triggered on one instance reaches clients connected to another.
const channelName = "game_events"

// queueKey backs up published events to a list as well, so a
// consumer that was briefly disconnected from pub/sub can still
// replay what it missed, per spec.md §4.6's durability note.
const queueKey = "game_events_queue"

const maxQueueLen = 1000

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub owns the set of live connections, grouped by the game they are
// subscribed to, and relays events across instances via Redis
// pub/sub.
type Hub struct {
	register   chan *Connection
	unregister chan *Connection
	subs       chan subscription
	publish    chan publishRequest

	connections map[*Connection]bool
	byGame      map[string]map[*Connection]bool

	redis      *redis.Client
	instanceID string
}

type subscription struct {
	conn   *Connection
	gameID string
	remove bool
}

// publishRequest carries one event through the hub's event loop.
// fromRedis marks an event relayed in from another instance: it is
// delivered to local connections but never re-published, so each event
// reaches a given connection at most once. This instance's own events
// echoed back by Redis are dropped in relayFromRedis and never arrive
// here.
type publishRequest struct {
	event     Event
	fromRedis bool
}

// redisEnvelope is the wire shape published to the cross-instance
// channel, per spec.md §6: `{type, game_id?, event, data, timestamp}`.
// Origin identifies the publishing instance so relayFromRedis can skip
// redelivering an event this same instance already delivered locally.
type redisEnvelope struct {
	Type      string      `json:"type"`
	GameID    string      `json:"game_id,omitempty"`
	Event     EventType   `json:"event"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Origin    string      `json:"origin"`
}

// NewHub creates a hub backed by a Redis client used for cross-
// instance relay. Call Run in its own goroutine before serving
// connections.
func NewHub(client *redis.Client) *Hub {
	return &Hub{
		register:    make(chan *Connection),
		unregister:  make(chan *Connection),
		subs:        make(chan subscription),
		publish:     make(chan publishRequest, 256),
		connections: make(map[*Connection]bool),
		byGame:      make(map[string]map[*Connection]bool),
		redis:       client,
		instanceID:  uuid.New().String(),
	}
}

// Run drives the hub's event loop and the Redis subscription relay.
// Intended to run for the lifetime of the process.
func (h *Hub) Run(ctx context.Context) {
	go h.relayFromRedis(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case c := <-h.register:
			h.connections[c] = true
			c.Deliver(Event{Type: EventConnected}.stamp())
		case c := <-h.unregister:
			if _, ok := h.connections[c]; ok {
				delete(h.connections, c)
				if group, ok := h.byGame[c.gameID]; ok {
					delete(group, c)
					if len(group) == 0 {
						delete(h.byGame, c.gameID)
					}
				}
				c.closeSend()
			}
		case s := <-h.subs:
			h.applySubscription(s)
		case req := <-h.publish:
			h.deliverLocally(req.event)
			if !req.fromRedis {
				h.publishToRedis(ctx, req.event)
			}
		}
	}
}

func (h *Hub) applySubscription(s subscription) {
	if s.remove {
		if group, ok := h.byGame[s.gameID]; ok {
			delete(group, s.conn)
		}
		if s.conn.gameID == s.gameID {
			s.conn.gameID = ""
		}
		return
	}
	group, ok := h.byGame[s.gameID]
	if !ok {
		group = make(map[*Connection]bool)
		h.byGame[s.gameID] = group
	}
	group[s.conn] = true
	s.conn.gameID = s.gameID
}

func (h *Hub) deliverLocally(e Event) {
	group, ok := h.byGame[e.GameID]
	if !ok {
		return
	}
	for c := range group {
		c.Deliver(e)
	}
}

// subscribe and unsubscribe are called from a connection's read pump.
func (h *Hub) subscribe(c *Connection, gameID string) {
	h.subs <- subscription{conn: c, gameID: gameID}
}

func (h *Hub) unsubscribe(c *Connection, gameID string) {
	h.subs <- subscription{conn: c, gameID: gameID, remove: true}
}

// Publish delivers an event to every connection on this instance
// subscribed to e.GameID, and relays it to every other instance via
// Redis. This instance's own relay subscription echoes the same
// event back, but relayFromRedis recognizes and drops its own origin
// so the event is never delivered to a local connection twice.
func (h *Hub) Publish(e Event) {
	h.publish <- publishRequest{event: e.stamp(), fromRedis: false}
}

func (h *Hub) publishToRedis(ctx context.Context, e Event) {
	envType := "global_event"
	if e.GameID != "" {
		envType = "game_event"
	}
	envelope := redisEnvelope{
		Type:      envType,
		GameID:    e.GameID,
		Event:     e.Type,
		Data:      e.Data,
		Timestamp: e.Timestamp,
		Origin:    h.instanceID,
	}
	data, err := json.Marshal(envelope)
	if err != nil {
		logger.Error("failed to marshal broadcast event", zap.Error(err))
		return
	}
	if err := h.redis.Publish(ctx, channelName, data).Err(); err != nil {
		logger.Warn("failed to publish broadcast event to redis", zap.Error(err))
	}
	pipe := h.redis.TxPipeline()
	pipe.LPush(ctx, queueKey, data)
	pipe.LTrim(ctx, queueKey, 0, maxQueueLen-1)
	if _, err := pipe.Exec(ctx); err != nil {
		logger.Warn("failed to append broadcast event to backup queue", zap.Error(err))
	}
}

// relayFromRedis subscribes to the cross-instance channel and
// redelivers events to this instance's own local connections, so a
// broadcast triggered on another instance still reaches clients here.
// Envelopes this instance itself published are skipped: Publish
// already delivered them locally before relaying.
func (h *Hub) relayFromRedis(ctx context.Context) {
	sub := h.redis.Subscribe(ctx, channelName)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var envelope redisEnvelope
			if err := json.Unmarshal([]byte(msg.Payload), &envelope); err != nil {
				logger.Warn("failed to unmarshal relayed broadcast event", zap.Error(err))
				continue
			}
			if envelope.Origin == h.instanceID {
				continue
			}
			e := Event{Type: envelope.Event, GameID: envelope.GameID, Data: envelope.Data, Timestamp: envelope.Timestamp}
			h.publish <- publishRequest{event: e, fromRedis: true}
		}
	}
}

// ServeWS upgrades an HTTP request to a WebSocket and registers the
// resulting connection with the hub.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, connID string) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	c := newConnection(connID, conn, h)
	h.register <- c

	go c.WritePump()
	go c.ReadPump()
	return nil
}
