package events

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/nickovin/weblarek-go/pkg/codec"
	"github.com/nickovin/weblarek-go/pkg/failfast"
	"github.com/nickovin/weblarek-go/pkg/logging"
)

// Frame is the wire form of a mirrored event.
type Frame struct {
	Topic   string `json:"topic"`
	Payload any    `json:"payload"`
}

// WSBridge mirrors bus traffic matching a pattern out to websocket
// clients as JSON frames. It is read-only towards the bus: clients
// observe events, they cannot inject them.
type WSBridge struct {
	bus      *Bus
	logger   logging.Logger
	upgrader websocket.Upgrader

	mu          sync.Mutex
	clients     map[*websocket.Conn]struct{}
	unsubscribe func()
}

// NewWSBridge attaches a bridge to the bus for all topics covered by
// pattern (use the "*" wildcard for everything).
func NewWSBridge(bus *Bus, pattern string, logger logging.Logger) *WSBridge {
	failfast.NotNil(bus, "bus")
	failfast.NotNil(logger, "logger")

	b := &WSBridge{
		bus:    bus,
		logger: logger,
		upgrader: websocket.Upgrader{
			// Development tool; origin checks are the frontend's business.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]struct{}),
	}
	b.unsubscribe = bus.Subscribe(pattern, b.broadcast)
	return b
}

// HandleWebSocket upgrades the request and registers the client.
func (b *WSBridge) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		b.logger.Errorf("ws: upgrade failed: %v", err)
		return
	}

	b.mu.Lock()
	b.clients[conn] = struct{}{}
	b.mu.Unlock()

	go b.drain(conn)
}

// drain consumes client frames until the connection dies; inbound data
// is discarded.
func (b *WSBridge) drain(conn *websocket.Conn) {
	defer b.remove(conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				b.logger.Debugf("ws: read: %v", err)
			}
			return
		}
	}
}

func (b *WSBridge) remove(conn *websocket.Conn) {
	b.mu.Lock()
	delete(b.clients, conn)
	b.mu.Unlock()
	conn.Close()
}

func (b *WSBridge) broadcast(topic string, payload any) {
	data, err := codec.Marshal(Frame{Topic: topic, Payload: payload})
	if err != nil {
		b.logger.Errorf("ws: encode %s: %v", topic, err)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for conn := range b.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			b.logger.Debugf("ws: write: %v", err)
			delete(b.clients, conn)
			conn.Close()
		}
	}
}

// ClientCount reports how many clients are connected.
func (b *WSBridge) ClientCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.clients)
}

// Close detaches the bridge from the bus and drops all clients.
func (b *WSBridge) Close() {
	b.unsubscribe()
	b.mu.Lock()
	defer b.mu.Unlock()
	for conn := range b.clients {
		conn.Close()
	}
	b.clients = make(map[*websocket.Conn]struct{})
}
