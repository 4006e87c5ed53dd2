package events

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/nickovin/weblarek-go/pkg/codec"
	"github.com/nickovin/weblarek-go/pkg/logging"
)

func dialBridge(t *testing.T, bridge *WSBridge) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(bridge.HandleWebSocket))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	// Registration completes just after the handshake; wait for it.
	deadline := time.Now().Add(time.Second)
	for bridge.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(time.Millisecond)
	}
	return conn
}

func TestWSBridgeMirrorsMatchingEvents(t *testing.T) {
	bus := NewBus()
	bridge := NewWSBridge(bus, "*:changed", logging.Discard())
	defer bridge.Close()

	conn := dialBridge(t, bridge)

	bus.Emit("basket:open", nil)        // not covered by the pattern
	bus.Emit("basket:changed", map[string]any{"total": 100})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var frame Frame
	if err := codec.Unmarshal(data, &frame); err != nil {
		t.Fatalf("decode frame: %v", err)
	}
	if frame.Topic != "basket:changed" {
		t.Errorf("first mirrored topic = %q, want basket:changed (basket:open is outside the pattern)", frame.Topic)
	}
}

func TestWSBridgeCloseDetaches(t *testing.T) {
	bus := NewBus()
	bridge := NewWSBridge(bus, Wildcard, logging.Discard())

	if n := bus.SubscriberCount("basket:changed"); n != 1 {
		t.Fatalf("SubscriberCount = %d, want 1", n)
	}
	bridge.Close()
	if n := bus.SubscriberCount("basket:changed"); n != 0 {
		t.Errorf("SubscriberCount after Close = %d, want 0", n)
	}
	if bridge.ClientCount() != 0 {
		t.Error("Close must drop all clients")
	}
}
