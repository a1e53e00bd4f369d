package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/WangRL15/Health-Management-Web-Application/models"

	"github.com/gorilla/websocket"
)

// startHubServer registers one server-side client for userID. With pump false
// nothing drains the client's buffer, which models a stalled browser.
func startHubServer(t *testing.T, hub *RealtimeHub, userID uint, pump bool) *websocket.Conn {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		cl := NewWSClient(userID, conn)
		hub.Register(cl)
		if pump {
			go cl.WritePump(time.Minute)
		}
	}))
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount(userID) == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("client never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}
	return conn
}

func TestEntryServiceBroadcastsToOwnerOnly(t *testing.T) {
	ctx := context.Background()
	auth, store, _ := newTestAuth(t)
	alice := mustRegister(t, auth, "alice", "pw1", "a@x.com")
	bob := mustRegister(t, auth, "bob", "pw2", "b@x.com")

	hub := NewRealtimeHub()
	aliceConn := startHubServer(t, hub, alice, true)
	bobConn := startHubServer(t, hub, bob, true)

	svc := NewEntryService(store.DietLogs, hub, "diet")
	rec := &models.DietLog{Entry: models.Entry{UserID: alice}, Date: time.Now(), FoodName: "egg", Calories: ptr(90.0)}
	if err := svc.Create(ctx, alice, rec); err != nil {
		t.Fatalf("Create: %v", err)
	}

	_ = aliceConn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := aliceConn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var ev struct {
		Kind  string `json:"kind"`
		Entry struct {
			FoodName string `json:"food_name"`
		} `json:"entry"`
	}
	if err := json.Unmarshal(raw, &ev); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ev.Kind != "diet.created" || ev.Entry.FoodName != "egg" {
		t.Fatalf("unexpected event %s", raw)
	}

	_ = bobConn.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	if _, _, err := bobConn.ReadMessage(); err == nil {
		t.Fatalf("bob must not receive alice's event")
	}
}

func TestHubUnregister(t *testing.T) {
	hub := NewRealtimeHub()
	startHubServer(t, hub, 5, true)

	hub.mu.RLock()
	var c *WSClient
	for cl := range hub.clients[5] {
		c = cl
	}
	hub.mu.RUnlock()

	hub.Unregister(c)
	if hub.ClientCount(5) != 0 {
		t.Fatalf("expected no clients after unregister")
	}
}

func TestBroadcastDoesNotWaitForStalledClient(t *testing.T) {
	hub := NewRealtimeHub()
	startHubServer(t, hub, 7, false)

	start := time.Now()
	for i := 0; i < sendBuffer; i++ {
		hub.Broadcast(7, Event{Kind: "diet.created"})
	}
	if hub.ClientCount(7) != 1 {
		t.Fatalf("client within its buffer must stay registered")
	}

	hub.Broadcast(7, Event{Kind: "diet.created"})
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("broadcast blocked for %s", elapsed)
	}
	if hub.ClientCount(7) != 0 {
		t.Fatalf("client that fell behind must be dropped")
	}
}
