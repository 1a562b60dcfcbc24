package ws

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"go-pos-ledger/internal/logger"
)

type fakeConn struct {
	mu     sync.Mutex
	msgs   [][]byte
	closed bool
	fail   bool
}

func (c *fakeConn) WriteMessage(_ int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return errors.New("broken pipe")
	}
	c.msgs = append(c.msgs, data)
	return nil
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeConn) messages() [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([][]byte(nil), c.msgs...)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("Timed out waiting for condition")
}

func TestHub_PublishReachesClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(logger.Discard())
	go hub.Run(ctx)

	conn := &fakeConn{}
	hub.Register <- conn
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	hub.Publish("loan", "payment_recorded", map[string]int{"id": 1})
	waitFor(t, func() bool { return len(conn.messages()) == 1 })

	var ev Event
	if err := json.Unmarshal(conn.messages()[0], &ev); err != nil {
		t.Fatalf("Failed to decode event: %v", err)
	}
	if ev.Type != "loan" || ev.Action != "payment_recorded" || ev.ID == "" {
		t.Errorf("Unexpected event %+v", ev)
	}
}

func TestHub_DropsBrokenClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(logger.Discard())
	go hub.Run(ctx)

	broken := &fakeConn{fail: true}
	hub.Register <- broken
	waitFor(t, func() bool { return hub.ClientCount() == 1 })
	hub.Publish("sale", "created", nil)

	waitFor(t, func() bool { return hub.ClientCount() == 0 })
	broken.mu.Lock()
	defer broken.mu.Unlock()
	if !broken.closed {
		t.Error("Expected broken client to be closed")
	}
}

func TestHub_StopClosesClientsAndUnblocksPublish(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(logger.Discard())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()

	conn := &fakeConn{}
	hub.Register <- conn
	cancel()
	<-stopped

	conn.mu.Lock()
	closed := conn.closed
	conn.mu.Unlock()
	if !closed {
		t.Error("Expected client to be closed on shutdown")
	}
	// must not leak a blocked sender
	hub.Publish("user", "deleted", nil)
}

func TestHub_PublishKeepsOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(logger.Discard())
	go hub.Run(ctx)

	conn := &fakeConn{}
	hub.Register <- conn
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	const n = 50
	for i := 1; i <= n; i++ {
		hub.Publish("loan", "payment_recorded", map[string]int{"seq": i})
	}
	waitFor(t, func() bool { return len(conn.messages()) == n })

	for i, raw := range conn.messages() {
		var ev struct {
			Data struct {
				Seq int `json:"seq"`
			} `json:"data"`
		}
		if err := json.Unmarshal(raw, &ev); err != nil {
			t.Fatalf("Failed to decode event: %v", err)
		}
		if ev.Data.Seq != i+1 {
			t.Fatalf("Expected event %d at position %d, got %d", i+1, i, ev.Data.Seq)
		}
	}
}
