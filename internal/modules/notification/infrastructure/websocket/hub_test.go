package websocket

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addClient(h *Hub, c *Client) {
	conns := h.clients[c.userID]
	if conns == nil {
		conns = make(map[*Client]bool)
		h.clients[c.userID] = conns
	}
	conns[c] = true
}

func TestHub_SendToUser_OnlyMatchingClientsReceive(t *testing.T) {
	h := NewHub()
	targetID := uuid.New()
	otherID := uuid.New()

	target := &Client{send: make(chan []byte, 1), userID: targetID}
	other := &Client{send: make(chan []byte, 1), userID: otherID}
	addClient(h, target)
	addClient(h, other)

	go h.Run()
	defer h.Stop()

	h.SendToUser(targetID, []byte("only-target"))

	select {
	case msg := <-target.send:
		assert.Equal(t, "only-target", string(msg))
	case <-time.After(2 * time.Second):
		t.Fatal("target did not receive message")
	}

	select {
	case <-other.send:
		t.Fatal("non-target client should not receive unicast")
	default:
	}
}

func TestHub_SendToUser_AllConnectionsOfUserReceive(t *testing.T) {
	h := NewHub()
	userID := uuid.New()

	first := &Client{send: make(chan []byte, 1), userID: userID}
	second := &Client{send: make(chan []byte, 1), userID: userID}
	addClient(h, first)
	addClient(h, second)

	go h.Run()
	defer h.Stop()

	h.SendToUser(userID, []byte("fan-out"))

	for _, c := range []*Client{first, second} {
		select {
		case msg := <-c.send:
			require.Equal(t, "fan-out", string(msg))
		case <-time.After(2 * time.Second):
			t.Fatal("connection did not receive message")
		}
	}
}

func TestHub_RegisterUnregister(t *testing.T) {
	h := NewHub()
	go h.Run()
	defer h.Stop()

	userID := uuid.New()
	client := &Client{hub: h, send: make(chan []byte, 1), userID: userID}

	h.register <- client
	h.SendToUser(userID, []byte("after-register"))
	select {
	case msg := <-client.send:
		require.Equal(t, "after-register", string(msg))
	case <-time.After(2 * time.Second):
		t.Fatal("registered client did not receive message")
	}

	h.unregister <- client
	// The hub closes the send channel on unregister.
	select {
	case _, open := <-client.send:
		assert.False(t, open)
	case <-time.After(2 * time.Second):
		t.Fatal("send channel was not closed on unregister")
	}
}

func TestHub_StopUnblocksSenders(t *testing.T) {
	h := NewHub()
	go h.Run()

	h.Stop()
	h.Stop() // idempotent

	done := make(chan struct{})
	go func() {
		h.SendToUser(uuid.New(), []byte("late"))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("SendToUser blocked after Stop")
	}
}
