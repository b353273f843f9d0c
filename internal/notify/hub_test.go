//go:build unit

package notify

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub()
	go hub.Run()
	t.Cleanup(hub.Stop)
	return hub
}

func newTestClient(hub *Hub, userID uuid.UUID, buffer int) *Client {
	return &Client{
		hub:    hub,
		send:   make(chan []byte, buffer),
		userID: userID,
	}
}

func receive(t *testing.T, client *Client) Envelope {
	t.Helper()
	select {
	case raw := <-client.send:
		var envelope Envelope
		require.NoError(t, json.Unmarshal(raw, &envelope))
		return envelope
	case <-time.After(time.Second):
		t.Fatal("no message received")
		return Envelope{}
	}
}

func waitRegistered(t *testing.T, hub *Hub, userID uuid.UUID, count int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		hub.mu.RLock()
		n := len(hub.userClients[userID])
		hub.mu.RUnlock()
		if n == count {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("expected %d registered clients for %s", count, userID)
}

func TestHubEmit(t *testing.T) {
	t.Run("delivers to every session of the user", func(t *testing.T) {
		hub := startHub(t)
		userID := uuid.New()
		first := newTestClient(hub, userID, 8)
		second := newTestClient(hub, userID, 8)
		first.Register()
		second.Register()
		waitRegistered(t, hub, userID, 2)

		hub.Emit(userID, EventEquipmentReturned, ReturnedPayload{
			EquipmentName:    "Laptop",
			ReturnedQuantity: 2,
			Message:          "Equipment RETURNED: 2 → Laptop",
		})

		for _, client := range []*Client{first, second} {
			envelope := receive(t, client)
			assert.Equal(t, EventEquipmentReturned, envelope.Type)
			assert.False(t, envelope.Timestamp.IsZero())

			payload, ok := envelope.Payload.(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "Laptop", payload["equipment_name"])
			assert.Equal(t, "Equipment RETURNED: 2 → Laptop", payload["message"])
		}
	})

	t.Run("other users receive nothing", func(t *testing.T) {
		hub := startHub(t)
		userID := uuid.New()
		client := newTestClient(hub, userID, 8)
		client.Register()
		waitRegistered(t, hub, userID, 1)

		hub.Emit(uuid.New(), EventEquipmentReturned, ReturnedPayload{})

		select {
		case <-client.send:
			t.Fatal("message delivered to the wrong user")
		case <-time.After(50 * time.Millisecond):
		}
	})

	t.Run("no session is not an error", func(t *testing.T) {
		hub := startHub(t)
		hub.Emit(uuid.New(), EventEquipmentReturned, ReturnedPayload{})
	})

	t.Run("drops messages for a slow session", func(t *testing.T) {
		hub := startHub(t)
		userID := uuid.New()
		client := newTestClient(hub, userID, 1)
		client.Register()
		waitRegistered(t, hub, userID, 1)

		hub.Emit(userID, EventEquipmentReturned, ReturnedPayload{ReturnedQuantity: 1})
		// Buffer is full now; this must not block the caller.
		hub.Emit(userID, EventEquipmentReturned, ReturnedPayload{ReturnedQuantity: 2})

		envelope := receive(t, client)
		payload, ok := envelope.Payload.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(1), payload["returned_quantity"])
		assert.Empty(t, client.send)
	})
}

func TestHubUnregister(t *testing.T) {
	hub := startHub(t)
	userID := uuid.New()
	client := newTestClient(hub, userID, 8)
	client.Register()
	waitRegistered(t, hub, userID, 1)

	hub.unregister <- client
	waitRegistered(t, hub, userID, 0)

	// The hub closed the channel on unregister.
	_, open := <-client.send
	assert.False(t, open)

	hub.Emit(userID, EventEquipmentReturned, ReturnedPayload{})
}
