package realtime

import (
	"net"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"teamboard/internal/models"
)

// pipeListener wires one hub-side Conn to a reader goroutine on the
// other end of a net.Pipe.
func pipeListener(t *testing.T) (*Conn, chan models.Message) {
	t.Helper()
	server, client := net.Pipe()
	received := make(chan models.Message, 4)
	go func() {
		peer := NewConn(client)
		for {
			var msg models.Message
			if err := peer.ReadJSON(&msg); err != nil {
				close(received)
				return
			}
			received <- msg
		}
	}()
	return NewConn(server), received
}

func waitForMessage(t *testing.T, ch chan models.Message) models.Message {
	t.Helper()
	select {
	case msg, ok := <-ch:
		if !ok {
			t.Fatal("connection closed before a message arrived")
		}
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a broadcast")
	}
	return models.Message{}
}

func TestBroadcastReachesAllListeners(t *testing.T) {
	hub := NewBoardHub()

	first, firstCh := pipeListener(t)
	second, secondCh := pipeListener(t)
	hub.Register(first)
	hub.Register(second)
	defer hub.Unregister(first)
	defer hub.Unregister(second)

	if hub.Listeners() != 2 {
		t.Fatalf("listeners = %d, want 2", hub.Listeners())
	}

	posted := &models.Message{
		ID:        uuid.New(),
		Username:  "alice",
		Content:   "kickoff at noon",
		CreatedAt: time.Now().UTC(),
	}
	hub.Broadcast(posted)

	for _, ch := range []chan models.Message{firstCh, secondCh} {
		got := waitForMessage(t, ch)
		if got.ID != posted.ID || got.Content != posted.Content {
			t.Errorf("broadcast payload mangled: %+v", got)
		}
	}
}

func TestUnregisterStopsDelivery(t *testing.T) {
	hub := NewBoardHub()

	conn, ch := pipeListener(t)
	hub.Register(conn)
	hub.Unregister(conn)

	if hub.Listeners() != 0 {
		t.Fatalf("listeners = %d, want 0", hub.Listeners())
	}

	// the close frame ends the reader
	select {
	case _, ok := <-ch:
		if ok {
			t.Fatal("received a message after unregister")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("reader did not observe the close")
	}
}

func TestFrameRoundTripExtendedLength(t *testing.T) {
	server, client := net.Pipe()
	a := NewConn(server)
	b := NewConn(client)
	defer server.Close()
	defer client.Close()

	// over 125 bytes of payload forces the 16-bit extended length
	long := &models.Message{
		ID:       uuid.New(),
		Username: "bob",
		Content:  strings.Repeat("status update ", 20),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- a.WriteJSON(long) }()

	var got models.Message
	if err := b.ReadJSON(&got); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if err := <-errCh; err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if got.Content != long.Content {
		t.Errorf("payload truncated: %d bytes, want %d", len(got.Content), len(long.Content))
	}
}
