package services

import (
	"testing"
	"time"
)

func newTestStore(created *[]string) *SessionStore {
	return NewSessionStore(
		func() *FormController {
			return NewFormController(testWebhookConfig("https://h.example.com"), &fakeSender{}, okClipboard(), time.Second)
		},
		func(sessionID string, fc *FormController) {
			*created = append(*created, sessionID)
		},
	)
}

func TestSessionStoreGet(t *testing.T) {
	var created []string
	store := newTestStore(&created)

	a := store.Get("a")
	if store.Get("a") != a {
		t.Error("same session returned a different controller")
	}
	if store.Get("b") == a {
		t.Error("sessions share a controller")
	}
	if len(created) != 2 || store.Len() != 2 {
		t.Errorf("created = %v, len = %d", created, store.Len())
	}
}

func TestSessionStoreEvictIdle(t *testing.T) {
	var created []string
	store := newTestStore(&created)
	store.Get("idle")
	store.Get("streaming")
	time.Sleep(20 * time.Millisecond)
	store.Get("fresh").UpdateForm(sampleInput())

	evicted := store.EvictIdle(10*time.Millisecond, func(id string) bool { return id == "streaming" })
	if evicted != 1 {
		t.Errorf("evicted = %d, want 1", evicted)
	}
	if store.Len() != 2 {
		t.Errorf("len = %d, want 2", store.Len())
	}
}

func TestSSEHubBroadcast(t *testing.T) {
	hub := NewSSEHub()
	mine := hub.RegisterClient("s1")
	other := hub.RegisterClient("s2")

	hub.Broadcast("s1", "state", map[string]string{"endpoint": "x"})

	select {
	case msg := <-mine:
		want := "event: state\ndata: {\"endpoint\":\"x\"}\n\n"
		if string(msg) != want {
			t.Errorf("message = %q, want %q", msg, want)
		}
	default:
		t.Fatal("no message delivered")
	}
	select {
	case msg := <-other:
		t.Errorf("other session received %q", msg)
	default:
	}

	hub.UnregisterClient("s1", mine)
	if hub.GetClientCount("s1") != 0 {
		t.Error("client still registered")
	}
	if _, ok := <-mine; ok {
		t.Error("channel not closed on unregister")
	}

	hub.CloseAll()
	if _, ok := <-other; ok {
		t.Error("channel not closed by CloseAll")
	}
	// unregistering after CloseAll must not close twice
	hub.UnregisterClient("s2", other)
}
