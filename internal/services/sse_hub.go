package services

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// SSEHub fans out Server-Sent Events to the browser tabs of a session
type SSEHub struct {
	// session id -> set of client channels
	clients map[string]map[chan []byte]bool
	mu      sync.RWMutex
}

// NewSSEHub creates a new SSE hub
func NewSSEHub() *SSEHub {
	return &SSEHub{
		clients: make(map[string]map[chan []byte]bool),
	}
}

// RegisterClient registers a new SSE client for a session
func (h *SSEHub) RegisterClient(sessionID string) chan []byte {
	h.mu.Lock()
	defer h.mu.Unlock()

	clientChan := make(chan []byte, 10)
	if h.clients[sessionID] == nil {
		h.clients[sessionID] = make(map[chan []byte]bool)
	}
	h.clients[sessionID][clientChan] = true

	logrus.Debugf("SSE client registered for %s (total clients: %d)", sessionID, len(h.clients[sessionID]))
	return clientChan
}

// UnregisterClient unregisters an SSE client
func (h *SSEHub) UnregisterClient(sessionID string, clientChan chan []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[sessionID] != nil {
		if _, ok := h.clients[sessionID][clientChan]; ok {
			delete(h.clients[sessionID], clientChan)
			close(clientChan)
		}
		if len(h.clients[sessionID]) == 0 {
			delete(h.clients, sessionID)
		}
	}

	logrus.Debugf("SSE client unregistered for %s (remaining clients: %d)", sessionID, len(h.clients[sessionID]))
}

// Broadcast sends an event with a JSON payload to every client of the session
func (h *SSEHub) Broadcast(sessionID, event string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logrus.Errorf("Failed to marshal %s event for SSE: %v", event, err)
		return
	}
	message := []byte(fmt.Sprintf("event: %s\ndata: %s\n\n", event, data))

	h.mu.RLock()
	defer h.mu.RUnlock()

	for clientChan := range h.clients[sessionID] {
		select {
		case clientChan <- message:
		default:
			// Channel is full, skip this client
			logrus.Warnf("SSE client channel full, skipping: %s", sessionID)
		}
	}
}

// GetClientCount returns the number of clients for a session
func (h *SSEHub) GetClientCount(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[sessionID])
}

// CloseAll disconnects every client so open streams can finish
func (h *SSEHub) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sessionID, clients := range h.clients {
		for clientChan := range clients {
			close(clientChan)
		}
		delete(h.clients, sessionID)
	}
}
