package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ayusman/bodypilot/internal/engine"
	"github.com/ayusman/bodypilot/internal/gesture"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// IntentHub broadcasts intent labels to WebSocket clients whenever the
// classified intent changes. Its Broadcast method is the engine's OnIntent
// callback.
type IntentHub struct {
	clients map[*websocket.Conn]bool
	mu      sync.RWMutex
}

// NewIntentHub creates an empty hub.
func NewIntentHub() *IntentHub {
	return &IntentHub{
		clients: make(map[*websocket.Conn]bool),
	}
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *IntentHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
	}()

	// Keep connection alive by reading messages
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// Broadcast sends the intent label and control state to all clients.
// Sends are best-effort; a slow or dead client is simply skipped by the
// next write error.
func (h *IntentHub) Broadcast(intent gesture.Intent, st engine.State) {
	msg, _ := json.Marshal(map[string]any{
		"intent":    intent.String(),
		"flying":    st.Flying,
		"locked":    st.Lock.Held,
		"timestamp": time.Now().UnixMilli(),
	})

	h.mu.RLock()
	defer h.mu.RUnlock()
	for conn := range h.clients {
		conn.WriteMessage(websocket.TextMessage, msg)
	}
}
