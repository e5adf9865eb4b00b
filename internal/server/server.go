// Package server provides the HTTP status and configuration surface. It is
// a presentation side-channel: control behavior never depends on it.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ayusman/bodypilot/internal/engine"
	"github.com/ayusman/bodypilot/internal/server/api"
	"github.com/ayusman/bodypilot/internal/store"
)

// Config holds the server configuration.
type Config struct {
	Store   *store.Store
	Engine  *engine.Engine
	Intents *IntentHub
}

// Server is the HTTP server for the BodyPilot application.
type Server struct {
	config Config
	mux    *http.ServeMux
	start  time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	if s.config.Engine != nil {
		s.mux.HandleFunc("/api/status", s.handleStatus)
	}

	if s.config.Store != nil {
		bindingHandler := api.NewBindingHandler(s.config.Store)
		s.mux.Handle("/api/bindings", bindingHandler)
		s.mux.Handle("/api/bindings/", bindingHandler)
	}

	if s.config.Intents != nil {
		s.mux.Handle("/api/intents", s.config.Intents)
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]interface{}{
		"status": "ok",
		"uptime": time.Since(s.start).String(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// handleStatus handles GET requests to /api/status.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	st := s.config.Engine.State()
	response := map[string]interface{}{
		"enabled": s.config.Engine.IsEnabled(),
		"flying":  st.Flying,
		"locked":  st.Lock.Held,
		"intent":  s.config.Engine.LastIntent().String(),
	}
	if st.Lock.Held {
		response["trackingId"] = st.Lock.TrackingID
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
