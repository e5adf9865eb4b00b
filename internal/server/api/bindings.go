// Package api provides the HTTP API handlers for the BodyPilot server.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/ayusman/bodypilot/internal/command"
	"github.com/ayusman/bodypilot/internal/store"
)

// BindingHandler handles HTTP requests for key-binding resources.
type BindingHandler struct {
	store *store.Store
}

// NewBindingHandler creates a new BindingHandler with the given store.
func NewBindingHandler(s *store.Store) *BindingHandler {
	return &BindingHandler{store: s}
}

// bindingResponse is one role's effective binding.
type bindingResponse struct {
	Role    string `json:"role"`
	Key     string `json:"key"`
	Default bool   `json:"default"`
}

// bindingRequest is the body of a PUT request.
type bindingRequest struct {
	Key string `json:"key"`
}

// ServeHTTP routes between the collection and item endpoints.
// Expected paths: /api/bindings or /api/bindings/{role}
func (h *BindingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/bindings")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.list(w, r)
		return
	}

	role := path
	switch r.Method {
	case http.MethodPut:
		h.set(w, r, role)
	case http.MethodDelete:
		h.reset(w, r, role)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// list returns every role with its effective key, marking which ones still
// carry the default.
func (h *BindingHandler) list(w http.ResponseWriter, r *http.Request) {
	stored, err := h.store.Bindings().List()
	if err != nil {
		http.Error(w, "Failed to list bindings", http.StatusInternalServerError)
		return
	}

	overrides := make(map[string]string, len(stored))
	for _, b := range stored {
		overrides[b.Role] = b.KeyName
	}

	defaults := map[string]command.VirtualKey{
		store.RoleUp:           command.DefaultKeyMap().Up,
		store.RoleDown:         command.DefaultKeyMap().Down,
		store.RoleForward:      command.DefaultKeyMap().Forward,
		store.RoleStrafeLeft:   command.DefaultKeyMap().StrafeLeft,
		store.RoleStrafeRight:  command.DefaultKeyMap().StrafeRight,
		store.RoleFlightToggle: command.DefaultKeyMap().FlightToggle,
	}

	out := make([]bindingResponse, 0, len(store.Roles))
	for _, role := range store.Roles {
		if key, ok := overrides[role]; ok {
			out = append(out, bindingResponse{Role: role, Key: key})
			continue
		}
		out = append(out, bindingResponse{Role: role, Key: defaults[role].String(), Default: true})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

// set rebinds a role to the requested key.
func (h *BindingHandler) set(w http.ResponseWriter, r *http.Request, role string) {
	var req bindingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	b, err := h.store.Bindings().Set(role, req.Key)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(bindingResponse{Role: b.Role, Key: b.KeyName})
}

// reset deletes a role's override so it reverts to the default key.
func (h *BindingHandler) reset(w http.ResponseWriter, r *http.Request, role string) {
	err := h.store.Bindings().Delete(role)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "Binding not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to delete binding", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
