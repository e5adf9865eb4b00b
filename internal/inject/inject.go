// Package inject discovers and runs out-of-process key injectors. The
// concrete input mechanism (xdotool, AppleScript, SendInput) lives in a
// small helper binary described by an injector.json manifest; this package
// speaks a JSON request/response protocol with it over stdin/stdout.
package inject

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// ErrInjectorNotFound is returned when a requested injector cannot be found.
var ErrInjectorNotFound = errors.New("injector not found")

// Manifest describes an injector helper's metadata.
type Manifest struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Executable  string `json:"executable"`
}

// Injector is a discovered helper with its manifest and location.
type Injector struct {
	Manifest   Manifest
	Path       string
	Executable string
}

// Request is one key action sent to an injector. Direction is "press" or
// "release"; Key is the human-readable key name and KeyCode the virtual-key
// value, so helpers can use whichever their platform tool needs.
type Request struct {
	Action    string `json:"action"`
	PID       int    `json:"pid"`
	Key       string `json:"key"`
	KeyCode   uint16 `json:"keyCode"`
	Direction string `json:"direction"`
}

// Response is the injector's reply.
type Response struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Manager discovers injector helpers under a directory. Each subdirectory
// holding an injector.json manifest is one injector.
type Manager struct {
	dir       string
	injectors map[string]*Injector
	mu        sync.RWMutex
}

// NewManager creates a Manager for the given injector directory.
func NewManager(dir string) *Manager {
	return &Manager{
		dir:       dir,
		injectors: make(map[string]*Injector),
	}
}

// Discover scans the injector directory and loads every valid manifest.
// A missing directory is not an error; it simply yields no injectors.
func (m *Manager) Discover() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.injectors = make(map[string]*Injector)

	info, err := os.Stat(m.dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return nil
	}

	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		path := filepath.Join(m.dir, entry.Name())
		manifestPath := filepath.Join(path, "injector.json")

		data, err := os.ReadFile(manifestPath)
		if err != nil {
			continue // no manifest or unreadable, skip
		}

		var manifest Manifest
		if err := json.Unmarshal(data, &manifest); err != nil {
			continue
		}
		if manifest.Name == "" || manifest.Executable == "" {
			continue
		}

		m.injectors[manifest.Name] = &Injector{
			Manifest:   manifest,
			Path:       path,
			Executable: filepath.Join(path, manifest.Executable),
		}
	}

	return nil
}

// Get returns an injector by name, or ErrInjectorNotFound.
func (m *Manager) Get(name string) (*Injector, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	inj, ok := m.injectors[name]
	if !ok {
		return nil, ErrInjectorNotFound
	}
	return inj, nil
}

// List returns all discovered injectors.
func (m *Manager) List() []*Injector {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Injector, 0, len(m.injectors))
	for _, inj := range m.injectors {
		out = append(out, inj)
	}
	return out
}
