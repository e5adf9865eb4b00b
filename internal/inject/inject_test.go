package inject

import (
	"os"
	"path/filepath"
	"testing"
)

// writeInjector creates an injector directory with a manifest and a shell
// script executable under dir.
func writeInjector(t *testing.T, dir, name, manifest, script string) {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if manifest != "" {
		if err := os.WriteFile(filepath.Join(path, "injector.json"), []byte(manifest), 0644); err != nil {
			t.Fatalf("write manifest: %v", err)
		}
	}
	if script != "" {
		if err := os.WriteFile(filepath.Join(path, "run.sh"), []byte(script), 0755); err != nil {
			t.Fatalf("write script: %v", err)
		}
	}
}

func TestManager_Discover(t *testing.T) {
	dir := t.TempDir()

	writeInjector(t, dir, "xdo",
		`{"name":"xdo","version":"1.0.0","description":"X11 key injection","executable":"run.sh"}`,
		"#!/bin/sh\n")
	writeInjector(t, dir, "broken", `{not json`, "")
	writeInjector(t, dir, "nameless", `{"executable":"run.sh"}`, "")
	writeInjector(t, dir, "empty", "", "")

	m := NewManager(dir)
	if err := m.Discover(); err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if got := len(m.List()); got != 1 {
		t.Fatalf("discovered %d injectors, want 1", got)
	}

	inj, err := m.Get("xdo")
	if err != nil {
		t.Fatalf("Get(xdo) error = %v", err)
	}
	if inj.Executable != filepath.Join(dir, "xdo", "run.sh") {
		t.Errorf("executable = %q", inj.Executable)
	}

	if _, err := m.Get("missing"); err != ErrInjectorNotFound {
		t.Errorf("Get(missing) error = %v, want ErrInjectorNotFound", err)
	}
}

func TestManager_DiscoverMissingDir(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "does-not-exist"))
	if err := m.Discover(); err != nil {
		t.Errorf("Discover() on missing dir error = %v, want nil", err)
	}
	if len(m.List()) != 0 {
		t.Error("expected no injectors")
	}
}
