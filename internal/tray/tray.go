// Package tray provides the system tray interface for BodyPilot.
package tray

import (
	"fmt"
	"sync"

	"github.com/getlantern/systray"
)

// Tray represents the system tray application.
type Tray struct {
	onToggle func(enabled bool)
	onQuit   func()
	enabled  bool
	mu       sync.RWMutex

	// Menu items stored for later updates
	menuToggle *systray.MenuItem
	menuLock   *systray.MenuItem
	menuMode   *systray.MenuItem
	menuIntent *systray.MenuItem
}

// New creates a new Tray instance with enabled state set to true by default.
func New() *Tray {
	return &Tray{
		enabled: true,
	}
}

// OnToggle sets the callback function to be called when the enabled state is toggled.
func (t *Tray) OnToggle(fn func(enabled bool)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onToggle = fn
}

// OnQuit sets the callback function to be called when the quit menu item is clicked.
func (t *Tray) OnQuit(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onQuit = fn
}

// Run starts the system tray application.
// This function blocks until systray.Quit() is called.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

// onReady is called when the system tray is ready.
// It sets up the menu structure.
func (t *Tray) onReady() {
	systray.SetTitle("BodyPilot")
	systray.SetTooltip("BodyPilot Pose Navigation")

	t.menuToggle = systray.AddMenuItem("● Enabled", "Toggle pose control")
	systray.AddSeparator()

	t.menuLock = systray.AddMenuItem("Subject: none", "Currently controlled body")
	t.menuLock.Disable()
	t.menuMode = systray.AddMenuItem("Mode: walking", "Flying mode state")
	t.menuMode.Disable()
	t.menuIntent = systray.AddMenuItem("Intent: NONE", "Last classified intent")
	t.menuIntent.Disable()
	systray.AddSeparator()

	menuQuit := systray.AddMenuItem("Quit", "Quit BodyPilot")

	// Handle menu item clicks in a separate goroutine
	go func() {
		for {
			select {
			case <-t.menuToggle.ClickedCh:
				t.handleToggle()
			case <-menuQuit.ClickedCh:
				t.handleQuit()
				return
			}
		}
	}()
}

// onExit is called when the system tray is about to exit.
func (t *Tray) onExit() {
}

// handleToggle handles the toggle menu item click.
func (t *Tray) handleToggle() {
	t.mu.Lock()
	t.enabled = !t.enabled
	enabled := t.enabled

	if enabled {
		t.menuToggle.SetTitle("● Enabled")
	} else {
		t.menuToggle.SetTitle("○ Disabled")
	}

	callback := t.onToggle
	t.mu.Unlock()

	// Call the callback outside the lock to prevent deadlocks
	if callback != nil {
		callback(enabled)
	}
}

// handleQuit handles the quit menu item click.
func (t *Tray) handleQuit() {
	t.mu.RLock()
	callback := t.onQuit
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}

	systray.Quit()
}

// SetSubject updates the controlled-body line in the menu.
func (t *Tray) SetSubject(locked bool, trackingID int64) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.menuLock == nil {
		return
	}
	if locked {
		t.menuLock.SetTitle(fmt.Sprintf("Subject: body %d", trackingID))
	} else {
		t.menuLock.SetTitle("Subject: none")
	}
}

// SetFlying updates the mode line in the menu.
func (t *Tray) SetFlying(flying bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.menuMode == nil {
		return
	}
	if flying {
		t.menuMode.SetTitle("Mode: flying")
	} else {
		t.menuMode.SetTitle("Mode: walking")
	}
}

// SetLastIntent updates the last-intent line in the menu.
func (t *Tray) SetLastIntent(label string) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.menuIntent == nil {
		return
	}
	if label == "" {
		t.menuIntent.SetTitle("Intent: NONE")
	} else {
		t.menuIntent.SetTitle("Intent: " + label)
	}
}

// IsEnabled returns the current enabled state.
func (t *Tray) IsEnabled() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.enabled
}
