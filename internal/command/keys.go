// Package command translates navigation intents into synthetic key-event
// sequences and delivers them to the target application's processes.
package command

import (
	"strings"

	"github.com/ayusman/bodypilot/internal/gesture"
)

// VirtualKey is a platform-neutral virtual-key code. Letter and digit keys
// use their ASCII uppercase value, arrow keys the conventional 0x25-0x28
// range.
type VirtualKey uint16

const (
	KeyLeft  VirtualKey = 0x25
	KeyUp    VirtualKey = 0x26
	KeyRight VirtualKey = 0x27
	KeyDown  VirtualKey = 0x28
	KeySpace VirtualKey = 0x20
	KeyC     VirtualKey = 0x43
	KeyE     VirtualKey = 0x45
	KeyF     VirtualKey = 0x46
)

var namedKeys = map[string]VirtualKey{
	"Left":  KeyLeft,
	"Up":    KeyUp,
	"Right": KeyRight,
	"Down":  KeyDown,
	"Space": KeySpace,
}

// KeyByName resolves a key name to its virtual-key code. Single letters and
// digits map to their ASCII code; arrow keys and Space use their English
// names.
func KeyByName(name string) (VirtualKey, bool) {
	if k, ok := namedKeys[name]; ok {
		return k, true
	}
	if len(name) == 1 {
		c := strings.ToUpper(name)[0]
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			return VirtualKey(c), true
		}
	}
	return 0, false
}

// String returns the name accepted by KeyByName.
func (k VirtualKey) String() string {
	for name, vk := range namedKeys {
		if vk == k {
			return name
		}
	}
	c := byte(k)
	if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
		return string(c)
	}
	return ""
}

// Direction says whether a key action presses or releases the key.
type Direction int

const (
	Press Direction = iota
	Release
)

// String returns the wire name of the direction.
func (d Direction) String() string {
	if d == Release {
		return "release"
	}
	return "press"
}

// KeyAction is a single press or release of one virtual key.
type KeyAction struct {
	Key VirtualKey
	Dir Direction
}

// Sequence is the ordered list of key actions representing one intent's
// full effect on the target application.
type Sequence []KeyAction

// KeyMap assigns a virtual key to every navigation role. Bindings are
// remappable through the store; DefaultKeyMap matches the stock layout.
type KeyMap struct {
	Up           VirtualKey
	Down         VirtualKey
	Forward      VirtualKey
	StrafeLeft   VirtualKey
	StrafeRight  VirtualKey
	FlightToggle VirtualKey
}

// DefaultKeyMap returns the stock key assignments: up=E, down=C,
// flight-toggle=F, forward and strafing on the arrow keys.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:           KeyE,
		Down:         KeyC,
		Forward:      KeyUp,
		StrafeLeft:   KeyLeft,
		StrafeRight:  KeyRight,
		FlightToggle: KeyF,
	}
}

// tap is a press immediately followed by a release of the same key.
func tap(k VirtualKey) Sequence {
	return Sequence{{Key: k, Dir: Press}, {Key: k, Dir: Release}}
}

// SequenceFor maps an intent to its command sequence under the given key
// map. Stay and None map to an empty sequence; turning is implemented as a
// strafe tap followed by a forward tap.
func SequenceFor(intent gesture.Intent, km KeyMap) Sequence {
	switch intent {
	case gesture.StartFlying, gesture.StopFlying:
		return tap(km.FlightToggle)
	case gesture.GoUp:
		return tap(km.Up)
	case gesture.GoDown:
		return tap(km.Down)
	case gesture.GoForward:
		return tap(km.Forward)
	case gesture.GoLeft:
		return append(tap(km.StrafeLeft), tap(km.Forward)...)
	case gesture.GoRight:
		return append(tap(km.StrafeRight), tap(km.Forward)...)
	default:
		return nil
	}
}
