package command

import (
	"testing"

	"github.com/ayusman/bodypilot/internal/gesture"
)

func TestSequenceFor_TurnLeft(t *testing.T) {
	seq := SequenceFor(gesture.GoLeft, DefaultKeyMap())

	want := Sequence{
		{Key: KeyLeft, Dir: Press},
		{Key: KeyLeft, Dir: Release},
		{Key: KeyUp, Dir: Press},
		{Key: KeyUp, Dir: Release},
	}

	if len(seq) != len(want) {
		t.Fatalf("sequence length = %d, want %d", len(seq), len(want))
	}
	for i := range want {
		if seq[i] != want[i] {
			t.Errorf("action %d = %+v, want %+v", i, seq[i], want[i])
		}
	}
}

func TestSequenceFor_Table(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		intent  gesture.Intent
		actions int
		first   VirtualKey
	}{
		{gesture.None, 0, 0},
		{gesture.Stay, 0, 0},
		{gesture.StartFlying, 2, KeyF},
		{gesture.StopFlying, 2, KeyF},
		{gesture.GoUp, 2, KeyE},
		{gesture.GoDown, 2, KeyC},
		{gesture.GoForward, 2, KeyUp},
		{gesture.GoLeft, 4, KeyLeft},
		{gesture.GoRight, 4, KeyRight},
	}

	for _, tt := range tests {
		t.Run(tt.intent.String(), func(t *testing.T) {
			seq := SequenceFor(tt.intent, km)
			if len(seq) != tt.actions {
				t.Fatalf("len = %d, want %d", len(seq), tt.actions)
			}
			if tt.actions == 0 {
				return
			}
			if seq[0].Key != tt.first || seq[0].Dir != Press {
				t.Errorf("first action = %+v, want press of %s", seq[0], tt.first)
			}
			last := seq[len(seq)-1]
			if last.Dir != Release {
				t.Errorf("sequence must end with a release, got %+v", last)
			}
		})
	}
}

func TestSequenceFor_Remapped(t *testing.T) {
	km := DefaultKeyMap()
	km.FlightToggle = KeySpace

	seq := SequenceFor(gesture.StartFlying, km)
	if seq[0].Key != KeySpace {
		t.Errorf("remapped flight toggle = %s, want Space", seq[0].Key)
	}
}

func TestKeyByName(t *testing.T) {
	tests := []struct {
		name string
		want VirtualKey
		ok   bool
	}{
		{"E", KeyE, true},
		{"e", KeyE, true},
		{"Up", KeyUp, true},
		{"Left", KeyLeft, true},
		{"Space", KeySpace, true},
		{"7", VirtualKey('7'), true},
		{"Escape", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := KeyByName(tt.name)
		if ok != tt.ok || got != tt.want {
			t.Errorf("KeyByName(%q) = (%v, %v), want (%v, %v)", tt.name, got, ok, tt.want, tt.ok)
		}
	}

	// Names must round-trip for everything a key map can hold.
	for _, k := range []VirtualKey{KeyE, KeyC, KeyF, KeyUp, KeyLeft, KeyRight} {
		got, ok := KeyByName(k.String())
		if !ok || got != k {
			t.Errorf("round trip failed for %v (%q)", k, k.String())
		}
	}
}
