package gesture

import (
	"testing"

	"github.com/ayusman/bodypilot/internal/skeleton"
)

func TestClassify_Postures(t *testing.T) {
	tests := []struct {
		name   string
		body   skeleton.Body
		flying bool
		want   Intent
	}{
		{"standing stays", skeleton.StandingBody(1), false, Stay},
		{"standing stays while flying", skeleton.StandingBody(1), true, Stay},
		{"wrists overhead ascends", skeleton.ArmsRaisedBody(1), false, GoUp},
		{"wrists overhead ascends while flying", skeleton.ArmsRaisedBody(1), true, GoUp},
		{"elbows overhead starts flight", skeleton.ElbowsRaisedBody(1), false, StartFlying},
		{"elbows overhead while flying ascends", skeleton.ElbowsRaisedBody(1), true, GoUp},
		{"wrists at waist descends", skeleton.WristsLoweredBody(1), false, GoDown},
		{"wrists at waist descends while flying", skeleton.WristsLoweredBody(1), true, GoDown},
		{"left arm tucked stops flight", skeleton.LeftArmTuckedBody(1), true, StopFlying},
		{"left arm tucked on foot does nothing", skeleton.LeftArmTuckedBody(1), false, None},
		{"right arm tucked moves forward", skeleton.RightArmTuckedBody(1), false, GoForward},
		{"right arm tucked moves forward while flying", skeleton.RightArmTuckedBody(1), true, GoForward},
		{"left arm extended turns left", skeleton.LeftArmExtendedBody(1), false, GoLeft},
		{"right arm extended turns right", skeleton.RightArmExtendedBody(1), false, GoRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := Classify(&tt.body, tt.flying)
			if got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassify_FlightToggleEdges(t *testing.T) {
	overhead := skeleton.ElbowsRaisedBody(1)

	// Not flying: the posture toggles flight on.
	intent, flying := Classify(&overhead, false)
	if intent != StartFlying || !flying {
		t.Fatalf("Classify() = (%v, %v), want (StartFlying, true)", intent, flying)
	}

	// Holding the posture must not toggle again; it falls through to GoUp
	// and the mode stays on.
	intent, flying = Classify(&overhead, true)
	if intent == StartFlying {
		t.Error("StartFlying fired a second time with flight already on")
	}
	if !flying {
		t.Error("flying mode flipped without a stop gesture")
	}

	tucked := skeleton.LeftArmTuckedBody(1)

	// Flying: the land posture toggles flight off.
	intent, flying = Classify(&tucked, true)
	if intent != StopFlying || flying {
		t.Fatalf("Classify() = (%v, %v), want (StopFlying, false)", intent, flying)
	}

	// Holding it on foot is a no-op.
	intent, flying = Classify(&tucked, false)
	if intent != None || flying {
		t.Errorf("Classify() = (%v, %v), want (None, false)", intent, flying)
	}
}

func TestClassify_StaySuppressesEverything(t *testing.T) {
	// A standing body also satisfies none of the arm rules, so build a
	// contrived one: wrists hanging below the hips while an elbow is pushed
	// above the head. Stay is first in the priority order and must win.
	b := skeleton.StandingBody(1)
	b.Joints[skeleton.ElbowLeft].Position.Y = 2.0
	b.Joints[skeleton.ElbowRight].Position.Y = 2.0

	intent, flying := Classify(&b, false)
	if intent != Stay {
		t.Errorf("Classify() = %v, want Stay", intent)
	}
	if flying {
		t.Error("Stay must never toggle flying mode")
	}
}

func TestClassify_Deterministic(t *testing.T) {
	raised := skeleton.ArmsRaisedBody(7)
	for i := 0; i < 50; i++ {
		intent, _ := Classify(&raised, false)
		if intent != GoUp {
			t.Fatalf("call %d: Classify() = %v, want GoUp", i, intent)
		}
	}
}

func TestClassify_IncompleteBody(t *testing.T) {
	partial := skeleton.PartialBody(1)
	intent, flying := Classify(&partial, true)
	if intent != None {
		t.Errorf("Classify() = %v, want None for a body with lost joints", intent)
	}
	if !flying {
		t.Error("flying mode must survive unclassifiable frames")
	}

	if intent, _ := Classify(nil, false); intent != None {
		t.Errorf("Classify(nil) = %v, want None", intent)
	}
}

func TestClassifiable(t *testing.T) {
	full := skeleton.StandingBody(1)
	if !Classifiable(&full) {
		t.Error("expected a fully tracked body to be classifiable")
	}

	partial := skeleton.PartialBody(1)
	if Classifiable(&partial) {
		t.Error("expected a body with lost required joints to be unclassifiable")
	}
}

func TestIntentString(t *testing.T) {
	if GoLeft.String() != "GO LEFT" {
		t.Errorf("GoLeft.String() = %q, want %q", GoLeft.String(), "GO LEFT")
	}
	if Intent(99).String() != "NONE" {
		t.Errorf("unknown intent should label as NONE, got %q", Intent(99).String())
	}
}
