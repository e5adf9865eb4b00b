package engine

import (
	"fmt"
	"testing"

	"github.com/ayusman/bodypilot/internal/command"
	"github.com/ayusman/bodypilot/internal/gesture"
	"github.com/ayusman/bodypilot/internal/sensor"
	"github.com/ayusman/bodypilot/internal/skeleton"
	"github.com/ayusman/bodypilot/internal/subject"
)

// stubFinder reports one fixed target process.
type stubFinder struct{}

func (stubFinder) FindAll(name string) ([]command.Process, error) {
	return []command.Process{{PID: 1, Name: name}}, nil
}

// keyRecorder collects delivered key actions.
type keyRecorder struct {
	actions []string
}

func (r *keyRecorder) SendKey(p command.Process, a command.KeyAction) error {
	r.actions = append(r.actions, fmt.Sprintf("%s:%s", a.Key, a.Dir))
	return nil
}

func newTestEngine(onIntent func(gesture.Intent, State)) (*Engine, *sensor.ReplaySource, *keyRecorder) {
	src := sensor.NewReplaySource()
	rec := &keyRecorder{}
	e := New(Config{
		Sensor:     src,
		Dispatcher: command.NewDispatcher("voxelcraft", stubFinder{}, rec),
		KeyMap:     command.DefaultKeyMap(),
		OnIntent:   onIntent,
	})
	return e, src, rec
}

func TestStep_IsPure(t *testing.T) {
	frame := skeleton.FrameOf(skeleton.ArmsRaisedBody(4))
	st := State{}

	first := Step(frame, st, command.DefaultKeyMap())
	for i := 0; i < 10; i++ {
		again := Step(frame, st, command.DefaultKeyMap())
		if again.Intent != first.Intent || again.State != first.State {
			t.Fatalf("call %d diverged: %+v vs %+v", i, again, first)
		}
	}

	if first.Intent != gesture.GoUp {
		t.Errorf("intent = %v, want GoUp", first.Intent)
	}
	if !first.State.Lock.Held || first.State.Lock.TrackingID != 4 {
		t.Errorf("lock = %+v, want lock on body 4", first.State.Lock)
	}
	if len(first.Sequence) != 2 || first.Sequence[0].Key != command.KeyE {
		t.Errorf("sequence = %+v, want tap of E", first.Sequence)
	}
}

func TestStep_NoSubject(t *testing.T) {
	res := Step(skeleton.FrameOf(), State{Flying: true}, command.DefaultKeyMap())
	if res.Intent != gesture.None {
		t.Errorf("intent = %v, want None", res.Intent)
	}
	if !res.State.Flying {
		t.Error("flying mode must persist without a subject")
	}
	if len(res.Sequence) != 0 {
		t.Errorf("sequence = %+v, want empty", res.Sequence)
	}
}

func TestStep_FlyingSurvivesLockLoss(t *testing.T) {
	st := State{
		Lock:   subject.Lock{TrackingID: 5, Held: true},
		Flying: true,
	}

	res := Step(skeleton.FrameOf(), st, command.DefaultKeyMap())
	if res.State.Lock.Held {
		t.Error("lock must release on an empty frame")
	}
	if !res.State.Flying {
		t.Error("flying mode persists across subject-lock changes")
	}
}

func TestHandleFrame_LockTransitionsDriveSensor(t *testing.T) {
	e, src, _ := newTestEngine(nil)

	// Acquire on the first trackable body.
	e.HandleFrame(skeleton.FrameOf(skeleton.StandingBody(2), skeleton.StandingBody(7)))
	if got := src.Restrictions(); len(got) != 1 || got[0] != 2 {
		t.Fatalf("restrictions = %v, want [2]", got)
	}

	// Same body again: no further capability calls.
	e.HandleFrame(skeleton.FrameOf(skeleton.StandingBody(2)))
	if got := src.Restrictions(); len(got) != 1 {
		t.Errorf("restrictions = %v, want still [2]", got)
	}

	// Body gone: release.
	e.HandleFrame(skeleton.FrameOf())
	if src.ClearCalls() != 1 {
		t.Errorf("clear calls = %d, want 1", src.ClearCalls())
	}
	if e.State().Lock.Held {
		t.Error("lock should be released")
	}
}

func TestHandleFrame_FlightToggleAndDispatch(t *testing.T) {
	e, _, rec := newTestEngine(nil)

	// Lock on and toggle flight.
	e.HandleFrame(skeleton.FrameOf(skeleton.ElbowsRaisedBody(3)))
	if !e.State().Flying {
		t.Fatal("expected flying mode on")
	}
	want := []string{"F:press", "F:release"}
	if len(rec.actions) != 2 || rec.actions[0] != want[0] || rec.actions[1] != want[1] {
		t.Fatalf("actions = %v, want %v", rec.actions, want)
	}

	// Holding the posture must not toggle again.
	e.HandleFrame(skeleton.FrameOf(skeleton.ElbowsRaisedBody(3)))
	if !e.State().Flying {
		t.Error("flying mode flipped without a stop gesture")
	}
	for _, a := range rec.actions[2:] {
		if a == "F:press" {
			t.Errorf("flight toggle repeated: %v", rec.actions)
		}
	}

	// Land.
	e.HandleFrame(skeleton.FrameOf(skeleton.LeftArmTuckedBody(3)))
	if e.State().Flying {
		t.Error("expected flying mode off")
	}
}

func TestHandleFrame_Disabled(t *testing.T) {
	e, src, rec := newTestEngine(nil)
	e.SetEnabled(false)

	e.HandleFrame(skeleton.FrameOf(skeleton.ElbowsRaisedBody(3)))
	if e.State().Lock.Held || e.State().Flying {
		t.Error("disabled engine must not mutate state")
	}
	if len(rec.actions) != 0 || len(src.Restrictions()) != 0 {
		t.Error("disabled engine must not produce side effects")
	}
}

func TestHandleFrame_IntentLabelsOnChange(t *testing.T) {
	var labels []string
	e, _, _ := newTestEngine(func(i gesture.Intent, _ State) {
		labels = append(labels, i.String())
	})

	e.HandleFrame(skeleton.FrameOf(skeleton.ArmsRaisedBody(1)))
	e.HandleFrame(skeleton.FrameOf(skeleton.ArmsRaisedBody(1)))
	e.HandleFrame(skeleton.FrameOf(skeleton.LeftArmExtendedBody(1)))

	want := []string{"GO UP", "GO LEFT"}
	if len(labels) != len(want) {
		t.Fatalf("labels = %v, want %v", labels, want)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("label %d = %q, want %q", i, labels[i], want[i])
		}
	}
}
