// Package engine drives the per-frame control pipeline: subject lock,
// gesture classification and command dispatch run synchronously inside each
// frame delivery, one frame at a time, in arrival order.
package engine

import (
	"log"
	"sync"

	"github.com/ayusman/bodypilot/internal/command"
	"github.com/ayusman/bodypilot/internal/gesture"
	"github.com/ayusman/bodypilot/internal/skeleton"
	"github.com/ayusman/bodypilot/internal/subject"
)

// State is the only cross-frame mutable state of the control core: the
// subject lock and the flying-mode toggle. The zero value is the startup
// state (unlocked, not flying).
type State struct {
	Lock   subject.Lock
	Flying bool
}

// Result is one frame's outcome: the single intent, the state after the
// frame and the key sequence to deliver.
type Result struct {
	Intent   gesture.Intent
	State    State
	Sequence command.Sequence
}

// Step advances the control core by one frame. It is a pure function of
// (frame, state, key map): no hidden state, no side effects. The caller
// owns applying the result — dispatching the sequence and forwarding lock
// transitions to the sensor.
func Step(frame *skeleton.Frame, st State, km command.KeyMap) Result {
	lock, body := subject.Update(frame, st.Lock)
	if body == nil {
		return Result{
			Intent: gesture.None,
			State:  State{Lock: lock, Flying: st.Flying},
		}
	}

	intent, flying := gesture.Classify(body, st.Flying)
	return Result{
		Intent:   intent,
		State:    State{Lock: lock, Flying: flying},
		Sequence: command.SequenceFor(intent, km),
	}
}

// Restrictor is the slice of the sensor source the engine drives: frame
// delivery restriction follows the subject lock.
type Restrictor interface {
	RestrictTo(trackingID int64) error
	ClearRestriction() error
}

// Config wires an Engine.
type Config struct {
	Sensor     Restrictor
	Dispatcher *command.Dispatcher
	KeyMap     command.KeyMap

	// OnIntent, if set, receives the intent label side-channel whenever the
	// intent changes. It must not block; its absence changes nothing about
	// control behavior.
	OnIntent func(intent gesture.Intent, st State)
}

// Engine owns the cross-frame state and applies each frame's result:
// restriction calls on lock transitions, key dispatch, label emission.
type Engine struct {
	sensor     Restrictor
	dispatcher *command.Dispatcher
	keymap     command.KeyMap
	onIntent   func(gesture.Intent, State)

	mu         sync.Mutex
	state      State
	lastIntent gesture.Intent
	enabled    bool
}

// New creates an Engine in the enabled, unlocked, not-flying state.
func New(cfg Config) *Engine {
	return &Engine{
		sensor:     cfg.Sensor,
		dispatcher: cfg.Dispatcher,
		keymap:     cfg.KeyMap,
		onIntent:   cfg.OnIntent,
		enabled:    true,
	}
}

// SetEnabled enables or disables frame processing.
func (e *Engine) SetEnabled(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enabled = enabled
}

// IsEnabled reports whether frames are being processed.
func (e *Engine) IsEnabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.enabled
}

// State returns the current cross-frame state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// LastIntent returns the most recent classified intent.
func (e *Engine) LastIntent() gesture.Intent {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastIntent
}

// HandleFrame processes one pose frame. It is the sensor source's Handler.
func (e *Engine) HandleFrame(frame *skeleton.Frame) {
	e.mu.Lock()
	if !e.enabled {
		e.mu.Unlock()
		return
	}
	prior := e.state
	res := Step(frame, prior, e.keymap)
	e.state = res.State
	changed := res.Intent != e.lastIntent
	e.lastIntent = res.Intent
	e.mu.Unlock()

	e.applyLockTransition(prior.Lock, res.State.Lock)

	if len(res.Sequence) > 0 && e.dispatcher != nil {
		if err := e.dispatcher.Dispatch(res.Sequence); err != nil {
			log.Printf("dispatch %s: %v", res.Intent, err)
		}
	}

	if changed && e.onIntent != nil {
		e.onIntent(res.Intent, res.State)
	}
}

// applyLockTransition forwards lock changes to the sensor collaborator:
// acquiring restricts frame delivery to the chosen body, releasing resumes
// reporting all bodies.
func (e *Engine) applyLockTransition(prior, next subject.Lock) {
	if e.sensor == nil || prior == next {
		return
	}

	switch {
	case !prior.Held && next.Held:
		log.Printf("subject lock acquired: body %d", next.TrackingID)
		if err := e.sensor.RestrictTo(next.TrackingID); err != nil {
			log.Printf("restrict to body %d: %v", next.TrackingID, err)
		}
	case prior.Held && !next.Held:
		log.Printf("subject lock released: body %d", prior.TrackingID)
		if err := e.sensor.ClearRestriction(); err != nil {
			log.Printf("clear restriction: %v", err)
		}
	}
}
