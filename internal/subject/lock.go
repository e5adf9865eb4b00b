// Package subject maintains the single-body control lock across pose frames.
package subject

import (
	"github.com/ayusman/bodypilot/internal/gesture"
	"github.com/ayusman/bodypilot/internal/skeleton"
)

// Lock records which body, if any, is currently authorized to issue
// navigation commands. The zero value is unlocked.
type Lock struct {
	TrackingID int64
	Held       bool
}

// Unlocked is the initial lock state.
var Unlocked = Lock{}

// Controllable reports whether a body is eligible to hold the lock: it must
// be fully tracked and carry every joint the classifier reads. A body that
// lost required joints counts the same as no body at all.
func Controllable(b *skeleton.Body) bool {
	return b != nil && b.State == skeleton.BodyFullyTracked && gesture.Classifiable(b)
}

// Update advances the lock by one frame and returns the new lock together
// with the controlled body, if any.
//
// While unlocked, the first controllable body in frame order wins; ties are
// broken by encounter order, never by size or proximity. While locked, the
// locked id must still be controllable in this frame; a single frame of lost
// tracking releases the lock immediately, and re-acquisition waits for a
// later frame.
func Update(frame *skeleton.Frame, lock Lock) (Lock, *skeleton.Body) {
	if frame == nil {
		if lock.Held {
			return Unlocked, nil
		}
		return lock, nil
	}

	if lock.Held {
		for i := range frame.Bodies {
			b := &frame.Bodies[i]
			if b.TrackingID == lock.TrackingID && Controllable(b) {
				return lock, b
			}
		}
		return Unlocked, nil
	}

	for i := range frame.Bodies {
		b := &frame.Bodies[i]
		if Controllable(b) {
			return Lock{TrackingID: b.TrackingID, Held: true}, b
		}
	}
	return Unlocked, nil
}
