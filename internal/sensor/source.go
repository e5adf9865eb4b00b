// Package sensor delivers pose frames from a skeletal-tracking collaborator
// and carries the lock manager's restriction capabilities back to it.
package sensor

import (
	"context"
	"errors"

	"github.com/ayusman/bodypilot/internal/skeleton"
)

// ErrNotConnected is returned when a capability call is made while the
// source has no live connection.
var ErrNotConnected = errors.New("sensor source is not connected")

// Handler receives one pose frame per sampling tick. The frame is only
// valid for the duration of the call.
type Handler func(*skeleton.Frame)

// Source is a push-based pose frame provider. Run blocks, invoking the
// handler once per frame in arrival order, until the context is cancelled
// or the source ends.
//
// RestrictTo asks the collaborator to only report the body with the given
// tracking id; ClearRestriction resumes reporting all bodies. Both are
// advisory commands to the collaborator, not local state.
type Source interface {
	Run(ctx context.Context, h Handler) error
	RestrictTo(trackingID int64) error
	ClearRestriction() error
}
