package sensor

import (
	"context"
	"sync"

	"github.com/ayusman/bodypilot/internal/skeleton"
)

// ReplaySource is an in-memory Source for tests: frames are pushed
// programmatically and capability calls are recorded instead of sent.
type ReplaySource struct {
	frames chan *skeleton.Frame

	mu         sync.Mutex
	restricted []int64
	clearCalls int
	closeOnce  sync.Once
}

// NewReplaySource creates a ReplaySource with room for a small backlog.
func NewReplaySource() *ReplaySource {
	return &ReplaySource{
		frames: make(chan *skeleton.Frame, 16),
	}
}

// Push queues one frame for delivery.
func (s *ReplaySource) Push(f *skeleton.Frame) {
	s.frames <- f
}

// Close ends the frame stream; Run returns once the backlog drains.
func (s *ReplaySource) Close() {
	s.closeOnce.Do(func() { close(s.frames) })
}

// Run delivers pushed frames in order until Close or context cancellation.
func (s *ReplaySource) Run(ctx context.Context, h Handler) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case f, ok := <-s.frames:
			if !ok {
				return nil
			}
			h(f)
		}
	}
}

// RestrictTo records the requested tracking id.
func (s *ReplaySource) RestrictTo(trackingID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restricted = append(s.restricted, trackingID)
	return nil
}

// ClearRestriction records the call.
func (s *ReplaySource) ClearRestriction() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearCalls++
	return nil
}

// Restrictions returns every tracking id passed to RestrictTo, in order.
func (s *ReplaySource) Restrictions() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int64(nil), s.restricted...)
}

// ClearCalls returns how many times ClearRestriction was invoked.
func (s *ReplaySource) ClearCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clearCalls
}
