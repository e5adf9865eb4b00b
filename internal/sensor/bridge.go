package sensor

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/ayusman/bodypilot/internal/skeleton"
)

// Wire format spoken with the tracking bridge. Frames flow in as JSON text
// messages; restriction commands flow out the same way.
type wireJoint struct {
	ID       string  `json:"id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Z        float64 `json:"z"`
	Tracking string  `json:"tracking"`
}

type wireBody struct {
	TrackingID int64       `json:"trackingId"`
	State      string      `json:"state"`
	Joints     []wireJoint `json:"joints"`
}

type wireFrame struct {
	Timestamp int64      `json:"timestamp"`
	Bodies    []wireBody `json:"bodies"`
}

type wireControl struct {
	Type       string `json:"type"` // "restrict" or "clear"
	TrackingID int64  `json:"trackingId,omitempty"`
}

// BridgeSource receives pose frames from a skeletal-tracking bridge process
// over a WebSocket connection.
type BridgeSource struct {
	url  string
	mu   sync.Mutex // guards conn for writes and replacement
	conn *websocket.Conn
}

// NewBridgeSource creates a source that will connect to the bridge at the
// given WebSocket URL, e.g. "ws://127.0.0.1:9350/frames".
func NewBridgeSource(url string) *BridgeSource {
	return &BridgeSource{url: url}
}

// Run connects to the bridge and delivers frames to the handler until the
// context is cancelled or the connection drops.
func (s *BridgeSource) Run(ctx context.Context, h Handler) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, s.url, nil)
	if err != nil {
		return fmt.Errorf("dial bridge %s: %w", s.url, err)
	}

	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.conn = nil
		s.mu.Unlock()
		conn.Close()
	}()

	// Close the connection when the context ends so the read loop unblocks.
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	for {
		var wf wireFrame
		if err := conn.ReadJSON(&wf); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("read frame: %w", err)
		}
		h(decodeFrame(&wf))
	}
}

// RestrictTo asks the bridge to only report the given body.
func (s *BridgeSource) RestrictTo(trackingID int64) error {
	return s.writeControl(wireControl{Type: "restrict", TrackingID: trackingID})
}

// ClearRestriction asks the bridge to resume reporting all bodies.
func (s *BridgeSource) ClearRestriction() error {
	return s.writeControl(wireControl{Type: "clear"})
}

func (s *BridgeSource) writeControl(c wireControl) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return ErrNotConnected
	}
	return s.conn.WriteJSON(c)
}

// decodeFrame converts a wire frame into the model. Joints the bridge did
// not send stay NotTracked, so a body always carries the full landmark set.
func decodeFrame(wf *wireFrame) *skeleton.Frame {
	frame := &skeleton.Frame{
		Timestamp: wf.Timestamp,
		Bodies:    make([]skeleton.Body, 0, len(wf.Bodies)),
	}

	for _, wb := range wf.Bodies {
		body := skeleton.Body{
			TrackingID: wb.TrackingID,
			State:      skeleton.BodyStateByName(wb.State),
		}
		for id := skeleton.JointID(0); id < skeleton.NumJoints; id++ {
			body.Joints[id].ID = id
		}
		for _, wj := range wb.Joints {
			id, ok := skeleton.JointByName(wj.ID)
			if !ok {
				log.Printf("bridge sent unknown joint %q, skipping", wj.ID)
				continue
			}
			body.Joints[id] = skeleton.Joint{
				ID:       id,
				Position: skeleton.Point3D{X: wj.X, Y: wj.Y, Z: wj.Z},
				Tracking: skeleton.TrackingByName(wj.Tracking),
			}
		}
		frame.Bodies = append(frame.Bodies, body)
	}

	return frame
}

// encodeFrame converts a model frame to the wire format. The replay tooling
// and tests use it to feed a BridgeSource.
func encodeFrame(f *skeleton.Frame) *wireFrame {
	wf := &wireFrame{Timestamp: f.Timestamp}
	for i := range f.Bodies {
		b := &f.Bodies[i]
		wb := wireBody{
			TrackingID: b.TrackingID,
			State:      b.State.String(),
		}
		for _, j := range b.Joints {
			wb.Joints = append(wb.Joints, wireJoint{
				ID:       j.ID.String(),
				X:        j.Position.X,
				Y:        j.Position.Y,
				Z:        j.Position.Z,
				Tracking: j.Tracking.String(),
			})
		}
		wf.Bodies = append(wf.Bodies, wb)
	}
	return wf
}

// MarshalFrame encodes a frame as bridge wire JSON.
func MarshalFrame(f *skeleton.Frame) ([]byte, error) {
	return json.Marshal(encodeFrame(f))
}
