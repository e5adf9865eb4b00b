// Package skeleton defines the pose-frame data model shared by the tracking
// and gesture packages: joints, bodies and per-tick frames.
//
// Coordinate convention: X grows to the subject's right, Y grows upward,
// Z grows away from the sensor. "Above" always means a strictly greater Y.
package skeleton

import "math"

// JointID identifies one landmark in the fixed skeleton layout.
type JointID int

// Skeleton landmark indices. Every Body carries exactly this set.
const (
	HipCenter JointID = iota
	Spine
	ShoulderCenter
	Head
	ShoulderLeft
	ElbowLeft
	WristLeft
	HandLeft
	ShoulderRight
	ElbowRight
	WristRight
	HandRight
	HipLeft
	KneeLeft
	AnkleLeft
	FootLeft
	HipRight
	KneeRight
	AnkleRight
	FootRight
	NumJoints
)

var jointNames = [NumJoints]string{
	HipCenter:      "hipCenter",
	Spine:          "spine",
	ShoulderCenter: "shoulderCenter",
	Head:           "head",
	ShoulderLeft:   "shoulderLeft",
	ElbowLeft:      "elbowLeft",
	WristLeft:      "wristLeft",
	HandLeft:       "handLeft",
	ShoulderRight:  "shoulderRight",
	ElbowRight:     "elbowRight",
	WristRight:     "wristRight",
	HandRight:      "handRight",
	HipLeft:        "hipLeft",
	KneeLeft:       "kneeLeft",
	AnkleLeft:      "ankleLeft",
	FootLeft:       "footLeft",
	HipRight:       "hipRight",
	KneeRight:      "kneeRight",
	AnkleRight:     "ankleRight",
	FootRight:      "footRight",
}

// String returns the wire name of the joint, or "unknown" for out-of-range ids.
func (id JointID) String() string {
	if id < 0 || id >= NumJoints {
		return "unknown"
	}
	return jointNames[id]
}

// JointByName resolves a wire name back to its JointID.
// The second return value is false if the name is not a known landmark.
func JointByName(name string) (JointID, bool) {
	for id, n := range jointNames {
		if n == name {
			return JointID(id), true
		}
	}
	return 0, false
}

// TrackingState describes the sensor's confidence for a single joint.
type TrackingState int

const (
	NotTracked TrackingState = iota
	Inferred
	Tracked
)

// String returns the wire name of the tracking state.
func (s TrackingState) String() string {
	switch s {
	case Inferred:
		return "inferred"
	case Tracked:
		return "tracked"
	default:
		return "notTracked"
	}
}

// TrackingByName resolves a wire name back to a TrackingState.
func TrackingByName(name string) TrackingState {
	switch name {
	case "tracked":
		return Tracked
	case "inferred":
		return Inferred
	default:
		return NotTracked
	}
}

// Point3D is a position in sensor space.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Joint is one landmark of a body in a single frame. Joints are immutable
// once a frame has been assembled.
type Joint struct {
	ID       JointID
	Position Point3D
	Tracking TrackingState
}

// BodyState describes how completely the sensor is tracking a body.
type BodyState int

const (
	BodyNotTracked BodyState = iota
	BodyPositionOnly
	BodyFullyTracked
)

// String returns the wire name of the body state.
func (s BodyState) String() string {
	switch s {
	case BodyPositionOnly:
		return "positionOnly"
	case BodyFullyTracked:
		return "tracked"
	default:
		return "notTracked"
	}
}

// BodyStateByName resolves a wire name back to a BodyState.
func BodyStateByName(name string) BodyState {
	switch name {
	case "tracked":
		return BodyFullyTracked
	case "positionOnly":
		return BodyPositionOnly
	default:
		return BodyNotTracked
	}
}

// Body is one candidate tracked subject in a frame, identified by a stable
// tracking id. The joint array always holds the full landmark set; joints
// the sensor did not see carry the NotTracked state.
type Body struct {
	TrackingID int64
	State      BodyState
	Joints     [NumJoints]Joint
}

// Joint returns the body's joint for the given landmark.
func (b *Body) Joint(id JointID) Joint {
	return b.Joints[id]
}

// HasTracked reports whether every listed joint carries a position, i.e.
// its tracking state is Tracked or Inferred.
func (b *Body) HasTracked(ids ...JointID) bool {
	for _, id := range ids {
		if b.Joints[id].Tracking == NotTracked {
			return false
		}
	}
	return true
}

// Frame is the set of bodies visible to the sensor at one sampling instant.
// Frames are ephemeral: produced once per tick, consumed immediately.
type Frame struct {
	Timestamp int64
	Bodies    []Body
}

// HorizontalDistance returns the absolute X-axis distance between two points.
func HorizontalDistance(a, b Point3D) float64 {
	return math.Abs(a.X - b.X)
}
