package skeleton

// Fixture bodies for tests. All of them describe a subject standing roughly
// 2.5m from the sensor, facing it, with the pose varied per fixture.
//
// Reference heights used throughout: hip center 1.0, spine 1.2,
// shoulder center 1.45, head 1.65. Shoulders sit at x = -0.2 / +0.2,
// so the shoulder span is 0.4.

// baseBody returns a fully tracked neutral stance: arms hanging at the
// sides, both wrists below the hip line.
func baseBody(trackingID int64) Body {
	b := Body{
		TrackingID: trackingID,
		State:      BodyFullyTracked,
	}

	positions := [NumJoints]Point3D{
		HipCenter:      {X: 0, Y: 1.0, Z: 2.5},
		Spine:          {X: 0, Y: 1.2, Z: 2.5},
		ShoulderCenter: {X: 0, Y: 1.45, Z: 2.5},
		Head:           {X: 0, Y: 1.65, Z: 2.5},
		ShoulderLeft:   {X: -0.2, Y: 1.4, Z: 2.5},
		ElbowLeft:      {X: -0.25, Y: 1.15, Z: 2.5},
		WristLeft:      {X: -0.28, Y: 0.9, Z: 2.5},
		HandLeft:       {X: -0.28, Y: 0.82, Z: 2.5},
		ShoulderRight:  {X: 0.2, Y: 1.4, Z: 2.5},
		ElbowRight:     {X: 0.25, Y: 1.15, Z: 2.5},
		WristRight:     {X: 0.28, Y: 0.9, Z: 2.5},
		HandRight:      {X: 0.28, Y: 0.82, Z: 2.5},
		HipLeft:        {X: -0.1, Y: 1.0, Z: 2.5},
		KneeLeft:       {X: -0.12, Y: 0.55, Z: 2.5},
		AnkleLeft:      {X: -0.12, Y: 0.12, Z: 2.5},
		FootLeft:       {X: -0.12, Y: 0.02, Z: 2.6},
		HipRight:       {X: 0.1, Y: 1.0, Z: 2.5},
		KneeRight:      {X: 0.12, Y: 0.55, Z: 2.5},
		AnkleRight:     {X: 0.12, Y: 0.12, Z: 2.5},
		FootRight:      {X: 0.12, Y: 0.02, Z: 2.6},
	}

	for id := JointID(0); id < NumJoints; id++ {
		b.Joints[id] = Joint{ID: id, Position: positions[id], Tracking: Tracked}
	}
	return b
}

// setJoint moves a single joint, keeping it tracked.
func setJoint(b *Body, id JointID, x, y float64) {
	b.Joints[id].Position.X = x
	b.Joints[id].Position.Y = y
}

// StandingBody is a neutral stance with both wrists hanging below the hip
// line: the hold-position posture.
func StandingBody(trackingID int64) Body {
	return baseBody(trackingID)
}

// ArmsRaisedBody raises both wrists above the head while keeping the elbows
// below it: the ascend posture.
func ArmsRaisedBody(trackingID int64) Body {
	b := baseBody(trackingID)
	setJoint(&b, ElbowLeft, -0.22, 1.5)
	setJoint(&b, WristLeft, -0.2, 1.85)
	setJoint(&b, HandLeft, -0.2, 1.93)
	setJoint(&b, ElbowRight, 0.22, 1.5)
	setJoint(&b, WristRight, 0.2, 1.85)
	setJoint(&b, HandRight, 0.2, 1.93)
	return b
}

// ElbowsRaisedBody raises the whole arms overhead so that even the elbows
// sit above the head: the flight-toggle posture.
func ElbowsRaisedBody(trackingID int64) Body {
	b := baseBody(trackingID)
	setJoint(&b, ElbowLeft, -0.15, 1.8)
	setJoint(&b, WristLeft, -0.1, 2.0)
	setJoint(&b, HandLeft, -0.1, 2.08)
	setJoint(&b, ElbowRight, 0.15, 1.8)
	setJoint(&b, WristRight, 0.1, 2.0)
	setJoint(&b, HandRight, 0.1, 2.08)
	return b
}

// WristsLoweredBody lifts both wrists just above the hip line, below the
// torso midpoint: the descend posture.
func WristsLoweredBody(trackingID int64) Body {
	b := baseBody(trackingID)
	setJoint(&b, WristLeft, -0.3, 1.1)
	setJoint(&b, HandLeft, -0.3, 1.05)
	setJoint(&b, WristRight, 0.3, 1.1)
	setJoint(&b, HandRight, 0.3, 1.05)
	return b
}

// LeftArmTuckedBody holds the left wrist inside the spine-head band close to
// the body while the right arm hangs: the land posture while flying.
func LeftArmTuckedBody(trackingID int64) Body {
	b := baseBody(trackingID)
	setJoint(&b, ElbowLeft, -0.24, 1.2)
	setJoint(&b, WristLeft, -0.22, 1.4)
	setJoint(&b, HandLeft, -0.22, 1.48)
	return b
}

// RightArmTuckedBody mirrors LeftArmTuckedBody on the right arm: the
// move-forward posture.
func RightArmTuckedBody(trackingID int64) Body {
	b := baseBody(trackingID)
	setJoint(&b, ElbowRight, 0.24, 1.2)
	setJoint(&b, WristRight, 0.22, 1.4)
	setJoint(&b, HandRight, 0.22, 1.48)
	return b
}

// LeftArmExtendedBody stretches the left arm sideways at shoulder height
// while the right arm hangs: the turn-left posture.
func LeftArmExtendedBody(trackingID int64) Body {
	b := baseBody(trackingID)
	setJoint(&b, ElbowLeft, -0.45, 1.4)
	setJoint(&b, WristLeft, -0.7, 1.4)
	setJoint(&b, HandLeft, -0.78, 1.4)
	return b
}

// RightArmExtendedBody mirrors LeftArmExtendedBody on the right arm: the
// turn-right posture.
func RightArmExtendedBody(trackingID int64) Body {
	b := baseBody(trackingID)
	setJoint(&b, ElbowRight, 0.45, 1.4)
	setJoint(&b, WristRight, 0.7, 1.4)
	setJoint(&b, HandRight, 0.78, 1.4)
	return b
}

// PartialBody is a fully tracked body whose left wrist and elbow were lost
// by the sensor, so it must not be classifiable.
func PartialBody(trackingID int64) Body {
	b := baseBody(trackingID)
	b.Joints[WristLeft].Tracking = NotTracked
	b.Joints[ElbowLeft].Tracking = NotTracked
	return b
}

// SeatedBody is tracked at position-only quality and therefore never
// eligible for subject lock.
func SeatedBody(trackingID int64) Body {
	b := baseBody(trackingID)
	b.State = BodyPositionOnly
	return b
}

// FrameOf wraps bodies into a frame with a fixed timestamp.
func FrameOf(bodies ...Body) *Frame {
	return &Frame{Timestamp: 1700000000000, Bodies: bodies}
}
