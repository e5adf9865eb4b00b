package gesture

import "github.com/ayusman/bodypilot/internal/skeleton"

// Sensitivity scales the wrist-to-shoulder horizontal distance when deciding
// whether an arm is held close to the body or extended sideways. A scaled
// distance below the shoulder span counts as close, above it as extended.
const Sensitivity = 5.0

// RequiredJoints lists every landmark the classifier reads. A body missing
// any of them cannot be classified and is treated as no subject.
var RequiredJoints = []skeleton.JointID{
	skeleton.Head,
	skeleton.Spine,
	skeleton.ShoulderCenter,
	skeleton.HipCenter,
	skeleton.ShoulderLeft,
	skeleton.ShoulderRight,
	skeleton.ElbowLeft,
	skeleton.ElbowRight,
	skeleton.WristLeft,
	skeleton.WristRight,
}

// Classifiable reports whether the body carries positions for every joint
// the predicates compare.
func Classifiable(b *skeleton.Body) bool {
	return b != nil && b.HasTracked(RequiredJoints...)
}

// rule pairs a posture predicate with the intent it produces. The guard
// restricts evaluation to one flying-mode state; a nil guard always applies.
type rule struct {
	intent Intent
	guard  func(flying bool) bool
	match  func(b *skeleton.Body) bool
}

// rules is the priority order: the first matching rule wins and later rules
// are not evaluated. Stay comes first so it suppresses everything else. The
// flight toggles are guarded by the current mode, which makes them
// edge-triggered: holding the posture after the toggle simply falls through
// to the locomotion rules.
var rules = []rule{
	{intent: Stay, match: wristsHanging},
	{intent: StartFlying, guard: func(flying bool) bool { return !flying }, match: elbowsOverhead},
	{intent: StopFlying, guard: func(flying bool) bool { return flying }, match: leftArmTucked},
	{intent: GoUp, match: wristsOverhead},
	{intent: GoDown, match: wristsAtWaist},
	{intent: GoForward, match: rightArmTucked},
	{intent: GoLeft, match: leftArmExtended},
	{intent: GoRight, match: rightArmExtended},
}

// Classify evaluates the rule table against the body and returns the single
// intent for this frame together with the flying mode after the frame.
// It is a pure function of (joints, flying).
func Classify(b *skeleton.Body, flying bool) (Intent, bool) {
	if !Classifiable(b) {
		return None, flying
	}

	for _, r := range rules {
		if r.guard != nil && !r.guard(flying) {
			continue
		}
		if !r.match(b) {
			continue
		}
		switch r.intent {
		case StartFlying:
			return StartFlying, true
		case StopFlying:
			return StopFlying, false
		}
		return r.intent, flying
	}

	return None, flying
}

func height(b *skeleton.Body, id skeleton.JointID) float64 {
	return b.Joint(id).Position.Y
}

// wristsHanging: both wrists below the hip center, arms at rest.
func wristsHanging(b *skeleton.Body) bool {
	hip := height(b, skeleton.HipCenter)
	return height(b, skeleton.WristLeft) < hip && height(b, skeleton.WristRight) < hip
}

// elbowsOverhead: both elbows raised above the head.
func elbowsOverhead(b *skeleton.Body) bool {
	head := height(b, skeleton.Head)
	return height(b, skeleton.ElbowLeft) > head && height(b, skeleton.ElbowRight) > head
}

// wristsOverhead: both wrists raised above the head.
func wristsOverhead(b *skeleton.Body) bool {
	head := height(b, skeleton.Head)
	return height(b, skeleton.WristLeft) > head && height(b, skeleton.WristRight) > head
}

// wristsAtWaist: both wrists below the torso midpoint but still above the
// hip center.
func wristsAtWaist(b *skeleton.Body) bool {
	hip := height(b, skeleton.HipCenter)
	mid := (height(b, skeleton.ShoulderCenter) + hip) / 2
	left := height(b, skeleton.WristLeft)
	right := height(b, skeleton.WristRight)
	return left < mid && right < mid && left > hip && right > hip
}

// inTorsoBand: the joint's height lies within the inclusive spine-to-head
// band.
func inTorsoBand(b *skeleton.Body, id skeleton.JointID) bool {
	y := height(b, id)
	return y >= height(b, skeleton.Spine) && y <= height(b, skeleton.Head)
}

func shoulderSpan(b *skeleton.Body) float64 {
	return skeleton.HorizontalDistance(
		b.Joint(skeleton.ShoulderLeft).Position,
		b.Joint(skeleton.ShoulderRight).Position,
	)
}

// armClose: the scaled wrist-to-shoulder horizontal distance stays under the
// shoulder span, i.e. the arm is held against the body.
func armClose(b *skeleton.Body, wrist, shoulder skeleton.JointID) bool {
	d := skeleton.HorizontalDistance(b.Joint(wrist).Position, b.Joint(shoulder).Position)
	return d*Sensitivity < shoulderSpan(b)
}

// armExtended: the scaled distance exceeds the shoulder span, i.e. the arm
// is stretched sideways.
func armExtended(b *skeleton.Body, wrist, shoulder skeleton.JointID) bool {
	d := skeleton.HorizontalDistance(b.Joint(wrist).Position, b.Joint(shoulder).Position)
	return d*Sensitivity > shoulderSpan(b)
}

// leftArmTucked: left wrist in the torso band close to the body, right
// wrist outside the band.
func leftArmTucked(b *skeleton.Body) bool {
	return inTorsoBand(b, skeleton.WristLeft) &&
		!inTorsoBand(b, skeleton.WristRight) &&
		armClose(b, skeleton.WristLeft, skeleton.ShoulderLeft)
}

// rightArmTucked mirrors leftArmTucked on the right arm.
func rightArmTucked(b *skeleton.Body) bool {
	return inTorsoBand(b, skeleton.WristRight) &&
		!inTorsoBand(b, skeleton.WristLeft) &&
		armClose(b, skeleton.WristRight, skeleton.ShoulderRight)
}

// leftArmExtended: left arm stretched sideways at torso height, right wrist
// outside the band.
func leftArmExtended(b *skeleton.Body) bool {
	return armExtended(b, skeleton.WristLeft, skeleton.ShoulderLeft) &&
		!inTorsoBand(b, skeleton.WristRight) &&
		inTorsoBand(b, skeleton.WristLeft)
}

// rightArmExtended mirrors leftArmExtended on the right arm.
func rightArmExtended(b *skeleton.Body) bool {
	return armExtended(b, skeleton.WristRight, skeleton.ShoulderRight) &&
		!inTorsoBand(b, skeleton.WristLeft) &&
		inTorsoBand(b, skeleton.WristRight)
}
