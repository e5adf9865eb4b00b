// Package gesture classifies a tracked body's joint geometry into a single
// navigation intent per frame.
package gesture

// Intent is the classifier's discrete output for one frame. Exactly one
// value is produced per frame, never more.
type Intent int

const (
	None Intent = iota
	Stay
	StartFlying
	StopFlying
	GoUp
	GoDown
	GoForward
	GoLeft
	GoRight
)

var intentLabels = map[Intent]string{
	None:        "NONE",
	Stay:        "STAY",
	StartFlying: "START FLYING",
	StopFlying:  "STOP FLYING",
	GoUp:        "GO UP",
	GoDown:      "GO DOWN",
	GoForward:   "GO FORWARD",
	GoLeft:      "GO LEFT",
	GoRight:     "GO RIGHT",
}

// String returns the human-readable label used by the presentation
// side-channel, e.g. "GO LEFT".
func (i Intent) String() string {
	if label, ok := intentLabels[i]; ok {
		return label
	}
	return "NONE"
}
