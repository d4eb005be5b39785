package direction

import (
	"math"

	"github.com/Primav1022/SynWorld-VSIbench/core"
)

// Frame — local 2D coordinate frame of an observer.
//
// Description:
//
//	A frame is anchored at the standing actor's ground position, with
//	Forward pointing toward the facing actor and Right its clockwise
//	perpendicular (right-hand side of the observer). Both axes are unit
//	length and mutually orthogonal.
//
// Construction:
//  1. origin  = standing
//  2. forward = normalize(facing - standing); a zero-length difference is
//     invalid geometry and yields ErrDegenerateFrame.
//  3. right   = (forward.y, -forward.x)
type Frame struct {
	Origin  core.Vec2
	Forward core.Vec2
	Right   core.Vec2
}

// NewFrame builds the local frame for a standing/facing pair.
func NewFrame(standing, facing core.Vec2) (Frame, error) {
	forward, ok := facing.Sub(standing).Normalize()
	if !ok {
		return Frame{}, ErrDegenerateFrame
	}
	return Frame{
		Origin:  standing,
		Forward: forward,
		Right:   core.Vec2{X: forward.Y, Y: -forward.X},
	}, nil
}

// Localize maps a world point into the frame: X is the projection onto
// Right (positive to the observer's right), Y onto Forward (positive in
// front of the observer).
func (f Frame) Localize(p core.Vec2) core.Vec2 {
	rel := p.Sub(f.Origin)
	return core.Vec2{X: rel.Dot(f.Right), Y: rel.Dot(f.Forward)}
}

// Judgment is a direction classification at all three granularities plus
// the raw quantities backing it.
type Judgment struct {
	// Local is the target in frame coordinates.
	Local core.Vec2
	// AngleDeg is atan2(x, y) in degrees, range (-180, 180]. Zero points
	// straight ahead; positive angles turn right.
	AngleDeg float64
	// Offset is ‖Local‖, the distance tested against the ambiguity policy.
	Offset float64
	// Hard, Medium, Easy are the three granularity labels.
	Hard   Label
	Medium Label
	Easy   Label
	// Quadrant is the roman-numeral tag of the hard label ("quadrant I"..).
	Quadrant string
}

// Classify judges a target's direction within a frame at the three
// granularities.
//
// Hard is the sign quadrant of the local coordinates; medium collapses the
// plane into left/right with a ±135° back sector; easy keeps only the
// left/right half of the hard label.
//
// Complexity: O(1).
func Classify(f Frame, locate core.Vec2) Judgment {
	local := f.Localize(locate)
	angle := math.Atan2(local.X, local.Y) * 180 / math.Pi

	j := Judgment{
		Local:    local,
		AngleDeg: angle,
		Offset:   local.Norm(),
	}

	switch {
	case local.X >= 0 && local.Y >= 0:
		j.Hard, j.Easy, j.Quadrant = FrontRight, Right, "quadrant I"
	case local.X < 0 && local.Y >= 0:
		j.Hard, j.Easy, j.Quadrant = FrontLeft, Left, "quadrant II"
	case local.X < 0 && local.Y < 0:
		j.Hard, j.Easy, j.Quadrant = BackLeft, Left, "quadrant III"
	default: // x >= 0, y < 0
		j.Hard, j.Easy, j.Quadrant = BackRight, Right, "quadrant IV"
	}

	switch {
	case angle > backSectorDeg || angle < -backSectorDeg:
		j.Medium = Back
	case angle >= -backSectorDeg && angle < 0:
		j.Medium = Left
	default:
		j.Medium = Right
	}

	return j
}
