package route

import (
	"math"

	"github.com/Primav1022/SynWorld-VSIbench/core"
)

// ClassifyTurn — per-leg turn classification.
//
// Description:
//
//	Given the walker's current facing vector and the vector toward the
//	next waypoint, decides which way the walker must rotate before
//	moving. Both vectors are normalized first; a zero-length vector is
//	invalid geometry.
//
// Rules, in order (normalized vectors, cross = facing×target,
// dot = facing·target):
//  1. |dot| < 0.1 — near-perpendicular: cross > 0 ⇒ TurnLeft, else TurnRight.
//  2. dot < -0.5 — the leg reverses the walker ⇒ TurnBack.
//  3. Otherwise: cross > 0 ⇒ TurnLeft, else TurnRight.
//
// A dead-ahead leg (cross == 0, dot > 0) deliberately classifies as
// TurnRight: there is no straight label in the answer vocabulary.
//
// Complexity: O(1).
func ClassifyTurn(facing, toTarget core.Vec2) (Turn, error) {
	f, ok := facing.Normalize()
	if !ok {
		return "", ErrDegenerateLeg
	}
	t, ok := toTarget.Normalize()
	if !ok {
		return "", ErrDegenerateLeg
	}

	cross := f.Cross(t)
	dot := f.Dot(t)

	switch {
	case math.Abs(dot) < perpendicularDot:
		if cross > 0 {
			return TurnLeft, nil
		}
		return TurnRight, nil
	case dot < reverseDot:
		return TurnBack, nil
	case cross > 0:
		return TurnLeft, nil
	default:
		return TurnRight, nil
	}
}

// Walk classifies every leg of a path. The walker starts at start with the
// given facing vector and visits the waypoints in order; after each leg it
// faces the direction just traveled.
//
// A TurnBack on any leg rejects the whole route with ErrReversalTurn — a
// reversal has no canonical left/right resolution. Degenerate legs
// propagate ErrDegenerateLeg.
//
// Complexity: O(len(waypoints)).
func Walk(start, facing core.Vec2, waypoints []core.Vec2) ([]Turn, error) {
	if len(waypoints) == 0 {
		return nil, ErrEmptyRoute
	}

	turns := make([]Turn, 0, len(waypoints))
	pos, dir := start, facing
	for _, wp := range waypoints {
		to := wp.Sub(pos)
		turn, err := ClassifyTurn(dir, to)
		if err != nil {
			return nil, err
		}
		if turn == TurnBack {
			return nil, ErrReversalTurn
		}
		turns = append(turns, turn)
		dir = to
		pos = wp
	}
	return turns, nil
}
