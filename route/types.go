// Package route - turn labels, constraint constants, sentinel errors, and
// result types for the route-navigation solver.
package route

import (
	"errors"

	"github.com/Primav1022/SynWorld-VSIbench/core"
)

// Sentinel errors for route solving.
var (
	// ErrNilScene indicates Generate was called without a scene.
	ErrNilScene = errors.New("route: scene must not be nil")
	// ErrDegenerateLeg indicates a zero-length facing or leg vector.
	ErrDegenerateLeg = errors.New("route: zero-length facing or leg vector")
	// ErrEmptyRoute indicates a walk with no waypoints.
	ErrEmptyRoute = errors.New("route: route must visit at least one waypoint")
	// ErrReversalTurn indicates a leg required turning back, which has no
	// canonical left/right resolution; the whole route is rejected.
	ErrReversalTurn = errors.New("route: reversal turn has no left/right resolution")
)

// Turn is a per-leg rotation label.
type Turn string

// The three turn labels. TurnBack never appears in an emitted answer; it
// only marks a rejected route.
const (
	TurnLeft  Turn = "Turn Left"
	TurnRight Turn = "Turn Right"
	TurnBack  Turn = "Turn Back"
)

// Route feasibility constraints in meters. Contract values preserved from
// the source datasets.
const (
	// MinEndDistance is the minimum begin→end separation for a route to be
	// worth asking about.
	MinEndDistance = 1.0
	// NeighborDistance bounds begin→facing and each intermediate hop.
	NeighborDistance = 2.0
)

// Turn classification thresholds on normalized vectors. Contract values.
const (
	// perpendicularDot: |dot| below this means near-perpendicular, where
	// the cross product alone decides left/right.
	perpendicularDot = 0.1
	// reverseDot: dot below this means the leg reverses the walker.
	reverseDot = -0.5
)

// Alternative-sequence generation bounds for multi-leg questions.
const (
	wantAlternatives    = 3
	maxAlternativeTries = 64
)

// Options configures the route solver.
//
// Fields:
//   - Seed — RNG seed for option shuffles and alternative sequences; 0
//     selects the fixed default stream. Output is a pure function of Seed.
type Options struct {
	Seed int64
}

// DefaultOptions returns the deterministic default configuration.
func DefaultOptions() Options {
	return Options{Seed: 0}
}

// Result carries the emitted questions plus enumeration statistics.
type Result struct {
	// Questions holds one record per accepted route, in enumeration order.
	Questions []core.Question
	// Enumerated counts candidate routes (triples crossed with stop
	// variants) that satisfied the distance constraints.
	Enumerated int
	// Skipped counts routes rejected for degenerate legs or reversal turns.
	Skipped int
	// Violations counts construction invariant failures.
	Violations int
}
