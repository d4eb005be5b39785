// Package distance - options, sentinel errors, and result types for the
// nearest-object ranking solver.
package distance

import (
	"errors"

	"github.com/Primav1022/SynWorld-VSIbench/core"
)

// ErrNilScene indicates Generate was called without a scene.
var ErrNilScene = errors.New("distance: scene must not be nil")

// optionCount is the fixed number of answer options: the four closest
// object types around the primary.
const optionCount = 4

// Options configures the distance solver.
//
// Fields:
//   - Seed — RNG seed for option shuffles; 0 selects the fixed default
//     stream. Output is a pure function of Seed.
type Options struct {
	Seed int64
}

// DefaultOptions returns the deterministic default configuration.
func DefaultOptions() Options {
	return Options{Seed: 0}
}

// Result carries the emitted questions plus enumeration statistics.
type Result struct {
	// Questions holds one record per accepted primary, in scene order.
	Questions []core.Question
	// Enumerated counts eligible primaries examined (actors whose Kind is
	// unique in the scene).
	Enumerated int
	// Skipped counts primaries dropped for insufficient distinct types or
	// an ambiguous top-2 gap.
	Skipped int
	// Violations counts construction invariant failures.
	Violations int
}
