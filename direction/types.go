// Package direction - labels, options, sentinel errors, and result types
// for the relative-direction solver.
package direction

import (
	"errors"

	"github.com/Primav1022/SynWorld-VSIbench/core"
)

// Sentinel errors for direction solving.
var (
	// ErrNilScene indicates Generate was called without a scene.
	ErrNilScene = errors.New("direction: scene must not be nil")
	// ErrDegenerateFrame indicates standing and facing share the same
	// ground position, leaving the forward direction undefined.
	ErrDegenerateFrame = errors.New("direction: standing and facing coincide, forward direction undefined")
)

// Label is a direction answer at one of the three granularities.
type Label string

// Hard-granularity quadrant labels and the coarser medium/easy labels.
const (
	FrontLeft  Label = "front-left"
	FrontRight Label = "front-right"
	BackLeft   Label = "back-left"
	BackRight  Label = "back-right"
	Left       Label = "left"
	Right      Label = "right"
	Back       Label = "back"
)

// Fixed option pools per granularity. These are contracts: option sets
// never depend on the combination being judged.
var (
	hardPool   = []string{string(FrontLeft), string(FrontRight), string(BackLeft), string(BackRight)}
	mediumPool = []string{string(Left), string(Right), string(Back)}
	easyPool   = []string{string(Left), string(Right)}
)

// backSectorDeg is the half-angle of the medium "back" sector: an object is
// behind the observer when facing it requires turning more than this.
const backSectorDeg = 135.0

// Options configures the direction solver.
//
// Fields:
//   - Seed    — RNG seed for option shuffles; 0 selects the fixed default
//     stream. Output is a pure function of Seed.
//   - Workers — number of goroutines sharding the standing-actor axis.
//     Values < 2 run single-threaded. The emitted questions are identical
//     for every worker count: each standing index draws from its own
//     derived RNG stream.
type Options struct {
	Seed    int64
	Workers int
}

// DefaultOptions returns the single-threaded deterministic configuration.
func DefaultOptions() Options {
	return Options{Seed: 0, Workers: 1}
}

// Result carries the emitted questions plus enumeration statistics.
type Result struct {
	// Questions holds one record per non-ambiguous granularity of each
	// accepted triple, in enumeration order.
	Questions []core.Question
	// Enumerated counts candidate (standing, facing, locate) triples.
	Enumerated int
	// Skipped counts triples dropped for degenerate frames or because all
	// granularities were ambiguous.
	Skipped int
	// Violations counts construction invariant failures (latent bugs
	// surfaced by the choice builder), each of which dropped a record.
	Violations int
}
