// Package order - options, sentinel errors, and result types for the
// appearance-order solver.
package order

import (
	"errors"

	"github.com/Primav1022/SynWorld-VSIbench/core"
)

// ErrNilScene indicates Generate was called without a scene.
var ErrNilScene = errors.New("order: scene must not be nil")

// groupSize is the number of actors per question: every question ranks
// exactly four first appearances.
const groupSize = 4

// incorrectOptions is the number of wrong permutations sampled per
// question.
const incorrectOptions = 3

// Options configures the order solver.
//
// Fields:
//   - Seed — RNG seed for presentation reshuffles, permutation sampling,
//     and option shuffles; 0 selects the fixed default stream. Output is a
//     pure function of Seed.
type Options struct {
	Seed int64
}

// DefaultOptions returns the deterministic default configuration.
func DefaultOptions() Options {
	return Options{Seed: 0}
}

// Result carries the emitted questions plus enumeration statistics.
type Result struct {
	// Questions holds one record per accepted quadruple, in combination
	// order.
	Questions []core.Question
	// Enumerated counts candidate 4-combinations examined.
	Enumerated int
	// Skipped counts combinations that could not yield a well-formed
	// option pool (duplicate display names collapsing the permutations).
	Skipped int
	// Violations counts construction invariant failures.
	Violations int
}
