// Package choice defines the option-pool contract and sentinel errors for
// multiple-choice construction.
package choice

import "errors"

// Sentinel errors for choice construction. A solver receiving any of these
// must drop the offending combination rather than emit a corrupt record.
var (
	// ErrPoolSize indicates the option pool is outside [2, 26] candidates.
	ErrPoolSize = errors.New("choice: option pool must hold between 2 and 26 candidates")
	// ErrCorrectMissing indicates the correct value is absent from the pool.
	ErrCorrectMissing = errors.New("choice: correct value not found in option pool")
	// ErrCorrectDuplicated indicates the correct value occurs more than once
	// in the pool, so no single letter could identify it.
	ErrCorrectDuplicated = errors.New("choice: correct value duplicated in option pool")
	// ErrAlternativeSpace indicates the bounded retry budget was exhausted
	// before enough distinct incorrect alternatives were collected.
	ErrAlternativeSpace = errors.New("choice: alternative space exhausted before enough distinct options")
)

// Pool size bounds. 26 letters cap the pool; real pools hold 2-4 options.
const (
	minPool = 2
	maxPool = 26
)

// Choice is a constructed multiple-choice option set.
type Choice struct {
	// Values holds the post-shuffle raw option texts, in presentation order.
	Values []string
	// Options holds the formatted texts: "A. value", "B. value", ...
	Options []string
	// Index is the position of the correct option within Values/Options.
	Index int
	// Answer is the letter of the correct option ("A".."Z").
	Answer string
}
