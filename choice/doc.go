// Package choice builds shuffled multiple-choice option sets with a
// verifiably unique correct answer.
//
// Every relation solver in this module repeats the same final step: take a
// canonical correct value and a handful of distractors, shuffle them,
// prefix letters, and report which letter is correct. This package proves
// that step once and is reused everywhere, so the one-correct-option
// invariant cannot drift between solvers.
//
// Failure is loud: if the correct value cannot be located after
// the shuffle, or the pool violates its preconditions, Build returns a
// sentinel error and the caller drops the combination. A corrupt record is
// never emitted with a defaulted answer letter.
//
// For sequence-valued answers (route turn sequences, appearance orders),
// Alternatives enforces uniqueness over a set of formatted strings with a
// bounded retry budget, so a small alternative space terminates instead of
// spinning.
package choice
