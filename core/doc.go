// Package core defines the shared primitives of the question-synthesis
// engine: immutable actors, the read-only Scene view, the symmetric
// DistanceOracle, the per-scene ambiguity threshold, the Question record
// emitted by every solver, and the deterministic RNG utilities all solvers
// draw from.
//
// Nothing in this package performs I/O or mutates state after construction.
// A Scene is built once per enumeration pass; its ambiguity threshold is
// computed exactly once and stays constant for the whole pass.
package core
