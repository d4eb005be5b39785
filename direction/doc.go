// Package direction classifies where a target object sits relative to an
// observer and synthesizes multiple-choice questions at three granularities.
//
// The observer is defined by two actors: it stands at one and faces the
// other. That pair induces a local 2D frame (forward toward the facing
// actor, right its clockwise perpendicular); the target's position in this
// frame decides the answer:
//
//	hard    — sign quadrant: front-left / front-right / back-left / back-right
//	medium  — left / right, with a ±135° "back" sector
//	easy    — left / right only
//
// A judgment whose local offset falls below the scene's ambiguity threshold
// is dropped per granularity; a triple with nothing left emits no record.
// Enumeration covers all ordered triples of distinct actors — O(n³) — and
// can be sharded across workers without changing the output.
package direction
