// Package synworld turns a deduplicated catalogue of 3D scene objects
// ("actors") into large batches of verifiable multiple-choice
// spatial-reasoning questions.
//
// 🚀 What is SynWorld-VSIbench?
//
//	A deterministic, zero-I/O question-synthesis engine that brings together:
//		• Scene primitives: actors, symmetric distance oracle, ambiguity policy
//		• Choice building: shuffle-and-letter construction with a proven
//		  one-correct-option contract
//		• Relative direction: local-frame classification at three granularities
//		• Relative distance: nearest-type ranking with representative dedup
//		• Route planning: per-leg turn classification with reversal rejection
//		• Appearance order: first-appearance ranking over actor quadruples
//
// ✨ Why this layout?
//
//   - Reproducible – every shuffle stems from a seedable RNG; a fixed seed
//     yields byte-identical output, even across parallel workers
//   - Side-effect free – the engine never reads or writes files; collaborators
//     hand it actors, distances and a room area, and receive question records
//   - Exact contracts – ambiguity thresholds and turn tie-breaks are
//     preserved verbatim; downstream datasets depend on them
//
// Everything is organized under six subpackages:
//
//	core/      — Actor, Scene, DistanceOracle, ambiguity threshold, RNG, Question
//	choice/    — generic multiple-choice constructor with loud failure
//	direction/ — relative-direction solver (hard/medium/easy)
//	distance/  — nearest-object ranking solver
//	route/     — multi-leg route navigation solver
//	order/     — temporal appearance-order solver
//
// Quick ASCII example (standing at S, facing F, locating C):
//
//	        C
//	        │
//	   F────┘        C sits front-right of S:
//	   │             forward = S→F, right = clockwise
//	   S             perpendicular, C projects to (+x, +y)
//
// Each solver exposes Generate(scene, opts) returning the emitted question
// records plus enumeration statistics. See the package docs for details.
package synworld
