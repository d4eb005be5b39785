// Package route walks candidate paths between scene objects and
// synthesizes turn-instruction multiple-choice questions.
//
// A route starts at a begin actor, initially facing a nearby facing actor,
// and visits one optional intermediate stop before ending at a distant end
// actor. Each leg's required rotation is classified as Turn Left or Turn
// Right from the cross and dot products of the normalized facing and leg
// vectors; a leg that would reverse the walker (dot < -0.5) has no
// canonical resolution, so the entire route is discarded. After every leg
// the walker faces the direction it just traveled.
//
// Single-leg routes ask for one turn over the three fixed labels; longer
// routes ask for the full comma-joined turn sequence against three
// generated same-length alternatives, deduplicated as a set.
//
// The feasibility distances (begin→end ≥ 1 m, neighbour hops ≤ 2 m) and
// classification thresholds are preserved contract values.
package route
