// Package core - shared types and sentinel errors for the synthesis engine.
package core

import (
	"errors"
	"strings"
)

// Sentinel errors for scene construction.
var (
	// ErrNoActors indicates an attempt to build a scene without actors.
	ErrNoActors = errors.New("core: scene must contain at least one actor")
	// ErrDuplicateActor indicates two actors share the same ID.
	ErrDuplicateActor = errors.New("core: actor IDs must be unique within a scene")
	// ErrNilOracle indicates a scene was built without a distance oracle.
	ErrNilOracle = errors.New("core: distance oracle must not be nil")
)

// Actor is an immutable scene object: a stable ID, a semantic Kind (the
// coarse type grouping, e.g. "chair"), an optional free-form Description,
// world-space position and size in meters, and the frame index of its first
// appearance in the source video.
type Actor struct {
	ID          string
	Kind        string
	Description string
	Position    Vec3
	Size        Vec3
	FirstFrame  int

	displayName string
}

// NewActor builds an actor and resolves its display name exactly once:
// the trimmed Description when non-empty, otherwise the Kind.
func NewActor(id, kind, description string, position, size Vec3, firstFrame int) Actor {
	display := strings.TrimSpace(description)
	if display == "" {
		display = kind
	}
	return Actor{
		ID:          id,
		Kind:        kind,
		Description: description,
		Position:    position,
		Size:        size,
		FirstFrame:  firstFrame,
		displayName: display,
	}
}

// DisplayName returns the name used in question text, resolved at
// construction time.
func (a Actor) DisplayName() string { return a.displayName }

// OverlapsXY reports whether the axis-aligned XY footprints of a and b
// overlap. Sizes are full extents centered on the position.
func (a Actor) OverlapsXY(b Actor) bool {
	axMin, axMax := a.Position.X-a.Size.X/2, a.Position.X+a.Size.X/2
	ayMin, ayMax := a.Position.Y-a.Size.Y/2, a.Position.Y+a.Size.Y/2
	bxMin, bxMax := b.Position.X-b.Size.X/2, b.Position.X+b.Size.X/2
	byMin, byMax := b.Position.Y-b.Size.Y/2, b.Position.Y+b.Size.Y/2

	return axMin <= bxMax && axMax >= bxMin && ayMin <= byMax && ayMax >= byMin
}

// Relation identifies the question family a record belongs to.
type Relation int

const (
	// RelationDirection - relative direction in a local frame.
	RelationDirection Relation = iota
	// RelationDistance - nearest-object ranking.
	RelationDistance
	// RelationRoute - multi-leg route navigation.
	RelationRoute
	// RelationOrder - temporal first-appearance order.
	RelationOrder
)

// String returns the canonical relation name.
func (r Relation) String() string {
	switch r {
	case RelationDirection:
		return "relative_direction"
	case RelationDistance:
		return "relative_distance"
	case RelationRoute:
		return "route_plan"
	case RelationOrder:
		return "appearance_order"
	default:
		return "unknown"
	}
}

// Difficulty tags a question's granularity. Only direction and route
// questions carry a tag; the other relations use DifficultyNone.
type Difficulty int

const (
	// DifficultyNone - the relation has a single granularity.
	DifficultyNone Difficulty = iota
	// DifficultyEasy - coarsest judgment (binary left/right, single turn).
	DifficultyEasy
	// DifficultyMedium - three-way judgment with a back sector.
	DifficultyMedium
	// DifficultyHard - finest judgment (quadrants, turn sequences).
	DifficultyHard
)

// String returns the canonical difficulty name.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return "none"
	}
}

// Question is one emitted multiple-choice record. Options are ordered and
// pre-formatted ("A. value", "B. value", ...); Answer is the single letter
// of the correct option. Actors records the IDs of the tuple that produced
// the record, in enumeration role order.
//
// Invariant: exactly one option's text equals the canonical correct answer,
// and Answer indexes that option.
type Question struct {
	Text       string
	Options    []string
	Answer     string
	Relation   Relation
	Difficulty Difficulty
	Actors     []string
}
