package core

// Ambiguity threshold policy. The threshold is a behavioral contract:
// downstream dataset consumers depend on these exact values, so they are
// constants, not options.
const (
	// DefaultRoomArea is the floor area substituted by callers whose
	// ingestion could not determine the real one, in square meters.
	DefaultRoomArea = 20.0

	// largeRoomArea is the floor-area cutoff between the two thresholds.
	largeRoomArea = 40.0
	// tightThreshold applies to rooms of at most largeRoomArea.
	tightThreshold = 0.15
	// looseThreshold applies to rooms larger than largeRoomArea.
	looseThreshold = 0.30
)

// Threshold returns the ambiguity threshold in meters for a room of the
// given floor area: 0.30 for areas above 40 m², 0.15 otherwise. There are
// no other branches; invalid or missing areas must be substituted by the
// caller (see DefaultRoomArea) before invoking this policy.
func Threshold(roomAreaSqM float64) float64 {
	if roomAreaSqM > largeRoomArea {
		return looseThreshold
	}
	return tightThreshold
}

// DistanceOracle answers symmetric pairwise distance queries between actor
// IDs. The second return is false when the pair is unknown; absence is a
// distinct outcome, never zero.
type DistanceOracle interface {
	Distance(a, b string) (float64, bool)
}

// DistanceTable is a map-backed DistanceOracle. Set stores both orders, so
// lookups are symmetric by construction.
type DistanceTable struct {
	pairs map[[2]string]float64
}

// NewDistanceTable returns an empty table.
func NewDistanceTable() *DistanceTable {
	return &DistanceTable{pairs: make(map[[2]string]float64)}
}

// Set records the distance between a and b in both directions.
func (t *DistanceTable) Set(a, b string, d float64) {
	t.pairs[[2]string{a, b}] = d
	t.pairs[[2]string{b, a}] = d
}

// Distance implements DistanceOracle.
func (t *DistanceTable) Distance(a, b string) (float64, bool) {
	d, ok := t.pairs[[2]string{a, b}]
	return d, ok
}

// Len returns the number of stored directed entries.
func (t *DistanceTable) Len() int { return len(t.pairs) }

// Scene is the read-only view every solver enumerates over: an ordered
// actor list, an index by ID, a distance oracle, and the ambiguity
// threshold derived once from the room area.
type Scene struct {
	actors    []Actor
	byID      map[string]int
	oracle    DistanceOracle
	roomArea  float64
	threshold float64
}

// NewScene builds a scene over the given actors, oracle and room floor
// area. The actor order is preserved; it fixes the enumeration order of
// every solver. The ambiguity threshold is computed here, exactly once.
func NewScene(actors []Actor, oracle DistanceOracle, roomAreaSqM float64) (*Scene, error) {
	if len(actors) == 0 {
		return nil, ErrNoActors
	}
	if oracle == nil {
		return nil, ErrNilOracle
	}

	byID := make(map[string]int, len(actors))
	owned := make([]Actor, len(actors))
	copy(owned, actors)
	for i, a := range owned {
		if _, dup := byID[a.ID]; dup {
			return nil, ErrDuplicateActor
		}
		byID[a.ID] = i
	}

	return &Scene{
		actors:    owned,
		byID:      byID,
		oracle:    oracle,
		roomArea:  roomAreaSqM,
		threshold: Threshold(roomAreaSqM),
	}, nil
}

// Actors returns a copy of the actor list in scene order.
func (s *Scene) Actors() []Actor {
	out := make([]Actor, len(s.actors))
	copy(out, s.actors)
	return out
}

// Len returns the number of actors in the scene.
func (s *Scene) Len() int { return len(s.actors) }

// Actor returns the actor with the given ID, if present.
func (s *Scene) Actor(id string) (Actor, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Actor{}, false
	}
	return s.actors[i], true
}

// Distance queries the scene's oracle.
func (s *Scene) Distance(a, b string) (float64, bool) {
	return s.oracle.Distance(a, b)
}

// RoomArea returns the floor area the scene was built with.
func (s *Scene) RoomArea() float64 { return s.roomArea }

// Threshold returns the scene's ambiguity threshold in meters.
func (s *Scene) Threshold() float64 { return s.threshold }

// Ambiguous reports whether a judgment backed by the given distance or
// offset is too close to call: d < threshold.
func (s *Scene) Ambiguous(d float64) bool { return d < s.threshold }
