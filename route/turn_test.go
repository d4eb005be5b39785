package route_test

import (
	"math"
	"testing"

	"github.com/Primav1022/SynWorld-VSIbench/core"
	"github.com/Primav1022/SynWorld-VSIbench/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// vecAt returns the unit vector rotated by deg clockwise from north (0,1),
// matching the walker's angle convention.
func vecAt(deg float64) core.Vec2 {
	rad := deg * math.Pi / 180
	return core.Vec2{X: math.Sin(rad), Y: math.Cos(rad)}
}

//----------------------------------------------------------------------------//
// ClassifyTurn
//----------------------------------------------------------------------------//

// TestClassifyTurn_Table pins the classification across the rule branches.
func TestClassifyTurn_Table(t *testing.T) {
	north := core.Vec2{X: 0, Y: 1}

	cases := []struct {
		name   string
		target core.Vec2
		want   route.Turn
	}{
		{"PerpendicularWest", core.Vec2{X: -1, Y: 0}, route.TurnLeft},
		{"PerpendicularEast", core.Vec2{X: 1, Y: 0}, route.TurnRight},
		{"NearPerpendicularLeft", vecAt(-85), route.TurnLeft},
		{"NearPerpendicularRight", vecAt(85), route.TurnRight},
		{"GentleLeft", core.Vec2{X: -1, Y: 1}, route.TurnLeft},
		{"GentleRight", core.Vec2{X: 1, Y: 1}, route.TurnRight},
		{"DeadAhead", core.Vec2{X: 0, Y: 3}, route.TurnRight},
		{"Apart170", vecAt(170), route.TurnBack},
		{"Apart180", vecAt(180), route.TurnBack},
		{"Apart190", vecAt(190), route.TurnBack},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := route.ClassifyTurn(north, tc.target)
			require.NoError(t, err)
			if got != tc.want {
				t.Errorf("ClassifyTurn(north, %v) = %q; want %q", tc.target, got, tc.want)
			}
		})
	}
}

// TestClassifyTurn_Degenerate verifies zero-length vectors are invalid
// geometry.
func TestClassifyTurn_Degenerate(t *testing.T) {
	north := core.Vec2{X: 0, Y: 1}

	_, err := route.ClassifyTurn(core.Vec2{}, north)
	assert.ErrorIs(t, err, route.ErrDegenerateLeg)

	_, err = route.ClassifyTurn(north, core.Vec2{})
	assert.ErrorIs(t, err, route.ErrDegenerateLeg)
}

// TestClassifyTurn_NormalizationInvariance verifies magnitude does not
// change the judgment.
func TestClassifyTurn_NormalizationInvariance(t *testing.T) {
	a, err := route.ClassifyTurn(core.Vec2{X: 0, Y: 0.2}, core.Vec2{X: -5, Y: 5})
	require.NoError(t, err)
	b, err := route.ClassifyTurn(core.Vec2{X: 0, Y: 40}, core.Vec2{X: -0.1, Y: 0.1})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

//----------------------------------------------------------------------------//
// Walk
//----------------------------------------------------------------------------//

// TestWalk_FacingUpdates verifies the walker re-faces along each traveled
// leg: east first, then the second leg is judged against the new facing.
func TestWalk_FacingUpdates(t *testing.T) {
	start := core.Vec2{}
	facing := core.Vec2{X: 0, Y: 1} // north
	waypoints := []core.Vec2{
		{X: 2, Y: 0}, // east of start: perpendicular right
		{X: 2, Y: 2}, // north of first stop: left of the new east facing
	}

	turns, err := route.Walk(start, facing, waypoints)
	require.NoError(t, err)
	assert.Equal(t, []route.Turn{route.TurnRight, route.TurnLeft}, turns)
}

// TestWalk_ReversalRejects verifies a mid-route reversal discards the whole
// route — at 170°, 180°, and 190° separations.
func TestWalk_ReversalRejects(t *testing.T) {
	for _, deg := range []float64{170, 180, 190} {
		start := core.Vec2{}
		facing := core.Vec2{X: 0, Y: 1}
		back := vecAt(deg) // first leg reverses immediately

		_, err := route.Walk(start, facing, []core.Vec2{back})
		assert.ErrorIs(t, err, route.ErrReversalTurn, "separation %v°", deg)
	}
}

// TestWalk_Errors verifies empty routes and degenerate legs.
func TestWalk_Errors(t *testing.T) {
	_, err := route.Walk(core.Vec2{}, core.Vec2{X: 0, Y: 1}, nil)
	assert.ErrorIs(t, err, route.ErrEmptyRoute)

	// Waypoint coincides with the walker's position: zero-length leg.
	_, err = route.Walk(core.Vec2{X: 1, Y: 1}, core.Vec2{X: 0, Y: 1}, []core.Vec2{{X: 1, Y: 1}})
	assert.ErrorIs(t, err, route.ErrDegenerateLeg)
}
