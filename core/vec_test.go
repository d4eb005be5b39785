package core_test

import (
	"math"
	"testing"

	"github.com/Primav1022/SynWorld-VSIbench/core"
	"github.com/stretchr/testify/assert"
)

const floatTol = 1e-12

// TestVec2_Arithmetic checks the basic vector operations on hand-picked pairs.
func TestVec2_Arithmetic(t *testing.T) {
	v := core.Vec2{X: 3, Y: 4}
	o := core.Vec2{X: 1, Y: -2}

	assert.Equal(t, core.Vec2{X: 2, Y: 6}, v.Sub(o), "Sub")
	assert.Equal(t, core.Vec2{X: 4, Y: 2}, v.Add(o), "Add")
	assert.InDelta(t, 3*1+4*(-2), v.Dot(o), floatTol, "Dot")
	assert.InDelta(t, 3*(-2)-4*1, v.Cross(o), floatTol, "Cross")
	assert.InDelta(t, 5, v.Norm(), floatTol, "Norm")
}

// TestVec2_CrossSign pins down the orientation convention: Cross > 0 when
// the second vector lies counter-clockwise of the first.
func TestVec2_CrossSign(t *testing.T) {
	north := core.Vec2{X: 0, Y: 1}
	west := core.Vec2{X: -1, Y: 0}
	east := core.Vec2{X: 1, Y: 0}

	assert.Positive(t, north.Cross(west), "west is CCW of north")
	assert.Negative(t, north.Cross(east), "east is CW of north")
}

// TestVec2_Normalize verifies unit length and the degenerate zero-vector case.
func TestVec2_Normalize(t *testing.T) {
	cases := []struct {
		name string
		in   core.Vec2
		ok   bool
	}{
		{"Axis", core.Vec2{X: 0, Y: 2}, true},
		{"Diagonal", core.Vec2{X: -3, Y: 3}, true},
		{"Tiny", core.Vec2{X: 1e-9, Y: 0}, true},
		{"Zero", core.Vec2{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u, ok := tc.in.Normalize()
			if ok != tc.ok {
				t.Fatalf("Normalize(%v) ok = %v; want %v", tc.in, ok, tc.ok)
			}
			if !tc.ok {
				if u != (core.Vec2{}) {
					t.Errorf("degenerate Normalize returned %v; want zero vector", u)
				}
				return
			}
			if got := u.Norm(); math.Abs(got-1) > 1e-9 {
				t.Errorf("|Normalize(%v)| = %v; want 1", tc.in, got)
			}
		})
	}
}

// TestVec3_XY checks the ground-plane projection.
func TestVec3_XY(t *testing.T) {
	v := core.Vec3{X: 1.5, Y: -2.5, Z: 9}
	assert.Equal(t, core.Vec2{X: 1.5, Y: -2.5}, v.XY())
}
