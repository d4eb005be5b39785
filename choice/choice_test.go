package choice_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/Primav1022/SynWorld-VSIbench/choice"
	"github.com/Primav1022/SynWorld-VSIbench/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Build precondition errors
//----------------------------------------------------------------------------//

// TestBuild_Errors verifies every precondition failure maps to its sentinel.
func TestBuild_Errors(t *testing.T) {
	big := make([]string, 27)
	for i := range big {
		big[i] = fmt.Sprintf("v%d", i)
	}
	big[0] = "x"

	cases := []struct {
		name    string
		correct string
		pool    []string
		err     error
	}{
		{"TooSmall", "x", []string{"x"}, choice.ErrPoolSize},
		{"TooLarge", "x", big, choice.ErrPoolSize},
		{"Missing", "x", []string{"a", "b", "c"}, choice.ErrCorrectMissing},
		{"Duplicated", "x", []string{"x", "x", "b"}, choice.ErrCorrectDuplicated},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := choice.Build(tc.correct, tc.pool, core.NewRand(1))
			if !errors.Is(err, tc.err) {
				t.Errorf("Build error = %v; want %v", err, tc.err)
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Build integrity
//----------------------------------------------------------------------------//

// TestBuild_Integrity fuzzes the one-correct-option invariant across many
// seeds: exactly one option matches the correct text and Answer indexes it.
func TestBuild_Integrity(t *testing.T) {
	pool := []string{"front-left", "front-right", "back-left", "back-right"}
	const correct = "back-left"

	for seed := int64(1); seed <= 2000; seed++ {
		ch, err := choice.Build(correct, pool, core.NewRand(seed))
		require.NoError(t, err, "seed %d", seed)
		require.Len(t, ch.Options, 4, "seed %d", seed)

		matches := 0
		for _, v := range ch.Values {
			if v == correct {
				matches++
			}
		}
		require.Equal(t, 1, matches, "seed %d: correct text must appear exactly once", seed)
		require.Equal(t, correct, ch.Values[ch.Index], "seed %d", seed)
		require.Equal(t, choice.Letter(ch.Index), ch.Answer, "seed %d", seed)
		require.Equal(t, ch.Answer+". "+correct, ch.Options[ch.Index], "seed %d", seed)
	}
}

// TestBuild_FormatsAllLetters verifies option prefixes follow position, not
// input order, and the input pool is left untouched.
func TestBuild_FormatsAllLetters(t *testing.T) {
	pool := []string{"left", "right", "back"}
	ch, err := choice.Build("back", pool, core.NewRand(5))
	require.NoError(t, err)

	for i, opt := range ch.Options {
		assert.True(t, strings.HasPrefix(opt, choice.Letter(i)+". "), "option %d = %q", i, opt)
	}
	assert.Equal(t, []string{"left", "right", "back"}, pool, "input pool must not be mutated")
	assert.ElementsMatch(t, pool, ch.Values)
}

// TestBuild_Deterministic verifies the shuffle is a pure function of the seed.
func TestBuild_Deterministic(t *testing.T) {
	pool := []string{"a", "b", "c", "d"}
	x, err := choice.Build("c", pool, core.NewRand(77))
	require.NoError(t, err)
	y, err := choice.Build("c", pool, core.NewRand(77))
	require.NoError(t, err)
	assert.Equal(t, x, y)
}

//----------------------------------------------------------------------------//
// Alternatives
//----------------------------------------------------------------------------//

// TestAlternatives_Collects verifies distinct alternatives are gathered and
// the correct value is excluded.
func TestAlternatives_Collects(t *testing.T) {
	rng := core.NewRand(11)
	labels := []string{"Turn Left", "Turn Right", "Turn Back"}
	gen := func() string {
		return labels[rng.Intn(3)] + ", " + labels[rng.Intn(3)]
	}

	alts, err := choice.Alternatives("Turn Left, Turn Left", 3, 64, gen)
	require.NoError(t, err)
	require.Len(t, alts, 3)

	seen := map[string]bool{"Turn Left, Turn Left": true}
	for _, a := range alts {
		assert.False(t, seen[a], "alternative %q duplicated or equals correct", a)
		seen[a] = true
	}
}

// TestAlternatives_SpaceExhausted verifies the bounded retry budget: a
// generator with a single distinct output cannot satisfy want=3 and returns
// the partial set with ErrAlternativeSpace instead of spinning.
func TestAlternatives_SpaceExhausted(t *testing.T) {
	gen := func() string { return "only" }

	alts, err := choice.Alternatives("correct", 3, 50, gen)
	require.ErrorIs(t, err, choice.ErrAlternativeSpace)
	assert.Equal(t, []string{"only"}, alts, "partial set is still returned")
}

// TestLetter pins the index-to-letter mapping at both ends of the range.
func TestLetter(t *testing.T) {
	assert.Equal(t, "A", choice.Letter(0))
	assert.Equal(t, "D", choice.Letter(3))
	assert.Equal(t, "Z", choice.Letter(25))
}
