package order

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/Primav1022/SynWorld-VSIbench/choice"
	"github.com/Primav1022/SynWorld-VSIbench/core"
)

// questionTemplate presents the four names in a deliberately non-canonical
// order. The phrasing is a dataset contract.
const questionTemplate = "What will be the first-time appearance order of the following categories in the video: %s?"

// Generate — appearance-order question enumeration.
//
// Description:
//
//	Enumerates every unordered combination of four distinct actors, ranks
//	them by first-appearance frame to obtain the canonical answer
//	sequence, and asks for that order over a pool of permutations of the
//	presented names. The presented order is reshuffled until it differs
//	from the canonical order; it is cosmetic and not part of the answer
//	key.
//
// Option pool: all 24 permutations of the presented names are formatted as
// comma-joined strings and deduplicated; the canonical string is confirmed
// reachable, removed, three distinct incorrect strings are sampled, and the
// canonical one is added back before the final shuffle.
//
// Edge handling:
//   - Fewer than four actors yields an empty result, not an error.
//   - Duplicate display names can collapse every permutation into the
//     canonical string; such combinations are skipped.
//
// Complexity: O(C(n,4) · 4!) time.
func Generate(scene *core.Scene, opts Options) (Result, error) {
	if scene == nil {
		return Result{}, ErrNilScene
	}

	rng := core.NewRand(opts.Seed)
	actors := scene.Actors()

	var res Result
	if len(actors) < groupSize {
		return res, nil
	}

	n := len(actors)
	for a := 0; a < n-3; a++ {
		for b := a + 1; b < n-2; b++ {
			for c := b + 1; c < n-1; c++ {
				for d := c + 1; d < n; d++ {
					res.Enumerated++
					emitCombo(&res, rng, [groupSize]core.Actor{actors[a], actors[b], actors[c], actors[d]})
				}
			}
		}
	}
	return res, nil
}

// emitCombo builds the question for one actor quadruple.
func emitCombo(res *Result, rng *rand.Rand, combo [groupSize]core.Actor) {
	canonical := combo[:]
	canonical = append([]core.Actor(nil), canonical...)
	sort.SliceStable(canonical, func(i, j int) bool {
		return canonical[i].FirstFrame < canonical[j].FirstFrame
	})

	// Presentation order must differ from the canonical order; compare by
	// identity so duplicate display names cannot stall the loop.
	presented := append([]core.Actor(nil), canonical...)
	for sameOrder(presented, canonical) {
		shuffleActors(presented, rng)
	}

	presentedNames := displayNames(presented)
	correct := strings.Join(displayNames(canonical), ", ")

	// Distinct formatted permutations of the presented names, in first-
	// encounter order so sampling stays deterministic.
	var pool []string
	seen := make(map[string]struct{}, 24)
	permute4(func(p [groupSize]int) {
		joined := presentedNames[p[0]] + ", " + presentedNames[p[1]] + ", " +
			presentedNames[p[2]] + ", " + presentedNames[p[3]]
		if _, dup := seen[joined]; dup {
			return
		}
		seen[joined] = struct{}{}
		pool = append(pool, joined)
	})

	if _, reachable := seen[correct]; !reachable {
		// Permutations are exhaustive over the same names; an unreachable
		// canonical sequence is a latent bug upstream.
		res.Violations++
		return
	}

	incorrect := make([]string, 0, len(pool)-1)
	for _, p := range pool {
		if p != correct {
			incorrect = append(incorrect, p)
		}
	}
	if len(incorrect) == 0 {
		// Duplicate names collapsed every permutation into the answer.
		res.Skipped++
		return
	}

	options := append([]string{correct}, core.SampleStrings(incorrect, incorrectOptions, rng)...)
	ch, err := choice.Build(correct, options, rng)
	if err != nil {
		res.Violations++
		return
	}

	ids := make([]string, groupSize)
	for i, a := range combo {
		ids[i] = a.ID
	}

	res.Questions = append(res.Questions, core.Question{
		Text:       fmt.Sprintf(questionTemplate, strings.Join(presentedNames, ", ")),
		Options:    ch.Options,
		Answer:     ch.Answer,
		Relation:   core.RelationOrder,
		Difficulty: core.DifficultyNone,
		Actors:     ids,
	})
}

// sameOrder reports whether two actor slices list the same IDs in the same
// positions.
func sameOrder(a, b []core.Actor) bool {
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}

// shuffleActors performs an in-place Fisher–Yates shuffle.
func shuffleActors(a []core.Actor, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// displayNames projects actors onto their display names.
func displayNames(a []core.Actor) []string {
	out := make([]string, len(a))
	for i, actor := range a {
		out[i] = actor.DisplayName()
	}
	return out
}

// permute4 visits all 24 permutations of {0,1,2,3} in lexicographic order.
func permute4(visit func([groupSize]int)) {
	for i := 0; i < groupSize; i++ {
		for j := 0; j < groupSize; j++ {
			if j == i {
				continue
			}
			for k := 0; k < groupSize; k++ {
				if k == i || k == j {
					continue
				}
				l := 6 - i - j - k
				visit([groupSize]int{i, j, k, l})
			}
		}
	}
}
