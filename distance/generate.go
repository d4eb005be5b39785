package distance

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"

	"github.com/Primav1022/SynWorld-VSIbench/choice"
	"github.com/Primav1022/SynWorld-VSIbench/core"
)

// questionTemplate embeds the shuffled option names in the prompt itself:
// "(a, b, c, or d)". The phrasing is a dataset contract.
const questionTemplate = "Measuring from the closest point of each object, which of these objects " +
	"(%s, or %s) is the closest to the %s?"

// representative is one object type's closest instance around a primary.
type representative struct {
	actor core.Actor
	dist  float64
}

// Generate — nearest-object ranking question enumeration.
//
// Description:
//
//	For every eligible primary (an actor whose Kind is unique in the
//	scene), ranks all other actors by oracle distance, keeps the closest
//	instance per Kind, and asks which of the four closest types is the
//	nearest. The closest representative is the correct answer.
//
// Gates, in order:
//  1. Actors with an unknown oracle distance to the primary are discarded.
//  2. Fewer than four distinct types ⇒ the primary is skipped.
//  3. |d₁ − d₂| below the scene threshold ⇒ the "nearest" answer is not
//     well-defined and the primary is skipped. Gaps among options 2-4 are
//     deliberately not checked.
//
// Complexity: O(n² + n·p log p) time for n actors and p representatives.
func Generate(scene *core.Scene, opts Options) (Result, error) {
	if scene == nil {
		return Result{}, ErrNilScene
	}

	rng := core.NewRand(opts.Seed)
	actors := scene.Actors()

	kindCounts := make(map[string]int, len(actors))
	for _, a := range actors {
		kindCounts[a.Kind]++
	}

	var res Result
	for _, primary := range actors {
		// Duplicated kinds are excluded as primaries; they may still
		// appear as distance targets below.
		if kindCounts[primary.Kind] != 1 {
			continue
		}
		res.Enumerated++

		reps := closestRepresentatives(scene, actors, primary)
		if len(reps) < optionCount {
			res.Skipped++
			continue
		}

		gap := math.Abs(reps[0].dist - reps[1].dist)
		if scene.Ambiguous(gap) {
			res.Skipped++
			continue
		}

		emitPrimary(&res, rng, primary, reps[:optionCount])
	}
	return res, nil
}

// closestRepresentatives returns the closest instance of every object type
// around the primary, ascending by distance. Ties keep scene order (stable
// sort), which fixes the representative chosen for equal distances.
func closestRepresentatives(scene *core.Scene, actors []core.Actor, primary core.Actor) []representative {
	pairs := make([]representative, 0, len(actors)-1)
	for _, other := range actors {
		if other.ID == primary.ID {
			continue
		}
		d, ok := scene.Distance(primary.ID, other.ID)
		if !ok {
			continue
		}
		pairs = append(pairs, representative{actor: other, dist: d})
	}
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].dist < pairs[j].dist })

	seen := make(map[string]struct{}, len(pairs))
	reps := pairs[:0]
	for _, p := range pairs {
		if _, dup := seen[p.actor.Kind]; dup {
			continue
		}
		seen[p.actor.Kind] = struct{}{}
		reps = append(reps, p)
	}
	return reps
}

// emitPrimary builds the four-option question for one accepted primary.
func emitPrimary(res *Result, rng *rand.Rand, primary core.Actor, reps []representative) {
	pool := make([]string, len(reps))
	ids := make([]string, 0, len(reps)+1)
	ids = append(ids, primary.ID)
	for i, r := range reps {
		pool[i] = r.actor.DisplayName()
		ids = append(ids, r.actor.ID)
	}
	correct := pool[0]

	ch, err := choice.Build(correct, pool, rng)
	if err != nil {
		// Colliding display names across types make the correct text
		// non-unique; surface as a defect and drop the primary.
		res.Violations++
		return
	}

	text := fmt.Sprintf(questionTemplate,
		strings.Join(ch.Values[:len(ch.Values)-1], ", "),
		ch.Values[len(ch.Values)-1],
		primary.DisplayName(),
	)

	res.Questions = append(res.Questions, core.Question{
		Text:       text,
		Options:    ch.Options,
		Answer:     ch.Answer,
		Relation:   core.RelationDistance,
		Difficulty: core.DifficultyNone,
		Actors:     ids,
	})
}
