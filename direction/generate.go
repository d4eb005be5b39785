package direction

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/Primav1022/SynWorld-VSIbench/choice"
	"github.com/Primav1022/SynWorld-VSIbench/core"
)

// Question templates per granularity. The phrasing is a dataset contract.
const (
	hardTemplate = "If I am standing by the %s and facing the %s, is the %s to my front-left, " +
		"front-right, back-left, or back-right? The directions refer to the quadrants of a " +
		"Cartesian plane (if I am standing at the origin and facing along the positive y-axis)."
	mediumTemplate = "If I am standing by the %s and facing the %s, is the %s to my left, right, " +
		"or back? An object is to my back if I would have to turn at least 135 degrees in order to face it."
	easyTemplate = "If I am standing by the %s and facing the %s, is the %s to the left or the right of the %s?"
)

// Generate — relative-direction question enumeration.
//
// Description:
//
//	Enumerates every ordered triple of distinct actors
//	(standing, facing, locate), classifies the locate actor in the
//	standing/facing frame, gates each granularity through the scene's
//	ambiguity policy, and emits one multiple-choice record per surviving
//	granularity. This is the engine's dominant cost: O(n³) triples.
//
// Determinism:
//
//	Every standing index draws from its own RNG stream derived from
//	opts.Seed, so the result is byte-identical for any Workers value and
//	any goroutine schedule.
//
// Edge handling:
//   - A coincident standing/facing pair invalidates all its locate
//     candidates (degenerate frame); they count as skipped.
//   - A triple whose granularities are all ambiguous emits nothing.
//   - Fewer than three actors yields an empty result, not an error.
//
// Complexity: O(n³) time, O(questions) space.
func Generate(scene *core.Scene, opts Options) (Result, error) {
	if scene == nil {
		return Result{}, ErrNilScene
	}
	actors := scene.Actors()
	if len(actors) < 3 {
		return Result{}, nil
	}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(actors) {
		workers = len(actors)
	}

	shards := make([]Result, len(actors))
	if workers == 1 {
		for i := range actors {
			shards[i] = enumerateStanding(scene, actors, i, core.DeriveRand(opts.Seed, uint64(i)))
		}
	} else {
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func(w int) {
				defer wg.Done()
				for i := w; i < len(actors); i += workers {
					shards[i] = enumerateStanding(scene, actors, i, core.DeriveRand(opts.Seed, uint64(i)))
				}
			}(w)
		}
		wg.Wait()
	}

	var res Result
	for _, sh := range shards {
		res.Questions = append(res.Questions, sh.Questions...)
		res.Enumerated += sh.Enumerated
		res.Skipped += sh.Skipped
		res.Violations += sh.Violations
	}
	return res, nil
}

// enumerateStanding walks all (facing, locate) pairs for one standing actor.
func enumerateStanding(scene *core.Scene, actors []core.Actor, standIdx int, rng *rand.Rand) Result {
	var res Result
	standing := actors[standIdx]

	for fi := range actors {
		if fi == standIdx {
			continue
		}
		facing := actors[fi]

		frame, err := NewFrame(standing.Position.XY(), facing.Position.XY())
		if err != nil {
			// Every locate candidate under this pair shares the degenerate frame.
			n := len(actors) - 2
			res.Enumerated += n
			res.Skipped += n
			continue
		}

		for li := range actors {
			if li == standIdx || li == fi {
				continue
			}
			locate := actors[li]
			res.Enumerated++

			j := Classify(frame, locate.Position.XY())
			emitted := emitTriple(&res, scene, rng, standing, facing, locate, j)
			if emitted == 0 {
				res.Skipped++
			}
		}
	}
	return res
}

// emitTriple builds up to three records for one judged triple, gating each
// granularity through the ambiguity policy independently. Returns the
// number of records emitted.
func emitTriple(res *Result, scene *core.Scene, rng *rand.Rand, standing, facing, locate core.Actor, j Judgment) int {
	sName, fName, lName := standing.DisplayName(), facing.DisplayName(), locate.DisplayName()

	granularities := []struct {
		difficulty core.Difficulty
		correct    string
		pool       []string
		text       string
	}{
		{core.DifficultyHard, string(j.Hard), hardPool, fmt.Sprintf(hardTemplate, sName, fName, lName)},
		{core.DifficultyMedium, string(j.Medium), mediumPool, fmt.Sprintf(mediumTemplate, sName, fName, lName)},
		{core.DifficultyEasy, string(j.Easy), easyPool, fmt.Sprintf(easyTemplate, sName, fName, lName, sName)},
	}

	emitted := 0
	for _, g := range granularities {
		if scene.Ambiguous(j.Offset) {
			continue
		}
		ch, err := choice.Build(g.correct, g.pool, rng)
		if err != nil {
			res.Violations++
			continue
		}
		res.Questions = append(res.Questions, core.Question{
			Text:       g.text,
			Options:    ch.Options,
			Answer:     ch.Answer,
			Relation:   core.RelationDirection,
			Difficulty: g.difficulty,
			Actors:     []string{standing.ID, facing.ID, locate.ID},
		})
		emitted++
	}
	return emitted
}
