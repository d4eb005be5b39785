package route

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/Primav1022/SynWorld-VSIbench/choice"
	"github.com/Primav1022/SynWorld-VSIbench/core"
)

// questionTemplate wraps the numbered instruction block. The phrasing is a
// dataset contract.
const questionTemplate = "You are a robot beginning at the %s facing the %s. You want to navigate " +
	"to the %s. You will perform the following actions (Note: for each [please fill in], choose either " +
	"'turn back,' 'turn left,' or 'turn right.'): %s You have reached the final destination."

// turnPool is the fixed option pool for single-turn questions and the
// alphabet for generated alternative sequences.
var turnPool = []string{string(TurnLeft), string(TurnRight), string(TurnBack)}

// Generate — route-navigation question enumeration.
//
// Description:
//
//	Enumerates ordered triples (begin, facing, end) of distinct actors
//	under the feasibility constraints, crossed with a no-stop variant and
//	every admissible one-stop variant. Each candidate route is walked leg
//	by leg; a reversal rejects it. Surviving routes become either a
//	single-turn question over the three fixed labels or a turn-sequence
//	question with three generated alternatives.
//
// Constraints before walking:
//   - distance(begin, end) ≥ MinEndDistance,
//   - distance(begin, facing) ≤ NeighborDistance,
//   - an intermediate stop must be reachable from begin and must reach
//     end, each within NeighborDistance, and be distinct from the triple.
//
// Unknown oracle distances fail the constraint they appear in.
//
// Complexity: O(n⁴) candidate routes in the worst case.
func Generate(scene *core.Scene, opts Options) (Result, error) {
	if scene == nil {
		return Result{}, ErrNilScene
	}

	rng := core.NewRand(opts.Seed)
	actors := scene.Actors()

	var res Result
	if len(actors) < 3 {
		return res, nil
	}

	for bi, begin := range actors {
		for fi, facing := range actors {
			if fi == bi {
				continue
			}
			faceDist, ok := scene.Distance(begin.ID, facing.ID)
			if !ok || faceDist > NeighborDistance {
				continue
			}
			for ei, end := range actors {
				if ei == bi || ei == fi {
					continue
				}
				endDist, ok := scene.Distance(begin.ID, end.ID)
				if !ok || endDist < MinEndDistance {
					continue
				}

				emitRoute(&res, rng, begin, facing, end, nil)

				for si, stop := range actors {
					if si == bi || si == fi || si == ei {
						continue
					}
					toStop, ok1 := scene.Distance(begin.ID, stop.ID)
					fromStop, ok2 := scene.Distance(stop.ID, end.ID)
					if !ok1 || !ok2 || toStop > NeighborDistance || fromStop > NeighborDistance {
						continue
					}
					emitRoute(&res, rng, begin, facing, end, []core.Actor{stop})
				}
			}
		}
	}
	return res, nil
}

// emitRoute walks one candidate route and, if it survives, builds its
// question record.
func emitRoute(res *Result, rng *rand.Rand, begin, facing, end core.Actor, stops []core.Actor) {
	res.Enumerated++

	targets := make([]core.Actor, 0, len(stops)+1)
	targets = append(targets, stops...)
	targets = append(targets, end)

	waypoints := make([]core.Vec2, len(targets))
	for i, a := range targets {
		waypoints[i] = a.Position.XY()
	}

	beginXY := begin.Position.XY()
	turns, err := Walk(beginXY, facing.Position.XY().Sub(beginXY), waypoints)
	if err != nil {
		// Reversals and degenerate legs are expected enumeration outcomes.
		res.Skipped++
		return
	}

	text := fmt.Sprintf(questionTemplate,
		begin.DisplayName(), facing.DisplayName(), end.DisplayName(),
		instructionBlock(targets, turns))

	var ch choice.Choice
	var difficulty core.Difficulty
	if len(turns) == 1 {
		ch, err = choice.Build(string(turns[0]), turnPool, rng)
		difficulty = core.DifficultyEasy
	} else {
		ch, err = buildSequenceChoice(turns, rng)
		difficulty = core.DifficultyHard
	}
	if err != nil {
		res.Violations++
		return
	}

	ids := make([]string, 0, len(targets)+2)
	ids = append(ids, begin.ID, facing.ID)
	for _, a := range targets {
		ids = append(ids, a.ID)
	}

	res.Questions = append(res.Questions, core.Question{
		Text:       text,
		Options:    ch.Options,
		Answer:     ch.Answer,
		Relation:   core.RelationRoute,
		Difficulty: difficulty,
		Actors:     ids,
	})
}

// instructionBlock renders the numbered per-leg instructions: a blank turn
// to fill in, then a forward move toward the leg's target.
func instructionBlock(targets []core.Actor, turns []Turn) string {
	var sb strings.Builder
	step := 1
	for i := range turns {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d. [please fill in] ", step)
		step++
		fmt.Fprintf(&sb, "%d. Go forward until the %s.", step, targets[i].DisplayName())
		step++
	}
	return sb.String()
}

// buildSequenceChoice assembles the multi-leg option set: the comma-joined
// correct sequence plus three distinct random same-length sequences.
func buildSequenceChoice(turns []Turn, rng *rand.Rand) (choice.Choice, error) {
	parts := make([]string, len(turns))
	for i, t := range turns {
		parts[i] = string(t)
	}
	correct := strings.Join(parts, ", ")

	alts, err := choice.Alternatives(correct, wantAlternatives, maxAlternativeTries, func() string {
		seq := make([]string, len(turns))
		for i := range seq {
			seq[i] = turnPool[rng.Intn(len(turnPool))]
		}
		return strings.Join(seq, ", ")
	})
	if err != nil {
		return choice.Choice{}, err
	}

	pool := append([]string{correct}, alts...)
	return choice.Build(correct, pool, rng)
}
