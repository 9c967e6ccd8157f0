package solver

import (
	"math/rand"

	"github.com/satlab/commsat/cnf"
)

// Baseline draws tries independent uniformly random assignments and returns
// the best one with its score. It is the reference point the
// community-guided solver is compared against, nothing more.
// A tries value below 1 is treated as 1.
func Baseline(clauses [][]int, nbVars, tries int, seed int64) (cnf.Assignment, int) {
	if tries < 1 {
		tries = 1
	}
	rng := rand.New(rand.NewSource(seed))
	best := randomAssignment(nbVars, rng)
	bestScore := cnf.Evaluate(clauses, best)
	for i := 1; i < tries; i++ {
		model := randomAssignment(nbVars, rng)
		if score := cnf.Evaluate(clauses, model); score > bestScore {
			best, bestScore = model, score
		}
	}
	return best, bestScore
}
