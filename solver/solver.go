package solver

import (
	"math/rand"
	"sort"

	"github.com/satlab/commsat/cnf"
)

const (
	// MaxSweeps bounds the number of hill-climbing sweeps over one
	// community's variables.
	MaxSweeps = 50
	// MaxRefinements bounds the number of global refinement iterations,
	// i.e the number of committed flips of the last phase.
	MaxRefinements = 100
)

// A community groups the clauses sharing a label and the variables they use.
type community struct {
	label   int
	clauses [][]int // Member clauses, in declaration order.
	vars    []int   // Variables of the member clauses, in encounter order, deduplicated.
}

// Solve looks for an assignment of the nbVars variables satisfying as many
// clauses as possible, guided by the given per-clause community labels
// (communities[i] is the label of clauses[i]). It returns the assignment
// and its number of satisfied clauses.
//
// Each phase only ever keeps an assignment at least as good, under its own
// measure, as the one it started from. Degenerate inputs (no clauses, no
// variables, a community without variables) are handled as no-ops.
func Solve(clauses [][]int, nbVars int, communities []int, seed int64) (cnf.Assignment, int) {
	rng := rand.New(rand.NewSource(seed))
	model := randomAssignment(nbVars, rng)
	comms := groupClauses(clauses, communities)
	assignCommunities(comms, model)
	climbCommunities(comms, model)
	refineGlobal(clauses, nbVars, model)
	return model, cnf.Evaluate(clauses, model)
}

// randomAssignment draws a uniformly random assignment from rng.
func randomAssignment(nbVars int, rng *rand.Rand) cnf.Assignment {
	model := make(cnf.Assignment, nbVars)
	for i := range model {
		model[i] = rng.Intn(2) == 1
	}
	return model
}

// groupClauses splits the clauses by community label. Communities are
// returned in order of first appearance of their label. A clause without a
// label (shorter communities slice) goes to the zero community.
func groupClauses(clauses [][]int, communities []int) []*community {
	byLabel := make(map[int]*community)
	var res []*community
	for i, clause := range clauses {
		label := 0
		if i < len(communities) {
			label = communities[i]
		}
		com, ok := byLabel[label]
		if !ok {
			com = &community{label: label}
			byLabel[label] = com
			res = append(res, com)
		}
		com.clauses = append(com.clauses, clause)
	}
	for _, com := range res {
		com.vars = clauseVars(com.clauses)
	}
	return res
}

// clauseVars returns the variables appearing in the clauses, deduplicated,
// in encounter order.
func clauseVars(clauses [][]int) []int {
	seen := make(map[int]bool)
	var res []int
	for _, clause := range clauses {
		for _, lit := range clause {
			v := lit
			if v < 0 {
				v = -v
			}
			if !seen[v] {
				seen[v] = true
				res = append(res, v)
			}
		}
	}
	return res
}

// assignCommunities is the first phase: communities are processed from
// largest to smallest (ties keep first-appearance order) and each of a
// community's variables is committed to the polarity satisfying the most of
// that community's clauses. True wins ties. Variables committed earlier
// stay committed; later ones are evaluated against the updated assignment.
func assignCommunities(comms []*community, model cnf.Assignment) {
	ordered := make([]*community, len(comms))
	copy(ordered, comms)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].clauses) > len(ordered[j].clauses)
	})
	for _, com := range ordered {
		for _, v := range com.vars {
			model[v-1] = true
			scoreTrue := cnf.Evaluate(com.clauses, model)
			model[v-1] = false
			if cnf.Evaluate(com.clauses, model) <= scoreTrue {
				model[v-1] = true
			}
		}
	}
}

// climbCommunities is the second phase: for each community, hill-climb its
// variables against its own clause subset. A flip is kept only when it
// strictly increases the community's satisfied count; sweeps stop when one
// of them accepts no flip, or after MaxSweeps. Each community starts from
// the assignment state its predecessors left.
func climbCommunities(comms []*community, model cnf.Assignment) {
	for _, com := range comms {
		score := cnf.Evaluate(com.clauses, model)
		for sweep := 0; sweep < MaxSweeps; sweep++ {
			improved := false
			for _, v := range com.vars {
				model[v-1] = !model[v-1]
				if s := cnf.Evaluate(com.clauses, model); s > score {
					score = s
					improved = true
				} else {
					model[v-1] = !model[v-1]
				}
			}
			if !improved {
				break
			}
		}
	}
}

// refineGlobal is the last phase: whole-formula first-improvement search.
// Each iteration ranks the variables by the number of currently unsatisfied
// clauses they appear in and commits the first flip that strictly increases
// the global score. The phase ends when every clause is satisfied, when no
// candidate improves (a local optimum under single flips), or after
// MaxRefinements iterations.
func refineGlobal(clauses [][]int, nbVars int, model cnf.Assignment) {
	score := cnf.Evaluate(clauses, model)
	for iter := 0; iter < MaxRefinements; iter++ {
		freq := unsatFrequencies(clauses, nbVars, model)
		if freq == nil { // Every clause is satisfied.
			return
		}
		improved := false
		for _, v := range rankVars(freq) {
			model[v-1] = !model[v-1]
			if s := cnf.Evaluate(clauses, model); s > score {
				score = s
				improved = true
				break
			}
			model[v-1] = !model[v-1]
		}
		if !improved {
			return
		}
	}
}

// unsatFrequencies counts, for each variable, the number of unsatisfied
// clauses referencing it. It returns nil when all clauses are satisfied.
func unsatFrequencies(clauses [][]int, nbVars int, model cnf.Assignment) []int {
	freq := make([]int, nbVars+1)
	unsat := 0
	for _, clause := range clauses {
		if cnf.Satisfied(clause, model) {
			continue
		}
		unsat++
		for k, lit := range clause {
			v := lit
			if v < 0 {
				v = -v
			}
			if !mentions(clause[:k], v) { // A clause counts once per variable.
				freq[v]++
			}
		}
	}
	if unsat == 0 {
		return nil
	}
	return freq
}

// mentions indicates whether v appears among lits, in either polarity.
func mentions(lits []int, v int) bool {
	for _, lit := range lits {
		if lit == v || lit == -v {
			return true
		}
	}
	return false
}

// rankVars returns the variables with a nonzero frequency, most frequent
// first, smallest variable first among equals.
func rankVars(freq []int) []int {
	res := make([]int, 0, len(freq))
	for v := 1; v < len(freq); v++ {
		if freq[v] > 0 {
			res = append(res, v)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if freq[res[i]] != freq[res[j]] {
			return freq[res[i]] > freq[res[j]]
		}
		return res[i] < res[j]
	})
	return res
}
