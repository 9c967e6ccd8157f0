package cnf

// An Assignment binds every variable to a boolean value.
// The value of variable v is stored at index v-1.
type Assignment []bool

// Copy returns an independent copy of a.
func (a Assignment) Copy() Assignment {
	res := make(Assignment, len(a))
	copy(res, a)
	return res
}

// Lits returns the assignment as a list of CNF literals: v if variable v is
// bound to true, -v otherwise.
func (a Assignment) Lits() []int {
	res := make([]int, len(a))
	for i, val := range a {
		if val {
			res[i] = i + 1
		} else {
			res[i] = -i - 1
		}
	}
	return res
}

// Satisfied indicates whether at least one literal of the clause evaluates
// to true under a. An empty clause is never satisfied.
func Satisfied(clause []int, a Assignment) bool {
	for _, lit := range clause {
		v := lit
		if v < 0 {
			v = -v
		}
		if a[v-1] == (lit > 0) {
			return true
		}
	}
	return false
}

// Evaluate returns the number of clauses satisfied by a.
// The result is always between 0 and len(clauses).
func Evaluate(clauses [][]int, a Assignment) int {
	score := 0
	for _, clause := range clauses {
		if Satisfied(clause, a) {
			score++
		}
	}
	return score
}
