// Package cnf describes propositional formulas in conjunctive normal form
// and provides DIMACS parsing and assignment evaluation.
//
// A literal is a nonzero integer: the literal v, with v > 0, stands for the
// variable v, while -v stands for its negation. A clause is a slice of
// literals, satisfied when at least one of them evaluates to true. Clause
// indices (1-based, in declaration order) are used as vertex identifiers by
// the conflict package.
package cnf

import (
	"fmt"
	"strings"
)

// A Formula is a number of variables and a list of clauses over them.
type Formula struct {
	NbVars  int     // Total nb of vars. Literals range over [-NbVars, NbVars], excluding 0.
	Clauses [][]int // List of clauses, in declaration order.
}

// NbClauses returns the number of clauses of the formula.
func (f *Formula) NbClauses() int {
	return len(f.Clauses)
}

// CNF returns a DIMACS CNF representation of the formula.
func (f *Formula) CNF() string {
	var res strings.Builder
	fmt.Fprintf(&res, "p cnf %d %d\n", f.NbVars, len(f.Clauses))
	for _, clause := range f.Clauses {
		for _, lit := range clause {
			fmt.Fprintf(&res, "%d ", lit)
		}
		res.WriteString("0\n")
	}
	return res.String()
}
