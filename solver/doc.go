/*
Package solver provides a community-guided local-search heuristic for
MAX-SAT: given a CNF formula, find an assignment satisfying as many clauses
as possible.

The solver does not search the formula as one flat clause list. It is given,
along with the clauses, a community label for each clause, typically
obtained by running label propagation over the formula's conflict graph
(see the conflict and community packages), and uses that structure to
organize three successive refinement phases:

 1. community-priority assignment: starting from a random assignment,
    communities are processed from largest to smallest and each variable of
    a community is greedily committed to the polarity satisfying the most of
    that community's clauses;
 2. per-community local search: bounded hill-climbing over each community's
    variables, scored against that community's clauses only;
 3. global refinement: first-improvement flips over the whole formula,
    trying the variables that occur in the most unsatisfied clauses first.

The result is the final assignment and its number of satisfied clauses.
The heuristic is incomplete: it proves nothing, it only keeps the best
assignment its local moves can reach. A random-sampling Baseline is provided
as the comparison point.

All randomness is derived from an explicit seed, so every solve with the
same inputs and seed returns the same assignment.
*/
package solver
