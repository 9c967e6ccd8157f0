// Package community partitions the vertices of a conflict graph into
// communities using label propagation.
//
// Every vertex starts with its own label. Passes over the vertices, in a
// seeded random order, make each vertex adopt the most represented label
// among its neighbors, until a full pass changes nothing or an iteration
// cap is reached. Densely connected vertices thus converge to a shared
// label. The weighted variant votes with edge weights instead of unit
// counts.
package community

import (
	"math"
	"math/rand"

	"github.com/satlab/commsat/conflict"
)

// DefaultMaxIterations bounds the number of propagation passes when the
// caller does not provide a positive cap.
const DefaultMaxIterations = 100

// Detect partitions the vertices of g by plain label propagation: each
// neighbor contributes one vote to its own label. It returns one label per
// vertex, in vertex order, densely renumbered from 1.
// Two calls with the same graph and seed return identical labels.
func Detect(g *conflict.Graph, maxIterations int, seed int64) []int {
	return propagate(g, maxIterations, seed, false)
}

// DetectWeighted is Detect with weighted votes: each neighbor contributes
// the weight of its edge to its own label. On an unweighted graph every
// edge weighs 1, so it degrades to exactly Detect.
func DetectWeighted(g *conflict.Graph, maxIterations int, seed int64) []int {
	return propagate(g, maxIterations, seed, true)
}

func propagate(g *conflict.Graph, maxIterations int, seed int64, weighted bool) []int {
	n := g.NbVertices()
	if n == 0 {
		return []int{}
	}
	if maxIterations < 1 {
		maxIterations = DefaultMaxIterations
	}
	rng := rand.New(rand.NewSource(seed))
	labels := make([]int, n+1) // labels[0] unused, vertices are 1-based
	order := make([]int, n)
	for v := 1; v <= n; v++ {
		labels[v] = v
		order[v-1] = v
	}
	for iter := 0; iter < maxIterations; iter++ {
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
		changed := false
		for _, v := range order {
			neighbors := g.Neighbors(v)
			if len(neighbors) == 0 {
				continue // Isolated vertices keep their label.
			}
			votes := make(map[int]float64, len(neighbors))
			for _, u := range neighbors {
				w := 1.0
				if weighted {
					w = g.Weight(v, u)
				}
				votes[labels[u]] += w
			}
			if best := bestLabel(votes); best != labels[v] {
				labels[v] = best
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return renumber(labels[1:])
}

// bestLabel returns the label with the highest vote. Ties always go to the
// smallest label value, so the seed only ever influences visitation order.
func bestLabel(votes map[int]float64) int {
	best := 0
	bestVote := math.Inf(-1)
	for label, vote := range votes {
		if vote > bestVote || (vote == bestVote && label < best) {
			best = label
			bestVote = vote
		}
	}
	return best
}

// renumber remaps surviving label values onto the dense range 1..k, in
// order of first appearance.
func renumber(labels []int) []int {
	dense := make(map[int]int, len(labels))
	res := make([]int, len(labels))
	for i, label := range labels {
		d, ok := dense[label]
		if !ok {
			d = len(dense) + 1
			dense[label] = d
		}
		res[i] = d
	}
	return res
}
