// Package conflict builds conflict graphs over the clauses of a CNF formula.
//
// Two clauses conflict when one contains a literal whose negation appears in
// the other. The conflict graph has one vertex per clause index (1-based,
// in declaration order) and an edge between every pair of clauses whose
// conflict count reaches a threshold. The graph can be built plain or
// edge-weighted; in the latter case a caller-supplied transform derives the
// weight of each edge from its conflict count.
package conflict

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// DefaultMinConflicts is the edge-creation threshold used when the caller
// does not provide a positive one.
const DefaultMinConflicts = 2

// A WeightFunc derives an edge weight from a conflict count.
type WeightFunc func(conflicts int) float64

// Options control how a conflict graph is built.
type Options struct {
	Weighted     bool       // Store edge weights derived from conflict counts.
	MinConflicts int        // Minimum conflict count for an edge. DefaultMinConflicts when < 1.
	WeightFn     WeightFunc // Weight transform, weighted mode only. nil keeps the raw counts.
}

// A Graph is a conflict graph over clause indices 1..N.
// It is immutable once built.
type Graph struct {
	n        int
	weighted bool
	ug       *simple.UndirectedGraph
	wg       *simple.WeightedUndirectedGraph
}

// Count returns the number of literals of ci whose negation appears in cj.
// The relation is symmetric: each conflicting literal of ci pairs with its
// negation in cj, so the same variable pairs are counted from either side.
func Count(ci, cj []int) int {
	res := 0
	for _, li := range ci {
		for _, lj := range cj {
			if li == -lj {
				res++
				break
			}
		}
	}
	return res
}

// Build returns the conflict graph of the given clauses.
// Every clause is a vertex, even when it conflicts with no other clause.
// An edge is created between two clauses iff their conflict count is at
// least opts.MinConflicts; in weighted mode each edge carries
// opts.WeightFn(count), or the raw count when the transform misbehaves
// (see Options).
func Build(clauses [][]int, opts Options) *Graph {
	minConflicts := opts.MinConflicts
	if minConflicts < 1 {
		minConflicts = DefaultMinConflicts
	}
	g := &Graph{n: len(clauses), weighted: opts.Weighted}
	if g.weighted {
		g.wg = simple.NewWeightedUndirectedGraph(0, 0)
	} else {
		g.ug = simple.NewUndirectedGraph()
	}
	for i := 1; i <= g.n; i++ {
		if g.weighted {
			g.wg.AddNode(simple.Node(i))
		} else {
			g.ug.AddNode(simple.Node(i))
		}
	}
	for i := 0; i < len(clauses); i++ {
		for j := i + 1; j < len(clauses); j++ {
			count := Count(clauses[i], clauses[j])
			if count < minConflicts {
				continue
			}
			if g.weighted {
				w := safeWeight(opts.WeightFn, count)
				g.wg.SetWeightedEdge(g.wg.NewWeightedEdge(simple.Node(i+1), simple.Node(j+1), w))
			} else {
				g.ug.SetEdge(g.ug.NewEdge(simple.Node(i+1), simple.Node(j+1)))
			}
		}
	}
	return g
}

// safeWeight applies fn to count and falls back to the raw conflict count
// whenever fn panics or yields a value that is not positive and finite.
// An edge that met the threshold always gets a usable weight.
func safeWeight(fn WeightFunc, count int) (w float64) {
	w = float64(count)
	if fn == nil {
		return w
	}
	defer func() {
		if recover() != nil {
			w = float64(count)
		}
	}()
	res := fn(count)
	if math.IsNaN(res) || math.IsInf(res, 0) || res <= 0 {
		return w
	}
	return res
}

// NbVertices returns the number of vertices, i.e the number of clauses the
// graph was built from.
func (g *Graph) NbVertices() int {
	return g.n
}

// Weighted indicates whether the graph stores edge weights.
func (g *Graph) Weighted() bool {
	return g.weighted
}

// Undirected returns the underlying gonum graph.
func (g *Graph) Undirected() graph.Undirected {
	if g.weighted {
		return g.wg
	}
	return g.ug
}

// edges returns the edge iterator of the underlying gonum graph.
func (g *Graph) edges() graph.Edges {
	if g.weighted {
		return g.wg.Edges()
	}
	return g.ug.Edges()
}

// NbEdges returns the number of edges of the graph.
func (g *Graph) NbEdges() int {
	return g.edges().Len()
}

// HasEdge indicates whether vertices u and v are linked.
func (g *Graph) HasEdge(u, v int) bool {
	return g.Undirected().HasEdgeBetween(int64(u), int64(v))
}

// Neighbors returns the vertices linked to v, in ascending order.
func (g *Graph) Neighbors(v int) []int {
	nodes := g.Undirected().From(int64(v))
	res := make([]int, 0, nodes.Len())
	for nodes.Next() {
		res = append(res, int(nodes.Node().ID()))
	}
	sort.Ints(res)
	return res
}

// Weight returns the weight of the edge between u and v.
// Every edge of an unweighted graph weighs 1; a missing edge weighs 0.
func (g *Graph) Weight(u, v int) float64 {
	if u == v || !g.HasEdge(u, v) {
		return 0
	}
	if !g.weighted {
		return 1
	}
	w, _ := g.wg.Weight(int64(u), int64(v))
	return w
}

// Edges returns every edge as an ordered pair {u, v} with u < v, sorted
// lexicographically.
func (g *Graph) Edges() [][2]int {
	it := g.edges()
	res := make([][2]int, 0, it.Len())
	for it.Next() {
		e := it.Edge()
		u, v := int(e.From().ID()), int(e.To().ID())
		if u > v {
			u, v = v, u
		}
		res = append(res, [2]int{u, v})
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i][0] != res[j][0] {
			return res[i][0] < res[j][0]
		}
		return res[i][1] < res[j][1]
	})
	return res
}
