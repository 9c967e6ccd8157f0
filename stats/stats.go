// Package stats computes structural summaries of CNF formulas, conflict
// graphs and community partitions, for reporting purposes only.
package stats

import (
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/stat"

	"github.com/satlab/commsat/cnf"
	"github.com/satlab/commsat/conflict"
)

// A FormulaSummary describes the shape of a CNF formula.
type FormulaSummary struct {
	NbVars        int
	NbClauses     int
	MinClauseLen  int
	MaxClauseLen  int
	MeanClauseLen float64
}

// Formula summarizes f.
func Formula(f *cnf.Formula) FormulaSummary {
	res := FormulaSummary{NbVars: f.NbVars, NbClauses: f.NbClauses()}
	if res.NbClauses == 0 {
		return res
	}
	total := 0
	res.MinClauseLen = len(f.Clauses[0])
	for _, clause := range f.Clauses {
		n := len(clause)
		total += n
		if n < res.MinClauseLen {
			res.MinClauseLen = n
		}
		if n > res.MaxClauseLen {
			res.MaxClauseLen = n
		}
	}
	res.MeanClauseLen = float64(total) / float64(res.NbClauses)
	return res
}

// A GraphSummary describes the shape of a conflict graph.
type GraphSummary struct {
	NbVertices   int
	NbEdges      int
	Density      float64 // Edges over possible edges.
	NbIsolated   int     // Vertices without any neighbor.
	NbComponents int     // Connected components, isolated vertices included.
}

// Graph summarizes g.
func Graph(g *conflict.Graph) GraphSummary {
	res := GraphSummary{NbVertices: g.NbVertices(), NbEdges: g.NbEdges()}
	if res.NbVertices > 1 {
		res.Density = float64(2*res.NbEdges) / float64(res.NbVertices*(res.NbVertices-1))
	}
	for v := 1; v <= res.NbVertices; v++ {
		if len(g.Neighbors(v)) == 0 {
			res.NbIsolated++
		}
	}
	if res.NbVertices > 0 {
		res.NbComponents = len(topo.ConnectedComponents(g.Undirected()))
	}
	return res
}

// A CommunitySummary describes a partition of clauses into communities.
type CommunitySummary struct {
	NbCommunities int
	MinSize       int
	MaxSize       int
	MeanSize      float64
	StdDevSize    float64 // Population standard deviation of the sizes.
}

// Communities summarizes a per-clause label sequence, as returned by the
// community package.
func Communities(labels []int) CommunitySummary {
	if len(labels) == 0 {
		return CommunitySummary{}
	}
	count := make(map[int]int)
	for _, label := range labels {
		count[label]++
	}
	sizes := make([]float64, 0, len(count))
	res := CommunitySummary{NbCommunities: len(count)}
	for _, size := range count {
		sizes = append(sizes, float64(size))
		if res.MinSize == 0 || size < res.MinSize {
			res.MinSize = size
		}
		if size > res.MaxSize {
			res.MaxSize = size
		}
	}
	res.MeanSize = stat.Mean(sizes, nil)
	res.StdDevSize = stat.PopStdDev(sizes, nil)
	return res
}
