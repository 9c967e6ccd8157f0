package stats

import (
	"math"
	"testing"

	"github.com/satlab/commsat/cnf"
	"github.com/satlab/commsat/conflict"
)

func TestFormula(t *testing.T) {
	f := &cnf.Formula{NbVars: 4, Clauses: [][]int{{1, 2, 3}, {-1, -4}, {2, -3, 4}}}
	res := Formula(f)
	if res.NbVars != 4 || res.NbClauses != 3 {
		t.Errorf("unexpected sizes in %+v", res)
	}
	if res.MinClauseLen != 2 || res.MaxClauseLen != 3 {
		t.Errorf("unexpected clause lengths in %+v", res)
	}
	if math.Abs(res.MeanClauseLen-8.0/3.0) > 1e-9 {
		t.Errorf("unexpected mean clause length %f", res.MeanClauseLen)
	}
}

func TestFormulaEmpty(t *testing.T) {
	res := Formula(&cnf.Formula{NbVars: 2})
	if res.NbClauses != 0 || res.MeanClauseLen != 0 {
		t.Errorf("unexpected summary %+v for an empty formula", res)
	}
}

func TestGraph(t *testing.T) {
	// Clause 1 is isolated; clauses 2-4 form a triangle.
	clauses := [][]int{{1, 2, 3}, {4, 5, 6}, {-4, -5, 6}, {4, -5, -6}}
	g := conflict.Build(clauses, conflict.Options{MinConflicts: 2})
	res := Graph(g)
	if res.NbVertices != 4 || res.NbEdges != 3 {
		t.Errorf("unexpected sizes in %+v", res)
	}
	if res.NbIsolated != 1 {
		t.Errorf("expected 1 isolated vertex, got %d", res.NbIsolated)
	}
	if res.NbComponents != 2 {
		t.Errorf("expected 2 components, got %d", res.NbComponents)
	}
	if math.Abs(res.Density-0.5) > 1e-9 { // 3 edges out of 6 possible
		t.Errorf("unexpected density %f", res.Density)
	}
}

func TestGraphEmpty(t *testing.T) {
	res := Graph(conflict.Build(nil, conflict.Options{}))
	if res.NbVertices != 0 || res.NbEdges != 0 || res.NbComponents != 0 {
		t.Errorf("unexpected summary %+v for an empty graph", res)
	}
}

func TestCommunities(t *testing.T) {
	res := Communities([]int{1, 1, 1, 2, 2, 3})
	if res.NbCommunities != 3 {
		t.Errorf("expected 3 communities, got %d", res.NbCommunities)
	}
	if res.MinSize != 1 || res.MaxSize != 3 {
		t.Errorf("unexpected sizes in %+v", res)
	}
	if math.Abs(res.MeanSize-2.0) > 1e-9 {
		t.Errorf("unexpected mean size %f", res.MeanSize)
	}
	// Population stddev of {3, 2, 1} is sqrt(2/3).
	if math.Abs(res.StdDevSize-math.Sqrt(2.0/3.0)) > 1e-9 {
		t.Errorf("unexpected stddev %f", res.StdDevSize)
	}
}

func TestCommunitiesSingle(t *testing.T) {
	res := Communities([]int{1, 1})
	if res.NbCommunities != 1 || res.StdDevSize != 0 {
		t.Errorf("unexpected summary %+v for a single community", res)
	}
}

func TestCommunitiesEmpty(t *testing.T) {
	if res := Communities(nil); res.NbCommunities != 0 {
		t.Errorf("unexpected summary %+v for no community", res)
	}
}
