package community

import (
	"testing"

	"github.com/satlab/commsat/conflict"
)

// twoGroupClauses yields a conflict graph made of two triangles sharing no
// variable: clauses 1-3 over vars 1-3, clauses 4-6 over vars 4-6.
var twoGroupClauses = [][]int{
	{1, 2, 3},
	{-1, -2, 3},
	{1, -2, -3},
	{4, 5, 6},
	{-4, -5, 6},
	{4, -5, -6},
}

func buildTwoTriangles(weighted bool) *conflict.Graph {
	return conflict.Build(twoGroupClauses, conflict.Options{Weighted: weighted, MinConflicts: 2})
}

func sameLabels(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDetectTwoComponents(t *testing.T) {
	labels := Detect(buildTwoTriangles(false), DefaultMaxIterations, 42)
	if len(labels) != 6 {
		t.Fatalf("expected 6 labels, got %v", labels)
	}
	if labels[0] != labels[1] || labels[1] != labels[2] {
		t.Errorf("expected one community for clauses 1-3, got %v", labels)
	}
	if labels[3] != labels[4] || labels[4] != labels[5] {
		t.Errorf("expected one community for clauses 4-6, got %v", labels)
	}
	if labels[0] == labels[3] {
		t.Errorf("expected two distinct communities, got %v", labels)
	}
}

func TestDetectDeterministic(t *testing.T) {
	g := buildTwoTriangles(false)
	for _, seed := range []int64{0, 1, 7, 1234} {
		first := Detect(g, DefaultMaxIterations, seed)
		second := Detect(g, DefaultMaxIterations, seed)
		if !sameLabels(first, second) {
			t.Errorf("seed %d: two runs returned %v and %v", seed, first, second)
		}
	}
}

func TestDetectWeightedDeterministic(t *testing.T) {
	g := buildTwoTriangles(true)
	for _, seed := range []int64{0, 1, 7, 1234} {
		first := DetectWeighted(g, DefaultMaxIterations, seed)
		second := DetectWeighted(g, DefaultMaxIterations, seed)
		if !sameLabels(first, second) {
			t.Errorf("seed %d: two runs returned %v and %v", seed, first, second)
		}
	}
}

// On an unweighted graph every edge weighs 1, so weighted propagation must
// reproduce plain propagation exactly.
func TestDetectWeightedUniformFallback(t *testing.T) {
	g := buildTwoTriangles(false)
	for _, seed := range []int64{0, 3, 99} {
		plain := Detect(g, DefaultMaxIterations, seed)
		weighted := DetectWeighted(g, DefaultMaxIterations, seed)
		if !sameLabels(plain, weighted) {
			t.Errorf("seed %d: plain %v differs from weighted %v", seed, plain, weighted)
		}
	}
}

func TestLabelsDense(t *testing.T) {
	for _, weighted := range []bool{false, true} {
		labels := Detect(buildTwoTriangles(weighted), DefaultMaxIterations, 3)
		seen := make(map[int]bool)
		max := 0
		for _, label := range labels {
			seen[label] = true
			if label > max {
				max = label
			}
			if label < 1 {
				t.Fatalf("label %d below 1 in %v", label, labels)
			}
		}
		for label := 1; label <= max; label++ {
			if !seen[label] {
				t.Errorf("weighted=%t: gap at label %d in %v", weighted, label, labels)
			}
		}
	}
}

// unbalancedClauses yields a conflict graph where weighted and unit votes
// disagree. Clauses 1-2 and clauses 4-5 are pairs conflicting on 4
// variables; clause 3 conflicts with clause 1 on 3 variables and with each
// of clauses 4 and 5 on 2. With squared-count weights the pair edges weigh
// 16, so each pair always outvotes anything external and stays uniform,
// and clause 3 sees one edge of weight 9 against two of weight 4: the
// heavy edge wins 9 to 8 while unit votes go 1 to 2 the other way.
var unbalancedClauses = [][]int{
	{1, 2, 3, 4, 5, 6, 7},
	{-1, -2, -3, -4},
	{-5, -6, -7, -12, -13, -14, -15},
	{8, 9, 10, 11, 12, 13},
	{-8, -9, -10, -11, 14, 15},
}

func TestDetectWeightedFollowsEdgeWeights(t *testing.T) {
	square := func(c int) float64 { return float64(c * c) }
	g := conflict.Build(unbalancedClauses, conflict.Options{Weighted: true, MinConflicts: 2, WeightFn: square})
	for _, seed := range []int64{0, 1, 7, 1234} {
		weighted := DetectWeighted(g, DefaultMaxIterations, seed)
		if !sameLabels(weighted, []int{1, 1, 1, 2, 2}) {
			t.Errorf("seed %d: expected clause 3 pulled to the heavy edge's community, got %v", seed, weighted)
		}
		plain := Detect(g, DefaultMaxIterations, seed)
		if !sameLabels(plain, []int{1, 1, 2, 2, 2}) {
			t.Errorf("seed %d: expected clause 3 to follow the two unit votes, got %v", seed, plain)
		}
	}
}

func TestIsolatedVerticesKeepOwnCommunity(t *testing.T) {
	// Clause 1 conflicts with nothing: it must end up alone in its
	// community.
	clauses := [][]int{{1, 2, 3}, {4, 5, 6}, {-4, -5, 6}, {4, -5, -6}}
	g := conflict.Build(clauses, conflict.Options{MinConflicts: 2})
	labels := Detect(g, DefaultMaxIterations, 5)
	if labels[1] != labels[2] || labels[2] != labels[3] {
		t.Errorf("expected one community for clauses 2-4, got %v", labels)
	}
	if labels[0] == labels[1] {
		t.Errorf("expected the isolated clause 1 in its own community, got %v", labels)
	}
}

func TestDegenerateGraphs(t *testing.T) {
	if labels := Detect(conflict.Build(nil, conflict.Options{}), DefaultMaxIterations, 1); len(labels) != 0 {
		t.Errorf("expected no label for an empty graph, got %v", labels)
	}
	single := conflict.Build([][]int{{1, 2, 3}}, conflict.Options{})
	if labels := Detect(single, DefaultMaxIterations, 1); len(labels) != 1 || labels[0] != 1 {
		t.Errorf("expected [1] for a single vertex, got %v", labels)
	}
}

func TestMaxIterationsCap(t *testing.T) {
	// A single pass is enough to merge a triangle; capping at 1 must still
	// terminate and return dense labels.
	g := buildTwoTriangles(false)
	labels := Detect(g, 1, 11)
	if len(labels) != 6 {
		t.Fatalf("expected 6 labels, got %v", labels)
	}
	for _, label := range labels {
		if label < 1 || label > 6 {
			t.Errorf("label %d out of range in %v", label, labels)
		}
	}
}
