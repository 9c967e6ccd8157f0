package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/satlab/commsat/cnf"
	"github.com/satlab/commsat/community"
	"github.com/satlab/commsat/conflict"
	"github.com/satlab/commsat/solver"
	"github.com/satlab/commsat/stats"
)

func main() {
	var (
		weighted      bool
		minConflicts  int
		maxIterations int
		seed          int64
		baseline      int
		summary       bool
		verbose       bool
	)
	flag.BoolVar(&weighted, "weighted", false, "uses the weighted conflict graph and weighted label propagation")
	flag.IntVar(&minConflicts, "min-conflicts", conflict.DefaultMinConflicts, "minimum number of conflicts between two clauses to link them")
	flag.IntVar(&maxIterations, "max-iterations", community.DefaultMaxIterations, "maximum number of label propagation passes")
	flag.Int64Var(&seed, "seed", 1, "seed for all random choices")
	flag.IntVar(&baseline, "baseline", 0, "also runs the random baseline with the given number of tries")
	flag.BoolVar(&summary, "summary", false, "prints structural summaries of the instance")
	flag.BoolVar(&verbose, "verbose", false, "sets verbose mode on")
	flag.Parse()
	if len(flag.Args()) != 1 {
		fmt.Fprintf(os.Stderr, "Syntax : %s [options] file.cnf\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if !verbose {
		logger = logger.Level(zerolog.WarnLevel)
	}
	path := flag.Args()[0]
	fmt.Printf("c solving %s\n", path)
	f, err := parse(path)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not load instance")
	}
	logger.Info().Int("vars", f.NbVars).Int("clauses", f.NbClauses()).Msg("parsed instance")

	start := time.Now()
	g := conflict.Build(f.Clauses, conflict.Options{Weighted: weighted, MinConflicts: minConflicts})
	logger.Info().Int("edges", g.NbEdges()).Dur("elapsed", time.Since(start)).Msg("built conflict graph")

	start = time.Now()
	var labels []int
	if weighted {
		labels = community.DetectWeighted(g, maxIterations, seed)
	} else {
		labels = community.Detect(g, maxIterations, seed)
	}
	cs := stats.Communities(labels)
	logger.Info().Int("communities", cs.NbCommunities).Dur("elapsed", time.Since(start)).Msg("detected communities")

	start = time.Now()
	model, score := solver.Solve(f.Clauses, f.NbVars, labels, seed)
	logger.Info().Int("score", score).Dur("elapsed", time.Since(start)).Msg("solved")

	if summary {
		printSummary(f, g, labels)
	}
	fmt.Printf("o %d\n", f.NbClauses()-score)
	fmt.Println(scoreLine(score, f.NbClauses()))
	outputModel(model)
	if baseline > 0 {
		_, baseScore := solver.Baseline(f.Clauses, f.NbVars, baseline, seed)
		fmt.Printf("c baseline %d/%d over %d tries\n", baseScore, f.NbClauses(), baseline)
	}
}

func parse(path string) (*cnf.Formula, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %v", path, err)
	}
	defer f.Close()
	pb, err := cnf.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("could not parse DIMACS file %q: %v", path, err)
	}
	return pb, nil
}

func printSummary(f *cnf.Formula, g *conflict.Graph, labels []int) {
	fs := stats.Formula(f)
	gs := stats.Graph(g)
	cs := stats.Communities(labels)
	fmt.Printf("c ======================================================================================\n")
	fmt.Printf("c | Number of clauses   : %9d                                                    |\n", fs.NbClauses)
	fmt.Printf("c | Number of variables : %9d                                                    |\n", fs.NbVars)
	fmt.Printf("c | Clause length       : min %d, max %d, mean %.2f\n", fs.MinClauseLen, fs.MaxClauseLen, fs.MeanClauseLen)
	fmt.Printf("c | Conflict graph      : %d edges, density %.4f, %d components, %d isolated\n", gs.NbEdges, gs.Density, gs.NbComponents, gs.NbIsolated)
	fmt.Printf("c | Communities         : %d, sizes in [%d, %d], mean %.2f, stddev %.2f\n", cs.NbCommunities, cs.MinSize, cs.MaxSize, cs.MeanSize, cs.StdDevSize)
	fmt.Printf("c ======================================================================================\n")
}

// scoreLine renders the final score as the 's' line of the output.
func scoreLine(score, nbClauses int) string {
	return fmt.Sprintf("s %d/%d", score, nbClauses)
}

func outputModel(model cnf.Assignment) {
	fmt.Printf("v ")
	for _, lit := range model.Lits() {
		fmt.Printf("%d ", lit)
	}
	fmt.Printf("\n")
}
