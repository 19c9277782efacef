package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	"github.com/ssstroke/Gomory/instance"
	"github.com/ssstroke/Gomory/model"
	"github.com/ssstroke/Gomory/simplex"
)

var (
	mpsFile   = flag.String("mps", "", "read the problem from an MPS file instead of the built-in example")
	textFile  = flag.String("problem", "", "read the problem from a text file (\"max c1 c2\", then one \"a1 a2 <= b\" row per line)")
	relax     = flag.Bool("relax", false, "solve the LP relaxation only")
	trunc     = flag.Bool("trunc", false, "take fractional parts toward zero when cutting")
	maxPivots = flag.Int("max-pivots", 1000, "pivot limit per phase")
	maxCuts   = flag.Int("max-cuts", 200, "cut limit")
	trace     = flag.Bool("trace", false, "print the tableau after every step")
)

type glogLogger struct{}

func (glogLogger) Print(v ...interface{}) {
	glog.InfoDepth(1, v...)
}

// example is the instance the solver was first written for.
func example() *model.Problem {
	return model.FromInts([]int64{-3, 0}, [][]int64{
		{0, 3, 4},
		{2, 1, 4},
		{-4, 3, 4},
		{-3, 1, 0},
	}, []model.Sign{
		model.GreaterOrEqual,
		model.GreaterOrEqual,
		model.LessOrEqual,
		model.GreaterOrEqual,
	})
}

func printSnapshot(snap simplex.Snapshot) {
	switch snap.Event {
	case simplex.EventBuild:
		fmt.Println("-------------------- INITIAL TABLEAU ----------------------")
	case simplex.EventCut:
		fmt.Printf("-------------------- CUT FROM ROW %v, SLACK x_%v ----------------------\n", snap.Row, snap.Col+1)
	default:
		fmt.Printf("-------------------- PIVOT (%v, %v) %v ----------------------\n", snap.Row, snap.Col, snap.Event)
	}
	fmt.Println(snap.Tableau)
	fmt.Printf("delta = %v\n\n", snap.ReducedCosts)
}

func main() {
	flag.Parse()
	defer glog.Flush()

	p := example()
	switch {
	case *textFile != "":
		var err error
		p, err = instance.ReadTextFile(*textFile)
		if err != nil {
			glog.Exitf("loading problem: %v", err)
		}
	case *mpsFile != "":
		if !instance.Supported {
			glog.Warning("MPS input needs a build with -tags glpk")
		}
		var err error
		p, err = instance.NewReader(*mpsFile).ReadProblem()
		if err != nil {
			glog.Exitf("loading problem: %v", err)
		}
	}

	rule := simplex.FloorFraction
	if *trunc {
		rule = simplex.TruncatedFraction
	}
	opts := []simplex.Option{
		simplex.WithLogger(glogLogger{}),
		simplex.WithIntegrality(!*relax),
		simplex.WithCutRule(rule),
		simplex.WithMaxPivots(*maxPivots),
		simplex.WithMaxCuts(*maxCuts),
	}
	if *trace {
		opts = append(opts, simplex.WithObserver(printSnapshot))
	}

	res, err := simplex.Solve(p, opts...)
	if err != nil {
		glog.Exitf("solving: %v", err)
	}

	fmt.Printf("Status: %v (%v pivots, %v cuts)\n", res.Status, res.Pivots, res.Cuts)
	if !res.IsOptimal() {
		glog.Flush()
		os.Exit(1)
	}
	for j, v := range res.Values {
		fmt.Printf("x_%v = %v\n", j+1, v)
	}
	fmt.Printf("Z = %v\n", res.Objective)
}
