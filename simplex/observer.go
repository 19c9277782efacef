package simplex

import (
	"github.com/ssstroke/Gomory/model"
	"github.com/ssstroke/Gomory/rational"
)

type EventKind int

const (
	EventBuild EventKind = iota
	EventFeasibilityPivot
	EventOptimizationPivot
	EventCut
)

func (k EventKind) String() string {
	switch k {
	case EventBuild:
		return "build"
	case EventFeasibilityPivot:
		return "feasibility pivot"
	case EventOptimizationPivot:
		return "optimization pivot"
	case EventCut:
		return "cut"
	default:
		return "unknown"
	}
}

// Snapshot is the state handed to an observer. It is a copy and may be
// retained.
type Snapshot struct {
	Event EventKind

	//Row, Col pivot position; for a cut, the source row and the new slack column
	Row, Col int

	Tableau      *model.Tableau
	ReducedCosts []rational.Rational
}

func (s *Solver) notify(kind EventKind, row, col int) {
	if s.observer == nil {
		return
	}
	s.observer(Snapshot{
		Event:        kind,
		Row:          row,
		Col:          col,
		Tableau:      s.tab.Clone(),
		ReducedCosts: s.ReducedCosts(),
	})
}
