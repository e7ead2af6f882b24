package astar

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvlath-aoc/logger"
)

// Sentinel errors returned by Search and SearchFunc.
var (
	// ErrNoPath indicates that the frontier emptied before any goal was reached.
	ErrNoPath = errors.New("astar: no path to goal")

	// ErrNoStart indicates that SearchFunc was called without start nodes.
	ErrNoStart = errors.New("astar: at least one start node is required")

	// ErrNilNeighbors indicates a nil neighbor function.
	ErrNilNeighbors = errors.New("astar: neighbor function is nil")

	// ErrNilGoal indicates a nil goal predicate.
	ErrNilGoal = errors.New("astar: goal predicate is nil")

	// ErrNegativeCost indicates the cost function produced a negative step cost.
	ErrNegativeCost = errors.New("astar: negative step cost")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// NeighborFunc yields the nodes reachable in one step from n.
// It encodes both space membership and directional step validity:
// a node that is not returned is not traversable from n.
type NeighborFunc[N comparable] func(n N) []N

// Options holds the tunables of a single search.
type Options[N comparable] struct {
	// Heuristic estimates the remaining cost to the nearest goal; it must not overestimate.
	Heuristic func(n N) int

	// Cost returns the cost of stepping from one node to a neighbor. Must be ≥ 0.
	Cost func(from, to N) int

	// MaxCost, when non-negative, bounds g: costlier paths are never recorded.
	MaxCost int

	// Less, if non-nil, orders frontier entries that tie on f and h.
	Less func(a, b N) bool

	// OnExpand is called for each node popped from the frontier with its g-score.
	OnExpand func(n N, g int)

	// Logger receives a Debug summary once the search ends.
	Logger logrus.FieldLogger

	// internal error recorded during option parsing
	err error
}

// Option configures a search via functional arguments.
type Option[N comparable] func(*Options[N])

// DefaultOptions returns options for an uninformed unit-cost search:
//   - Heuristic: 0 everywhere (Dijkstra / BFS order).
//   - Cost:      1 per step.
//   - MaxCost:   math.MaxInt (no cap).
//   - Less:      nil (insertion order decides).
//   - OnExpand:  no-op.
//   - Logger:    discards everything.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{
		Heuristic: func(N) int { return 0 },
		Cost:      func(_, _ N) int { return 1 },
		MaxCost:   math.MaxInt,
		OnExpand:  func(N, int) {},
		Logger:    logger.Discard(),
	}
}

// WithHeuristic sets an admissible heuristic. A nil h is ignored.
func WithHeuristic[N comparable](h func(n N) int) Option[N] {
	return func(o *Options[N]) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithCost sets the step-cost function. A nil fn is ignored.
func WithCost[N comparable](fn func(from, to N) int) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.Cost = fn
		}
	}
}

// WithMaxCost caps the path cost.
//
//	c ≥ 0: paths costing more than c are never recorded
//	c < 0: invalid option → ErrOptionViolation
func WithMaxCost[N comparable](c int) Option[N] {
	return func(o *Options[N]) {
		if c < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, c)
			return
		}
		o.MaxCost = c
	}
}

// WithLess sets the final tie-break ordering. A nil fn is ignored.
func WithLess[N comparable](fn func(a, b N) bool) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.Less = fn
		}
	}
}

// WithOnExpand registers a callback run on every expansion.
func WithOnExpand[N comparable](fn func(n N, g int)) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithLogger routes the end-of-search summary to l.
func WithLogger[N comparable](l logrus.FieldLogger) Option[N] {
	return func(o *Options[N]) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result is the outcome of a successful search.
type Result[N comparable] struct {
	// Path lists nodes from the chosen start to the reached goal, inclusive.
	Path []N
	// Cost is the sum of step costs along Path.
	Cost int
	// Expanded counts frontier pops, stale ones excluded.
	Expanded int
}

// Steps returns the number of edges on the path (len(Path)-1).
func (r *Result[N]) Steps() int {
	return len(r.Path) - 1
}

// Start returns the first node of the path.
func (r *Result[N]) Start() N {
	return r.Path[0]
}

// Goal returns the last node of the path.
func (r *Result[N]) Goal() N {
	return r.Path[len(r.Path)-1]
}
