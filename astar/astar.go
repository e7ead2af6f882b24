package astar

import (
	"container/heap"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Search finds a cheapest path from start to goal.
//
// Behavior:
//  1. Apply options; surface ErrOptionViolation.
//  2. Validate neighbors (ErrNilNeighbors).
//  3. Run SearchFunc with the single start and the equality goal test.
//
// start == goal returns a one-node path with Cost 0.
// An unreachable goal returns ErrNoPath.
func Search[N comparable](start, goal N, neighbors NeighborFunc[N], opts ...Option[N]) (*Result[N], error) {
	return SearchFunc([]N{start}, func(n N) bool { return n == goal }, neighbors, opts...)
}

// SearchFunc finds a cheapest path from any of starts to any node satisfying isGoal.
// All starts seed the frontier at g = 0, so one run yields the minimum over
// every start; duplicate starts are ignored.
//
// The heuristic, if any, must be admissible with respect to the nearest goal.
//
// Returns:
//   - *Result with the path from the winning start to the reached goal.
//   - ErrNoPath if the frontier empties first.
//   - ErrNoStart, ErrNilGoal, ErrNilNeighbors, ErrOptionViolation for bad input.
//   - ErrNegativeCost (wrapped with the offending step) if Cost misbehaves.
func SearchFunc[N comparable](starts []N, isGoal func(N) bool, neighbors NeighborFunc[N], opts ...Option[N]) (*Result[N], error) {
	// 1) Build and validate Options
	cfg := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate inputs
	if len(starts) == 0 {
		return nil, ErrNoStart
	}
	if isGoal == nil {
		return nil, ErrNilGoal
	}
	if neighbors == nil {
		return nil, ErrNilNeighbors
	}

	r := &runner[N]{
		options:   cfg,
		neighbors: neighbors,
		isGoal:    isGoal,
		g:         make(map[N]int),
		prev:      make(map[N]N),
		open:      frontier[N]{less: cfg.Less},
		entries:   make(map[N]*entry[N]),
	}
	r.init(starts)
	res, err := r.process()

	fields := logrus.Fields{
		"component": "astar",
		"starts":    len(starts),
		"expanded":  r.expanded,
		"frontier":  r.open.Len(),
		"seen":      len(r.g),
	}
	if err != nil {
		cfg.Logger.WithFields(fields).WithError(err).Debug("search ended without a path")
		return nil, err
	}
	fields["cost"] = res.Cost
	cfg.Logger.WithFields(fields).Debug("search reached goal")

	return res, nil
}

// runner holds the mutable state for a single search.
type runner[N comparable] struct {
	options   Options[N]
	neighbors NeighborFunc[N]
	isGoal    func(N) bool
	g         map[N]int       // best known cost from the nearest start
	prev      map[N]N         // predecessor on that best path; starts have none
	open      frontier[N]     // min-heap ordered by (f, h, Less, seq)
	entries   map[N]*entry[N] // live heap entries, for decrease-key via heap.Fix
	seq       uint64          // insertion counter for the FIFO tie-break
	expanded  int
}

// init seeds the frontier with every distinct start at g = 0.
func (r *runner[N]) init(starts []N) {
	heap.Init(&r.open)
	for _, s := range starts {
		if _, dup := r.g[s]; dup {
			continue
		}
		r.g[s] = 0
		r.push(s, 0)
	}
}

// process pops the lowest-priority entry until a goal is reached or the frontier empties.
func (r *runner[N]) process() (*Result[N], error) {
	for r.open.Len() > 0 {
		e := heap.Pop(&r.open).(*entry[N])
		delete(r.entries, e.node)
		u, gu := e.node, r.g[e.node]

		r.expanded++
		r.options.OnExpand(u, gu)

		if r.isGoal(u) {
			return &Result[N]{Path: Reconstruct(r.prev, u), Cost: gu, Expanded: r.expanded}, nil
		}
		if err := r.relax(u, gu); err != nil {
			return nil, err
		}
	}

	return nil, ErrNoPath
}

// relax records every neighbor v of u whose tentative g-score is strictly
// better than its previous one, and (re)queues it.
func (r *runner[N]) relax(u N, gu int) error {
	for _, v := range r.neighbors(u) {
		w := r.options.Cost(u, v)
		if w < 0 {
			return fmt.Errorf("%w: %v→%v cost=%d", ErrNegativeCost, u, v, w)
		}
		tentative := gu + w
		if tentative > r.options.MaxCost {
			continue
		}
		if old, seen := r.g[v]; seen && tentative >= old {
			continue
		}
		r.g[v] = tentative
		r.prev[v] = u

		if e, queued := r.entries[v]; queued {
			// decrease-key in place; h(v) does not change
			e.f = tentative + e.h
			heap.Fix(&r.open, e.index)
			continue
		}
		r.push(v, tentative)
	}

	return nil
}

// push inserts n with cost g into the frontier.
func (r *runner[N]) push(n N, g int) {
	h := r.options.Heuristic(n)
	e := &entry[N]{node: n, f: g + h, h: h, seq: r.seq}
	r.seq++
	r.entries[n] = e
	heap.Push(&r.open, e)
}

// Reconstruct follows predecessor links back from end and returns the path
// in forward order. Nodes without a predecessor terminate the walk.
func Reconstruct[N comparable](prev map[N]N, end N) []N {
	path := []N{end}
	for cur := end; ; {
		p, ok := prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	// reverse to get start → end
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
