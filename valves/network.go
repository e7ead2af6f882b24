package valves

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvlath-aoc/astar"
	"github.com/katalvlaran/lvlath-aoc/core"
)

// New builds a Network from parsed valves.
//
// Steps:
//  1. Declare every valve as a vertex weighted by its rate.
//  2. Link each tunnel as a one-way edge; repeated tunnels collapse.
//
// Returns ErrNoValves, ErrBadLine (empty name or negative rate),
// ErrDuplicateValve or ErrUnknownValve (wrapped with the names involved).
func New(vs []Valve, opts ...Option) (*Network, error) {
	if len(vs) == 0 {
		return nil, ErrNoValves
	}
	n := defaultNetwork()
	for _, opt := range opts {
		opt(n)
	}

	// A tunnel back into the same valve is legal, if useless.
	g := core.NewGraph(core.WithDirected(true), core.WithLoops())

	// 1) Vertices
	for _, v := range vs {
		if v.Rate < 0 {
			return nil, fmt.Errorf("%w: valve %q has rate %d", ErrBadLine, v.Name, v.Rate)
		}
		if g.HasVertex(v.Name) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateValve, v.Name)
		}
		if err := g.AddVertex(v.Name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadLine, err)
		}
		if err := g.SetVertexWeight(v.Name, int64(v.Rate)); err != nil {
			return nil, err
		}
	}

	// 2) Tunnels
	for _, v := range vs {
		for _, t := range v.Tunnels {
			if !g.HasVertex(t) {
				return nil, fmt.Errorf("%w: %q (tunnel from %q)", ErrUnknownValve, t, v.Name)
			}
			if g.HasEdge(v.Name, t) {
				continue
			}
			if _, err := g.AddEdge(v.Name, t, 0); err != nil {
				return nil, fmt.Errorf("valve %q: %w", v.Name, err)
			}
		}
	}
	n.graph = g

	return n, nil
}

// Valves returns every valve name, sorted.
func (n *Network) Valves() []string { return n.graph.Vertices() }

// Rate returns the flow rate of name.
func (n *Network) Rate(name string) (int, error) {
	v, err := n.graph.Vertex(name)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownValve, name)
	}

	return int(v.Weight), nil
}

// Tunnels returns the valves reachable from name through one tunnel, sorted.
func (n *Network) Tunnels(name string) ([]string, error) {
	ids, err := n.graph.NeighborIDs(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownValve, name)
	}

	return ids, nil
}

// Path returns a shortest tunnel route from one valve to another, both
// included. Equal-length routes are broken by valve name.
// Returns ErrUnknownValve or astar.ErrNoPath.
func (n *Network) Path(from, to string) ([]string, error) {
	res, err := n.route(from, to, n.log)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// Distance returns the number of tunnels on a shortest route.
func (n *Network) Distance(from, to string) (int, error) {
	res, err := n.route(from, to, nil)
	if err != nil {
		return 0, err
	}

	return res.Cost, nil
}

func (n *Network) route(from, to string, log logrus.FieldLogger) (*astar.Result[string], error) {
	for _, id := range [...]string{from, to} {
		if !n.graph.HasVertex(id) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownValve, id)
		}
	}

	return astar.Search(from, to, astar.GraphNeighbors(n.graph),
		astar.WithCost(astar.GraphCost(n.graph)),
		astar.WithLess(func(a, b string) bool { return a < b }),
		astar.WithLogger[string](log),
	)
}

// MaxPressure finds the opening order that releases the most pressure
// within minutes, starting at start.
//
// Steps:
//  1. Collect valves with a positive rate, in name order.
//  2. Measure every start-to-valve and valve-to-valve distance with astar.
//  3. Depth-first over unopened valves, each hop costing distance+1 minutes.
//
// Returns ErrNegativeMinutes, ErrUnknownValve or ErrTooManyValves.
// Complexity: O(k²) searches, then O(k!) in the worst case for k useful valves.
func (n *Network) MaxPressure(start string, minutes int) (Plan, error) {
	if minutes < 0 {
		return Plan{}, fmt.Errorf("%w: %d", ErrNegativeMinutes, minutes)
	}
	if !n.graph.HasVertex(start) {
		return Plan{}, fmt.Errorf("%w: %q", ErrUnknownValve, start)
	}

	// 1) Useful valves
	var names []string
	var rates []int
	for _, id := range n.graph.Vertices() {
		v, _ := n.graph.Vertex(id)
		if v.Weight > 0 {
			names = append(names, id)
			rates = append(rates, int(v.Weight))
		}
	}
	if len(names) > maxUseful {
		return Plan{}, fmt.Errorf("%w: %d > %d", ErrTooManyValves, len(names), maxUseful)
	}

	// 2) Distances; row 0 is start, row i+1 is names[i]. -1 marks unreachable.
	dist, err := n.distances(append([]string{start}, names...))
	if err != nil {
		return Plan{}, err
	}

	// 3) Search
	p := &planner{dist: dist, rates: rates}
	p.visit(0, minutes, 0, 0)

	plan := Plan{Released: p.best, Order: make([]string, len(p.bestOrder))}
	for i, idx := range p.bestOrder {
		plan.Order[i] = names[idx]
	}
	n.log.WithFields(logrus.Fields{
		"component": "valves",
		"start":     start,
		"minutes":   minutes,
		"useful":    len(names),
		"explored":  p.explored,
		"released":  plan.Released,
	}).Debug("pressure plan complete")

	return plan, nil
}

func (n *Network) distances(nodes []string) ([][]int, error) {
	dist := make([][]int, len(nodes))
	for i, from := range nodes {
		dist[i] = make([]int, len(nodes))
		for j, to := range nodes {
			d, err := n.Distance(from, to)
			switch {
			case errors.Is(err, astar.ErrNoPath):
				d = -1
			case err != nil:
				return nil, err
			}
			dist[i][j] = d
		}
	}

	return dist, nil
}

// planner holds the state of one exhaustive opening-order search.
type planner struct {
	dist      [][]int
	rates     []int
	order     []int
	best      int
	bestOrder []int
	explored  int
}

// visit extends the current order from node at with left minutes.
// Bit i of opened marks rates[i] as open.
func (p *planner) visit(at, left int, opened uint64, released int) {
	p.explored++
	if released > p.best {
		p.best = released
		p.bestOrder = append(p.bestOrder[:0], p.order...)
	}
	for i, rate := range p.rates {
		if opened&(1<<i) != 0 {
			continue
		}
		d := p.dist[at][i+1]
		if d < 0 {
			continue
		}
		r := left - d - 1
		if r <= 0 {
			continue
		}
		p.order = append(p.order, i)
		p.visit(i+1, r, opened|1<<i, released+rate*r)
		p.order = p.order[:len(p.order)-1]
	}
}
