package turnsim

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// item is one worry level in flight. Exactly one of worry/res is meaningful,
// depending on the simulator mode. id is stable for the whole run.
type item struct {
	id    int
	worry uint64
	res   Residues
}

// agent is the mutable per-agent state. The simulator owns every agent and
// moves items between them by index only.
type agent struct {
	op        Operation
	test      uint64
	targets   [2]int // [false-target, true-target]
	queue     []item
	inspected int
	thrown    [2]int // items sent to targets[0] and targets[1]
}

// Simulator executes rounds over a fixed, ordered list of agents.
// It is not safe for concurrent use.
type Simulator struct {
	agents []*agent
	opts   Options
	moduli []uint64
	rounds int
	items  int
	err    error // sticky; set when a round fails
	log    logrus.FieldLogger
}

// New validates specs and options and returns a Simulator ready for round 1.
//
// Validation (in order):
//  1. Options must be valid (ErrBadMode, ErrZeroRelief, ErrOptionViolation).
//  2. specs must be non-empty (ErrNoAgents).
//  3. For every agent: known operation (ErrUnknownOperation), positive test
//     (ErrZeroTestValue) and targets in range (ErrTargetOutOfRange). An agent
//     may route to itself; such items wait for its next turn.
//  4. In ModeRemainder every test value must divide a tracked modulus
//     (ErrModulusMismatch).
//
// Errors are wrapped with the index of the offending agent.
func New(specs []AgentSpec, opts ...Option) (*Simulator, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if len(specs) == 0 {
		return nil, ErrNoAgents
	}
	for i, sp := range specs {
		if err := validateSpec(i, sp, len(specs)); err != nil {
			return nil, err
		}
	}

	s := &Simulator{
		agents: make([]*agent, len(specs)),
		opts:   cfg,
		log:    cfg.Logger.WithField("component", "turnsim"),
	}
	if cfg.Mode == ModeRemainder {
		s.moduli = cfg.Moduli
		if len(s.moduli) == 0 {
			s.moduli = make([]uint64, 0, len(specs))
			for _, sp := range specs {
				if !slices.Contains(s.moduli, sp.Test) {
					s.moduli = append(s.moduli, sp.Test)
				}
			}
		}
		zero := NewResidues(0, s.moduli)
		for i, sp := range specs {
			if _, ok := zero.DivisibleBy(sp.Test); !ok {
				return nil, fmt.Errorf("%w: agent %d tests %d", ErrModulusMismatch, i, sp.Test)
			}
		}
	}

	for i, sp := range specs {
		a := &agent{
			op:      sp.Op,
			test:    sp.Test,
			targets: [2]int{sp.IfFalse, sp.IfTrue},
			queue:   make([]item, 0, len(sp.Items)),
		}
		for _, v := range sp.Items {
			a.queue = append(a.queue, s.newItem(v))
		}
		s.agents[i] = a
	}

	return s, nil
}

func validateSpec(i int, sp AgentSpec, n int) error {
	if !sp.Op.Valid() {
		return fmt.Errorf("%w: agent %d has %v", ErrUnknownOperation, i, sp.Op.Kind)
	}
	if sp.Test == 0 {
		return fmt.Errorf("%w: agent %d", ErrZeroTestValue, i)
	}
	for _, t := range []int{sp.IfTrue, sp.IfFalse} {
		if t < 0 || t >= n {
			return fmt.Errorf("%w: agent %d routes to %d of %d agents", ErrTargetOutOfRange, i, t, n)
		}
	}

	return nil
}

// newItem assigns the next id and encodes v for the active mode.
func (s *Simulator) newItem(v uint64) item {
	it := item{id: s.items}
	s.items++
	if s.opts.Mode == ModeRemainder {
		it.res = NewResidues(v, s.moduli)
	} else {
		it.worry = v
	}

	return it
}

// Round plays one full round: every agent, in order, drains the queue it
// holds when its turn starts. Items an agent throws to itself land behind
// that batch and wait for its next turn.
//
// In ModeRelief a level that overflows uint64 aborts the round with
// ErrOverflow. The simulator is then left mid-round and every later call
// returns the same error.
func (s *Simulator) Round() error {
	if s.err != nil {
		return s.err
	}
	for i, a := range s.agents {
		batch := a.queue
		a.queue = nil
		for j := range batch {
			it := batch[j]
			branch, err := s.inspect(a, &it)
			if err != nil {
				s.err = fmt.Errorf("round %d, agent %d: %w", s.rounds+1, i, err)
				return s.err
			}
			s.agents[a.targets[branch]].queue = append(s.agents[a.targets[branch]].queue, it)
			a.thrown[branch]++
			a.inspected++
		}
	}
	s.rounds++

	if s.opts.LogEvery > 0 && s.rounds%s.opts.LogEvery == 0 {
		s.log.WithFields(logrus.Fields{
			"round":       s.rounds,
			"mode":        s.opts.Mode.String(),
			"inspections": s.Inspections(),
		}).Debug("round complete")
	}

	return nil
}

// inspect transforms it in place and returns 1 if it passes a's test, 0 otherwise.
func (s *Simulator) inspect(a *agent, it *item) (int, error) {
	if s.opts.Mode == ModeRemainder {
		it.res = a.op.ApplyResidues(it.res)
		// New guarantees the test is answerable.
		if div, _ := it.res.DivisibleBy(a.test); div {
			return 1, nil
		}
		return 0, nil
	}

	v, err := a.op.Apply(it.worry)
	if err != nil {
		return 0, fmt.Errorf("item %d: %w", it.id, err)
	}
	it.worry = v / s.opts.Relief
	if it.worry%a.test == 0 {
		return 1, nil
	}

	return 0, nil
}

// Run plays n rounds, stopping at the first failed round.
// Returns ErrNegativeRounds for n < 0.
func (s *Simulator) Run(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeRounds, n)
	}
	for i := 0; i < n; i++ {
		if err := s.Round(); err != nil {
			return err
		}
	}

	return nil
}

// Rounds returns the number of rounds played so far.
func (s *Simulator) Rounds() int { return s.rounds }

// Mode returns the active operating mode.
func (s *Simulator) Mode() Mode { return s.opts.Mode }

// Agents returns the number of agents.
func (s *Simulator) Agents() int { return len(s.agents) }

// Inspections returns a copy of the per-agent inspection counters.
func (s *Simulator) Inspections() []int {
	out := make([]int, len(s.agents))
	for i, a := range s.agents {
		out[i] = a.inspected
	}

	return out
}

// ActivityScore returns the product of the two largest inspection counts.
// With a single agent it is that agent's count.
func (s *Simulator) ActivityScore() uint64 {
	counts := s.Inspections()
	slices.Sort(counts)
	n := len(counts)
	if n == 1 {
		return uint64(counts[0])
	}

	return uint64(counts[n-1]) * uint64(counts[n-2])
}

// Thrown returns how many items agent i has sent to its false- and true-target.
func (s *Simulator) Thrown(i int) (toFalse, toTrue int) {
	a := s.agents[i]

	return a.thrown[0], a.thrown[1]
}

// Holdings returns, per agent, the ids of the items currently queued, in queue order.
func (s *Simulator) Holdings() [][]int {
	out := make([][]int, len(s.agents))
	for i, a := range s.agents {
		ids := make([]int, len(a.queue))
		for j, it := range a.queue {
			ids[j] = it.id
		}
		out[i] = ids
	}

	return out
}

// Levels returns the worry levels queued at agent i in ModeRelief.
// In ModeRemainder levels are not materialized and Levels returns nil.
func (s *Simulator) Levels(i int) []uint64 {
	if s.opts.Mode != ModeRelief {
		return nil
	}
	out := make([]uint64, len(s.agents[i].queue))
	for j, it := range s.agents[i].queue {
		out[j] = it.worry
	}

	return out
}

// TotalItems returns the number of items in the system.
func (s *Simulator) TotalItems() int { return s.items }
