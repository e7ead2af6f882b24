package valves

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvlath-aoc/core"
	"github.com/katalvlaran/lvlath-aoc/logger"
)

// Sentinel errors for parsing and planning.
var (
	// ErrBadLine indicates a line outside the valve grammar.
	ErrBadLine = errors.New("valves: malformed valve line")
	// ErrDuplicateValve indicates a valve declared more than once.
	ErrDuplicateValve = errors.New("valves: duplicate valve")
	// ErrUnknownValve indicates a reference to an undeclared valve.
	ErrUnknownValve = errors.New("valves: unknown valve")
	// ErrNoValves indicates empty input.
	ErrNoValves = errors.New("valves: no valves declared")
	// ErrNegativeMinutes indicates a negative time budget.
	ErrNegativeMinutes = errors.New("valves: minutes cannot be negative")
	// ErrTooManyValves indicates more positive-rate valves than the planner tracks.
	ErrTooManyValves = errors.New("valves: too many valves with a positive rate")
)

const (
	// DefaultStart is the conventional entry valve.
	DefaultStart = "AA"
	// DefaultMinutes is the conventional time budget.
	DefaultMinutes = 30
	// maxUseful bounds the opened-set bitmask.
	maxUseful = 64
)

// Valve is one parsed input line.
type Valve struct {
	Name    string
	Rate    int
	Tunnels []string
}

// Plan is the best opening order found by MaxPressure.
type Plan struct {
	// Order lists valves in the order they are opened.
	Order []string
	// Released is the total pressure released within the budget.
	Released int
}

// Network is an immutable valve graph.
type Network struct {
	graph *core.Graph
	log   logrus.FieldLogger
}

// Option configures a Network.
type Option func(*Network)

// WithLogger routes planning summaries to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(n *Network) {
		if l != nil {
			n.log = l
		}
	}
}

func defaultNetwork() *Network {
	return &Network{log: logger.Discard()}
}
