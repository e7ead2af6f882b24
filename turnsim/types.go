package turnsim

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvlath-aoc/logger"
)

// Sentinel errors for simulator setup and execution.
var (
	// ErrNoAgents indicates an empty agent list.
	ErrNoAgents = errors.New("turnsim: at least one agent is required")

	// ErrTargetOutOfRange indicates a routing target that names no agent.
	ErrTargetOutOfRange = errors.New("turnsim: routing target out of range")

	// ErrZeroTestValue indicates a divisibility test by zero.
	ErrZeroTestValue = errors.New("turnsim: test value must be positive")

	// ErrUnknownOperation indicates an operation outside add/mul/square.
	ErrUnknownOperation = errors.New("turnsim: unknown operation")

	// ErrModulusMismatch indicates a test value no tracked modulus can answer.
	ErrModulusMismatch = errors.New("turnsim: test value divides no tracked modulus")

	// ErrBadMode indicates a Mode other than ModeRelief or ModeRemainder.
	ErrBadMode = errors.New("turnsim: unknown mode")

	// ErrZeroRelief indicates a relief factor of zero.
	ErrZeroRelief = errors.New("turnsim: relief factor must be positive")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("turnsim: invalid option supplied")

	// ErrNegativeRounds indicates Run was asked for a negative number of rounds.
	ErrNegativeRounds = errors.New("turnsim: rounds must be non-negative")

	// ErrOverflow indicates a ModeRelief level that no longer fits in uint64.
	ErrOverflow = errors.New("turnsim: worry level overflows uint64")

	// ErrScenario indicates an invalid scenario document.
	ErrScenario = errors.New("turnsim: invalid scenario")
)

// Mode selects how worry levels are kept bounded.
type Mode int

const (
	// ModeRelief divides every transformed level by Options.Relief, rounding down.
	ModeRelief Mode = iota
	// ModeRemainder tracks levels as residues over Options.Moduli.
	ModeRemainder
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeRelief:
		return "relief"
	case ModeRemainder:
		return "remainder"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "relief" and "remainder" to their Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "relief":
		return ModeRelief, nil
	case "remainder":
		return ModeRemainder, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadMode, s)
	}
}

// DefaultRelief is the relief factor used when none is configured.
const DefaultRelief = 3

// AgentSpec describes one agent at setup time.
type AgentSpec struct {
	// Items are the initial worry levels, in queue order.
	Items []uint64
	// Op transforms every inspected item.
	Op Operation
	// Test is the divisor deciding the routing target.
	Test uint64
	// IfTrue receives items whose level is divisible by Test.
	IfTrue int
	// IfFalse receives all other items.
	IfFalse int
}

// Options configures a Simulator.
type Options struct {
	// Mode selects relief or remainder tracking.
	Mode Mode

	// Relief is the divisor applied after each transform in ModeRelief.
	Relief uint64

	// Moduli are the residues tracked in ModeRemainder.
	// Empty means "every agent's test value".
	Moduli []uint64

	// Logger receives Debug round summaries.
	Logger logrus.FieldLogger

	// LogEvery, if > 0, logs a summary after every LogEvery-th round.
	LogEvery int

	// internal error recorded during option parsing
	err error
}

// Option configures a Simulator via functional arguments.
type Option func(*Options)

// DefaultOptions returns ModeRelief with DefaultRelief, derived moduli,
// a discarding logger and no periodic round logging.
func DefaultOptions() Options {
	return Options{
		Mode:   ModeRelief,
		Relief: DefaultRelief,
		Logger: logger.Discard(),
	}
}

// WithMode selects the operating mode.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m != ModeRelief && m != ModeRemainder {
			o.err = fmt.Errorf("%w: %v", ErrBadMode, m)
			return
		}
		o.Mode = m
	}
}

// WithRelief sets the relief divisor for ModeRelief.
func WithRelief(f uint64) Option {
	return func(o *Options) {
		if f == 0 {
			o.err = ErrZeroRelief
			return
		}
		o.Relief = f
	}
}

// WithModuli sets the residue moduli for ModeRemainder.
// Passing the product of all test values as a single modulus is valid.
func WithModuli(moduli ...uint64) Option {
	return func(o *Options) {
		for _, m := range moduli {
			if m == 0 {
				o.err = fmt.Errorf("%w: modulus cannot be zero", ErrOptionViolation)
				return
			}
		}
		o.Moduli = append([]uint64(nil), moduli...)
	}
}

// WithLogger routes round summaries to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithLogEvery logs a Debug summary after every n-th round.
//
//	n > 0: log every n rounds
//	n == 0: never
//	n < 0: invalid option → ErrOptionViolation
func WithLogEvery(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: LogEvery cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.LogEvery = n
	}
}
