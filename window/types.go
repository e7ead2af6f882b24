package window

import "errors"

var (
	// ErrNotFound is returned when no window of distinct symbols exists.
	ErrNotFound = errors.New("window: no distinct window found")

	// ErrBadWindow indicates a non-positive window length.
	ErrBadWindow = errors.New("window: window length must be positive")
)

// Marker lengths used by the stream protocol.
const (
	PacketMarker  = 4
	MessageMarker = 14
)

// Strategy selects how windows are tested for distinctness.
//
//   - Rolling:    incremental per-symbol counts plus a duplicate counter.
//   - BruteForce: fresh set per window.
type Strategy int

const (
	// Rolling keeps counts across windows: O(len(seq)).
	Rolling Strategy = iota

	// BruteForce rebuilds a set per window: O(len(seq)·N).
	BruteForce
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case Rolling:
		return "rolling"
	case BruteForce:
		return "brute-force"
	default:
		return "unknown"
	}
}

// Options configures a scan.
type Options struct {
	Strategy Strategy
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the Rolling strategy.
func DefaultOptions() Options {
	return Options{Strategy: Rolling}
}

// WithStrategy selects the scan strategy. Unknown values fall back to Rolling.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != BruteForce {
			s = Rolling
		}
		o.Strategy = s
	}
}
