package valves

import (
	"fmt"
	"strconv"
	"strings"
)

// tunnel clauses, plural and singular.
var tunnelPrefixes = [...]string{"tunnels lead to valves ", "tunnel leads to valve "}

// ParseValve parses a single line such as
// "Valve AA has flow rate=0; tunnels lead to valves DD, II, BB".
func ParseValve(line string) (Valve, error) {
	bad := func(why string) (Valve, error) {
		return Valve{}, fmt.Errorf("%w: %s in %q", ErrBadLine, why, line)
	}

	rest, ok := strings.CutPrefix(strings.TrimSpace(line), "Valve ")
	if !ok {
		return bad("missing \"Valve\"")
	}
	name, rest, ok := strings.Cut(rest, " has flow rate=")
	if !ok || name == "" {
		return bad("missing flow rate")
	}
	rateText, rest, ok := strings.Cut(rest, ";")
	if !ok {
		return bad("missing tunnel clause")
	}
	rate, err := strconv.Atoi(rateText)
	if err != nil || rate < 0 {
		return bad("rate " + strconv.Quote(rateText))
	}

	rest = strings.TrimSpace(rest)
	list, found := "", false
	for _, p := range tunnelPrefixes {
		if list, found = strings.CutPrefix(rest, p); found {
			break
		}
	}
	if !found {
		return bad("missing tunnel list")
	}

	v := Valve{Name: name, Rate: rate}
	for _, t := range strings.Split(list, ",") {
		t = strings.TrimSpace(t)
		if t == "" {
			return bad("empty tunnel target")
		}
		v.Tunnels = append(v.Tunnels, t)
	}

	return v, nil
}

// Parse reads one valve per non-blank line and builds the Network.
// Parse errors are wrapped with the 1-based line number.
func Parse(text string, opts ...Option) (*Network, error) {
	var vs []Valve
	for i, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		v, err := ParseValve(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		vs = append(vs, v)
	}

	return New(vs, opts...)
}
