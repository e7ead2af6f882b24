// Package turnsim runs a deterministic, round-based redistribution of items
// among a fixed, ordered list of agents.
//
// Each agent holds a queue of items, a transform rule (add, multiply or
// square), a divisibility test and two routing targets. A round visits the
// agents in order; an agent drains the queue it holds when its turn starts,
// transforms each item, inspects it (counted once per item) and throws it to
// its true- or false-target. Items thrown to an agent whose turn already
// passed wait for the next round; items thrown to a later agent are handled
// by that agent in the same round.
//
// Operating modes (exactly one per run):
//
//   - ModeRelief:    after every transform the worry level is divided by the
//     relief factor, rounding down. Levels stay small.
//   - ModeRemainder: no normalization. Each item is a Residues vector, its
//     remainder modulo every modulus of a fixed set, so levels can grow
//     without bound while divisibility tests stay exact.
//
// Consumers read Inspections; ActivityScore is the product of the two
// largest counts.
//
// Scenarios can be described in YAML, validated against an embedded JSON
// Schema, and built with Scenario.Build:
//
//	sc, err := turnsim.LoadScenario("scenario.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, err := sc.Play()
//	fmt.Println(out.Activity)
//
// Errors:
//
//   - ErrNoAgents, ErrTargetOutOfRange, ErrZeroTestValue,
//     ErrUnknownOperation, ErrModulusMismatch: invalid agent setup, reported by New.
//   - ErrBadMode, ErrZeroRelief, ErrOptionViolation: invalid options.
//   - ErrNegativeRounds: Run called with a negative count.
//   - ErrOverflow: a ModeRelief level left the uint64 range; the run stops.
//   - ErrScenario: a scenario document failed schema validation or decoding.
package turnsim
