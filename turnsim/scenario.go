package turnsim

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed scenario.schema.json
var scenarioSchemaJSON string

var scenarioSchema = jsonschema.MustCompileString("scenario.schema.json", scenarioSchemaJSON)

// Scenario is a complete simulation run described as a YAML document.
type Scenario struct {
	Name   string      `yaml:"name,omitempty"`
	Mode   string      `yaml:"mode"`
	Rounds int         `yaml:"rounds"`
	Relief uint64      `yaml:"relief,omitempty"`
	Moduli []uint64    `yaml:"moduli,omitempty"`
	Agents []AgentDecl `yaml:"agents"`
}

// AgentDecl is one agent of a Scenario.
type AgentDecl struct {
	Name      string    `yaml:"name,omitempty"`
	Items     []uint64  `yaml:"items"`
	Operation Operation `yaml:"operation"`
	Test      uint64    `yaml:"test"`
	IfTrue    int       `yaml:"if_true"`
	IfFalse   int       `yaml:"if_false"`
}

// Outcome is what a played Scenario reports.
type Outcome struct {
	Inspections []int
	Activity    uint64
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, err
	}
	sc, err := DecodeScenario(bytes.NewReader(raw))
	if err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", path, err)
	}

	return sc, nil
}

// DecodeScenario reads one YAML document from r, validates it against the
// embedded schema and decodes it. Every failure wraps ErrScenario.
func DecodeScenario(r io.Reader) (Scenario, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Scenario{}, fmt.Errorf("%w: read: %w", ErrScenario, err)
	}

	// 1) Generic decode, then normalize through JSON so the validator sees
	//    map[string]interface{} / []interface{} / float64 values.
	var doc interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Scenario{}, fmt.Errorf("%w: yaml: %w", ErrScenario, err)
	}
	js, err := json.Marshal(doc)
	if err != nil {
		return Scenario{}, fmt.Errorf("%w: %w", ErrScenario, err)
	}
	var inst interface{}
	if err := json.Unmarshal(js, &inst); err != nil {
		return Scenario{}, fmt.Errorf("%w: %w", ErrScenario, err)
	}

	// 2) Schema validation.
	if err := scenarioSchema.Validate(inst); err != nil {
		return Scenario{}, fmt.Errorf("%w: %w", ErrScenario, err)
	}

	// 3) Typed decode. Operation errors keep their own sentinel.
	var sc Scenario
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return Scenario{}, fmt.Errorf("%w: %w", ErrScenario, err)
	}

	return sc, nil
}

// Specs converts the agent declarations to AgentSpecs.
func (sc Scenario) Specs() []AgentSpec {
	specs := make([]AgentSpec, len(sc.Agents))
	for i, a := range sc.Agents {
		specs[i] = AgentSpec{
			Items:   a.Items,
			Op:      a.Operation,
			Test:    a.Test,
			IfTrue:  a.IfTrue,
			IfFalse: a.IfFalse,
		}
	}

	return specs
}

// Build returns a Simulator configured by the scenario. extra options are
// applied after the scenario's own, so callers can attach a logger.
func (sc Scenario) Build(extra ...Option) (*Simulator, error) {
	mode, err := ParseMode(sc.Mode)
	if err != nil {
		return nil, err
	}
	opts := []Option{WithMode(mode)}
	if sc.Relief != 0 {
		opts = append(opts, WithRelief(sc.Relief))
	}
	if len(sc.Moduli) > 0 {
		opts = append(opts, WithModuli(sc.Moduli...))
	}

	return New(sc.Specs(), append(opts, extra...)...)
}

// Play builds the simulator, runs sc.Rounds rounds and reports the outcome.
func (sc Scenario) Play(extra ...Option) (Outcome, error) {
	sim, err := sc.Build(extra...)
	if err != nil {
		return Outcome{}, err
	}
	if err := sim.Run(sc.Rounds); err != nil {
		return Outcome{}, err
	}

	return Outcome{Inspections: sim.Inspections(), Activity: sim.ActivityScore()}, nil
}
