package turnsim

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// OpKind tags the closed set of transform rules.
type OpKind int

const (
	// OpAdd computes old + Operand.
	OpAdd OpKind = iota
	// OpMul computes old * Operand.
	OpMul
	// OpSquare computes old * old; Operand is ignored.
	OpSquare
)

// String returns the scenario keyword for k.
func (k OpKind) String() string {
	switch k {
	case OpAdd:
		return "add"
	case OpMul:
		return "mul"
	case OpSquare:
		return "square"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Operation is a tagged transform rule.
type Operation struct {
	Kind    OpKind
	Operand uint64
}

// Add returns the rule old + n.
func Add(n uint64) Operation { return Operation{Kind: OpAdd, Operand: n} }

// Mul returns the rule old * n.
func Mul(n uint64) Operation { return Operation{Kind: OpMul, Operand: n} }

// Square returns the rule old * old.
func Square() Operation { return Operation{Kind: OpSquare} }

// Apply evaluates the rule on a plain level. A result that does not fit in
// uint64 returns ErrOverflow instead of wrapping.
func (op Operation) Apply(v uint64) (uint64, error) {
	var hi, lo uint64
	switch op.Kind {
	case OpAdd:
		lo, hi = bits.Add64(v, op.Operand, 0)
	case OpMul:
		hi, lo = bits.Mul64(v, op.Operand)
	case OpSquare:
		hi, lo = bits.Mul64(v, v)
	default:
		panic(fmt.Sprintf("turnsim: Apply on %v", op.Kind))
	}
	if hi != 0 {
		return 0, fmt.Errorf("%w: %s with old = %d", ErrOverflow, op, v)
	}

	return lo, nil
}

// ApplyResidues evaluates the rule on a residue vector.
func (op Operation) ApplyResidues(r Residues) Residues {
	switch op.Kind {
	case OpAdd:
		return r.AddScalar(op.Operand)
	case OpMul:
		return r.MulScalar(op.Operand)
	case OpSquare:
		return r.Mul(r)
	default:
		panic(fmt.Sprintf("turnsim: ApplyResidues on %v", op.Kind))
	}
}

// Valid reports whether op carries a known kind.
func (op Operation) Valid() bool {
	return op.Kind == OpAdd || op.Kind == OpMul || op.Kind == OpSquare
}

// String renders op as an expression, e.g. "old * 19".
func (op Operation) String() string {
	switch op.Kind {
	case OpAdd:
		return "old + " + strconv.FormatUint(op.Operand, 10)
	case OpMul:
		return "old * " + strconv.FormatUint(op.Operand, 10)
	case OpSquare:
		return "old * old"
	default:
		return op.Kind.String()
	}
}

// ParseOperation reads "old + 6", "old * 19", "old * old" or "old + old",
// optionally prefixed with "new =". Whitespace is insignificant.
// "old + old" is the same rule as "old * 2" and parses to Mul(2).
func ParseOperation(s string) (Operation, error) {
	expr := strings.ReplaceAll(s, " ", "")
	expr = strings.TrimPrefix(expr, "new=")
	rest, ok := strings.CutPrefix(expr, "old")
	if !ok || len(rest) < 2 {
		return Operation{}, fmt.Errorf("%w: %q", ErrUnknownOperation, s)
	}
	sym, arg := rest[0], rest[1:]
	if arg == "old" {
		switch sym {
		case '*':
			return Square(), nil
		case '+':
			return Mul(2), nil
		default:
			return Operation{}, fmt.Errorf("%w: %q", ErrUnknownOperation, s)
		}
	}
	n, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return Operation{}, fmt.Errorf("%w: %q: %w", ErrUnknownOperation, s, err)
	}
	switch sym {
	case '+':
		return Add(n), nil
	case '*':
		return Mul(n), nil
	default:
		return Operation{}, fmt.Errorf("%w: %q", ErrUnknownOperation, s)
	}
}

// opDoc is the mapping form of an operation in scenario documents.
type opDoc struct {
	Op      string `yaml:"op"`
	Operand uint64 `yaml:"operand"`
}

// UnmarshalYAML accepts either an expression scalar ("old * 19") or a
// mapping ({op: mul, operand: 19}).
func (op *Operation) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		parsed, err := ParseOperation(value.Value)
		if err != nil {
			return err
		}
		*op = parsed
		return nil
	}

	var doc opDoc
	if err := value.Decode(&doc); err != nil {
		return err
	}
	switch doc.Op {
	case "add":
		*op = Add(doc.Operand)
	case "mul":
		*op = Mul(doc.Operand)
	case "square":
		*op = Square()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOperation, doc.Op)
	}

	return nil
}

// MarshalYAML writes op in expression form.
func (op Operation) MarshalYAML() (interface{}, error) {
	return op.String(), nil
}
