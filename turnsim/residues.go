package turnsim

import (
	"math/bits"

	"golang.org/x/exp/slices"
)

// Residues represents a non-negative integer by its remainder modulo each of
// a fixed set of moduli. Addition and multiplication follow
//
//	(a + b) mod n = ((a mod n) + (b mod n)) mod n
//	(a * b) mod n = ((a mod n) * (b mod n)) mod n
//
// so arbitrarily long chains of operations never overflow, and divisibility
// by any divisor of a tracked modulus stays exact.
//
// Residues is a value type; operations return new values. Operands of a
// binary operation must share the same moduli.
type Residues struct {
	moduli []uint64 // shared, never mutated
	rems   []uint64
}

// NewResidues encodes v over moduli. Every modulus must be positive.
// The moduli slice is retained and must not be modified afterwards.
func NewResidues(v uint64, moduli []uint64) Residues {
	rems := make([]uint64, len(moduli))
	for i, m := range moduli {
		rems[i] = v % m
	}

	return Residues{moduli: moduli, rems: rems}
}

// Moduli returns a copy of the tracked moduli.
func (r Residues) Moduli() []uint64 {
	return slices.Clone(r.moduli)
}

// Remainder returns v mod m if m is tracked.
func (r Residues) Remainder(m uint64) (uint64, bool) {
	i := slices.Index(r.moduli, m)
	if i < 0 {
		return 0, false
	}

	return r.rems[i], true
}

// DivisibleBy reports whether the represented value is divisible by d.
// It is answerable when d divides some tracked modulus m, since then
// v mod d = (v mod m) mod d. ok is false otherwise.
func (r Residues) DivisibleBy(d uint64) (divisible, ok bool) {
	if d == 0 {
		return false, false
	}
	for i, m := range r.moduli {
		if m%d == 0 {
			return r.rems[i]%d == 0, true
		}
	}

	return false, false
}

// Add returns r + o.
func (r Residues) Add(o Residues) Residues {
	out := r.blank()
	for i, m := range r.moduli {
		out.rems[i] = addMod(r.rems[i], o.rems[i], m)
	}

	return out
}

// Mul returns r * o.
func (r Residues) Mul(o Residues) Residues {
	out := r.blank()
	for i, m := range r.moduli {
		out.rems[i] = mulMod(r.rems[i], o.rems[i], m)
	}

	return out
}

// AddScalar returns r + n.
func (r Residues) AddScalar(n uint64) Residues {
	out := r.blank()
	for i, m := range r.moduli {
		out.rems[i] = addMod(r.rems[i], n%m, m)
	}

	return out
}

// MulScalar returns r * n.
func (r Residues) MulScalar(n uint64) Residues {
	out := r.blank()
	for i, m := range r.moduli {
		out.rems[i] = mulMod(r.rems[i], n%m, m)
	}

	return out
}

// Equal reports whether r and o hold the same residues over the same moduli.
func (r Residues) Equal(o Residues) bool {
	return slices.Equal(r.moduli, o.moduli) && slices.Equal(r.rems, o.rems)
}

func (r Residues) blank() Residues {
	return Residues{moduli: r.moduli, rems: make([]uint64, len(r.rems))}
}

// addMod returns (a + b) mod m for a, b < m, safe for any 64-bit modulus.
func addMod(a, b, m uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)

	return bits.Rem64(carry, sum, m)
}

// mulMod returns (a * b) mod m for a, b < m, safe for any 64-bit modulus.
func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)

	return bits.Rem64(hi, lo, m)
}
