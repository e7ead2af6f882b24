package turnsim_test

import (
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-aoc/turnsim"
)

// TestParseOperation covers the accepted expression forms.
func TestParseOperation(t *testing.T) {
	cases := []struct {
		in   string
		want turnsim.Operation
	}{
		{"new = old * 19", turnsim.Mul(19)},
		{"old + 6", turnsim.Add(6)},
		{"new = old * old", turnsim.Square()},
		{"old*3", turnsim.Mul(3)},
		{"new = old + old", turnsim.Mul(2)},
	}
	for _, tc := range cases {
		got, err := turnsim.ParseOperation(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	for _, bad := range []string{"", "old", "old - 3", "old - old", "new = x * 2", "old * -1", "old * 99999999999999999999"} {
		_, err := turnsim.ParseOperation(bad)
		assert.ErrorIs(t, err, turnsim.ErrUnknownOperation, bad)
	}
}

// TestOperation_ApplyAndString checks the closed rule set on plain values.
func TestOperation_ApplyAndString(t *testing.T) {
	for _, tc := range []struct {
		op   turnsim.Operation
		want uint64
	}{
		{turnsim.Add(6), 85},
		{turnsim.Mul(19), 1501},
		{turnsim.Square(), 6241},
	} {
		got, err := tc.op.Apply(79)
		require.NoError(t, err, tc.op.String())
		assert.Equal(t, tc.want, got, tc.op.String())
	}

	assert.Equal(t, "old * 19", turnsim.Mul(19).String())
	assert.Equal(t, "old + 6", turnsim.Add(6).String())
	assert.Equal(t, "old * old", turnsim.Square().String())
	assert.True(t, turnsim.Square().Valid())
	assert.False(t, turnsim.Operation{Kind: 42}.Valid())
}

// TestOperation_ApplyOverflow reports results past the uint64 range.
func TestOperation_ApplyOverflow(t *testing.T) {
	_, err := turnsim.Add(1).Apply(math.MaxUint64)
	assert.ErrorIs(t, err, turnsim.ErrOverflow)
	_, err = turnsim.Mul(2).Apply(1 << 63)
	assert.ErrorIs(t, err, turnsim.ErrOverflow)
	_, err = turnsim.Square().Apply(1 << 40)
	assert.ErrorIs(t, err, turnsim.ErrOverflow)

	got, err := turnsim.Square().Apply(1<<32 - 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1<<64-1-2*(1<<32-1)), got)
	got, err = turnsim.Add(0).Apply(math.MaxUint64)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), got)
}

// TestResidues_MatchBigArithmetic drives random operation chains through
// Residues and through math/big, and compares every remainder.
func TestResidues_MatchBigArithmetic(t *testing.T) {
	moduli := []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 96577, 1<<61 - 1}
	rng := rand.New(rand.NewSource(11))
	ops := []turnsim.Operation{turnsim.Add(6), turnsim.Mul(19), turnsim.Square(), turnsim.Add(1 << 62)}

	for trial := 0; trial < 20; trial++ {
		start := rng.Uint64() >> 8
		r := turnsim.NewResidues(start, moduli)
		v := new(big.Int).SetUint64(start)
		for step := 0; step < 12; step++ {
			op := ops[rng.Intn(len(ops))]
			r = op.ApplyResidues(r)
			switch op.Kind {
			case turnsim.OpAdd:
				v.Add(v, new(big.Int).SetUint64(op.Operand))
			case turnsim.OpMul:
				v.Mul(v, new(big.Int).SetUint64(op.Operand))
			case turnsim.OpSquare:
				v.Mul(v, v)
			}
		}
		for _, m := range moduli {
			got, ok := r.Remainder(m)
			require.True(t, ok)
			want := new(big.Int).Mod(v, new(big.Int).SetUint64(m)).Uint64()
			assert.Equal(t, want, got, "trial %d modulus %d", trial, m)
		}
	}
}

// TestResidues_DivisibleBy answers through any modulus the divisor divides.
func TestResidues_DivisibleBy(t *testing.T) {
	r := turnsim.NewResidues(2*13*17*5, []uint64{23 * 19 * 13 * 17})

	div, ok := r.DivisibleBy(13)
	assert.True(t, ok)
	assert.True(t, div)

	div, ok = r.DivisibleBy(19)
	assert.True(t, ok)
	assert.False(t, div)

	_, ok = r.DivisibleBy(5)
	assert.False(t, ok, "5 divides no tracked modulus")
	_, ok = r.DivisibleBy(0)
	assert.False(t, ok)

	_, ok = r.Remainder(13)
	assert.False(t, ok, "only the product is tracked directly")
}

// TestResidues_BinaryOps checks Add/Mul between two vectors.
func TestResidues_BinaryOps(t *testing.T) {
	moduli := []uint64{2, 3, 5, 7, 11, 13, 17, 19}
	a := turnsim.NewResidues(54, moduli)
	b := turnsim.NewResidues(6, moduli)

	assert.True(t, a.Add(b).Equal(turnsim.NewResidues(60, moduli)))
	assert.True(t, a.Mul(b).Equal(turnsim.NewResidues(324, moduli)))
	assert.False(t, a.Equal(b))
	assert.Equal(t, moduli, a.Moduli())
}
