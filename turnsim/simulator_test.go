package turnsim_test

import (
	"bytes"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlath-aoc/logger"
	"github.com/katalvlaran/lvlath-aoc/turnsim"
)

// sampleSpecs is the four-agent reference setup.
func sampleSpecs() []turnsim.AgentSpec {
	return []turnsim.AgentSpec{
		{Items: []uint64{79, 98}, Op: turnsim.Mul(19), Test: 23, IfTrue: 2, IfFalse: 3},
		{Items: []uint64{54, 65, 75, 74}, Op: turnsim.Add(6), Test: 19, IfTrue: 2, IfFalse: 0},
		{Items: []uint64{79, 60, 97}, Op: turnsim.Square(), Test: 13, IfTrue: 1, IfFalse: 3},
		{Items: []uint64{74}, Op: turnsim.Add(3), Test: 17, IfTrue: 0, IfFalse: 1},
	}
}

// allIDs flattens Holdings into a sorted multiset of item ids.
func allIDs(s *turnsim.Simulator) []int {
	var ids []int
	for _, h := range s.Holdings() {
		ids = append(ids, h...)
	}
	sort.Ints(ids)

	return ids
}

//----------------------------------------------------------------------------//
// Reference scenarios
//----------------------------------------------------------------------------//

// SampleSuite runs the reference setup in both modes.
type SampleSuite struct {
	suite.Suite
}

// TestReliefMode: 20 rounds, divide by 3 → 10605.
func (s *SampleSuite) TestReliefMode() {
	sim, err := turnsim.New(sampleSpecs(), turnsim.WithMode(turnsim.ModeRelief), turnsim.WithRelief(3))
	s.Require().NoError(err)
	s.Require().NoError(sim.Run(20))

	s.Equal([]int{101, 95, 7, 105}, sim.Inspections())
	s.Equal(uint64(10605), sim.ActivityScore())
	s.Equal(20, sim.Rounds())
}

// TestRemainderMode: 10000 rounds, residues over every test value → 2713310158.
func (s *SampleSuite) TestRemainderMode() {
	sim, err := turnsim.New(sampleSpecs(), turnsim.WithMode(turnsim.ModeRemainder))
	s.Require().NoError(err)
	s.Require().NoError(sim.Run(10000))

	s.Equal([]int{52166, 47830, 1938, 52013}, sim.Inspections())
	s.Equal(uint64(2713310158), sim.ActivityScore())
	s.Nil(sim.Levels(0), "levels are not materialized in remainder mode")
}

// TestRemainderMode_ProductModulus tracks a single modulus, the product of all test values.
func (s *SampleSuite) TestRemainderMode_ProductModulus() {
	sim, err := turnsim.New(sampleSpecs(),
		turnsim.WithMode(turnsim.ModeRemainder),
		turnsim.WithModuli(23*19*13*17),
	)
	s.Require().NoError(err)
	s.Require().NoError(sim.Run(10000))
	s.Equal(uint64(2713310158), sim.ActivityScore())
}

// TestFirstRound checks the queues after one relief round.
func (s *SampleSuite) TestFirstRound() {
	sim, err := turnsim.New(sampleSpecs())
	s.Require().NoError(err)
	s.Require().NoError(sim.Round())

	s.Equal([]uint64{20, 23, 27, 26}, sim.Levels(0))
	s.Equal([]uint64{2080, 25, 167, 207, 401, 1046}, sim.Levels(1))
	s.Empty(sim.Levels(2))
	s.Empty(sim.Levels(3))
	s.Equal([]int{2, 4, 3, 5}, sim.Inspections())
}

// TestConservation: every round moves items, never creates or drops them.
func (s *SampleSuite) TestConservation() {
	for _, mode := range []turnsim.Mode{turnsim.ModeRelief, turnsim.ModeRemainder} {
		sim, err := turnsim.New(sampleSpecs(), turnsim.WithMode(mode))
		s.Require().NoError(err)
		before := allIDs(sim)
		s.Len(before, sim.TotalItems())
		for r := 0; r < 50; r++ {
			s.Require().NoError(sim.Round())
			s.Equal(before, allIDs(sim), "mode %v round %d", mode, r+1)
		}
	}
}

// TestInspectionsMatchThrows: an agent's counter equals the items it has processed.
func (s *SampleSuite) TestInspectionsMatchThrows() {
	sim, err := turnsim.New(sampleSpecs())
	s.Require().NoError(err)
	s.Require().NoError(sim.Run(20))
	for i, n := range sim.Inspections() {
		f, t := sim.Thrown(i)
		s.Equal(n, f+t, "agent %d", i)
	}
}

func TestSampleSuite(t *testing.T) {
	suite.Run(t, new(SampleSuite))
}

//----------------------------------------------------------------------------//
// Round ordering
//----------------------------------------------------------------------------//

// TestRound_ForwardAndBackwardRouting: items thrown forward are handled in the
// same round, items thrown back wait for the next.
func TestRound_ForwardAndBackwardRouting(t *testing.T) {
	specs := []turnsim.AgentSpec{
		{Items: []uint64{5}, Op: turnsim.Add(0), Test: 1, IfTrue: 1, IfFalse: 1},
		{Op: turnsim.Add(0), Test: 1, IfTrue: 0, IfFalse: 0},
	}
	sim, err := turnsim.New(specs, turnsim.WithRelief(1))
	require.NoError(t, err)

	require.NoError(t, sim.Round())
	assert.Equal(t, []int{1, 1}, sim.Inspections(), "agent 1 sees the item in the same round")
	assert.Equal(t, [][]int{{0}, {}}, sim.Holdings(), "the item waits at agent 0")

	require.NoError(t, sim.Round())
	assert.Equal(t, []int{2, 2}, sim.Inspections())
	assert.Equal(t, uint64(4), sim.ActivityScore())
}

// TestRound_SelfRouting: an item an agent throws to itself waits for that
// agent's next turn instead of being inspected twice in one round.
func TestRound_SelfRouting(t *testing.T) {
	specs := []turnsim.AgentSpec{
		{Items: []uint64{3}, Op: turnsim.Add(0), Test: 3, IfTrue: 0, IfFalse: 1},
		{Op: turnsim.Add(0), Test: 1, IfTrue: 0, IfFalse: 0},
	}
	sim, err := turnsim.New(specs, turnsim.WithRelief(1))
	require.NoError(t, err)

	require.NoError(t, sim.Round())
	assert.Equal(t, []int{1, 0}, sim.Inspections())
	assert.Equal(t, [][]int{{0}, {}}, sim.Holdings())

	require.NoError(t, sim.Run(2))
	assert.Equal(t, []int{3, 0}, sim.Inspections())
	f, tr := sim.Thrown(0)
	assert.Equal(t, 0, f)
	assert.Equal(t, 3, tr)
	assert.Equal(t, uint64(0), sim.ActivityScore())
}

// TestRound_SingleAgent: a lone agent feeding itself is a valid setup.
func TestRound_SingleAgent(t *testing.T) {
	specs := []turnsim.AgentSpec{
		{Items: []uint64{4, 9}, Op: turnsim.Mul(2), Test: 2, IfTrue: 0, IfFalse: 0},
	}
	for _, mode := range []turnsim.Mode{turnsim.ModeRelief, turnsim.ModeRemainder} {
		sim, err := turnsim.New(specs, turnsim.WithMode(mode))
		require.NoError(t, err)
		require.NoError(t, sim.Run(3))
		assert.Equal(t, []int{6}, sim.Inspections(), "mode %v", mode)
		assert.Equal(t, uint64(6), sim.ActivityScore(), "mode %v", mode)
		assert.Equal(t, [][]int{{0, 1}}, sim.Holdings(), "mode %v", mode)
	}
}

// TestRound_Overflow stops a relief run whose level leaves the uint64 range
// instead of routing on a wrapped value.
func TestRound_Overflow(t *testing.T) {
	specs := []turnsim.AgentSpec{
		{Items: []uint64{1 << 40}, Op: turnsim.Square(), Test: 7, IfTrue: 1, IfFalse: 1},
		{Op: turnsim.Add(0), Test: 1, IfTrue: 0, IfFalse: 0},
	}
	sim, err := turnsim.New(specs, turnsim.WithRelief(1))
	require.NoError(t, err)

	err = sim.Run(5)
	assert.ErrorIs(t, err, turnsim.ErrOverflow)
	assert.Equal(t, 0, sim.Rounds())
	assert.Equal(t, []int{0, 0}, sim.Inspections(), "the failing item is not counted")
	assert.ErrorIs(t, sim.Round(), turnsim.ErrOverflow, "the failure is sticky")

	rem, err := turnsim.New(specs, turnsim.WithMode(turnsim.ModeRemainder))
	require.NoError(t, err)
	assert.NoError(t, rem.Run(5), "remainder mode never overflows")
}

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that bad setups are rejected at construction time.
func TestNew_Errors(t *testing.T) {
	ok := func() []turnsim.AgentSpec { return sampleSpecs() }
	cases := []struct {
		name  string
		specs []turnsim.AgentSpec
		opts  []turnsim.Option
		err   error
	}{
		{"NoAgents", nil, nil, turnsim.ErrNoAgents},
		{"TargetTooHigh", func() []turnsim.AgentSpec { s := ok(); s[1].IfTrue = 4; return s }(), nil, turnsim.ErrTargetOutOfRange},
		{"TargetNegative", func() []turnsim.AgentSpec { s := ok(); s[3].IfFalse = -1; return s }(), nil, turnsim.ErrTargetOutOfRange},
		{"ZeroTest", func() []turnsim.AgentSpec { s := ok(); s[0].Test = 0; return s }(), nil, turnsim.ErrZeroTestValue},
		{"UnknownOp", func() []turnsim.AgentSpec { s := ok(); s[0].Op.Kind = 9; return s }(), nil, turnsim.ErrUnknownOperation},
		{"BadMode", ok(), []turnsim.Option{turnsim.WithMode(7)}, turnsim.ErrBadMode},
		{"ZeroRelief", ok(), []turnsim.Option{turnsim.WithRelief(0)}, turnsim.ErrZeroRelief},
		{"ZeroModulus", ok(), []turnsim.Option{turnsim.WithModuli(5, 0)}, turnsim.ErrOptionViolation},
		{"NegativeLogEvery", ok(), []turnsim.Option{turnsim.WithLogEvery(-1)}, turnsim.ErrOptionViolation},
		{"ModulusMismatch", ok(), []turnsim.Option{turnsim.WithMode(turnsim.ModeRemainder), turnsim.WithModuli(23 * 19 * 13)}, turnsim.ErrModulusMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := turnsim.New(tc.specs, tc.opts...)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestRun_Negative rejects negative round counts.
func TestRun_Negative(t *testing.T) {
	sim, err := turnsim.New(sampleSpecs())
	require.NoError(t, err)
	assert.ErrorIs(t, sim.Run(-1), turnsim.ErrNegativeRounds)
	assert.Equal(t, 0, sim.Rounds())
}

// TestNew_DoesNotAliasItems checks that the caller's slices are not mutated.
func TestNew_DoesNotAliasItems(t *testing.T) {
	specs := sampleSpecs()
	sim, err := turnsim.New(specs)
	require.NoError(t, err)
	require.NoError(t, sim.Run(3))
	assert.Equal(t, sampleSpecs(), specs)
}

// TestRound_Logging emits a Debug summary every LogEvery rounds.
func TestRound_Logging(t *testing.T) {
	var buf bytes.Buffer
	sim, err := turnsim.New(sampleSpecs(),
		turnsim.WithLogger(logger.New(&buf, "debug")),
		turnsim.WithLogEvery(5),
	)
	require.NoError(t, err)
	require.NoError(t, sim.Run(10))

	out := buf.String()
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("round complete")))
	assert.Contains(t, out, "component=turnsim")
	assert.Contains(t, out, "round=10")
	assert.Contains(t, out, "mode=relief")
}
