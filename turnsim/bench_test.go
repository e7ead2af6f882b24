package turnsim_test

import (
	"testing"

	"github.com/katalvlaran/lvlath-aoc/turnsim"
)

// BenchmarkRun_Remainder measures 10 000 remainder-mode rounds on the sample agents.
func BenchmarkRun_Remainder(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sim, err := turnsim.New(sampleSpecs(), turnsim.WithMode(turnsim.ModeRemainder))
		if err != nil {
			b.Fatalf("setup New failed: %v", err)
		}
		_ = sim.Run(10000)
	}
}

// BenchmarkResidues_Square measures one squaring over eight moduli.
func BenchmarkResidues_Square(b *testing.B) {
	r := turnsim.NewResidues(79, []uint64{2, 3, 5, 7, 11, 13, 17, 19})
	op := turnsim.Square()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r = op.ApplyResidues(r)
	}
}
