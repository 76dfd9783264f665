package tag_seq

import (
	"math/rand"
	"time"
)

// Nucleotides is the four-base alphabet every generated position is drawn from
const Nucleotides = "ACGT"

// GenerateDNA returns a sequence of exactly length bases, each drawn
// uniformly from Nucleotides using rng. A length of zero or less gives "".
func GenerateDNA(rng *rand.Rand, length int) string {
	if length <= 0 {
		return ""
	}
	seq := make([]byte, length)
	for i := range seq {
		seq[i] = Nucleotides[rng.Intn(len(Nucleotides))]
	}
	return string(seq)
}

// NewRand seeds a generator for one run. Every seed, 0 included, is deterministic.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// ClockSeed is the seed used when none was configured
func ClockSeed() int64 {
	return time.Now().UnixNano()
}
