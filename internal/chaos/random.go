package chaos

import "math/rand/v2"

// RandomSource picks corner indices. IntN returns a uniform value in [0, n).
type RandomSource interface {
	IntN(n int) int
}

// NewRandom returns a randomly seeded source.
func NewRandom() RandomSource {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewSeededRandom returns a deterministic source, so a seed reproduces a run.
func NewSeededRandom(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
