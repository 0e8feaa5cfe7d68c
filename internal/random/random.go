package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Rand supplies the uniform choices used by the scenario and evidence
// generators. Keeping the choice source behind this wrapper lets tests inject
// a fixed seed and assert on the output deterministically.
type Rand struct {
	r *rand.Rand
}

// New returns a Rand seeded from crypto/rand.
func New() *Rand {
	var seed [16]byte
	if _, err := crand.Read(seed[:]); err != nil {
		// crypto/rand never fails on supported platforms.
		panic(err)
	}
	return &Rand{r: rand.New(rand.NewPCG(
		binary.LittleEndian.Uint64(seed[:8]),
		binary.LittleEndian.Uint64(seed[8:]),
	))}
}

// NewSeeded returns a Rand with a fixed seed for deterministic tests.
func NewSeeded(seed uint64) *Rand {
	return &Rand{r: rand.New(rand.NewPCG(seed, seed))}
}

// IntN returns a uniform int in [0, n).
func (r *Rand) IntN(n int) int {
	return r.r.IntN(n)
}

// Pick returns a uniformly chosen element of xs. Panics on an empty slice.
func Pick[T any](r *Rand, xs []T) T {
	return xs[r.r.IntN(len(xs))]
}

// Shuffled returns a shuffled copy of xs leaving the original untouched.
func Shuffled[T any](r *Rand, xs []T) []T {
	out := make([]T, len(xs))
	copy(out, xs)
	r.r.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
