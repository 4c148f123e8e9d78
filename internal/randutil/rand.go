// Package randutil centralises RNG construction so that every stochastic
// path in the predictor can be replayed from a single int64 seed.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from the provided
// int64, deriving the two 64-bit PCG seeds through a splitmix-style mixer.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewFromTime returns an RNG seeded from the wall clock along with the
// seed used, so a run can be replayed by passing the printed seed back in.
func NewFromTime() (*rand.Rand, int64) {
	seed := time.Now().UnixNano()
	return New(seed), seed
}

// Derive returns a child RNG for worker i of a parallel computation.
// Children of the same (seed, i) pair always produce the same sequence.
func Derive(seed int64, i int) *rand.Rand {
	return New(seed ^ int64(mix(uint64(i)+goldenRatio64)))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
