// internal/utils/prng.go
package utils

import "fmt"

// HashSeed32 hashes a string to a 32-bit seed using FNV-1a.
func HashSeed32(s string) uint32 {
	var h uint32 = 2166136261
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619
	}
	return h
}

// WaveSeed derives the composition seed for one wave from the run and
// mission seeds. The same tuple must always hash to the same seed so that
// wave composition is reproducible across runs and machines.
func WaveSeed(runSeed, missionSeed int64, waveIndex int) uint32 {
	return HashSeed32(fmt.Sprintf("%d:%d:%d", runSeed, missionSeed, waveIndex))
}

// PRNG is a deterministic linear congruential generator seeded from a
// 32-bit hash. It is the only entropy source the simulation core may use;
// never substitute wall-clock or math/rand global state.
type PRNG struct {
	state uint32
}

// NewPRNG creates a generator with the given seed.
func NewPRNG(seed uint32) *PRNG {
	return &PRNG{state: seed}
}

// Next returns the next value in [0.0, 1.0).
func (p *PRNG) Next() float64 {
	p.state = p.state*1664525 + 1013904223
	return float64(p.state) / 4294967296.0
}

// Intn returns an integer in [0, n). n must be positive.
func (p *PRNG) Intn(n int) int {
	return int(p.Next() * float64(n))
}

// ChooseWeighted picks an index from a weight table. It sums all weights,
// draws a value in that range and walks the table until the draw is
// covered. Returns -1 for an empty or zero-weight table.
func (p *PRNG) ChooseWeighted(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return -1
	}

	r := p.Next() * total
	upto := 0.0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		upto += w
		if r < upto {
			return i
		}
	}
	return len(weights) - 1
}
