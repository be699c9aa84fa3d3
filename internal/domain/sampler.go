package domain

import (
	"math/rand/v2"
)

// Sampler picks k distinct indices from [0, n), every k-subset equally likely.
type Sampler interface {
	Sample(n, k int) []int
}

// randSampler is backed by a single generator and is not safe for concurrent use.
type randSampler struct {
	rng *rand.Rand
}

// NewRandSampler returns a Sampler seeded with seed. A zero seed draws a random one.
func NewRandSampler(seed uint64) Sampler {
	var src rand.Source
	if seed == 0 {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	} else {
		src = rand.NewPCG(seed, seed)
	}

	return &randSampler{rng: rand.New(src)}
}

// Sample runs a partial Fisher-Yates shuffle over the index set.
func (s *randSampler) Sample(n, k int) []int {
	if n <= 0 || k <= 0 {
		return nil
	}

	k = min(k, n)

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	for i := range k {
		j := i + s.rng.IntN(n-i)
		indices[i], indices[j] = indices[j], indices[i]
	}

	return indices[:k]
}
