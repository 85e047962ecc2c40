package sim

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// UniformSampler draws from Uniform(min, max) using a subsystem-isolated
// source, so every latency/interval draw in the simulation is reproducible
// given a fixed seed (spec §5).
type UniformSampler struct {
	dist distuv.Uniform
}

// NewUniformSampler builds a sampler over [min, max) backed by src.
func NewUniformSampler(min, max float64, src rand.Source) UniformSampler {
	return UniformSampler{dist: distuv.Uniform{Min: min, Max: max, Src: src}}
}

// Sample draws one value.
func (u UniformSampler) Sample() float64 { return u.dist.Rand() }

// Coin draws a Bernoulli(p) outcome: true with probability p.
func Coin(src rand.Source, p float64) bool {
	u := distuv.Uniform{Min: 0, Max: 1, Src: src}
	return u.Rand() < p
}

// UniformInt draws an integer in [1, n] inclusive, used for client key
// selection and chaos target choice.
func UniformInt(src rand.Source, n int) int {
	u := distuv.Uniform{Min: 0, Max: float64(n), Src: src}
	return int(u.Rand()) + 1
}
