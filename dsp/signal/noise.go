package signal

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// NoiseSource supplies standard-normal draws (mean 0, variance 1).
//
// *math/rand.Rand satisfies this interface directly.
type NoiseSource interface {
	NormFloat64() float64
}

// gaussianSource adapts a gonum normal distribution to [NoiseSource].
type gaussianSource struct {
	dist distuv.Normal
}

func (s gaussianSource) NormFloat64() float64 {
	return s.dist.Rand()
}

// NewNoiseSource returns a deterministic standard-normal source seeded with
// the given value. Two sources with the same seed produce identical draws.
func NewNoiseSource(seed uint64) NoiseSource {
	return gaussianSource{
		dist: distuv.Normal{
			Mu:    0,
			Sigma: 1,
			Src:   rand.NewSource(seed),
		},
	}
}
