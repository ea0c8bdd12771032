package signal

import (
	"math"
)

// TimeAxis returns the sample instants t_i = i/sampleRate for i = 0..n-1.
func TimeAxis(n int, sampleRate float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) / sampleRate
	}
	return out
}

// Harmonic generates the noise-free deterministic part of the signal,
//
//	d[i] = a0*cos(2π f0 t_i) + a1*cos(2π f1 t_i)
//
// for t_i = i/SampleRate over floor(Duration*SampleRate) samples.
func Harmonic(p Params) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	n := p.Samples()
	out := make([]float64, n)

	w0 := 2 * math.Pi * p.F0 / p.SampleRate
	w1 := 2 * math.Pi * p.F1 / p.SampleRate
	for i := range out {
		out[i] = p.A0*math.Cos(w0*float64(i)) + p.A1*math.Cos(w1*float64(i))
	}

	return out, nil
}

// Synthesize generates both the deterministic part and the noisy composite.
//
// When NoiseAmp > 0, exactly one draw per sample is taken from src; with
// NoiseAmp == 0 the source is never consulted (and may be nil), so the noisy
// output equals the deterministic one.
func Synthesize(p Params, src NoiseSource) (deterministic, noisy []float64, err error) {
	deterministic, err = Harmonic(p)
	if err != nil {
		return nil, nil, err
	}

	noisy = make([]float64, len(deterministic))
	if p.NoiseAmp == 0 {
		copy(noisy, deterministic)
		return deterministic, noisy, nil
	}

	if src == nil {
		return nil, nil, ErrNilNoiseSource
	}

	for i, v := range deterministic {
		noisy[i] = v + p.NoiseAmp*src.NormFloat64()
	}

	return deterministic, noisy, nil
}
