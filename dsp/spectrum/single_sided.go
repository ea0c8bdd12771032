package spectrum

import (
	"errors"

	"github.com/mjibson/go-dsp/fft"
)

// Errors returned by spectrum functions.
var (
	ErrTooShort          = errors.New("spectrum: input must have at least 2 samples")
	ErrInvalidSampleRate = errors.New("spectrum: sample rate must be positive")
)

// OneSided is the single-sided spectrum of a real time-domain sequence.
//
// Bins holds the first floor(N/2) DFT coefficients scaled by 2/N. The DC bin
// receives the factor 2 as well; this is an accepted simplification, not a
// DC-correct amplitude spectrum. Frequencies is the matching linear grid over
// [0, SampleRate/2].
type OneSided struct {
	Frequencies []float64
	Bins        []complex128
	SampleRate  float64
}

// Magnitudes returns |X[j]| for each bin. This is where the modulus is taken;
// the estimator itself keeps complex coefficients.
func (o *OneSided) Magnitudes() []float64 {
	return Magnitude(o.Bins)
}

// SingleSided computes the single-sided amplitude spectrum of values.
//
// The DFT is computed over all N input samples (no padding, arbitrary N) and
// the redundant negative-frequency half is discarded, keeping indices 0
// through floor(N/2)-1. For odd N this excludes the Nyquist bin.
func SingleSided(values []float64, sampleRate float64) (*OneSided, error) {
	if len(values) < 2 {
		return nil, ErrTooShort
	}
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	n := len(values)
	half := n / 2

	coeffs := fft.FFTReal(values)

	scale := 2 / float64(n)
	bins := make([]complex128, half)
	for j := range bins {
		bins[j] = coeffs[j] * complex(scale, 0)
	}

	freqs := make([]float64, half)
	if half > 1 {
		step := sampleRate / 2 / float64(half-1)
		for j := range freqs {
			freqs[j] = float64(j) * step
		}
	}

	return &OneSided{
		Frequencies: freqs,
		Bins:        bins,
		SampleRate:  sampleRate,
	}, nil
}
