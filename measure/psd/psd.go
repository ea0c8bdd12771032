package psd

import (
	"github.com/cwbudde/algo-spectral/dsp/conv"
	"github.com/cwbudde/algo-spectral/dsp/signal"
	"github.com/cwbudde/algo-spectral/dsp/spectrum"
)

// Result holds the complete output of one pipeline run: three time-domain
// sequences with their axes and the three matching single-sided spectra.
type Result struct {
	Params signal.Params

	// Time-domain arrays, all of length Params.Samples().
	Time          []float64 // sample instants in seconds
	Deterministic []float64 // noise-free two-tone signal
	Noisy         []float64 // deterministic part plus scaled Gaussian noise

	// Centered autocorrelation of the noisy signal, peak-normalized to 1.0,
	// with its lag axis in seconds (zero lag at the center index).
	Lags     []float64
	AutoCorr []float64

	// Single-sided spectra. Complex coefficients; take magnitudes for display.
	DeterministicSpectrum *spectrum.OneSided
	NoisySpectrum         *spectrum.OneSided
	AutoCorrSpectrum      *spectrum.OneSided
}

// Analyze runs the full pipeline for one parameter set.
//
// Validation happens before any computation, and every stage either completes
// or fails as a whole; a non-nil Result always carries all six arrays.
// src may be nil when p.NoiseAmp is zero.
func Analyze(p signal.Params, src signal.NoiseSource) (*Result, error) {
	deterministic, noisy, err := signal.Synthesize(p, src)
	if err != nil {
		return nil, err
	}

	autoCorr, err := conv.AutoCorrelatePeakNormalized(noisy)
	if err != nil {
		return nil, err
	}

	detSpec, err := spectrum.SingleSided(deterministic, p.SampleRate)
	if err != nil {
		return nil, err
	}

	noisySpec, err := spectrum.SingleSided(noisy, p.SampleRate)
	if err != nil {
		return nil, err
	}

	corrSpec, err := spectrum.SingleSided(autoCorr, p.SampleRate)
	if err != nil {
		return nil, err
	}

	n := len(deterministic)

	return &Result{
		Params:                p,
		Time:                  signal.TimeAxis(n, p.SampleRate),
		Deterministic:         deterministic,
		Noisy:                 noisy,
		Lags:                  conv.SameLags(n, p.SampleRate),
		AutoCorr:              autoCorr,
		DeterministicSpectrum: detSpec,
		NoisySpectrum:         noisySpec,
		AutoCorrSpectrum:      corrSpec,
	}, nil
}
