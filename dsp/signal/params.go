package signal

import (
	"errors"
	"math"
)

// Errors returned by signal functions.
var (
	ErrInvalidSampleRate = errors.New("signal: sample rate must be positive")
	ErrInvalidDuration   = errors.New("signal: duration must be positive")
	ErrInvalidFrequency  = errors.New("signal: frequency must be >= 0")
	ErrInvalidAmplitude  = errors.New("signal: amplitude must be >= 0")
	ErrNilNoiseSource    = errors.New("signal: noise source required when noise amplitude > 0")
)

// Params describes a two-tone synthesis run.
//
// A Params value fully determines the deterministic part of the output; the
// noisy part additionally depends on the injected [NoiseSource]. Params is a
// plain value object and is never mutated by this package.
type Params struct {
	F0 float64 // first tone frequency in Hz
	F1 float64 // second tone frequency in Hz
	A0 float64 // first tone amplitude
	A1 float64 // second tone amplitude

	NoiseAmp   float64 // scale applied to standard-normal noise draws
	SampleRate float64 // sample rate in Hz
	Duration   float64 // signal duration in seconds
}

// Validate checks that the Params are usable for synthesis.
func (p Params) Validate() error {
	if p.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}

	if p.Duration <= 0 {
		return ErrInvalidDuration
	}

	// Zero frequency is a valid (DC) component; only negative values are
	// rejected.
	if p.F0 < 0 || p.F1 < 0 {
		return ErrInvalidFrequency
	}

	if p.A0 < 0 || p.A1 < 0 || p.NoiseAmp < 0 {
		return ErrInvalidAmplitude
	}

	return nil
}

// Samples returns the number of samples a synthesis run produces,
// floor(Duration * SampleRate).
func (p Params) Samples() int {
	return int(math.Floor(p.Duration * p.SampleRate))
}
