// Package frequency computes descriptive statistics of a single-sided
// magnitude spectrum carried together with its frequency axis.
//
// All functions take the axis explicitly rather than deriving bin frequencies
// from a sample rate, so they work with any monotonic axis a spectrum
// estimator produces.
package frequency

import (
	"math"
	"math/cmplx"
)

// Stats holds frequency-domain statistics computed from a magnitude spectrum.
type Stats struct {
	BinCount int
	DC       float64 // bin 0 magnitude
	DC_dB    float64
	Sum      float64 // sum of magnitudes
	Max      float64
	MaxBin   int
	PeakFreq float64 // axis frequency of the maximum bin (Hz)
	Min      float64
	MinBin   int
	Average  float64
	Range    float64
	Energy   float64 // sum of squared magnitudes
	Power    float64 // energy / bin count
	// Spectral shape descriptors
	Centroid float64 // spectral centroid (Hz)
	Spread   float64 // spectral spread (Hz)
	Flatness float64 // spectral flatness (Wiener entropy), 0..1
	Rolloff  float64 // frequency below which 85% of energy lies (Hz)
}

// toDB converts a linear magnitude to decibels.
// Returns -Inf for zero values.
func toDB(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(v)
}

// Calculate computes all frequency-domain statistics from a magnitude
// spectrum (linear scale, NOT dB) and its matching frequency axis.
//
// Both slices must have the same length; the shorter one bounds the
// computation when they differ.
func Calculate(frequencies, magnitude []float64) Stats {
	n := min(len(frequencies), len(magnitude))
	if n == 0 {
		return Stats{DC_dB: math.Inf(-1)}
	}

	var s Stats
	s.BinCount = n
	s.DC = magnitude[0]
	s.DC_dB = toDB(s.DC)

	s.Min = magnitude[0]
	s.Max = magnitude[0]
	for i := 0; i < n; i++ {
		v := magnitude[i]
		s.Sum += v
		s.Energy += v * v
		if v > s.Max {
			s.Max = v
			s.MaxBin = i
		}
		if v < s.Min {
			s.Min = v
			s.MinBin = i
		}
	}
	s.PeakFreq = frequencies[s.MaxBin]
	s.Average = s.Sum / float64(n)
	s.Range = s.Max - s.Min
	s.Power = s.Energy / float64(n)

	if n < 2 {
		return s
	}

	s.Centroid = centroid(frequencies[:n], magnitude[:n], s.Sum)
	s.Spread = spread(frequencies[:n], magnitude[:n], s.Centroid, s.Sum)
	s.Flatness = flatness(magnitude[:n])
	s.Rolloff = rolloff(frequencies[:n], magnitude[:n], 0.85, s.Energy)

	return s
}

// CalculateFromComplex takes the magnitude of a complex spectrum and
// delegates to [Calculate].
func CalculateFromComplex(frequencies []float64, bins []complex128) Stats {
	mag := make([]float64, len(bins))
	for i, c := range bins {
		mag[i] = cmplx.Abs(c)
	}
	return Calculate(frequencies, mag)
}

// PeakFrequency returns the axis frequency and magnitude of the largest bin.
// Zero values are returned for empty input.
func PeakFrequency(frequencies, magnitude []float64) (freq, mag float64) {
	n := min(len(frequencies), len(magnitude))
	if n == 0 {
		return 0, 0
	}
	peak := 0
	for i := 1; i < n; i++ {
		if magnitude[i] > magnitude[peak] {
			peak = i
		}
	}
	return frequencies[peak], magnitude[peak]
}

// Centroid returns the spectral centroid in Hz.
//
//	centroid = sum(f_i * |X_i|) / sum(|X_i|)
func Centroid(frequencies, magnitude []float64) float64 {
	n := min(len(frequencies), len(magnitude))
	if n < 2 {
		return 0
	}
	sum := 0.0
	for _, v := range magnitude[:n] {
		sum += v
	}
	return centroid(frequencies[:n], magnitude[:n], sum)
}

func centroid(frequencies, magnitude []float64, sumMag float64) float64 {
	if sumMag == 0 {
		return 0
	}
	weightedSum := 0.0
	for i, v := range magnitude {
		weightedSum += frequencies[i] * v
	}
	return weightedSum / sumMag
}

// spread computes the standard deviation of the spectrum around the centroid.
func spread(frequencies, magnitude []float64, cent, sumMag float64) float64 {
	if sumMag == 0 {
		return 0
	}
	weightedSqSum := 0.0
	for i, v := range magnitude {
		diff := frequencies[i] - cent
		weightedSqSum += diff * diff * v
	}
	return math.Sqrt(weightedSqSum / sumMag)
}

// Flatness returns the spectral flatness (Wiener entropy) in the range 0..1.
//
// Flatness = exp(mean(log(|X_i|))) / mean(|X_i|)
//
// The DC bin (index 0) is excluded. If any considered bin is zero, the
// geometric mean collapses and 0 is returned.
func Flatness(magnitude []float64) float64 {
	return flatness(magnitude)
}

func flatness(magnitude []float64) float64 {
	n := len(magnitude)
	if n < 2 {
		return 0
	}

	nBins := n - 1
	sumLin := 0.0
	sumLog := 0.0
	hasZero := false

	for i := 1; i < n; i++ {
		v := magnitude[i]
		sumLin += v
		if v > 0 {
			sumLog += math.Log(v)
		} else {
			hasZero = true
		}
	}

	meanLin := sumLin / float64(nBins)
	if meanLin == 0 || hasZero {
		return 0
	}

	return math.Exp(sumLog/float64(nBins)) / meanLin
}

// Rolloff returns the frequency below which the specified fraction (0..1) of
// spectral energy lies. Energy is the sum of squared magnitudes; a typical
// value for percent is 0.85.
func Rolloff(frequencies, magnitude []float64, percent float64) float64 {
	n := min(len(frequencies), len(magnitude))
	if n < 2 {
		return 0
	}
	energy := 0.0
	for _, v := range magnitude[:n] {
		energy += v * v
	}
	return rolloff(frequencies[:n], magnitude[:n], percent, energy)
}

func rolloff(frequencies, magnitude []float64, percent, totalEnergy float64) float64 {
	if totalEnergy == 0 {
		return 0
	}
	threshold := percent * totalEnergy
	cumEnergy := 0.0
	for i, v := range magnitude {
		cumEnergy += v * v
		if cumEnergy >= threshold {
			return frequencies[i]
		}
	}
	return frequencies[len(frequencies)-1]
}
