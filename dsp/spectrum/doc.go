// Package spectrum computes single-sided spectra of real time-domain
// sequences and converts complex bins to magnitude, power, and phase.
//
// [SingleSided] performs the DFT and keeps the first floor(N/2) coefficients,
// each scaled by 2/N (single-sided amplitude normalization). The result keeps
// complex coefficients; magnitude extraction is left to the consumer via
// [Magnitude] or [OneSided.Magnitudes], so phase information stays available.
//
// The frequency axis is a linear grid over [0, sampleRate/2],
//
//	fr[j] = j * (fs/2) / (floor(N/2) - 1)
//
// which is NOT the exact DFT bin spacing j*fs/N unless the two happen to
// coincide. This known deviation is kept deliberately: downstream consumers
// overlay spectra of same-length signal and autocorrelation sequences, and
// both use the same grid.
package spectrum
