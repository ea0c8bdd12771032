// Package conv provides correlation routines for time-domain sequences.
//
// The package computes raw sample cross- and autocorrelation,
//
//	r[k] = Σ_i a[i] * b[i+k]
//
// either directly (O(N*M), best for short inputs) or via FFT with
// power-of-two zero padding (O(N log N), used automatically for longer
// inputs).
//
// Output length is controlled by [Mode]. [ModeSame] yields a centered result
// with the same length as the input, which places lag zero at the center
// index; this is the convention used for visual overlay of an autocorrelation
// against its source signal.
//
// # Usage
//
// One-shot autocorrelation, normalized so the peak is exactly 1:
//
//	r, err := conv.AutoCorrelatePeakNormalized(x)
//
// The normalization divides by the maximum value (not the maximum absolute
// value), so a hypothetical negative global extremum would flip signs.
package conv
