package conv

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Errors returned by correlation functions.
var (
	ErrEmptyInput = errors.New("conv: empty input")
	ErrTooShort   = errors.New("conv: input must have at least 2 samples")
	ErrDegenerate = errors.New("conv: correlation peak is zero, cannot normalize")
)

// Mode specifies the output mode for correlation.
type Mode int

const (
	// ModeFull returns the full correlation result with length len(a)+len(b)-1.
	ModeFull Mode = iota

	// ModeSame returns a centered output with the same length as the first
	// input. Lag zero lands at index len(a)/2.
	ModeSame

	// ModeValid returns only the portion where the signals fully overlap,
	// with length max(len(a), len(b)) - min(len(a), len(b)) + 1.
	ModeValid
)

// Threshold below which the direct O(N*M) path is used instead of FFT.
const directThreshold = 64

// Correlate computes the full cross-correlation of a and b.
// The result has length len(a) + len(b) - 1; output index k corresponds to
// lag k - (len(b) - 1).
//
// Short inputs use direct computation; longer inputs use FFT with
// power-of-two zero padding.
func Correlate(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	if len(a) <= directThreshold || len(b) <= directThreshold {
		return correlateDirect(a, b), nil
	}

	return correlateFFT(a, b)
}

// CorrelateMode computes cross-correlation with the specified output mode.
func CorrelateMode(a, b []float64, mode Mode) ([]float64, error) {
	full, err := Correlate(a, b)
	if err != nil {
		return nil, err
	}

	return trimToMode(full, len(a), len(b), mode), nil
}

// AutoCorrelateSame computes the raw sample autocorrelation of x,
//
//	r[k] = Σ_i x[i] * x[i+k]
//
// trimmed to a centered output with the same length as x ([ModeSame]).
// Lag zero sits at index len(x)/2.
func AutoCorrelateSame(x []float64) ([]float64, error) {
	if len(x) < 2 {
		return nil, ErrTooShort
	}

	return CorrelateMode(x, x, ModeSame)
}

// AutoCorrelatePeakNormalized computes the centered same-length
// autocorrelation of x and divides every value by the maximum value in the
// result, so the peak is exactly 1.0.
//
// The divisor is the maximum, not the maximum absolute value; for an
// autocorrelation the zero-lag value dominates, so the peak is positive for
// any non-degenerate input. An all-zero correlation cannot be normalized and
// fails with [ErrDegenerate] instead of emitting NaNs.
func AutoCorrelatePeakNormalized(x []float64) ([]float64, error) {
	r, err := AutoCorrelateSame(x)
	if err != nil {
		return nil, err
	}

	peak := r[0]
	for _, v := range r[1:] {
		if v > peak {
			peak = v
		}
	}

	if peak == 0 {
		return nil, ErrDegenerate
	}

	for i := range r {
		r[i] /= peak
	}

	return r, nil
}

// CenterIndex returns the index of lag zero in a ModeSame correlation of two
// length-n inputs.
func CenterIndex(n int) int {
	return n / 2
}

// SameLags returns the lag axis in seconds for a ModeSame autocorrelation of
// n samples at the given sample rate. The value at [CenterIndex] is zero.
func SameLags(n int, sampleRate float64) []float64 {
	out := make([]float64, n)
	center := CenterIndex(n)
	for i := range out {
		out[i] = float64(i-center) / sampleRate
	}
	return out
}

// FindPeak returns the index and value of the maximum in a correlation result.
func FindPeak(corr []float64) (index int, value float64) {
	if len(corr) == 0 {
		return -1, 0
	}

	index = 0
	value = corr[0]
	for i, v := range corr {
		if v > value {
			index = i
			value = v
		}
	}

	return index, value
}

// correlateDirect computes the full cross-correlation in the time domain.
// Correlation is convolution with the time-reversed second input.
func correlateDirect(a, b []float64) []float64 {
	n := len(a)
	m := len(b)

	out := make([]float64, n+m-1)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			// b reversed: kernel index j reads b[m-1-j].
			out[i+j] += a[i] * b[m-1-j]
		}
	}

	return out
}

// correlateFFT computes the full cross-correlation via FFT:
// IFFT(FFT(a) * conj(FFT(b))), with power-of-two zero padding.
func correlateFFT(a, b []float64) ([]float64, error) {
	n := len(a)
	m := len(b)
	fftSize := nextPowerOf2(n + m - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	aPadded := make([]complex128, fftSize)
	bPadded := make([]complex128, fftSize)
	for i := 0; i < n; i++ {
		aPadded[i] = complex(a[i], 0)
	}
	for i := 0; i < m; i++ {
		bPadded[i] = complex(b[i], 0)
	}

	aFreq := make([]complex128, fftSize)
	bFreq := make([]complex128, fftSize)

	if err := plan.Forward(aFreq, aPadded); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}
	if err := plan.Forward(bFreq, bPadded); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}

	resultFreq := make([]complex128, fftSize)
	for i := range resultFreq {
		bConj := complex(real(bFreq[i]), -imag(bFreq[i]))
		resultFreq[i] = aFreq[i] * bConj
	}

	resultTime := make([]complex128, fftSize)
	if err := plan.Inverse(resultTime, resultFreq); err != nil {
		return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
	}

	// Rearrange circular correlation into linear: positive lags sit at the
	// start of the IFFT output, negative lags wrap around at the end.
	result := make([]float64, n+m-1)
	for i := 0; i < n; i++ {
		result[m-1+i] = real(resultTime[i])
	}
	for i := 0; i < m-1; i++ {
		result[i] = real(resultTime[fftSize-m+1+i])
	}

	return result, nil
}

// trimToMode extracts the appropriate portion of a full correlation result.
func trimToMode(full []float64, lenA, lenB int, mode Mode) []float64 {
	switch mode {
	case ModeFull:
		return full
	case ModeSame:
		start := (lenB - 1) / 2
		return full[start : start+lenA]
	case ModeValid:
		if lenA >= lenB {
			return full[lenB-1 : lenA]
		}
		return full[lenA-1 : lenB]
	default:
		return full
	}
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
