package conv

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-spectral/internal/testutil"
)

func TestCorrelateFullLength(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 1}

	r, err := Correlate(a, b)
	if err != nil {
		t.Fatalf("Correlate() error = %v", err)
	}
	if len(r) != len(a)+len(b)-1 {
		t.Fatalf("len = %d, want %d", len(r), len(a)+len(b)-1)
	}
}

func TestCorrelateEmpty(t *testing.T) {
	if _, err := Correlate(nil, []float64{1}); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("error = %v, want ErrEmptyInput", err)
	}
	if _, err := Correlate([]float64{1}, nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("error = %v, want ErrEmptyInput", err)
	}
}

func TestAutoCorrelateSameLength(t *testing.T) {
	for _, n := range []int{2, 5, 64, 200} {
		x := make([]float64, n)
		for i := range x {
			x[i] = math.Sin(2 * math.Pi * float64(i) / 20)
		}

		r, err := AutoCorrelateSame(x)
		if err != nil {
			t.Fatalf("n=%d: AutoCorrelateSame() error = %v", n, err)
		}
		if len(r) != n {
			t.Fatalf("n=%d: len = %d, want %d", n, len(r), n)
		}
	}
}

func TestAutoCorrelateSameCenterIsZeroLag(t *testing.T) {
	// The zero-lag value is the signal energy, the largest value of an
	// autocorrelation; it must land at CenterIndex.
	x := []float64{1, -2, 3, -1, 2, 1, -3, 2}

	r, err := AutoCorrelateSame(x)
	if err != nil {
		t.Fatalf("AutoCorrelateSame() error = %v", err)
	}

	energy := 0.0
	for _, v := range x {
		energy += v * v
	}

	c := CenterIndex(len(x))
	if math.Abs(r[c]-energy) > 1e-9 {
		t.Fatalf("r[%d] = %v, want energy %v", c, r[c], energy)
	}

	idx, _ := FindPeak(r)
	if idx != c {
		t.Fatalf("peak at %d, want center %d", idx, c)
	}
}

func TestAutoCorrelateSameMatchesDirectSum(t *testing.T) {
	x := []float64{0.5, -1, 2, 1.5, -0.5, 1}
	n := len(x)

	r, err := AutoCorrelateSame(x)
	if err != nil {
		t.Fatalf("AutoCorrelateSame() error = %v", err)
	}

	c := CenterIndex(n)
	for i := range r {
		lag := i - c
		want := 0.0
		for j := 0; j < n; j++ {
			k := j + lag
			if k >= 0 && k < n {
				want += x[j] * x[k]
			}
		}
		if math.Abs(r[i]-want) > 1e-9 {
			t.Fatalf("r[%d] (lag %d) = %v, want %v", i, lag, r[i], want)
		}
	}
}

func TestDirectAndFFTPathsAgree(t *testing.T) {
	// 100 samples crosses the FFT threshold; compare against the direct path.
	n := 100
	x := make([]float64, n)
	for i := range x {
		x[i] = math.Cos(2*math.Pi*float64(i)/25) + 0.3*math.Sin(2*math.Pi*float64(i)/7)
	}

	direct := correlateDirect(x, x)
	viaFFT, err := correlateFFT(x, x)
	if err != nil {
		t.Fatalf("correlateFFT() error = %v", err)
	}

	testutil.RequireFinite(t, viaFFT)
	testutil.RequireSliceNearlyEqual(t, viaFFT, direct, 1e-7)
}

func TestAutoCorrelateImpulse(t *testing.T) {
	// The autocorrelation of a unit impulse is a unit impulse at zero lag.
	x := testutil.Impulse(9, 3)

	r, err := AutoCorrelateSame(x)
	if err != nil {
		t.Fatalf("AutoCorrelateSame() error = %v", err)
	}

	want := testutil.Impulse(9, CenterIndex(9))
	testutil.RequireSliceNearlyEqual(t, r, want, 1e-12)
}

func TestAutoCorrelateDCNormalized(t *testing.T) {
	// A constant signal correlates with itself into a triangle; after peak
	// normalization the zero-lag value is exactly 1.
	x := testutil.DC(2.5, 16)

	r, err := AutoCorrelatePeakNormalized(x)
	if err != nil {
		t.Fatalf("AutoCorrelatePeakNormalized() error = %v", err)
	}
	if math.Abs(r[CenterIndex(16)]-1) > 1e-12 {
		t.Fatalf("zero-lag = %v, want 1", r[CenterIndex(16)])
	}
}

func TestAutoCorrelatePeakNormalized(t *testing.T) {
	n := 200
	x := testutil.Tone(2, 20, 1, n)

	r, err := AutoCorrelatePeakNormalized(x)
	if err != nil {
		t.Fatalf("AutoCorrelatePeakNormalized() error = %v", err)
	}
	if len(r) != n {
		t.Fatalf("len = %d, want %d", len(r), n)
	}

	_, peak := FindPeak(r)
	if math.Abs(peak-1) > 1e-9 {
		t.Fatalf("peak = %v, want 1.0", peak)
	}
	for i, v := range r {
		if v > 1+1e-9 {
			t.Fatalf("r[%d] = %v exceeds 1", i, v)
		}
	}
}

func TestAutoCorrelateErrors(t *testing.T) {
	if _, err := AutoCorrelateSame([]float64{1}); !errors.Is(err, ErrTooShort) {
		t.Fatalf("error = %v, want ErrTooShort", err)
	}
	if _, err := AutoCorrelatePeakNormalized([]float64{1}); !errors.Is(err, ErrTooShort) {
		t.Fatalf("error = %v, want ErrTooShort", err)
	}

	zeros := make([]float64, 10)
	if _, err := AutoCorrelatePeakNormalized(zeros); !errors.Is(err, ErrDegenerate) {
		t.Fatalf("error = %v, want ErrDegenerate", err)
	}
}

func TestSameLags(t *testing.T) {
	lags := SameLags(6, 20)
	if len(lags) != 6 {
		t.Fatalf("len = %d, want 6", len(lags))
	}
	if lags[CenterIndex(6)] != 0 {
		t.Fatalf("lag at center = %v, want 0", lags[CenterIndex(6)])
	}
	if math.Abs(lags[0]+0.15) > 1e-12 {
		t.Fatalf("lags[0] = %v, want -0.15", lags[0])
	}
	if math.Abs(lags[5]-0.1) > 1e-12 {
		t.Fatalf("lags[5] = %v, want 0.1", lags[5])
	}
}

func TestTrimToModeValid(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b := []float64{1, 1}

	r, err := CorrelateMode(a, b, ModeValid)
	if err != nil {
		t.Fatalf("CorrelateMode() error = %v", err)
	}
	if len(r) != len(a)-len(b)+1 {
		t.Fatalf("len = %d, want %d", len(r), len(a)-len(b)+1)
	}
}
