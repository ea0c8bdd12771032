package psd

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-spectral/dsp/conv"
	"github.com/cwbudde/algo-spectral/dsp/signal"
	"github.com/cwbudde/algo-spectral/dsp/spectrum"
	"github.com/cwbudde/algo-spectral/stats/frequency"
)

func testParams() signal.Params {
	return signal.Params{
		F0: 2, F1: 0,
		A0: 1, A1: 0,
		NoiseAmp:   0,
		SampleRate: 20,
		Duration:   10,
	}
}

func TestAnalyzeLengths(t *testing.T) {
	p := testParams()

	res, err := Analyze(p, nil)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	n := p.Samples()
	if n != 200 {
		t.Fatalf("Samples() = %d, want 200", n)
	}

	for name, arr := range map[string][]float64{
		"Time":          res.Time,
		"Deterministic": res.Deterministic,
		"Noisy":         res.Noisy,
		"Lags":          res.Lags,
		"AutoCorr":      res.AutoCorr,
	} {
		if len(arr) != n {
			t.Fatalf("len(%s) = %d, want %d", name, len(arr), n)
		}
	}

	for name, sp := range map[string]*spectrum.OneSided{
		"DeterministicSpectrum": res.DeterministicSpectrum,
		"NoisySpectrum":         res.NoisySpectrum,
		"AutoCorrSpectrum":      res.AutoCorrSpectrum,
	} {
		if sp == nil {
			t.Fatalf("%s is nil", name)
		}
		if len(sp.Bins) != n/2 {
			t.Fatalf("len(%s.Bins) = %d, want %d", name, len(sp.Bins), n/2)
		}
	}
}

func TestAnalyzeNoiseFreeSignalsMatch(t *testing.T) {
	res, err := Analyze(testParams(), nil)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	for i := range res.Deterministic {
		if res.Deterministic[i] != res.Noisy[i] {
			t.Fatalf("noise-free run: signals differ at %d", i)
		}
	}
}

func TestAnalyzeAutoCorrPeakAtZeroLag(t *testing.T) {
	res, err := Analyze(testParams(), nil)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	center := conv.CenterIndex(len(res.AutoCorr))
	if math.Abs(res.AutoCorr[center]-1) > 1e-12 {
		t.Fatalf("AutoCorr[center] = %v, want 1.0", res.AutoCorr[center])
	}
	if res.Lags[center] != 0 {
		t.Fatalf("Lags[center] = %v, want 0", res.Lags[center])
	}
	for i, v := range res.AutoCorr {
		if v > 1+1e-12 {
			t.Fatalf("AutoCorr[%d] = %v exceeds normalized peak", i, v)
		}
	}
}

func TestAnalyzeSpectraAgreeOnTone(t *testing.T) {
	// The direct spectrum of the signal and the spectrum of its
	// autocorrelation must place their dominant peak at the same frequency.
	res, err := Analyze(testParams(), nil)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	direct, directMag := frequency.PeakFrequency(
		res.NoisySpectrum.Frequencies, res.NoisySpectrum.Magnitudes())
	viaCorr, _ := frequency.PeakFrequency(
		res.AutoCorrSpectrum.Frequencies, res.AutoCorrSpectrum.Magnitudes())

	if math.Abs(direct-2) > 0.2 {
		t.Fatalf("direct spectrum peak at %.3f Hz, want ~2 Hz", direct)
	}
	if math.Abs(directMag-1) > 1e-9 {
		t.Fatalf("direct spectrum peak magnitude = %v, want 1.0", directMag)
	}
	if math.Abs(viaCorr-direct) > 0.2 {
		t.Fatalf("autocorrelation spectrum peak at %.3f Hz, direct at %.3f Hz", viaCorr, direct)
	}
}

func TestAnalyzeWithNoise(t *testing.T) {
	p := testParams()
	p.NoiseAmp = 0.5

	res, err := Analyze(p, signal.NewNoiseSource(42))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	differs := false
	for i := range res.Noisy {
		if res.Noisy[i] != res.Deterministic[i] {
			differs = true
			break
		}
	}
	if !differs {
		t.Fatal("noisy signal identical to deterministic despite NoiseAmp > 0")
	}
}

func TestAnalyzeErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*signal.Params)
		wantErr error
	}{
		{
			name:    "negative duration",
			mutate:  func(p *signal.Params) { p.Duration = -1 },
			wantErr: signal.ErrInvalidDuration,
		},
		{
			name:    "zero sample rate",
			mutate:  func(p *signal.Params) { p.SampleRate = 0 },
			wantErr: signal.ErrInvalidSampleRate,
		},
		{
			name:    "too short for correlation",
			mutate:  func(p *signal.Params) { p.Duration = 0.05 },
			wantErr: conv.ErrTooShort,
		},
		{
			name: "all-zero signal",
			mutate: func(p *signal.Params) {
				p.A0, p.A1 = 0, 0
			},
			wantErr: conv.ErrDegenerate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testParams()
			tt.mutate(&p)

			res, err := Analyze(p, nil)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Analyze() error = %v, want %v", err, tt.wantErr)
			}
			if res != nil {
				t.Fatal("expected nil result on error")
			}
		})
	}
}
