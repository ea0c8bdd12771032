package app

import (
	"context"
	"encoding/csv"
	"fmt"
	"image/png"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-spectral/dsp/signal"
	"github.com/cwbudde/algo-spectral/dsp/spectrum"
	"github.com/cwbudde/algo-spectral/internal/render"
	"github.com/cwbudde/algo-spectral/measure/psd"
	"github.com/cwbudde/algo-spectral/stats/frequency"
	statstime "github.com/cwbudde/algo-spectral/stats/time"
)

// Run executes the pipeline for the configured parameters, prints summary
// statistics, and writes the chart and optional CSV dumps.
func Run(ctx context.Context, config *Config, logger zerolog.Logger) error {
	var src signal.NoiseSource
	if config.Params.NoiseAmp > 0 {
		src = signal.NewNoiseSource(config.Seed)
	}

	logger.Info().
		Float64("f0", config.Params.F0).
		Float64("f1", config.Params.F1).
		Float64("noise", config.Params.NoiseAmp).
		Float64("rate", config.Params.SampleRate).
		Float64("duration", config.Params.Duration).
		Int("samples", config.Params.Samples()).
		Msg("running analysis")

	res, err := psd.Analyze(config.Params, src)
	if err != nil {
		return fmt.Errorf("analyzing signal: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	printTimeStats(res)
	printSpectrumStats(res)

	if config.TimeCSV != "" {
		if err := writeTimeCSV(config.TimeCSV, res); err != nil {
			return fmt.Errorf("writing time-domain CSV: %w", err)
		}
		logger.Info().Str("path", config.TimeCSV).Msg("wrote time-domain CSV")
	}
	if config.SpectrumCSV != "" {
		if err := writeSpectrumCSV(config.SpectrumCSV, res); err != nil {
			return fmt.Errorf("writing spectrum CSV: %w", err)
		}
		logger.Info().Str("path", config.SpectrumCSV).Msg("wrote spectrum CSV")
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := writeChart(config, res); err != nil {
		return fmt.Errorf("writing chart: %w", err)
	}

	if fi, err := os.Stat(config.OutputFile); err == nil {
		logger.Info().
			Str("path", config.OutputFile).
			Str("size", humanize.Bytes(uint64(fi.Size()))).
			Msg("wrote chart")
	}

	return nil
}

func printTimeStats(res *psd.Result) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Signal\tLength\tMean\tRMS\tPeak\tVariance\tZero Cross.\n")
	fmt.Fprintf(tw, "------\t------\t----\t---\t----\t--------\t-----------\n")

	for _, row := range []struct {
		name   string
		values []float64
	}{
		{"deterministic", res.Deterministic},
		{"noisy", res.Noisy},
		{"autocorr", res.AutoCorr},
	} {
		s := statstime.Calculate(row.values)
		fmt.Fprintf(tw, "%s\t%d\t%.4f\t%.4f\t%.4f\t%.4f\t%d\n",
			row.name, s.Length, s.Mean, s.RMS, s.Peak, s.Variance, s.ZeroCrossings)
	}
	tw.Flush()
	fmt.Println()
}

func printSpectrumStats(res *psd.Result) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Spectrum\tBins\tPeak\tPeak Freq [Hz]\tCentroid [Hz]\tFlatness\tRolloff [Hz]\n")
	fmt.Fprintf(tw, "--------\t----\t----\t--------------\t-------------\t--------\t------------\n")

	for _, row := range []struct {
		name string
		sp   *spectrum.OneSided
	}{
		{"deterministic", res.DeterministicSpectrum},
		{"noisy", res.NoisySpectrum},
		{"autocorr", res.AutoCorrSpectrum},
	} {
		s := frequency.CalculateFromComplex(row.sp.Frequencies, row.sp.Bins)
		fmt.Fprintf(tw, "%s\t%d\t%.4f\t%.3f\t%.3f\t%.4f\t%.3f\n",
			row.name, s.BinCount, s.Max, s.PeakFreq, s.Centroid, s.Flatness, s.Rolloff)
	}
	tw.Flush()
	fmt.Println()
}

func writeTimeCSV(path string, res *psd.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"time", "deterministic", "noisy", "lag", "autocorr"}); err != nil {
		return err
	}
	for i := range res.Time {
		record := []string{
			formatFloat(res.Time[i]),
			formatFloat(res.Deterministic[i]),
			formatFloat(res.Noisy[i]),
			formatFloat(res.Lags[i]),
			formatFloat(res.AutoCorr[i]),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()

	return w.Error()
}

func writeSpectrumCSV(path string, res *psd.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	detMag := res.DeterministicSpectrum.Magnitudes()
	noisyMag := res.NoisySpectrum.Magnitudes()
	noisyPhase := spectrum.Phase(res.NoisySpectrum.Bins)
	corrMag := res.AutoCorrSpectrum.Magnitudes()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"frequency", "deterministic", "noisy", "noisy_phase", "autocorr"}); err != nil {
		return err
	}
	for i := range res.NoisySpectrum.Frequencies {
		record := []string{
			formatFloat(res.NoisySpectrum.Frequencies[i]),
			formatFloat(detMag[i]),
			formatFloat(noisyMag[i]),
			formatFloat(noisyPhase[i]),
			formatFloat(corrMag[i]),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()

	return w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func writeChart(config *Config, res *psd.Result) error {
	r := render.NewRenderer(render.Config{
		PanelWidth:  config.PanelWidth,
		PanelHeight: config.PanelHeight,
	})

	panels := []render.Panel{
		{
			Title:  "Deterministic signal",
			XLabel: "Time [s]",
			X:      res.Time,
			Y:      res.Deterministic,
		},
		{
			Title:  "Deterministic spectrum",
			XLabel: "Frequency [Hz]",
			X:      res.DeterministicSpectrum.Frequencies,
			Y:      res.DeterministicSpectrum.Magnitudes(),
		},
		{
			Title:  "Noisy signal",
			XLabel: "Time [s]",
			X:      res.Time,
			Y:      res.Noisy,
		},
		{
			Title:  "Noisy spectrum",
			XLabel: "Frequency [Hz]",
			X:      res.NoisySpectrum.Frequencies,
			Y:      res.NoisySpectrum.Magnitudes(),
		},
		{
			Title:  "Autocorrelation",
			XLabel: "Lag [s]",
			X:      res.Lags,
			Y:      res.AutoCorr,
		},
		{
			Title:  "Autocorrelation spectrum",
			XLabel: "Frequency [Hz]",
			X:      res.AutoCorrSpectrum.Frequencies,
			Y:      res.AutoCorrSpectrum.Magnitudes(),
		},
	}

	img, err := r.Render(panels)
	if err != nil {
		return err
	}

	out, err := os.Create(config.OutputFile)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := png.Encode(out, img); err != nil {
		return err
	}

	return out.Close()
}
