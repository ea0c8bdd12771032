// Command spectra synthesizes a two-tone signal with additive Gaussian
// noise, computes its autocorrelation and single-sided spectra, and renders
// the results as a multi-panel chart.
//
// Usage:
//
//	spectra -o out.png
//	spectra -f0 2 -f1 5 -noise 0.5 -o out.png
//	spectra -params params.yaml -o out.png -spectrum-csv spectra.csv
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-spectral/cmd/spectra/app"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	config, err := app.NewConfigFromCLI()
	if err != nil {
		logger.Error().Err(err).Msg("invalid configuration")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, config, logger); err != nil {
		logger.Error().Err(err).Msg("run failed")

		cancel()
		os.Exit(1)
	}
}
