package app

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-spectral/dsp/signal"
)

// Config holds everything one invocation needs: the synthesis parameters,
// the noise seed, and the output destinations.
type Config struct {
	Params signal.Params
	Seed   uint64

	OutputFile  string // PNG chart, required
	TimeCSV     string // optional time-domain dump
	SpectrumCSV string // optional spectrum dump

	PanelWidth  int
	PanelHeight int
	Verbose     bool
}

// paramsFile is the YAML form of the synthesis parameters.
type paramsFile struct {
	F0         float64 `yaml:"f0"`
	F1         float64 `yaml:"f1"`
	A0         float64 `yaml:"a0"`
	A1         float64 `yaml:"a1"`
	NoiseAmp   float64 `yaml:"noise_amp"`
	SampleRate float64 `yaml:"sample_rate"`
	Duration   float64 `yaml:"duration"`
	Seed       *uint64 `yaml:"seed,omitempty"`
}

// NewConfig returns a Config with the default demonstration parameters: two
// tones at 2 Hz and 5 Hz with half-amplitude noise, sampled at 20 Hz for
// ten seconds.
func NewConfig() *Config {
	return &Config{
		Params: signal.Params{
			F0: 2, F1: 5,
			A0: 1, A1: 1,
			NoiseAmp:   0.5,
			SampleRate: 20,
			Duration:   10,
		},
		Seed: 1,
	}
}

// NewConfigFromCLI parses flags, optionally merging a YAML parameter file.
// Explicitly set flags override file values.
func NewConfigFromCLI() (*Config, error) {
	c := NewConfig()

	var paramsPath string
	flag.StringVar(&paramsPath, "params", "", "Path to a YAML parameter file")
	flag.Float64Var(&c.Params.F0, "f0", c.Params.F0, "First tone frequency in Hz")
	flag.Float64Var(&c.Params.F1, "f1", c.Params.F1, "Second tone frequency in Hz")
	flag.Float64Var(&c.Params.A0, "a0", c.Params.A0, "First tone amplitude")
	flag.Float64Var(&c.Params.A1, "a1", c.Params.A1, "Second tone amplitude")
	flag.Float64Var(&c.Params.NoiseAmp, "noise", c.Params.NoiseAmp, "Gaussian noise amplitude")
	flag.Float64Var(&c.Params.SampleRate, "rate", c.Params.SampleRate, "Sample rate in Hz")
	flag.Float64Var(&c.Params.Duration, "duration", c.Params.Duration, "Signal duration in seconds")
	flag.Uint64Var(&c.Seed, "seed", c.Seed, "Noise generator seed")
	flag.StringVar(&c.OutputFile, "o", "", "Path to the output PNG file")
	flag.StringVar(&c.TimeCSV, "time-csv", "", "Optional path for a time-domain CSV dump")
	flag.StringVar(&c.SpectrumCSV, "spectrum-csv", "", "Optional path for a spectrum CSV dump")
	flag.IntVar(&c.PanelWidth, "panel-width", 0, "Panel width in pixels (0 for default)")
	flag.IntVar(&c.PanelHeight, "panel-height", 0, "Panel height in pixels (0 for default)")
	flag.BoolVar(&c.Verbose, "verbose", false, "Enable more verbose output")
	flag.Parse()

	if paramsPath != "" {
		// File values lose against flags the user typed out.
		fromFlags := c.Params
		seedFromFlags := c.Seed
		set := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

		if err := c.loadParamsFile(paramsPath); err != nil {
			return nil, err
		}

		if set["f0"] {
			c.Params.F0 = fromFlags.F0
		}
		if set["f1"] {
			c.Params.F1 = fromFlags.F1
		}
		if set["a0"] {
			c.Params.A0 = fromFlags.A0
		}
		if set["a1"] {
			c.Params.A1 = fromFlags.A1
		}
		if set["noise"] {
			c.Params.NoiseAmp = fromFlags.NoiseAmp
		}
		if set["rate"] {
			c.Params.SampleRate = fromFlags.SampleRate
		}
		if set["duration"] {
			c.Params.Duration = fromFlags.Duration
		}
		if set["seed"] {
			c.Seed = seedFromFlags
		}
	}

	if c.OutputFile == "" {
		flag.Usage()
		return nil, errors.New("output file is required")
	}
	if err := c.Params.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Config) loadParamsFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading parameter file: %w", err)
	}

	var pf paramsFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return fmt.Errorf("parsing parameter file: %w", err)
	}

	c.Params = signal.Params{
		F0: pf.F0, F1: pf.F1,
		A0: pf.A0, A1: pf.A1,
		NoiseAmp:   pf.NoiseAmp,
		SampleRate: pf.SampleRate,
		Duration:   pf.Duration,
	}
	if pf.Seed != nil {
		c.Seed = *pf.Seed
	}

	return nil
}
