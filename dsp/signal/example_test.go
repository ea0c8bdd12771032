package signal_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/dsp/signal"
)

func ExampleSynthesize() {
	p := signal.Params{
		F0: 2, F1: 3,
		A0: 1, A1: 0.5,
		NoiseAmp:   0.2,
		SampleRate: 20,
		Duration:   10,
	}

	deterministic, noisy, _ := signal.Synthesize(p, signal.NewNoiseSource(1))

	fmt.Printf("samples: %d\n", len(deterministic))
	fmt.Printf("deterministic[0]: %.2f\n", deterministic[0])
	fmt.Printf("noisy differs: %t\n", noisy[0] != deterministic[0])

	// Output:
	// samples: 200
	// deterministic[0]: 1.50
	// noisy differs: true
}

func ExampleHarmonic() {
	p := signal.Params{F0: 2, A0: 1, SampleRate: 20, Duration: 1}

	out, _ := signal.Harmonic(p)
	fmt.Printf("samples: %d, peak: %.1f\n", len(out), out[0])

	// Output:
	// samples: 20, peak: 1.0
}
