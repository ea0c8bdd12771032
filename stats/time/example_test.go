package time_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/stats/time"
)

func ExampleCalculate() {
	s := time.Calculate([]float64{1, -1, 3, -3})

	fmt.Printf("mean: %.1f\n", s.Mean)
	fmt.Printf("peak: %.1f\n", s.Peak)
	fmt.Printf("energy: %.1f\n", s.Energy)
	fmt.Printf("zero crossings: %d\n", s.ZeroCrossings)

	// Output:
	// mean: 0.0
	// peak: 3.0
	// energy: 20.0
	// zero crossings: 3
}
