package psd

import (
	"errors"
	"sync"

	"github.com/cwbudde/algo-spectral/dsp/signal"
)

// ErrSuperseded is returned by Runner.Submit when a newer parameter set was
// submitted while the computation was in flight. The caller should drop the
// call's outcome; the newer submission will deliver its own result.
var ErrSuperseded = errors.New("psd: result superseded by newer parameters")

// Runner serializes pipeline recomputation for interactive callers.
//
// Each Submit call is tagged with a monotonically increasing sequence number.
// When racing submissions overlap, only the one holding the highest sequence
// number at completion time returns a result; the others report
// [ErrSuperseded]. This gives front ends a simple contract: fire Submit on
// every parameter change and render whatever comes back without error.
type Runner struct {
	mu  sync.Mutex
	seq uint64
	src signal.NoiseSource
}

// lockedSource serializes draws from an underlying noise source. Generator
// state is mutable, so overlapping submissions must not reach it concurrently.
type lockedSource struct {
	mu  sync.Mutex
	src signal.NoiseSource
}

func (s *lockedSource) NormFloat64() float64 {
	s.mu.Lock()
	v := s.src.NormFloat64()
	s.mu.Unlock()
	return v
}

// NewRunner returns a Runner drawing noise from src. The source is wrapped so
// that concurrent submissions take turns drawing from it. src may be nil if
// every submitted parameter set has a zero noise amplitude.
func NewRunner(src signal.NoiseSource) *Runner {
	if src != nil {
		src = &lockedSource{src: src}
	}
	return &Runner{src: src}
}

// Submit runs the pipeline for p and returns the result, unless a newer
// parameter set arrived in the meantime, in which case it returns
// [ErrSuperseded] and a nil result. Validation errors from the pipeline are
// passed through unchanged.
//
// Submit is safe for concurrent use.
func (r *Runner) Submit(p signal.Params) (*Result, error) {
	r.mu.Lock()
	r.seq++
	id := r.seq
	src := r.src
	r.mu.Unlock()

	res, err := Analyze(p, src)

	r.mu.Lock()
	latest := r.seq
	r.mu.Unlock()

	if id != latest {
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}
