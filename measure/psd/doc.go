// Package psd runs the power-spectrum analysis pipeline for two-tone signals
// with additive noise, demonstrating the Wiener–Khinchin correspondence
// between the direct spectrum of a signal and the spectrum of its
// autocorrelation.
//
// One [Analyze] call produces six arrays from a single parameter set: the
// deterministic and noisy time-domain signals, the peak-normalized centered
// autocorrelation of the noisy signal, and the single-sided spectra of all
// three. Everything is computed fresh per invocation; the package holds no
// state between runs.
//
// For interactive front ends where parameter changes can race (rapid slider
// movement), [Runner] serializes recomputation and guarantees that only the
// most recently submitted parameter set produces a delivered result; stale
// in-flight computations are discarded.
package psd
