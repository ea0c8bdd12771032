// Package signal generates two-tone test signals with additive Gaussian noise.
//
// The central type is [Params], an immutable description of a synthesis run:
// two cosine components (frequency and amplitude each), a noise scale, sample
// rate, and duration. [Synthesize] turns a Params value into a pair of
// time-domain sequences, the noise-free deterministic part and the noisy
// composite:
//
//	x[i] = a0*cos(2π f0 t_i) + a1*cos(2π f1 t_i) + noiseAmp * N_i
//
// with t_i = i/sampleRate and N_i drawn from a standard normal distribution.
//
// Randomness is never ambient. Callers inject a [NoiseSource]; a *math/rand.Rand
// works directly, and [NewNoiseSource] builds a seedable source backed by
// gonum's normal distribution for reproducible runs.
package signal
