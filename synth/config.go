// SPDX-License-Identifier: MIT
// Package: peakfinder/synth
//
// config.go - resolved generator configuration and deterministic defaults.
//
// Design:
//   • synthConfig is the single source of truth for all generator knobs.
//   • newSynthConfig applies options in order (later overrides earlier).
//   • Defaults are documented constants; there is no global state.

package synth

import "math/rand"

// Deterministic defaults.
const (
	defaultAmplitude = 1.0   // waveform scale A (>0)
	defaultFrequency = 0.125 // cycles/sample for Pulse; start frequency for Chirp
	defaultChirpEnd  = 0.25  // end frequency for Chirp (cycles/sample)
	defaultDuty      = 0.5   // rectangular duty cycle in [0,1]
	defaultTrend     = 0.0   // linear increment per sample
	defaultOffset    = 0.0   // constant added to every sample
	defaultNoise     = 0.0   // Gaussian sigma; 0 disables noise
	defaultSeed      = 1     // seed used when noise is on and no RNG was given
)

// synthConfig aggregates all generator knobs. Passed by value.
type synthConfig struct {
	amplitude  float64
	frequency  float64
	chirpEnd   float64
	duty       float64
	triangular bool
	trend      float64
	offset     float64
	noiseSigma float64
	rng        *rand.Rand
}

// newSynthConfig starts from the defaults and applies opts in order.
func newSynthConfig(opts ...Option) synthConfig {
	cfg := synthConfig{
		amplitude:  defaultAmplitude,
		frequency:  defaultFrequency,
		chirpEnd:   defaultChirpEnd,
		duty:       defaultDuty,
		trend:      defaultTrend,
		offset:     defaultOffset,
		noiseSigma: defaultNoise,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// source returns the configured RNG or a fresh one seeded with defaultSeed.
func (c synthConfig) source() *rand.Rand {
	if c.rng != nil {
		return c.rng
	}

	return rand.New(rand.NewSource(defaultSeed))
}

// finish applies trend, offset and noise to a base sample at index i.
func (c synthConfig) finish(base float64, i int, rng *rand.Rand) float64 {
	v := base + c.offset + c.trend*float64(i)
	if c.noiseSigma > 0 {
		v += c.noiseSigma * rng.NormFloat64()
	}

	return v
}
