// SPDX-License-Identifier: MIT
// Package: peakfinder/synth
//
// options.go - functional options for the generators.
//
// Contract:
//   • Options are functional (type Option func(*synthConfig)).
//   • Constructors VALIDATE and PANIC on meaningless inputs; generators
//     themselves never panic.
//   • Determinism is explicit: seed with WithSeed or WithRand.

package synth

import (
	"math"
	"math/rand"
)

// Option customizes a generator.
type Option func(*synthConfig)

// WithAmplitude sets the waveform scale A. Panics if A <= 0 or NaN.
func WithAmplitude(A float64) Option {
	if !(A > 0) {
		panic("synth: WithAmplitude(A<=0)")
	}
	return func(c *synthConfig) {
		c.amplitude = A
	}
}

// WithFrequency sets the base frequency f0 in cycles/sample (the start
// frequency for Chirp). Panics if f0 <= 0 or NaN.
func WithFrequency(f0 float64) Option {
	if !(f0 > 0) {
		panic("synth: WithFrequency(f0<=0)")
	}
	return func(c *synthConfig) {
		c.frequency = f0
	}
}

// WithChirpEnd sets the end frequency f1 of a Chirp. Panics if f1 <= 0 or NaN.
func WithChirpEnd(f1 float64) Option {
	if !(f1 > 0) {
		panic("synth: WithChirpEnd(f1<=0)")
	}
	return func(c *synthConfig) {
		c.chirpEnd = f1
	}
}

// WithDuty sets the rectangular duty cycle. Panics outside [0,1].
func WithDuty(duty float64) Option {
	if !(duty >= 0 && duty <= 1) {
		panic("synth: WithDuty(duty∉[0,1])")
	}
	return func(c *synthConfig) {
		c.duty = duty
	}
}

// WithTriangular switches Pulse to a triangular envelope.
func WithTriangular() Option {
	return func(c *synthConfig) {
		c.triangular = true
	}
}

// WithTrend adds k·i to sample i. Any finite k is accepted.
func WithTrend(k float64) Option {
	if math.IsNaN(k) || math.IsInf(k, 0) {
		panic("synth: WithTrend(non-finite)")
	}
	return func(c *synthConfig) {
		c.trend = k
	}
}

// WithOffset adds a constant to every sample.
func WithOffset(dc float64) Option {
	if math.IsNaN(dc) || math.IsInf(dc, 0) {
		panic("synth: WithOffset(non-finite)")
	}
	return func(c *synthConfig) {
		c.offset = dc
	}
}

// WithNoise adds Gaussian noise with standard deviation sigma.
// Panics if sigma < 0 or NaN.
func WithNoise(sigma float64) Option {
	if !(sigma >= 0) {
		panic("synth: WithNoise(sigma<0)")
	}
	return func(c *synthConfig) {
		c.noiseSigma = sigma
	}
}

// WithSeed seeds a private RNG for noise draws.
func WithSeed(seed int64) Option {
	return func(c *synthConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand shares an explicit RNG across generators. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("synth: WithRand(nil)")
	}
	return func(c *synthConfig) {
		c.rng = r
	}
}
