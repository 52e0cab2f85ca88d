// SPDX-License-Identifier: MIT
// Package: peakfinder/synth
//
// chirp.go - linear frequency sweep.
//
// Model:
//   - fᵢ  = f0 + (f1 − f0)·i/(n−1)   (cycles/sample)
//   - θᵢ₊₁ = θᵢ + 2π·fᵢ               (phase accumulator)
//   - yᵢ  = A·sin(θᵢ) + trend·i + offset + noise

package synth

import "math"

const tau = 2 * math.Pi

// Chirp returns n samples sweeping from WithFrequency (f0) to
// WithChirpEnd (f1).
//
// Errors:
//   - ErrBadSize if n < 1.
func Chirp(n int, opts ...Option) ([]float64, error) {
	if n < 1 {
		return nil, synthErrorf(MethodChirp, ErrBadSize, "n must be ≥ 1, got %d", n)
	}

	cfg := newSynthConfig(opts...)
	rng := cfg.source()
	out := make([]float64, n)

	theta := 0.0
	var t, fi float64
	for i := 0; i < n; i++ {
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		fi = cfg.frequency + (cfg.chirpEnd-cfg.frequency)*t
		theta += tau * fi

		out[i] = cfg.finish(cfg.amplitude*math.Sin(theta), i, rng)
	}

	return out, nil
}
