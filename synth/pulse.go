// SPDX-License-Identifier: MIT
// Package: peakfinder/synth
//
// pulse.go - rectangular/triangular pulse train.
//
// Shape per sample i with phase frac = (i·f0) mod 1:
//   • rectangular: A when frac < duty, 0 otherwise
//   • triangular:  A·(1 − |2·frac − 1|), no trig
// then trend, offset and noise are added (see synthConfig.finish).

package synth

import "math"

// Pulse returns n samples of a pulse train.
//
// Errors:
//   - ErrBadSize if n < 1.
//
// Complexity: O(n) time, O(n) memory.
func Pulse(n int, opts ...Option) ([]float64, error) {
	if n < 1 {
		return nil, synthErrorf(MethodPulse, ErrBadSize, "n must be ≥ 1, got %d", n)
	}

	cfg := newSynthConfig(opts...)
	rng := cfg.source()
	out := make([]float64, n)

	var frac, base float64
	for i := 0; i < n; i++ {
		frac = math.Mod(float64(i)*cfg.frequency, 1)

		if cfg.triangular {
			base = cfg.amplitude * (1 - math.Abs(2*frac-1))
		} else if frac < cfg.duty {
			base = cfg.amplitude
		} else {
			base = 0
		}

		out[i] = cfg.finish(base, i, rng)
	}

	return out, nil
}
