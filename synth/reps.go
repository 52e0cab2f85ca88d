// SPDX-License-Identifier: MIT
// Package: peakfinder/synth
//
// reps.go - repeated exercise bumps (pull-ups, squats, ...).

package synth

// repTemplate is one repetition at unit amplitude: baseline dip, rise,
// summit, fall, undershoot and the bottom of the undershoot. Each rep
// starts above the previous rep's last sample, which is what confirms
// the previous peak to a threshold scanner.
var repTemplate = [...]float64{-1.0, 1.5, 3.0, 1.0, -0.5, -1.2}

// RepLen is the number of samples produced per repetition.
const RepLen = len(repTemplate)

// Reps returns reps·RepLen samples of repeated bumps scaled by
// WithAmplitude. With no trend, offset or noise, a threshold scan at 0
// reports reps−1 peaks: the last rep's descent is never confirmed.
//
// Errors:
//   - ErrBadSize if reps < 1.
func Reps(reps int, opts ...Option) ([]float64, error) {
	if reps < 1 {
		return nil, synthErrorf(MethodReps, ErrBadSize, "reps must be ≥ 1, got %d", reps)
	}

	cfg := newSynthConfig(opts...)
	rng := cfg.source()
	out := make([]float64, 0, reps*RepLen)

	for r := 0; r < reps; r++ {
		for _, v := range repTemplate {
			out = append(out, cfg.finish(cfg.amplitude*v, len(out), rng))
		}
	}

	return out, nil
}
