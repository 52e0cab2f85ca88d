// Package synth generates deterministic one-dimensional waveforms for
// tests, demos and fixtures of the peak scanner.
//
// Generators:
//
//   - Pulse - rectangular or triangular pulse train
//   - Chirp - linear frequency sweep (sine)
//   - Reps  - repeated exercise-like bumps (baseline, rise, summit,
//     fall, undershoot), one closed peak per repetition boundary
//
// Every generator returns ([]float64, error), validates the requested
// length (ErrBadSize) and is configured with functional options:
//
//	y, err := synth.Pulse(256,
//	  synth.WithAmplitude(2),
//	  synth.WithTriangular(),
//	  synth.WithNoise(0.05),
//	  synth.WithSeed(42),
//	)
//
// Option constructors panic on meaningless values (A<=0, sigma<0, duty
// outside [0,1], nil RNG). Generators never panic. Output is fully
// determined by the length and options: noise is drawn from the RNG set
// by WithSeed/WithRand, or from a fixed default seed.
package synth
