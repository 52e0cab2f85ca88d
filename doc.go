// Package peakfinder finds peaks in one-dimensional sample sequences,
// typically a single accelerometer axis recorded during exercise.
//
// 🚀 What is peakfinder?
//
//	A small, allocation-light library plus a command-line harness:
//		• Peak scan: one pass, threshold-driven, troughs and summit per peak
//		• Area: trapezoidal integral between the two troughs
//		• Statistics: mean, sample variance, standard deviation
//		• Adaptive threshold: mean + k·stddev of the data itself
//		• Recordings: timestamp,x,y,z CSV in and out
//		• Synthesis: deterministic pulse, chirp and repetition traces
//
// ✨ Why choose peakfinder?
//
//   - Total functions - the scanner never fails and never touches its input
//   - Explicit scan state - no sentinel values, sample 0 is a real sample
//   - Legacy mode - WithZeroIndexUnset reproduces the 1.x results
//
// Everything is organized under these subpackages:
//
//	peaks/         - Point, Peak, FindPeaksOverThreshold, FindPeaksOverStdDev
//	stats/         - Average, Variance, StandardDeviation
//	accel/         - Recording, ReadCSV, Decode, Encode
//	synth/         - Pulse, Chirp, Reps
//	cmd/peakfinder - scan, stats and synth commands
//
// Quick ASCII example (threshold ──):
//
//	        p
//	       / \
//	  ────/───\──────
//	     /     \   /
//	    l       r─
//
//	l is the left trough, p the summit, r the right trough. The peak is
//	reported once the signal rises again after r.
//
//	go get github.com/katalvlaran/peakfinder/peaks
package peakfinder
