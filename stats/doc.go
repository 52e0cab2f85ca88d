// SPDX-License-Identifier: MIT

// Package stats provides the summary statistics used to derive a peak
// detection threshold from a sample population.
//
// What is here:
//
//   - Average            - arithmetic mean
//   - Variance           - sample variance with Bessel's correction (divisor n−1)
//   - StandardDeviation  - square root of Variance
//   - MeanStdDev         - both at once, for callers that need a threshold
//
// Preconditions are reported, never guessed: Average needs at least one
// sample (ErrEmptyInput) and Variance / StandardDeviation need at least
// two (ErrTooFewSamples). Callers branch with errors.Is.
//
// Complexity: every function is a single O(n) pass with O(1) extra memory.
//
//	mean, _ := stats.Average(samples)
//	sd, _ := stats.StandardDeviation(samples, mean)
//	threshold := mean + 2*sd
package stats
