// SPDX-License-Identifier: MIT
// Package: peakfinder/peaks
//
// stddev.go - threshold derived from the sample population.

package peaks

import "github.com/katalvlaran/peakfinder/stats"

// StdDevThreshold returns mean(data) + sigmas·stddev(data), using the
// sample (n−1) standard deviation. sigmas may be any real number; a
// negative value puts the threshold below the mean.
//
// Errors:
//   - stats.ErrEmptyInput, stats.ErrTooFewSamples (fewer than two samples).
func StdDevThreshold(data []float64, sigmas float64) (float64, error) {
	mean, err := stats.Average(data)
	if err != nil {
		return 0, peaksErrorf(opStdDevThreshold, err)
	}
	sd, err := stats.StandardDeviation(data, mean)
	if err != nil {
		return 0, peaksErrorf(opStdDevThreshold, err)
	}

	return mean + sigmas*sd, nil
}

// FindPeaksOverStdDev is FindPeaksOverThreshold with the threshold taken
// from StdDevThreshold(data, sigmas).
//
// Errors:
//   - stats.ErrEmptyInput, stats.ErrTooFewSamples (fewer than two samples).
func FindPeaksOverStdDev(data []float64, sigmas float64, opts ...Option) ([]Peak, error) {
	threshold, err := StdDevThreshold(data, sigmas)
	if err != nil {
		return nil, peaksErrorf(opFindPeaksOverStdDev, err)
	}

	return FindPeaksOverThreshold(data, threshold, opts...), nil
}
