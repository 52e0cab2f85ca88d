// SPDX-License-Identifier: MIT
// Package: peakfinder/stats
//
// stats.go - mean, sample variance and standard deviation.
//
// Contract:
//   - Inputs are never modified.
//   - Variance uses the n−1 divisor (sample variance); the mean is passed
//     in so one Average pass can feed several spread computations.
//   - NaN/Inf samples propagate; sanitize upstream if that is undesired.

package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// minSpreadSamples is the smallest population with a defined n−1 variance.
const minSpreadSamples = 2

// Average returns the arithmetic mean of data.
//
// Errors:
//   - ErrEmptyInput if len(data) == 0.
//
// Complexity: O(n) time, O(1) space.
func Average(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, statsErrorf(opAverage, ErrEmptyInput)
	}

	return floats.Sum(data) / float64(len(data)), nil
}

// Variance returns the sample variance of data around mean:
//
//	Σ (x − mean)² / (n − 1)
//
// Errors:
//   - ErrTooFewSamples if len(data) < 2.
//
// Complexity: O(n) time, O(1) space.
func Variance(data []float64, mean float64) (float64, error) {
	n := len(data)
	if n < minSpreadSamples {
		return 0, statsErrorf(opVariance, ErrTooFewSamples)
	}

	var numerator, d float64
	for _, x := range data {
		d = x - mean
		numerator += d * d
	}

	return numerator / float64(n-1), nil
}

// StandardDeviation returns the square root of Variance(data, mean).
//
// Errors:
//   - ErrTooFewSamples if len(data) < 2.
func StandardDeviation(data []float64, mean float64) (float64, error) {
	v, err := Variance(data, mean)
	if err != nil {
		return 0, statsErrorf(opStandardDeviation, err)
	}

	return math.Sqrt(v), nil
}

// MeanStdDev returns the mean and sample standard deviation of data.
//
// Errors:
//   - ErrEmptyInput for no samples, ErrTooFewSamples for a single one.
func MeanStdDev(data []float64) (mean, stddev float64, err error) {
	if mean, err = Average(data); err != nil {
		return 0, 0, statsErrorf(opMeanStdDev, err)
	}
	if stddev, err = StandardDeviation(data, mean); err != nil {
		return 0, 0, statsErrorf(opMeanStdDev, err)
	}

	return mean, stddev, nil
}
