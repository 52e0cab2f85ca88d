// SPDX-License-Identifier: MIT
// Package: peakfinder/stats
//
// errors.go - sentinel errors for the stats package.
//
// Callers MUST use errors.Is(err, ErrX); returned errors carry the
// operation name as a prefix ("Variance: stats: ...").

package stats

import (
	"errors"
	"fmt"
)

// ErrEmptyInput indicates that a reduction received no samples.
var ErrEmptyInput = errors.New("stats: input must be non-empty")

// ErrTooFewSamples indicates that a spread statistic received fewer than
// two samples, for which the n−1 divisor is zero.
var ErrTooFewSamples = errors.New("stats: at least two samples are required")

// Operation names used as error context.
const (
	opAverage           = "Average"
	opVariance          = "Variance"
	opStandardDeviation = "StandardDeviation"
	opMeanStdDev        = "MeanStdDev"
)

// statsErrorf prefixes err with the operation name, keeping the sentinel
// reachable through errors.Is.
func statsErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
