// SPDX-License-Identifier: MIT
// Package: peakfinder/peaks
//
// errors.go - error context for the statistics-driven entry points.
//
// The scanners themselves never fail. Only the σ-threshold wrappers can
// return errors, and those are the stats sentinels (stats.ErrEmptyInput,
// stats.ErrTooFewSamples) wrapped with the operation name. Match them
// with errors.Is.

package peaks

import "fmt"

const (
	opStdDevThreshold           = "peaks.StdDevThreshold"
	opFindPeaksOverStdDev       = "peaks.FindPeaksOverStdDev"
	opFindPeaksInLineOverStdDev = "peaks.FindPeaksInLineOverStdDev"
)

func peaksErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
