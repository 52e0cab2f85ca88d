// SPDX-License-Identifier: MIT
// Package: peakfinder/peaks
//
// options.go - functional options for the scanners.
//
// Contract:
//   • Options are functional (type Option func(*scanConfig)), applied in
//     order; later options override earlier ones.
//   • Option constructors PANIC on meaningless input (negative counts,
//     NaN areas). The scanners themselves never panic.
//   • The zero configuration reproduces the plain state machine: every
//     finalized peak is reported.

package peaks

import "math"

// Option customizes a scan.
type Option func(*scanConfig)

// scanConfig is resolved once per call and passed by value.
type scanConfig struct {
	zeroIndexUnset bool    // legacy: samples at index 0 never change state
	minArea        float64 // drop finalized peaks with Area < minArea
	hasMinArea     bool    // minArea is active
	maxPeaks       int     // stop after this many peaks; 0 means unlimited
}

// newScanConfig applies opts over the defaults.
func newScanConfig(opts ...Option) scanConfig {
	var cfg scanConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithZeroIndexUnset makes the scanner ignore samples whose index is 0.
//
// Older PeakFinder builds stored "not set" as index 0, so the first
// sample could never become a trough or summit. Use this option to
// reproduce their output exactly.
func WithZeroIndexUnset() Option {
	return func(c *scanConfig) {
		c.zeroIndexUnset = true
	}
}

// WithMinArea discards finalized peaks whose area is below a.
// Panics if a is NaN.
func WithMinArea(a float64) Option {
	if math.IsNaN(a) {
		panic("peaks: WithMinArea(NaN)")
	}
	return func(c *scanConfig) {
		c.minArea = a
		c.hasMinArea = true
	}
}

// WithMaxPeaks stops the scan once n peaks have been reported.
// Panics if n < 0; n == 0 means unlimited.
func WithMaxPeaks(n int) Option {
	if n < 0 {
		panic("peaks: WithMaxPeaks(n<0)")
	}
	return func(c *scanConfig) {
		c.maxPeaks = n
	}
}
