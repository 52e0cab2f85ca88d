// SPDX-License-Identifier: MIT
// Package: peakfinder/accel

package accel

import "errors"

var (
	// ErrMalformedRecord indicates a row with too few fields or a field
	// that is not a number.
	ErrMalformedRecord = errors.New("accel: malformed record")

	// ErrUnknownAxis indicates an axis name other than x, y or z.
	ErrUnknownAxis = errors.New("accel: unknown axis")

	// ErrLengthMismatch indicates columns of different lengths.
	ErrLengthMismatch = errors.New("accel: column lengths differ")

	// ErrNoSamples indicates a file without any data rows.
	ErrNoSamples = errors.New("accel: no samples")
)
