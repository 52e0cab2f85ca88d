// SPDX-License-Identifier: MIT
// Package: peakfinder/accel
//
// recording.go - in-memory three-axis recording.

package accel

import (
	"fmt"
	"strings"
)

// Axis names in column order.
const (
	AxisX = "x"
	AxisY = "y"
	AxisZ = "z"
)

// Recording holds the columns of one CSV file. All slices have equal length.
type Recording struct {
	Timestamps []float64
	X          []float64
	Y          []float64
	Z          []float64
}

// NewRecording builds a recording from equal-length columns. The slices
// are used as is, not copied.
func NewRecording(ts, x, y, z []float64) (*Recording, error) {
	r := &Recording{Timestamps: ts, X: x, Y: y, Z: z}
	if err := r.validate(); err != nil {
		return nil, err
	}

	return r, nil
}

// validate checks that every column has the timestamp column's length.
func (r *Recording) validate() error {
	n := len(r.Timestamps)
	if len(r.X) != n || len(r.Y) != n || len(r.Z) != n {
		return fmt.Errorf("%w: timestamps=%d x=%d y=%d z=%d", ErrLengthMismatch, n, len(r.X), len(r.Y), len(r.Z))
	}

	return nil
}

// Len returns the number of samples.
func (r *Recording) Len() int { return len(r.Timestamps) }

// Axes lists the axis names in column order.
func (r *Recording) Axes() []string { return []string{AxisX, AxisY, AxisZ} }

// Axis returns the column for name (case-insensitive "x", "y" or "z").
func (r *Recording) Axis(name string) ([]float64, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case AxisX:
		return r.X, nil
	case AxisY:
		return r.Y, nil
	case AxisZ:
		return r.Z, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAxis, name)
	}
}

// append adds one row.
func (r *Recording) append(ts, x, y, z float64) {
	r.Timestamps = append(r.Timestamps, ts)
	r.X = append(r.X, x)
	r.Y = append(r.Y, y)
	r.Z = append(r.Z, z)
}
