// SPDX-License-Identifier: MIT
// Package: peakfinder/peaks
//
// types.go - Point and Peak records plus area-based ordering helpers.

package peaks

import (
	"cmp"
	"fmt"
	"slices"
)

// Point is one sample position and its value.
type Point struct {
	Index int     // position in the series (0-based)
	Value float64 // sample value at Index
}

// Equal reports whether both coordinates match exactly.
func (p Point) Equal(o Point) bool {
	return p.Index == o.Index && p.Value == o.Value
}

// String renders the point as "(index, value)".
func (p Point) String() string {
	return fmt.Sprintf("(%d, %g)", p.Index, p.Value)
}

// Peak is a summit bounded by a left and a right trough.
//
// For every peak returned by this package:
//
//	LeftTrough.Index <= Summit.Index <= RightTrough.Index
//
// and Area is the trapezoidal integral over [LeftTrough.Index, RightTrough.Index].
type Peak struct {
	LeftTrough  Point
	Summit      Point
	RightTrough Point
	Area        float64
}

// Equal reports whether the three points of p and o match. Area is not
// compared: it is derived from the points and the series.
func (p Peak) Equal(o Peak) bool {
	return p.LeftTrough.Equal(o.LeftTrough) &&
		p.Summit.Equal(o.Summit) &&
		p.RightTrough.Equal(o.RightTrough)
}

// Less orders peaks by area only.
func (p Peak) Less(o Peak) bool { return p.Area < o.Area }

// Greater orders peaks by area only.
func (p Peak) Greater(o Peak) bool { return p.Area > o.Area }

// Width is the number of index steps between the two troughs.
func (p Peak) Width() int {
	return p.RightTrough.Index - p.LeftTrough.Index
}

// String renders "{ left, summit, right, area }".
func (p Peak) String() string {
	return fmt.Sprintf("{ %s, %s, %s, %g }", p.LeftTrough, p.Summit, p.RightTrough, p.Area)
}

// SortByArea sorts peaks in place by ascending area. Equal areas keep
// their scan order.
func SortByArea(peaks []Peak) {
	slices.SortStableFunc(peaks, func(a, b Peak) int {
		return cmp.Compare(a.Area, b.Area)
	})
}

// Largest returns the peak with the greatest area; the earliest one wins
// ties. ok is false for an empty slice.
func Largest(peaks []Peak) (best Peak, ok bool) {
	for i, p := range peaks {
		if i == 0 || p.Greater(best) {
			best = p
		}
	}

	return best, len(peaks) > 0
}
