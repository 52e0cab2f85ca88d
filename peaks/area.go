// SPDX-License-Identifier: MIT
// Package: peakfinder/peaks
//
// area.go - trapezoidal integration between a peak's troughs.

package peaks

// trapezoidHalf is the ½ in ½·(y[i] + y[i−1]).
const trapezoidHalf = 0.5

// ComputeArea returns the trapezoidal integral of data over the closed
// index interval [p.LeftTrough.Index, p.RightTrough.Index]:
//
//	Σ ½·(data[i] + data[i−1])   for i = left+1 … right
//
// An empty or inverted interval (left >= right) has area 0. Indices that
// fall outside data are clipped, so a hand-built peak never panics.
//
// Complexity: O(right − left) time, O(1) space.
func ComputeArea(data []float64, p Peak) float64 {
	return trapezoid(len(data), p.LeftTrough.Index, p.RightTrough.Index, func(i int) float64 {
		return data[i]
	})
}

// ComputeArea stores ComputeArea(data, *p) in p.Area and returns it.
func (p *Peak) ComputeArea(data []float64) float64 {
	p.Area = ComputeArea(data, *p)

	return p.Area
}

// trapezoid integrates value(i) over positions [left, right] of a
// series of length n with unit spacing.
func trapezoid(n, left, right int, value func(int) float64) float64 {
	if left >= right {
		return 0
	}

	start := left + 1
	if start < 1 {
		start = 1
	}
	end := right
	if end > n-1 {
		end = n - 1
	}

	area := 0.0
	for i := start; i <= end; i++ {
		area += trapezoidHalf * (value(i) + value(i-1))
	}

	return area
}
