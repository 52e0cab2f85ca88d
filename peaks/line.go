// SPDX-License-Identifier: MIT
// Package: peakfinder/peaks
//
// line.go - scanners over explicit point lines.
//
// A line is a series whose samples carry their own x positions
// (e.g. a cropped window that keeps the original sample numbers).
// Reported points keep those indices; the area is still integrated with
// unit spacing over neighbouring line points between the two troughs.

package peaks

// FindPeaksInLineOverThreshold runs the scanner of FindPeaksOverThreshold
// over line. Transitions follow line order; the Index of each point is
// reported verbatim and is not required to be contiguous.
//
// Complexity: O(n) time, O(1) working state plus O(p) for p peaks.
func FindPeaksInLineOverThreshold(line []Point, threshold float64, opts ...Option) []Peak {
	s := newScanner(threshold, newScanConfig(opts...), func(l, r int) float64 {
		return trapezoid(len(line), l, r, func(i int) float64 { return line[i].Value })
	})

	for pos, pt := range line {
		if s.step(pos, pt) {
			break
		}
	}

	return s.out
}

// FindPeaksInLineOverStdDev derives the threshold from the values of line
// (mean + sigmas·stddev) and scans it.
//
// Errors:
//   - stats.ErrEmptyInput, stats.ErrTooFewSamples (fewer than two points).
func FindPeaksInLineOverStdDev(line []Point, sigmas float64, opts ...Option) ([]Peak, error) {
	values := make([]float64, len(line))
	for i, pt := range line {
		values[i] = pt.Value
	}

	threshold, err := StdDevThreshold(values, sigmas)
	if err != nil {
		return nil, peaksErrorf(opFindPeaksInLineOverStdDev, err)
	}

	return FindPeaksInLineOverThreshold(line, threshold, opts...), nil
}

// LineFromSamples numbers data from 0, producing the line equivalent of
// a plain sample slice.
func LineFromSamples(data []float64) []Point {
	line := make([]Point, len(data))
	for i, y := range data {
		line[i] = Point{Index: i, Value: y}
	}

	return line
}
