// SPDX-License-Identifier: MIT
// Package: peakfinder/peaks
//
// scan.go - the single-pass peak scanning state machine.
//
// States (which points of the working peak are set):
//
//	state               left  summit  right
//	stateEmpty           -      -       -
//	stateSeekingSummit   ✓      -       -
//	stateSeekingRight    ✓      ✓       -
//	stateDescending      ✓      ✓       ✓
//
// Transitions for sample (x, y):
//
//	y <  threshold:
//	  Descending, y <= right.y  → right = (x, y)
//	  Descending, y >  right.y  → finalize, → Empty
//	  Empty / SeekingSummit     → left = (x, y), → SeekingSummit
//	  SeekingRight              → right = (x, y), → Descending
//	y >= threshold:
//	  Empty                     → left = (x, y), → SeekingSummit
//	  SeekingSummit             → summit = (x, y), → SeekingRight
//	  SeekingRight / Descending → if y >= summit.y: summit = (x, y),
//	                              right cleared, → SeekingRight
//
// A right trough always implies a left trough, so there is no state in
// which a sample at or above the threshold finalizes a peak.

package peaks

// scanState is the phase of the working peak.
type scanState uint8

const (
	stateEmpty scanState = iota
	stateSeekingSummit
	stateSeekingRight
	stateDescending
)

// String names the state for test failures and debugging.
func (s scanState) String() string {
	switch s {
	case stateEmpty:
		return "empty"
	case stateSeekingSummit:
		return "seeking-summit"
	case stateSeekingRight:
		return "seeking-right"
	case stateDescending:
		return "descending"
	default:
		return "unknown"
	}
}

// scanner carries the working peak through one pass.
//
// lpos/rpos are the positions of the troughs in the scanned series; for
// plain sample slices they equal the point indices, for point lines they
// may differ.
type scanner struct {
	cfg       scanConfig
	threshold float64
	area      func(lpos, rpos int) float64

	state      scanState
	work       Peak
	lpos, rpos int

	out []Peak
}

func newScanner(threshold float64, cfg scanConfig, area func(lpos, rpos int) float64) *scanner {
	return &scanner{
		cfg:       cfg,
		threshold: threshold,
		area:      area,
		out:       make([]Peak, 0),
	}
}

// step feeds the sample at position pos. It returns true once the scan
// may stop early (WithMaxPeaks reached).
func (s *scanner) step(pos int, pt Point) bool {
	if s.cfg.zeroIndexUnset && pt.Index == 0 {
		return false
	}

	if pt.Value < s.threshold {
		switch s.state {
		case stateDescending:
			if pt.Value <= s.work.RightTrough.Value {
				// still descending
				s.work.RightTrough, s.rpos = pt, pos
				return false
			}
			// rising again: the right trough is confirmed
			return s.finalize()
		case stateSeekingRight:
			// tentative right trough, may move further down
			s.work.RightTrough, s.rpos = pt, pos
			s.state = stateDescending
		default:
			// a lower floor replaces any previous left trough
			s.work.LeftTrough, s.lpos = pt, pos
			s.state = stateSeekingSummit
		}
		return false
	}

	switch s.state {
	case stateEmpty:
		// first sample may already sit above the threshold
		s.work.LeftTrough, s.lpos = pt, pos
		s.state = stateSeekingSummit
	case stateSeekingSummit:
		s.work.Summit = pt
		s.state = stateSeekingRight
	default:
		if pt.Value >= s.work.Summit.Value {
			s.work.Summit = pt
			s.work.RightTrough, s.rpos = Point{}, 0
			s.state = stateSeekingRight
		}
	}

	return false
}

// finalize measures and emits the working peak and resets to stateEmpty.
func (s *scanner) finalize() bool {
	p := s.work
	p.Area = s.area(s.lpos, s.rpos)

	s.work, s.lpos, s.rpos = Peak{}, 0, 0
	s.state = stateEmpty

	if s.cfg.hasMinArea && p.Area < s.cfg.minArea {
		return false
	}
	s.out = append(s.out, p)

	return s.cfg.maxPeaks > 0 && len(s.out) >= s.cfg.maxPeaks
}

// FindPeaksOverThreshold returns the peaks of data whose summit is at or
// above threshold, in scan order (ascending Summit.Index).
//
// Every sample is visited once. A peak is emitted only when the descent
// after its right trough reverses; a peak still open when data ends is
// discarded. Point indices are positions in data.
//
// The function never fails and never modifies data. The result is a
// fresh, non-nil slice.
//
// Complexity: O(n) time, O(1) working state plus O(p) for p peaks.
func FindPeaksOverThreshold(data []float64, threshold float64, opts ...Option) []Peak {
	s := newScanner(threshold, newScanConfig(opts...), func(l, r int) float64 {
		return trapezoid(len(data), l, r, func(i int) float64 { return data[i] })
	})

	for x, y := range data {
		if s.step(x, Point{Index: x, Value: y}) {
			break
		}
	}

	return s.out
}
