// Package peaks finds threshold-crossing peaks in a one-dimensional series
// of samples and measures the area under each of them.
//
// 🚀 What is a peak here?
//
//	A peak is three points and a number:
//	  • LeftTrough  - where the rise starts
//	  • Summit      - the highest sample at or above the threshold
//	  • RightTrough - the lowest sample of the descent that follows
//	  • Area        - trapezoidal integral of the samples between the troughs
//
//	            Summit
//	              ●
//	             / \
//	  ----------/---\------------ threshold
//	           /     \
//	  ●───────●       ●──●
//	  LeftTrough   RightTrough
//
// ✨ Key features:
//   - single forward pass, no backtracking: O(n) time, O(1) working state
//   - explicit four-state scanner (empty → seeking summit → seeking right
//     trough → descending)
//   - fixed threshold (FindPeaksOverThreshold) or mean + k·σ
//     (FindPeaksOverStdDev)
//   - point-line variants for series that carry their own x positions
//
// ⚠️ Open peaks are dropped:
//
//	A peak is reported only after the descent past its right trough is
//	seen to reverse. A peak still rising, at its summit, or still
//	descending when the input ends is silently discarded. A flat tail
//	counts as descending (y <= right trough), so [0, 0, 5, 0, 0] with a
//	threshold of 1 reports nothing.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/peakfinder/peaks"
//
//	found := peaks.FindPeaksOverThreshold(samples, 0.0)
//	for _, p := range found {
//	  fmt.Println(p.Summit.Index, p.Area)
//	}
//
//	// or derive the threshold from the population
//	found, err := peaks.FindPeaksOverStdDev(samples, 1.5)
//
// Compatibility:
//
//	Earlier PeakFinder releases used index 0 as "not set", so the first
//	sample could never seed a candidate. WithZeroIndexUnset restores that
//	behavior for byte-for-byte comparisons with old results.
package peaks
