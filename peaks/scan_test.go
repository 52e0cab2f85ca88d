package peaks_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/peakfinder/peaks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pt is a short constructor for expected points.
func pt(i int, v float64) peaks.Point { return peaks.Point{Index: i, Value: v} }

// TestFindPeaks_EmptyAndTiny verifies that degenerate inputs yield an
// empty, non-nil result.
func TestFindPeaks_EmptyAndTiny(t *testing.T) {
	for _, data := range [][]float64{nil, {}, {7}, {7, 7}} {
		got := peaks.FindPeaksOverThreshold(data, 1)
		assert.NotNil(t, got)
		assert.Empty(t, got, "input %v", data)
	}
}

// TestFindPeaks_BelowThreshold covers constant and monotonic data that
// never closes a peak.
func TestFindPeaks_BelowThreshold(t *testing.T) {
	assert.Empty(t, peaks.FindPeaksOverThreshold([]float64{0, 0, 0, 0, 0}, 1), "constant below")
	assert.Empty(t, peaks.FindPeaksOverThreshold([]float64{5, 4, 3, 2, 1}, 10), "decreasing below")
	assert.Empty(t, peaks.FindPeaksOverThreshold([]float64{5, 4, 3, 2, 1}, 3), "decreasing across")
	assert.Empty(t, peaks.FindPeaksOverThreshold([]float64{1, 2, 3, 4, 5}, 3), "increasing across")
}

// TestFindPeaks_IsolatedSpike checks one spike whose descent is
// confirmed by a rising sample.
func TestFindPeaks_IsolatedSpike(t *testing.T) {
	got := peaks.FindPeaksOverThreshold([]float64{0, 0, 5, 0, 0.5}, 1.0)
	require.Len(t, got, 1)

	p := got[0]
	assert.Equal(t, pt(1, 0), p.LeftTrough)
	assert.Equal(t, pt(2, 5), p.Summit)
	assert.Equal(t, pt(3, 0), p.RightTrough)
	assert.Equal(t, 5.0, p.Area, "0.5*(0+5) + 0.5*(5+0)")
}

// TestFindPeaks_FlatTailStaysOpen shows that an equal trailing sample
// extends the descent, so the spike is never confirmed.
func TestFindPeaks_FlatTailStaysOpen(t *testing.T) {
	assert.Empty(t, peaks.FindPeaksOverThreshold([]float64{0, 0, 5, 0, 0}, 1.0))
}

// TestFindPeaks_OpenAtEnd verifies that unconfirmed trailing candidates
// are dropped.
func TestFindPeaks_OpenAtEnd(t *testing.T) {
	assert.Empty(t, peaks.FindPeaksOverThreshold([]float64{0, 5, 0, 5}, 1.0), "ends on a new summit")
	assert.Empty(t, peaks.FindPeaksOverThreshold([]float64{0, 5, 6, 7}, 1.0), "ends rising")
	assert.Empty(t, peaks.FindPeaksOverThreshold([]float64{0, 5, 0, -1, -2}, 1.0), "ends descending")

	got := peaks.FindPeaksOverThreshold([]float64{0, 2, 0, -1, 0, 0, 3, 0}, 1.0)
	require.Len(t, got, 1, "second spike is still open")
	assert.Equal(t, 1, got[0].Summit.Index)
}

// TestFindPeaks_TwoPeaks checks scan order and that the reversing sample
// is consumed by the finalization.
func TestFindPeaks_TwoPeaks(t *testing.T) {
	data := []float64{0, 2, 0, -1, 0, 0, 3, 0, 0.5}
	got := peaks.FindPeaksOverThreshold(data, 1.0)
	require.Len(t, got, 2)

	assert.Equal(t, pt(0, 0), got[0].LeftTrough)
	assert.Equal(t, pt(1, 2), got[0].Summit)
	assert.Equal(t, pt(3, -1), got[0].RightTrough)
	assert.InDelta(t, 1.5, got[0].Area, 1e-12)

	assert.Equal(t, pt(5, 0), got[1].LeftTrough, "index 4 confirmed the first peak")
	assert.Equal(t, pt(6, 3), got[1].Summit)
	assert.Equal(t, pt(7, 0), got[1].RightTrough)
	assert.InDelta(t, 3.0, got[1].Area, 1e-12)
}

// TestFindPeaks_PlateauSummit verifies that the last sample of a flat
// top becomes the summit (>= comparison).
func TestFindPeaks_PlateauSummit(t *testing.T) {
	got := peaks.FindPeaksOverThreshold([]float64{0, 3, 3, 3, 0, 1}, 2)
	require.Len(t, got, 1)
	assert.Equal(t, pt(3, 3), got[0].Summit)
	assert.Equal(t, pt(4, 0), got[0].RightTrough)
	assert.InDelta(t, 9.0, got[0].Area, 1e-12)
}

// TestFindPeaks_HigherSummitResetsDescent checks that a new, higher
// summit after a tentative right trough clears that trough.
func TestFindPeaks_HigherSummitResetsDescent(t *testing.T) {
	got := peaks.FindPeaksOverThreshold([]float64{0, 3, 0, 4, 0, 1}, 2)
	require.Len(t, got, 1)
	assert.Equal(t, pt(0, 0), got[0].LeftTrough)
	assert.Equal(t, pt(3, 4), got[0].Summit)
	assert.Equal(t, pt(4, 0), got[0].RightTrough)
	assert.InDelta(t, 7.0, got[0].Area, 1e-12)
}

// TestFindPeaks_LowerHumpIsAbsorbed checks that a lower re-rise above
// the threshold does not split the peak.
func TestFindPeaks_LowerHumpIsAbsorbed(t *testing.T) {
	got := peaks.FindPeaksOverThreshold([]float64{0, 4, 0, 3, -1, 0}, 2)
	require.Len(t, got, 1)
	assert.Equal(t, pt(1, 4), got[0].Summit)
	assert.Equal(t, pt(4, -1), got[0].RightTrough)
	assert.InDelta(t, 6.5, got[0].Area, 1e-12)
}

// TestFindPeaks_StartsAboveThreshold lets the first sample seed the
// left trough even though it never dipped below the threshold.
func TestFindPeaks_StartsAboveThreshold(t *testing.T) {
	got := peaks.FindPeaksOverThreshold([]float64{5, 6, 0, -1, 0}, 1)
	require.Len(t, got, 1)
	assert.Equal(t, pt(0, 5), got[0].LeftTrough)
	assert.Equal(t, pt(1, 6), got[0].Summit)
	assert.Equal(t, pt(3, -1), got[0].RightTrough)
	assert.InDelta(t, 8.0, got[0].Area, 1e-12)
}

// TestFindPeaks_ZeroIndexUnset contrasts the explicit-state scanner with
// the legacy index-0 sentinel behavior.
func TestFindPeaks_ZeroIndexUnset(t *testing.T) {
	data := []float64{-1, 5, -1, -2, -1}

	got := peaks.FindPeaksOverThreshold(data, 0)
	require.Len(t, got, 1)
	assert.Equal(t, pt(0, -1), got[0].LeftTrough, "index 0 is a real trough")
	assert.Equal(t, pt(3, -2), got[0].RightTrough)
	assert.InDelta(t, 2.5, got[0].Area, 1e-12)

	legacy := peaks.FindPeaksOverThreshold(data, 0, peaks.WithZeroIndexUnset())
	assert.Empty(t, legacy, "legacy scan loses a peak rising from sample 0")

	// Away from index 0 both modes agree.
	padded := append([]float64{-3, -3}, data...)
	legacyPadded := peaks.FindPeaksOverThreshold(padded, 0, peaks.WithZeroIndexUnset())
	require.Len(t, legacyPadded, 1)
	assert.Equal(t, pt(2, -1), legacyPadded[0].LeftTrough)
	assert.InDelta(t, got[0].Area, legacyPadded[0].Area, 1e-12)
}

// TestFindPeaks_Options covers WithMaxPeaks and WithMinArea.
func TestFindPeaks_Options(t *testing.T) {
	data := []float64{0, 2, 0, -1, 0, 0, 3, 0, 0.5}

	one := peaks.FindPeaksOverThreshold(data, 1, peaks.WithMaxPeaks(1))
	require.Len(t, one, 1)
	assert.Equal(t, 1, one[0].Summit.Index)

	all := peaks.FindPeaksOverThreshold(data, 1, peaks.WithMaxPeaks(0))
	assert.Len(t, all, 2, "zero means unlimited")

	big := peaks.FindPeaksOverThreshold(data, 1, peaks.WithMinArea(2))
	require.Len(t, big, 1)
	assert.Equal(t, 6, big[0].Summit.Index)

	assert.Panics(t, func() { peaks.WithMaxPeaks(-1) })
}

// TestFindPeaks_OrderAndInvariants runs the scanner over seeded noise
// and checks structural invariants of every reported peak.
func TestFindPeaks_OrderAndInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	data := make([]float64, 2000)
	for i := range data {
		data[i] = rng.NormFloat64()
	}

	got := peaks.FindPeaksOverThreshold(data, 0.5)
	require.NotEmpty(t, got)

	for i, p := range got {
		assert.LessOrEqual(t, p.LeftTrough.Index, p.Summit.Index)
		assert.Less(t, p.Summit.Index, p.RightTrough.Index)
		assert.Less(t, p.RightTrough.Index, len(data))
		assert.GreaterOrEqual(t, p.Summit.Value, 0.5)
		assert.Less(t, p.RightTrough.Value, 0.5)
		assert.Equal(t, peaks.ComputeArea(data, p), p.Area)
		if i > 0 {
			assert.Greater(t, p.Summit.Index, got[i-1].Summit.Index, "strictly increasing summits")
			assert.Greater(t, p.LeftTrough.Index, got[i-1].RightTrough.Index, "peaks never overlap")
		}
	}
}

// TestFindPeaks_NonNegativeArea checks that non-negative data never
// produces a negative area.
func TestFindPeaks_NonNegativeArea(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	data := make([]float64, 1000)
	for i := range data {
		data[i] = rng.Float64() * 10
	}

	got := peaks.FindPeaksOverThreshold(data, 6)
	require.NotEmpty(t, got)
	for _, p := range got {
		assert.GreaterOrEqual(t, p.Area, 0.0)
	}
}

// TestFindPeaks_InputNotModified guards the read-only contract.
func TestFindPeaks_InputNotModified(t *testing.T) {
	data := []float64{0, 0, 5, 0, 0.5}
	snapshot := append([]float64(nil), data...)
	_ = peaks.FindPeaksOverThreshold(data, 1)
	assert.Equal(t, snapshot, data)
}
