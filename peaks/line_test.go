package peaks_test

import (
	"testing"

	"github.com/katalvlaran/peakfinder/peaks"
	"github.com/katalvlaran/peakfinder/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLine_MatchesSamples checks that a line numbered from zero scans
// exactly like the plain sample slice.
func TestLine_MatchesSamples(t *testing.T) {
	data := []float64{0, 2, 0, -1, 0, 0, 3, 0, 0.5}

	want := peaks.FindPeaksOverThreshold(data, 1)
	got := peaks.FindPeaksInLineOverThreshold(peaks.LineFromSamples(data), 1)
	assert.Equal(t, want, got)
}

// TestLine_KeepsOwnIndices reports the caller's x positions verbatim.
func TestLine_KeepsOwnIndices(t *testing.T) {
	line := []peaks.Point{
		{Index: 100, Value: 0},
		{Index: 101, Value: 0},
		{Index: 105, Value: 5},
		{Index: 106, Value: 0},
		{Index: 110, Value: 0.5},
	}

	got := peaks.FindPeaksInLineOverThreshold(line, 1)
	require.Len(t, got, 1)
	assert.Equal(t, 101, got[0].LeftTrough.Index)
	assert.Equal(t, 105, got[0].Summit.Index)
	assert.Equal(t, 106, got[0].RightTrough.Index)
	assert.Equal(t, 5.0, got[0].Area, "unit spacing between neighbouring line points")
}

// TestLine_StdDev mirrors FindPeaksOverStdDev on the line values.
func TestLine_StdDev(t *testing.T) {
	data := []float64{0, 1, 0, -1, 0, 0, 9, 0, -1, 0, 0, 2, 0, -1, 0}

	want, err := peaks.FindPeaksOverStdDev(data, 1)
	require.NoError(t, err)
	got, err := peaks.FindPeaksInLineOverStdDev(peaks.LineFromSamples(data), 1)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = peaks.FindPeaksInLineOverStdDev([]peaks.Point{{Index: 3, Value: 1}}, 1)
	assert.ErrorIs(t, err, stats.ErrTooFewSamples)
}
