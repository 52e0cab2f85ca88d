package peaks_test

import (
	"fmt"

	"github.com/katalvlaran/peakfinder/peaks"
)

// ////////////////////////////////////////////////////////////////////////////
// ExampleFindPeaksOverThreshold
// ////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two bursts above a threshold of 1.0; the second has a flat top.
//	Each burst is reported once the signal starts rising after its
//	lowest point.
//
// Complexity: O(n) time, O(1) extra memory per scan.
func ExampleFindPeaksOverThreshold() {
	samples := []float64{0, 0, 5, 0, 0.5, 0, 3, 3, -1, 0}

	for _, p := range peaks.FindPeaksOverThreshold(samples, 1.0) {
		fmt.Println(p)
	}
	// Output:
	// { (1, 0), (2, 5), (3, 0), 5 }
	// { (5, 0), (7, 3), (8, -1), 5.5 }
}

// ExampleFindPeaksOverStdDev keeps only the burst that rises more than
// two standard deviations above the mean.
func ExampleFindPeaksOverStdDev() {
	samples := []float64{0, 1, 0, -1, 0, 0, 9, 0, -1, 0, 0, 2, 0, -1, 0}

	threshold, err := peaks.StdDevThreshold(samples, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	found, err := peaks.FindPeaksOverStdDev(samples, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("threshold=%.2f peaks=%d\n", threshold, len(found))
	fmt.Println(found[0])
	// Output:
	// threshold=5.49 peaks=1
	// { (5, 0), (6, 9), (8, -1), 8.5 }
}

// ExampleSortByArea ranks peaks by the area they enclose.
func ExampleSortByArea() {
	found := peaks.FindPeaksOverThreshold([]float64{0, 0, 5, 0, 0.5, 0, 3, 3, -1, 0}, 1.0)
	peaks.SortByArea(found)

	for _, p := range found {
		fmt.Printf("summit=%d area=%g\n", p.Summit.Index, p.Area)
	}
	// Output:
	// summit=2 area=5
	// summit=7 area=5.5
}
