// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"reflect"
	"testing"
)

func TestFindPeaks_Basic(t *testing.T) {
	t.Parallel()

	series := []float64{0, 1, 0, 3, 0, 2, 0}
	got := FindPeaks(series, 0.5, 1)

	want := []int{1, 3, 5}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindPeaks() = %v, want %v", got, want)
	}
}

func TestFindPeaks_HeightCutoff(t *testing.T) {
	t.Parallel()

	series := []float64{0, 1, 0, 3, 0, 2, 0}
	got := FindPeaks(series, 1.5, 1)

	want := []int{3, 5}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindPeaks() = %v, want %v", got, want)
	}
}

func TestFindPeaks_TallerWinsWithinDistance(t *testing.T) {
	t.Parallel()

	// Peaks at 1 (height 1) and 3 (height 2), two indices apart.
	series := []float64{0, 1, 0, 2, 0}
	got := FindPeaks(series, 0, 3)

	want := []int{3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindPeaks() = %v, want %v", got, want)
	}
}

func TestFindPeaks_EqualHeightKeepsEarlier(t *testing.T) {
	t.Parallel()

	// Two equal peaks closer than minDistance: exactly one survives and it
	// is the lower-index one.
	series := []float64{0, 1, 0, 1, 0}
	got := FindPeaks(series, 0, 3)

	want := []int{1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindPeaks() = %v, want %v", got, want)
	}
}

func TestFindPeaks_BoundariesNeverPeak(t *testing.T) {
	t.Parallel()

	if got := FindPeaks([]float64{3, 1, 2}, 0, 1); len(got) != 0 {
		t.Errorf("FindPeaks() = %v, want empty", got)
	}
	if got := FindPeaks([]float64{1, 2, 5}, 0, 1); len(got) != 0 {
		t.Errorf("FindPeaks() = %v, want empty", got)
	}
}

func TestFindPeaks_EmptyAndBelowThreshold(t *testing.T) {
	t.Parallel()

	if got := FindPeaks(nil, 0, 1); len(got) != 0 {
		t.Errorf("FindPeaks(nil) = %v, want empty", got)
	}
	if got := FindPeaks([]float64{0, 0.1, 0, 0.2, 0}, 0.5, 1); len(got) != 0 {
		t.Errorf("FindPeaks() = %v, want empty for all-below-threshold series", got)
	}
}

func TestFindPeaks_OutputSeparation(t *testing.T) {
	t.Parallel()

	series := []float64{0, 5, 0, 4, 0, 3, 0, 6, 0, 2, 0, 1, 0}
	const minDist = 4

	got := FindPeaks(series, 0, minDist)
	if len(got) == 0 {
		t.Fatal("FindPeaks() returned no peaks")
	}

	for i := 1; i < len(got); i++ {
		if got[i] <= got[i-1] {
			t.Errorf("indices not strictly ascending: %v", got)
		}
		if got[i]-got[i-1] < minDist {
			t.Errorf("peaks %d and %d closer than %d: %v", got[i-1], got[i], minDist, got)
		}
	}
}

func TestFindPeaks_MinDistanceClamped(t *testing.T) {
	t.Parallel()

	series := []float64{0, 1, 0, 1, 0}
	got := FindPeaks(series, 0, 0)

	want := []int{1, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindPeaks() with zero distance = %v, want %v", got, want)
	}
}
