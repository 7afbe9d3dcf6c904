// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestCubicInterpolate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		y0, y1, y2, y3 float32
		x              float32
		want           float32
		tolerance      float32
	}{
		{name: "at start returns y1", y0: 0, y1: 1, y2: 2, y3: 3, x: 0, want: 1, tolerance: 0.001},
		{name: "at end returns y2", y0: 0, y1: 1, y2: 2, y3: 3, x: 1, want: 2, tolerance: 0.001},
		{name: "midpoint of ramp", y0: 0, y1: 1, y2: 2, y3: 3, x: 0.5, want: 1.5, tolerance: 0.01},
		{name: "linear data stays linear", y0: 1, y1: 2, y2: 3, y3: 4, x: 0.25, want: 2.25, tolerance: 0.01},
		{name: "constant data stays constant", y0: 0.7, y1: 0.7, y2: 0.7, y3: 0.7, x: 0.33, want: 0.7, tolerance: 0.001},
		{name: "negative values", y0: -1, y1: -2, y2: -3, y3: -4, x: 0.5, want: -2.5, tolerance: 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CubicInterpolate(tt.y0, tt.y1, tt.y2, tt.y3, tt.x)
			if float32(math.Abs(float64(got-tt.want))) > tt.tolerance {
				t.Errorf("CubicInterpolate(%v, %v, %v, %v, %v) = %v, want %v",
					tt.y0, tt.y1, tt.y2, tt.y3, tt.x, got, tt.want)
			}
		})
	}
}

func TestCubicInterpolate_SmoothOnSine(t *testing.T) {
	t.Parallel()

	// Interpolated points on a slowly varying sine should land close to the
	// true curve.
	f := func(i float64) float32 {
		return float32(math.Sin(i / 10))
	}

	for i := 1.0; i < 50; i++ {
		got := CubicInterpolate(f(i-1), f(i), f(i+1), f(i+2), 0.5)
		want := float32(math.Sin((i + 0.5) / 10))
		if math.Abs(float64(got-want)) > 0.001 {
			t.Fatalf("interpolated %v at i=%v, want %v", got, i, want)
		}
	}
}
