// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"
)

// freqResponse evaluates |H(e^{jw})| for transfer-function coefficients,
// with w in radians per sample.
func freqResponse(b, a []float64, w float64) float64 {
	evalPoly := func(c []float64) complex128 {
		var acc complex128
		for i, v := range c {
			z := cmplx.Exp(complex(0, -w*float64(i)))
			acc += complex(v, 0) * z
		}
		return acc
	}
	return cmplx.Abs(evalPoly(b) / evalPoly(a))
}

func TestButterBand_Shape(t *testing.T) {
	t.Parallel()

	b, a, err := butterBand(4, 0.2, 0.24)
	if err != nil {
		t.Fatalf("butterBand() error = %v", err)
	}

	if len(b) != 9 || len(a) != 9 {
		t.Fatalf("coefficient lengths = %d, %d, want 9, 9", len(b), len(a))
	}
	if math.Abs(a[0]-1) > 1e-12 {
		t.Errorf("a[0] = %v, want 1", a[0])
	}
}

func TestButterBand_Response(t *testing.T) {
	t.Parallel()

	const low, high = 0.2, 0.24
	b, a, err := butterBand(4, low, high)
	if err != nil {
		t.Fatalf("butterBand() error = %v", err)
	}

	// Band-pass: zero gain at DC and Nyquist.
	if g := freqResponse(b, a, 0); g > 1e-6 {
		t.Errorf("gain at DC = %v, want ~0", g)
	}
	if g := freqResponse(b, a, math.Pi); g > 1e-6 {
		t.Errorf("gain at Nyquist = %v, want ~0", g)
	}

	// Near unity in the middle of the band.
	mid := math.Pi * (low + high) / 2
	if g := freqResponse(b, a, mid); g < 0.9 || g > 1.0001 {
		t.Errorf("gain at band center = %v, want ~1", g)
	}

	// Butterworth edges sit at the half-power point.
	for _, edge := range []float64{low, high} {
		g := freqResponse(b, a, math.Pi*edge)
		if g < 0.6 || g > 0.8 {
			t.Errorf("gain at edge %v = %v, want ~0.707", edge, g)
		}
	}

	// Strong rejection well outside the band.
	if g := freqResponse(b, a, math.Pi*0.05); g > 1e-3 {
		t.Errorf("gain far below band = %v, want < 1e-3", g)
	}
	if g := freqResponse(b, a, math.Pi*0.8); g > 1e-3 {
		t.Errorf("gain far above band = %v, want < 1e-3", g)
	}
}

func TestButterBand_InvalidEdges(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		low, high float64
	}{
		{"low not positive", 0, 0.5},
		{"inverted", 0.6, 0.3},
		{"high at nyquist", 0.2, 1.0},
		{"equal", 0.4, 0.4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := butterBand(4, tc.low, tc.high)
			if !errors.Is(err, ErrInvalidBand) {
				t.Errorf("butterBand(%v, %v) error = %v, want ErrInvalidBand", tc.low, tc.high, err)
			}
			if !errors.Is(err, ErrConfiguration) {
				t.Errorf("ErrInvalidBand should wrap ErrConfiguration")
			}
		})
	}
}

func TestFiltfilt_ZeroPhaseInBand(t *testing.T) {
	t.Parallel()

	const rate = 11025
	b, a, err := butterBand(4, 1100/(rate/2.0), 1300/(rate/2.0))
	if err != nil {
		t.Fatalf("butterBand() error = %v", err)
	}

	// A 1200 Hz tone sits near the band center: it should come through with
	// unity gain and no phase shift.
	x := make([]float64, rate)
	for i := range x {
		x[i] = math.Sin(2 * math.Pi * 1200 * float64(i) / rate)
	}

	y, err := filtfilt(b, a, x)
	if err != nil {
		t.Fatalf("filtfilt() error = %v", err)
	}
	if len(y) != len(x) {
		t.Fatalf("filtfilt() len = %d, want %d", len(y), len(x))
	}

	for i := 2000; i < 9000; i++ {
		if d := math.Abs(y[i] - x[i]); d > 0.05 {
			t.Fatalf("sample %d: |y-x| = %v, want < 0.05 (zero phase, unity gain)", i, d)
		}
	}
}

func TestFiltfilt_RejectsDC(t *testing.T) {
	t.Parallel()

	b, a, err := butterBand(4, 0.2, 0.24)
	if err != nil {
		t.Fatalf("butterBand() error = %v", err)
	}

	x := make([]float64, 2000)
	for i := range x {
		x[i] = 0.5
	}

	y, err := filtfilt(b, a, x)
	if err != nil {
		t.Fatalf("filtfilt() error = %v", err)
	}

	for i, v := range y {
		if math.Abs(v) > 1e-6 {
			t.Fatalf("sample %d: filtered DC = %v, want ~0", i, v)
		}
	}
}

func TestFiltfilt_TooShort(t *testing.T) {
	t.Parallel()

	b, a, err := butterBand(4, 0.2, 0.24)
	if err != nil {
		t.Fatalf("butterBand() error = %v", err)
	}

	_, err = filtfilt(b, a, make([]float64, 10))
	if !errors.Is(err, ErrSignalTooShort) {
		t.Errorf("filtfilt() error = %v, want ErrSignalTooShort", err)
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("ErrSignalTooShort should wrap ErrInvalidInput")
	}
}
