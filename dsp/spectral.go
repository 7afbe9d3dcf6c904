// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/stat"
)

// Fixed analysis parameters for the spectral detector. These are deliberately
// not configurable: the detector targets the 1100-1300 Hz beep band with a
// 4096-sample window and quarter-window hop.
const (
	spectralWindow = 4096
	spectralHop    = spectralWindow / 4
	spectralLowHz  = 1100.0
	spectralHighHz = 1300.0

	// Frames count as beeps when their band energy exceeds this multiple of
	// the mean band energy.
	energyFactor = 5.0
)

// DetectSpectral scans the signal for short events whose energy concentrates
// in the fixed 1100-1300 Hz band and returns their start times in seconds.
//
// The signal is analyzed in Hann-windowed frames of 4096 samples advancing
// by 1024. Per-frame band energy is compared against a dynamic threshold of
// five times the mean; maximal runs of frames above the threshold collapse
// to a single event at the first frame of the run.
//
// A strictly silent signal has zero mean energy and therefore a zero
// threshold, so the strict comparison marks nothing; near-silent noise can
// still exceed five times its own mean and produce spurious events. This
// follows the historical behavior on purpose.
func DetectSpectral(sig Signal) ([]float64, error) {
	if err := sig.Validate(); err != nil {
		return nil, err
	}

	x := sig.Samples
	if len(x) < spectralWindow {
		padded := make([]float64, spectralWindow)
		copy(padded, x)
		x = padded
	}
	frames := 1 + (len(x)-spectralWindow)/spectralHop

	hann := make([]float64, spectralWindow)
	for i := range hann {
		hann[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(spectralWindow-1)))
	}

	// Frequency bins inside the target band: bin k sits at k*rate/window Hz.
	binHz := float64(sig.Rate) / float64(spectralWindow)
	loBin := int(math.Ceil(spectralLowHz / binHz))
	hiBin := int(math.Floor(spectralHighHz / binHz))
	if hiBin > spectralWindow/2 {
		hiBin = spectralWindow / 2
	}
	if loBin < 0 {
		loBin = 0
	}

	fft := fourier.NewFFT(spectralWindow)
	windowed := make([]float64, spectralWindow)
	var coeff []complex128

	energy := make([]float64, frames)
	for f := 0; f < frames; f++ {
		start := f * spectralHop
		for i := range windowed {
			windowed[i] = x[start+i] * hann[i]
		}
		coeff = fft.Coefficients(coeff, windowed)

		var e float64
		for k := loBin; k <= hiBin && k < len(coeff); k++ {
			e += cmplx.Abs(coeff[k])
		}
		energy[f] = e
	}

	threshold := stat.Mean(energy, nil) * energyFactor

	var times []float64
	inRun := false
	for f, e := range energy {
		above := e > threshold
		if above && !inRun {
			times = append(times, float64(f)*float64(spectralHop)/float64(sig.Rate))
		}
		inRun = above
	}

	return times, nil
}
