// SPDX-License-Identifier: EPL-2.0

package dsp

import "math"

// filterOrder is the Butterworth prototype order used for envelope
// extraction. The resulting band-pass filter has 2*filterOrder poles.
const filterOrder = 4

// Envelope band-limits the signal to [bandLow, bandHigh] Hz, rectifies it
// and smooths it with a moving average of smoothMs milliseconds. The output
// has the same length as the input.
//
// The upper band edge is clamped to 100 Hz below Nyquist before
// normalization; band edges that do not satisfy 0 < low < high < 1 after
// normalization are rejected with ErrInvalidBand.
func Envelope(sig Signal, bandLow, bandHigh, smoothMs float64) ([]float64, error) {
	if err := sig.Validate(); err != nil {
		return nil, err
	}

	nyquist := float64(sig.Rate) / 2
	low := math.Max(1.0, bandLow) / nyquist
	high := math.Min(float64(sig.Rate)/2-100.0, bandHigh) / nyquist

	b, a, err := butterBand(filterOrder, low, high)
	if err != nil {
		return nil, err
	}

	filtered, err := filtfilt(b, a, sig.Samples)
	if err != nil {
		return nil, err
	}

	for i, v := range filtered {
		filtered[i] = math.Abs(v)
	}

	win := int(math.Round(float64(sig.Rate) * smoothMs / 1000.0))
	if win < 1 {
		win = 1
	}
	kernel := make([]float64, win)
	for i := range kernel {
		kernel[i] = 1 / float64(win)
	}

	return convSame(filtered, kernel), nil
}
