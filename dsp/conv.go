// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"gonum.org/v1/gonum/dsp/fourier"
)

// fftConvolve computes the full linear convolution of x and h using the FFT,
// returning len(x)+len(h)-1 samples. Both inputs are zero padded to the next
// power of two before transforming.
func fftConvolve(x, h []float64) []float64 {
	if len(x) == 0 || len(h) == 0 {
		return nil
	}

	outLen := len(x) + len(h) - 1
	size := nextPow2(outLen)

	fft := fourier.NewFFT(size)

	xp := make([]float64, size)
	copy(xp, x)
	hp := make([]float64, size)
	copy(hp, h)

	xc := fft.Coefficients(nil, xp)
	hc := fft.Coefficients(nil, hp)
	for i := range xc {
		xc[i] *= hc[i]
	}

	// gonum's real FFT is unnormalized: a Coefficients/Sequence round trip
	// scales by the transform size.
	full := fft.Sequence(nil, xc)
	scale := 1.0 / float64(size)

	out := make([]float64, outLen)
	for i := range out {
		out[i] = full[i] * scale
	}
	return out
}

// convValid returns the "valid" portion of conv(x, h): the len(x)-len(h)+1
// samples where the kernel fully overlaps the input. Requires
// len(x) >= len(h).
func convValid(x, h []float64) []float64 {
	full := fftConvolve(x, h)
	return full[len(h)-1 : len(x)]
}

// convSame returns the centered len(x) samples of conv(x, h), matching
// numpy's "same" mode.
func convSame(x, h []float64) []float64 {
	full := fftConvolve(x, h)
	start := (len(h) - 1) / 2
	return full[start : start+len(x)]
}

// xcorrValid computes the valid-mode cross-correlation of x against h:
// out[k] = sum_i x[k+i]*h[i] for k in [0, len(x)-len(h)]. Implemented as a
// convolution with the reversed kernel.
func xcorrValid(x, h []float64) []float64 {
	rev := make([]float64, len(h))
	for i, v := range h {
		rev[len(h)-1-i] = v
	}
	return convValid(x, rev)
}

func nextPow2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}
