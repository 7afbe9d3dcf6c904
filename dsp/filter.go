// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// butterBand designs a Butterworth band-pass filter of the given prototype
// order and returns its transfer-function coefficients (b, a), both of
// length 2*order+1 with a[0] == 1. The band edges low and high are
// normalized to the Nyquist frequency and must satisfy 0 < low < high < 1.
//
// The design follows the classic analog-prototype route: place the
// Butterworth poles on the unit circle, transform low-pass to band-pass,
// then map to the z-plane with the bilinear transform (with frequency
// pre-warping).
func butterBand(order int, low, high float64) (b, a []float64, err error) {
	if !(0 < low && low < high && high < 1) {
		return nil, nil, ErrInvalidBand
	}

	// Analog low-pass prototype: order poles, no zeros, unit gain.
	poles := make([]complex128, order)
	for k := 0; k < order; k++ {
		theta := math.Pi * float64(2*k+1-order) / float64(2*order)
		poles[k] = -cmplx.Exp(complex(0, theta))
	}

	// Pre-warp the band edges for the bilinear transform.
	const fs = 2.0
	warpedLow := 2 * fs * math.Tan(math.Pi*low/fs)
	warpedHigh := 2 * fs * math.Tan(math.Pi*high/fs)
	bw := warpedHigh - warpedLow
	w0 := math.Sqrt(warpedLow * warpedHigh)

	// Low-pass to band-pass: every prototype pole splits into a pair, and
	// order zeros appear at s = 0.
	bpPoles := make([]complex128, 0, 2*order)
	for _, p := range poles {
		scaled := p * complex(bw/2, 0)
		d := cmplx.Sqrt(scaled*scaled - complex(w0*w0, 0))
		bpPoles = append(bpPoles, scaled+d, scaled-d)
	}
	bpZeros := make([]complex128, order)
	gain := math.Pow(bw, float64(order))

	// Bilinear transform into the z-plane. Analog zeros at infinity land on
	// z = -1.
	fs2 := complex(2*fs, 0)
	num := complex(1, 0)
	den := complex(1, 0)

	zDig := make([]complex128, 0, 2*order)
	for _, z := range bpZeros {
		zDig = append(zDig, (fs2+z)/(fs2-z))
		num *= fs2 - z
	}
	pDig := make([]complex128, 0, 2*order)
	for _, p := range bpPoles {
		pDig = append(pDig, (fs2+p)/(fs2-p))
		den *= fs2 - p
	}
	for len(zDig) < len(pDig) {
		zDig = append(zDig, -1)
	}
	k := gain * real(num/den)

	b = polyFromRoots(zDig)
	for i := range b {
		b[i] *= k
	}
	a = polyFromRoots(pDig)

	// The pole polynomial is monic by construction; normalize anyway so the
	// recursions below can assume a[0] == 1.
	if a[0] != 1 {
		inv := 1 / a[0]
		for i := range a {
			a[i] *= inv
		}
		for i := range b {
			b[i] *= inv
		}
	}

	return b, a, nil
}

// polyFromRoots expands prod(x - r_i) into coefficients, highest order
// first. The roots come in conjugate pairs, so only the real parts survive.
func polyFromRoots(roots []complex128) []float64 {
	coeffs := []complex128{1}
	for _, r := range roots {
		next := make([]complex128, len(coeffs)+1)
		for i, c := range coeffs {
			next[i] += c
			next[i+1] -= c * r
		}
		coeffs = next
	}

	out := make([]float64, len(coeffs))
	for i, c := range coeffs {
		out[i] = real(c)
	}
	return out
}

// lfilter runs a direct-form II transposed IIR filter over x with the given
// initial state zi (length len(b)-1). a[0] must be 1.
func lfilter(b, a, x, zi []float64) []float64 {
	n := len(b)
	z := make([]float64, n-1)
	copy(z, zi)

	y := make([]float64, len(x))
	for i, xn := range x {
		yn := b[0]*xn + z[0]
		for j := 1; j < n-1; j++ {
			z[j-1] = b[j]*xn + z[j] - a[j]*yn
		}
		z[n-2] = b[n-1]*xn - a[n-1]*yn
		y[i] = yn
	}
	return y
}

// lfilterZi computes the steady-state initial filter delays for a step input
// of unit height, so that filtering a constant signal produces that constant
// from the first sample. Solves (I - C^T) zi = B where C is the companion
// matrix of a.
func lfilterZi(b, a []float64) ([]float64, error) {
	n := len(a) - 1

	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, 0, m.At(i, 0)+a[i+1])
		m.Set(i, i, m.At(i, i)+1)
		if i+1 < n {
			m.Set(i, i+1, m.At(i, i+1)-1)
		}
	}

	rhs := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		rhs.SetVec(i, b[i+1]-a[i+1]*b[0])
	}

	var zi mat.VecDense
	if err := zi.SolveVec(m, rhs); err != nil {
		return nil, ErrComputation
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = zi.AtVec(i)
	}
	return out, nil
}

// filtfilt applies the filter forward and backward so the result has zero
// phase and the same length as x. The input is extended at both ends with an
// odd reflection of 3*(len(b)-1) samples to suppress edge transients;
// signals shorter than that cannot be filtered.
func filtfilt(b, a, x []float64) ([]float64, error) {
	pad := 3 * (len(b) - 1)
	if len(x) <= pad {
		return nil, ErrSignalTooShort
	}

	ext := make([]float64, 0, len(x)+2*pad)
	for i := pad; i >= 1; i-- {
		ext = append(ext, 2*x[0]-x[i])
	}
	ext = append(ext, x...)
	last := len(x) - 1
	for i := 1; i <= pad; i++ {
		ext = append(ext, 2*x[last]-x[last-i])
	}

	zi, err := lfilterZi(b, a)
	if err != nil {
		return nil, err
	}

	state := make([]float64, len(zi))
	for i := range state {
		state[i] = zi[i] * ext[0]
	}
	y := lfilter(b, a, ext, state)

	reverseInPlace(y)
	for i := range state {
		state[i] = zi[i] * y[0]
	}
	y = lfilter(b, a, y, state)
	reverseInPlace(y)

	return y[pad : pad+len(x)], nil
}

func reverseInPlace(x []float64) {
	for i, j := 0, len(x)-1; i < j; i, j = i+1, j-1 {
		x[i], x[j] = x[j], x[i]
	}
}
