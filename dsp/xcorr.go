// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	// minTemplateLen is the smallest usable template, in samples.
	minTemplateLen = 10

	// nccEpsilon keeps the NCC denominator away from zero in silent
	// stretches of the target.
	nccEpsilon = 1e-8
)

// MatchNCC slides the template envelope across the target envelope and
// returns the times (in seconds) where the normalized cross-correlation
// peaks at or above threshold, with peaks closer than minSepS seconds
// reduced to the strongest one.
//
// For every alignment k the score is
//
//	ncc[k] = sum_i target[k+i]*template[i] /
//	         (sqrt(sum_i target[k+i]^2 * templateEnergy) + eps)
//
// so a perfect amplitude-independent match scores close to 1.
func MatchNCC(targetEnv, tmplEnv []float64, rate int, threshold, minSepS float64) ([]float64, error) {
	if rate <= 0 {
		return nil, ErrInvalidRate
	}
	if len(tmplEnv) < minTemplateLen {
		return nil, ErrTemplateTooShort
	}
	if len(targetEnv) <= len(tmplEnv) {
		return nil, ErrTargetTooShort
	}
	tmplEnergy := floats.Dot(tmplEnv, tmplEnv)
	if tmplEnergy == 0 {
		return nil, ErrZeroTemplateEnergy
	}

	numerator := xcorrValid(targetEnv, tmplEnv)

	squares := make([]float64, len(targetEnv))
	for i, v := range targetEnv {
		squares[i] = v * v
	}
	ones := make([]float64, len(tmplEnv))
	for i := range ones {
		ones[i] = 1
	}
	localEnergy := convValid(squares, ones)

	ncc := make([]float64, len(numerator))
	for k := range ncc {
		e := localEnergy[k]
		if e < 0 {
			// FFT round-off can push near-zero energies slightly negative.
			e = 0
		}
		ncc[k] = numerator[k] / (math.Sqrt(e*tmplEnergy) + nccEpsilon)
	}

	peaks := FindPeaks(ncc, threshold, minDistance(minSepS, rate))
	return indicesToSeconds(peaks, rate), nil
}

// MatchRaw cross-correlates the raw waveforms directly, after normalizing
// each by its own peak amplitude. The peak height cutoff is relative:
// threshold times the maximum of the correlation series. Cheaper and less
// selective than MatchNCC; it exists as a fallback for when envelope
// extraction is not worth the cost.
func MatchRaw(target, tmpl []float64, rate int, threshold, minSepS float64) ([]float64, error) {
	if rate <= 0 {
		return nil, ErrInvalidRate
	}
	if len(tmpl) < minTemplateLen {
		return nil, ErrTemplateTooShort
	}
	if len(target) <= len(tmpl) {
		return nil, ErrTargetTooShort
	}

	x := normalizeByPeak(target)
	h := normalizeByPeak(tmpl)

	corr := xcorrValid(x, h)

	height := threshold
	if len(corr) > 0 {
		height = threshold * floats.Max(corr)
	}

	peaks := FindPeaks(corr, height, minDistance(minSepS, rate))
	return indicesToSeconds(peaks, rate), nil
}

// normalizeByPeak scales x by 1/(max(|x|)+eps) into a fresh slice.
func normalizeByPeak(x []float64) []float64 {
	var peak float64
	for _, v := range x {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	scale := 1 / (peak + nccEpsilon)

	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v * scale
	}
	return out
}

// minDistance converts a separation in seconds to samples, at least 1.
func minDistance(sepS float64, rate int) int {
	d := int(math.Round(sepS * float64(rate)))
	if d < 1 {
		d = 1
	}
	return d
}

func indicesToSeconds(idx []int, rate int) []float64 {
	times := make([]float64, len(idx))
	for i, k := range idx {
		times[i] = float64(k) / float64(rate)
	}
	return times
}
