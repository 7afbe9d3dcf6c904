// SPDX-License-Identifier: EPL-2.0

package audiotest

import "math"

// SineBurst synthesizes a sine burst of durS seconds at freq Hz with 10 ms
// raised-cosine fades at both ends, so the burst starts and ends near zero.
// Tapered edges keep filter transients out of envelope comparisons.
func SineBurst(rate int, durS, freq float64) []float64 {
	n := int(durS * float64(rate))
	fade := rate / 100
	if fade*2 > n {
		fade = n / 2
	}

	burst := make([]float64, n)
	for i := range burst {
		t := float64(i) / float64(rate)
		v := math.Sin(2 * math.Pi * freq * t)

		switch {
		case i < fade:
			v *= 0.5 * (1 - math.Cos(math.Pi*float64(i)/float64(fade)))
		case i >= n-fade:
			v *= 0.5 * (1 - math.Cos(math.Pi*float64(n-1-i)/float64(fade)))
		}
		burst[i] = v
	}
	return burst
}

// BeepTrack builds a silent track of totalS seconds with copies of burst
// inserted at the given start times. Insertions falling past the end are
// truncated.
func BeepTrack(rate int, totalS float64, startTimes []float64, burst []float64) []float64 {
	track := make([]float64, int(totalS*float64(rate)))
	for _, ts := range startTimes {
		start := int(ts * float64(rate))
		for i, v := range burst {
			if start+i >= len(track) {
				break
			}
			track[start+i] = v
		}
	}
	return track
}
