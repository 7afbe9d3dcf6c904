// SPDX-License-Identifier: EPL-2.0

package dsp

// Signal is a mono PCM buffer with its sample rate.
//
// The detection core operates on float64 samples in [-1, 1]. Callers that
// decode multi-channel audio must average it down to mono first (see the
// audio.MonoMixer pipeline); the core rejects nothing about channel layout
// because there is none left to reject.
type Signal struct {
	Samples []float64
	Rate    int // Hz
}

// Duration reports the signal length in seconds.
func (s Signal) Duration() float64 {
	if s.Rate <= 0 {
		return 0
	}
	return float64(len(s.Samples)) / float64(s.Rate)
}

// Validate checks the Signal invariants: a positive sample rate and a
// non-empty sample buffer.
func (s Signal) Validate() error {
	if s.Rate <= 0 {
		return ErrInvalidRate
	}
	if len(s.Samples) == 0 {
		return ErrEmptySignal
	}
	return nil
}
