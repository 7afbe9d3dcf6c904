// SPDX-License-Identifier: EPL-2.0

// Package beepdetect locates beep tones in audio recordings.
//
// The detection core lives in the dsp package; this package ties it
// together behind a Detector that picks one of three strategies:
//
//   - ModeNCC (default): band-pass envelopes of target and template,
//     matched by normalized cross-correlation. Amplitude independent.
//   - ModeRaw: direct cross-correlation of peak-normalized waveforms.
//     Cheaper, less selective.
//   - ModeSpectral: template-free STFT energy detection in the
//     1100-1300 Hz band.
//
// A typical run decodes the inputs to mono at a common rate, then hands
// them to the detector:
//
//	target, err := beepdetect.DecodeMono(f, wav.Decoder{}, 11025, 0)
//	...
//	det := beepdetect.New(beepdetect.DefaultParams())
//	res, err := det.Run(target, tmpl)
//	for _, ts := range res.Formatted {
//	    fmt.Println(ts) // MM:SS.mmm
//	}
//
// Detection is deterministic: the same inputs and parameters always yield
// the same timestamps.
package beepdetect
