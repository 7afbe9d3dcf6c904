// SPDX-License-Identifier: EPL-2.0

// Package wav decodes RIFF/WAVE files into audio.Source streams and writes
// mono 16-bit PCM WAV output.
//
// Decoding is backed by github.com/go-audio/wav and handles 8, 16, 24 and
// 32-bit integer PCM, any channel count. Samples come out as float32 in
// [-1, 1]:
//
//	src, err := wav.Decoder{}.Decode(file)
//
// WriteWAV16 and WriteWAVFloat32 cover the reverse direction, mainly for
// producing template files and test fixtures:
//
//	err := wav.WriteWAVFloat32(out, 11025, samples)
package wav
