// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming PCM primitives the detector is built
// on: the Source interface, a cubic-interpolation Resampler, a MonoMixer,
// and a Registry mapping format keys to decoders.
//
// Samples are float32 in [-1, 1], interleaved for multi-channel streams.
// Stages implement Source themselves, so a decode pipeline is just nesting:
//
//	src, _ := decoder.Decode(file)
//	mono := audio.NewMonoMixer(audio.NewResampler(src, 11025))
//	samples, err := audio.ReadAll(mono, mono.BufSize())
//
// ReadSamples returns io.EOF when the stream is finished; any other error
// means the source or a stage failed.
package audio
