// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams into audio.Source, backed by
// github.com/hajimehoshi/go-mp3. Output is always stereo float32 in [-1, 1];
// run it through audio.MonoMixer when a single channel is wanted.
package mp3
