// Package aiff decodes AIFF files into audio.Source streams, backed by
// github.com/go-audio/aiff. Only 16-bit integer PCM is accepted; samples
// come out as float32 in [-1, 1].
package aiff
