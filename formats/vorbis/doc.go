// Package vorbis decodes Ogg Vorbis streams into audio.Source, backed by
// github.com/jfreymuth/oggvorbis. The decoder already produces float32
// samples in [-1, 1], so conversion is a straight copy.
package vorbis
