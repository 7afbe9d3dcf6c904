// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"
)

// MockSource generates audio data for tests. It implements the
// audio.Source interface (without importing it, to avoid cycles).
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // per channel
	generated    int // per channel
	waveform     func(sample, channel int) float32
}

// NewMockSource creates a mock source producing totalSamples frames from the
// given waveform function.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

// NewSilentSource creates a mock source that generates silence.
func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample, channel int) float32 {
		return 0
	})
}

// NewSineSource creates a mock source that generates a sine wave at the
// given frequency on every channel.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample, channel int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource creates a mock source that generates a constant value.
func NewConstantSource(sampleRate, channels, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample, channel int) float32 {
		return value
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the source so it can be read again.
func (m *MockSource) Reset() { m.generated = 0 }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	frames := len(dst) / m.channels
	if remaining := m.totalSamples - m.generated; frames > remaining {
		frames = remaining
	}

	for f := 0; f < frames; f++ {
		idx := m.generated + f
		for c := 0; c < m.channels; c++ {
			dst[f*m.channels+c] = m.waveform(idx, c)
		}
	}
	m.generated += frames

	written := frames * m.channels
	if m.generated >= m.totalSamples {
		return written, io.EOF
	}
	return written, nil
}
