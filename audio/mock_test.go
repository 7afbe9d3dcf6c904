package audio

import (
	"io"
	"math"
)

// mockSource generates deterministic PCM for tests. The waveform function
// receives the frame index and channel and returns the sample value.
type mockSource struct {
	sampleRate  int
	channels    int
	totalFrames int
	generated   int
	waveform    func(frame, channel int) float32
}

func newMockSource(sampleRate, channels, totalFrames int, waveform func(frame, channel int) float32) *mockSource {
	return &mockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

func newSilentSource(sampleRate, channels, totalFrames int) *mockSource {
	return newMockSource(sampleRate, channels, totalFrames, func(frame, channel int) float32 {
		return 0
	})
}

func newSineSource(sampleRate, channels, totalFrames int, frequency float64) *mockSource {
	return newMockSource(sampleRate, channels, totalFrames, func(frame, channel int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

func newConstantSource(sampleRate, channels, totalFrames int, value float32) *mockSource {
	return newMockSource(sampleRate, channels, totalFrames, func(frame, channel int) float32 {
		return value
	})
}

func (m *mockSource) SampleRate() int { return m.sampleRate }
func (m *mockSource) Channels() int   { return m.channels }
func (m *mockSource) BufSize() int    { return 4096 }
func (m *mockSource) Close() error    { return nil }

// Reset rewinds the source so benchmarks can reuse it.
func (m *mockSource) Reset() { m.generated = 0 }

func (m *mockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	frames := len(dst) / m.channels
	if avail := m.totalFrames - m.generated; frames > avail {
		frames = avail
	}

	for f := range frames {
		idx := m.generated + f
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(idx, ch)
		}
	}

	m.generated += frames
	written := frames * m.channels

	if m.generated >= m.totalFrames {
		return written, io.EOF
	}

	return written, nil
}
