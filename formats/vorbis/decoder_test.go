package vorbis

import (
	"bytes"
	"io"
	"math"
	"testing"
)

// mockOggReader plays back canned float32 PCM frames.
type mockOggReader struct {
	sampleRate int
	channels   int
	samples    []float32
	offset     int
	failRead   bool
}

func (m *mockOggReader) SampleRate() int { return m.sampleRate }
func (m *mockOggReader) Channels() int   { return m.channels }

func (m *mockOggReader) Read(buf []float32) (int, error) {
	if m.failRead {
		return 0, io.ErrUnexpectedEOF
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	frames := len(buf) / m.channels
	if avail := (len(m.samples) - m.offset) / m.channels; frames > avail {
		frames = avail
	}

	copy(buf, m.samples[m.offset:m.offset+frames*m.channels])
	m.offset += frames * m.channels

	if m.offset >= len(m.samples) {
		return frames, io.EOF
	}
	return frames, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("This is not Ogg data")))
	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader(nil))
	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &mockOggReader{sampleRate: 48000, channels: 2},
		sampleRate: 48000,
		channels:   2,
		frameBuf:   make([]float32, 4096),
	}

	if src.SampleRate() != 48000 {
		t.Errorf("SampleRate() = %d, want 48000", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if src.BufSize() <= 0 {
		t.Errorf("BufSize() = %d, want positive", src.BufSize())
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	testSamples := []float32{0, 0.5, -0.5, 1, -1, 0.25}

	src := &source{
		dec:        &mockOggReader{sampleRate: 44100, channels: 2, samples: testSamples},
		sampleRate: 44100,
		channels:   2,
		frameBuf:   make([]float32, 4096),
	}

	dst := make([]float32, 6)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 6 {
		t.Fatalf("ReadSamples() n = %d, want 6", n)
	}

	for i := range n {
		if math.Abs(float64(dst[i]-testSamples[i])) > 1e-6 {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], testSamples[i])
		}
	}
}

func TestSource_ReadSamples_EOF(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &mockOggReader{sampleRate: 44100, channels: 1, samples: []float32{0.1, 0.2}},
		sampleRate: 44100,
		channels:   1,
		frameBuf:   make([]float32, 4096),
	}

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)
	if n != 2 {
		t.Errorf("ReadSamples() n = %d, want 2", n)
	}
	if err != io.EOF && err != nil {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}

	n, err = src.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Errorf("second ReadSamples() = %d, %v, want 0, io.EOF", n, err)
	}
}

func TestSource_ReadSamples_EmptyDst(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &mockOggReader{sampleRate: 44100, channels: 1, samples: []float32{0.1}},
		sampleRate: 44100,
		channels:   1,
		frameBuf:   make([]float32, 4096),
	}

	n, err := src.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v, want 0, nil", n, err)
	}
}
