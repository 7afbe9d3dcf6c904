// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MonoMixer folds a multi-channel Source down to mono by averaging the
// channels of each frame. Mono input passes through untouched.
type MonoMixer struct {
	src Source
	tmp []float32
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src: src,
		tmp: make([]float32, 4096),
	}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }

func (m *MonoMixer) Close() error {
	err := m.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples fills dst with mono samples, one per source frame.
func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels == 1 {
		return m.src.ReadSamples(dst)
	}

	// One source frame per output sample.
	needed := len(dst) * channels
	if cap(m.tmp) < needed {
		m.tmp = make([]float32, needed)
	}

	n, err := m.src.ReadSamples(m.tmp[:needed])
	if n == 0 {
		return 0, err
	}
	frames := n / channels

	invChannels := 1 / float32(channels)

	switch channels {
	case 2:
		for f := range frames {
			dst[f] = (m.tmp[f*2] + m.tmp[f*2+1]) * 0.5
		}
	default:
		for f := range frames {
			var sum float32
			base := f * channels
			for c := range channels {
				sum += m.tmp[base+c]
			}
			dst[f] = sum * invChannels
		}
	}

	return frames, err
}
