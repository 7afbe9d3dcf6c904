// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// ReadAll drains src and returns every sample as float64, the format the
// analysis code works in. bufferSize controls the read chunk; BufSize of the
// source is a reasonable choice.
//
// The returned slice holds interleaved samples when the source is
// multi-channel. Feed the source through a MonoMixer first when a single
// channel is wanted:
//
//	mono := audio.NewMonoMixer(audio.NewResampler(src, 11025))
//	samples, err := audio.ReadAll(mono, mono.BufSize())
func ReadAll(src Source, bufferSize int) ([]float64, error) {
	if bufferSize <= 0 {
		bufferSize = 4096
	}

	var samples []float64
	buf := make([]float32, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		for _, v := range buf[:n] {
			samples = append(samples, float64(v))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return samples, nil
}
