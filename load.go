// SPDX-License-Identifier: EPL-2.0

package beepdetect

import (
	"fmt"
	"io"

	"github.com/ik5/beepdetect/audio"
	"github.com/ik5/beepdetect/dsp"
)

// DecodeMono decodes r with dec and collapses the stream to mono float64
// samples at targetRate, the form the detector consumes. bufSize controls
// the pipeline read chunk; pass 0 for the source's preferred size.
func DecodeMono(r io.Reader, dec audio.Decoder, targetRate, bufSize int) (dsp.Signal, error) {
	src, err := dec.Decode(r)
	if err != nil {
		return dsp.Signal{}, fmt.Errorf("decode: %w", err)
	}
	defer src.Close()

	mono := audio.NewMonoMixer(audio.NewResampler(src, targetRate))

	if bufSize <= 0 {
		bufSize = mono.BufSize()
	}

	samples, err := audio.ReadAll(mono, bufSize)
	if err != nil {
		return dsp.Signal{}, fmt.Errorf("read: %w", err)
	}

	return dsp.Signal{Samples: samples, Rate: targetRate}, nil
}
