// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

// ErrInvalidDstSize is returned by ReadSamples when the destination buffer
// cannot hold whole frames, that is, its length is not a multiple of the
// source channel count.
var ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
