// SPDX-License-Identifier: EPL-2.0

package beepdetect

import (
	"fmt"

	"github.com/ik5/beepdetect/dsp"
)

var (
	// ErrRateMismatch is returned by template modes when target, template
	// and configured sample rates disagree.
	ErrRateMismatch = fmt.Errorf("%w: sample rate mismatch between target, template and parameters", dsp.ErrInvalidInput)

	// ErrUnknownMode is returned for a mode string that is not one of
	// ncc, raw, spectral.
	ErrUnknownMode = fmt.Errorf("%w: unknown detection mode", dsp.ErrConfiguration)
)
