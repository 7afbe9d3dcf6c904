// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"errors"
	"fmt"
)

// Error categories. Specific errors below wrap one of these, so callers can
// match either the exact condition or the whole class with errors.Is. The
// split mirrors how a serving layer maps failures: invalid input and
// configuration are caller mistakes, computation failures are internal.
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrConfiguration = errors.New("invalid configuration")
	ErrComputation   = errors.New("computation failed")
)

var (
	ErrEmptySignal        = fmt.Errorf("%w: empty signal", ErrInvalidInput)
	ErrInvalidRate        = fmt.Errorf("%w: sample rate must be positive", ErrInvalidInput)
	ErrTemplateTooShort   = fmt.Errorf("%w: template too short, need at least %d samples", ErrInvalidInput, minTemplateLen)
	ErrTargetTooShort     = fmt.Errorf("%w: target must be longer than template", ErrInvalidInput)
	ErrZeroTemplateEnergy = fmt.Errorf("%w: template energy is zero", ErrInvalidInput)
	ErrSignalTooShort     = fmt.Errorf("%w: signal too short to filter", ErrInvalidInput)
	ErrInvalidBand        = fmt.Errorf("%w: band edges must satisfy 0 < low < high < nyquist", ErrConfiguration)
)
