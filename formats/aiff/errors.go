// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile is returned when the input lacks a valid FORM/AIFF header.
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrOnlyPCM16bitSupported is returned for AIFF files with a bit depth
	// other than 16.
	ErrOnlyPCM16bitSupported = errors.New("only 16-bit PCM AIFF is supported")

	// ErrUnsupportedAiffLayout is returned when the sample rate or channel
	// count is missing or nonsensical.
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")
)
