// SPDX-License-Identifier: EPL-2.0

package beepdetect

import (
	"fmt"
	"math"
)

// FormatTime renders a time offset in seconds as MM:SS.mmm. NaN and negative
// offsets render as the zero timestamp.
func FormatTime(seconds float64) string {
	if math.IsNaN(seconds) || seconds < 0 {
		return "00:00.000"
	}

	minutes := int(seconds / 60)
	rem := seconds - float64(minutes)*60

	return fmt.Sprintf("%02d:%06.3f", minutes, rem)
}
