// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 converts a sample in [-1, 1] to a signed 16-bit PCM value.
// Out-of-range input is clamped first. Scaling uses 32767 for both signs,
// so the mapping is symmetric and -1.0 becomes -32767 rather than -32768.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	return int16(x * 32767.0)
}
