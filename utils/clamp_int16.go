// SPDX-License-Identifier: EPL-2.0

package utils

// ClampInt16 clamps v to the signed 16-bit range and truncates toward
// zero, matching the storage format of PCM sample values.
func ClampInt16(v float64) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}

	return int16(v)
}
