package utils

// Float32ToInt16 converts a normalized [-1, 1] sample to 16-bit PCM.
// Input is clamped to [-1, 1] and scaled by 32767, mapping full scale
// to +/-32767; the int16 minimum -32768 is never produced.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(x * 32767.0)
}
