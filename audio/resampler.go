// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"github.com/fseqlab/audio2fseq/utils"
)

// Resample converts b to dstRate using linear interpolation over the
// interleaved sample stream. The output length is exactly
// len(b.Samples) * dstRate / b.Rate (integer floor), and every value is
// clamped to the signed 16-bit range before truncation. Equal rates are
// an identity: the input buffer is returned untouched.
//
// This is a plain, non-band-limited resampler. The stream is headed for
// a display refresh rate, not a DAC, so aliasing above the target
// Nyquist is acceptable; anything swapped in here must keep the output
// length and clamping contract.
func Resample(b Buffer, dstRate int) Buffer {
	if b.Rate == dstRate {
		return b
	}

	outLen := 0
	if b.Rate > 0 && dstRate > 0 {
		outLen = len(b.Samples) * dstRate / b.Rate
	}

	ratio := float64(b.Rate) / float64(dstRate)
	out := make([]int16, outLen)

	for i := range out {
		srcPos := float64(i) * ratio
		idx := int(srcPos)
		frac := srcPos - float64(idx)

		var val float64
		if idx+1 < len(b.Samples) {
			val = utils.LinearInterpolate(float64(b.Samples[idx]), float64(b.Samples[idx+1]), frac)
		} else {
			last := idx
			if last > len(b.Samples)-1 {
				last = len(b.Samples) - 1
			}
			val = float64(b.Samples[last])
		}

		out[i] = utils.ClampInt16(val)
	}

	return Buffer{
		Samples:  out,
		Rate:     dstRate,
		Channels: b.Channels,
	}
}
