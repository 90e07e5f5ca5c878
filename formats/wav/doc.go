// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Decoding uses the github.com/go-audio/wav library and accepts PCM at
// 8, 16, 24 and 32 bits per sample; every width is scaled to the
// signed 16-bit range on the way out (8-bit input is treated as
// unsigned per the WAV convention, wider samples keep their high 16
// bits). Any other width fails with ErrUnsupportedSampleWidth.
//
// Encoding is deliberately narrower: WriteWAV16 emits the canonical
// 44-byte-header PCM 16-bit layout, which is all the test fixtures and
// round trips in this project need.
//
// # Usage
//
//	decoder := wav.Decoder{}
//	src, err := decoder.Decode(file)
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
// The returned source reads interleaved int16 samples at the file's
// native rate and channel count.
package wav
