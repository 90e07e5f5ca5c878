// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF (Audio Interchange File Format) files
// through github.com/go-audio/aiff.
//
// AIFF stores big-endian PCM inside an IFF container and is the usual
// uncompressed interchange format on Apple systems. Only 16-bit PCM
// is accepted; other bit depths and compressed AIFF-C data are
// rejected at Decode time.
//
// # Usage
//
//	f, _ := os.Open("audio.aif")
//	src, err := aiff.Decoder{}.Decode(f)
//	if err != nil {
//	    // not AIFF, or an unsupported layout
//	}
//	defer src.Close()
//
//	buf := make([]int16, src.BufSize())
//	n, err := src.ReadSamples(buf)
//
// ReadSamples yields interleaved signed 16-bit samples. The container's
// big-endian byte order is handled by the underlying reader.
//
// # Errors
//
// Decode reports ErrNotAiffFile for foreign input,
// ErrOnlyPCM16bitSupported (wrapped with the offending bit depth) for
// 8, 24, or 32-bit material, and ErrUnsupportedAiffLayout when the
// container lacks a usable COMM chunk.
//
// go-audio needs seekable input. Decode accepts any io.Reader and
// buffers non-seekable streams in memory, so prefer handing it an
// *os.File for large inputs.
package aiff
