// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1 Audio Layer 3 streams through
// github.com/hajimehoshi/go-mp3.
//
// # Usage
//
//	f, _ := os.Open("audio.mp3")
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    // not an MP3 stream
//	}
//	defer src.Close()
//
//	buf := make([]int16, src.BufSize())
//	n, err := src.ReadSamples(buf)
//
// ReadSamples yields interleaved signed 16-bit samples at the rate the
// stream was encoded with, typically 44100 or 48000 Hz.
//
// # Channel count
//
// go-mp3 upmixes mono streams during decode, so a source from this
// package always reports two channels. Collapse back to mono with
// audio.ToMono when a single channel is wanted:
//
//	buf, _ := audio.ReadAll(src)
//	mono := audio.ToMono(buf)
//
// Encoding MP3 is out of scope; the package only reads.
package mp3
