// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams through
// github.com/jfreymuth/oggvorbis.
//
// # Usage
//
//	f, _ := os.Open("audio.ogg")
//	src, err := vorbis.Decoder{}.Decode(f)
//	if err != nil {
//	    // not an Ogg Vorbis stream
//	}
//	defer src.Close()
//
//	buf := make([]int16, src.BufSize())
//	n, err := src.ReadSamples(buf)
//
// oggvorbis decodes to float32 values in [-1, 1]; this package scales
// them to signed 16-bit PCM, clamping anything that strays outside the
// nominal range. Channel count and sample rate come from the stream
// headers.
//
// # Frame alignment
//
// Reads move whole frames only. When the destination slice cannot hold
// one complete frame of interleaved samples, ReadSamples returns
// (0, nil) rather than splitting a frame; size the buffer as a
// multiple of Channels() to avoid losing capacity.
//
// Vorbis encoding is out of scope; the package only reads.
package vorbis
