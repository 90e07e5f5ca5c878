// SPDX-License-Identifier: EPL-2.0

package fseq

import (
	"encoding/binary"
	"fmt"
)

// SamplesPerFrame computes how many per-channel sample groups fit in
// one frame at the given rate and step time, truncating fractional
// samples. Returns ErrInvalidFrameRate when the combination yields
// zero, which would make frames carry no audio at all.
func SamplesPerFrame(sampleRate, stepTimeMS int) (int, error) {
	spf := sampleRate * stepTimeMS / 1000
	if spf <= 0 {
		return 0, fmt.Errorf("%w: %d Hz at %d ms per frame", ErrInvalidFrameRate, sampleRate, stepTimeMS)
	}
	return spf, nil
}

// ChannelsPerFrame is the byte width of one encoded audio frame: the
// sync marker plus two bytes per sample per channel.
func ChannelsPerFrame(samplesPerFrame, channels int) int {
	return SyncMarkerSize + samplesPerFrame*2*channels
}

// EncodeFrames partitions interleaved PCM into fixed-width frames. Each
// frame starts with SyncMarker, followed by samplesPerFrame interleaved
// sample groups stored high byte first, with negative values carried as
// their unsigned two's-complement form. The final frame is zero-padded
// to full width when the stream does not divide evenly; every returned
// frame has byte length ChannelsPerFrame(samplesPerFrame, channels).
func EncodeFrames(samples []int16, channels, samplesPerFrame int) [][]byte {
	if samplesPerFrame < 1 || channels < 1 {
		return nil
	}

	perFrame := samplesPerFrame * channels
	width := ChannelsPerFrame(samplesPerFrame, channels)

	frames := make([][]byte, 0, (len(samples)+perFrame-1)/perFrame)

	for start := 0; start < len(samples); start += perFrame {
		end := start + perFrame
		if end > len(samples) {
			end = len(samples)
		}

		frame := make([]byte, width)
		copy(frame, SyncMarker)

		at := SyncMarkerSize
		for _, s := range samples[start:end] {
			binary.BigEndian.PutUint16(frame[at:at+2], uint16(s))
			at += 2
		}
		// Remaining bytes stay zero: silence padding on the last frame

		frames = append(frames, frame)
	}

	return frames
}
