// SPDX-License-Identifier: EPL-2.0

// Package fseq reads and writes FSEQ v2 sequence files and encodes PCM
// audio into their channel data.
//
// An FSEQ v2 file stores, per time step ("frame"), one byte per output
// channel. This package repurposes a span of those channels to carry
// raw 16-bit audio samples so that a player stepping through frames at
// a fixed rate can reconstruct the audio in lockstep with the lights.
//
// # File Layout
//
// All multi-byte integers are little-endian:
//
//	offset 0   : magic "PSEQ" (4 bytes)
//	offset 4   : channel data offset (u16)
//	offset 6   : minor version (u8)
//	offset 7   : major version (u8), always 2
//	offset 8   : variable header offset (u16), always 32
//	offset 10  : channels per frame (u32)
//	offset 14  : frame count (u32)
//	offset 18  : step time in ms (u8)
//	offset 19  : flags (u8)
//	offset 20  : compression type (u8), 0 = uncompressed
//	offset 21  : compression block count (u8)
//	offset 22  : sparse range count (u8)
//	offset 23  : reserved (u8)
//	offset 24  : unique ID (u64), written as 0
//	offset 32  : variable header records
//	<4-byte aligned> : channel data, frame count rows of channels-per-frame bytes
//
// Variable header records are a two-byte ASCII tag, a u16 value length,
// and the value bytes; textual values end in NUL. This encoder writes
// an "mf" record naming the source media and an "sp" record naming the
// producer.
//
// # Audio Frames
//
// Each audio frame starts with the sync marker 0xAA 0x55, then carries
// interleaved 16-bit samples, high byte first, negative values in
// two's-complement unsigned form. All frames in a sequence share one
// byte width; the final frame is padded with zero bytes (silence).
// ChannelsPerFrame gives the width for a sample count and channel
// layout, SamplesPerFrame derives the per-frame sample count from the
// rate and step time, and EncodeFrames produces the frame sequence.
//
// # Writing and Merging
//
// Write emits a standalone sequence whose channel data is purely the
// encoded audio. Merger overlays audio frames onto an existing light
// sequence at a caller-chosen channel offset, growing the grid to the
// union of both sources; see Merger.Merge for the exact semantics.
//
// Compressed payloads and sparse channel ranges are out of scope: the
// reader rejects compressed merge targets and the writer only emits
// uncompressed dense grids.
package fseq
