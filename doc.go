// SPDX-License-Identifier: EPL-2.0

// Package audio2fseq encodes PCM audio into FSEQ v2 sequence files.
//
// FSEQ is the channel-data format played back by light show controllers
// such as FPP and xLights: a grid of bytes, one row per frame, one
// column per channel. This package treats a span of those channels as
// an audio transport, packing 16-bit PCM into each frame behind a sync
// marker so a receiver can recover the stream. The payload can be
// written as a standalone audio-only sequence or overlaid onto an
// existing show file at an arbitrary channel offset.
//
// # Supported Formats
//
// Input audio is decoded by the formats subpackages:
//   - WAV (PCM 8/16/24/32-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// # Quick Start
//
// The simplest way to encode a file is EncodeFile:
//
//	res, err := audio2fseq.EncodeFile(audio2fseq.Options{
//	    Input:  "soundtrack.wav",
//	    Output: "soundtrack.fseq",
//	})
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Printf("%d frames, %d channels per frame\n",
//	    res.Frames, res.ChannelsPerFrame)
//
// To overlay the audio onto an existing show sequence:
//
//	res, err := audio2fseq.EncodeFile(audio2fseq.Options{
//	    Input:        "soundtrack.wav",
//	    Output:       "show_with_audio.fseq",
//	    MergePath:    "show.fseq",
//	    StartChannel: audio2fseq.DefaultStartChannel,
//	})
//
// # Processing Pipeline
//
// EncodeFile runs a fixed batch pipeline:
//
//	decode -> mix to mono -> resample -> frame encode -> write/merge
//
// Each stage is available separately for callers that need more
// control: the audio subpackage holds the buffer transforms (ToMono,
// Resample, ReadAll), and the fseq subpackage holds the format engine
// (EncodeFrames, Write, Merger).
//
// # Frame Layout
//
// Every encoded frame is channelsPerFrame bytes: a two-byte sync
// marker 0xAA 0x55, then samplesPerFrame interleaved 16-bit samples
// per channel, high byte first. samplesPerFrame derives from the
// sample rate and the frame duration; at the defaults (44100 Hz, 40
// fps) a mono frame carries 1102 samples and spans 2206 channels.
//
// # Logging
//
// The library is silent by default. Pass an hclog.Logger in Options to
// see per-stage progress; Debug level adds a hex dump of the first
// frame's leading bytes.
package audio2fseq
