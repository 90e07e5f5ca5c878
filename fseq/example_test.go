// SPDX-License-Identifier: EPL-2.0

package fseq_test

import (
	"bytes"
	"fmt"

	"github.com/fseqlab/audio2fseq/fseq"
)

// Example_encode demonstrates turning PCM samples into a standalone
// sequence file and reading its header back.
func Example_encode() {
	frames := fseq.EncodeFrames([]int16{1000, -1000, 2000}, 1, 2)
	width := fseq.ChannelsPerFrame(2, 1)

	var buf bytes.Buffer
	total, err := fseq.Write(&buf, frames, width, 25, fseq.MediaVariableHeader("tone.wav"))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	h, err := fseq.ReadHeader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Frames: %d\n", h.FrameCount)
	fmt.Printf("Channels per frame: %d\n", h.ChannelCount)
	fmt.Printf("Step time: %d ms\n", h.StepTimeMS)
	fmt.Printf("Total bytes: %d\n", total)
	// Output:
	// Frames: 2
	// Channels per frame: 6
	// Step time: 25 ms
	// Total bytes: 80
}

// Example_syncMarker shows where a renderer finds the sample data
// inside a frame.
func Example_syncMarker() {
	frames := fseq.EncodeFrames([]int16{258}, 1, 1)

	fmt.Printf("Frame bytes: % x\n", frames[0])
	fmt.Printf("Marker: % x\n", frames[0][:2])
	fmt.Printf("Sample (big-endian): % x\n", frames[0][2:])
	// Output:
	// Frame bytes: aa 55 01 02
	// Marker: aa 55
	// Sample (big-endian): 01 02
}
