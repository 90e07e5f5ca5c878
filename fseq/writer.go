// SPDX-License-Identifier: EPL-2.0

package fseq

import (
	"fmt"
	"io"
	"math"
)

// alignUp rounds n up to the next multiple of align.
func alignUp(n, align int) int {
	return n + (align-n%align)%align
}

// DataOffset computes where channel data starts for a variable header
// of the given length: the fixed header plus the records, padded to
// ChannelDataAlignment.
func DataOffset(varHeaderLen int) int {
	return alignUp(FixedHeaderSize+varHeaderLen, ChannelDataAlignment)
}

// Write emits a standalone uncompressed FSEQ v2 file: fixed header,
// variable header, alignment padding, then every frame back to back.
// The variable header must leave the data offset within its 16-bit
// header field. Each frame must be exactly channelsPerFrame bytes; a
// mismatch aborts with ErrFrameSizeMismatch mid-stream, so callers
// that need atomicity should write to a temporary path and rename.
// Returns the total bytes written.
func Write(w io.Writer, frames [][]byte, channelsPerFrame int, stepTimeMS uint8, variableHeader []byte) (int64, error) {
	dataOffset := DataOffset(len(variableHeader))
	if dataOffset > math.MaxUint16 {
		return 0, fmt.Errorf("variable header too long: data offset %d exceeds the 16-bit header field", dataOffset)
	}

	h := NewHeader(uint32(channelsPerFrame), uint32(len(frames)), uint16(dataOffset), stepTimeMS)

	if _, err := w.Write(h.Pack()); err != nil {
		return 0, fmt.Errorf("writing fixed header: %w", err)
	}
	written := int64(FixedHeaderSize)

	if _, err := w.Write(variableHeader); err != nil {
		return written, fmt.Errorf("writing variable header: %w", err)
	}
	written += int64(len(variableHeader))

	if pad := dataOffset - FixedHeaderSize - len(variableHeader); pad > 0 {
		if _, err := w.Write(make([]byte, pad)); err != nil {
			return written, fmt.Errorf("writing alignment padding: %w", err)
		}
		written += int64(pad)
	}

	for i, frame := range frames {
		if len(frame) != channelsPerFrame {
			return written, fmt.Errorf("%w: frame %d is %d bytes, want %d",
				ErrFrameSizeMismatch, i, len(frame), channelsPerFrame)
		}

		if _, err := w.Write(frame); err != nil {
			return written, fmt.Errorf("writing frame %d: %w", i, err)
		}
		written += int64(len(frame))
	}

	return written, nil
}
