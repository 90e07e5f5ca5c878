// SPDX-License-Identifier: EPL-2.0

package fseq

import (
	"fmt"
	"io"
)

// ReadHeader reads and decodes the fixed header prefix from r, which
// must be positioned at the start of the file.
func ReadHeader(r io.Reader) (Header, error) {
	buf := make([]byte, HeaderPrefixSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return Header{}, fmt.Errorf("reading fseq header: %w", err)
	}

	return UnpackHeader(buf)
}

// ReadChannelData seeks to the channel data region described by h and
// returns exactly ChannelCount x FrameCount bytes of it, ignoring any
// trailing bytes past the declared grid. The declared counts are not
// trusted: the read is bounded by what r actually holds, and a region
// shorter than declared returns ErrTruncatedChannelData.
func ReadChannelData(r io.ReadSeeker, h Header) ([]byte, error) {
	if _, err := r.Seek(int64(h.DataOffset), io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking to channel data: %w", err)
	}

	// The counts come from the file, so their product can exceed both
	// the actual region and the int64 range. Read what is there and
	// compare lengths afterwards; never allocate from the declared
	// product.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading channel data: %w", err)
	}

	size := uint64(h.ChannelCount) * uint64(h.FrameCount)
	if uint64(len(data)) < size {
		return nil, fmt.Errorf("%w: read %d of %d bytes", ErrTruncatedChannelData, len(data), size)
	}

	return data[:size], nil
}
