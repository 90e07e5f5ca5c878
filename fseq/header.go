// SPDX-License-Identifier: EPL-2.0

package fseq

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Header represents the FSEQ v2 fixed header. The reserved byte and the
// 64-bit unique ID that close the 32-byte block are always written as
// zero and are not surfaced here.
type Header struct {
	DataOffset      uint16 // byte offset of the channel data region
	MinorVersion    uint8
	MajorVersion    uint8  // 2 for everything this package handles
	VarHeaderOffset uint16 // always FixedHeaderSize
	ChannelCount    uint32 // bytes per frame row
	FrameCount      uint32
	StepTimeMS      uint8 // frame duration in milliseconds
	Flags           uint8
	Compression     uint8 // CompressionNone for everything this package writes
	CompBlocks      uint8
	SparseRanges    uint8
}

// NewHeader builds a header for an uncompressed v2 sequence with the
// given grid dimensions. dataOffset must already include variable
// header length and alignment padding.
func NewHeader(channelCount, frameCount uint32, dataOffset uint16, stepTimeMS uint8) Header {
	return Header{
		DataOffset:      dataOffset,
		MinorVersion:    MinorVersion,
		MajorVersion:    MajorVersion,
		VarHeaderOffset: FixedHeaderSize,
		ChannelCount:    channelCount,
		FrameCount:      frameCount,
		StepTimeMS:      stepTimeMS,
	}
}

// Pack serializes the header to its 32-byte wire form.
func (h Header) Pack() []byte {
	buf := make([]byte, FixedHeaderSize)

	copy(buf[0:4], Magic)
	binary.LittleEndian.PutUint16(buf[4:6], h.DataOffset)
	buf[6] = h.MinorVersion
	buf[7] = h.MajorVersion
	binary.LittleEndian.PutUint16(buf[8:10], h.VarHeaderOffset)
	binary.LittleEndian.PutUint32(buf[10:14], h.ChannelCount)
	binary.LittleEndian.PutUint32(buf[14:18], h.FrameCount)
	buf[18] = h.StepTimeMS
	buf[19] = h.Flags
	buf[20] = h.Compression
	buf[21] = h.CompBlocks
	buf[22] = h.SparseRanges
	// buf[23] reserved and buf[24:32] unique ID stay zero

	return buf
}

// UnpackHeader deserializes a header from data, which must hold at
// least the HeaderPrefixSize-byte prefix. The magic is validated; no
// version or compression policy is applied here, callers check the
// fields they care about.
func UnpackHeader(data []byte) (Header, error) {
	if len(data) < HeaderPrefixSize {
		return Header{}, fmt.Errorf("fseq header too short: %d bytes, want at least %d", len(data), HeaderPrefixSize)
	}

	if !bytes.Equal(data[0:4], Magic) {
		return Header{}, fmt.Errorf("%w: magic %q", ErrNotFseqFile, data[0:4])
	}

	return Header{
		DataOffset:      binary.LittleEndian.Uint16(data[4:6]),
		MinorVersion:    data[6],
		MajorVersion:    data[7],
		VarHeaderOffset: binary.LittleEndian.Uint16(data[8:10]),
		ChannelCount:    binary.LittleEndian.Uint32(data[10:14]),
		FrameCount:      binary.LittleEndian.Uint32(data[14:18]),
		StepTimeMS:      data[18],
		Flags:           data[19],
		Compression:     data[20],
		CompBlocks:      data[21],
		SparseRanges:    data[22],
	}, nil
}
