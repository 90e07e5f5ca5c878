// SPDX-License-Identifier: EPL-2.0

package fseq

// Core format constants. These are part of the FSEQ v2 wire layout and
// never change; see doc.go for the full byte map.

var (
	// Magic identifies an FSEQ sequence file.
	Magic = []byte("PSEQ")

	// SyncMarker prefixes the audio payload inside every frame. A
	// renderer scans for it to locate the first PCM byte.
	SyncMarker = []byte{0xAA, 0x55}
)

const (
	// FixedHeaderSize is the byte length of the fixed header.
	FixedHeaderSize = 32

	// HeaderPrefixSize covers the fixed header up through the sparse
	// range count, the prefix every read decision depends on.
	HeaderPrefixSize = 23

	// MajorVersion and MinorVersion are the only sequence version this
	// package reads or writes.
	MajorVersion = 2
	MinorVersion = 0

	// ChannelDataAlignment pads the channel data region to start on a
	// 4-byte boundary.
	ChannelDataAlignment = 4

	// SyncMarkerSize is the byte length of SyncMarker.
	SyncMarkerSize = 2

	// CompressionNone marks an uncompressed channel data payload.
	CompressionNone = 0

	// Variable header tag codes.
	TagMediaFile        = "mf" // source media filename
	TagSequenceProducer = "sp" // program that wrote the sequence

	// Producer is the value written under TagSequenceProducer.
	Producer = "fseqlab audio2fseq"
)
