// SPDX-License-Identifier: EPL-2.0

package fseq

import "errors"

var (
	// ErrNotFseqFile means the file does not start with the PSEQ magic.
	ErrNotFseqFile = errors.New("not an FSEQ file")

	// ErrUnsupportedCompression means the merge target carries a
	// compressed payload, which cannot be byte-sliced and recombined.
	ErrUnsupportedCompression = errors.New("cannot merge into compressed FSEQ file")

	// ErrUnsupportedVersion means the merge target is not FSEQ v2.
	ErrUnsupportedVersion = errors.New("unsupported FSEQ version")

	// ErrTruncatedChannelData means the channel data region is shorter
	// than the header declares.
	ErrTruncatedChannelData = errors.New("channel data truncated")

	// ErrInvalidFrameRate means the sample rate and step time work out
	// to zero samples per frame.
	ErrInvalidFrameRate = errors.New("step time too short for sample rate")

	// ErrFrameSizeMismatch means a frame's byte length does not match
	// the declared channels per frame.
	ErrFrameSizeMismatch = errors.New("frame size mismatch")
)
