// SPDX-License-Identifier: EPL-2.0

package audio2fseq

import "errors"

var (
	// ErrMissingDecoder indicates no decoder is registered for the
	// input file's format.
	ErrMissingDecoder = errors.New("no decoder registered for format")

	// ErrUnsupportedChannelCount indicates the source has more
	// channels than the encoder can retain.
	ErrUnsupportedChannelCount = errors.New("unsupported channel count")
)
