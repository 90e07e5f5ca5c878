// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

// ErrTruncatedStream reports a drained stream whose sample count does
// not divide into whole interleaved groups. ReadAll wraps it with the
// counts involved.
var ErrTruncatedStream = errors.New("sample stream truncated mid-frame")
