// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"time"
)

// Buffer holds a fully decoded PCM stream: interleaved signed 16-bit
// samples tagged with their sample rate and channel count. Transform
// functions consume a Buffer and return a fresh one; they never mutate
// the input in place.
type Buffer struct {
	Samples  []int16
	Rate     int // sample rate in Hz
	Channels int // 1=mono, 2=stereo
}

// Frames returns the number of per-channel sample frames in the buffer.
func (b Buffer) Frames() int {
	if b.Channels < 1 {
		return 0
	}
	return len(b.Samples) / b.Channels
}

// Duration reports the playing time of the buffer.
func (b Buffer) Duration() time.Duration {
	if b.Rate < 1 {
		return 0
	}
	return time.Duration(b.Frames()) * time.Second / time.Duration(b.Rate)
}

// ReadAll drains src into a Buffer, collecting the entire stream in
// memory. io.EOF terminates the collection normally; any other error
// aborts it. The returned buffer carries the source's rate and channel
// count, and its sample count is always a whole number of frames.
// Anything else means a multi-channel container was cut off mid-frame
// and ReadAll reports ErrTruncatedStream.
func ReadAll(src Source) (Buffer, error) {
	bufSize := src.BufSize()
	if bufSize < 1 {
		bufSize = 4096
	}

	samples := make([]int16, 0, bufSize)
	buf := make([]int16, bufSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return Buffer{}, fmt.Errorf("reading samples: %w", err)
		}
	}

	channels := src.Channels()
	if channels > 1 && len(samples)%channels != 0 {
		return Buffer{}, fmt.Errorf("%w: %d samples over %d channels",
			ErrTruncatedStream, len(samples), channels)
	}

	return Buffer{
		Samples:  samples,
		Rate:     src.SampleRate(),
		Channels: channels,
	}, nil
}
