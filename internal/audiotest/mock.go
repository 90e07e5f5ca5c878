// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides synthetic PCM sources for tests. The
// sources satisfy audio.Source without importing that package.
package audiotest

import (
	"io"
	"math"
)

// MockSource emits a fixed number of frames from a per-frame generator.
// Every channel of a frame carries the same value.
type MockSource struct {
	rate     int
	channels int
	frames   int
	read     int // frames handed out so far
	gen      func(frame int) int16
}

// NewSilentSource returns a source of all-zero samples.
func NewSilentSource(rate, channels, frames int) *MockSource {
	return NewConstantSource(rate, channels, frames, 0)
}

// NewConstantSource returns a source where every sample is value.
func NewConstantSource(rate, channels, frames int, value int16) *MockSource {
	return &MockSource{
		rate:     rate,
		channels: channels,
		frames:   frames,
		gen:      func(int) int16 { return value },
	}
}

// NewSineSource returns a half-scale sine tone at the given frequency.
func NewSineSource(rate, channels, frames int, freq float64) *MockSource {
	return &MockSource{
		rate:     rate,
		channels: channels,
		frames:   frames,
		gen: func(frame int) int16 {
			t := float64(frame) / float64(rate)
			return int16(16384 * math.Sin(2*math.Pi*freq*t))
		},
	}
}

// NewRampSource returns a source whose sample value is the frame index
// truncated to int16. Handy for asserting exact frame layouts downstream.
func NewRampSource(rate, channels, frames int) *MockSource {
	return &MockSource{
		rate:     rate,
		channels: channels,
		frames:   frames,
		gen:      func(frame int) int16 { return int16(frame) },
	}
}

func (m *MockSource) SampleRate() int { return m.rate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

// ReadSamples fills dst with whole frames. The final read pairs the
// remaining samples with io.EOF.
func (m *MockSource) ReadSamples(dst []int16) (int, error) {
	if m.read >= m.frames {
		return 0, io.EOF
	}

	n := len(dst) / m.channels
	if left := m.frames - m.read; n > left {
		n = left
	}

	for f := 0; f < n; f++ {
		v := m.gen(m.read + f)
		for c := 0; c < m.channels; c++ {
			dst[f*m.channels+c] = v
		}
	}
	m.read += n

	if m.read == m.frames {
		return n * m.channels, io.EOF
	}
	return n * m.channels, nil
}
