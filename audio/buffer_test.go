// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/fseqlab/audio2fseq/internal/audiotest"
)

// raggedSource claims stereo but emits an odd number of samples.
type raggedSource struct {
	emitted bool
}

func (r *raggedSource) SampleRate() int { return 8000 }
func (r *raggedSource) Channels() int   { return 2 }
func (r *raggedSource) BufSize() int    { return 16 }
func (r *raggedSource) Close() error    { return nil }

func (r *raggedSource) ReadSamples(dst []int16) (int, error) {
	if r.emitted {
		return 0, io.EOF
	}
	r.emitted = true
	dst[0], dst[1], dst[2] = 1, 2, 3
	return 3, io.EOF
}

// brokenSource fails partway through the stream.
type brokenSource struct {
	reads int
}

func (b *brokenSource) SampleRate() int { return 8000 }
func (b *brokenSource) Channels() int   { return 1 }
func (b *brokenSource) BufSize() int    { return 8 }
func (b *brokenSource) Close() error    { return nil }

func (b *brokenSource) ReadSamples(dst []int16) (int, error) {
	b.reads++
	if b.reads > 2 {
		return 0, errors.New("device unplugged")
	}
	for i := range dst {
		dst[i] = int16(b.reads)
	}
	return len(dst), nil
}

func TestReadAll_DrainsSource(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(44100, 2, 1000, 42)

	buf, err := ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	if buf.Rate != 44100 {
		t.Errorf("ReadAll() Rate = %d, want 44100", buf.Rate)
	}
	if buf.Channels != 2 {
		t.Errorf("ReadAll() Channels = %d, want 2", buf.Channels)
	}
	if len(buf.Samples) != 2000 {
		t.Fatalf("ReadAll() len = %d, want 2000", len(buf.Samples))
	}
	for i, s := range buf.Samples {
		if s != 42 {
			t.Fatalf("Samples[%d] = %d, want 42", i, s)
		}
	}
}

func TestReadAll_SpansManyReads(t *testing.T) {
	t.Parallel()

	// Well past BufSize so the loop runs several times
	src := audiotest.NewSineSource(44100, 1, 20000, 440.0)

	buf, err := ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	if len(buf.Samples) != 20000 {
		t.Errorf("ReadAll() len = %d, want 20000", len(buf.Samples))
	}
}

func TestReadAll_EmptySource(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 1, 0)

	buf, err := ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	if len(buf.Samples) != 0 {
		t.Errorf("ReadAll() len = %d, want 0", len(buf.Samples))
	}
	if buf.Rate != 8000 {
		t.Errorf("ReadAll() Rate = %d, want 8000", buf.Rate)
	}
}

func TestReadAll_TruncatedStream(t *testing.T) {
	t.Parallel()

	_, err := ReadAll(&raggedSource{})
	if !errors.Is(err, ErrTruncatedStream) {
		t.Errorf("ReadAll() error = %v, want ErrTruncatedStream", err)
	}
}

func TestReadAll_PropagatesSourceError(t *testing.T) {
	t.Parallel()

	_, err := ReadAll(&brokenSource{})
	if err == nil {
		t.Fatal("ReadAll() error = nil, want source failure")
	}
	if errors.Is(err, ErrTruncatedStream) {
		t.Error("ReadAll() wrapped a source failure as ErrTruncatedStream")
	}
}

func TestBuffer_Frames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		samples  int
		channels int
		want     int
	}{
		{"mono", 100, 1, 100},
		{"stereo", 100, 2, 50},
		{"quad", 100, 4, 25},
		{"ragged stereo", 101, 2, 50},
		{"zero channels", 100, 0, 0},
		{"empty", 0, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Buffer{Samples: make([]int16, tt.samples), Channels: tt.channels}
			if got := b.Frames(); got != tt.want {
				t.Errorf("Frames() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBuffer_Duration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		samples  int
		rate     int
		channels int
		want     time.Duration
	}{
		{"one second mono", 44100, 44100, 1, time.Second},
		{"one second stereo", 88200, 44100, 2, time.Second},
		{"half second", 4000, 8000, 1, 500 * time.Millisecond},
		{"zero rate", 44100, 0, 1, 0},
		{"empty", 0, 44100, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Buffer{
				Samples:  make([]int16, tt.samples),
				Rate:     tt.rate,
				Channels: tt.channels,
			}
			if got := b.Duration(); got != tt.want {
				t.Errorf("Duration() = %v, want %v", got, tt.want)
			}
		})
	}
}

// BenchmarkReadAll benchmarks draining a one-second stereo source
func BenchmarkReadAll(b *testing.B) {
	b.ReportAllocs()

	for b.Loop() {
		src := audiotest.NewSilentSource(44100, 2, 44100)
		_, _ = ReadAll(src)
	}
}
