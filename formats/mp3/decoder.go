// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/fseqlab/audio2fseq/audio"
)

// mp3Reader is the slice of gomp3.Decoder the source needs. Tests
// substitute a fake.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// Decoder reads MPEG audio through hajimehoshi/go-mp3.
type Decoder struct{}

// Decode parses the stream headers and returns a streaming source.
// go-mp3 upmixes mono input, so the source always reports two channels.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("decoding mp3 stream: %w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   2,
		buf:        make([]byte, 8192),
	}, nil
}

// source reassembles go-mp3's little-endian byte stream into samples.
type source struct {
	dec        mp3Reader
	sampleRate int
	channels   int
	buf        []byte // scratch for raw PCM, two bytes per sample
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / 2 }

func (s *source) ReadSamples(dst []int16) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := 2 * len(dst)
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	n, err := s.dec.Read(s.buf)
	if n == 0 {
		if err == nil {
			err = io.EOF
		}
		return 0, err
	}

	samples := n / 2
	for i := range samples {
		dst[i] = int16(binary.LittleEndian.Uint16(s.buf[2*i:]))
	}
	return samples, err
}
