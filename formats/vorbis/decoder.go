package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/fseqlab/audio2fseq/audio"
	"github.com/fseqlab/audio2fseq/utils"
)

// oggReader is the slice of oggvorbis.Reader the source needs. Tests
// substitute a fake.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// Decoder reads Ogg Vorbis streams through jfreymuth/oggvorbis.
type Decoder struct{}

// Decode parses the Ogg headers and returns a streaming source.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("decoding ogg stream: %w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
		frameBuf:   make([]float32, 4096),
	}, nil
}

// source scales oggvorbis's normalized floats to 16-bit PCM.
type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	frameBuf   []float32 // scratch for decoded values before scaling
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.frameBuf) }

func (s *source) ReadSamples(dst []int16) (int, error) {
	// oggvorbis hands out whole frames only, so round the request down
	// to a multiple of the channel count.
	want := len(dst) / s.channels * s.channels
	if want == 0 {
		return 0, nil
	}

	if cap(s.frameBuf) < want {
		s.frameBuf = make([]float32, want)
	}
	s.frameBuf = s.frameBuf[:want]

	n, err := s.dec.Read(s.frameBuf)
	if n == 0 {
		if err == nil {
			err = io.EOF
		}
		return 0, err
	}

	for i := range n {
		dst[i] = utils.Float32ToInt16(s.frameBuf[i])
	}
	return n, err
}
