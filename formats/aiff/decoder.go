package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/fseqlab/audio2fseq/audio"
)

// aiffReader is the slice of aiff.Decoder the source needs. Tests
// substitute a fake.
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Decoder reads AIFF containers through go-audio/aiff.
type Decoder struct{}

// Decode validates the container and returns a streaming source.
// Non-seekable input is buffered in memory first, since go-audio
// walks the IFF chunk tree with seeks.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	if dec.BitDepth != 16 {
		return nil, fmt.Errorf("%w: %d bits", ErrOnlyPCM16bitSupported, dec.BitDepth)
	}

	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedAiffLayout
	}

	return &source{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
	}, nil
}

// source adapts PCMBuffer reads to the audio.Source contract.
type source struct {
	dec        aiffReader
	sampleRate int
	channels   int
	intBuf     *goaudio.IntBuffer
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

func (s *source) BufSize() int {
	if s.intBuf == nil {
		return 4096
	}
	return cap(s.intBuf.Data)
}

func (s *source) ReadSamples(dst []int16) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	s.ensureBuf(len(dst))

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err == nil {
			err = io.EOF
		}
		return 0, err
	}

	// Decode admits 16-bit files only, so every int fits an int16.
	for i := range n {
		dst[i] = int16(s.intBuf.Data[i])
	}

	// go-audio signals end of stream with a short count, not io.EOF.
	if n < len(dst) && err == nil {
		err = io.EOF
	}
	return n, err
}

func (s *source) ensureBuf(n int) {
	if s.intBuf == nil || cap(s.intBuf.Data) < n {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, n),
			Format: s.dec.Format(),
		}
		return
	}
	s.intBuf.Data = s.intBuf.Data[:n]
}
