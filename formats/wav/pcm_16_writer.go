// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// riffHeader is the canonical 44-byte PCM WAV preamble: RIFF chunk,
// "fmt " chunk, and the data chunk header, all little-endian.
type riffHeader struct {
	RiffID     [4]byte
	RiffSize   uint32
	WaveID     [4]byte
	FmtID      [4]byte
	FmtSize    uint32
	AudioFmt   uint16 // 1 = integer PCM
	Channels   uint16
	SampleRate uint32
	ByteRate   uint32
	BlockAlign uint16
	BitDepth   uint16
	DataID     [4]byte
	DataSize   uint32
}

// WriteWAV16 writes interleaved 16-bit PCM as a canonical WAV file.
// channels must be at least 1 and samples must hold a whole number of
// interleaved frames.
func WriteWAV16(w io.Writer, sampleRate, channels int, samples []int16) error {
	dataSize := uint32(2 * len(samples))

	hdr := riffHeader{
		RiffID:     [4]byte{'R', 'I', 'F', 'F'},
		RiffSize:   36 + dataSize,
		WaveID:     [4]byte{'W', 'A', 'V', 'E'},
		FmtID:      [4]byte{'f', 'm', 't', ' '},
		FmtSize:    16,
		AudioFmt:   1,
		Channels:   uint16(channels),
		SampleRate: uint32(sampleRate),
		ByteRate:   uint32(sampleRate * channels * 2),
		BlockAlign: uint16(channels * 2),
		BitDepth:   16,
		DataID:     [4]byte{'d', 'a', 't', 'a'},
		DataSize:   dataSize,
	}
	if err := binary.Write(w, binary.LittleEndian, hdr); err != nil {
		return fmt.Errorf("writing wav header: %w", err)
	}

	// Serialize sample data through a bounded scratch buffer.
	const chunk = 8192
	buf := make([]byte, 2*min(len(samples), chunk))

	for len(samples) > 0 {
		n := min(len(samples), chunk)
		for i, s := range samples[:n] {
			binary.LittleEndian.PutUint16(buf[2*i:], uint16(s))
		}
		if _, err := w.Write(buf[:2*n]); err != nil {
			return fmt.Errorf("writing wav data: %w", err)
		}
		samples = samples[n:]
	}

	return nil
}
