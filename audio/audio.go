// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"
)

// Source is a decoded PCM stream. Implementations hand out interleaved
// signed 16-bit samples until the stream is exhausted.
type Source interface {
	// SampleRate reports the stream rate in Hz.
	SampleRate() int

	// Channels reports the interleave width: 1 for mono, 2 for stereo.
	Channels() int

	// ReadSamples fills dst with interleaved 16-bit samples and reports
	// how many int16 values it wrote, counting individual samples rather
	// than frames. The stream is done when it returns 0 with io.EOF.
	ReadSamples(dst []int16) (n int, err error)

	// BufSize suggests a dst length for ReadSamples that matches the
	// decoder's internal buffering.
	BufSize() int

	// Close releases decoder resources.
	Close() error
}

// Decoder turns an encoded byte stream into a Source.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps format keys, usually file extensions, to decoders.
// The zero value is not usable; call NewRegistry.
type Registry struct {
	mu     sync.RWMutex
	codecs map[string]Decoder
}

// NewRegistry returns an empty Registry ready for Register calls.
func NewRegistry() *Registry {
	return &Registry{codecs: make(map[string]Decoder)}
}

// Register installs d under the given format key, replacing any
// previous decoder for that key.
func (r *Registry) Register(format string, d Decoder) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.codecs[format] = d
}

// Get looks up the decoder for a format key.
func (r *Registry) Get(format string) (Decoder, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.codecs[format]
	return d, ok
}
