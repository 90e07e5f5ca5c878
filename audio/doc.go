// SPDX-License-Identifier: EPL-2.0

// Package audio decodes, mixes, and resamples 16-bit PCM.
//
// The package sits between the container decoders and the frame
// encoder. Decoders produce a Source; this package drains it into a
// Buffer and reshapes the samples until they match the layout the
// encoder wants:
//
//	buf, err := audio.ReadAll(source)
//	buf = audio.ToMono(buf)
//	buf = audio.Resample(buf, 44100)
//
// # Sources
//
// A Source yields interleaved signed 16-bit samples:
//
//	type Source interface {
//		SampleRate() int
//		Channels() int
//		ReadSamples(dst []int16) (int, error)
//		BufSize() int
//		Close() error
//	}
//
// Every container decoder returns one, so callers drain any format the
// same way. ReadSamples counts individual int16 values, not frames; a
// stereo read of 8 values carries 4 frames.
//
// # Buffers
//
// Frame encoding needs random access to the whole stream, so the
// pipeline materializes samples in a Buffer instead of chaining
// streaming stages. A Buffer is interleaved samples plus the rate and
// channel count needed to read them back.
//
// # Mixing and resampling
//
// ToMono averages each interleaved group with integer division, which
// keeps mixdown bit-exact across platforms. Resample converts rates by
// linear interpolation; the output length is len(in) * dstRate/srcRate
// rounded down, and converting to the same rate returns the input
// unchanged. Linear interpolation is enough here: the samples feed a
// fixed-rate frame encoder, not a DAC, so the length contract matters
// more than band-limiting.
//
// # Why integer samples
//
// Samples stay int16 from container to encoder. 0 is silence, 32767
// and -32768 are full scale. Skipping the float round trip means the
// bytes a decoder produced are the bytes the encoder writes.
//
// # Registering decoders
//
// A Registry maps format keys to decoders so callers can pick a
// decoder by file extension:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, ok := reg.Get("wav")
//
// # Errors
//
// Sources report end of stream with io.EOF, optionally on the same
// call that returns the final samples. ReadAll folds that into a clean
// return and reports ErrTruncatedStream only when the drained sample
// count does not divide into whole interleaved groups.
package audio
