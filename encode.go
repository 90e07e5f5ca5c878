// SPDX-License-Identifier: EPL-2.0

package audio2fseq

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/fseqlab/audio2fseq/audio"
	"github.com/fseqlab/audio2fseq/formats/aiff"
	"github.com/fseqlab/audio2fseq/formats/mp3"
	"github.com/fseqlab/audio2fseq/formats/vorbis"
	"github.com/fseqlab/audio2fseq/formats/wav"
	"github.com/fseqlab/audio2fseq/fseq"
)

const (
	// DefaultFPS is the frame rate used when neither FPS nor StepTimeMS
	// is set: 40 frames per second, 25 ms per frame.
	DefaultFPS = 40

	// DefaultSampleRate is the rate audio is resampled to before
	// encoding when SampleRate is unset.
	DefaultSampleRate = 44100

	// DefaultStartChannel is where merged audio lands when no start
	// channel is given: far past any realistic light channel range, so
	// the audio block never collides with show data by accident.
	DefaultStartChannel = 500000
)

// DefaultRegistry returns a registry with every built-in container
// decoder registered under its extension keys.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	return r
}

// Options configures a single encode run.
type Options struct {
	// Input is the audio file to encode. The decoder is chosen by
	// file extension.
	Input string

	// Output is the sequence file to write.
	Output string

	// FPS selects the frame rate when StepTimeMS is zero. Zero means
	// DefaultFPS.
	FPS int

	// StepTimeMS overrides FPS with an explicit frame duration in
	// milliseconds. Must fit in 1..255.
	StepTimeMS int

	// SampleRate is the rate audio is resampled to before encoding.
	// Zero means DefaultSampleRate.
	SampleRate int

	// MergePath names an existing sequence to overlay the audio onto.
	// Empty writes a standalone audio-only sequence.
	MergePath string

	// StartChannel positions the audio block inside the merged grid.
	// Zero is a valid position; the CLI defaults to DefaultStartChannel.
	StartChannel int

	// Stereo keeps two source channels instead of mixing down to mono.
	// Sources with more than two channels are rejected in this mode.
	Stereo bool

	// Logger receives progress at Info and Debug levels. Nil logs
	// nowhere.
	Logger hclog.Logger

	// Registry overrides the decoder set. Nil uses DefaultRegistry.
	Registry *audio.Registry
}

// Result reports what EncodeFile wrote.
type Result struct {
	// Path of the written sequence file.
	Path string

	// Bytes written, header included.
	Bytes int64

	// Frames encoded from audio, and the layout of each.
	Frames           int
	SamplesPerFrame  int
	ChannelsPerFrame int

	// SampleRate and Channels of the PCM that was encoded, after
	// mixing and resampling.
	SampleRate int
	Channels   int

	// StepTimeMS is the frame duration the audio was encoded at.
	StepTimeMS int

	// Merged reports whether the output overlays an existing sequence.
	// When true, StartChannel is the audio block position and
	// TotalChannels/TotalFrames are the union grid dimensions;
	// otherwise they describe the standalone audio grid.
	Merged        bool
	StartChannel  int
	TotalChannels int
	TotalFrames   int
}

// EncodeFile decodes opts.Input, transforms the PCM to the target
// layout, encodes it into sequence frames, and writes opts.Output,
// either standalone or merged over an existing sequence. The whole
// stream is held in memory; inputs are bounded by the usual length of
// a show soundtrack.
func EncodeFile(opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	step := opts.StepTimeMS
	if step == 0 {
		fps := opts.FPS
		if fps == 0 {
			fps = DefaultFPS
		}
		if fps > 0 {
			step = 1000 / fps
		}
	}
	if step < 1 || step > 255 {
		return nil, fmt.Errorf("step time %d ms must be between 1 and 255", step)
	}

	rate := opts.SampleRate
	if rate == 0 {
		rate = DefaultSampleRate
	}

	registry := opts.Registry
	if registry == nil {
		registry = DefaultRegistry()
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(opts.Input)), ".")
	dec, ok := registry.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingDecoder, ext)
	}

	in, err := os.Open(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	src, err := dec.Decode(in)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(opts.Input), err)
	}
	defer src.Close()

	logger.Info("decoded audio", "format", ext, "rate", src.SampleRate(), "channels", src.Channels())

	buf, err := audio.ReadAll(src)
	if err != nil {
		return nil, err
	}

	logger.Info("collected samples", "samples", len(buf.Samples), "duration", buf.Duration())

	if opts.Stereo {
		if buf.Channels > 2 {
			return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedChannelCount, buf.Channels)
		}
	} else if buf.Channels > 1 {
		buf = audio.ToMono(buf)
		logger.Debug("mixed to mono", "samples", len(buf.Samples))
	}

	if buf.Rate != rate {
		logger.Info("resampling", "from", buf.Rate, "to", rate)
		buf = audio.Resample(buf, rate)
	}

	samplesPerFrame, err := fseq.SamplesPerFrame(rate, step)
	if err != nil {
		return nil, err
	}
	channelsPerFrame := fseq.ChannelsPerFrame(samplesPerFrame, buf.Channels)

	frames := fseq.EncodeFrames(buf.Samples, buf.Channels, samplesPerFrame)

	logger.Info("encoded frames",
		"frames", len(frames),
		"samples_per_frame", samplesPerFrame,
		"channels_per_frame", channelsPerFrame,
		"step_time_ms", step)

	if logger.IsDebug() && len(frames) > 0 {
		head := frames[0]
		if len(head) > 32 {
			head = head[:32]
		}
		logger.Debug("first frame", "bytes", hex.EncodeToString(head))
	}

	out, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output: %w", err)
	}

	res := &Result{
		Path:             opts.Output,
		Frames:           len(frames),
		SamplesPerFrame:  samplesPerFrame,
		ChannelsPerFrame: channelsPerFrame,
		SampleRate:       rate,
		Channels:         buf.Channels,
		StepTimeMS:       step,
	}

	if opts.MergePath == "" {
		n, err := fseq.Write(out, frames, channelsPerFrame, uint8(step), fseq.MediaVariableHeader(opts.Input))
		if err != nil {
			out.Close()
			return nil, err
		}
		res.Bytes = n
		res.TotalChannels = channelsPerFrame
		res.TotalFrames = len(frames)
	} else {
		merger := fseq.NewMergerWithLogger(logger)
		n, totalChannels, totalFrames, err := merger.Merge(out, frames, channelsPerFrame, opts.MergePath, opts.StartChannel)
		if err != nil {
			out.Close()
			return nil, err
		}
		res.Bytes = n
		res.Merged = true
		res.StartChannel = opts.StartChannel
		res.TotalChannels = totalChannels
		res.TotalFrames = totalFrames
	}

	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("closing output: %w", err)
	}

	logger.Info("wrote sequence", "path", res.Path, "bytes", res.Bytes)

	return res, nil
}
