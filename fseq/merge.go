// SPDX-License-Identifier: EPL-2.0

package fseq

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

// mergedMediaName is the placeholder media filename recorded in the
// variable header of a merged sequence; the audio already lives in the
// channel data, so there is no external media file to reference.
const mergedMediaName = "merged"

// Merger overlays encoded audio frames onto an existing light sequence.
type Merger struct {
	logger hclog.Logger
}

// NewMerger creates a Merger that logs nowhere.
func NewMerger() *Merger {
	return NewMergerWithLogger(hclog.NewNullLogger())
}

// NewMergerWithLogger creates a Merger with a custom logger.
func NewMergerWithLogger(logger hclog.Logger) *Merger {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Merger{logger: logger}
}

// Merge reads the existing sequence at existingPath and writes to w a
// new uncompressed v2 sequence whose grid is the union of both inputs:
// max of the frame counts, and channels wide enough for the light grid
// and the audio block at startChannel. Light bytes occupy channel 0
// onward; audio bytes occupy [startChannel, startChannel+audioWidth)
// and overwrite any light bytes in that span. The existing file must be
// uncompressed (ErrUnsupportedCompression) and major version 2
// (ErrUnsupportedVersion); both are rejected before any output is
// written. The original step time is carried over.
//
// Returns the total bytes written plus the merged channel and frame
// counts.
func (m *Merger) Merge(w io.Writer, audioFrames [][]byte, audioChannelsPerFrame int, existingPath string, startChannel int) (int64, int, int, error) {
	if startChannel < 0 {
		return 0, 0, 0, fmt.Errorf("start channel must be non-negative, got %d", startChannel)
	}

	f, err := os.Open(existingPath)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("opening merge target: %w", err)
	}
	defer f.Close()

	h, err := ReadHeader(f)
	if err != nil {
		return 0, 0, 0, err
	}

	if h.Compression != CompressionNone {
		return 0, 0, 0, fmt.Errorf("%w: compression type %d", ErrUnsupportedCompression, h.Compression)
	}

	if h.MajorVersion != MajorVersion {
		return 0, 0, 0, fmt.Errorf("%w: got v%d.%d", ErrUnsupportedVersion, h.MajorVersion, h.MinorVersion)
	}

	lightData, err := ReadChannelData(f, h)
	if err != nil {
		return 0, 0, 0, err
	}

	lightChannels := int(h.ChannelCount)
	lightFrames := int(h.FrameCount)
	audioFrameCount := len(audioFrames)

	// The output grid never truncates either source.
	totalFrames := max(lightFrames, audioFrameCount)
	totalChannels := max(lightChannels, startChannel+audioChannelsPerFrame)

	m.logger.Info("light sequence", "channels", lightChannels, "frames", lightFrames)
	m.logger.Info("audio overlay", "channels", audioChannelsPerFrame, "frames", audioFrameCount, "start_channel", startChannel)
	m.logger.Info("merged output", "channels", totalChannels, "frames", totalFrames)

	varHeader := MediaVariableHeader(mergedMediaName)
	dataOffset := DataOffset(len(varHeader))

	out := NewHeader(uint32(totalChannels), uint32(totalFrames), uint16(dataOffset), h.StepTimeMS)

	if _, err := w.Write(out.Pack()); err != nil {
		return 0, 0, 0, fmt.Errorf("writing fixed header: %w", err)
	}
	written := int64(FixedHeaderSize)

	if _, err := w.Write(varHeader); err != nil {
		return written, 0, 0, fmt.Errorf("writing variable header: %w", err)
	}
	written += int64(len(varHeader))

	if pad := dataOffset - FixedHeaderSize - len(varHeader); pad > 0 {
		if _, err := w.Write(make([]byte, pad)); err != nil {
			return written, 0, 0, fmt.Errorf("writing alignment padding: %w", err)
		}
		written += int64(pad)
	}

	row := make([]byte, totalChannels)

	for frame := range totalFrames {
		clear(row)

		if frame < lightFrames {
			copy(row, lightData[frame*lightChannels:(frame+1)*lightChannels])
		}

		if frame < audioFrameCount {
			audio := audioFrames[frame]
			if len(audio) != audioChannelsPerFrame {
				return written, 0, 0, fmt.Errorf("%w: frame %d is %d bytes, want %d",
					ErrFrameSizeMismatch, frame, len(audio), audioChannelsPerFrame)
			}
			copy(row[startChannel:], audio)
		}

		if _, err := w.Write(row); err != nil {
			return written, 0, 0, fmt.Errorf("writing frame %d: %w", frame, err)
		}
		written += int64(totalChannels)
	}

	return written, totalChannels, totalFrames, nil
}
