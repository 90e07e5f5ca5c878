// SPDX-License-Identifier: EPL-2.0

// Command audio2fseq encodes an audio file into FSEQ v2 channel data,
// either as a standalone sequence or merged into an existing show file.
//
// Usage:
//
//	audio2fseq song.wav -o audio.fseq --fps 40
//	audio2fseq song.mp3 -o show_with_audio.fseq --merge show.fseq
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/fseqlab/audio2fseq"
)

var (
	outputPath   string
	fps          int
	stepTimeMS   int
	sampleRate   int
	mergePath    string
	startChannel int
	stereo       bool
	verbose      bool
	rootCmd      *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "audio2fseq <input>",
		Short: "Encode audio into FSEQ v2 channel data",
		Long: `Encode audio into FSEQ v2 channel data for frame-locked playback.

The input may be WAV, MP3, Ogg Vorbis, or AIFF. Audio is mixed to mono,
resampled, and packed into sequence frames behind a sync marker, then
written standalone or merged into an existing .fseq at a channel offset.

Examples:
  audio2fseq song.wav -o audio.fseq --fps 40
  audio2fseq song.mp3 -o merged.fseq --merge show.fseq --start-channel 500000`,
		Args:          cobra.ExactArgs(1),
		RunE:          encode,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output .fseq file path (required)")
	rootCmd.Flags().IntVar(&fps, "fps", audio2fseq.DefaultFPS, "Frame rate in fps, determines step time")
	rootCmd.Flags().IntVar(&stepTimeMS, "step-time", 0, "Step time in ms (overrides --fps)")
	rootCmd.Flags().IntVar(&sampleRate, "sample-rate", audio2fseq.DefaultSampleRate, "Output sample rate in Hz")
	rootCmd.Flags().StringVar(&mergePath, "merge", "", "Existing .fseq to merge audio into (at --start-channel offset)")
	rootCmd.Flags().IntVar(&startChannel, "start-channel", audio2fseq.DefaultStartChannel, "Channel offset for merged mode")
	rootCmd.Flags().BoolVar(&stereo, "stereo", false, "Keep stereo (default is mono to save channels)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	if err := rootCmd.MarkFlagRequired("output"); err != nil {
		panic(err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func encode(cmd *cobra.Command, args []string) error {
	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "audio2fseq",
		Level: level,
	})

	res, err := audio2fseq.EncodeFile(audio2fseq.Options{
		Input:        args[0],
		Output:       outputPath,
		FPS:          fps,
		StepTimeMS:   stepTimeMS,
		SampleRate:   sampleRate,
		MergePath:    mergePath,
		StartChannel: startChannel,
		Stereo:       stereo,
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	if res.Merged {
		fmt.Printf("Wrote merged FSEQ: %s\n", res.Path)
	} else {
		fmt.Printf("Wrote standalone FSEQ: %s\n", res.Path)
	}
	fmt.Printf("  Size:           %d bytes (%.1f MB)\n", res.Bytes, float64(res.Bytes)/1024/1024)
	fmt.Printf("  Grid:           %d channels x %d frames\n", res.TotalChannels, res.TotalFrames)
	fmt.Printf("  Audio frames:   %d (%d ms step, %d samples/frame)\n", res.Frames, res.StepTimeMS, res.SamplesPerFrame)

	// Playback config for FPP's HTTPVirtualDisplay output, which is
	// 1-based on channel numbers.
	displayStart := 1
	if res.Merged {
		displayStart = res.StartChannel + 1
	}
	fmt.Printf("\n--- FPP Configuration ---\n")
	fmt.Printf("HTTPVirtualDisplay startChannel: %d\n", displayStart)
	fmt.Printf("HTTPVirtualDisplay channelCount: %d\n", res.ChannelsPerFrame)

	return nil
}
