// SPDX-License-Identifier: EPL-2.0

package fseq

import (
	"bytes"
	"errors"
	"testing"
)

func TestDataOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		varHeaderLen int
		want         int
	}{
		{0, 32},
		{1, 36},
		{4, 36},
		{34, 68},
		{32, 64},
	}

	for _, tt := range tests {
		if got := DataOffset(tt.varHeaderLen); got != tt.want {
			t.Errorf("DataOffset(%d) = %d, want %d", tt.varHeaderLen, got, tt.want)
		}
	}
}

func TestWrite_Layout(t *testing.T) {
	t.Parallel()

	frames := EncodeFrames([]int16{258, -1, -32768}, 1, 2)
	width := ChannelsPerFrame(2, 1)
	varHeader := VariableHeader(Record{Tag: "mf", Value: []byte("x\x00")})

	var buf bytes.Buffer
	total, err := Write(&buf, frames, width, 25, varHeader)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	// var header is 6 bytes, so data starts at align4(38) = 40
	wantTotal := int64(40 + len(frames)*width)
	if total != wantTotal {
		t.Errorf("Write() total = %d, want %d", total, wantTotal)
	}
	if int64(buf.Len()) != total {
		t.Errorf("Write() wrote %d bytes but reported %d", buf.Len(), total)
	}

	data := buf.Bytes()

	h, err := UnpackHeader(data)
	if err != nil {
		t.Fatalf("UnpackHeader() error = %v", err)
	}
	if h.DataOffset != 40 {
		t.Errorf("DataOffset = %d, want 40", h.DataOffset)
	}
	if h.ChannelCount != uint32(width) {
		t.Errorf("ChannelCount = %d, want %d", h.ChannelCount, width)
	}
	if h.FrameCount != uint32(len(frames)) {
		t.Errorf("FrameCount = %d, want %d", h.FrameCount, len(frames))
	}
	if h.StepTimeMS != 25 {
		t.Errorf("StepTimeMS = %d, want 25", h.StepTimeMS)
	}
	if h.Compression != CompressionNone {
		t.Errorf("Compression = %d, want %d", h.Compression, CompressionNone)
	}

	if !bytes.Equal(data[32:38], varHeader) {
		t.Errorf("variable header = % x, want % x", data[32:38], varHeader)
	}
	if data[38] != 0 || data[39] != 0 {
		t.Errorf("alignment padding = % x, want zeros", data[38:40])
	}

	wantData := bytes.Join(frames, nil)
	if !bytes.Equal(data[40:], wantData) {
		t.Errorf("channel data = % x, want % x", data[40:], wantData)
	}
}

func TestWrite_NoVariableHeader(t *testing.T) {
	t.Parallel()

	frames := [][]byte{{0xAA, 0x55, 0, 0}}

	var buf bytes.Buffer
	total, err := Write(&buf, frames, 4, 50, nil)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if total != 36 {
		t.Errorf("Write() total = %d, want 36", total)
	}

	h, err := UnpackHeader(buf.Bytes())
	if err != nil {
		t.Fatalf("UnpackHeader() error = %v", err)
	}
	if h.DataOffset != FixedHeaderSize {
		t.Errorf("DataOffset = %d, want %d", h.DataOffset, FixedHeaderSize)
	}
}

func TestWrite_AlreadyAligned(t *testing.T) {
	t.Parallel()

	// A 4-byte variable header needs no padding
	varHeader := VariableHeader(Record{Tag: "xx", Value: nil})
	if len(varHeader) != 4 {
		t.Fatalf("variable header length = %d, want 4", len(varHeader))
	}

	var buf bytes.Buffer
	if _, err := Write(&buf, nil, 8, 25, varHeader); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	h, err := UnpackHeader(buf.Bytes())
	if err != nil {
		t.Fatalf("UnpackHeader() error = %v", err)
	}
	if h.DataOffset != 36 {
		t.Errorf("DataOffset = %d, want 36", h.DataOffset)
	}
}

func TestWrite_EmptyFrames(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	total, err := Write(&buf, nil, 100, 25, nil)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if total != FixedHeaderSize {
		t.Errorf("Write() total = %d, want %d", total, FixedHeaderSize)
	}

	h, err := UnpackHeader(buf.Bytes())
	if err != nil {
		t.Fatalf("UnpackHeader() error = %v", err)
	}
	if h.FrameCount != 0 {
		t.Errorf("FrameCount = %d, want 0", h.FrameCount)
	}
}

// TestWrite_DataOffsetBounds pins the largest variable header the
// 16-bit offset field can describe: align4(32+65500) = 65532 fits, one
// more byte aligns to 65536 and must be rejected rather than wrapped.
func TestWrite_DataOffsetBounds(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := Write(&buf, nil, 6, 25, make([]byte, 65500)); err != nil {
		t.Fatalf("Write() at the largest encodable offset: %v", err)
	}

	h, err := UnpackHeader(buf.Bytes())
	if err != nil {
		t.Fatalf("UnpackHeader() error = %v", err)
	}
	if h.DataOffset != 65532 {
		t.Errorf("DataOffset = %d, want 65532", h.DataOffset)
	}

	buf.Reset()
	_, err = Write(&buf, nil, 6, 25, make([]byte, 65501))
	if err == nil {
		t.Fatal("Write() accepted a variable header past the offset field")
	}
	if buf.Len() != 0 {
		t.Errorf("Write() wrote %d bytes before rejecting", buf.Len())
	}
}

func TestWrite_FrameSizeMismatch(t *testing.T) {
	t.Parallel()

	frames := [][]byte{
		{0xAA, 0x55, 0, 0},
		{0xAA, 0x55, 0}, // one byte short
	}

	var buf bytes.Buffer
	_, err := Write(&buf, frames, 4, 25, nil)
	if !errors.Is(err, ErrFrameSizeMismatch) {
		t.Fatalf("Write() error = %v, want ErrFrameSizeMismatch", err)
	}

	// The first frame was already flushed: the check fires mid-stream
	if buf.Len() != FixedHeaderSize+4 {
		t.Errorf("Write() flushed %d bytes before failing, want %d", buf.Len(), FixedHeaderSize+4)
	}
}

// BenchmarkWrite benchmarks writing one second of mono audio at 40fps
func BenchmarkWrite(b *testing.B) {
	frames := EncodeFrames(make([]int16, 44100), 1, 1102)
	width := ChannelsPerFrame(1102, 1)
	varHeader := MediaVariableHeader("bench.wav")

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		var buf bytes.Buffer
		_, _ = Write(&buf, frames, width, 25, varHeader)
	}
}
