package wav

import "errors"

var (
	ErrNotWavFile             = errors.New("not a WAV file")
	ErrUnsupportedSampleWidth = errors.New("unsupported WAV sample width")
	ErrUnsupportedWavLayout   = errors.New("unsupported WAV layout")
)
