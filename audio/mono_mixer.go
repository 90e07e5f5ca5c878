package audio

// ToMono mixes an interleaved multi-channel buffer down to one channel
// by averaging each frame's samples. The mean uses Go integer division,
// so it truncates toward zero (e.g. L=3, R=4 mixes to 3, and L=-3, R=-4
// mixes to -3). Mono input is returned unchanged.
func ToMono(b Buffer) Buffer {
	if b.Channels <= 1 {
		return b
	}

	channels := b.Channels
	mono := make([]int16, 0, (len(b.Samples)+channels-1)/channels)

	switch channels {
	case 2: // Stereo (most common)
		full := len(b.Samples) / 2 * 2
		for i := 0; i < full; i += 2 {
			mono = append(mono, int16((int(b.Samples[i])+int(b.Samples[i+1]))/2))
		}
		// A ragged final frame keeps its lone sample
		if full < len(b.Samples) {
			mono = append(mono, b.Samples[full])
		}
	default: // Generic path
		for i := 0; i < len(b.Samples); i += channels {
			end := i + channels
			if end > len(b.Samples) {
				end = len(b.Samples)
			}

			sum := 0
			for _, s := range b.Samples[i:end] {
				sum += int(s)
			}
			mono = append(mono, int16(sum/(end-i)))
		}
	}

	return Buffer{
		Samples:  mono,
		Rate:     b.Rate,
		Channels: 1,
	}
}
