package audio

// ExtractChannel demuxes one channel out of an interleaved buffer. The
// returned buffer is mono at the same sample rate. Returns the input
// unchanged when it is already mono, and an empty mono buffer when ch is
// out of range.
func ExtractChannel(buf *SampleBuffer, ch int) *SampleBuffer {
	if buf.Channels <= 1 {
		return &SampleBuffer{SampleRate: buf.SampleRate, Channels: 1, Samples: buf.Samples}
	}
	if ch < 0 || ch >= buf.Channels {
		return &SampleBuffer{SampleRate: buf.SampleRate, Channels: 1}
	}

	out := make([]int16, 0, len(buf.Samples)/buf.Channels)
	for i := ch; i < len(buf.Samples); i += buf.Channels {
		out = append(out, buf.Samples[i])
	}
	return &SampleBuffer{SampleRate: buf.SampleRate, Channels: 1, Samples: out}
}

// StereoToMono averages L+R per stereo frame. Uses int32 arithmetic to
// prevent overflow and clamps to int16 range. Buffers that are not stereo
// are returned unchanged.
func StereoToMono(buf *SampleBuffer) *SampleBuffer {
	if buf.Channels != 2 {
		return buf
	}

	frames := len(buf.Samples) / 2
	out := make([]int16, frames)
	for i := 0; i < frames; i++ {
		avg := (int32(buf.Samples[i*2]) + int32(buf.Samples[i*2+1])) / 2

		// Clamp to int16 range.
		if avg > 32767 {
			avg = 32767
		} else if avg < -32768 {
			avg = -32768
		}
		out[i] = int16(avg)
	}
	return &SampleBuffer{SampleRate: buf.SampleRate, Channels: 1, Samples: out}
}

// MonoToStereo duplicates each mono sample into an L+R pair. Buffers that
// are not mono are returned unchanged.
func MonoToStereo(buf *SampleBuffer) *SampleBuffer {
	if buf.Channels > 1 {
		return buf
	}

	out := make([]int16, len(buf.Samples)*2)
	for i, s := range buf.Samples {
		out[i*2] = s
		out[i*2+1] = s
	}
	return &SampleBuffer{SampleRate: buf.SampleRate, Channels: 2, Samples: out}
}
