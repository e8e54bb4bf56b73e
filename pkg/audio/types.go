package audio

import "time"

// SampleBuffer holds a fully decoded audio clip as raw 16-bit linear PCM.
// Samples are interleaved frame-major when Channels > 1 (L R L R … for
// stereo). Buffers are created by the decoders in this package and must be
// treated as immutable afterwards: the analysis packages read them but
// never modify or retain them.
//
// Well-formed multi-channel buffers have len(Samples) divisible by
// Channels. This is not enforced; the detectors tolerate ragged buffers by
// dropping the trailing partial frame.
type SampleBuffer struct {
	// SampleRate in Hz (e.g. 16000, 44100).
	SampleRate int

	// Channels is the interleaved channel count. 1 for mono.
	Channels int

	// Samples is the decoded little-endian PCM data.
	Samples []int16
}

// Empty reports whether the buffer holds no samples.
func (b *SampleBuffer) Empty() bool {
	return len(b.Samples) == 0
}

// SamplesPerChannel returns the per-channel sample count. For mono buffers
// this equals len(Samples). Returns len(Samples) unchanged when Channels
// is not above one.
func (b *SampleBuffer) SamplesPerChannel() int {
	if b.Channels <= 1 {
		return len(b.Samples)
	}
	return len(b.Samples) / b.Channels
}

// Duration returns the playing time of the buffer. Zero when the sample
// rate is not positive.
func (b *SampleBuffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(b.SamplesPerChannel()) * time.Second / time.Duration(b.SampleRate)
}
