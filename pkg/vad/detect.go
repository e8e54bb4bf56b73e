package vad

import "github.com/Voicelink-AI/voicelink-core/pkg/audio"

// Detect scans buf's raw sample sequence in disjoint frames of frameMs
// milliseconds and returns the voice-active segments whose frame energy
// strictly exceeds threshold. Segment offsets are raw (interleaved) sample
// positions; a run still active at the end of the buffer is closed at
// len(buf.Samples).
//
// Empty and zero-sample-rate buffers yield an empty result without error.
// Parameters that collapse the frame below one sample are rejected with a
// [*ConfigError] before any analysis runs.
func Detect(buf *audio.SampleBuffer, frameMs int, threshold float64) ([]VoiceSegment, error) {
	if buf.SampleRate == 0 || buf.Empty() {
		return nil, nil
	}
	frameSize, err := validFrameSize(buf.SampleRate, frameMs)
	if err != nil {
		return nil, err
	}

	profile := energyProfile(buf.Samples, frameSize)
	return mergeActive(profile, threshold, frameSize, len(buf.Samples)), nil
}
