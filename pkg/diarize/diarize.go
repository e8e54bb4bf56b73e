// Package diarize assigns coarse speaker labels to a decoded clip. This is
// a structural placeholder, not acoustic diarization: multi-channel clips
// are split into one contiguous block of the raw interleaved sample array
// per channel (the array is not demultiplexed), mono clips become a single
// full-length speaker. Real diarization needs an embedding and clustering
// model outside this engine's scope.
package diarize

import "github.com/Voicelink-AI/voicelink-core/pkg/audio"

// SpeakerSegment attributes a half-open sample interval of the raw buffer
// to one speaker.
type SpeakerSegment struct {
	StartSample int
	EndSample   int
	SpeakerID   int
}

// Diarize labels buf with speakers. For Channels > 1 the raw interleaved
// array is divided into Channels equal contiguous blocks and block i gets
// SpeakerID i. Mono non-empty buffers produce exactly one segment spanning
// the whole buffer with SpeakerID 0. An empty buffer yields an empty
// result.
func Diarize(buf *audio.SampleBuffer) []SpeakerSegment {
	if buf.Empty() {
		return nil
	}
	if buf.Channels > 1 {
		perChannel := len(buf.Samples) / buf.Channels
		segments := make([]SpeakerSegment, 0, buf.Channels)
		for ch := 0; ch < buf.Channels; ch++ {
			segments = append(segments, SpeakerSegment{
				StartSample: ch * perChannel,
				EndSample:   (ch + 1) * perChannel,
				SpeakerID:   ch,
			})
		}
		return segments
	}
	return []SpeakerSegment{{StartSample: 0, EndSample: len(buf.Samples), SpeakerID: 0}}
}
