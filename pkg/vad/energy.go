package vad

import "fmt"

// FrameSize returns the analysis frame length in samples for the given
// sample rate and frame duration: sampleRate * frameMs / 1000 with integer
// truncation.
func FrameSize(sampleRate, frameMs int) int {
	return sampleRate * frameMs / 1000
}

// frameEnergy is the arithmetic mean of the absolute sample amplitudes in
// samples[offset : offset+frameSize].
func frameEnergy(samples []int16, offset, frameSize int) float64 {
	var sum float64
	for j := 0; j < frameSize; j++ {
		s := int(samples[offset+j])
		if s < 0 {
			s = -s
		}
		sum += float64(s)
	}
	return sum / float64(frameSize)
}

// energyProfile computes the per-frame energy sequence over samples.
// Trailing samples that do not fill a complete frame are dropped.
func energyProfile(samples []int16, frameSize int) []float64 {
	profile := make([]float64, 0, len(samples)/frameSize)
	for i := 0; i+frameSize <= len(samples); i += frameSize {
		profile = append(profile, frameEnergy(samples, i, frameSize))
	}
	return profile
}

// mergeActive applies the contiguous-merge policy to an energy profile:
// frames with energy strictly above threshold are active, runs of active
// frames become one segment. Frame index i maps to sample offset
// i*frameSize; a run still open after the last frame is closed at tailEnd.
func mergeActive(profile []float64, threshold float64, frameSize, tailEnd int) []VoiceSegment {
	var segments []VoiceSegment
	inVoice := false
	segStart := 0

	for i, energy := range profile {
		if energy > threshold {
			if !inVoice {
				segStart = i * frameSize
				inVoice = true
			}
		} else if inVoice {
			segments = append(segments, VoiceSegment{StartSample: segStart, EndSample: i * frameSize})
			inVoice = false
		}
	}
	if inVoice {
		segments = append(segments, VoiceSegment{StartSample: segStart, EndSample: tailEnd})
	}
	return segments
}

// validFrameSize rejects parameter combinations that collapse the frame
// below one sample.
func validFrameSize(sampleRate, frameMs int) (int, error) {
	frameSize := FrameSize(sampleRate, frameMs)
	if frameSize < 1 {
		return 0, &ConfigError{
			Param:  "frame_ms",
			Reason: fmt.Sprintf("frame size %d*%d/1000 is below one sample", sampleRate, frameMs),
		}
	}
	return frameSize, nil
}
