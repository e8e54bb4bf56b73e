package vad

import (
	"math"

	"github.com/Voicelink-AI/voicelink-core/pkg/audio"
)

// DetectAdaptive derives a per-clip threshold from the clip's own energy
// statistics and applies the same merge policy as [Detect]. Two passes:
// the first builds the full per-frame energy profile and computes its
// population mean and population standard deviation, giving
// threshold = mean + sensitivity*stddev; the second re-scans the profile.
//
// An empty profile (buffer shorter than one frame) returns an empty result
// without touching the statistics, so no division by zero can occur.
//
// A single abnormally loud burst inflates the mean and stddev and can
// suppress quieter genuine speech elsewhere in the clip. That is a known
// property of the global-statistics approach.
func DetectAdaptive(buf *audio.SampleBuffer, frameMs int, sensitivity float64) ([]VoiceSegment, error) {
	if buf.SampleRate == 0 || buf.Empty() {
		return nil, nil
	}
	frameSize, err := validFrameSize(buf.SampleRate, frameMs)
	if err != nil {
		return nil, err
	}

	profile := energyProfile(buf.Samples, frameSize)
	if len(profile) == 0 {
		return nil, nil
	}

	var mean float64
	for _, e := range profile {
		mean += e
	}
	mean /= float64(len(profile))

	var sqSum float64
	for _, e := range profile {
		sqSum += (e - mean) * (e - mean)
	}
	stddev := math.Sqrt(sqSum / float64(len(profile)))

	threshold := mean + sensitivity*stddev
	return mergeActive(profile, threshold, frameSize, len(buf.Samples)), nil
}
