package vad

import "github.com/Voicelink-AI/voicelink-core/pkg/audio"

// DetectMultichannel runs the fixed-threshold analysis independently for
// each interleaved channel and returns one segment list per channel, in
// channel order.
//
// Offset convention: each channel's segments are expressed in that
// channel's own frame-relative mono sample domain (frame index times frame
// size), not as positions in the interleaved array. The convention is
// consistent across all channels and matches the index arithmetic of the
// adaptive detector.
//
// Buffers with at most one channel (and empty or zero-rate buffers)
// delegate to [Detect] unchanged and wrap its result as a one-element
// outer list.
func DetectMultichannel(buf *audio.SampleBuffer, frameMs int, threshold float64) ([][]VoiceSegment, error) {
	if buf.SampleRate == 0 || buf.Empty() || buf.Channels <= 1 {
		segments, err := Detect(buf, frameMs, threshold)
		if err != nil {
			return nil, err
		}
		return [][]VoiceSegment{segments}, nil
	}

	frameSize, err := validFrameSize(buf.SampleRate, frameMs)
	if err != nil {
		return nil, err
	}

	numFrames := len(buf.Samples) / buf.Channels / frameSize
	all := make([][]VoiceSegment, 0, buf.Channels)

	for ch := 0; ch < buf.Channels; ch++ {
		profile := make([]float64, 0, numFrames)
		for f := 0; f < numFrames; f++ {
			base := f*frameSize*buf.Channels + ch
			var sum float64
			for j := 0; j < frameSize; j++ {
				idx := base + j*buf.Channels
				if idx >= len(buf.Samples) {
					break
				}
				s := int(buf.Samples[idx])
				if s < 0 {
					s = -s
				}
				sum += float64(s)
			}
			profile = append(profile, sum/float64(frameSize))
		}
		all = append(all, mergeActive(profile, threshold, frameSize, numFrames*frameSize))
	}
	return all, nil
}
