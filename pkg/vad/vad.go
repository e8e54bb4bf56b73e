// Package vad implements energy-based voice activity detection over decoded
// sample buffers. A clip is partitioned into fixed-duration, non-overlapping
// analysis frames; each frame's energy is the arithmetic mean of its absolute
// sample amplitudes; frames whose energy exceeds a threshold are classified
// active and contiguous active frames merge into voice segments.
//
// Three detectors share that policy: [Detect] compares against a caller
// supplied constant, [DetectAdaptive] derives a per-clip statistical
// threshold, and [DetectMultichannel] runs the analysis independently per
// interleaved channel.
//
// All detectors are pure functions over read-only input; they are safe to
// call from concurrent workers as long as each call owns its buffer.
package vad

import "fmt"

// Defaults for the detector parameters. Callers that have no opinion should
// pass these explicitly; the engine facade substitutes them for zero values.
const (
	// DefaultFrameMs is the analysis frame duration in milliseconds.
	DefaultFrameMs = 30

	// DefaultThreshold is the fixed energy threshold in mean-absolute
	// amplitude units.
	DefaultThreshold = 500

	// DefaultSensitivity is the adaptive threshold multiplier in standard
	// deviation units.
	DefaultSensitivity = 2.0
)

// VoiceSegment is a detected voice-active region, expressed as a half-open
// sample interval [StartSample, EndSample). Offsets are in the same sample
// domain that was analysed: the raw (possibly interleaved) buffer for
// [Detect] and [DetectAdaptive], the channel's own mono domain for
// [DetectMultichannel].
type VoiceSegment struct {
	StartSample int
	EndSample   int
}

// ConfigError reports caller-supplied parameters that would make the frame
// size collapse below one sample or otherwise produce an undefined
// computation. It is returned before any analysis runs.
type ConfigError struct {
	Param  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("vad: %s: %s", e.Param, e.Reason)
}
