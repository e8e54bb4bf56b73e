package vad_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Voicelink-AI/voicelink-core/pkg/audio"
	"github.com/Voicelink-AI/voicelink-core/pkg/vad"
)

// buildBuffer creates a mono buffer from per-frame amplitudes: each entry
// in frames becomes frameSize samples of that constant amplitude.
func buildBuffer(sampleRate, frameSize int, frames []int16) *audio.SampleBuffer {
	samples := make([]int16, 0, len(frames)*frameSize)
	for _, amp := range frames {
		for j := 0; j < frameSize; j++ {
			samples = append(samples, amp)
		}
	}
	return &audio.SampleBuffer{SampleRate: sampleRate, Channels: 1, Samples: samples}
}

func TestDetect_FrameAlignedBoundaries(t *testing.T) {
	// 1000 Hz at 30 ms → frameSize 30. Two active, three inactive, two active.
	buf := buildBuffer(1000, 30, []int16{1000, 1000, 0, 0, 0, 1000, 1000})

	segments, err := vad.Detect(buf, 30, 500)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	want := []vad.VoiceSegment{
		{StartSample: 0, EndSample: 60},
		{StartSample: 150, EndSample: 210},
	}
	if !reflect.DeepEqual(segments, want) {
		t.Errorf("segments = %v, want %v", segments, want)
	}
}

func TestDetect_Idempotent(t *testing.T) {
	buf := buildBuffer(1000, 30, []int16{0, 1000, 0, 1000, 1000, 0})

	first, err := vad.Detect(buf, 30, 500)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	second, err := vad.Detect(buf, 30, 500)
	if err != nil {
		t.Fatalf("Detect (second call): %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated calls differ: %v vs %v", first, second)
	}
}

func TestDetect_EmptyBuffer(t *testing.T) {
	buf := &audio.SampleBuffer{SampleRate: 16000, Channels: 1}
	segments, err := vad.Detect(buf, 30, 500)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if len(segments) != 0 {
		t.Errorf("expected no segments, got %v", segments)
	}
}

func TestDetect_ZeroSampleRate(t *testing.T) {
	buf := &audio.SampleBuffer{SampleRate: 0, Channels: 1, Samples: make([]int16, 100)}
	segments, err := vad.Detect(buf, 30, 500)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if len(segments) != 0 {
		t.Errorf("expected no segments, got %v", segments)
	}
}

func TestDetect_FrameSizeBelowOneSample(t *testing.T) {
	// 10 Hz at 30 ms truncates to a zero-sample frame.
	buf := &audio.SampleBuffer{SampleRate: 10, Channels: 1, Samples: make([]int16, 100)}
	_, err := vad.Detect(buf, 30, 500)
	var cfgErr *vad.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %v", err)
	}
}

func TestDetect_ThresholdIsStrict(t *testing.T) {
	// Constant amplitude 500 gives frame energy exactly 500; strict > must
	// not fire at threshold 500.
	buf := buildBuffer(1000, 30, []int16{500, 500, 500})
	segments, err := vad.Detect(buf, 30, 500)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if len(segments) != 0 {
		t.Errorf("expected no segments at exact threshold, got %v", segments)
	}
}

func TestDetect_TrailingPartialFrameDropped(t *testing.T) {
	// One quiet full frame followed by loud samples that do not fill a
	// frame. The partial tail must not be analysed.
	buf := buildBuffer(1000, 30, []int16{0})
	for i := 0; i < 10; i++ {
		buf.Samples = append(buf.Samples, 10000)
	}

	segments, err := vad.Detect(buf, 30, 500)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if len(segments) != 0 {
		t.Errorf("partial trailing frame was analysed: %v", segments)
	}
}

func TestDetect_OpenRunClosesAtBufferEnd(t *testing.T) {
	// Loud frames through to the end, plus a loud partial tail: the run is
	// closed at the buffer end, tail included.
	buf := buildBuffer(1000, 30, []int16{0, 1000, 1000})
	buf.Samples = append(buf.Samples, 1000, 1000, 1000)

	segments, err := vad.Detect(buf, 30, 500)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	want := []vad.VoiceSegment{{StartSample: 30, EndSample: 93}}
	if !reflect.DeepEqual(segments, want) {
		t.Errorf("segments = %v, want %v", segments, want)
	}
}

func TestDetect_HalfSecondSpeechEndToEnd(t *testing.T) {
	// 16 kHz mono: 0.5 s of amplitude 1000 then 0.5 s of silence. One
	// segment starting at 0 and ending within one frame (480 samples) of
	// sample 8000.
	samples := make([]int16, 16000)
	for i := 0; i < 8000; i++ {
		samples[i] = 1000
	}
	buf := &audio.SampleBuffer{SampleRate: 16000, Channels: 1, Samples: samples}

	segments, err := vad.Detect(buf, 30, 500)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %v", segments)
	}
	if segments[0].StartSample != 0 {
		t.Errorf("start = %d, want 0", segments[0].StartSample)
	}
	if diff := segments[0].EndSample - 8000; diff < -480 || diff > 480 {
		t.Errorf("end = %d, want within 480 of 8000", segments[0].EndSample)
	}
}
