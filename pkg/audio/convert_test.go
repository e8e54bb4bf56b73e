package audio_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/Voicelink-AI/voicelink-core/pkg/audio"
)

func stereoBuf(samples ...int16) *audio.SampleBuffer {
	return &audio.SampleBuffer{SampleRate: 16000, Channels: 2, Samples: samples}
}

func TestExtractChannel(t *testing.T) {
	buf := stereoBuf(100, 200, 300, 400, 500, 600)

	left := audio.ExtractChannel(buf, 0)
	if want := []int16{100, 300, 500}; !reflect.DeepEqual(left.Samples, want) {
		t.Errorf("channel 0 = %v, want %v", left.Samples, want)
	}
	right := audio.ExtractChannel(buf, 1)
	if want := []int16{200, 400, 600}; !reflect.DeepEqual(right.Samples, want) {
		t.Errorf("channel 1 = %v, want %v", right.Samples, want)
	}
	if left.Channels != 1 || left.SampleRate != 16000 {
		t.Errorf("extracted format = %dHz %dch, want 16000Hz mono", left.SampleRate, left.Channels)
	}
}

func TestExtractChannel_OutOfRange(t *testing.T) {
	buf := stereoBuf(1, 2, 3, 4)
	got := audio.ExtractChannel(buf, 5)
	if len(got.Samples) != 0 {
		t.Errorf("expected empty buffer, got %v", got.Samples)
	}
}

func TestExtractChannel_MonoPassthrough(t *testing.T) {
	buf := &audio.SampleBuffer{SampleRate: 8000, Channels: 1, Samples: []int16{7, 8, 9}}
	got := audio.ExtractChannel(buf, 0)
	if !reflect.DeepEqual(got.Samples, buf.Samples) {
		t.Errorf("mono extraction changed samples: %v", got.Samples)
	}
}

func TestStereoToMono(t *testing.T) {
	buf := stereoBuf(100, 200, -100, -200)
	mono := audio.StereoToMono(buf)
	if want := []int16{150, -150}; !reflect.DeepEqual(mono.Samples, want) {
		t.Errorf("mono = %v, want %v", mono.Samples, want)
	}
	if mono.Channels != 1 {
		t.Errorf("channels = %d, want 1", mono.Channels)
	}
}

func TestStereoToMono_Clamping(t *testing.T) {
	buf := stereoBuf(32767, 32767)
	mono := audio.StereoToMono(buf)
	if mono.Samples[0] != 32767 {
		t.Errorf("got %d, want clamped 32767", mono.Samples[0])
	}
}

func TestMonoToStereo(t *testing.T) {
	buf := &audio.SampleBuffer{SampleRate: 16000, Channels: 1, Samples: []int16{100, 200}}
	stereo := audio.MonoToStereo(buf)
	if want := []int16{100, 100, 200, 200}; !reflect.DeepEqual(stereo.Samples, want) {
		t.Errorf("stereo = %v, want %v", stereo.Samples, want)
	}
}

func TestSampleBuffer_Duration(t *testing.T) {
	buf := &audio.SampleBuffer{SampleRate: 16000, Channels: 2, Samples: make([]int16, 32000)}
	if got := buf.Duration(); got != time.Second {
		t.Errorf("Duration = %s, want 1s", got)
	}

	empty := &audio.SampleBuffer{}
	if got := empty.Duration(); got != 0 {
		t.Errorf("Duration of zero-rate buffer = %s, want 0", got)
	}
}
