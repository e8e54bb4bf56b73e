// Package engine is the boundary surface of the Voicelink audio engine.
// It bundles the decoder, the voice activity detectors, and the heuristic
// diarizer behind one value, adds structured logging, metrics, and trace
// spans around each call, and substitutes the documented defaults for
// zero-valued parameters.
//
// The engine holds no mutable state across calls: every method operates on
// the caller's immutable buffer and returns owned outputs, so one Engine
// may be shared by any number of workers without locking. There is no
// cancellation inside analysis — the context only carries trace metadata
// and gates the decode entry point; callers enforce time budgets
// externally.
package engine

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/Voicelink-AI/voicelink-core/internal/observe"
	"github.com/Voicelink-AI/voicelink-core/pkg/audio"
	"github.com/Voicelink-AI/voicelink-core/pkg/diarize"
	"github.com/Voicelink-AI/voicelink-core/pkg/vad"
)

// Options configures an [Engine].
type Options struct {
	// Logger receives per-call structured logs. Nil selects slog.Default.
	Logger *slog.Logger
}

// Engine exposes the analysis operations to orchestration layers.
// The zero value is not usable; construct with [New].
type Engine struct {
	log     *slog.Logger
	metrics *observe.Metrics
}

// New returns an Engine wired to the process-wide metric instruments.
func New(opts Options) *Engine {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Engine{log: log, metrics: observe.DefaultMetrics()}
}

// Load decodes the audio file at path, dispatching WAV or MP3 on the file
// extension. This is the engine's only blocking I/O entry point. Decode
// failures propagate immediately; there are no retries.
func (e *Engine) Load(ctx context.Context, path string) (*audio.SampleBuffer, error) {
	ctx, span := observe.StartSpan(ctx, "audio.load")
	defer span.End()

	format := "wav"
	if isMP3(path) {
		format = "mp3"
	}

	start := time.Now()
	buf, err := audio.Load(path)
	e.metrics.RecordDecode(ctx, format, time.Since(start).Seconds(), err)
	if err != nil {
		observe.Logger(ctx).Error("audio decode failed", "path", path, "format", format, "err", err)
		return nil, err
	}

	observe.Logger(ctx).Info("audio decoded",
		"path", path,
		"format", format,
		"sample_rate", buf.SampleRate,
		"channels", buf.Channels,
		"samples", len(buf.Samples),
		"duration", buf.Duration(),
	)
	return buf, nil
}

// DetectVoiceSegments runs the fixed-threshold detector. Zero frameMs or
// threshold select the defaults (30 ms, 500).
func (e *Engine) DetectVoiceSegments(ctx context.Context, buf *audio.SampleBuffer, frameMs int, threshold float64) ([]vad.VoiceSegment, error) {
	ctx, span := observe.StartSpan(ctx, "vad.detect")
	defer span.End()

	if frameMs == 0 {
		frameMs = vad.DefaultFrameMs
	}
	if threshold == 0 {
		threshold = vad.DefaultThreshold
	}

	start := time.Now()
	segments, err := vad.Detect(buf, frameMs, threshold)
	if err != nil {
		return nil, err
	}
	e.metrics.RecordAnalysis(ctx, "detect", time.Since(start).Seconds(), len(segments))
	return segments, nil
}

// DetectVoiceSegmentsAdaptive runs the statistically adaptive detector.
// Zero frameMs or sensitivity select the defaults (30 ms, 2.0).
func (e *Engine) DetectVoiceSegmentsAdaptive(ctx context.Context, buf *audio.SampleBuffer, frameMs int, sensitivity float64) ([]vad.VoiceSegment, error) {
	ctx, span := observe.StartSpan(ctx, "vad.detect_adaptive")
	defer span.End()

	if frameMs == 0 {
		frameMs = vad.DefaultFrameMs
	}
	if sensitivity == 0 {
		sensitivity = vad.DefaultSensitivity
	}

	start := time.Now()
	segments, err := vad.DetectAdaptive(buf, frameMs, sensitivity)
	if err != nil {
		return nil, err
	}
	e.metrics.RecordAnalysis(ctx, "detect_adaptive", time.Since(start).Seconds(), len(segments))
	return segments, nil
}

// DetectVoiceSegmentsMultichannel runs the fixed-threshold detector
// independently per channel. Zero frameMs or threshold select the defaults.
func (e *Engine) DetectVoiceSegmentsMultichannel(ctx context.Context, buf *audio.SampleBuffer, frameMs int, threshold float64) ([][]vad.VoiceSegment, error) {
	ctx, span := observe.StartSpan(ctx, "vad.detect_multichannel")
	defer span.End()

	if frameMs == 0 {
		frameMs = vad.DefaultFrameMs
	}
	if threshold == 0 {
		threshold = vad.DefaultThreshold
	}

	start := time.Now()
	perChannel, err := vad.DetectMultichannel(buf, frameMs, threshold)
	if err != nil {
		return nil, err
	}
	total := 0
	for _, segments := range perChannel {
		total += len(segments)
	}
	e.metrics.RecordAnalysis(ctx, "detect_multichannel", time.Since(start).Seconds(), total)
	return perChannel, nil
}

// Diarize produces the coarse channel-block speaker segmentation.
func (e *Engine) Diarize(ctx context.Context, buf *audio.SampleBuffer) []diarize.SpeakerSegment {
	ctx, span := observe.StartSpan(ctx, "diarize")
	defer span.End()

	start := time.Now()
	segments := diarize.Diarize(buf)
	e.metrics.RecordAnalysis(ctx, "diarize", time.Since(start).Seconds(), len(segments))
	return segments
}

func isMP3(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".mp3")
}
