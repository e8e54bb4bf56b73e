// Package observe provides observability primitives for the Voicelink
// audio engine: OpenTelemetry metrics and tracing helpers.
//
// Metrics are recorded through the OpenTelemetry Metrics API. A Prometheus
// exporter bridge is available via [InitProvider] so that metrics can be
// scraped via a standard /metrics endpoint. A package-level default
// [Metrics] instance ([DefaultMetrics]) is provided for convenience; tests
// should use [NewMetrics] with a custom [metric.MeterProvider] to avoid
// cross-test pollution.
package observe

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope name used for all engine metrics.
const meterName = "github.com/Voicelink-AI/voicelink-core"

// Metrics holds all OpenTelemetry metric instruments for the audio engine.
// All fields are safe for concurrent use; the underlying OTel types handle
// their own synchronisation.
type Metrics struct {
	// DecodeDuration tracks container decode latency. Use with attribute:
	//   attribute.String("format", "wav"|"mp3")
	DecodeDuration metric.Float64Histogram

	// AnalysisDuration tracks detector/diarization latency. Use with attribute:
	//   attribute.String("operation", ...)
	AnalysisDuration metric.Float64Histogram

	// FilesDecoded counts successfully decoded files by format.
	FilesDecoded metric.Int64Counter

	// DecodeErrors counts decode failures by format.
	DecodeErrors metric.Int64Counter

	// SegmentsDetected counts emitted voice/speaker segments by operation.
	SegmentsDetected metric.Int64Counter
}

// latencyBuckets defines histogram bucket boundaries (in seconds) sized for
// eager whole-file decode and CPU-bound analysis of meeting-length clips.
var latencyBuckets = []float64{
	0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10,
}

// NewMetrics creates a fully initialised [Metrics] struct using the given
// [metric.MeterProvider]. Returns an error if any instrument creation fails.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.DecodeDuration, err = m.Float64Histogram("voicelink.audio.decode.duration",
		metric.WithDescription("Latency of audio container decoding."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.AnalysisDuration, err = m.Float64Histogram("voicelink.audio.analysis.duration",
		metric.WithDescription("Latency of voice-activity and diarization analysis."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}

	if met.FilesDecoded, err = m.Int64Counter("voicelink.audio.files.decoded",
		metric.WithDescription("Total audio files decoded successfully, by format."),
	); err != nil {
		return nil, err
	}
	if met.DecodeErrors, err = m.Int64Counter("voicelink.audio.decode.errors",
		metric.WithDescription("Total audio decode failures, by format."),
	); err != nil {
		return nil, err
	}
	if met.SegmentsDetected, err = m.Int64Counter("voicelink.audio.segments.detected",
		metric.WithDescription("Total segments emitted, by analysis operation."),
	); err != nil {
		return nil, err
	}

	return met, nil
}

// defaultMetrics is the lazily-initialised package-level Metrics instance.
var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns the package-level [Metrics] instance, creating it
// on first call using [otel.GetMeterProvider]. Subsequent calls return the
// same pointer. Panics if instrument creation fails (should not happen with
// the global provider).
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		var err error
		defaultMetrics, err = NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("observe: failed to create default metrics: " + err.Error())
		}
	})
	return defaultMetrics
}

// Attr is a convenience alias for [attribute.String] to reduce verbosity at
// call sites.
func Attr(key, value string) attribute.KeyValue {
	return attribute.String(key, value)
}

// RecordDecode records one decode outcome: duration plus the success or
// error counter for the given container format.
func (m *Metrics) RecordDecode(ctx context.Context, format string, seconds float64, err error) {
	attrs := metric.WithAttributes(Attr("format", format))
	m.DecodeDuration.Record(ctx, seconds, attrs)
	if err != nil {
		m.DecodeErrors.Add(ctx, 1, attrs)
		return
	}
	m.FilesDecoded.Add(ctx, 1, attrs)
}

// RecordAnalysis records one analysis call: duration and emitted segment
// count for the given operation name.
func (m *Metrics) RecordAnalysis(ctx context.Context, operation string, seconds float64, segments int) {
	attrs := metric.WithAttributes(Attr("operation", operation))
	m.AnalysisDuration.Record(ctx, seconds, attrs)
	m.SegmentsDetected.Add(ctx, int64(segments), attrs)
}
