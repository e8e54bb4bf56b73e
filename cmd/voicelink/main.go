// Command voicelink decodes an audio file and prints voice-activity and
// speaker segment listings. It is the boundary executable over the engine
// packages; every invocation is stateless.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Voicelink-AI/voicelink-core/internal/config"
	"github.com/Voicelink-AI/voicelink-core/internal/observe"
	"github.com/Voicelink-AI/voicelink-core/pkg/engine"
	"github.com/Voicelink-AI/voicelink-core/pkg/vad"
)

func main() {
	os.Exit(run())
}

func run() int {
	// ── CLI flags ──────────────────────────────────────────────────────────────
	configPath := flag.String("config", "", "path to an optional YAML configuration file")
	doVAD := flag.Bool("vad", false, "detect voice segments with the fixed threshold")
	doAdaptive := flag.Bool("adaptive", false, "detect voice segments with the adaptive threshold")
	doMulti := flag.Bool("multichannel", false, "detect voice segments independently per channel")
	doDiarize := flag.Bool("diarize", false, "print the coarse speaker segmentation")
	frameMs := flag.Int("frame-ms", 0, "analysis frame duration in milliseconds (0 = config default)")
	threshold := flag.Float64("threshold", 0, "fixed energy threshold (0 = config default)")
	sensitivity := flag.Float64("sensitivity", 0, "adaptive stddev multiplier (0 = config default)")
	logLevel := flag.String("log-level", "", "log verbosity: debug, info, warn, error")
	metricsAddr := flag.String("metrics-addr", "", "serve Prometheus /metrics on this address while processing")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		return 1
	}
	path := flag.Arg(0)

	// ── Load configuration ────────────────────────────────────────────────────
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "voicelink: %v\n", err)
			return 1
		}
		cfg = loaded
	}
	if *frameMs == 0 {
		*frameMs = cfg.Analysis.FrameMs
	}
	if *threshold == 0 {
		*threshold = cfg.Analysis.Threshold
	}
	if *sensitivity == 0 {
		*sensitivity = cfg.Analysis.Sensitivity
	}
	if *logLevel != "" {
		cfg.LogLevel = config.LogLevel(*logLevel)
		if !cfg.LogLevel.IsValid() {
			fmt.Fprintf(os.Stderr, "voicelink: invalid -log-level %q\n", *logLevel)
			return 1
		}
	}
	if *metricsAddr != "" {
		cfg.Metrics.ListenAddr = *metricsAddr
	}

	// ── Logger ────────────────────────────────────────────────────────────────
	slog.SetDefault(newLogger(cfg.LogLevel))

	// ── Telemetry ─────────────────────────────────────────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	shutdown, err := observe.InitProvider(ctx, observe.ProviderConfig{ServiceName: "voicelink-audio"})
	if err != nil {
		slog.Error("failed to initialise telemetry", "err", err)
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			slog.Warn("telemetry shutdown error", "err", err)
		}
	}()

	if cfg.Metrics.ListenAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		go func() {
			slog.Info("serving metrics", "addr", cfg.Metrics.ListenAddr)
			if err := http.ListenAndServe(cfg.Metrics.ListenAddr, mux); err != nil {
				slog.Warn("metrics server error", "err", err)
			}
		}()
	}

	// ── Decode and analyse ────────────────────────────────────────────────────
	eng := engine.New(engine.Options{})

	buf, err := eng.Load(ctx, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "voicelink: %v\n", err)
		return 1
	}

	fmt.Printf("Sample rate: %d\n", buf.SampleRate)
	fmt.Printf("Channels: %d\n", buf.Channels)
	fmt.Printf("Samples: %d\n", len(buf.Samples))
	fmt.Printf("Duration: %s\n", buf.Duration())

	if *doVAD {
		segments, err := eng.DetectVoiceSegments(ctx, buf, *frameMs, *threshold)
		if err != nil {
			fmt.Fprintf(os.Stderr, "voicelink: %v\n", err)
			return 1
		}
		fmt.Printf("Detected %d voice segments\n", len(segments))
		printSegments(segments, buf.SampleRate)
	}

	if *doAdaptive {
		segments, err := eng.DetectVoiceSegmentsAdaptive(ctx, buf, *frameMs, *sensitivity)
		if err != nil {
			fmt.Fprintf(os.Stderr, "voicelink: %v\n", err)
			return 1
		}
		fmt.Printf("Detected %d adaptive voice segments\n", len(segments))
		printSegments(segments, buf.SampleRate)
	}

	if *doMulti {
		perChannel, err := eng.DetectVoiceSegmentsMultichannel(ctx, buf, *frameMs, *threshold)
		if err != nil {
			fmt.Fprintf(os.Stderr, "voicelink: %v\n", err)
			return 1
		}
		for ch, segments := range perChannel {
			fmt.Printf("Channel %d: %d voice segments\n", ch, len(segments))
			printSegments(segments, buf.SampleRate)
		}
	}

	if *doDiarize {
		segments := eng.Diarize(ctx, buf)
		fmt.Printf("Diarization segments: %d\n", len(segments))
		for _, seg := range segments {
			fmt.Printf("Speaker %d: %d - %d\n", seg.SpeakerID, seg.StartSample, seg.EndSample)
		}
	}

	return 0
}

// printSegments lists voice segments as sample offsets with the equivalent
// time range.
func printSegments(segments []vad.VoiceSegment, sampleRate int) {
	for _, seg := range segments {
		fmt.Printf("Segment: %d - %d (%s - %s)\n",
			seg.StartSample, seg.EndSample,
			sampleTime(seg.StartSample, sampleRate), sampleTime(seg.EndSample, sampleRate),
		)
	}
}

// sampleTime converts a sample offset to a duration at the given rate.
func sampleTime(sample, sampleRate int) time.Duration {
	if sampleRate <= 0 {
		return 0
	}
	return time.Duration(sample) * time.Second / time.Duration(sampleRate)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] <audio-file>\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Decodes a WAV or MP3 file and prints the selected analyses.\n\nFlags:\n")
	flag.PrintDefaults()
}

func newLogger(level config.LogLevel) *slog.Logger {
	var lvl slog.Level
	switch level {
	case config.LogDebug:
		lvl = slog.LevelDebug
	case config.LogWarn:
		lvl = slog.LevelWarn
	case config.LogError:
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
