package compress

import (
	"context"
	"errors"
	"fmt"
	"os"

	"docdesk/internal/apperr"
	"docdesk/internal/dispatch"
	"docdesk/internal/metrics"

	"go.uber.org/zap"
)

const (
	BackendNative   = "native"
	BackendFallback = "fallback"
)

var profiles = map[string]string{
	"low":    "/screen",
	"medium": "/ebook",
	"high":   "/printer",
}

// Profile maps a semantic quality to a ghostscript PDFSETTINGS profile.
// Unknown values get the medium profile.
func Profile(quality string) string {
	if p, ok := profiles[quality]; ok {
		return p
	}
	return profiles["medium"]
}

// Native is the fast path.
type Native interface {
	Run(ctx context.Context, profile, input, output string) error
}

// Fallback is the script backed compressor reached through the gateway.
type Fallback interface {
	Compress(ctx context.Context, input, output, quality string) (*dispatch.Envelope, error)
}

// Result describes a completed compression.
type Result struct {
	Message        string  `json:"message"`
	Ratio          float64 `json:"ratio"`
	Backend        string  `json:"backend"`
	OriginalSize   int64   `json:"original_size"`
	CompressedSize int64   `json:"compressed_size"`
}

// Orchestrator tries the native compressor and falls back to the gateway once.
type Orchestrator struct {
	native   Native
	fallback Fallback
	log      *zap.Logger
	metrics  *metrics.Collectors
}

func NewOrchestrator(native Native, fallback Fallback, log *zap.Logger, m *metrics.Collectors) *Orchestrator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Orchestrator{native: native, fallback: fallback, log: log, metrics: m}
}

func (o *Orchestrator) Compress(ctx context.Context, input, output, quality string) (*Result, error) {
	const op = "compress"

	in, err := os.Stat(input)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperr.NotFound(op, "input file not found: %s", input)
		}
		return nil, fmt.Errorf("stat input: %w", err)
	}
	if in.IsDir() {
		return nil, apperr.InvalidFormat(op, "%s is a directory", input)
	}
	if in.Size() == 0 {
		return nil, apperr.ConstraintViolation(op, "original file is empty")
	}

	backend := BackendNative
	if err := o.native.Run(ctx, Profile(quality), input, output); err != nil {
		o.log.Warn("compress_native_failed",
			zap.String("input", input),
			zap.String("kind", apperr.KindOf(err).String()),
			zap.Error(err),
		)
		o.metrics.ObserveCompress(BackendNative, false)

		backend = BackendFallback
		if _, err := o.fallback.Compress(ctx, input, output, quality); err != nil {
			o.metrics.ObserveCompress(BackendFallback, false)
			return nil, err
		}
	}

	out, err := os.Stat(output)
	if err != nil {
		o.metrics.ObserveCompress(backend, false)
		return nil, apperr.ExecutionFailure(op, 0, "compressed output missing", err)
	}
	o.metrics.ObserveCompress(backend, true)

	ratio := Ratio(in.Size(), out.Size())
	msg := fmt.Sprintf("PDF compressed successfully: %s (Reduced by %.1f%%)", output, ratio)

	o.log.Info("compress_done",
		zap.String("backend", backend),
		zap.Int64("original_size", in.Size()),
		zap.Int64("compressed_size", out.Size()),
		zap.Float64("ratio", ratio),
	)

	return &Result{
		Message:        msg,
		Ratio:          ratio,
		Backend:        backend,
		OriginalSize:   in.Size(),
		CompressedSize: out.Size(),
	}, nil
}

// Ratio is the percentage saved. original must be positive.
func Ratio(original, compressed int64) float64 {
	return (1 - float64(compressed)/float64(original)) * 100
}
