package extract

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"log/slog"

	"github.com/snapdish/snapdish/internal/common"
)

// Mode selects which extraction tiers the hybrid service consults.
type Mode string

const (
	ModeHybrid       Mode = "hybrid"
	ModeOnDeviceOnly Mode = "ondevice"
	ModeCloudOnly    Mode = "cloud"
)

// DefaultConfidenceThreshold is the on-device confidence above which the cloud
// tier is never consulted.
const DefaultConfidenceThreshold float32 = 0.70

// HybridConfig configures the two-tier extraction service.
type HybridConfig struct {
	Mode                Mode
	ConfidenceThreshold float32
	BatchWorkers        int
}

// Hybrid prefers the fast/private on-device tier and falls back to the cloud
// tier only when the local result is missing or weak. Once the cloud is
// consulted and succeeds, its result is authoritative; if it fails, a
// low-confidence on-device result still beats total failure.
type Hybrid struct {
	device TextExtractor
	cloud  TextExtractor
	cfg    HybridConfig
	logger *slog.Logger

	mu   sync.Mutex
	last *Result // most recent outcome, for diagnostics only
}

func NewHybrid(device, cloud TextExtractor, cfg HybridConfig, logger *slog.Logger) *Hybrid {
	if cfg.Mode == "" {
		cfg.Mode = ModeHybrid
	}
	if cfg.ConfidenceThreshold <= 0 {
		cfg.ConfidenceThreshold = DefaultConfidenceThreshold
	}
	if cfg.BatchWorkers <= 0 {
		cfg.BatchWorkers = 4
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Hybrid{device: device, cloud: cloud, cfg: cfg, logger: logger}
}

// Available reports whether at least one configured tier can run.
func (h *Hybrid) Available(ctx context.Context) bool {
	switch h.cfg.Mode {
	case ModeOnDeviceOnly:
		return h.device.Available(ctx)
	case ModeCloudOnly:
		return h.cloud.Available(ctx)
	default:
		return h.device.Available(ctx) || h.cloud.Available(ctx)
	}
}

// Extract runs the configured strategy for a single image and records the
// outcome as the last-known diagnostic snapshot.
func (h *Hybrid) Extract(ctx context.Context, imageRef string) (Result, error) {
	res, err := h.extract(ctx, imageRef)
	h.record(res)
	return res, err
}

func (h *Hybrid) extract(ctx context.Context, imageRef string) (Result, error) {
	switch h.cfg.Mode {
	case ModeOnDeviceOnly:
		res, err := h.device.Extract(ctx, imageRef)
		if err != nil {
			return Result{Source: SourceNone}, err
		}
		res.Source = SourceOnDevice
		return res, nil

	case ModeCloudOnly:
		res, err := h.cloud.Extract(ctx, imageRef)
		if err != nil {
			return Result{Source: SourceNone}, err
		}
		res.Source = SourceCloud
		return res, nil
	}

	// Hybrid: try on-device first.
	devRes, devErr := h.device.Extract(ctx, imageRef)
	if devErr == nil && devRes.Confidence > h.cfg.ConfidenceThreshold {
		devRes.Source = SourceOnDevice
		h.logger.Debug("extract.ondevice.ok",
			"image", imageRef, "confidence", devRes.Confidence)
		return devRes, nil
	}
	if devErr != nil {
		h.logger.Warn("extract.ondevice.failed", "image", imageRef, "error", devErr)
	} else {
		h.logger.Info("extract.ondevice.low_confidence",
			"image", imageRef,
			"confidence", devRes.Confidence,
			"threshold", h.cfg.ConfidenceThreshold)
	}

	if err := ctx.Err(); err != nil {
		return Result{Source: SourceNone}, common.Cancelled(err)
	}

	// Fall back to cloud; once consulted it is authoritative.
	cloudRes, cloudErr := h.cloud.Extract(ctx, imageRef)
	if cloudErr == nil {
		cloudRes.Source = SourceCloud
		h.logger.Info("extract.cloud.ok", "image", imageRef)
		return cloudRes, nil
	}
	if err := ctx.Err(); err != nil {
		return Result{Source: SourceNone}, common.Cancelled(err)
	}
	h.logger.Warn("extract.cloud.failed", "image", imageRef, "error", cloudErr)

	// Graceful degradation: a weak on-device result beats total failure.
	if devErr == nil {
		devRes.Source = SourceOnDevice
		h.logger.Info("extract.degraded.ondevice",
			"image", imageRef, "confidence", devRes.Confidence)
		return devRes, nil
	}

	return Result{Source: SourceNone}, common.E(common.CodeExtraction,
		fmt.Sprintf("on-device extraction failed: %v; cloud extraction failed: %v", devErr, cloudErr), nil)
}

// ExtractAll runs Extract once per input with a bounded worker pool. Individual
// failures do not stop the batch; the call fails only when every input failed,
// with all per-item errors folded into one message. Successful texts are
// returned in input order.
func (h *Hybrid) ExtractAll(ctx context.Context, imageRefs []string) ([]string, error) {
	if len(imageRefs) == 0 {
		return nil, common.E(common.CodeInvalidInput, "image URIs are required", common.ErrInvalidInput)
	}

	results := make([]Result, len(imageRefs))
	errs := make([]error, len(imageRefs))

	var wg sync.WaitGroup
	sem := make(chan struct{}, h.cfg.BatchWorkers)
	for i, ref := range imageRefs {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, ref string) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i], errs[i] = h.Extract(ctx, ref)
		}(i, ref)
	}
	wg.Wait()

	texts := make([]string, 0, len(imageRefs))
	var failures []string
	for i := range imageRefs {
		if errs[i] != nil {
			failures = append(failures, fmt.Sprintf("image %d: %v", i+1, errs[i]))
			continue
		}
		texts = append(texts, results[i].Text)
	}

	if len(texts) == 0 {
		return nil, common.E(common.CodeExtraction,
			"all extractions failed: "+strings.Join(failures, "; "), nil)
	}
	return texts, nil
}

// LastOutcome returns a snapshot of the most recent extraction result, if any.
func (h *Hybrid) LastOutcome() (Result, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.last == nil {
		return Result{}, false
	}
	return *h.last, true
}

func (h *Hybrid) record(res Result) {
	h.mu.Lock()
	h.last = &res
	h.mu.Unlock()
}
