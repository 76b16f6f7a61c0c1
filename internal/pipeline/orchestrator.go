// Package pipeline sequences the capture stages for one recipe image:
// extraction, recipe-likeness validation, structuring, and persistence.
// Every stage short-circuits on failure. There are no retries here;
// resilience belongs to the extraction and parsing clients.
package pipeline

import (
	"context"
	"strings"

	"log/slog"

	"github.com/snapdish/snapdish/constants"
	"github.com/snapdish/snapdish/internal/common"
	"github.com/snapdish/snapdish/internal/entity"
	"github.com/snapdish/snapdish/internal/extract"
	"github.com/snapdish/snapdish/internal/llm"
	"github.com/snapdish/snapdish/internal/repository"
)

// ExtractionService is the slice of the hybrid extractor the orchestrator uses.
type ExtractionService interface {
	Extract(ctx context.Context, imageRef string) (extract.Result, error)
	Available(ctx context.Context) bool
	LastOutcome() (extract.Result, bool)
}

// Orchestrator coordinates extraction, validation, structuring and persistence
// for captured recipe images.
type Orchestrator struct {
	extractor ExtractionService
	parser    llm.Parser
	repo      repository.RecipeRepository
	logger    *slog.Logger
	workers   int
}

type Option func(*Orchestrator)

// WithBatchWorkers bounds the batch worker pool.
func WithBatchWorkers(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.workers = n
		}
	}
}

func NewOrchestrator(extractor ExtractionService, parser llm.Parser, repo repository.RecipeRepository, logger *slog.Logger, opts ...Option) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	o := &Orchestrator{
		extractor: extractor,
		parser:    parser,
		repo:      repo,
		logger:    logger,
		workers:   4,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Capture runs the full pipeline for one image. With persist=false the
// structured recipe is returned without touching the repository (preview
// mode). This is the single place where unanticipated runtime faults are
// caught and converted into an error instead of propagating.
func (o *Orchestrator) Capture(ctx context.Context, imageRef string, persist bool) (rec *entity.Recipe, err error) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.Error("capture.panic", "image", imageRef, "fault", r)
			rec = nil
			err = common.Ef(common.CodeUnexpected, "capture pipeline fault: %v", r)
		}
		if err != nil {
			o.stage(imageRef, constants.StageFailed)
		}
	}()

	o.stage(imageRef, constants.StageValidatingInput)
	if strings.TrimSpace(imageRef) == "" {
		return nil, common.E(common.CodeInvalidInput, "Image URI is required", common.ErrInvalidInput)
	}
	if cerr := ctx.Err(); cerr != nil {
		return nil, common.Cancelled(cerr)
	}
	ctx = common.WithImageRef(ctx, imageRef)

	o.stage(imageRef, constants.StageCheckingService)
	if !o.extractor.Available(ctx) {
		return nil, common.E(common.CodeUnavailable, "text extraction service is unavailable", nil)
	}

	o.stage(imageRef, constants.StageExtracting)
	res, exErr := o.extractor.Extract(ctx, imageRef)
	if exErr != nil {
		if common.IsCode(exErr, common.CodeCancelled) {
			return nil, exErr
		}
		return nil, common.E(common.CodeExtraction, "OCR failed", exErr)
	}
	if strings.TrimSpace(res.Text) == "" {
		return nil, common.E(common.CodeNoText, "no text was extracted from the image", nil)
	}
	o.requestLogger(ctx).Debug("capture.extract.ok",
		"image", imageRef,
		"source", res.Source,
		"confidence", res.Confidence,
		"bytes", len(res.Text))

	o.stage(imageRef, constants.StageValidatingText)
	looksLikeRecipe, vErr := o.parser.ValidateText(res.Text)
	if vErr != nil {
		return nil, common.WrapError(vErr, "text validation failed")
	}
	if !looksLikeRecipe {
		return nil, common.E(common.CodeNotRecipe, "the extracted text does not appear to be a recipe", nil)
	}

	if cerr := ctx.Err(); cerr != nil {
		return nil, common.Cancelled(cerr)
	}

	o.stage(imageRef, constants.StageParsing)
	rec, pErr := o.parser.ParseRecipe(ctx, res.Text)
	if pErr != nil {
		if common.IsCode(pErr, common.CodeCancelled) {
			return nil, pErr
		}
		return nil, common.E(common.CodeParsing, "Recipe parsing failed", pErr)
	}

	if persist {
		o.stage(imageRef, constants.StagePersisting)
		if sErr := o.repo.Save(ctx, rec); sErr != nil {
			return nil, common.E(common.CodePersistence, "Failed to save recipe", sErr)
		}
	}

	o.stage(imageRef, constants.StageCompleted)
	o.requestLogger(ctx).Info("capture.ok",
		"image", imageRef,
		"recipe_id", rec.ID,
		"title", rec.Title,
		"persisted", persist)
	return rec, nil
}

// LastOCRConfidence reports the most recent extraction confidence.
func (o *Orchestrator) LastOCRConfidence() (float32, error) {
	res, ok := o.extractor.LastOutcome()
	if !ok {
		return 0, common.WrapError(common.ErrNotFound, "no extraction has been performed")
	}
	return res.Confidence, nil
}

// LastExtractionSource reports which tier served the most recent extraction.
func (o *Orchestrator) LastExtractionSource() (extract.Source, error) {
	res, ok := o.extractor.LastOutcome()
	if !ok {
		return extract.SourceNone, common.WrapError(common.ErrNotFound, "no extraction has been performed")
	}
	return res.Source, nil
}

// LastParsingConfidence reports the parser's running-average confidence.
func (o *Orchestrator) LastParsingConfidence() (float32, error) {
	return o.parser.Confidence(), nil
}

func (o *Orchestrator) stage(imageRef string, s constants.CaptureStage) {
	o.logger.Debug("capture.stage", "image", imageRef, "stage", string(s))
}

// requestLogger returns the orchestrator logger tagged with the request ID
// when the caller supplied one.
func (o *Orchestrator) requestLogger(ctx context.Context) *slog.Logger {
	if rid := common.RequestIDFromContext(ctx); rid != "" {
		return o.logger.With("req_id", rid)
	}
	return o.logger
}
