package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	snapdishv1 "github.com/snapdish/snapdish/gen/proto/snapdish/v1"
	"github.com/snapdish/snapdish/internal/async"
	"github.com/snapdish/snapdish/internal/common"
	"github.com/snapdish/snapdish/internal/pipeline"
)

type CaptureServer struct {
	snapdishv1.UnimplementedCaptureServiceServer
	orch   *pipeline.Orchestrator
	queue  async.Queue
	logger *slog.Logger
}

func NewCaptureServer(orch *pipeline.Orchestrator, queue async.Queue, logger *slog.Logger) *CaptureServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &CaptureServer{orch: orch, queue: queue, logger: logger}
}

func (s *CaptureServer) CaptureRecipe(ctx context.Context, req *snapdishv1.CaptureRecipeRequest) (*snapdishv1.CaptureRecipeResponse, error) {
	ctx = common.WithRequestID(ctx, uuid.New().String())
	rec, err := s.orch.Capture(ctx, req.GetImageUri(), !req.GetSkipPersist())
	if err != nil {
		s.logger.Error("capture.rpc.failed", "image", req.GetImageUri(), "error", err)
		return nil, common.GRPCStatus(err)
	}
	return &snapdishv1.CaptureRecipeResponse{Recipe: toPBRecipe(rec)}, nil
}

func (s *CaptureServer) CaptureRecipeBatch(ctx context.Context, req *snapdishv1.CaptureRecipeBatchRequest) (*snapdishv1.CaptureRecipeBatchResponse, error) {
	ctx = common.WithRequestID(ctx, uuid.New().String())
	batch, err := s.orch.CaptureBatch(ctx, req.GetImageUris(), !req.GetSkipPersist())
	if err != nil {
		s.logger.Error("capture.batch.rpc.failed", "count", len(req.GetImageUris()), "error", err)
		return nil, common.GRPCStatus(err)
	}
	out := &snapdishv1.CaptureRecipeBatchResponse{Errors: batch.Errors}
	for _, rec := range batch.Recipes {
		out.Recipes = append(out.Recipes, toPBRecipe(rec))
	}
	return out, nil
}

func (s *CaptureServer) EnqueueCapture(ctx context.Context, req *snapdishv1.EnqueueCaptureRequest) (*snapdishv1.EnqueueCaptureResponse, error) {
	if strings.TrimSpace(req.GetImageUri()) == "" {
		return nil, status.Error(codes.InvalidArgument, "Image URI is required")
	}
	job := async.Job{
		ID:          uuid.New(),
		ImageRef:    req.GetImageUri(),
		Persist:     true,
		SubmittedAt: time.Now().UTC(),
	}
	if err := s.queue.Enqueue(ctx, job); err != nil {
		return nil, common.GRPCStatus(err)
	}
	return &snapdishv1.EnqueueCaptureResponse{JobId: job.ID.String()}, nil
}

func (s *CaptureServer) GetDiagnostics(_ context.Context, _ *snapdishv1.GetDiagnosticsRequest) (*snapdishv1.GetDiagnosticsResponse, error) {
	resp := &snapdishv1.GetDiagnosticsResponse{}
	if conf, err := s.orch.LastOCRConfidence(); err == nil {
		resp.OcrConfidence = conf
	}
	if src, err := s.orch.LastExtractionSource(); err == nil {
		resp.ExtractionSource = string(src)
	}
	if conf, err := s.orch.LastParsingConfidence(); err == nil {
		resp.ParsingConfidence = conf
	}
	return resp, nil
}
