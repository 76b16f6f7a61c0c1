package server

import (
	"context"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	snapdishv1 "github.com/snapdish/snapdish/gen/proto/snapdish/v1"
	"github.com/snapdish/snapdish/internal/export"
)

type ExportServer struct {
	snapdishv1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportRecipes(ctx context.Context, req *snapdishv1.ExportRecipesRequest) (*snapdishv1.ExportRecipesResponse, error) {
	xlsx, err := s.svc.ExportRecipesXLSX(ctx, req.GetIncludeArchived())
	if err != nil {
		s.logger.Error("export.xlsx.failed", "error", err)
		return nil, status.Errorf(codes.Internal, "export recipes: %v", err)
	}
	return &snapdishv1.ExportRecipesResponse{Xlsx: xlsx}, nil
}
