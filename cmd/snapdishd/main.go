// snapdishd is the capture daemon: it exposes the capture, recipes and
// export services over gRPC and drains a background capture queue on
// shutdown.
package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	snapdishv1 "github.com/snapdish/snapdish/gen/proto/snapdish/v1"
	"github.com/snapdish/snapdish/internal/async"
	"github.com/snapdish/snapdish/internal/common"
	"github.com/snapdish/snapdish/internal/export"
	"github.com/snapdish/snapdish/internal/extract"
	"github.com/snapdish/snapdish/internal/llm"
	"github.com/snapdish/snapdish/internal/llm/openai"
	"github.com/snapdish/snapdish/internal/ocr"
	"github.com/snapdish/snapdish/internal/pipeline"
	"github.com/snapdish/snapdish/internal/recipetext"
	repo "github.com/snapdish/snapdish/internal/repository"
	svc "github.com/snapdish/snapdish/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		Driver:           cfg.Database.Driver,
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	recipesRepo := repo.NewRecipeRepository(entc, logger)

	// Extraction: on-device tesseract plus the cloud fallback tier.
	deviceExtractor := ocr.NewExtractor(ocr.Config{
		Tesseract:           cfg.OCR.Tesseract,
		TesseractLang:       cfg.OCR.TesseractLang,
		TessdataDir:         cfg.OCR.TessdataDir,
		HeicConverter:       cfg.OCR.HeicConverter,
		EnableTSVConfidence: true,
		PSM:                 cfg.OCR.PSM,
		OEM:                 cfg.OCR.OEM,
	}, logger)
	device := extract.NewDeviceAdapter(deviceExtractor, logger)
	cloud := extract.NewCloudClient(extract.CloudConfig{
		BaseURL: cfg.Cloud.BaseURL,
		APIKey:  cfg.Cloud.APIKey,
		Model:   cfg.Cloud.Model,
		Timeout: cfg.Cloud.Timeout,
	}, logger)
	hybrid := extract.NewHybrid(device, cloud, extract.HybridConfig{
		Mode:                extract.Mode(cfg.Pipeline.Mode),
		ConfidenceThreshold: cfg.Pipeline.ConfidenceThreshold,
		BatchWorkers:        cfg.Pipeline.BatchWorkers,
	}, logger)

	// Structuring: the OpenAI parser when a key is configured, the offline
	// rules parser otherwise.
	validator := recipetext.NewValidator(logger)
	var parser llm.Parser
	if cfg.LLM.APIKey != "" {
		parser = openai.NewClient(openai.Config{
			APIKey:      cfg.LLM.APIKey,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}, logger)
	} else {
		logger.Warn("OPENAI_API_KEY not set, using offline rules parser")
		parser = llm.NewRulesParser(validator, logger)
	}

	orch := pipeline.NewOrchestrator(hybrid, parser, recipesRepo, logger,
		pipeline.WithBatchWorkers(cfg.Pipeline.BatchWorkers),
	)

	queue := async.NewCaptureQueue(orch, logger,
		async.WithWorkers(cfg.Pipeline.BatchWorkers),
		async.WithQueueSize(512),
		async.WithCaptureTimeout(3*time.Minute),
	)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	snapdishv1.RegisterCaptureServiceServer(grpcServer, svc.NewCaptureServer(orch, queue, logger))
	snapdishv1.RegisterRecipesServiceServer(grpcServer, svc.NewRecipesServer(recipesRepo, logger))
	snapdishv1.RegisterExportServiceServer(grpcServer, svc.NewExportServer(export.NewService(recipesRepo, logger), logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("snapdishd listening", "addr", cfg.Server.GRPCAddr, "mode", cfg.Pipeline.Mode)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
