package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/snapdish/snapdish/internal/common"
	"github.com/snapdish/snapdish/internal/export"
	"github.com/snapdish/snapdish/internal/extract"
	"github.com/snapdish/snapdish/internal/llm"
	"github.com/snapdish/snapdish/internal/llm/openai"
	"github.com/snapdish/snapdish/internal/ocr"
	"github.com/snapdish/snapdish/internal/pipeline"
	"github.com/snapdish/snapdish/internal/recipetext"
	repo "github.com/snapdish/snapdish/internal/repository"
)

// commandContext lazily wires the pipeline against the local store so each
// subcommand can grab just the pieces it needs.
type commandContext struct {
	verbose bool

	cfg    *common.Config
	logger *slog.Logger
}

func newCommandContext() *commandContext {
	return &commandContext{}
}

func (c *commandContext) config() *common.Config {
	if c.cfg == nil {
		c.cfg = common.LoadConfig()
	}
	return c.cfg
}

func (c *commandContext) slog() *slog.Logger {
	if c.logger == nil {
		level := slog.LevelWarn
		if c.verbose {
			level = slog.LevelDebug
		}
		c.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}
	return c.logger
}

// withRepo opens the store, runs fn, and closes the store afterwards.
func (c *commandContext) withRepo(ctx context.Context, fn func(repo.RecipeRepository) error) error {
	cfg := c.config()
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := c.slog()

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
		return err
	}
	defer repo.Close(entc, pool, logger)

	return fn(repo.NewRecipeRepository(entc, logger))
}

// withOrchestrator wires the full capture pipeline over the open store.
func (c *commandContext) withOrchestrator(ctx context.Context, fn func(*pipeline.Orchestrator) error) error {
	return c.withRepo(ctx, func(recipes repo.RecipeRepository) error {
		cfg := c.config()
		logger := c.slog()

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
			parser = llm.NewRulesParser(validator, logger)
		}

		orch := pipeline.NewOrchestrator(hybrid, parser, recipes, logger,
			pipeline.WithBatchWorkers(cfg.Pipeline.BatchWorkers),
		)
		return fn(orch)
	})
}

// withExport wires the XLSX export service over the open store.
func (c *commandContext) withExport(ctx context.Context, fn func(*export.Service) error) error {
	return c.withRepo(ctx, func(recipes repo.RecipeRepository) error {
		return fn(export.NewService(recipes, c.slog()))
	})
}
