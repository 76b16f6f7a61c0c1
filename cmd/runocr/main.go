// runocr is a debug tool: it runs the hybrid text extraction on one image
// and prints the outcome without touching the store or the parser.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/snapdish/snapdish/internal/common"
	"github.com/snapdish/snapdish/internal/extract"
	"github.com/snapdish/snapdish/internal/ocr"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runocr <image-path>")
		os.Exit(2)
	}
	imagePath := os.Args[1]
	if _, err := os.Stat(imagePath); err != nil {
		logger.Error("cannot read image", "path", imagePath, "error", err)
		os.Exit(2)
	}

	cfg := common.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

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
	}, logger)

	res, err := hybrid.Extract(ctx, imagePath)
	if err != nil {
		logger.Error("extraction failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("source=%s confidence=%.3f chars=%d\n\n", res.Source, res.Confidence, len(res.Text))
	fmt.Println(res.Text)
}
