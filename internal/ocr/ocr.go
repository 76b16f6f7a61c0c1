package ocr

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"time"

	"log/slog"

	"github.com/snapdish/snapdish/constants"
)

type Config struct {
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "eng"

	TessdataDir         string
	HeicConverter       string // "heif-convert" | "magick" | "sips"
	EnableTSVConfidence bool

	PSM int // 6 is a good fit for a photographed recipe card
	OEM int // 1 = LSTM; leave 0 to use default
}

// ExtractionResult is the on-device OCR outcome for one image.
type ExtractionResult struct {
	Text       string
	Language   string
	Duration   time.Duration
	Warnings   []string
	Confidence float32
}

// Extractor runs tesseract against recipe photos through an exec Runner.
type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	return &Extractor{cfg: cfg, runner: execRunner{log: logger}, logger: logger}
}

// Available reports whether the tesseract binary can be resolved.
func (e *Extractor) Available() bool {
	_, err := exec.LookPath(e.cfg.Tesseract)
	return err == nil
}

// Extract OCRs a single image, converting HEIC captures first when needed.
func (e *Extractor) Extract(ctx context.Context, path string) (ExtractionResult, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	e.logger.Debug("ocr.extract.start", "path", path, "ext", ext)

	if !constants.IsImageExt(ext) {
		e.logger.Error("ocr.extract.unsupported", "extension", ext)
		return ExtractionResult{}, fmt.Errorf("unsupported extension: %q", ext)
	}

	var warns []string
	if constants.IsHEICExt(ext) {
		out, w, cleanup, err := convertHEICtoPNG(ctx, e.runner, e.cfg.HeicConverter, path)
		warns = append(warns, w...)
		if err != nil {
			e.logger.Error("ocr.heic.convert_failed", "path", path, "error", err)
			return ExtractionResult{Warnings: warns}, err
		}
		defer cleanup()
		path = out
	}

	res, err := e.extractImage(ctx, path)
	res.Duration = time.Since(start)
	res.Warnings = append(res.Warnings, warns...)
	return res, err
}
