package extract

import (
	"context"
	"strings"

	"log/slog"

	"github.com/snapdish/snapdish/internal/ocr"
)

// DeviceAdapter exposes the local tesseract extractor as an extraction tier.
type DeviceAdapter struct {
	e *ocr.Extractor
}

func NewDeviceAdapter(e *ocr.Extractor, _ *slog.Logger) *DeviceAdapter {
	return &DeviceAdapter{e: e}
}

// localPath strips the file:// scheme so capture references resolve on disk.
// Both tiers must accept the same reference forms.
func localPath(ref string) string {
	return strings.TrimPrefix(ref, "file://")
}

func (a *DeviceAdapter) Extract(ctx context.Context, imageRef string) (Result, error) {
	r, err := a.e.Extract(ctx, localPath(imageRef))
	if err != nil {
		return Result{}, err
	}
	return Result{
		Text:       r.Text,
		Confidence: r.Confidence,
	}, nil
}

func (a *DeviceAdapter) Available(_ context.Context) bool {
	return a.e.Available()
}
