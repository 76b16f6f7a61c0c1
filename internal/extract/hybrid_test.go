package extract

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapdish/snapdish/internal/common"
)

type fakeExtractor struct {
	res       Result
	err       error
	available bool
	calls     atomic.Int32
}

func (f *fakeExtractor) Extract(_ context.Context, _ string) (Result, error) {
	f.calls.Add(1)
	if f.err != nil {
		return Result{}, f.err
	}
	return f.res, nil
}

func (f *fakeExtractor) Available(_ context.Context) bool { return f.available }

func TestHybridPrefersConfidentOnDeviceResult(t *testing.T) {
	device := &fakeExtractor{res: Result{Text: "Pancakes\n2 cups flour", Confidence: 0.91}, available: true}
	cloud := &fakeExtractor{res: Result{Text: "cloud text", Confidence: 0.90}, available: true}
	h := NewHybrid(device, cloud, HybridConfig{}, nil)

	res, err := h.Extract(context.Background(), "img.jpg")
	require.NoError(t, err)
	assert.Equal(t, "Pancakes\n2 cups flour", res.Text)
	assert.Equal(t, SourceOnDevice, res.Source)
	assert.Zero(t, cloud.calls.Load(), "cloud must not be consulted above the threshold")
}

func TestHybridFallsBackOnLowConfidence(t *testing.T) {
	device := &fakeExtractor{res: Result{Text: "blurry", Confidence: 0.40}, available: true}
	cloud := &fakeExtractor{res: Result{Text: "sharp cloud text", Confidence: 0.95}, available: true}
	h := NewHybrid(device, cloud, HybridConfig{}, nil)

	res, err := h.Extract(context.Background(), "img.jpg")
	require.NoError(t, err)
	assert.Equal(t, "sharp cloud text", res.Text)
	assert.Equal(t, SourceCloud, res.Source)
	assert.Equal(t, int32(1), device.calls.Load())
	assert.Equal(t, int32(1), cloud.calls.Load())
}

func TestHybridExactThresholdStillFallsBack(t *testing.T) {
	// the threshold is strict: only strictly-greater skips the cloud
	device := &fakeExtractor{res: Result{Text: "edge", Confidence: 0.70}, available: true}
	cloud := &fakeExtractor{res: Result{Text: "cloud", Confidence: 0.90}, available: true}
	h := NewHybrid(device, cloud, HybridConfig{}, nil)

	res, err := h.Extract(context.Background(), "img.jpg")
	require.NoError(t, err)
	assert.Equal(t, SourceCloud, res.Source)
}

func TestHybridCloudIsAuthoritativeEvenWhenWorse(t *testing.T) {
	device := &fakeExtractor{res: Result{Text: "device text", Confidence: 0.60}, available: true}
	cloud := &fakeExtractor{res: Result{Text: "short", Confidence: 0.30}, available: true}
	h := NewHybrid(device, cloud, HybridConfig{}, nil)

	res, err := h.Extract(context.Background(), "img.jpg")
	require.NoError(t, err)
	assert.Equal(t, "short", res.Text)
	assert.Equal(t, SourceCloud, res.Source)
}

func TestHybridDegradesToWeakOnDeviceWhenCloudFails(t *testing.T) {
	device := &fakeExtractor{res: Result{Text: "weak but usable", Confidence: 0.35}, available: true}
	cloud := &fakeExtractor{err: errors.New("429 too many requests"), available: true}
	h := NewHybrid(device, cloud, HybridConfig{}, nil)

	res, err := h.Extract(context.Background(), "img.jpg")
	require.NoError(t, err)
	assert.Equal(t, "weak but usable", res.Text)
	assert.Equal(t, SourceOnDevice, res.Source)
	assert.InDelta(t, 0.35, float64(res.Confidence), 0.001)
}

func TestHybridBothTiersFailing(t *testing.T) {
	device := &fakeExtractor{err: errors.New("tesseract exited with status 1"), available: true}
	cloud := &fakeExtractor{err: errors.New("connection refused"), available: true}
	h := NewHybrid(device, cloud, HybridConfig{}, nil)

	_, err := h.Extract(context.Background(), "img.jpg")
	require.Error(t, err)
	assert.True(t, common.IsCode(err, common.CodeExtraction))
	assert.Contains(t, err.Error(), "on-device extraction failed: tesseract exited with status 1")
	assert.Contains(t, err.Error(), "cloud extraction failed: connection refused")
}

func TestHybridOnDeviceOnlyNeverTouchesCloud(t *testing.T) {
	device := &fakeExtractor{res: Result{Text: "txt", Confidence: 0.10}, available: true}
	cloud := &fakeExtractor{res: Result{Text: "cloud", Confidence: 0.99}, available: true}
	h := NewHybrid(device, cloud, HybridConfig{Mode: ModeOnDeviceOnly}, nil)

	res, err := h.Extract(context.Background(), "img.jpg")
	require.NoError(t, err)
	assert.Equal(t, SourceOnDevice, res.Source)
	assert.Zero(t, cloud.calls.Load())
}

func TestHybridCloudOnly(t *testing.T) {
	device := &fakeExtractor{res: Result{Text: "dev", Confidence: 0.99}, available: true}
	cloud := &fakeExtractor{res: Result{Text: "cloud", Confidence: 0.90}, available: true}
	h := NewHybrid(device, cloud, HybridConfig{Mode: ModeCloudOnly}, nil)

	res, err := h.Extract(context.Background(), "img.jpg")
	require.NoError(t, err)
	assert.Equal(t, SourceCloud, res.Source)
	assert.Zero(t, device.calls.Load())
}

func TestHybridCancellationBetweenTiers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	device := &fakeExtractor{res: Result{Text: "low", Confidence: 0.10}, available: true}
	cloud := &fakeExtractor{res: Result{Text: "cloud", Confidence: 0.90}, available: true}
	h := NewHybrid(device, cloud, HybridConfig{}, nil)

	cancel()
	_, err := h.Extract(ctx, "img.jpg")
	require.Error(t, err)
	assert.True(t, common.IsCode(err, common.CodeCancelled))
}

func TestHybridAvailability(t *testing.T) {
	tests := []struct {
		name   string
		mode   Mode
		device bool
		cloud  bool
		want   bool
	}{
		{"hybrid either tier", ModeHybrid, false, true, true},
		{"hybrid neither tier", ModeHybrid, false, false, false},
		{"ondevice ignores cloud", ModeOnDeviceOnly, false, true, false},
		{"cloud ignores device", ModeCloudOnly, true, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHybrid(
				&fakeExtractor{available: tt.device},
				&fakeExtractor{available: tt.cloud},
				HybridConfig{Mode: tt.mode}, nil)
			assert.Equal(t, tt.want, h.Available(context.Background()))
		})
	}
}

func TestHybridLastOutcome(t *testing.T) {
	device := &fakeExtractor{res: Result{Text: "txt", Confidence: 0.85}, available: true}
	cloud := &fakeExtractor{available: false}
	h := NewHybrid(device, cloud, HybridConfig{}, nil)

	_, ok := h.LastOutcome()
	assert.False(t, ok, "no outcome before the first extraction")

	_, err := h.Extract(context.Background(), "img.jpg")
	require.NoError(t, err)

	last, ok := h.LastOutcome()
	require.True(t, ok)
	assert.Equal(t, SourceOnDevice, last.Source)
	assert.InDelta(t, 0.85, float64(last.Confidence), 0.001)
}

func TestExtractAllPartialFailure(t *testing.T) {
	n := atomic.Int32{}
	device := &flakyExtractor{n: &n}
	cloud := &fakeExtractor{err: errors.New("no key"), available: false}
	h := NewHybrid(device, cloud, HybridConfig{BatchWorkers: 2}, nil)

	texts, err := h.ExtractAll(context.Background(), []string{"a.jpg", "b.jpg", "c.jpg"})
	require.NoError(t, err)
	assert.NotEmpty(t, texts)
}

func TestExtractAllEmptyInput(t *testing.T) {
	h := NewHybrid(&fakeExtractor{}, &fakeExtractor{}, HybridConfig{}, nil)
	_, err := h.ExtractAll(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, common.IsCode(err, common.CodeInvalidInput))
}

func TestExtractAllAllFailed(t *testing.T) {
	device := &fakeExtractor{err: errors.New("boom"), available: true}
	cloud := &fakeExtractor{err: errors.New("bust"), available: true}
	h := NewHybrid(device, cloud, HybridConfig{}, nil)

	_, err := h.ExtractAll(context.Background(), []string{"a.jpg", "b.jpg"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all extractions failed")
	assert.Contains(t, err.Error(), "image 1:")
	assert.Contains(t, err.Error(), "image 2:")
}

// flakyExtractor fails every second call.
type flakyExtractor struct {
	n *atomic.Int32
}

func (f *flakyExtractor) Extract(_ context.Context, _ string) (Result, error) {
	if f.n.Add(1)%2 == 0 {
		return Result{}, errors.New("intermittent")
	}
	return Result{Text: "ok", Confidence: 0.95}, nil
}

func (f *flakyExtractor) Available(_ context.Context) bool { return true }
