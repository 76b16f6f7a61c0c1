package pipeline

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapdish/snapdish/internal/common"
	"github.com/snapdish/snapdish/internal/entity"
	"github.com/snapdish/snapdish/internal/extract"
)

const sampleText = `Classic Pancakes
Ingredients:
- 2 cups flour
- 1 tbsp sugar
Directions:
1. Mix the dry ingredients.
2. Stir in milk and bake on a hot griddle.`

type fakeExtraction struct {
	res       extract.Result
	err       error
	available bool
	calls     atomic.Int32

	mu   sync.Mutex
	last *extract.Result
}

func (f *fakeExtraction) Extract(_ context.Context, _ string) (extract.Result, error) {
	f.calls.Add(1)
	if f.err != nil {
		return extract.Result{}, f.err
	}
	f.mu.Lock()
	f.last = &f.res
	f.mu.Unlock()
	return f.res, nil
}

func (f *fakeExtraction) Available(_ context.Context) bool { return f.available }

func (f *fakeExtraction) LastOutcome() (extract.Result, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.last == nil {
		return extract.Result{}, false
	}
	return *f.last, true
}

type fakeParser struct {
	recipe     *entity.Recipe
	parseErr   error
	valid      bool
	validErr   error
	confidence float32
	parseCalls atomic.Int32
}

func (f *fakeParser) ParseRecipe(_ context.Context, _ string) (*entity.Recipe, error) {
	f.parseCalls.Add(1)
	if f.parseErr != nil {
		return nil, f.parseErr
	}
	return f.recipe, nil
}

func (f *fakeParser) ParseRecipes(ctx context.Context, texts []string) ([]*entity.Recipe, error) {
	out := make([]*entity.Recipe, 0, len(texts))
	for range texts {
		r, err := f.ParseRecipe(ctx, "")
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeParser) ValidateText(_ string) (bool, error) { return f.valid, f.validErr }
func (f *fakeParser) Confidence() float32                 { return f.confidence }

type fakeRepo struct {
	saveErr   error
	saveCalls atomic.Int32
}

func (f *fakeRepo) Save(_ context.Context, _ *entity.Recipe) error {
	f.saveCalls.Add(1)
	return f.saveErr
}
func (f *fakeRepo) Update(_ context.Context, _ *entity.Recipe) error { return nil }
func (f *fakeRepo) GetByID(_ context.Context, _ uuid.UUID) (*entity.Recipe, error) {
	return nil, errors.New("not found")
}
func (f *fakeRepo) List(_ context.Context, _ bool) ([]*entity.Recipe, error) { return nil, nil }
func (f *fakeRepo) Archive(_ context.Context, _ uuid.UUID) error             { return nil }
func (f *fakeRepo) Delete(_ context.Context, _ uuid.UUID) error              { return nil }

func testRecipe(t *testing.T) *entity.Recipe {
	t.Helper()
	rec, err := entity.NewRecipe(entity.NewRecipeParams{Title: "Classic Pancakes"})
	require.NoError(t, err)
	return rec
}

func newTestOrchestrator(t *testing.T, ext *fakeExtraction, parser *fakeParser, repo *fakeRepo) *Orchestrator {
	t.Helper()
	return NewOrchestrator(ext, parser, repo, nil)
}

func TestCaptureHappyPath(t *testing.T) {
	ext := &fakeExtraction{res: extract.Result{Text: sampleText, Confidence: 0.92, Source: extract.SourceOnDevice}, available: true}
	parser := &fakeParser{recipe: testRecipe(t), valid: true, confidence: 0.8}
	repo := &fakeRepo{}
	orch := newTestOrchestrator(t, ext, parser, repo)

	rec, err := orch.Capture(context.Background(), "recipe.jpg", true)
	require.NoError(t, err)
	assert.Equal(t, "Classic Pancakes", rec.Title)
	assert.Equal(t, int32(1), repo.saveCalls.Load())
}

func TestCaptureEmptyImageRef(t *testing.T) {
	ext := &fakeExtraction{available: true}
	parser := &fakeParser{valid: true}
	repo := &fakeRepo{}
	orch := newTestOrchestrator(t, ext, parser, repo)

	for _, ref := range []string{"", "   ", "\t\n"} {
		_, err := orch.Capture(context.Background(), ref, true)
		require.Error(t, err)
		assert.True(t, common.IsCode(err, common.CodeInvalidInput))
		assert.Contains(t, err.Error(), "Image URI is required")
	}
	assert.Zero(t, ext.calls.Load(), "no service may be touched on invalid input")
	assert.Zero(t, parser.parseCalls.Load())
}

func TestCaptureServiceUnavailable(t *testing.T) {
	ext := &fakeExtraction{available: false}
	orch := newTestOrchestrator(t, ext, &fakeParser{valid: true}, &fakeRepo{})

	_, err := orch.Capture(context.Background(), "recipe.jpg", true)
	require.Error(t, err)
	assert.True(t, common.IsCode(err, common.CodeUnavailable))
	assert.Zero(t, ext.calls.Load(), "extraction must not run when unavailable")
}

func TestCaptureExtractionFailure(t *testing.T) {
	ext := &fakeExtraction{err: errors.New("tesseract not found"), available: true}
	orch := newTestOrchestrator(t, ext, &fakeParser{valid: true}, &fakeRepo{})

	_, err := orch.Capture(context.Background(), "recipe.jpg", true)
	require.Error(t, err)
	assert.True(t, common.IsCode(err, common.CodeExtraction))
	assert.Contains(t, err.Error(), "OCR failed: tesseract not found")
}

func TestCaptureNoTextExtracted(t *testing.T) {
	ext := &fakeExtraction{res: extract.Result{Text: "   \n  ", Confidence: 0.9}, available: true}
	parser := &fakeParser{valid: true}
	orch := newTestOrchestrator(t, ext, parser, &fakeRepo{})

	_, err := orch.Capture(context.Background(), "recipe.jpg", true)
	require.Error(t, err)
	assert.True(t, common.IsCode(err, common.CodeNoText))
	assert.Zero(t, parser.parseCalls.Load())
}

func TestCaptureTextNotARecipe(t *testing.T) {
	ext := &fakeExtraction{res: extract.Result{Text: "parking ticket 2024", Confidence: 0.95}, available: true}
	parser := &fakeParser{valid: false}
	orch := newTestOrchestrator(t, ext, parser, &fakeRepo{})

	_, err := orch.Capture(context.Background(), "ticket.jpg", true)
	require.Error(t, err)
	assert.True(t, common.IsCode(err, common.CodeNotRecipe))
	assert.Contains(t, err.Error(), "does not appear to be a recipe")
	assert.Zero(t, parser.parseCalls.Load())
}

func TestCaptureParsingFailure(t *testing.T) {
	ext := &fakeExtraction{res: extract.Result{Text: sampleText, Confidence: 0.9}, available: true}
	parser := &fakeParser{valid: true, parseErr: errors.New("model returned garbage")}
	orch := newTestOrchestrator(t, ext, parser, &fakeRepo{})

	_, err := orch.Capture(context.Background(), "recipe.jpg", true)
	require.Error(t, err)
	assert.True(t, common.IsCode(err, common.CodeParsing))
	assert.Contains(t, err.Error(), "Recipe parsing failed: model returned garbage")
}

func TestCapturePersistenceFailure(t *testing.T) {
	ext := &fakeExtraction{res: extract.Result{Text: sampleText, Confidence: 0.9}, available: true}
	parser := &fakeParser{recipe: testRecipe(t), valid: true}
	repo := &fakeRepo{saveErr: errors.New("disk full")}
	orch := newTestOrchestrator(t, ext, parser, repo)

	_, err := orch.Capture(context.Background(), "recipe.jpg", true)
	require.Error(t, err)
	assert.True(t, common.IsCode(err, common.CodePersistence))
	assert.Contains(t, err.Error(), "Failed to save recipe: disk full")
}

func TestCaptureSkipPersist(t *testing.T) {
	ext := &fakeExtraction{res: extract.Result{Text: sampleText, Confidence: 0.9}, available: true}
	parser := &fakeParser{recipe: testRecipe(t), valid: true}
	repo := &fakeRepo{saveErr: errors.New("must not be called")}
	orch := newTestOrchestrator(t, ext, parser, repo)

	rec, err := orch.Capture(context.Background(), "recipe.jpg", false)
	require.NoError(t, err)
	assert.NotNil(t, rec)
	assert.Zero(t, repo.saveCalls.Load(), "preview mode must not persist")
}

func TestCaptureCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ext := &fakeExtraction{res: extract.Result{Text: sampleText, Confidence: 0.9}, available: true}
	orch := newTestOrchestrator(t, ext, &fakeParser{valid: true}, &fakeRepo{})

	_, err := orch.Capture(ctx, "recipe.jpg", true)
	require.Error(t, err)
	assert.True(t, common.IsCode(err, common.CodeCancelled))
}

func TestCaptureRecoversFromPanic(t *testing.T) {
	ext := &fakeExtraction{res: extract.Result{Text: sampleText, Confidence: 0.9}, available: true}
	parser := &fakeParser{valid: true, recipe: nil} // nil recipe makes the success log panic
	orch := newTestOrchestrator(t, ext, parser, &fakeRepo{})

	rec, err := orch.Capture(context.Background(), "recipe.jpg", true)
	require.Error(t, err)
	assert.Nil(t, rec)
	assert.True(t, common.IsCode(err, common.CodeUnexpected))
	assert.Contains(t, err.Error(), "capture pipeline fault")
}

func TestCaptureBatchEmptyInput(t *testing.T) {
	orch := newTestOrchestrator(t, &fakeExtraction{available: true}, &fakeParser{valid: true}, &fakeRepo{})

	for _, refs := range [][]string{nil, {}} {
		_, err := orch.CaptureBatch(context.Background(), refs, true)
		require.Error(t, err)
		assert.True(t, common.IsCode(err, common.CodeInvalidInput))
		assert.Contains(t, err.Error(), "Image URIs are required")
	}
}

func TestCaptureBatchAllSucceed(t *testing.T) {
	ext := &fakeExtraction{res: extract.Result{Text: sampleText, Confidence: 0.9}, available: true}
	parser := &fakeParser{recipe: testRecipe(t), valid: true}
	orch := newTestOrchestrator(t, ext, parser, &fakeRepo{})

	batch, err := orch.CaptureBatch(context.Background(), []string{"a.jpg", "b.jpg", "c.jpg"}, true)
	require.NoError(t, err)
	assert.Equal(t, 3, batch.Succeeded())
	assert.Zero(t, batch.Failed())
}

func TestCaptureBatchPartialFailure(t *testing.T) {
	ext := &fakeExtraction{res: extract.Result{Text: sampleText, Confidence: 0.9}, available: true}
	parser := &fakeParser{recipe: testRecipe(t), valid: true}
	orch := newTestOrchestrator(t, ext, parser, &fakeRepo{})

	// the blank ref fails input validation inside its worker; the others succeed
	batch, err := orch.CaptureBatch(context.Background(), []string{"a.jpg", "", "c.jpg"}, true)
	require.NoError(t, err, "batch must succeed when at least one image does")
	assert.Equal(t, 2, batch.Succeeded())
	require.Equal(t, 1, batch.Failed())
	assert.Contains(t, batch.Errors[0], "Failed to process image 2:")
	assert.Contains(t, batch.Errors[0], "Image URI is required")
}

func TestCaptureBatchAllFail(t *testing.T) {
	ext := &fakeExtraction{err: errors.New("camera roll unreadable"), available: true}
	orch := newTestOrchestrator(t, ext, &fakeParser{valid: true}, &fakeRepo{})

	_, err := orch.CaptureBatch(context.Background(), []string{"a.jpg", "b.jpg"}, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "All images failed to process:")
	assert.Contains(t, err.Error(), "Failed to process image 1:")
	assert.Contains(t, err.Error(), "Failed to process image 2:")
}

func TestCaptureBatchSingleImage(t *testing.T) {
	ext := &fakeExtraction{res: extract.Result{Text: sampleText, Confidence: 0.9}, available: true}
	parser := &fakeParser{recipe: testRecipe(t), valid: true}
	orch := newTestOrchestrator(t, ext, parser, &fakeRepo{})

	batch, err := orch.CaptureBatch(context.Background(), []string{"only.jpg"}, true)
	require.NoError(t, err)
	assert.Equal(t, 1, batch.Succeeded())
}

func TestDiagnosticsBeforeAnyRun(t *testing.T) {
	orch := newTestOrchestrator(t, &fakeExtraction{available: true}, &fakeParser{confidence: 0.8}, &fakeRepo{})

	_, err := orch.LastOCRConfidence()
	require.Error(t, err)

	conf, err := orch.LastParsingConfidence()
	require.NoError(t, err)
	assert.InDelta(t, 0.8, float64(conf), 0.001)
}

func TestDiagnosticsAfterCapture(t *testing.T) {
	ext := &fakeExtraction{res: extract.Result{Text: sampleText, Confidence: 0.88, Source: extract.SourceOnDevice}, available: true}
	parser := &fakeParser{recipe: testRecipe(t), valid: true, confidence: 0.75}
	orch := newTestOrchestrator(t, ext, parser, &fakeRepo{})

	_, err := orch.Capture(context.Background(), "recipe.jpg", false)
	require.NoError(t, err)

	conf, err := orch.LastOCRConfidence()
	require.NoError(t, err)
	assert.InDelta(t, 0.88, float64(conf), 0.001)

	src, err := orch.LastExtractionSource()
	require.NoError(t, err)
	assert.Equal(t, extract.SourceOnDevice, src)
}
