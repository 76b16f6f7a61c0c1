package pipeline

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/snapdish/snapdish/internal/common"
	"github.com/snapdish/snapdish/internal/entity"
)

// Batch is the outcome of a multi-image capture. Recipes holds the recipes
// that processed successfully, in input order. Errors holds one message per
// failed image, also in input order, each naming the 1-based position of the
// image that failed.
type Batch struct {
	Recipes []*entity.Recipe
	Errors  []string
}

// Succeeded reports how many images produced a recipe.
func (b *Batch) Succeeded() int { return len(b.Recipes) }

// Failed reports how many images could not be processed.
func (b *Batch) Failed() int { return len(b.Errors) }

// CaptureBatch runs the capture pipeline over every image concurrently,
// bounded by the configured worker count. The batch succeeds as long as at
// least one image does; per-image failures are reported in Batch.Errors. Only
// when every image fails does CaptureBatch return an error, carrying all
// per-image messages. The verdict is computed after every worker has
// finished, never early.
func (o *Orchestrator) CaptureBatch(ctx context.Context, imageRefs []string, persist bool) (*Batch, error) {
	if len(imageRefs) == 0 {
		return nil, common.E(common.CodeInvalidInput, "Image URIs are required", common.ErrInvalidInput)
	}

	o.logger.Info("capture.batch.start", "count", len(imageRefs), "workers", o.workers)

	type itemResult struct {
		rec *entity.Recipe
		err error
	}
	results := make([]itemResult, len(imageRefs))

	sem := make(chan struct{}, o.workers)
	var wg sync.WaitGroup
	for i, ref := range imageRefs {
		wg.Add(1)
		go func(i int, ref string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			rec, err := o.Capture(ctx, ref, persist)
			results[i] = itemResult{rec: rec, err: err}
		}(i, ref)
	}
	wg.Wait()

	batch := &Batch{}
	for i, res := range results {
		if res.err != nil {
			batch.Errors = append(batch.Errors, fmt.Sprintf("Failed to process image %d: %v", i+1, res.err))
			continue
		}
		batch.Recipes = append(batch.Recipes, res.rec)
	}

	if len(batch.Recipes) == 0 {
		joined := strings.Join(batch.Errors, "; ")
		// keep the dominant failure code so callers can still classify
		code := common.CodeUnexpected
		for _, res := range results {
			if res.err != nil {
				code = common.CodeOf(res.err)
				break
			}
		}
		o.logger.Error("capture.batch.failed", "count", len(imageRefs), "errors", len(batch.Errors))
		return nil, common.E(code, "All images failed to process: "+joined, nil)
	}

	o.logger.Info("capture.batch.done",
		"count", len(imageRefs),
		"succeeded", batch.Succeeded(),
		"failed", batch.Failed())
	return batch, nil
}
