package async

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapdish/snapdish/internal/entity"
)

type countingCapturer struct {
	calls atomic.Int32
}

func (c *countingCapturer) Capture(_ context.Context, _ string, _ bool) (*entity.Recipe, error) {
	c.calls.Add(1)
	return entity.NewRecipe(entity.NewRecipeParams{Title: "Queued Recipe"})
}

func TestQueueProcessesJobs(t *testing.T) {
	c := &countingCapturer{}
	q := NewCaptureQueue(c, nil, WithWorkers(2), WithQueueSize(8))

	for i := 0; i < 5; i++ {
		require.NoError(t, q.Enqueue(context.Background(), Job{
			ID:          uuid.New(),
			ImageRef:    "img.jpg",
			Persist:     true,
			SubmittedAt: time.Now().UTC(),
		}))
	}

	q.Shutdown(context.Background())
	assert.Equal(t, int32(5), c.calls.Load())
}

func TestQueueEnqueueAfterShutdownIsDropped(t *testing.T) {
	c := &countingCapturer{}
	q := NewCaptureQueue(c, nil, WithWorkers(1))
	q.Shutdown(context.Background())

	require.NoError(t, q.Enqueue(context.Background(), Job{ID: uuid.New(), ImageRef: "late.jpg"}))
	assert.Zero(t, c.calls.Load())
}

func TestQueueShutdownIsIdempotent(t *testing.T) {
	q := NewCaptureQueue(&countingCapturer{}, nil)
	q.Shutdown(context.Background())
	q.Shutdown(context.Background()) // must not panic or block
}
