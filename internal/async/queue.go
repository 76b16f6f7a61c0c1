// Package async holds the background capture queue used by the gRPC surface
// for fire-and-forget submissions.
package async

import (
	"context"
	"sync"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/snapdish/snapdish/internal/entity"
)

// Job is one image to capture in the background.
type Job struct {
	ID          uuid.UUID
	ImageRef    string
	Persist     bool
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// Capturer is the pipeline entry point the queue drives.
type Capturer interface {
	Capture(ctx context.Context, imageRef string, persist bool) (*entity.Recipe, error)
}

type CaptureQueue struct {
	pipe    Capturer
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*CaptureQueue)

func WithWorkers(n int) Option {
	return func(q *CaptureQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *CaptureQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithCaptureTimeout(d time.Duration) Option {
	return func(q *CaptureQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewCaptureQueue(pipe Capturer, logger *slog.Logger, opts ...Option) *CaptureQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &CaptureQueue{
		pipe:    pipe,
		logger:  logger,
		workers: 4,
		timeout: 3 * time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *CaptureQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					rec, err := q.pipe.Capture(ctx, job.ImageRef, job.Persist)
					cancel()

					if err != nil {
						q.logger.Error("capture failed", "worker_id", workerID, "job_id", job.ID, "image", job.ImageRef, "error", err)
					} else {
						q.logger.Info("captured recipe", "worker_id", workerID, "job_id", job.ID, "recipe_id", rec.ID, "title", rec.Title)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *CaptureQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "job_id", job.ID)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued image for capture", "job_id", job.ID, "image", job.ImageRef)
	default:
		q.logger.Warn("queue full, applying backpressure", "job_id", job.ID)
		q.ch <- job
	}
	return nil
}

func (q *CaptureQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
