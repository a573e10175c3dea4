package worker

import (
	"context"
	"log/slog"
	"sync"
)

// ProcessFunc handles one job. Errors are logged by the pool; a failed job is
// not retried.
type ProcessFunc[T any] func(ctx context.Context, job T) error

// Pool is a fixed-size worker pool over a bounded job channel.
type Pool[T any] struct {
	numWorkers int
	jobs       chan T
	processor  ProcessFunc[T]
	wg         sync.WaitGroup
}

func NewPool[T any](numWorkers int, bufferSize int, processor ProcessFunc[T]) *Pool[T] {
	return &Pool[T]{
		numWorkers: numWorkers,
		jobs:       make(chan T, bufferSize),
		processor:  processor,
	}
}

func (p *Pool[T]) Start(ctx context.Context) {
	for i := 1; i <= p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

func (p *Pool[T]) worker(ctx context.Context) {
	defer p.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			if err := p.processor(ctx, job); err != nil {
				slog.Error("job failed", "error", err)
			}
		}
	}
}

// Submit blocks when the buffer is full.
func (p *Pool[T]) Submit(job T) {
	p.jobs <- job
}

// Stop closes the job channel and waits for the workers to drain.
func (p *Pool[T]) Stop() {
	close(p.jobs)
	p.wg.Wait()
}
