package execution

import (
	"context"
	"sync"
	"time"

	"gramcheck/internal/check"
	"gramcheck/internal/config"
	"gramcheck/internal/domain"
	"gramcheck/internal/ui"
)

// WorkerPool runs cases through parallel workers. Used for large suites;
// per-case console lines are replaced by a progress bar since completion
// order is not deterministic.
type WorkerPool struct {
	config   *config.Config
	invoker  Invoker
	checker  *check.Checker
	progress *ui.ProgressBar
}

// NewWorkerPool creates a new WorkerPool
func NewWorkerPool(cfg *config.Config, invoker Invoker, checker *check.Checker) *WorkerPool {
	return &WorkerPool{
		config:  cfg,
		invoker: invoker,
		checker: checker,
	}
}

// SetProgress sets the progress bar for the worker pool
func (wp *WorkerPool) SetProgress(progress *ui.ProgressBar) {
	wp.progress = progress
}

// Execute runs cases through the pool. The first invoker error cancels the
// remaining work and aborts the run.
func (wp *WorkerPool) Execute(ctx context.Context, cases []domain.Case) ([]domain.CaseResult, time.Duration, error) {
	if len(cases) == 0 {
		return nil, 0, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	queue := make(chan domain.Case, len(cases))
	results := make(chan domain.CaseResult, len(cases))
	for _, c := range cases {
		queue <- c
	}
	close(queue)

	var mu sync.Mutex
	var passed, failed int
	var firstErr error
	start := time.Now()

	workerCount := wp.config.Processors
	if workerCount <= 0 {
		workerCount = 1
	}

	var wg sync.WaitGroup
	for i := 1; i <= workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range queue {
				select {
				case <-ctx.Done():
					return
				default:
				}

				inv, err := wp.invoker.Run(ctx, c)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					cancel()
					return
				}

				res := wp.checker.Evaluate(c, inv)
				results <- res

				mu.Lock()
				if res.Passed {
					passed++
				} else {
					failed++
				}
				if wp.progress != nil {
					wp.progress.Update(passed, failed)
				}
				mu.Unlock()
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var all []domain.CaseResult
	for res := range results {
		all = append(all, res)
	}
	if wp.progress != nil {
		wp.progress.Finish()
	}

	mu.Lock()
	err := firstErr
	mu.Unlock()
	if err != nil {
		return nil, time.Since(start), err
	}
	return all, time.Since(start), nil
}
