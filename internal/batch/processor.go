package batch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Kamar-Folarin/github-analyzer/internal/config"
	"github.com/Kamar-Folarin/github-analyzer/internal/models"
)

// Processor fans work out over a bounded pool and waits for every task to settle.
// A failing task never cancels its siblings.
type Processor struct {
	config *config.BatchConfig
}

// NewProcessor creates a new batch processor
func NewProcessor(cfg *config.BatchConfig) *Processor {
	if cfg == nil {
		cfg = &config.DefaultAnalysisConfig().Batch
	}
	return &Processor{config: cfg}
}

// Settle runs processFn for every index in [0, total) and returns once all of them
// have finished. errs[i] holds the error of task i, or nil.
func (p *Processor) Settle(ctx context.Context, total int, processFn func(ctx context.Context, i int) error) (errs []error, progress *models.BatchProgress) {
	progress = &models.BatchProgress{
		Total:     total,
		StartTime: time.Now(),
	}
	errs = make([]error, total)
	if total == 0 {
		return errs, progress
	}

	workers := p.config.Workers
	if workers <= 0 {
		workers = 1
	}

	// Tasks report failures through errs, so the group itself never fails
	// and never cancels ctx for the remaining tasks.
	var g errgroup.Group
	g.SetLimit(workers)

	var mu sync.Mutex
	for i := 0; i < total; i++ {
		g.Go(func() error {
			err := runTask(ctx, i, processFn)

			mu.Lock()
			defer mu.Unlock()
			errs[i] = err
			if err != nil {
				progress.Failed++
				progress.Errors = append(progress.Errors, err)
			} else {
				progress.Succeeded++
			}
			return nil
		})
	}
	_ = g.Wait()

	progress.Duration = time.Since(progress.StartTime)
	return errs, progress
}

// runTask isolates a single task so a panic is reported as that task's error
func runTask(ctx context.Context, i int, processFn func(ctx context.Context, i int) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task %d panicked: %v", i, r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return err
	}
	return processFn(ctx, i)
}
