package engine

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"orchidbreed/domain/breeding"
	"orchidbreed/domain/specimen"
)

type pairJob struct {
	a, b specimen.SpecimenRef
}

// assessAll evaluates every job on at most Workers goroutines. Results keep job order.
func (e *Engine) assessAll(ctx context.Context, jobs []pairJob) ([]breeding.CompatibilityAssessment, error) {
	results := make([]breeding.CompatibilityAssessment, len(jobs))
	sem := semaphore.NewWeighted(int64(e.opts.Workers))

	var wg sync.WaitGroup
	for i, job := range jobs {
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return nil, err
		}
		wg.Add(1)
		go func(i int, job pairJob) {
			defer wg.Done()
			defer sem.Release(1)
			results[i] = e.Assess(job.a, job.b)
		}(i, job)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
