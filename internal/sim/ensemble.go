package sim

import (
	"context"
	"runtime"
	"sync"
)

// Ensemble runs independent variants of one setup concurrently. Each
// run gets its own field built from a per-run seed, so nothing is
// shared between goroutines except the result slots.
type Ensemble struct {
	build     func(seed int64) (*Runner, error)
	runs      int
	seedStart int64
	workers   int
}

// NewEnsemble prepares runs variants. Variant i is built with seed
// seedStart+i.
func NewEnsemble(build func(seed int64) (*Runner, error), runs int, seedStart int64) *Ensemble {
	return &Ensemble{
		build:     build,
		runs:      runs,
		seedStart: seedStart,
		workers:   runtime.NumCPU(),
	}
}

// SetWorkers bounds the number of concurrent runs.
func (e *Ensemble) SetWorkers(n int) {
	if n > 0 {
		e.workers = n
	}
}

// Run executes every variant and returns results indexed by variant.
// The first build or run error wins; remaining in-flight runs still
// finish.
func (e *Ensemble) Run(ctx context.Context) ([]*Result, error) {
	results := make([]*Result, e.runs)
	errs := make([]error, e.runs)

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < e.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				runner, err := e.build(e.seedStart + int64(idx))
				if err != nil {
					errs[idx] = err
					continue
				}
				results[idx], errs[idx] = runner.Run(ctx)
			}
		}()
	}

	for i := 0; i < e.runs; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
