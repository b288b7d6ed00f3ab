// Package fanout runs independent jobs on a bounded set of worker goroutines.
//
// Jobs are identified by index and write their result into their own slot, so
// workers share nothing but the job queue. Callers get results back in index
// order regardless of completion order.
package fanout

import (
	"context"
	"fmt"
	"runtime"
	"sync"
)

// DefaultWorkers is used when a caller asks for zero or fewer workers.
var DefaultWorkers = runtime.NumCPU()

// Func computes the result for job i.
type Func[R any] func(ctx context.Context, i int) (R, error)

// Map runs fn for every index in [0, n) on at most workers goroutines and
// returns the results in index order.
//
// The first job error cancels the remaining jobs and is returned wrapped with
// its index. Context cancellation stops dispatch and returns ctx.Err().
func Map[R any](ctx context.Context, workers, n int, fn Func[R]) ([]R, error) {
	if n <= 0 {
		return []R{}, nil
	}
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if workers > n {
		workers = n
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]R, n)
	jobs := make(chan int)

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				r, err := fn(ctx, i)
				if err != nil {
					fail(fmt.Errorf("job %d: %w", i, err))
					continue
				}
				results[i] = r
			}
		}()
	}

dispatch:
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
