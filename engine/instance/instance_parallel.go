package instance

import (
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// BuildParallel lays out the grid like Build but splits the x axis into slabs that are filled
// on a worker pool. The result is identical to Build. workers <= 1 falls back to Build.
//
// Parameters:
//   - g: the grid to lay out
//   - workers: maximum number of concurrent workers
//
// Returns:
//   - []Record: Count() records indexed by Grid.Index
func BuildParallel(g Grid, workers int) []Record {
	if workers <= 1 || g.NX <= 1 {
		return Build(g)
	}
	workers = min(workers, g.NX)

	records := make([]Record, g.Count())
	pool := worker.NewDynamicWorkerPool(workers, workers, 1*time.Second)

	// pool.Wait() blocks until workers idle-exit, so a WaitGroup is the barrier.
	var wg sync.WaitGroup
	slab := (g.NX + workers - 1) / workers
	for id, i0 := 0, 0; i0 < g.NX; id, i0 = id+1, i0+slab {
		i1 := min(i0+slab, g.NX)
		wg.Add(1)
		pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				fillSlab(g, records, i0, i1)
				return nil, nil
			},
		})
	}
	wg.Wait()

	return records
}
