package picturelab

import "golang.org/x/sync/errgroup"

// forRows calls fn once for every row in [0, n). With more than one worker
// the rows are split into contiguous bands, one goroutine per band. fn must
// only write to state owned by its row.
func forRows(n, workers int, fn func(row int)) {
	if workers <= 1 || n < 2 {
		for row := 0; row < n; row++ {
			fn(row)
		}
		return
	}
	workers = min(workers, n)
	band := (n + workers - 1) / workers

	var eg errgroup.Group
	eg.SetLimit(workers)
	for start := 0; start < n; start += band {
		end := min(start+band, n)
		eg.Go(func() error {
			for row := start; row < end; row++ {
				fn(row)
			}
			return nil
		})
	}
	_ = eg.Wait()
}
