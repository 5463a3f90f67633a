package allocator

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// forEachLibrary calls fn for every library index.  With parallelism the
// index range is split into contiguous chunks; fn must only write the slot
// owned by its index.
func (b *base) forEachLibrary(ctx context.Context, n int, fn func(lib int)) error {
	workers := b.config.Parallelism
	if workers <= 1 || n < b.config.MinParallelLibraries || n < workers {
		for lib := 0; lib < n; lib++ {
			fn(lib)
		}
		return nil
	}
	group, _ := errgroup.WithContext(ctx)
	chunk := (n + workers - 1) / workers
	for start := 0; start < n; start += chunk {
		start := start
		end := min(start+chunk, n)
		group.Go(func() error {
			for lib := start; lib < end; lib++ {
				fn(lib)
			}
			return nil
		})
	}
	return group.Wait()
}
