package scan

import (
	"runtime"
	"sync"

	"github.com/accrava/codesweep/internal/rules"
	"github.com/accrava/codesweep/internal/types"
)

type Options struct {
	Threads int // 0 = GOMAXPROCS
}

// Batch scans every path with a bounded worker pool. Results are written into
// an index-addressed slice so output order always equals input order, no
// matter how the scheduler interleaves the workers. The catalog is read-only
// and shared across workers.
func Batch(paths []string, cat *rules.Catalog, opt Options) []types.FileResult {
	threads := opt.Threads
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}

	results := make([]types.FileResult, len(paths))
	sem := make(chan struct{}, threads)
	var wg sync.WaitGroup
	for i, p := range paths {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, p string) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = File(p, cat)
		}(i, p)
	}
	wg.Wait()
	return results
}
