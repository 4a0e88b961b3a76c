// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"meshborder/internal/border"
	"meshborder/internal/mesh"
)

// Config controls the worker pool.
type Config struct {
	Threads int // number of worker goroutines (>=1)
}

// Result is the outcome for one part.
type Result struct {
	Index int
	Part  string
	Data  *border.BorderData // nil when the part is empty or closed
	Err   error
}

// Extractor is the per-part computation; border.Build in production.
type Extractor func(mesh.Part) (*border.BorderData, error)

// ForEachResult extracts every part and calls visit with the results in part
// order. It returns the first visit error or the context error.
func ForEachResult(parent context.Context, cfg Config, parts []mesh.Part, extract Extractor, visit func(Result) error) error {
	// cancelled by the caller or by the first visit error
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	if extract == nil {
		extract = border.Build
	}

	jobs := make(chan int, cfg.Threads*2)
	results := make(chan Result, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case i, ok := <-jobs:
					if !ok {
						return
					}
					d, err := extract(parts[i])
					select {
					case results <- Result{Index: i, Part: parts[i].Name, Data: d, Err: err}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector: release results strictly in index order.
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		pending := make(map[int]Result)
		next := 0
		for r := range results {
			pending[r.Index] = r
			for {
				r, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				if cerr == nil {
					if cerr = visit(r); cerr != nil {
						cancel()
					}
				}
			}
		}
	}()

	// Feed work
feed:
	for i := range parts {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if err := parent.Err(); err != nil {
		return err
	}
	return cerr
}

// Run collects all results in part order.
func Run(ctx context.Context, cfg Config, parts []mesh.Part) ([]Result, error) {
	out := make([]Result, 0, len(parts))
	err := ForEachResult(ctx, cfg, parts, nil, func(r Result) error {
		out = append(out, r)
		return nil
	})
	return out, err
}
