// Package fanout runs a function over a slice of items with a fixed number
// of workers and returns the outcomes in input order. The todo service uses
// it to fetch several todos by id at once.
package fanout

import (
	"context"
	"sync"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item using at most maxWorkers goroutines. Results
// line up with items by index. A maxWorkers below 1 is treated as 1.
//
// Once ctx is done, items not yet started record ctx.Err() without calling
// fn; calls already in flight finish normally. Run returns after every item
// has a result. An empty items slice yields an empty non-nil slice.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	workers := min(max(maxWorkers, 1), len(items))

	next := make(chan int)
	var wg sync.WaitGroup
	for range workers {
		wg.Go(func() {
			for idx := range next {
				if err := ctx.Err(); err != nil {
					results[idx] = Result[R]{Err: err}
					continue
				}
				val, err := fn(ctx, items[idx])
				results[idx] = Result[R]{Value: val, Err: err}
			}
		})
	}

	for i := range items {
		next <- i
	}
	close(next)

	wg.Wait()
	return results
}
