// Package fanout runs one function over a slice of inputs on a bounded number
// of goroutines and hands the outcomes back in input order, so callers can
// parallelize independent work and still fold the results deterministically.
package fanout

import (
	"context"
	"sync"
)

// Result pairs one input with its outcome. Exactly one of Value or Err is
// meaningful.
type Result[T, R any] struct {
	Input T
	Value R
	Err   error
}

// Run calls fn once per input with at most workers calls in flight. A
// workers value below 1 is treated as 1. The returned slice has the same
// length and order as inputs, and is non-nil even for no inputs.
//
// Inputs still waiting for a slot when ctx is done are not run; their Err is
// ctx.Err(). Calls already running finish normally, so fn should watch ctx
// itself when it can block.
func Run[T, R any](ctx context.Context, workers int, inputs []T, fn func(context.Context, T) (R, error)) []Result[T, R] {
	results := make([]Result[T, R], len(inputs))
	if len(inputs) == 0 {
		return results
	}
	workers = max(1, min(workers, len(inputs)))

	slots := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, in := range inputs {
		results[i].Input = in
		wg.Go(func() {
			select {
			case slots <- struct{}{}:
				defer func() { <-slots }()
			case <-ctx.Done():
				results[i].Err = ctx.Err()
				return
			}
			// select picks randomly when both cases are ready.
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return
			}
			results[i].Value, results[i].Err = fn(ctx, in)
		})
	}
	wg.Wait()
	return results
}
