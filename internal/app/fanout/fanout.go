// Package fanout runs one operation over every item of a batch selection with
// bounded concurrency.
//
// Batch handlers use it when each selected object needs its own persistence
// call. Every item is attempted; outcomes come back in selection order so
// callers can report the first failure deterministically:
//
//	results := fanout.Run(ctx, 4, articles, publish)
//	tally := fanout.Summarize(results)
//	if tally.Failed > 0 {
//		first := articles[tally.FirstFailure]
//		...
//	}
package fanout

import (
	"context"
	"fmt"
	"sync"
)

// Result holds the outcome of processing a single item.
// Value is whatever fn returned, Err is non-nil on failure.
type Result[R any] struct {
	Value R
	Err   error
}

// PanicError reports an item whose operation panicked. The panic is contained
// to the item so the remaining selection still runs.
type PanicError struct {
	Index int
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("fanout: item %d panicked: %v", e.Index, e.Value)
}

// Run executes fn for each item using at most maxWorkers goroutines and
// returns the outcomes in input order. A maxWorkers below one runs the items
// one at a time.
//
// Items still waiting for a worker when ctx is canceled record ctx.Err()
// without calling fn. Items already running finish; fn sees the canceled ctx.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}
	maxWorkers = max(maxWorkers, 1)

	results := make([]Result[R], len(items))
	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		go func() {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i] = Result[R]{Err: ctx.Err()}
				return
			}

			results[i] = call(ctx, i, item, fn)
		}()
	}

	wg.Wait()
	return results
}

func call[T, R any](ctx context.Context, idx int, item T, fn func(context.Context, T) (R, error)) (res Result[R]) {
	defer func() {
		if v := recover(); v != nil {
			res = Result[R]{Err: &PanicError{Index: idx, Value: v}}
		}
	}()
	val, err := fn(ctx, item)
	return Result[R]{Value: val, Err: err}
}

// Tally summarizes a Run.
type Tally struct {
	Succeeded int
	Failed    int
	// FirstFailure is the input index of the first failed item, -1 when
	// nothing failed.
	FirstFailure int
}

// Summarize counts the outcomes of results.
func Summarize[R any](results []Result[R]) Tally {
	t := Tally{FirstFailure: -1}
	for i, r := range results {
		if r.Err == nil {
			t.Succeeded++
			continue
		}
		t.Failed++
		if t.FirstFailure < 0 {
			t.FirstFailure = i
		}
	}
	return t
}
