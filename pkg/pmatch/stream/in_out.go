package stream

import (
	"context"
	"sync"

	"github.com/ib-77/pmatch/pkg/pmatch"
)

// ToChan feeds prebuilt results onto a channel, stopping early when the
// context ends.
func ToChan[T, E any](ctx context.Context, results []pmatch.Result[T, E]) <-chan pmatch.Result[T, E] {
	in := make(chan pmatch.Result[T, E])

	go func() {
		defer close(in)

		for _, r := range results {
			if ctx.Err() != nil {
				return
			}
			select {
			case in <- r:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// OkChan wraps each value in Ok and feeds it onto a channel.
func OkChan[T, E any](ctx context.Context, values []T) <-chan pmatch.Result[T, E] {
	results := make([]pmatch.Result[T, E], 0, len(values))
	for _, v := range values {
		results = append(results, pmatch.Ok[T, E](v))
	}
	return ToChan(ctx, results)
}

// Collect drains a channel into a slice until it closes or the context
// ends.
func Collect[R any](ctx context.Context, out <-chan R) []R {
	res := make([]R, 0)
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()
		for {
			select {
			case v, ok := <-out:
				if !ok {
					return
				}
				res = append(res, v)
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	return res
}
