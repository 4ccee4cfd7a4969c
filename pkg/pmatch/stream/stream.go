package stream

import (
	"context"
	"sync"

	"github.com/ib-77/pmatch/pkg/pmatch"
)

// Handlers routes the outcomes Dispatch cannot route by itself.
type Handlers[T, E, R any] struct {
	// OnMiss maps a result no case accepted; returning false drops it.
	// A nil OnMiss drops every miss.
	OnMiss func(ctx context.Context, in pmatch.Result[T, E]) (R, bool)
	// OnCancel runs once per worker when the context ends, with the
	// remaining input and the output channel.
	OnCancel func(ctx context.Context, in <-chan pmatch.Result[T, E], out chan<- R)
	// OnCancelUndelivered receives a result whose handler value could not
	// be delivered before cancellation.
	OnCancelUndelivered func(ctx context.Context, undelivered pmatch.Result[T, E], out chan<- R)
}

// Dispatch fans lines workers over a channel of results, applying the case
// list to each and emitting the chosen handler values. Unmatched results
// are dropped; use DispatchWith to route them.
func Dispatch[T, E, R any](ctx context.Context, in <-chan pmatch.Result[T, E],
	lines int, cases ...pmatch.MatchCase[T, E, R]) <-chan R {
	return DispatchWith(ctx, in, Handlers[T, E, R]{}, lines, cases...)
}

// DispatchWith is Dispatch with miss and cancellation routing. A lines
// value of zero or less falls back to the context-carried worker count.
// Output order across workers is not guaranteed.
func DispatchWith[T, E, R any](ctx context.Context, in <-chan pmatch.Result[T, E],
	handlers Handlers[T, E, R], lines int, cases ...pmatch.MatchCase[T, E, R]) <-chan R {

	if lines <= 0 {
		lines = LinesFromContext(ctx, defaultLines)
	}

	out := make(chan R)
	wg := &sync.WaitGroup{}

	for i := 0; i < lines; i++ {
		wg.Add(1)
		go dispatchLine(ctx, in, out, handlers, cases, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func dispatchLine[T, E, R any](ctx context.Context, in <-chan pmatch.Result[T, E], out chan<- R,
	handlers Handlers[T, E, R], cases []pmatch.MatchCase[T, E, R], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, in, out)
			}
			return
		case res, ok := <-in:
			if !ok {
				return
			}

			v, err := pmatch.Match(res, cases...)
			if err != nil {
				if handlers.OnMiss == nil {
					continue
				}
				fallback, deliver := handlers.OnMiss(ctx, res)
				if !deliver {
					continue
				}
				v = fallback
			}

			select {
			case <-ctx.Done():
				if handlers.OnCancelUndelivered != nil {
					handlers.OnCancelUndelivered(ctx, res, out)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, in, out)
				}
				return
			case out <- v:
			}
		}
	}
}
