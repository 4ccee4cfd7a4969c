package trap

import (
	"context"
	"errors"
	"fmt"

	"github.com/ib-77/pmatch/pkg/pmatch"
)

// Catch invokes f and folds its outcome into a Result: a normal return
// becomes Ok, a returned error becomes Err.
func Catch[T any](f func() (T, error)) pmatch.Result[T, error] {
	v, err := f()
	if err != nil {
		return pmatch.Err[T, error](err)
	}
	return pmatch.Ok[T, error](v)
}

// CatchOnly is Catch with an allowlist: an error matching one of the
// acceptable targets (by errors.Is) becomes Err, anything else is re-raised
// unchanged as the second return value and the Result must be ignored.
// An empty allowlist accepts every error.
func CatchOnly[T any](f func() (T, error), acceptable ...error) (pmatch.Result[T, error], error) {
	v, err := f()
	if err == nil {
		return pmatch.Ok[T, error](v), nil
	}
	if len(acceptable) == 0 || isAcceptable(err, acceptable) {
		return pmatch.Err[T, error](err), nil
	}
	var zero pmatch.Result[T, error]
	return zero, err
}

// Recover invokes f and converts a panic into Err. A panic value that is
// not an error is wrapped; with a non-empty allowlist, a panic matching no
// acceptable target re-panics unchanged instead of converting.
func Recover[T any](f func() T, acceptable ...error) (res pmatch.Result[T, error]) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		err, ok := r.(error)
		if !ok {
			err = fmt.Errorf("recovered panic: %v", r)
		}
		if len(acceptable) > 0 && !isAcceptable(err, acceptable) {
			panic(r)
		}
		res = pmatch.Err[T, error](err)
	}()

	return pmatch.Ok[T, error](f())
}

// CatchAsync runs f on its own goroutine and delivers exactly one Result on
// the returned channel. A context done before or during the call yields
// Err(ctx.Err()); the channel is buffered, so f never blocks on delivery.
func CatchAsync[T any](ctx context.Context, f func(ctx context.Context) (T, error)) <-chan pmatch.Result[T, error] {
	out := make(chan pmatch.Result[T, error], 1)

	go func() {
		defer close(out)

		if ctx.Err() != nil {
			out <- pmatch.Err[T, error](ctx.Err())
			return
		}

		v, err := f(ctx)

		select {
		case <-ctx.Done():
			out <- pmatch.Err[T, error](ctx.Err())
		default:
			if err != nil {
				out <- pmatch.Err[T, error](err)
			} else {
				out <- pmatch.Ok[T, error](v)
			}
		}
	}()

	return out
}

// IsCancellation reports whether err is a context cancellation or deadline
// failure, useful as a CaseErr predicate target.
func IsCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

func isAcceptable(err error, acceptable []error) bool {
	for _, target := range acceptable {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
