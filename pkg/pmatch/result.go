package pmatch

import (
	"time"

	"github.com/google/uuid"
)

// Result is a two-variant tagged union: a value is either Ok carrying a
// success payload T, or Err carrying a failure payload E. The tag is fixed
// at construction and a Result is never both or neither.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	isOk      bool
}

func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{
		value:     value,
		isOk:      true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err:       err,
		isOk:      false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// ErrFrom carries the failure payload of one Result into a Result with a
// different success type, keeping identity and creation time.
func ErrFrom[In, Out, E any](from Result[In, E]) Result[Out, E] {
	return Result[Out, E]{
		err:       from.err,
		isOk:      false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T, E]) Value() T {
	return r.value
}

func (r Result[T, E]) Err() E {
	return r.err
}

func (r Result[T, E]) IsOk() bool {
	return r.isOk
}

func (r Result[T, E]) IsErr() bool {
	return !r.isOk
}

func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}
