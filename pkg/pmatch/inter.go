package pmatch

import (
	"time"

	"github.com/google/uuid"
)

type ValueProvider[T any] interface {
	// Value returns the successful payload
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithErr defines an interface for types that carry either a value or a
// failure payload
type WithErr[T, E any] interface {
	ValueProvider[T]
	// Err returns the failure payload
	Err() E
	// IsOk returns true if the value is the success variant
	IsOk() bool
}

// WithIdentity extends WithErr with a stable per-value identity
type WithIdentity[T, E any] interface {
	WithErr[T, E]
	// Id returns the identity stamped at construction
	Id() uuid.UUID
}
