package persistence

import (
	"context"
)

// UnitOfWork groups the balance write and the history append of one mutation
// so that either both are committed or neither is
type UnitOfWork interface {
	// Execute runs fn inside a unit of work. Stores that take part must use the
	// context passed to fn. An error returned by fn aborts the unit.
	Execute(ctx context.Context, fn func(ctx context.Context) error) error
}
