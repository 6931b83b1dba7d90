package memory

import (
	"context"

	"github.com/amirhossein-jamali/point-ledger/internal/domain/port/persistence"
)

// UnitOfWork runs work directly. The in-memory stores cannot fail, and the
// per-user lock already keeps other writers out while the work runs.
type UnitOfWork struct{}

// NewUnitOfWork creates a pass-through unit of work for the in-memory stores
func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{}
}

// Execute calls fn with ctx
func (u *UnitOfWork) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var _ persistence.UnitOfWork = (*UnitOfWork)(nil)
