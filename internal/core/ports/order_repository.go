package ports

import (
	"context"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations translate storage-level failures into the errs taxonomy:
// missing rows become ObjectNotFoundError, unique-constraint violations on the
// business code become DuplicateObjectError.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// Fails with a DuplicateObjectError when the business code is taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Fails with an ObjectNotFoundError when no row matched.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its internal identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order by its internal identifier while holding
	// an exclusive row lock for the duration of the enclosing transaction.
	// Must only be called on a repository bound to an open transaction.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByCode retrieves an order aggregate by its unique business code.
	GetByCode(ctx context.Context, code string) (*order.Order, error)

	// GetUnsealed retrieves up to limit orders that have never been sealed.
	// Used by the seal backfill job for rows that predate integrity sealing.
	GetUnsealed(ctx context.Context, limit int) ([]*order.Order, error)

	// DeleteByCode removes the order with the given business code.
	// Fails with an ObjectNotFoundError when nothing was deleted.
	DeleteByCode(ctx context.Context, code string) error
}
