package ports

import (
	"context"

	"pedidos/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for the local
// stock-keeping product aggregates referenced by order line items.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	// Fails with an ObjectNotFoundError when no row matched.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its catalog identifier.
	Get(ctx context.Context, id string) (*product.Product, error)

	// GetForUpdate retrieves a product while holding an exclusive row lock for
	// the duration of the enclosing transaction. The dispatch engine locks the
	// product row before checking and decrementing its stock counter.
	GetForUpdate(ctx context.Context, id string) (*product.Product, error)
}
