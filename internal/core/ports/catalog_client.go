package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// CatalogProduct is the read-only view of a product owned by the remote
// catalog service. Price and existence are resolved against it before an order
// is created; the catalog is never consulted while an order row lock is held.
type CatalogProduct struct {
	ID    string
	Name  string
	Price decimal.Decimal
}

// CatalogClient is the contract for the remote price/existence oracle.
// Implementations return an ObjectNotFoundError for unknown products and a
// DependencyFailureError when the catalog is unreachable or returns data that
// cannot be used.
type CatalogClient interface {
	// GetProduct resolves a product id against the catalog.
	GetProduct(ctx context.Context, id string) (CatalogProduct, error)
}
