// Package productrepo provides data transfer objects and mapping functions for
// the local stock-keeping product records referenced by order line items.
package productrepo

import (
	"pedidos/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting products.
// The identifier is the catalog product ID; the stock counter is decremented
// by the dispatch engine inside the same transaction as the order transition.
type ProductDTO struct {
	ID    string          `gorm:"primaryKey"`
	Name  string          `gorm:"not null"`
	Price decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Stock int             `gorm:"not null"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:    aggregate.ID(),
		Name:  aggregate.Name(),
		Price: aggregate.Price(),
		Stock: aggregate.Stock(),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	return product.RestoreProduct(dto.ID, dto.Name, dto.Price, dto.Stock)
}
