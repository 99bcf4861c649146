package order

import (
	"fmt"

	"pedidos/internal/pkg/errs"
)

// LineItem references a catalog product included in an order. Price and
// description are owned by the catalog collaborator; the order keeps only the
// product identity and the quantity to fulfil.
type LineItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// NewLineItem creates a validated line item. The product id is the catalog's
// identifier and is treated as opaque; quantity must be positive.
func NewLineItem(productID string, quantity int) (LineItem, error) {
	if productID == "" {
		return LineItem{}, errs.NewValueIsRequiredError("productID")
	}
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	return LineItem{ProductID: productID, Quantity: quantity}, nil
}

// Validate checks the line item invariants after rehydration from storage.
func (li LineItem) Validate() error {
	_, err := NewLineItem(li.ProductID, li.Quantity)
	return err
}
