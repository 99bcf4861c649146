package commands

import (
	"context"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/domain/services"
	"pedidos/internal/core/ports"

	"github.com/shopspring/decimal"
)

// CreateOrderCommandHandler handles the business logic for order intake.
// Resolves every line-item product against the remote catalog (existence and
// unit price), sums the total value, creates the order in Quote status with
// version 0 and seals it on the first save.
//
// Catalog resolution happens before the transaction is opened: the order row
// lock is never held while waiting on the remote catalog. If the catalog is
// unreachable or returns inconsistent data the create fails atomically and
// nothing is persisted.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.CatalogClient
	sealer     services.IntegritySealer
}

// NewCreateOrderCommandHandler creates a handler for order intake.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, catalog ports.CatalogClient) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		sealer:     services.NewIntegritySealer(),
	}
}

// Handle processes the order intake command and returns the created aggregate.
// Fails with DuplicateObjectError when the business code is taken and with
// DependencyFailureError (or ObjectNotFoundError) from catalog resolution.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	totalValue, err := h.resolveTotalValue(ctx, cmd.LineItems())
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(kernel.NewUUID(), cmd.Code(), cmd.Customer(), cmd.OrderType(), cmd.LineItems())
	if err != nil {
		return nil, err
	}

	o.SetWarehouse(cmd.Warehouse())
	o.SetNotes(cmd.Notes())
	o.SetDeliveryDate(cmd.DeliveryDate())
	o.SetTotalValue(totalValue)

	if err = h.sealer.Seal(o); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

// totalValueScale is the fraction-digit scale of the persisted total. Totals
// are normalized to it before sealing: a finer-grained value would be rounded
// by the storage column and every digest recomputed after a round trip would
// mismatch the seal.
const totalValueScale = 2

// resolveTotalValue verifies each referenced product against the catalog and
// sums unit price times quantity, normalized to the persisted scale.
func (h CreateOrderCommandHandler) resolveTotalValue(
	ctx context.Context,
	lineItems []order.LineItem,
) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range lineItems {
		catalogProduct, err := h.catalog.GetProduct(ctx, item.ProductID)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(catalogProduct.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total.Round(totalValueScale), nil
}
