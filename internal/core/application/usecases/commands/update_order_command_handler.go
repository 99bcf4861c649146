package commands

import (
	"context"
	"time"

	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/domain/services"
	"pedidos/internal/pkg/errs"
)

// UpdateOrderCommandHandler applies façade updates to an existing order.
// The row is locked for the duration of the transaction; the mutation bumps
// the version and re-seals the critical fields, so a façade update is a
// sanctioned write that the integrity check will accept afterwards.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	sealer     services.IntegritySealer
}

// NewUpdateOrderCommandHandler creates a handler for façade order updates.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		sealer:     services.NewIntegritySealer(),
	}
}

// Handle processes the update command. Fails with ObjectNotFoundError when no
// order matched the code or when the command carried no changes.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.HasChanges() {
		return nil, errs.NewObjectNotFoundError("order update", cmd.Code())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetByCode(ctx, cmd.Code())
	if err != nil {
		return nil, err
	}

	if err = applyUpdate(o, cmd); err != nil {
		return nil, err
	}

	if state := cmd.TargetState(); state != nil {
		if err = o.TransitionTo(*state, time.Now().UTC()); err != nil {
			return nil, err
		}
	}

	o.BumpVersion()
	if err = h.sealer.Seal(o); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

func applyUpdate(o *order.Order, cmd UpdateOrderCommand) error {
	if customer := cmd.Customer(); customer != nil {
		if err := o.SetCustomer(*customer); err != nil {
			return err
		}
	}
	if warehouse := cmd.Warehouse(); warehouse != nil {
		o.SetWarehouse(*warehouse)
	}
	if notes := cmd.Notes(); notes != nil {
		o.SetNotes(*notes)
	}
	if deliveryDate := cmd.DeliveryDate(); deliveryDate != nil {
		o.SetDeliveryDate(deliveryDate)
	}
	if cmd.ClearDeliveryDate() {
		o.SetDeliveryDate(nil)
	}
	return nil
}
