package commands

import (
	"context"

	"pedidos/internal/core/domain/services"
)

// SealUnsealedOrdersCommandHandler backfills integrity seals for legacy
// orders. The seal is computed over the current field values, so the backfill
// blesses the stored state as the trusted baseline going forward.
type SealUnsealedOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	sealer     services.IntegritySealer
}

// NewSealUnsealedOrdersCommandHandler creates a handler for the seal backfill.
func NewSealUnsealedOrdersCommandHandler(uowFactory OrderUoWFactory) SealUnsealedOrdersCommandHandler {
	return SealUnsealedOrdersCommandHandler{
		uowFactory: uowFactory,
		sealer:     services.NewIntegritySealer(),
	}
}

// Handle seals up to the command's limit of unsealed orders in one
// transaction and returns how many were sealed.
func (h SealUnsealedOrdersCommandHandler) Handle(ctx context.Context, cmd SealUnsealedOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.GetUnsealed(ctx, cmd.Limit())
	if err != nil {
		return 0, err
	}

	sealed := 0
	for _, o := range orders {
		if err = h.sealer.Seal(o); err != nil {
			return 0, err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return 0, err
		}
		sealed++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return sealed, nil
}
