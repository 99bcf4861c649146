package commands

import (
	"context"
	"time"

	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/domain/services"
	"pedidos/internal/pkg/errs"
)

// DispatchOrderResult reports the outcome of a successful dispatch.
type DispatchOrderResult struct {
	State   order.Status
	Version int
}

// DispatchOrderCommandHandler is the dispatch transaction engine for a single
// order. Inside one atomic transaction it acquires an exclusive row lock,
// verifies the integrity seal, compares the optimistic version, rejects an
// already-dispatched order, decrements line-item stock, transitions the state,
// bumps the version and re-seals.
//
// The integrity check runs before the version check: a tampered record's
// version counter cannot be trusted as a concurrency signal, so the seal must
// be intact before the optimistic comparison means anything. A detected
// mismatch triggers a self-healing corrective write: the critical fields are
// restored from the stored snapshot and re-sealed, and that corrective
// transaction commits even though the requested dispatch is refused.
type DispatchOrderCommandHandler struct {
	uowFactory UoWFactory
	sealer     services.IntegritySealer
}

// NewDispatchOrderCommandHandler creates the dispatch engine.
// Requires a UoWFactory spanning order and product repositories.
func NewDispatchOrderCommandHandler(uowFactory UoWFactory) DispatchOrderCommandHandler {
	return DispatchOrderCommandHandler{
		uowFactory: uowFactory,
		sealer:     services.NewIntegritySealer(),
	}
}

// Handle processes the dispatch command.
//
// Failure modes, in check order: ForbiddenError before any storage access,
// ObjectNotFoundError for a missing order, IntegrityViolationError after the
// self-healing corrective commit, VersionConflictError for a stale supplied
// version, AlreadyDispatchedError for the idempotent re-dispatch rejection,
// and product.ErrInsufficientStock when a line item cannot be covered. Any
// other failure aborts the transaction with no partial effect.
func (h DispatchOrderCommandHandler) Handle(
	ctx context.Context,
	cmd DispatchOrderCommand,
) (DispatchOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return DispatchOrderResult{}, err
	}

	if err := AuthorizeDispatch(cmd.CallerRole()); err != nil {
		return DispatchOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return DispatchOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return DispatchOrderResult{}, err
	}

	intact, err := h.sealer.Verify(o)
	if err != nil {
		return DispatchOrderResult{}, err
	}
	if !intact {
		if healErr := h.healTamperedOrder(ctx, uow, o); healErr != nil {
			return DispatchOrderResult{}, healErr
		}
		return DispatchOrderResult{}, errs.NewIntegrityViolationError("order", o.ID().String())
	}

	if v := cmd.ClientVersion(); v != nil && *v != o.Version() {
		return DispatchOrderResult{}, errs.NewVersionConflictError("order", *v, o.Version())
	}

	if err = o.State().ValidateDispatch(); err != nil {
		return DispatchOrderResult{}, err
	}

	productRepo := uow.ProductRepository()
	for _, item := range o.LineItems() {
		p, itemErr := productRepo.GetForUpdate(ctx, item.ProductID)
		if itemErr != nil {
			return DispatchOrderResult{}, itemErr
		}

		if itemErr = p.DecrementStock(item.Quantity); itemErr != nil {
			return DispatchOrderResult{}, itemErr
		}

		if itemErr = productRepo.Update(ctx, p); itemErr != nil {
			return DispatchOrderResult{}, itemErr
		}
	}

	if err = o.Dispatch(time.Now().UTC()); err != nil {
		return DispatchOrderResult{}, err
	}
	o.BumpVersion()

	if err = h.sealer.Seal(o); err != nil {
		return DispatchOrderResult{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return DispatchOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return DispatchOrderResult{}, err
	}

	return DispatchOrderResult{State: o.State(), Version: o.Version()}, nil
}

// healTamperedOrder restores the critical fields from the integrity snapshot,
// re-seals and commits the corrective write. The dispatch itself is refused
// and the version is not bumped for it.
func (h DispatchOrderCommandHandler) healTamperedOrder(ctx context.Context, uow UoW, o *order.Order) error {
	if err := h.sealer.RestoreFromSnapshot(o); err != nil {
		return err
	}

	if err := h.sealer.Seal(o); err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
