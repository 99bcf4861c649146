package commands

import (
	"context"
	"errors"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/product"
	"pedidos/internal/core/domain/services"
	"pedidos/internal/pkg/errs"
)

// DispatchBatchResult aggregates per-item outcomes of a batch dispatch.
type DispatchBatchResult struct {
	Dispatched int
	Failed     int
}

// DispatchBatchCommandHandler dispatches a list of orders inside one
// transaction. Each item is locked, seal-checked, state-checked and
// stock-checked independently; business failures (missing order, already
// dispatched, insufficient stock, tampered seal) are counted in the result
// while the remaining items proceed. Items never interleave with other
// requests touching the same rows because each row lock is held until the
// batch commits.
//
// A tampered item receives the same self-healing treatment as single
// dispatch: its critical fields are restored from the snapshot and re-sealed
// within the batch transaction, and the item is counted as failed.
type DispatchBatchCommandHandler struct {
	uowFactory UoWFactory
	sealer     services.IntegritySealer
}

// NewDispatchBatchCommandHandler creates the batch dispatch engine.
func NewDispatchBatchCommandHandler(uowFactory UoWFactory) DispatchBatchCommandHandler {
	return DispatchBatchCommandHandler{
		uowFactory: uowFactory,
		sealer:     services.NewIntegritySealer(),
	}
}

// Handle processes the batch dispatch command. Only unexpected faults abort
// the whole batch; business failures per item are aggregated into the result.
func (h DispatchBatchCommandHandler) Handle(
	ctx context.Context,
	cmd DispatchBatchCommand,
) (DispatchBatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return DispatchBatchResult{}, err
	}

	if err := AuthorizeDispatch(cmd.CallerRole()); err != nil {
		return DispatchBatchResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return DispatchBatchResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var result DispatchBatchResult
	for _, id := range cmd.OrderIDs() {
		ok, err := h.dispatchOne(ctx, uow, id)
		if err != nil {
			return DispatchBatchResult{}, err
		}
		if ok {
			result.Dispatched++
		} else {
			result.Failed++
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return DispatchBatchResult{}, err
	}

	return result, nil
}

// dispatchOne attempts a single batch item. Returns (false, nil) for a counted
// business failure and a non-nil error only for faults that must abort the
// whole batch.
func (h DispatchBatchCommandHandler) dispatchOne(ctx context.Context, uow UoW, id kernel.UUID) (bool, error) {
	orderRepo := uow.OrderRepository()

	o, err := orderRepo.GetForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return false, nil
		}
		return false, err
	}

	intact, err := h.sealer.Verify(o)
	if err != nil {
		return false, err
	}
	if !intact {
		// Restore the sealed values; the corrective write rides the batch commit.
		if err = h.sealer.RestoreFromSnapshot(o); err != nil {
			return false, err
		}
		if err = h.sealer.Seal(o); err != nil {
			return false, err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return false, err
		}
		return false, nil
	}

	if err = o.State().ValidateDispatch(); err != nil {
		return false, nil
	}

	// Lock and stock-check every line item before decrementing anything, so a
	// short item leaves the whole order untouched.
	productRepo := uow.ProductRepository()
	locked := make([]*product.Product, 0, len(o.LineItems()))
	for _, item := range o.LineItems() {
		p, itemErr := productRepo.GetForUpdate(ctx, item.ProductID)
		if itemErr != nil {
			if errors.Is(itemErr, errs.ErrObjectNotFound) {
				return false, nil
			}
			return false, itemErr
		}
		if !p.HasStock(item.Quantity) {
			return false, nil
		}
		locked = append(locked, p)
	}

	for i, item := range o.LineItems() {
		if err = locked[i].DecrementStock(item.Quantity); err != nil {
			return false, err
		}
		if err = productRepo.Update(ctx, locked[i]); err != nil {
			return false, err
		}
	}

	if err = o.Dispatch(time.Now().UTC()); err != nil {
		return false, err
	}
	o.BumpVersion()

	if err = h.sealer.Seal(o); err != nil {
		return false, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return false, err
	}

	return true, nil
}
