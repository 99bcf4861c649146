package commands

import (
	"errors"

	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

var (
	ErrSealUnsealedOrdersCommandIsNotConstructed = errors.New(
		"SealUnsealedOrdersCommand must be created via NewSealUnsealedOrdersCommand constructor",
	)
)

// SealUnsealedOrdersCommand represents a backfill request: compute and store
// integrity seals for orders that predate sealing and never received one.
type SealUnsealedOrdersCommand struct { //nolint:recvcheck //using for validation
	limit int

	guard guard.ConstructorGuard
}

// NewSealUnsealedOrdersCommand creates a backfill command processing at most
// limit orders per run.
func NewSealUnsealedOrdersCommand(limit int) (SealUnsealedOrdersCommand, error) {
	if limit <= 0 || limit > maxSealBackfillLimit {
		return SealUnsealedOrdersCommand{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, maxSealBackfillLimit)
	}
	return SealUnsealedOrdersCommand{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

const maxSealBackfillLimit = 1000

// Validate ensures the command was created through the constructor.
func (c SealUnsealedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrSealUnsealedOrdersCommandIsNotConstructed)
}

// Limit returns the per-run batch cap.
func (c SealUnsealedOrdersCommand) Limit() int {
	return c.limit
}
