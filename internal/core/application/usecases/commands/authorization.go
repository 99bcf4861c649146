package commands

import (
	"pedidos/internal/pkg/errs"
)

// Role is the caller's resolved role, supplied per request by an upstream
// identity collaborator. The engine treats it as an opaque value and never
// caches it; there is no hidden session state in the core.
type Role string

const (
	// RoleWarehouseWorker may dispatch orders.
	RoleWarehouseWorker Role = "warehouse_worker"

	// RoleManager may read orders and reports but not dispatch them.
	RoleManager Role = "manager"
)

// dispatchRoles is the permitted set for the dispatch operation.
func dispatchRoles() map[Role]struct{} {
	return map[Role]struct{}{
		RoleWarehouseWorker: {},
	}
}

// AuthorizeDispatch checks the caller role against the permitted set for
// dispatch. Invoked first by the dispatch handlers, before any storage access.
// Returns a ForbiddenError for roles outside the set.
func AuthorizeDispatch(role Role) error {
	if _, ok := dispatchRoles()[role]; !ok {
		return errs.NewForbiddenError(string(role), "dispatch orders")
	}
	return nil
}
