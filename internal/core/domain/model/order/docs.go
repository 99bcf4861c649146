// Package order contains the purchase order aggregate and its supporting value
// objects: the lifecycle Status state machine, the append-only StateChange
// history log, catalog line items and the order type.
//
// The aggregate guards structural invariants (valid identity, validated states,
// append-only history). Integrity sealing, optimistic version checks and stock
// decrement are orchestrated by the dispatch transaction engine in the
// application layer, which calls back into the aggregate's mutation methods.
package order
