// Package kernel provides the core domain primitives shared across the order
// system's aggregates.
//
// Its centerpiece is UUID, the value object used as the identity of orders and
// products. The zero value is invalid; identifiers are created through NewUUID
// or rebuilt from their string or byte representations when aggregates are
// rehydrated from storage.
package kernel
