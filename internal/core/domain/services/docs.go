// Package services provides domain services that implement business logic
// spanning more than one aggregate or cross-cutting the order lifecycle.
//
// The package includes:
//   - IntegritySealer: computes, verifies and restores the cryptographic seal
//     over an order's critical fields
package services
