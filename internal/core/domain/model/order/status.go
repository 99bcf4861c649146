package order

import (
	"fmt"

	"pedidos/internal/pkg/errs"
)

// Status represents the lifecycle state of a purchase order.
//
// The lifecycle is intentionally permissive: the distributor's back office
// drives orders through picking, verification, packing and invoicing in an
// order that varies per warehouse, so transitions are caller-directed. The
// single hard rule lives in the dispatch operation: an order already in
// Dispatched cannot be dispatched again.
//
// Main flow:
//
//	Quote ──> {Transit, Prep, PendingVerify} ──> Verified/RejectedVerify
//	      ──> Packed ──> Dispatched ──> PendingInvoice ──> Delivered / Returned
//
// Side states reachable from multiple points: Production, Embroidery,
// Dropship, Purchase, Cancelled.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Quote is the initial status of every order.
	Quote

	// Transit marks goods moving between warehouses before preparation.
	Transit

	// Prep marks the order being picked in the warehouse.
	Prep

	// PendingVerify marks a picked order awaiting verification.
	PendingVerify

	// Verified marks an order that passed verification.
	Verified

	// RejectedVerify marks an order that failed verification.
	RejectedVerify

	// Packed marks an order packed and ready for dispatch.
	Packed

	// Dispatched marks a fulfilled order whose stock has been decremented.
	// Terminal with respect to the dispatch operation.
	Dispatched

	// PendingInvoice marks a dispatched order awaiting invoicing.
	PendingInvoice

	// Delivered marks an order received by the customer.
	Delivered

	// Returned marks an order sent back by the customer.
	Returned

	// Production marks an order waiting on in-house production.
	Production

	// Embroidery marks an order waiting on the embroidery shop.
	Embroidery

	// Dropship marks an order fulfilled directly by a supplier.
	Dropship

	// Purchase marks an order waiting on a supplier purchase.
	Purchase

	// Cancelled marks a voided order.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Quote:          "QUOTE",
		Transit:        "TRANSIT",
		Prep:           "PREP",
		PendingVerify:  "PENDING_VERIFY",
		Verified:       "VERIFIED",
		RejectedVerify: "REJECTED_VERIFY",
		Packed:         "PACKED",
		Dispatched:     "DISPATCHED",
		PendingInvoice: "PENDING_INVOICE",
		Delivered:      "DELIVERED",
		Returned:       "RETURNED",
		Production:     "PRODUCTION",
		Embroidery:     "EMBROIDERY",
		Dropship:       "DROPSHIP",
		Purchase:       "PURCHASE",
		Cancelled:      "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Unknown is excluded to support validation.
func getValidStatusStrings() map[Status]string {
	valid := getStatusStrings()
	delete(valid, Unknown)
	return valid
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range value are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status, e.g. "DISPATCHED".
// Returns "UNKNOWN" for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// StatusFromString parses a persisted status name back into a Status value.
// Used when rehydrating orders from storage and from integrity snapshots.
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status name", name),
	)
}

// ValidateDispatch checks the single hard transition rule: an order that is
// already Dispatched cannot be dispatched again. Every other valid status may
// be dispatched; the caller is trusted to have moved the order through the
// warehouse flow.
func (s Status) ValidateDispatch() error {
	if s == Dispatched {
		return errs.NewAlreadyDispatchedError(s.String())
	}
	return s.Validate()
}

// Dispatch transitions the status to Dispatched.
//
// Returns:
//   - (Dispatched, nil) when the order is not already dispatched
//   - (0, error) for an already-dispatched order (idempotent rejection)
//     or an invalid status value
func (s Status) Dispatch() (Status, error) {
	if err := s.ValidateDispatch(); err != nil {
		return 0, err
	}
	return Dispatched, nil
}
