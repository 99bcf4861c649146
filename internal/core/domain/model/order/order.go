package order

import (
	"errors"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a purchase order in the system. It is the aggregate root
// that manages the order lifecycle from quotation through dispatch to delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty business code
//   - version strictly increases by 1 per committed mutation, starting at 0
//   - stateHistory is append-only; its last entry's To equals the current state
//   - integritySeal, once present, matches the canonical serialization of the
//     critical fields {state, totalValue, deliveryDate}
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods. Sealing itself is performed by the
// IntegritySealer domain service; the aggregate only stores the result.
type Order struct {
	// id is the internal unique identifier for the order
	id kernel.UUID

	// code is the human-assigned business code, unique across orders
	code string

	// customer names the buyer
	customer string

	// warehouse optionally names the fulfilling warehouse
	warehouse string

	// notes holds free-form remarks
	notes string

	// orderType distinguishes deferred from immediate fulfilment
	orderType Type

	// state is the current lifecycle state
	state Status

	// history is the append-only log of completed state transitions
	history []StateChange

	// version is the optimistic concurrency counter
	version int

	// totalValue is the monetary amount of the order
	totalValue decimal.Decimal

	// deliveryDate is the agreed delivery timestamp, if any
	deliveryDate *time.Time

	// lineItems reference the catalog products to fulfil
	lineItems []LineItem

	// integritySeal is the hex digest over the critical fields; empty until sealed
	integritySeal string

	// integritySnapshot is the canonical form that produced integritySeal
	integritySnapshot string

	// updatedAt is the timestamp of the last persisted mutation
	updatedAt time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order with validation. The order starts in Quote
// status with version 0 and no integrity seal; the first successful mutating
// save seals it.
//
// Parameters:
//   - id: internal unique identifier (must be a valid UUID)
//   - code: unique business code, e.g. "PED-2024-001" (required)
//   - customer: buyer name (required)
//   - orderType: Deferred or Immediate
//   - lineItems: catalog product references (each validated)
func NewOrder(id kernel.UUID, code, customer string, orderType Type, lineItems []LineItem) (*Order, error) {
	o := &Order{
		orderType:     orderType,
		state:         Quote,
		history:       []StateChange{},
		version:       0,
		totalValue:    decimal.Zero,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCode(code),
		o.setCustomer(customer),
		orderType.Validate(),
		o.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without applying the
// creation defaults. All invariants are re-validated so a corrupt row cannot
// produce a usable aggregate.
func RestoreOrder(
	id kernel.UUID,
	code, customer, warehouse, notes string,
	orderType Type,
	state Status,
	history []StateChange,
	version int,
	totalValue decimal.Decimal,
	deliveryDate *time.Time,
	lineItems []LineItem,
	integritySeal, integritySnapshot string,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		orderType:         orderType,
		state:             state,
		history:           history,
		version:           version,
		totalValue:        totalValue,
		deliveryDate:      deliveryDate,
		integritySeal:     integritySeal,
		integritySnapshot: integritySnapshot,
		updatedAt:         updatedAt,
		isConstructed:     true,
	}
	if o.history == nil {
		o.history = []StateChange{}
	}

	if err := errors.Join(
		o.setID(id),
		o.setCode(code),
		o.setCustomer(customer),
		orderType.Validate(),
		state.Validate(),
		o.setLineItems(lineItems),
		o.setVersion(version),
	); err != nil {
		return nil, err
	}

	o.warehouse = warehouse
	o.notes = notes
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's internal unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Code returns the order's unique business code.
func (o *Order) Code() string {
	return o.code
}

// Customer returns the buyer name.
func (o *Order) Customer() string {
	return o.customer
}

// Warehouse returns the fulfilling warehouse, or "" when unset.
func (o *Order) Warehouse() string {
	return o.warehouse
}

// Notes returns the free-form remarks.
func (o *Order) Notes() string {
	return o.notes
}

// OrderType returns the fulfilment scheduling type.
func (o *Order) OrderType() Type {
	return o.orderType
}

// State returns the current lifecycle state.
func (o *Order) State() Status {
	return o.state
}

// History returns a copy of the append-only state transition log.
func (o *Order) History() []StateChange {
	history := make([]StateChange, len(o.history))
	copy(history, o.history)
	return history
}

// Version returns the optimistic concurrency counter.
func (o *Order) Version() int {
	return o.version
}

// TotalValue returns the monetary amount of the order.
func (o *Order) TotalValue() decimal.Decimal {
	return o.totalValue
}

// DeliveryDate returns the agreed delivery timestamp, or nil.
func (o *Order) DeliveryDate() *time.Time {
	return o.deliveryDate
}

// LineItems returns a copy of the catalog product references.
func (o *Order) LineItems() []LineItem {
	items := make([]LineItem, len(o.lineItems))
	copy(items, o.lineItems)
	return items
}

// IntegritySeal returns the stored digest over the critical fields,
// or "" when the order has never been sealed.
func (o *Order) IntegritySeal() string {
	return o.integritySeal
}

// IntegritySnapshot returns the canonical form that produced the seal.
func (o *Order) IntegritySnapshot() string {
	return o.integritySnapshot
}

// Sealed reports whether the order has ever completed a seal-producing transaction.
func (o *Order) Sealed() bool {
	return o.integritySeal != ""
}

// UpdatedAt returns the timestamp of the last persisted mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// TransitionTo moves the order to newState and appends a history entry
// {from: current, to: newState, at}. Pure mutation, no I/O. The caller directs
// the target state; only the dispatch operation enforces a hard rule, via
// Dispatch.
//
// Every committed transition must also bump the version and re-seal; that is
// the transaction engine's responsibility, not the aggregate's.
func (o *Order) TransitionTo(newState Status, at time.Time) error {
	if err := newState.Validate(); err != nil {
		return err
	}

	o.history = append(o.history, StateChange{From: o.state, To: newState, At: at})
	o.state = newState
	return nil
}

// Dispatch transitions the order to Dispatched, enforcing the idempotent
// rejection of an already-dispatched order.
func (o *Order) Dispatch(at time.Time) error {
	newState, err := o.state.Dispatch()
	if err != nil {
		return err
	}
	return o.TransitionTo(newState, at)
}

// BumpVersion increments the optimistic concurrency counter by exactly 1.
// Called by the transaction engine once per committed mutation.
func (o *Order) BumpVersion() {
	o.version++
}

// SetSeal stores the digest and canonical snapshot produced by the
// IntegritySealer. The aggregate does not compute digests itself.
func (o *Order) SetSeal(digest, snapshot string) {
	o.integritySeal = digest
	o.integritySnapshot = snapshot
}

// RestoreCriticalFields overwrites the sealed fields with the values recovered
// from the integrity snapshot. Used only by the tamper self-healing path; it
// deliberately does not append a history entry, because the mutation being
// undone never went through the sanctioned transition path.
func (o *Order) RestoreCriticalFields(state Status, totalValue decimal.Decimal, deliveryDate *time.Time) error {
	if err := state.Validate(); err != nil {
		return err
	}

	o.state = state
	o.totalValue = totalValue
	o.deliveryDate = deliveryDate
	return nil
}

// SetTotalValue replaces the order's monetary amount.
// Negative values are tolerated by convention but not expected.
func (o *Order) SetTotalValue(value decimal.Decimal) {
	o.totalValue = value
}

// SetDeliveryDate replaces the agreed delivery timestamp. Nil clears it.
func (o *Order) SetDeliveryDate(deliveryDate *time.Time) {
	o.deliveryDate = deliveryDate
}

// SetCustomer replaces the buyer name. The name must not be empty.
func (o *Order) SetCustomer(customer string) error {
	return o.setCustomer(customer)
}

// SetWarehouse replaces the fulfilling warehouse name.
func (o *Order) SetWarehouse(warehouse string) {
	o.warehouse = warehouse
}

// SetNotes replaces the free-form remarks.
func (o *Order) SetNotes(notes string) {
	o.notes = notes
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	o.code = code
	return nil
}

func (o *Order) setCustomer(customer string) error {
	if customer == "" {
		return errs.NewValueIsRequiredError("customer")
	}
	o.customer = customer
	return nil
}

func (o *Order) setLineItems(lineItems []LineItem) error {
	items := make([]LineItem, len(lineItems))
	for i, item := range lineItems {
		if err := item.Validate(); err != nil {
			return err
		}
		items[i] = item
	}
	o.lineItems = items
	return nil
}

func (o *Order) setVersion(version int) error {
	if version < 0 {
		return errs.NewValueIsInvalidError("version")
	}
	o.version = version
	return nil
}
