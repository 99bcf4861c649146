package services

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"pedidos/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// IntegritySealer is a domain service that computes and verifies the
// cryptographic seal over an order's critical fields: state, total value and
// delivery date. Line items, identity and history are excluded from the digest
// by design; they are not critical.
//
// The canonical form is a key-sorted JSON object, so identical critical-field
// values always produce byte-identical canonical bytes independent of field
// insertion order. The digest is hex-encoded SHA-256 over those bytes.
//
// Example usage:
//
//	sealer := services.NewIntegritySealer()
//	sealer.Seal(o)                 // after a sanctioned mutation
//	if !sealer.Verify(o) {         // before trusting the stored row
//	    // critical fields were mutated outside the transaction path
//	}
type IntegritySealer struct{}

// NewIntegritySealer creates a new IntegritySealer instance.
func NewIntegritySealer() IntegritySealer {
	return IntegritySealer{}
}

// criticalFields is the canonical shape of the sealed subset. Pointers encode
// the "or null" cases; Go's map-based JSON marshalling would also sort keys,
// but a fixed struct keeps the field set closed.
type criticalFields struct {
	DeliveryDate *string `json:"deliveryDate"`
	State        string  `json:"state"`
	TotalValue   *string `json:"totalValue"`
}

// ComputeDigest builds the canonical form of the order's critical fields and
// returns its hex SHA-256 digest alongside the canonical bytes as a string.
// Deterministic: identical critical-field values always yield identical output.
func (s IntegritySealer) ComputeDigest(o *order.Order) (string, string, error) {
	if err := o.Validate(); err != nil {
		return "", "", err
	}

	critical := criticalFields{
		State: o.State().String(),
	}

	total := o.TotalValue().String()
	critical.TotalValue = &total

	if d := o.DeliveryDate(); d != nil {
		iso := d.UTC().Format(time.RFC3339Nano)
		critical.DeliveryDate = &iso
	}

	// Keys are marshalled in struct order, which is kept alphabetical to match
	// a key-sorted encoding.
	raw, err := json.Marshal(critical)
	if err != nil {
		return "", "", fmt.Errorf("marshal critical fields: %w", err)
	}

	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), string(raw), nil
}

// Seal computes the digest over the order's current critical fields and stores
// it on the aggregate together with the canonical snapshot.
func (s IntegritySealer) Seal(o *order.Order) error {
	digest, snapshot, err := s.ComputeDigest(o)
	if err != nil {
		return err
	}
	o.SetSeal(digest, snapshot)
	return nil
}

// Verify recomputes the digest over the order's current critical fields and
// compares it against the stored seal. An order that has never been sealed
// verifies trivially; the first mutating save will seal it.
func (s IntegritySealer) Verify(o *order.Order) (bool, error) {
	if !o.Sealed() {
		return true, nil
	}

	digest, _, err := s.ComputeDigest(o)
	if err != nil {
		return false, err
	}
	return digest == o.IntegritySeal(), nil
}

// RestoreFromSnapshot parses the order's stored canonical snapshot and writes
// the recovered critical fields back onto the aggregate, undoing an
// out-of-transaction mutation. The caller must re-seal and persist afterwards.
func (s IntegritySealer) RestoreFromSnapshot(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	var critical criticalFields
	if err := json.Unmarshal([]byte(o.IntegritySnapshot()), &critical); err != nil {
		return fmt.Errorf("unmarshal integrity snapshot: %w", err)
	}

	state, err := order.StatusFromString(critical.State)
	if err != nil {
		return err
	}

	totalValue := decimal.Zero
	if critical.TotalValue != nil {
		totalValue, err = decimal.NewFromString(*critical.TotalValue)
		if err != nil {
			return fmt.Errorf("parse snapshot total value: %w", err)
		}
	}

	var deliveryDate *time.Time
	if critical.DeliveryDate != nil {
		parsed, parseErr := time.Parse(time.RFC3339Nano, *critical.DeliveryDate)
		if parseErr != nil {
			return fmt.Errorf("parse snapshot delivery date: %w", parseErr)
		}
		deliveryDate = &parsed
	}

	return o.RestoreCriticalFields(state, totalValue, deliveryDate)
}
