package order

import (
	"fmt"

	"pedidos/internal/pkg/errs"
)

// Type distinguishes how an order is scheduled for fulfilment.
type Type int

const (
	// TypeUnknown represents an invalid or undefined order type.
	TypeUnknown Type = iota

	// Deferred orders are fulfilled on the agreed delivery date. Default.
	Deferred

	// Immediate orders are fulfilled as soon as stock allows.
	Immediate
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		Deferred:  "DEFERRED",
		Immediate: "IMMEDIATE",
	}
}

// Validate checks if the Type value is valid.
func (t Type) Validate() error {
	if _, ok := getTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order type is invalid", fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

// String returns the persisted name of the order type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}

// TypeFromString parses a persisted order type name.
func TypeFromString(name string) (Type, error) {
	for typ, str := range getTypeStrings() {
		if str == name {
			return typ, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"order type is invalid",
		fmt.Errorf("%q is not a valid order type name", name),
	)
}
