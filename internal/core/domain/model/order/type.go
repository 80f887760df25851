package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Type tells how the order reaches the customer.
type Type int

const (
	UnknownType Type = iota
	DineIn
	Takeaway
	Delivery
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		UnknownType: "Unknown",
		DineIn:      "DineIn",
		Takeaway:    "Takeaway",
		Delivery:    "Delivery",
	}
}

// ParseType converts the persisted or wire name of a type back into a Type.
func ParseType(s string) (Type, error) {
	for t, name := range getTypeStrings() {
		if t != UnknownType && name == s {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("order type", fmt.Errorf("%q is not a valid order type", s))
}

func (t Type) Validate() error {
	if t != DineIn && t != Takeaway && t != Delivery {
		return errs.NewValueIsInvalidErrorWithCause("order type", fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// RequiresTable reports whether orders of this type must reference a table.
func (t Type) RequiresTable() bool {
	return t == DineIn
}

// RequiresCustomerContact reports whether orders of this type need a customer name and phone.
func (t Type) RequiresCustomerContact() bool {
	return t == Takeaway || t == Delivery
}
