package table

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Status is the floor state of a table.
type Status int

const (
	Unknown Status = iota
	Available
	Occupied
	Reserved
	Cleaning
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Available: "Available",
		Occupied:  "Occupied",
		Reserved:  "Reserved",
		Cleaning:  "Cleaning",
	}
}

func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("table status", fmt.Errorf("%q is not a valid table status", s))
}

func (s Status) Validate() error {
	if s < Available || s > Cleaning {
		return errs.NewValueIsInvalidErrorWithCause("table status", fmt.Errorf("%d is not a valid table status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// AcceptsOrders reports whether a new dine-in order may be seated at the table.
func (s Status) AcceptsOrders() bool {
	return s == Available || s == Occupied
}
