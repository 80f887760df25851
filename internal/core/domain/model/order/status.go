package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Serving ──> Paid
//
// Paid is final; a paid order is immutable except for reads.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Serving is the initial status: items can be added, cooked and served.
	Serving

	// Paid indicates a payment has been recorded and the table released.
	Paid
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "Unknown",
		Serving: "Serving",
		Paid:    "Paid",
	}
}

// ParseStatus converts a status name back into a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s != Serving && s != Paid {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateActive fails with ErrOrderNotActive unless the order is Serving.
func (s Status) ValidateActive() error {
	if s != Serving {
		return ErrOrderNotActive.With("status", s.String())
	}
	return nil
}

// Pay transitions the status to Paid.
//
// Valid transitions:
//   - Serving -> Paid
//
// Invalid transitions:
//   - Paid -> Paid (an order is paid exactly once)
//   - Unknown -> Paid
func (s Status) Pay() (Status, error) {
	if s == Paid {
		return 0, ErrOrderAlreadyPaid
	}
	if err := s.ValidateActive(); err != nil {
		return 0, err
	}

	return Paid, nil
}
