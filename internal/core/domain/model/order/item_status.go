package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// ItemStatus represents the kitchen state of a single order item.
//
// State transitions:
//
//	Pending ──> Preparing ──> Ready ──> Served
//	   │
//	   └──> Canceled
//
// Transitions only move forward; Served and Canceled are final.
type ItemStatus int

const (
	UnknownItemStatus ItemStatus = iota
	Pending
	Preparing
	Ready
	Served
	Canceled
)

func getItemStatusStrings() map[ItemStatus]string {
	return map[ItemStatus]string{
		UnknownItemStatus: "Unknown",
		Pending:           "Pending",
		Preparing:         "Preparing",
		Ready:             "Ready",
		Served:            "Served",
		Canceled:          "Canceled",
	}
}

func getAllowedItemTransitions() map[ItemStatus]ItemStatus {
	return map[ItemStatus]ItemStatus{
		Preparing: Pending,
		Ready:     Preparing,
		Served:    Ready,
	}
}

// ParseItemStatus converts an item status name back into an ItemStatus.
func ParseItemStatus(s string) (ItemStatus, error) {
	for status, name := range getItemStatusStrings() {
		if status != UnknownItemStatus && name == s {
			return status, nil
		}
	}
	return UnknownItemStatus, errs.NewValueIsInvalidErrorWithCause("item status is invalid",
		fmt.Errorf("%q is not a valid item status", s))
}

func (s ItemStatus) Validate() error {
	if s < Pending || s > Canceled {
		return errs.NewValueIsInvalidErrorWithCause("item status is invalid", fmt.Errorf("%d is not a valid item status", s))
	}
	return nil
}

func (s ItemStatus) String() string {
	if str, ok := getItemStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether no further transition is possible.
func (s ItemStatus) IsFinal() bool {
	return s == Served || s == Canceled
}

// IsSettled reports whether the item no longer blocks payment.
func (s ItemStatus) IsSettled() bool {
	return s.IsFinal()
}

// CanTransitionTo reports whether current -> target is one of
// Pending->Preparing, Preparing->Ready, Ready->Served or Pending->Canceled.
func (s ItemStatus) CanTransitionTo(target ItemStatus) bool {
	if target == Canceled {
		return s == Pending
	}
	from, ok := getAllowedItemTransitions()[target]
	return ok && from == s
}

// TransitionTo moves to target when the guard allows it and fails with
// ErrInvalidTransition (carrying current and target) otherwise.
func (s ItemStatus) TransitionTo(target ItemStatus) (ItemStatus, error) {
	if !s.CanTransitionTo(target) {
		return 0, newInvalidTransitionError(s, target)
	}
	return target, nil
}

// StartPreparation transitions Pending -> Preparing.
func (s ItemStatus) StartPreparation() (ItemStatus, error) {
	return s.TransitionTo(Preparing)
}

// MarkAsReady transitions Preparing -> Ready.
func (s ItemStatus) MarkAsReady() (ItemStatus, error) {
	return s.TransitionTo(Ready)
}

// MarkAsServed transitions Ready -> Served.
func (s ItemStatus) MarkAsServed() (ItemStatus, error) {
	return s.TransitionTo(Served)
}

// Cancel transitions Pending -> Canceled.
func (s ItemStatus) Cancel() (ItemStatus, error) {
	return s.TransitionTo(Canceled)
}
