package order

import (
	"restaurant/internal/pkg/errs"
)

// Rule violation codes raised by the order aggregate.
const (
	CodeOrderNotActive              = "OrderNotActive"
	CodeOrderAlreadyPaid            = "OrderAlreadyPaid"
	CodeCannotRemoveLastItem        = "CannotRemoveLastItem"
	CodeInvalidTransition           = "InvalidTransition"
	CodeUnsupportedStatusTransition = "UnsupportedStatusTransition"
	CodeItemNotPending              = "ItemNotPending"
	CodeUnservedItemsRemain         = "UnservedItemsRemain"
	CodePaymentNotRecorded          = "PaymentNotRecorded"
	CodePaymentAlreadyRecorded      = "PaymentAlreadyRecorded"
	CodeConfirmationFailed          = "ConfirmationRuleFailed"
)

// Confirmation rules reported in the "rule" context entry of ErrConfirmationFailed.
const (
	RuleItemsRequired        = "ItemsRequired"
	RuleTableRequired        = "TableRequired"
	RuleCustomerInfoRequired = "CustomerInfoRequired"
	RulePositiveTotal        = "PositiveTotal"
)

var (
	ErrOrderNotActive = errs.NewRuleViolation(CodeOrderNotActive,
		"order is not in Serving status")
	ErrOrderAlreadyPaid = errs.NewRuleViolation(CodeOrderAlreadyPaid,
		"order has already been paid")
	ErrCannotRemoveLastItem = errs.NewRuleViolation(CodeCannotRemoveLastItem,
		"the last item of an order cannot be removed")
	ErrInvalidTransition = errs.NewRuleViolation(CodeInvalidTransition,
		"item status transition is not allowed")
	ErrUnsupportedStatusTransition = errs.NewRuleViolation(CodeUnsupportedStatusTransition,
		"kitchen may only move items to Preparing, Ready or Canceled")
	ErrItemNotPending = errs.NewRuleViolation(CodeItemNotPending,
		"only pending items can be changed")
	ErrUnservedItemsRemain = errs.NewRuleViolation(CodeUnservedItemsRemain,
		"every item must be served or canceled")
	ErrPaymentNotRecorded = errs.NewRuleViolation(CodePaymentNotRecorded,
		"a payment must be recorded before completion")
	ErrPaymentAlreadyRecorded = errs.NewRuleViolation(CodePaymentAlreadyRecorded,
		"order already has a payment")
	ErrConfirmationFailed = errs.NewRuleViolation(CodeConfirmationFailed,
		"order cannot be confirmed")
)

func newInvalidTransitionError(current, target ItemStatus) error {
	return ErrInvalidTransition.With("current", current.String()).With("target", target.String())
}

func newUnservedItemsRemainError(count int) error {
	return ErrUnservedItemsRemain.With("count", count)
}

func newConfirmationError(rule string) error {
	return ErrConfirmationFailed.With("rule", rule)
}

func newItemNotFoundError(itemID any) error {
	return errs.NewObjectNotFoundError("order_item", itemID)
}
