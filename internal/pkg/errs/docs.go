// Package errs holds the error vocabulary shared by the order, kitchen and payment code.
//
// Failures fall into four families, each unwrapping to a sentinel so callers classify
// them with errors.Is:
//
//	ErrValueIsRequired, ErrValueIsInvalid, ErrValueIsOutOfRange   malformed input (IsValidation)
//	ErrObjectNotFound                                              missing order, item, table, menu item or ingredient
//	ErrRuleViolation                                               RuleViolationError with a code such as "OrderNotActive"
//	ErrDependencyFailures                                          DependencyWarning from the stock ledger or notification sink
//
// Rule violations compare by code, so domain packages export them as sentinels and add
// context per occurrence:
//
//	return ErrUnservedItemsRemain.With("count", 2)
//
// A DependencyWarning is not returned as an operation error. Command results carry it
// next to the outcome.
package errs
