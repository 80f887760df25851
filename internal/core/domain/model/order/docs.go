// Package order holds the Order aggregate of the restaurant: the order itself, its
// items with their kitchen state machine, and the payment that settles it.
//
// The package includes:
//   - Order: the aggregate root enforcing totals, activity and payment rules
//   - Item: an order line moving Pending -> Preparing -> Ready -> Served, or Pending -> Canceled
//   - Payment: the single settlement record of an order
//   - Number: the ORD-YYYYMMDD-NNN display number
//
// Rule violations are reported as errs.RuleViolationError values exported from
// errors.go so callers can match them with errors.Is.
package order
