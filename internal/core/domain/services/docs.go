// Package services provides domain services that work across the restaurant aggregates.
//
// The package includes:
//   - KitchenPriorityScheduler: ranks cooking items and groups them per table for the kitchen
//   - PaymentFinalizer: validates a payment and closes the order
//
// Both are stateless; callers load the aggregates, run the service and persist the result.
package services
