// Package inventory describes ingredient requirements, stock levels and the signed
// adjustments applied to the ingredient counters when orders change.
package inventory
