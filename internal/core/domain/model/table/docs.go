// Package table models dining room tables and their occupancy by dine-in orders.
package table
