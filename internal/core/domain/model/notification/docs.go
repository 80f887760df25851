// Package notification defines the events sent to staff when orders change or
// ingredients run low. Delivery is best effort.
package notification
