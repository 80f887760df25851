// Package menu holds the menu item value consulted when orders are taken and
// when the kitchen queue is ranked.
package menu
