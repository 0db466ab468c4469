// Package order contains the order aggregate and its status state machine.
//
// An order references exactly one customer, one eatery, and a non-empty
// ordered sequence of menu items (repeats allowed), all by identifier. Once
// placed it is immutable except for the status field. The stored status only
// ever moves forward (Preparing, EnRoute, Delivered); "Late" is a derived
// display state computed against the delivery deadline and is never stored.
package order
