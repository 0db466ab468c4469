package order

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Status represents the stored lifecycle state of an order.
//
// State transitions:
//
//	Preparing ──> EnRoute ──> Delivered
//
// No transition skips a state and no backward transition exists. Requests for
// any other transition are discarded by Order.Advance rather than rejected
// with an error; the state machine is deliberately permissive.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Preparing is the initial status of every placed order.
	Preparing

	// EnRoute indicates the order has left the eatery.
	EnRoute

	// Delivered is the terminal status. Delivered orders never display as Late.
	Delivered
)

// Legacy status strings written by the reference-locale implementation.
// Accepted on load for backward compatibility, never written.
const (
	legacyPreparing = "Em preparo"
	legacyEnRoute   = "A caminho"
	legacyDelivered = "Entregue"
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Preparing: "Preparing",
		EnRoute:   "EnRoute",
		Delivered: "Delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	return map[Status]string{
		Preparing: "Preparing",
		EnRoute:   "EnRoute",
		Delivered: "Delivered",
	}
}

// ParseStatus converts a persisted status string to a Status. It accepts both
// the English names and the reference locale's legacy strings.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "Preparing", legacyPreparing:
		return Preparing, nil
	case "EnRoute", legacyEnRoute:
		return EnRoute, nil
	case "Delivered", legacyDelivered:
		return Delivered, nil
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a known status", s))
}

// Validate checks that the Status is one of the defined valid statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Next returns the immediate successor in the lifecycle and whether one
// exists. Delivered is terminal.
func (s Status) Next() (Status, bool) {
	switch s {
	case Preparing:
		return EnRoute, true
	case EnRoute:
		return Delivered, true
	}
	return Unknown, false
}

// CanAdvanceTo reports whether target is the immediate successor of s.
// Everything else, including skips and backward moves, is not advanceable.
func (s Status) CanAdvanceTo(target Status) bool {
	next, ok := s.Next()
	return ok && next == target
}

// Display maps the stored status to its display representation.
func (s Status) Display() DisplayStatus {
	switch s {
	case Preparing:
		return DisplayPreparing
	case EnRoute:
		return DisplayEnRoute
	case Delivered:
		return DisplayDelivered
	}
	return DisplayUnknown
}

// DisplayStatus is what users see: the stored status, or Late when an
// undelivered order has passed its delivery deadline. Late is derived at read
// time and never persisted.
type DisplayStatus int

const (
	DisplayUnknown DisplayStatus = iota
	DisplayPreparing
	DisplayEnRoute
	DisplayDelivered
	DisplayLate
)

// String returns the human-readable name of the display status.
func (d DisplayStatus) String() string {
	switch d {
	case DisplayPreparing:
		return "Preparing"
	case DisplayEnRoute:
		return "EnRoute"
	case DisplayDelivered:
		return "Delivered"
	case DisplayLate:
		return "Late"
	}
	return "Unknown"
}
