package services

import (
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/order"

	"fooddelivery/internal/pkg/errs"
)

// OrderPromoter is a domain service that advances orders automatically based
// on how long they have dwelled since placement.
//
// Business rules:
//   - Preparing orders become EnRoute once the first dwell threshold elapses
//   - EnRoute orders become Delivered once the second dwell threshold elapses
//   - At most one promotion step applies per sweep
//
// The thresholds are configuration, not constants: the reference defaults
// (10s and 20s) are much shorter than the 30-minute delivery deadline, so
// automatically promoted orders never display as Late.
type OrderPromoter struct {
	enRouteAfter   time.Duration
	deliveredAfter time.Duration
}

// NewOrderPromoter creates an OrderPromoter with validated dwell thresholds.
// Both thresholds must be positive and the EnRoute threshold must come first.
func NewOrderPromoter(enRouteAfter, deliveredAfter time.Duration) (OrderPromoter, error) {
	if enRouteAfter <= 0 {
		return OrderPromoter{}, errs.NewValueIsInvalidErrorWithCause("enRouteAfter is invalid",
			fmt.Errorf("%s is not greater than 0", enRouteAfter))
	}
	if deliveredAfter <= enRouteAfter {
		return OrderPromoter{}, errs.NewValueIsInvalidErrorWithCause("deliveredAfter is invalid",
			fmt.Errorf("%s is not greater than %s", deliveredAfter, enRouteAfter))
	}

	return OrderPromoter{
		enRouteAfter:   enRouteAfter,
		deliveredAfter: deliveredAfter,
	}, nil
}

// EnRouteAfter returns the dwell threshold for the Preparing to EnRoute step.
func (p OrderPromoter) EnRouteAfter() time.Duration {
	return p.enRouteAfter
}

// DeliveredAfter returns the dwell threshold for the EnRoute to Delivered step.
func (p OrderPromoter) DeliveredAfter() time.Duration {
	return p.deliveredAfter
}

// Promote applies at most one promotion step to the order at the given
// instant. Reports whether the order's status changed.
func (p OrderPromoter) Promote(o *order.Order, now time.Time) (bool, error) {
	if err := o.Validate(); err != nil {
		return false, err
	}

	return o.PromoteAt(now, p.enRouteAfter, p.deliveredAfter), nil
}
