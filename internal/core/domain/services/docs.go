// Package services contains stateless domain services that coordinate
// behavior across aggregates. The OrderPromoter applies the automatic,
// dwell-based status promotion rule to orders.
package services
