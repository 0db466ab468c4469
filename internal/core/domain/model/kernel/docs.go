// Package kernel contains shared value objects used across the domain model.
// Identifiers for accounts, menu items and orders are kernel.UUID values,
// making cross-references stable even when display names are duplicated or
// renamed.
package kernel
