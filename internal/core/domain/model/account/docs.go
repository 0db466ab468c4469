// Package account contains the account aggregate of the food-delivery domain.
//
// An Account is a role-tagged variant: every account carries the same identity
// record (name, phone, address, email, fiscal identifier, password, secret
// answer), and accounts with the Eatery role additionally own an ordered
// catalog of menu items. Dispatch on behavior happens through the explicit
// Role tag rather than open-ended dynamic dispatch.
//
// Display names are not unique identifiers. The system allows duplicate names
// within a role; interactive lookups resolve to the first registered match,
// while persisted cross-references use kernel.UUID identifiers.
package account
