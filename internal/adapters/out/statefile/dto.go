// Package statefile persists the whole system state as one JSON document on
// disk. It implements the repository and unit of work ports over an
// in-memory state that is loaded once at startup and rewritten atomically on
// every commit, and the read model contract consumed by the query handlers.
//
// The document layout stays compatible with state files written by the
// legacy implementation: orders carry display names next to identifiers,
// and loading falls back to name resolution when identifiers are absent.
package statefile

import (
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/order"
)

// timeLayout is the wall-clock format used for order timestamps in the
// state document.
const timeLayout = "2006-01-02 15:04:05"

// StateDTO is the root of the persisted JSON document.
type StateDTO struct {
	Customers []AccountDTO `json:"customers"`
	Eateries  []EateryDTO  `json:"eateries"`
	Orders    []OrderDTO   `json:"orders"`
}

// AccountDTO carries the identity fields shared by both roles. Legacy
// documents omit the id; loading mints one.
type AccountDTO struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Email        string `json:"email"`
	FiscalID     string `json:"fiscal_id"`
	Password     string `json:"password"`
	SecretAnswer string `json:"secret_answer"`
}

// EateryDTO extends the shared identity fields with the menu catalog.
type EateryDTO struct {
	AccountDTO
	Catalog []MenuItemDTO `json:"catalog"`
}

// MenuItemDTO is one catalog entry in the state document.
type MenuItemDTO struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

// OrderDTO is one ledger entry in the state document. Identifiers are
// authoritative; the redundant display names and item name list keep the
// document readable and loadable by the legacy implementation. Legacy
// documents in turn omit the identifiers and the deadline.
type OrderDTO struct {
	ID         string   `json:"id,omitempty"`
	CustomerID string   `json:"customer_id,omitempty"`
	EateryID   string   `json:"eatery_id,omitempty"`
	Customer   string   `json:"customer"`
	Eatery     string   `json:"eatery"`
	Items      []string `json:"items"`
	ItemIDs    []string `json:"item_ids,omitempty"`
	PlacedAt   string   `json:"placed_at"`
	Deadline   string   `json:"deadline,omitempty"`
	Status     string   `json:"status"`
}

func accountFromDomain(acc *account.Account) AccountDTO {
	return AccountDTO{
		ID:           acc.ID().String(),
		Name:         acc.Name(),
		Phone:        acc.Phone(),
		Address:      acc.Address(),
		Email:        acc.Email(),
		FiscalID:     acc.FiscalID(),
		Password:     acc.Password(),
		SecretAnswer: acc.SecretAnswer(),
	}
}

func eateryFromDomain(acc *account.Account) EateryDTO {
	catalog := acc.Catalog()
	items := make([]MenuItemDTO, 0, len(catalog))
	for _, item := range catalog {
		items = append(items, MenuItemDTO{
			ID:          item.ID().String(),
			Name:        item.Name(),
			Price:       item.Price(),
			Description: item.Description(),
			Image:       item.Image(),
		})
	}

	return EateryDTO{
		AccountDTO: accountFromDomain(acc),
		Catalog:    items,
	}
}

func orderFromDomain(o *order.Order, customerName, eateryName string, itemNames []string) OrderDTO {
	itemIDs := o.ItemIDs()
	rawItemIDs := make([]string, 0, len(itemIDs))
	for _, itemID := range itemIDs {
		rawItemIDs = append(rawItemIDs, itemID.String())
	}

	return OrderDTO{
		ID:         o.ID().String(),
		CustomerID: o.CustomerID().String(),
		EateryID:   o.EateryID().String(),
		Customer:   customerName,
		Eatery:     eateryName,
		Items:      itemNames,
		ItemIDs:    rawItemIDs,
		PlacedAt:   o.PlacedAt().Format(timeLayout),
		Deadline:   o.Deadline().Format(timeLayout),
		Status:     o.Status().String(),
	}
}
