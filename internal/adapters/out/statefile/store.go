package statefile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

// Store holds the whole system state in memory and mirrors it to one JSON
// file. The mutex serializes transactions and reads: a unit of work holds it
// from Begin to Commit or Rollback, so the promotion job and the console
// session never interleave inside a transaction.
type Store struct {
	path   string
	window time.Duration

	mu    sync.Mutex
	state state
}

type state struct {
	customers []*account.Account
	eateries  []*account.Account
	orders    []*order.Order
}

// NewStore opens the state file at path and loads it into memory. A missing
// file yields an empty state; a present but unreadable or unresolvable file
// is an error. deliveryWindow backfills deadlines absent from legacy
// documents.
func NewStore(path string, deliveryWindow time.Duration) (*Store, error) {
	if path == "" {
		return nil, errs.NewValueIsRequiredError("path")
	}
	if deliveryWindow <= 0 {
		return nil, errs.NewValueIsInvalidError("deliveryWindow")
	}

	s := &Store{path: path, window: deliveryWindow}
	if err := s.load(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) load() error {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	var dto StateDTO
	if err = json.Unmarshal(raw, &dto); err != nil {
		return fmt.Errorf("parse state file %s: %w", s.path, err)
	}

	restored, err := restoreState(dto, s.window)
	if err != nil {
		return fmt.Errorf("restore state file %s: %w", s.path, err)
	}

	s.state = restored
	return nil
}

// saveLocked writes the current state to disk in one atomic replace.
// Callers must hold the mutex.
func (s *Store) saveLocked() error {
	dto, err := s.buildDTO()
	if err != nil {
		return err
	}

	raw, err := json.MarshalIndent(dto, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return err
	}

	if _, err = tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}

	if err = os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}

	return nil
}

// snapshotLocked captures the state as a document for transaction rollback.
// Callers must hold the mutex.
func (s *Store) snapshotLocked() (StateDTO, error) {
	return s.buildDTO()
}

// restoreSnapshotLocked rebuilds the state from a snapshot taken by
// snapshotLocked. Callers must hold the mutex.
func (s *Store) restoreSnapshotLocked(dto StateDTO) error {
	restored, err := restoreState(dto, s.window)
	if err != nil {
		return err
	}

	s.state = restored
	return nil
}

func (s *Store) buildDTO() (StateDTO, error) {
	dto := StateDTO{
		Customers: make([]AccountDTO, 0, len(s.state.customers)),
		Eateries:  make([]EateryDTO, 0, len(s.state.eateries)),
		Orders:    make([]OrderDTO, 0, len(s.state.orders)),
	}

	for _, customer := range s.state.customers {
		dto.Customers = append(dto.Customers, accountFromDomain(customer))
	}
	for _, eatery := range s.state.eateries {
		dto.Eateries = append(dto.Eateries, eateryFromDomain(eatery))
	}

	for _, o := range s.state.orders {
		customer := s.findAccountByID(o.CustomerID())
		if customer == nil {
			return StateDTO{}, errs.NewObjectNotFoundError("customerId", o.CustomerID())
		}
		eatery := s.findAccountByID(o.EateryID())
		if eatery == nil {
			return StateDTO{}, errs.NewObjectNotFoundError("eateryId", o.EateryID())
		}

		itemIDs := o.ItemIDs()
		itemNames := make([]string, 0, len(itemIDs))
		for _, itemID := range itemIDs {
			item, err := eatery.MenuItemByID(itemID)
			if err != nil {
				return StateDTO{}, err
			}
			itemNames = append(itemNames, item.Name())
		}

		dto.Orders = append(dto.Orders, orderFromDomain(o, customer.Name(), eatery.Name(), itemNames))
	}

	return dto, nil
}

func (s *Store) findAccountByID(id kernel.UUID) *account.Account {
	for _, acc := range s.state.customers {
		if acc.ID().IsEqual(id) {
			return acc
		}
	}
	for _, acc := range s.state.eateries {
		if acc.ID().IsEqual(id) {
			return acc
		}
	}
	return nil
}

func (s *Store) roleSlice(role account.Role) []*account.Account {
	if role == account.RoleEatery {
		return s.state.eateries
	}
	return s.state.customers
}

// The read-model methods return detached copies. Live aggregates are
// mutated under the mutex by transactions and the promotion job; copies
// stay valid after the lock is released.

// AccountByID implements the query read model.
func (s *Store) AccountByID(_ context.Context, id kernel.UUID) (*account.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc := s.findAccountByID(id)
	if acc == nil {
		return nil, errs.NewObjectNotFoundError("accountId", id)
	}
	return cloneAccount(acc)
}

// FirstAccountByName implements the query read model. Resolves the earliest
// registered account when names repeat.
func (s *Store) FirstAccountByName(
	_ context.Context,
	role account.Role,
	name string,
) (*account.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, acc := range s.roleSlice(role) {
		if acc.Name() == name {
			return cloneAccount(acc)
		}
	}
	return nil, errs.NewObjectNotFoundError("name", name)
}

// AccountsByRole implements the query read model.
func (s *Store) AccountsByRole(_ context.Context, role account.Role) ([]*account.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts := s.roleSlice(role)
	listed := make([]*account.Account, 0, len(accounts))
	for _, acc := range accounts {
		copied, err := cloneAccount(acc)
		if err != nil {
			return nil, err
		}
		listed = append(listed, copied)
	}
	return listed, nil
}

// AllOrders implements the query read model.
func (s *Store) AllOrders(_ context.Context) ([]*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make([]*order.Order, 0, len(s.state.orders))
	for _, o := range s.state.orders {
		copied, err := cloneOrder(o)
		if err != nil {
			return nil, err
		}
		orders = append(orders, copied)
	}
	return orders, nil
}

func cloneAccount(acc *account.Account) (*account.Account, error) {
	var catalog []*account.MenuItem
	for _, item := range acc.Catalog() {
		copied, err := account.RestoreMenuItem(
			item.ID(), item.Name(), item.Price(), item.Description(), item.Image(),
		)
		if err != nil {
			return nil, err
		}
		catalog = append(catalog, copied)
	}

	return account.RestoreAccount(
		acc.ID(), acc.Role(),
		acc.Name(), acc.Phone(), acc.Address(), acc.Email(), acc.FiscalID(),
		acc.Password(), acc.SecretAnswer(),
		catalog,
	)
}

func cloneOrder(o *order.Order) (*order.Order, error) {
	return order.RestoreOrder(
		o.ID(), o.CustomerID(), o.EateryID(), o.ItemIDs(),
		o.PlacedAt(), o.Deadline(), o.Status(),
	)
}

func restoreState(dto StateDTO, window time.Duration) (state, error) {
	restored := state{
		customers: make([]*account.Account, 0, len(dto.Customers)),
		eateries:  make([]*account.Account, 0, len(dto.Eateries)),
		orders:    make([]*order.Order, 0, len(dto.Orders)),
	}

	for _, raw := range dto.Customers {
		customer, err := restoreAccount(raw, account.RoleCustomer, nil)
		if err != nil {
			return state{}, err
		}
		restored.customers = append(restored.customers, customer)
	}

	for _, raw := range dto.Eateries {
		catalog := make([]*account.MenuItem, 0, len(raw.Catalog))
		for _, rawItem := range raw.Catalog {
			itemID, err := parseOrMintID(rawItem.ID)
			if err != nil {
				return state{}, err
			}
			item, err := account.RestoreMenuItem(
				itemID, rawItem.Name, rawItem.Price, rawItem.Description, rawItem.Image,
			)
			if err != nil {
				return state{}, err
			}
			catalog = append(catalog, item)
		}

		eatery, err := restoreAccount(raw.AccountDTO, account.RoleEatery, catalog)
		if err != nil {
			return state{}, err
		}
		restored.eateries = append(restored.eateries, eatery)
	}

	for _, raw := range dto.Orders {
		o, err := restoreOrder(raw, restored, window)
		if err != nil {
			return state{}, err
		}
		restored.orders = append(restored.orders, o)
	}

	return restored, nil
}

func restoreAccount(raw AccountDTO, role account.Role, catalog []*account.MenuItem) (*account.Account, error) {
	id, err := parseOrMintID(raw.ID)
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(
		id, role,
		raw.Name, raw.Phone, raw.Address, raw.Email, raw.FiscalID,
		raw.Password, raw.SecretAnswer,
		catalog,
	)
}

func restoreOrder(raw OrderDTO, restored state, window time.Duration) (*order.Order, error) {
	id, err := parseOrMintID(raw.ID)
	if err != nil {
		return nil, err
	}

	customer, err := resolveAccount(restored.customers, raw.CustomerID, raw.Customer, "customer")
	if err != nil {
		return nil, err
	}
	eatery, err := resolveAccount(restored.eateries, raw.EateryID, raw.Eatery, "eatery")
	if err != nil {
		return nil, err
	}

	itemIDs, err := resolveItems(eatery, raw)
	if err != nil {
		return nil, err
	}

	placedAt, err := time.ParseInLocation(timeLayout, raw.PlacedAt, time.Local)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("placed_at", err)
	}

	// legacy documents predate deadlines; rebuild from the placement time
	deadline := placedAt.Add(window)
	if raw.Deadline != "" {
		deadline, err = time.ParseInLocation(timeLayout, raw.Deadline, time.Local)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("deadline", err)
		}
	}

	status, err := order.ParseStatus(raw.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, customer.ID(), eatery.ID(), itemIDs, placedAt, deadline, status)
}

// resolveAccount finds an order reference by identifier when present, by
// display name otherwise.
func resolveAccount(accounts []*account.Account, rawID, name, paramName string) (*account.Account, error) {
	if rawID != "" {
		id, err := kernel.UUIDFromString(rawID)
		if err != nil {
			return nil, err
		}
		for _, acc := range accounts {
			if acc.ID().IsEqual(id) {
				return acc, nil
			}
		}
		return nil, errs.NewObjectNotFoundError(paramName, rawID)
	}

	for _, acc := range accounts {
		if acc.Name() == name {
			return acc, nil
		}
	}
	return nil, errs.NewObjectNotFoundError(paramName, name)
}

// resolveItems maps the order's item references onto the eatery catalog.
// Identifier lists are authoritative; legacy documents carry names only.
func resolveItems(eatery *account.Account, raw OrderDTO) ([]kernel.UUID, error) {
	if len(raw.ItemIDs) > 0 {
		itemIDs := make([]kernel.UUID, 0, len(raw.ItemIDs))
		for _, rawItemID := range raw.ItemIDs {
			itemID, err := kernel.UUIDFromString(rawItemID)
			if err != nil {
				return nil, err
			}
			if _, err = eatery.MenuItemByID(itemID); err != nil {
				return nil, err
			}
			itemIDs = append(itemIDs, itemID)
		}
		return itemIDs, nil
	}

	itemIDs := make([]kernel.UUID, 0, len(raw.Items))
	for _, name := range raw.Items {
		item, err := eatery.MenuItemByName(name)
		if err != nil {
			return nil, err
		}
		itemIDs = append(itemIDs, item.ID())
	}
	return itemIDs, nil
}

func parseOrMintID(raw string) (kernel.UUID, error) {
	if raw == "" {
		return kernel.NewUUID(), nil
	}
	return kernel.UUIDFromString(raw)
}
