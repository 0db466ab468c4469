package queries_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

// fakeReadModel is an in-memory ReadModel used by the query handler tests.
type fakeReadModel struct {
	accounts []*account.Account
	orders   []*order.Order
}

func (f *fakeReadModel) AccountByID(_ context.Context, id kernel.UUID) (*account.Account, error) {
	for _, acc := range f.accounts {
		if acc.ID().IsEqual(id) {
			return acc, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("accountId", id)
}

func (f *fakeReadModel) FirstAccountByName(
	_ context.Context,
	role account.Role,
	name string,
) (*account.Account, error) {
	for _, acc := range f.accounts {
		if acc.Role() == role && acc.Name() == name {
			return acc, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("name", name)
}

func (f *fakeReadModel) AccountsByRole(_ context.Context, role account.Role) ([]*account.Account, error) {
	matched := make([]*account.Account, 0)
	for _, acc := range f.accounts {
		if acc.Role() == role {
			matched = append(matched, acc)
		}
	}
	return matched, nil
}

func (f *fakeReadModel) AllOrders(_ context.Context) ([]*order.Order, error) {
	return f.orders, nil
}

func newCustomerAccount(t *testing.T, name, password string) *account.Account {
	t.Helper()
	acc, err := account.NewAccount(
		kernel.NewUUID(), account.RoleCustomer,
		name, "555-0101", "12 Oak St", strings.ToLower(name)+"@example.com", "",
		password, "blue",
	)
	require.NoError(t, err)
	return acc
}

func newEateryAccount(t *testing.T, name string, dishes ...string) (*account.Account, []kernel.UUID) {
	t.Helper()
	acc, err := account.NewAccount(
		kernel.NewUUID(), account.RoleEatery,
		name, "555-0202", "1 Dough Ln", name+"@example.com", "",
		"secret", "pepperoni",
	)
	require.NoError(t, err)

	itemIDs := make([]kernel.UUID, 0, len(dishes))
	for _, dish := range dishes {
		itemID := kernel.NewUUID()
		item, itemErr := account.NewMenuItem(itemID, dish, 9.5, "")
		require.NoError(t, itemErr)
		require.NoError(t, acc.AddMenuItem(item))
		itemIDs = append(itemIDs, itemID)
	}

	return acc, itemIDs
}

func newPlacedOrder(
	t *testing.T,
	customerID, eateryID kernel.UUID,
	itemIDs []kernel.UUID,
	placedAt time.Time,
) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), customerID, eateryID, itemIDs,
		placedAt, 30*time.Minute,
	)
	require.NoError(t, err)
	return o
}
