package commands_test

import (
	"context"
	"errors"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRecoveryAccountRepository struct{ mock.Mock }

func (m *MockRecoveryAccountRepository) Add(_ context.Context, _ *account.Account) error {
	return errors.New("not implemented in mock")
}
func (m *MockRecoveryAccountRepository) Update(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockRecoveryAccountRepository) Get(_ context.Context, _ kernel.UUID) (*account.Account, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockRecoveryAccountRepository) GetFirstByName(ctx context.Context, role account.Role, name string) (*account.Account, error) {
	args := m.Called(ctx, role, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}
func (m *MockRecoveryAccountRepository) GetAllByRole(_ context.Context, _ account.Role) ([]*account.Account, error) {
	return nil, errors.New("not implemented in mock")
}

type MockRecoveryUoW struct{ mock.Mock }

func (m *MockRecoveryUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockRecoveryUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockRecoveryUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRecoveryUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

type MockRecoveryUoWFactory struct{ mock.Mock }

func (m *MockRecoveryUoWFactory) Create() commands.AccountUoW {
	args := m.Called()
	return args.Get(0).(commands.AccountUoW)
}

func newRecoverableCustomer(t *testing.T) *account.Account {
	t.Helper()
	customer, err := account.NewAccount(
		kernel.NewUUID(), account.RoleCustomer,
		"Alice", "555-0101", "12 Oak St", "alice@example.com", "",
		"hunter2", "Blue",
	)
	require.NoError(t, err)
	return customer
}

func TestResetPasswordCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	customer := newRecoverableCustomer(t)
	// answer comparison ignores case
	cmd, err := commands.NewResetPasswordCommand(account.RoleCustomer, "Alice", "bLUe", "newpass")
	require.NoError(t, err)

	repo := new(MockRecoveryAccountRepository)
	uow := new(MockRecoveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(repo).Once(),
		repo.On("GetFirstByName", mock.Anything, account.RoleCustomer, "Alice").Return(customer, nil).Once(),
		uow.On("AccountRepository").Return(repo).Once(),
		repo.On("Update", mock.Anything, customer).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRecoveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewResetPasswordCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, customer.Authenticate("newpass"))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestResetPasswordCommandHandler_Handle_WrongSecretAnswer(t *testing.T) {
	ctx := context.Background()
	customer := newRecoverableCustomer(t)
	cmd, err := commands.NewResetPasswordCommand(account.RoleCustomer, "Alice", "green", "newpass")
	require.NoError(t, err)

	repo := new(MockRecoveryAccountRepository)
	uow := new(MockRecoveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(repo).Once(),
		repo.On("GetFirstByName", mock.Anything, account.RoleCustomer, "Alice").Return(customer, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRecoveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewResetPasswordCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrAuthenticationFailed)
	assert.True(t, customer.Authenticate("hunter2"), "password must stay unchanged")
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestResetPasswordCommandHandler_Handle_AccountNotFound(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewResetPasswordCommand(account.RoleCustomer, "Nobody", "blue", "newpass")
	require.NoError(t, err)

	repo := new(MockRecoveryAccountRepository)
	uow := new(MockRecoveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(repo).Once(),
		repo.On("GetFirstByName", mock.Anything, account.RoleCustomer, "Nobody").
			Return(nil, errs.NewObjectNotFoundError("name", nil)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRecoveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewResetPasswordCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestResetPasswordCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	cmd := commands.ResetPasswordCommand{} // not constructed properly
	factory := new(MockRecoveryUoWFactory)
	h := commands.NewResetPasswordCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
