package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrAuthenticateQueryIsNotConstructed = errors.New(
		"AuthenticateQuery must be created via NewAuthenticateQuery constructor",
	)
	ErrLoginNameIsRequired = errors.New("login name is required")
)

// AuthenticateQuery represents a login attempt for a customer or eatery.
// Name and password are checked together against the stored accounts; the
// caller learns only whether some account matched both, never which part
// failed.
type AuthenticateQuery struct { //nolint:recvcheck //using for validation
	role     account.Role
	name     string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateQuery creates a login query for the given role.
func NewAuthenticateQuery(role account.Role, name, password string) (AuthenticateQuery, error) {
	query := AuthenticateQuery{
		password: password,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setRole(role),
		query.setName(name),
	); err != nil {
		return AuthenticateQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q AuthenticateQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateQueryIsNotConstructed)
}

// Role returns the role to authenticate within.
func (q AuthenticateQuery) Role() account.Role {
	return q.role
}

// Name returns the login name.
func (q AuthenticateQuery) Name() string {
	return q.name
}

// Password returns the supplied password.
func (q AuthenticateQuery) Password() string {
	return q.password
}

func (q *AuthenticateQuery) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	q.role = role
	return nil
}

func (q *AuthenticateQuery) setName(name string) error {
	if name == "" {
		return ErrLoginNameIsRequired
	}

	q.name = name
	return nil
}

// AuthenticateQueryResponse identifies the authenticated account.
type AuthenticateQueryResponse struct {
	AccountID kernel.UUID
	Name      string
	Role      account.Role
}
