package queries

import (
	"context"

	"fooddelivery/internal/pkg/errs"
)

// AuthenticateQueryHandler verifies login credentials against the stored
// accounts of one role.
type AuthenticateQueryHandler struct {
	readModel ReadModel
}

// NewAuthenticateQueryHandler creates a handler for login attempts.
func NewAuthenticateQueryHandler(readModel ReadModel) AuthenticateQueryHandler {
	return AuthenticateQueryHandler{readModel: readModel}
}

// Handle scans the accounts of the requested role for one whose name and
// password both match. Any mismatch, including an unknown name, yields the
// same generic authentication failure.
func (h AuthenticateQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateQuery,
) (AuthenticateQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateQueryResponse{}, err
	}

	accounts, err := h.readModel.AccountsByRole(ctx, query.Role())
	if err != nil {
		return AuthenticateQueryResponse{}, err
	}

	for _, acc := range accounts {
		if acc.Name() != query.Name() || !acc.Authenticate(query.Password()) {
			continue
		}

		return AuthenticateQueryResponse{
			AccountID: acc.ID(),
			Name:      acc.Name(),
			Role:      acc.Role(),
		}, nil
	}

	return AuthenticateQueryResponse{}, errs.NewAuthenticationFailedError()
}
