package queries

import (
	"context"
)

// ListAccountsQueryHandler lists registered accounts of one role.
type ListAccountsQueryHandler struct {
	readModel ReadModel
}

// NewListAccountsQueryHandler creates a handler for account listings.
func NewListAccountsQueryHandler(readModel ReadModel) ListAccountsQueryHandler {
	return ListAccountsQueryHandler{readModel: readModel}
}

// Handle returns the accounts of the requested role in registration order.
func (h ListAccountsQueryHandler) Handle(
	ctx context.Context,
	query ListAccountsQuery,
) ([]ListAccountsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	accounts, err := h.readModel.AccountsByRole(ctx, query.Role())
	if err != nil {
		return nil, err
	}

	responses := make([]ListAccountsQueryResponse, 0, len(accounts))
	for _, acc := range accounts {
		responses = append(responses, ListAccountsQueryResponse{
			ID:    acc.ID(),
			Name:  acc.Name(),
			Email: acc.Email(),
		})
	}

	return responses, nil
}
