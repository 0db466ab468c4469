package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/pkg/errs"
)

// GetMenuQueryHandler retrieves eatery catalogs for display and item
// selection.
type GetMenuQueryHandler struct {
	readModel ReadModel
}

// NewGetMenuQueryHandler creates a handler for catalog queries.
func NewGetMenuQueryHandler(readModel ReadModel) GetMenuQueryHandler {
	return GetMenuQueryHandler{readModel: readModel}
}

// Handle returns the catalog of the requested eatery in catalog order.
// An empty catalog yields an empty item list, not an error.
func (h GetMenuQueryHandler) Handle(
	ctx context.Context,
	query GetMenuQuery,
) (GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMenuQueryResponse{}, err
	}

	eatery, err := h.readModel.AccountByID(ctx, query.EateryID())
	if err != nil {
		return GetMenuQueryResponse{}, err
	}
	if eatery.Role() != account.RoleEatery {
		return GetMenuQueryResponse{}, errs.NewValueIsInvalidError("eateryId")
	}

	catalog := eatery.Catalog()
	items := make([]MenuItemView, 0, len(catalog))
	for i, item := range catalog {
		items = append(items, MenuItemView{
			Index:       i + 1,
			ID:          item.ID(),
			Name:        item.Name(),
			Price:       item.Price(),
			Description: item.Description(),
		})
	}

	return GetMenuQueryResponse{
		EateryName: eatery.Name(),
		Items:      items,
	}, nil
}
