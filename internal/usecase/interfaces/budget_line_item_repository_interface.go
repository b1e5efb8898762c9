package interfaces

import (
	"context"

	"budget_portal/internal/domain/entities"
)

// IBudgetLineItemRepository reads the seeded line items.
type IBudgetLineItemRepository interface {
	GetByID(ctx context.Context, id string) (entities.BudgetLineItem, error)
	List(ctx context.Context) ([]entities.BudgetLineItem, error)
}
