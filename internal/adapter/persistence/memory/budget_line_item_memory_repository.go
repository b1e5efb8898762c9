package memory

import (
	"context"

	"budget_portal/internal/domain/entities"
	"budget_portal/internal/usecase/interfaces"
)

// BudgetLineItemMemoryRepository serves the seeded line items. They are
// immutable, so no locking is needed after construction.
type BudgetLineItemMemoryRepository struct {
	order []string
	items map[string]entities.BudgetLineItem
}

var _ interfaces.IBudgetLineItemRepository = (*BudgetLineItemMemoryRepository)(nil)

func NewBudgetLineItemMemoryRepository(seed []entities.BudgetLineItem) *BudgetLineItemMemoryRepository {
	r := &BudgetLineItemMemoryRepository{items: make(map[string]entities.BudgetLineItem, len(seed))}
	for _, li := range seed {
		if _, ok := r.items[li.ID]; !ok {
			r.order = append(r.order, li.ID)
		}
		r.items[li.ID] = li
	}
	return r
}

func (r *BudgetLineItemMemoryRepository) GetByID(_ context.Context, id string) (entities.BudgetLineItem, error) {
	return r.items[id], nil
}

// List returns line items in seed order.
func (r *BudgetLineItemMemoryRepository) List(_ context.Context) ([]entities.BudgetLineItem, error) {
	out := make([]entities.BudgetLineItem, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}
