package usecase

import (
	"context"
	"strings"

	"budget_portal/internal/domain/entities"
	"budget_portal/internal/usecase/interfaces"
)

type IBudgetLineItemUseCase interface {
	GetByID(ctx context.Context, id string) (entities.BudgetLineItem, error)
	List(ctx context.Context) ([]entities.BudgetLineItem, error)
}

type BudgetLineItemUseCase struct {
	repo interfaces.IBudgetLineItemRepository
}

var _ IBudgetLineItemUseCase = (*BudgetLineItemUseCase)(nil)

func NewBudgetLineItemUseCase(repo interfaces.IBudgetLineItemRepository) *BudgetLineItemUseCase {
	return &BudgetLineItemUseCase{repo: repo}
}

func (u *BudgetLineItemUseCase) GetByID(ctx context.Context, id string) (entities.BudgetLineItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BudgetLineItem{}, ErrInvalidLineItemID
	}
	li, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BudgetLineItem{}, err
	}
	if li.ID == "" {
		return entities.BudgetLineItem{}, ErrLineItemNotFound
	}
	return li, nil
}

func (u *BudgetLineItemUseCase) List(ctx context.Context) ([]entities.BudgetLineItem, error) {
	return u.repo.List(ctx)
}
