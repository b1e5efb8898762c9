package interfaces

import (
	"context"

	"budget_portal/internal/domain/entities"
)

type IUserRepository interface {
	GetByID(ctx context.Context, id string) (entities.User, error)
}
