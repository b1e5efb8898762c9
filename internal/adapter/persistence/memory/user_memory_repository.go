package memory

import (
	"context"

	"budget_portal/internal/domain/entities"
	"budget_portal/internal/usecase/interfaces"
)

type UserMemoryRepository struct {
	users map[string]entities.User
}

var _ interfaces.IUserRepository = (*UserMemoryRepository)(nil)

func NewUserMemoryRepository(seed []entities.User) *UserMemoryRepository {
	r := &UserMemoryRepository{users: make(map[string]entities.User, len(seed))}
	for _, u := range seed {
		r.users[u.ID] = u
	}
	return r
}

// GetByID returns a zero User when the id is unknown.
func (r *UserMemoryRepository) GetByID(_ context.Context, id string) (entities.User, error) {
	return r.users[id], nil
}
