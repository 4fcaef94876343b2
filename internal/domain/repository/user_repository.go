package repository

import (
	"context"

	"github.com/karibu-groceries/kgl-api/internal/domain/entity"
)

// UserRepository persistence port for User.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// FindByEmail returns the first account registered with email, or (nil, nil).
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	Delete(ctx context.Context, id string) (*entity.User, error)
}
