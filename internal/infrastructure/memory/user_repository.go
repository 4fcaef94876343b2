package memory

import (
	"context"

	"github.com/karibu-groceries/kgl-api/internal/domain/entity"
	"github.com/karibu-groceries/kgl-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo in-memory UserRepository.
type UserRepo struct {
	t *table[entity.User]
}

// NewUserRepository builds an empty repository.
func NewUserRepository() *UserRepo {
	return &UserRepo{t: newTable[entity.User]()}
}

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	r.t.insert(u.ID, *u)
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.t.get(id)
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// FindByEmail returns the earliest registered account with that email.
func (r *UserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := r.t.find(func(u entity.User) bool { return u.Email == email })
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) List(_ context.Context) ([]*entity.User, error) {
	rows := r.t.all()
	list := make([]*entity.User, len(rows))
	for i := range rows {
		list[i] = &rows[i]
	}
	return list, nil
}

func (r *UserRepo) Update(_ context.Context, u *entity.User) error {
	return r.t.replace(u.ID, *u)
}

func (r *UserRepo) Delete(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.t.remove(id)
	if !ok {
		return nil, nil
	}
	return &u, nil
}
