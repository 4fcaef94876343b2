package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/karibu-groceries/kgl-api/internal/application/auth"
	"github.com/karibu-groceries/kgl-api/internal/application/dto"
	"github.com/karibu-groceries/kgl-api/internal/application/validation"
	"github.com/karibu-groceries/kgl-api/internal/domain"
	"github.com/karibu-groceries/kgl-api/internal/domain/entity"
	"github.com/karibu-groceries/kgl-api/internal/domain/repository"
)

// UserUseCase account management. Registration and login live in auth.AuthUseCase.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase builds the use case with its persistence port.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetByID returns one user.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	u, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return entityToUserResponse(u), nil
}

// List returns every user. Zero records is reported as ErrEmpty.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, domain.ErrEmpty
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *entityToUserResponse(u))
	}
	return items, nil
}

// Update merges the supplied fields; a new password is hashed before it is stored.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	u, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	changed := false
	setString := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
			changed = true
		}
	}
	setString(&u.Username, in.Username)
	setString(&u.Email, in.Email)
	setString(&u.Role, in.Role)
	setString(&u.Status, in.Status)
	if in.Password != nil {
		hash, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		u.PasswordHash = hash
		changed = true
	}
	if !changed {
		return entityToUserResponse(u), nil
	}
	u.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return entityToUserResponse(u), nil
}

// Delete removes a user and returns it as it was before deletion.
func (uc *UserUseCase) Delete(ctx context.Context, id string) (*dto.UserResponse, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}
	u, err := uc.repo.Delete(ctx, key)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return entityToUserResponse(u), nil
}

func (uc *UserUseCase) find(ctx context.Context, id string) (*entity.User, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}
	u, err := uc.repo.GetByID(ctx, key)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
