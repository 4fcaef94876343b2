package repository

import (
	"context"

	"github.com/karibu-groceries/kgl-api/internal/domain/entity"
)

// SaleRepository persistence port for Sale.
type SaleRepository interface {
	Create(ctx context.Context, s *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	List(ctx context.Context) ([]*entity.Sale, error)
	Update(ctx context.Context, s *entity.Sale) error
	Delete(ctx context.Context, id string) (*entity.Sale, error)
}
