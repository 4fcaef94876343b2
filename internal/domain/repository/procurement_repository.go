package repository

import (
	"context"

	"github.com/karibu-groceries/kgl-api/internal/domain/entity"
)

// ProcurementRepository persistence port for Procurement.
// GetByID and Delete return (nil, nil) when the record does not exist.
type ProcurementRepository interface {
	Create(ctx context.Context, p *entity.Procurement) error
	GetByID(ctx context.Context, id string) (*entity.Procurement, error)
	List(ctx context.Context) ([]*entity.Procurement, error)
	// Update returns domain.ErrNotFound when no record has that ID.
	Update(ctx context.Context, p *entity.Procurement) error
	// Delete returns the record as it was immediately before deletion.
	Delete(ctx context.Context, id string) (*entity.Procurement, error)
}
