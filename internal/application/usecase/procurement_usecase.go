package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/karibu-groceries/kgl-api/internal/application/dto"
	"github.com/karibu-groceries/kgl-api/internal/application/validation"
	"github.com/karibu-groceries/kgl-api/internal/domain"
	"github.com/karibu-groceries/kgl-api/internal/domain/entity"
	"github.com/karibu-groceries/kgl-api/internal/domain/repository"
)

// ProcurementUseCase CRUD for produce procurements.
type ProcurementUseCase struct {
	repo repository.ProcurementRepository
}

// NewProcurementUseCase builds the use case.
func NewProcurementUseCase(repo repository.ProcurementRepository) *ProcurementUseCase {
	return &ProcurementUseCase{repo: repo}
}

// Create validates and stores a new procurement.
func (uc *ProcurementUseCase) Create(ctx context.Context, in dto.CreateProcurementRequest) (*dto.ProcurementResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	p := &entity.Procurement{
		ID:           uuid.New().String(),
		ProduceName:  in.ProduceName,
		ProduceType:  in.ProduceType,
		Date:         in.Date,
		Time:         in.Time,
		Tonnage:      *in.Tonnage,
		Cost:         *in.Cost,
		DealerName:   in.DealerName,
		Branch:       in.Branch,
		Contact:      in.Contact,
		SellingPrice: *in.SellingPrice,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProcurementResponse(p), nil
}

// GetByID returns one procurement.
func (uc *ProcurementUseCase) GetByID(ctx context.Context, id string) (*dto.ProcurementResponse, error) {
	p, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProcurementResponse(p), nil
}

// List returns every procurement. Zero records is reported as ErrEmpty.
func (uc *ProcurementUseCase) List(ctx context.Context) ([]dto.ProcurementResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, domain.ErrEmpty
	}
	items := make([]dto.ProcurementResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProcurementResponse(p))
	}
	return items, nil
}

// Update merges the supplied fields into the stored record and returns the result.
// An empty patch stores nothing and returns the record as is.
func (uc *ProcurementUseCase) Update(ctx context.Context, id string, in dto.UpdateProcurementRequest) (*dto.ProcurementResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	p, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !applyProcurementPatch(p, in) {
		return toProcurementResponse(p), nil
	}
	p.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toProcurementResponse(p), nil
}

// Delete removes a procurement and returns it as it was before deletion.
func (uc *ProcurementUseCase) Delete(ctx context.Context, id string) (*dto.ProcurementResponse, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}
	p, err := uc.repo.Delete(ctx, key)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProcurementResponse(p), nil
}

func (uc *ProcurementUseCase) find(ctx context.Context, id string) (*entity.Procurement, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}
	p, err := uc.repo.GetByID(ctx, key)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func applyProcurementPatch(p *entity.Procurement, in dto.UpdateProcurementRequest) bool {
	changed := false
	setString := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
			changed = true
		}
	}
	setString(&p.ProduceName, in.ProduceName)
	setString(&p.ProduceType, in.ProduceType)
	setString(&p.Date, in.Date)
	setString(&p.Time, in.Time)
	setString(&p.DealerName, in.DealerName)
	setString(&p.Branch, in.Branch)
	setString(&p.Contact, in.Contact)
	if in.Tonnage != nil {
		p.Tonnage = *in.Tonnage
		changed = true
	}
	if in.Cost != nil {
		p.Cost = *in.Cost
		changed = true
	}
	if in.SellingPrice != nil {
		p.SellingPrice = *in.SellingPrice
		changed = true
	}
	return changed
}

func toProcurementResponse(p *entity.Procurement) *dto.ProcurementResponse {
	if p == nil {
		return nil
	}
	return &dto.ProcurementResponse{
		ID:           p.ID,
		ProduceName:  p.ProduceName,
		ProduceType:  p.ProduceType,
		Date:         p.Date,
		Time:         p.Time,
		Tonnage:      p.Tonnage,
		Cost:         p.Cost,
		DealerName:   p.DealerName,
		Branch:       p.Branch,
		Contact:      p.Contact,
		SellingPrice: p.SellingPrice,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
