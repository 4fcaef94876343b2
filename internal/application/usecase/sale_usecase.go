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

// SaleUseCase CRUD for cash and credit sales.
type SaleUseCase struct {
	repo repository.SaleRepository
}

// NewSaleUseCase builds the use case.
func NewSaleUseCase(repo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{repo: repo}
}

// Create validates and stores a new sale.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	s := &entity.Sale{
		ID:             uuid.New().String(),
		SaleType:       in.SaleType,
		ProduceName:    in.ProduceName,
		ProduceType:    in.ProduceType,
		Tonnage:        in.Tonnage,
		AmountPaid:     in.AmountPaid,
		AmountDue:      in.AmountDue,
		BuyerName:      in.BuyerName,
		NationalID:     in.NationalID,
		Location:       in.Location,
		Contacts:       in.Contacts,
		SalesAgentName: in.SalesAgentName,
		Date:           in.Date,
		Time:           in.Time,
		DueDate:        in.DueDate,
		DispatchDate:   in.DispatchDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := checkSaleAmounts(s); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return toSaleResponse(s), nil
}

// GetByID returns one sale.
func (uc *SaleUseCase) GetByID(ctx context.Context, id string) (*dto.SaleResponse, error) {
	s, err := uc.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(s), nil
}

// Find returns the stored sale entity; used by the receipt renderer.
func (uc *SaleUseCase) Find(ctx context.Context, id string) (*entity.Sale, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}
	s, err := uc.repo.GetByID(ctx, key)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

// List returns every sale. Zero records is reported as ErrEmpty.
func (uc *SaleUseCase) List(ctx context.Context) ([]dto.SaleResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, domain.ErrEmpty
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s))
	}
	return items, nil
}

// Update merges the supplied fields into the stored sale. Switching saleType
// drops the amount that belonged to the previous type unless the patch sets it,
// then the merged record is checked again.
func (uc *SaleUseCase) Update(ctx context.Context, id string, in dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	s, err := uc.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !applySalePatch(s, in) {
		return toSaleResponse(s), nil
	}
	if err := checkSaleAmounts(s); err != nil {
		return nil, err
	}
	s.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return toSaleResponse(s), nil
}

// Delete removes a sale and returns it as it was before deletion.
func (uc *SaleUseCase) Delete(ctx context.Context, id string) (*dto.SaleResponse, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}
	s, err := uc.repo.Delete(ctx, key)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(s), nil
}

// checkSaleAmounts: Cash sales carry amountPaid only, Credit sales amountDue only.
func checkSaleAmounts(s *entity.Sale) error {
	switch s.SaleType {
	case entity.SaleTypeCash:
		if s.AmountDue != nil {
			return domain.NewValidationError("amountDue", "excluded", "for Cash sales")
		}
	case entity.SaleTypeCredit:
		if s.AmountPaid != nil {
			return domain.NewValidationError("amountPaid", "excluded", "for Credit sales")
		}
	}
	return nil
}

func applySalePatch(s *entity.Sale, in dto.UpdateSaleRequest) bool {
	changed := false
	setString := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
			changed = true
		}
	}
	if in.SaleType != nil && *in.SaleType != s.SaleType {
		switch *in.SaleType {
		case entity.SaleTypeCash:
			s.AmountDue = nil
		case entity.SaleTypeCredit:
			s.AmountPaid = nil
		}
	}
	setString(&s.SaleType, in.SaleType)
	setString(&s.ProduceName, in.ProduceName)
	setString(&s.ProduceType, in.ProduceType)
	setString(&s.BuyerName, in.BuyerName)
	setString(&s.NationalID, in.NationalID)
	setString(&s.Location, in.Location)
	setString(&s.Contacts, in.Contacts)
	setString(&s.SalesAgentName, in.SalesAgentName)
	setString(&s.Date, in.Date)
	setString(&s.Time, in.Time)
	setString(&s.DueDate, in.DueDate)
	setString(&s.DispatchDate, in.DispatchDate)
	if in.Tonnage != nil {
		s.Tonnage = in.Tonnage
		changed = true
	}
	if in.AmountPaid != nil {
		s.AmountPaid = in.AmountPaid
		changed = true
	}
	if in.AmountDue != nil {
		s.AmountDue = in.AmountDue
		changed = true
	}
	return changed
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
		ID:             s.ID,
		SaleType:       s.SaleType,
		ProduceName:    s.ProduceName,
		ProduceType:    s.ProduceType,
		Tonnage:        s.Tonnage,
		AmountPaid:     s.AmountPaid,
		AmountDue:      s.AmountDue,
		BuyerName:      s.BuyerName,
		NationalID:     s.NationalID,
		Location:       s.Location,
		Contacts:       s.Contacts,
		SalesAgentName: s.SalesAgentName,
		Date:           s.Date,
		Time:           s.Time,
		DueDate:        s.DueDate,
		DispatchDate:   s.DispatchDate,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}
