package memory

import (
	"context"

	"github.com/karibu-groceries/kgl-api/internal/domain/entity"
	"github.com/karibu-groceries/kgl-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo in-memory SaleRepository.
type SaleRepo struct {
	t *table[entity.Sale]
}

// NewSaleRepository builds an empty repository.
func NewSaleRepository() *SaleRepo {
	return &SaleRepo{t: newTable[entity.Sale]()}
}

func (r *SaleRepo) Create(_ context.Context, p *entity.Sale) error {
	r.t.insert(p.ID, *p)
	return nil
}

func (r *SaleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	p, ok := r.t.get(id)
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *SaleRepo) List(_ context.Context) ([]*entity.Sale, error) {
	rows := r.t.all()
	list := make([]*entity.Sale, len(rows))
	for i := range rows {
		list[i] = &rows[i]
	}
	return list, nil
}

func (r *SaleRepo) Update(_ context.Context, p *entity.Sale) error {
	return r.t.replace(p.ID, *p)
}

func (r *SaleRepo) Delete(_ context.Context, id string) (*entity.Sale, error) {
	p, ok := r.t.remove(id)
	if !ok {
		return nil, nil
	}
	return &p, nil
}
