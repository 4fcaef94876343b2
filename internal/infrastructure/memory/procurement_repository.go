package memory

import (
	"context"

	"github.com/karibu-groceries/kgl-api/internal/domain/entity"
	"github.com/karibu-groceries/kgl-api/internal/domain/repository"
)

var _ repository.ProcurementRepository = (*ProcurementRepo)(nil)

// ProcurementRepo in-memory ProcurementRepository.
type ProcurementRepo struct {
	t *table[entity.Procurement]
}

// NewProcurementRepository builds an empty repository.
func NewProcurementRepository() *ProcurementRepo {
	return &ProcurementRepo{t: newTable[entity.Procurement]()}
}

func (r *ProcurementRepo) Create(_ context.Context, p *entity.Procurement) error {
	r.t.insert(p.ID, *p)
	return nil
}

func (r *ProcurementRepo) GetByID(_ context.Context, id string) (*entity.Procurement, error) {
	p, ok := r.t.get(id)
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ProcurementRepo) List(_ context.Context) ([]*entity.Procurement, error) {
	rows := r.t.all()
	list := make([]*entity.Procurement, len(rows))
	for i := range rows {
		list[i] = &rows[i]
	}
	return list, nil
}

func (r *ProcurementRepo) Update(_ context.Context, p *entity.Procurement) error {
	return r.t.replace(p.ID, *p)
}

func (r *ProcurementRepo) Delete(_ context.Context, id string) (*entity.Procurement, error) {
	p, ok := r.t.remove(id)
	if !ok {
		return nil, nil
	}
	return &p, nil
}
