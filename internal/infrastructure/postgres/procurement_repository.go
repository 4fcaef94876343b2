package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/karibu-groceries/kgl-api/internal/domain"
	"github.com/karibu-groceries/kgl-api/internal/domain/entity"
	"github.com/karibu-groceries/kgl-api/internal/domain/repository"
)

var _ repository.ProcurementRepository = (*ProcurementRepo)(nil)

const procurementColumns = `id, produce_name, produce_type, date, time, tonnage, cost,
	dealer_name, branch, contact, selling_price, created_at, updated_at`

// ProcurementRepo ProcurementRepository on PostgreSQL (pool or tx).
type ProcurementRepo struct {
	q Querier
}

// NewProcurementRepository builds the adapter. Pass a pool or a tx.
func NewProcurementRepository(q Querier) *ProcurementRepo {
	return &ProcurementRepo{q: q}
}

// Create inserts a new procurement.
func (r *ProcurementRepo) Create(ctx context.Context, p *entity.Procurement) error {
	query := `INSERT INTO procurements (` + procurementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.ProduceName, p.ProduceType, p.Date, p.Time, p.Tonnage, p.Cost,
		p.DealerName, p.Branch, p.Contact, p.SellingPrice, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert procurement: %w", err)
	}
	return nil
}

// GetByID returns (nil, nil) when there is no such procurement.
func (r *ProcurementRepo) GetByID(ctx context.Context, id string) (*entity.Procurement, error) {
	query := `SELECT ` + procurementColumns + ` FROM procurements WHERE id = $1`
	p, err := scanProcurement(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get procurement: %w", err)
	}
	return p, nil
}

// List returns every procurement, oldest first.
func (r *ProcurementRepo) List(ctx context.Context) ([]*entity.Procurement, error) {
	query := `SELECT ` + procurementColumns + ` FROM procurements ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list procurements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Procurement
	for rows.Next() {
		p, err := scanProcurement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan procurement: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update overwrites every mutable column.
func (r *ProcurementRepo) Update(ctx context.Context, p *entity.Procurement) error {
	query := `
		UPDATE procurements SET produce_name = $2, produce_type = $3, date = $4, time = $5,
			tonnage = $6, cost = $7, dealer_name = $8, branch = $9, contact = $10,
			selling_price = $11, updated_at = $12
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		p.ID, p.ProduceName, p.ProduceType, p.Date, p.Time, p.Tonnage, p.Cost,
		p.DealerName, p.Branch, p.Contact, p.SellingPrice, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update procurement: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a procurement and returns the deleted row.
func (r *ProcurementRepo) Delete(ctx context.Context, id string) (*entity.Procurement, error) {
	query := `DELETE FROM procurements WHERE id = $1 RETURNING ` + procurementColumns
	p, err := scanProcurement(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete procurement: %w", err)
	}
	return p, nil
}

func scanProcurement(row pgx.Row) (*entity.Procurement, error) {
	var p entity.Procurement
	err := row.Scan(
		&p.ID, &p.ProduceName, &p.ProduceType, &p.Date, &p.Time, &p.Tonnage, &p.Cost,
		&p.DealerName, &p.Branch, &p.Contact, &p.SellingPrice, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
