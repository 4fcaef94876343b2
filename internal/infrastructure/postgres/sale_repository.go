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

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, sale_type, produce_name, produce_type, tonnage, amount_paid, amount_due,
	buyer_name, national_id, location, contacts, sales_agent_name, date, time,
	due_date, dispatch_date, created_at, updated_at`

// SaleRepo SaleRepository on PostgreSQL. Absent amounts are stored as NULL.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository builds the adapter. Pass a pool or a tx.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create inserts a new sale.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	query := `INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.SaleType, s.ProduceName, s.ProduceType, s.Tonnage, s.AmountPaid, s.AmountDue,
		s.BuyerName, s.NationalID, s.Location, s.Contacts, s.SalesAgentName, s.Date, s.Time,
		s.DueDate, s.DispatchDate, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID returns (nil, nil) when there is no such sale.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	s, err := scanSale(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// List returns every sale, oldest first.
func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx, `SELECT `+saleColumns+` FROM sales ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Update overwrites every mutable column.
func (r *SaleRepo) Update(ctx context.Context, s *entity.Sale) error {
	query := `
		UPDATE sales SET sale_type = $2, produce_name = $3, produce_type = $4, tonnage = $5,
			amount_paid = $6, amount_due = $7, buyer_name = $8, national_id = $9, location = $10,
			contacts = $11, sales_agent_name = $12, date = $13, time = $14, due_date = $15,
			dispatch_date = $16, updated_at = $17
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		s.ID, s.SaleType, s.ProduceName, s.ProduceType, s.Tonnage, s.AmountPaid, s.AmountDue,
		s.BuyerName, s.NationalID, s.Location, s.Contacts, s.SalesAgentName, s.Date, s.Time,
		s.DueDate, s.DispatchDate, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a sale and returns the deleted row.
func (r *SaleRepo) Delete(ctx context.Context, id string) (*entity.Sale, error) {
	s, err := scanSale(r.q.QueryRow(ctx, `DELETE FROM sales WHERE id = $1 RETURNING `+saleColumns, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete sale: %w", err)
	}
	return s, nil
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	err := row.Scan(
		&s.ID, &s.SaleType, &s.ProduceName, &s.ProduceType, &s.Tonnage, &s.AmountPaid, &s.AmountDue,
		&s.BuyerName, &s.NationalID, &s.Location, &s.Contacts, &s.SalesAgentName, &s.Date, &s.Time,
		&s.DueDate, &s.DispatchDate, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
