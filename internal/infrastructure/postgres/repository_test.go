package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karibu-groceries/kgl-api/internal/domain"
	"github.com/karibu-groceries/kgl-api/internal/domain/entity"
)

// fakeQuerier records statements and replays canned results.
type fakeQuerier struct {
	execSQL  []string
	execTag  pgconn.CommandTag
	execErr  error
	rowErr   error
	querySQL []string
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	f.execSQL = append(f.execSQL, sql)
	return f.execTag, f.execErr
}

func (f *fakeQuerier) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	f.querySQL = append(f.querySQL, sql)
	return nil, errors.New("not implemented")
}

func (f *fakeQuerier) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	f.querySQL = append(f.querySQL, sql)
	return fakeRow{err: f.rowErr}
}

type fakeRow struct{ err error }

func (r fakeRow) Scan(...any) error { return r.err }

func TestGetByID_NoRowsIsNil(t *testing.T) {
	q := &fakeQuerier{rowErr: pgx.ErrNoRows}
	ctx := context.Background()

	p, err := NewProcurementRepository(q).GetByID(ctx, "id")
	require.NoError(t, err)
	assert.Nil(t, p)

	s, err := NewSaleRepository(q).GetByID(ctx, "id")
	require.NoError(t, err)
	assert.Nil(t, s)

	u, err := NewUserRepository(q).FindByEmail(ctx, "alex@kgl.com")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestDelete_UsesReturningAndNoRowsIsNil(t *testing.T) {
	q := &fakeQuerier{rowErr: pgx.ErrNoRows}

	p, err := NewProcurementRepository(q).Delete(context.Background(), "id")
	require.NoError(t, err)
	assert.Nil(t, p)
	require.Len(t, q.querySQL, 1)
	assert.Contains(t, q.querySQL[0], "RETURNING")
}

func TestUpdate_ZeroRowsIsNotFound(t *testing.T) {
	q := &fakeQuerier{execTag: pgconn.NewCommandTag("UPDATE 0")}
	ctx := context.Background()

	assert.ErrorIs(t, NewProcurementRepository(q).Update(ctx, &entity.Procurement{ID: "x"}), domain.ErrNotFound)
	assert.ErrorIs(t, NewSaleRepository(q).Update(ctx, &entity.Sale{ID: "x"}), domain.ErrNotFound)
	assert.ErrorIs(t, NewUserRepository(q).Update(ctx, &entity.User{ID: "x"}), domain.ErrNotFound)

	q.execTag = pgconn.NewCommandTag("UPDATE 1")
	assert.NoError(t, NewUserRepository(q).Update(ctx, &entity.User{ID: "x"}))
}

func TestDriverErrorsAreWrapped(t *testing.T) {
	boom := errors.New("connection reset")
	q := &fakeQuerier{execErr: boom, rowErr: boom}
	ctx := context.Background()

	err := NewSaleRepository(q).Create(ctx, &entity.Sale{ID: "x"})
	assert.ErrorIs(t, err, boom)
	assert.True(t, strings.HasPrefix(err.Error(), "insert sale"))

	_, err = NewUserRepository(q).GetByID(ctx, "x")
	assert.ErrorIs(t, err, boom)
}

func TestMigrate_AppliesEmbeddedSchema(t *testing.T) {
	q := &fakeQuerier{}
	require.NoError(t, Migrate(context.Background(), q))
	require.NotEmpty(t, q.execSQL)
	schema := strings.Join(q.execSQL, "\n")
	for _, table := range []string{"users", "procurements", "sales"} {
		assert.Contains(t, schema, "CREATE TABLE IF NOT EXISTS "+table)
	}
}
