package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karibu-groceries/kgl-api/internal/domain/entity"
)

func TestGenerateSaleReceipt(t *testing.T) {
	due := decimal.NewFromInt(750000)
	tonnage := decimal.NewFromInt(300)
	sale := &entity.Sale{
		ID:             "3f1c2a9e-5b4d-4c1a-9e7f-0a1b2c3d4e5f",
		SaleType:       entity.SaleTypeCredit,
		ProduceName:    "Maize",
		ProduceType:    "Grain",
		Tonnage:        &tonnage,
		AmountDue:      &due,
		BuyerName:      "Okello",
		SalesAgentName: "Peter",
		DueDate:        "2026-03-01",
		CreatedAt:      time.Date(2026, 2, 15, 9, 0, 0, 0, time.UTC),
	}

	out, err := NewReceiptGenerator("").GenerateSaleReceipt(context.Background(), sale)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "output must be a PDF document")
}

func TestGenerateSaleReceipt_NilSale(t *testing.T) {
	_, err := NewReceiptGenerator("KGL").GenerateSaleReceipt(context.Background(), nil)
	assert.Error(t, err)
}

func TestFormatAmount(t *testing.T) {
	d := func(s string) *decimal.Decimal {
		v := decimal.RequireFromString(s)
		return &v
	}
	assert.Equal(t, "-", formatAmount(nil))
	assert.Equal(t, "999", formatAmount(d("999")))
	assert.Equal(t, "1,500", formatAmount(d("1500")))
	assert.Equal(t, "1,500,000", formatAmount(d("1499999.6")))
	assert.Equal(t, "-12,000", formatAmount(d("-12000")))
}

func TestSaleDate(t *testing.T) {
	created := time.Date(2026, 2, 15, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, "2026-02-15 09:05", saleDate(&entity.Sale{CreatedAt: created}))
	assert.Equal(t, "2026-02-14", saleDate(&entity.Sale{Date: "2026-02-14", CreatedAt: created}))
	assert.Equal(t, "2026-02-14 10:30", saleDate(&entity.Sale{Date: "2026-02-14", Time: "10:30"}))
}
