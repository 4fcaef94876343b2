package usecase

import (
	"context"
	"fmt"

	"github.com/karibu-groceries/kgl-api/internal/domain/entity"
	"github.com/karibu-groceries/kgl-api/internal/domain/repository"
)

// ReceiptGenerator renders a printable receipt for a sale.
type ReceiptGenerator interface {
	GenerateSaleReceipt(ctx context.Context, sale *entity.Sale) ([]byte, error)
}

// ReceiptUseCase builds the PDF receipt handed to the buyer.
type ReceiptUseCase struct {
	sales     *SaleUseCase
	generator ReceiptGenerator
}

// NewReceiptUseCase builds the use case.
func NewReceiptUseCase(saleRepo repository.SaleRepository, generator ReceiptGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{sales: NewSaleUseCase(saleRepo), generator: generator}
}

// SaleReceipt returns the PDF bytes and a download filename for the sale.
func (uc *ReceiptUseCase) SaleReceipt(ctx context.Context, saleID string) ([]byte, string, error) {
	sale, err := uc.sales.Find(ctx, saleID)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.generator.GenerateSaleReceipt(ctx, sale)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: %w", err)
	}
	return pdf, fmt.Sprintf("sale-%s.pdf", sale.ID), nil
}
