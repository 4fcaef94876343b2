package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProcurementRequest input to record a procurement.
type CreateProcurementRequest struct {
	ProduceName  string           `json:"produceName" validate:"required"`
	ProduceType  string           `json:"produceType" validate:"required"`
	Date         string           `json:"date" validate:"required"`
	Time         string           `json:"time" validate:"required"`
	Tonnage      *decimal.Decimal `json:"tonnage" validate:"required,dmin=1000" swaggertype:"number" example:"1500"`
	Cost         *decimal.Decimal `json:"cost" validate:"required,dmin=10000" swaggertype:"number" example:"150000"`
	DealerName   string           `json:"dealerName" validate:"required"`
	Branch       string           `json:"branch" validate:"required,oneof=Maganjo Matugga"`
	Contact      string           `json:"contact" validate:"required"`
	SellingPrice *decimal.Decimal `json:"sellingPrice" validate:"required" swaggertype:"number" example:"200000"`
}

// UpdateProcurementRequest partial update; nil fields keep the stored value.
type UpdateProcurementRequest struct {
	ProduceName  *string          `json:"produceName" validate:"omitempty,min=1"`
	ProduceType  *string          `json:"produceType" validate:"omitempty,min=1"`
	Date         *string          `json:"date" validate:"omitempty,min=1"`
	Time         *string          `json:"time" validate:"omitempty,min=1"`
	Tonnage      *decimal.Decimal `json:"tonnage" validate:"omitempty,dmin=1000" swaggertype:"number"`
	Cost         *decimal.Decimal `json:"cost" validate:"omitempty,dmin=10000" swaggertype:"number"`
	DealerName   *string          `json:"dealerName" validate:"omitempty,min=1"`
	Branch       *string          `json:"branch" validate:"omitempty,oneof=Maganjo Matugga"`
	Contact      *string          `json:"contact" validate:"omitempty,min=1"`
	SellingPrice *decimal.Decimal `json:"sellingPrice" swaggertype:"number"`
}

// ProcurementResponse output of a procurement record.
type ProcurementResponse struct {
	ID           string          `json:"id"`
	ProduceName  string          `json:"produceName"`
	ProduceType  string          `json:"produceType"`
	Date         string          `json:"date"`
	Time         string          `json:"time"`
	Tonnage      decimal.Decimal `json:"tonnage" swaggertype:"number"`
	Cost         decimal.Decimal `json:"cost" swaggertype:"number"`
	DealerName   string          `json:"dealerName"`
	Branch       string          `json:"branch"`
	Contact      string          `json:"contact"`
	SellingPrice decimal.Decimal `json:"sellingPrice" swaggertype:"number"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// Envelopes returned by the procurement routes.
type (
	ProcurementCreatedEnvelope struct {
		Message       string              `json:"message"`
		CreatedRecord ProcurementResponse `json:"createdRecord"`
	}
	ProcurementListEnvelope struct {
		Message    string                `json:"message"`
		AllRecords []ProcurementResponse `json:"AllRecords"`
	}
	ProcurementEnvelope struct {
		Message string              `json:"message"`
		Record  ProcurementResponse `json:"Record"`
	}
	ProcurementUpdatedEnvelope struct {
		Message       string              `json:"message"`
		UpdatedRecord ProcurementResponse `json:"updatedRecord"`
	}
	ProcurementDeletedEnvelope struct {
		Message       string              `json:"message"`
		DeletedRecord ProcurementResponse `json:"deletedRecord"`
	}
)
