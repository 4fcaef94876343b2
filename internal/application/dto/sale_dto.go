package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest input to record a sale.
type CreateSaleRequest struct {
	SaleType       string           `json:"saleType" validate:"required,oneof=Cash Credit"`
	ProduceName    string           `json:"produceName"`
	ProduceType    string           `json:"produceType"`
	Tonnage        *decimal.Decimal `json:"tonnage" validate:"omitempty,dmin=0" swaggertype:"number"`
	AmountPaid     *decimal.Decimal `json:"amountPaid" validate:"omitempty,dmin=0" swaggertype:"number"`
	AmountDue      *decimal.Decimal `json:"amountDue" validate:"omitempty,dmin=0" swaggertype:"number"`
	BuyerName      string           `json:"buyerName"`
	NationalID     string           `json:"nationalId"`
	Location       string           `json:"location"`
	Contacts       string           `json:"contacts"`
	SalesAgentName string           `json:"salesAgentName"`
	Date           string           `json:"date"`
	Time           string           `json:"time"`
	DueDate        string           `json:"dueDate"`
	DispatchDate   string           `json:"dispatchDate"`
}

// UpdateSaleRequest partial update; nil fields keep the stored value.
type UpdateSaleRequest struct {
	SaleType       *string          `json:"saleType" validate:"omitempty,oneof=Cash Credit"`
	ProduceName    *string          `json:"produceName"`
	ProduceType    *string          `json:"produceType"`
	Tonnage        *decimal.Decimal `json:"tonnage" validate:"omitempty,dmin=0" swaggertype:"number"`
	AmountPaid     *decimal.Decimal `json:"amountPaid" validate:"omitempty,dmin=0" swaggertype:"number"`
	AmountDue      *decimal.Decimal `json:"amountDue" validate:"omitempty,dmin=0" swaggertype:"number"`
	BuyerName      *string          `json:"buyerName"`
	NationalID     *string          `json:"nationalId"`
	Location       *string          `json:"location"`
	Contacts       *string          `json:"contacts"`
	SalesAgentName *string          `json:"salesAgentName"`
	Date           *string          `json:"date"`
	Time           *string          `json:"time"`
	DueDate        *string          `json:"dueDate"`
	DispatchDate   *string          `json:"dispatchDate"`
}

// SaleResponse output of a sale record. Optional fields are omitted when unset.
type SaleResponse struct {
	ID             string           `json:"id"`
	SaleType       string           `json:"saleType"`
	ProduceName    string           `json:"produceName,omitempty"`
	ProduceType    string           `json:"produceType,omitempty"`
	Tonnage        *decimal.Decimal `json:"tonnage,omitempty" swaggertype:"number"`
	AmountPaid     *decimal.Decimal `json:"amountPaid,omitempty" swaggertype:"number"`
	AmountDue      *decimal.Decimal `json:"amountDue,omitempty" swaggertype:"number"`
	BuyerName      string           `json:"buyerName,omitempty"`
	NationalID     string           `json:"nationalId,omitempty"`
	Location       string           `json:"location,omitempty"`
	Contacts       string           `json:"contacts,omitempty"`
	SalesAgentName string           `json:"salesAgentName,omitempty"`
	Date           string           `json:"date,omitempty"`
	Time           string           `json:"time,omitempty"`
	DueDate        string           `json:"dueDate,omitempty"`
	DispatchDate   string           `json:"dispatchDate,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// Envelopes returned by the sale routes.
type (
	SaleEnvelope struct {
		Message string       `json:"message"`
		Sale    SaleResponse `json:"sale"`
	}
	SaleListEnvelope struct {
		Message string         `json:"message"`
		Sales   []SaleResponse `json:"sales"`
	}
	SaleUpdatedEnvelope struct {
		Message     string       `json:"message"`
		UpdatedSale SaleResponse `json:"updatedSale"`
	}
	SaleDeletedEnvelope struct {
		Message     string       `json:"message"`
		DeletedSale SaleResponse `json:"deletedSale"`
	}
)
