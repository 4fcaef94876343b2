package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale types.
const (
	SaleTypeCash   = "Cash"
	SaleTypeCredit = "Credit"
)

// Sale is a produce sale recorded by a SalesAgent. Only SaleType is mandatory;
// AmountPaid belongs to Cash sales and AmountDue, DueDate and DispatchDate to Credit sales.
type Sale struct {
	ID             string
	SaleType       string // Cash | Credit
	ProduceName    string
	ProduceType    string
	Tonnage        *decimal.Decimal
	AmountPaid     *decimal.Decimal
	AmountDue      *decimal.Decimal
	BuyerName      string
	NationalID     string
	Location       string
	Contacts       string
	SalesAgentName string
	Date           string
	Time           string
	DueDate        string
	DispatchDate   string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
