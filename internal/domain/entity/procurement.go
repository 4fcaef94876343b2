package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Branches where produce is procured.
const (
	BranchMaganjo = "Maganjo"
	BranchMatugga = "Matugga"
)

// Procurement constraints.
var (
	MinProcurementTonnage = decimal.NewFromInt(1000)
	MinProcurementCost    = decimal.NewFromInt(10000)
)

// Procurement is a produce purchase recorded by a Manager at one of the branches.
// Date and Time are kept as the caller formatted them.
type Procurement struct {
	ID           string
	ProduceName  string
	ProduceType  string
	Date         string
	Time         string
	Tonnage      decimal.Decimal // kg, >= 1000
	Cost         decimal.Decimal // UGX, >= 10000
	DealerName   string
	Branch       string // Maganjo | Matugga
	Contact      string
	SellingPrice decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
