// Package pdf renders the printable sale receipt.
//
// Page layout (A4):
//
//	┌──────────────────────────────────────────────┐
//	│  HEADER: shop name + branch │ receipt no/date │
//	│  BUYER: name, national id, location, contact  │
//	│  TABLE: produce | type | tonnage (kg)          │
//	│  TOTALS: amount paid (Cash) or due (Credit)   │
//	│  FOOTER: QR with the sale id + agent          │
//	└──────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/karibu-groceries/kgl-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 34, Green: 110, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ReceiptGenerator renders sale receipts with maroto.
type ReceiptGenerator struct {
	shopName string
}

// NewReceiptGenerator builds the generator; shopName heads every receipt.
func NewReceiptGenerator(shopName string) *ReceiptGenerator {
	if shopName == "" {
		shopName = "Karibu Groceries Ltd"
	}
	return &ReceiptGenerator{shopName: shopName}
}

// GenerateSaleReceipt returns the PDF bytes for sale.
func (g *ReceiptGenerator) GenerateSaleReceipt(_ context.Context, sale *entity.Sale) ([]byte, error) {
	if sale == nil {
		return nil, fmt.Errorf("pdf: nil sale")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(8).WithBottomMargin(8).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Sale receipt "+sale.ID, true).
		WithAuthor(g.shopName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(buyerRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tableHeaderRow(), itemRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(sale))
	m.AddRows(line.NewRow(3))
	m.AddRows(g.footerRow(sale))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate receipt: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *ReceiptGenerator) headerRow(sale *entity.Sale) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.shopName, props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New("Produce sale receipt", props.Text{Size: 8, Top: 8, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(sale.SaleType+" sale", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(shortID(sale.ID), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 6,
			}),
			text.New(saleDate(sale), props.Text{
				Size: 8, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

func buyerRow(sale *entity.Sale) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("BUYER", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(sale.BuyerName, "-"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 5,
			}),
			text.New(fmt.Sprintf("NIN: %s   |   Location: %s   |   Contact: %s",
				nonEmpty(sale.NationalID, "-"),
				nonEmpty(sale.Location, "-"),
				nonEmpty(sale.Contacts, "-"),
			), props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Produce", 6, align.Left),
		h("Type", 3, align.Left),
		h("Tonnage (kg)", 3, align.Right),
	)
}

func itemRow(sale *entity.Sale) core.Row {
	return row.New(7).Add(
		col.New(6).Add(text.New(nonEmpty(sale.ProduceName, "-"), props.Text{Size: 8, Top: 1})),
		col.New(3).Add(text.New(nonEmpty(sale.ProduceType, "-"), props.Text{Size: 8, Top: 1})),
		col.New(3).Add(text.New(formatAmount(sale.Tonnage), props.Text{Size: 8, Align: align.Right, Top: 1})),
	)
}

func totalsRow(sale *entity.Sale) core.Row {
	label, amount := "AMOUNT PAID:", sale.AmountPaid
	if sale.SaleType == entity.SaleTypeCredit {
		label, amount = "AMOUNT DUE:", sale.AmountDue
	}
	bold := props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1}
	return row.New(14).Add(
		col.New(4),
		col.New(4).Add(text.New(label, bold)),
		col.New(4).Add(text.New("UGX "+formatAmount(amount), bold)),
	)
}

func (g *ReceiptGenerator) footerRow(sale *entity.Sale) core.Row {
	lines := "Served by " + nonEmpty(sale.SalesAgentName, "-")
	if sale.SaleType == entity.SaleTypeCredit {
		lines += fmt.Sprintf("\nDue date: %s\nDispatch date: %s",
			nonEmpty(sale.DueDate, "-"), nonEmpty(sale.DispatchDate, "-"))
	}
	return row.New(30).Add(
		col.New(4).Add(code.NewQr(sale.ID, props.Rect{Percent: 95, Center: true})),
		col.New(8).Add(
			text.New(lines, props.Text{Size: 8, Top: 3, Left: 3, Color: colorGray}),
			text.New("Thank you for buying from "+g.shopName, props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 22, Left: 3, Color: colorPrimary,
			}),
		),
	)
}

func saleDate(sale *entity.Sale) string {
	if sale.Date == "" {
		return sale.CreatedAt.Format("2006-01-02 15:04")
	}
	if sale.Time == "" {
		return sale.Date
	}
	return sale.Date + " " + sale.Time
}

func shortID(id string) string {
	if len(id) > 8 {
		return "No. " + id[:8]
	}
	return "No. " + id
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatAmount renders d rounded to whole units with comma thousands, "-" when unset.
func formatAmount(d *decimal.Decimal) string {
	if d == nil {
		return "-"
	}
	s := d.StringFixed(0)
	sign := ""
	if s[0] == '-' {
		sign, s = "-", s[1:]
	}
	return sign + groupThousands(s)
}

// groupThousands inserts commas into a string of digits: "1500000" -> "1,500,000".
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
