// pkg/invoice/invoice.go

package invoice

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultTaxRate is applied when an item is added without an explicit rate.
var DefaultTaxRate = decimal.NewFromInt(18)

// CompanyInfo identifies the issuing company on the invoice header.
type CompanyInfo struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

// CustomerInfo identifies the billed party.
type CustomerInfo struct {
	Name    string
	Address string
}

// LineItem represents one billable row on the invoice.
// TaxRate is a percentage, e.g. 18 for 18%.
type LineItem struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	TaxRate     decimal.Decimal
}

// Net returns the pre-tax amount for the line (quantity times unit price).
func (li LineItem) Net() decimal.Decimal {
	return li.Quantity.Mul(li.UnitPrice)
}

// Tax returns the tax amount for the line.
func (li LineItem) Tax() decimal.Decimal {
	return li.Net().Mul(li.TaxRate).Div(decimal.NewFromInt(100))
}

// Total returns the line amount including tax.
func (li LineItem) Total() decimal.Decimal {
	return li.Net().Add(li.Tax())
}

// TaxLine is the aggregated tax for one distinct rate across the invoice.
type TaxLine struct {
	Rate   decimal.Decimal
	Amount decimal.Decimal
}

// Totals holds the computed amounts for a whole invoice.
// TaxLines is sorted ascending by rate.
type Totals struct {
	Subtotal   decimal.Decimal
	TaxLines   []TaxLine
	TotalTax   decimal.Decimal
	GrandTotal decimal.Decimal
}

// Invoice represents the invoice data model.
type Invoice struct {
	Number   string
	Date     time.Time
	Company  CompanyInfo
	Customer CustomerInfo
	Items    []LineItem
}

// AddItem appends a line item. A negative rate selects DefaultTaxRate.
func (inv *Invoice) AddItem(description string, quantity, unitPrice, taxRate decimal.Decimal) {
	if taxRate.IsNegative() {
		taxRate = DefaultTaxRate
	}
	inv.Items = append(inv.Items, LineItem{
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		TaxRate:     taxRate,
	})
}

// Totals computes the subtotal, per-rate tax breakdown, and grand total.
// All arithmetic is decimal, so GrandTotal equals Subtotal plus TotalTax
// exactly.
func (inv *Invoice) Totals() Totals {
	t := Totals{
		Subtotal:   decimal.Zero,
		TotalTax:   decimal.Zero,
		GrandTotal: decimal.Zero,
	}

	byRate := make(map[string]*TaxLine)
	for _, li := range inv.Items {
		t.Subtotal = t.Subtotal.Add(li.Net())

		key := li.TaxRate.String()
		line, ok := byRate[key]
		if !ok {
			line = &TaxLine{Rate: li.TaxRate, Amount: decimal.Zero}
			byRate[key] = line
		}
		line.Amount = line.Amount.Add(li.Tax())
	}

	for _, line := range byRate {
		t.TaxLines = append(t.TaxLines, *line)
	}
	sort.Slice(t.TaxLines, func(i, j int) bool {
		return t.TaxLines[i].Rate.LessThan(t.TaxLines[j].Rate)
	})

	for _, line := range t.TaxLines {
		t.TotalTax = t.TotalTax.Add(line.Amount)
	}
	t.GrandTotal = t.Subtotal.Add(t.TotalTax)
	return t
}
