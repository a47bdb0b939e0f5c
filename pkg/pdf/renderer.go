// pkg/pdf/renderer.go

package pdf

import (
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/invoice-tools/invoicegen/pkg/invoice"
)

// DefaultCurrency is the marker printed before amounts. The core PDF fonts
// are CP1252, so it must stay within that encoding.
const DefaultCurrency = "Rs."

// Column widths for the items table, in mm. They fill the printable width
// of an A4 page with default margins.
var colWidths = [5]float64{80, 20, 30, 25, 35}

// Renderer lays out an invoice as a styled A4 PDF.
type Renderer struct {
	Currency string
}

// New returns a Renderer. An empty currency selects DefaultCurrency.
func New(currency string) *Renderer {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Renderer{Currency: currency}
}

// Render writes the invoice PDF to w.
func (r *Renderer) Render(w io.Writer, inv *invoice.Invoice) error {
	return r.build(inv).Output(w)
}

// RenderFile writes the invoice PDF to path.
func (r *Renderer) RenderFile(path string, inv *invoice.Invoice) error {
	return r.build(inv).OutputFileAndClose(path)
}

func (r *Renderer) build(inv *invoice.Invoice) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// Company header
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, tr(inv.Company.Name), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, tr(inv.Company.Address), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, tr("Phone: "+inv.Company.Phone), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, tr("Email: "+inv.Company.Email), "", 1, "C", false, 0, "")
	pdf.Ln(10)

	// Invoice block
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 8, "INVOICE", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, "Invoice #: "+inv.Number, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, "Date: "+inv.Date.Format("2006-01-02"), "", 1, "L", false, 0, "")
	pdf.Ln(7)

	// Bill To block
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, "Bill To:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, tr(inv.Customer.Name), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, tr(inv.Customer.Address), "", 1, "L", false, 0, "")
	pdf.Ln(10)

	r.itemsTable(pdf, tr, inv)

	pdf.Ln(12)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 6, "Thank you for your business!", "", 1, "L", false, 0, "")

	return pdf
}

func (r *Renderer) itemsTable(pdf *gofpdf.Fpdf, tr func(string) string, inv *invoice.Invoice) {
	totals := inv.Totals()

	// Header row: dark blue fill, white text.
	pdf.SetFillColor(64, 70, 110)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 10)
	headers := [5]string{"Description", "Qty", "Price", "Tax %", "Total"}
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	// Item rows: light gray fill.
	pdf.SetFillColor(245, 245, 245)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 9)
	for _, li := range inv.Items {
		pdf.CellFormat(colWidths[0], 7, tr(li.Description), "1", 0, "L", true, 0, "")
		pdf.CellFormat(colWidths[1], 7, li.Quantity.String(), "1", 0, "C", true, 0, "")
		pdf.CellFormat(colWidths[2], 7, r.money(li.UnitPrice), "1", 0, "C", true, 0, "")
		pdf.CellFormat(colWidths[3], 7, li.TaxRate.String()+"%", "1", 0, "C", true, 0, "")
		pdf.CellFormat(colWidths[4], 7, r.money(li.Total()), "1", 0, "C", true, 0, "")
		pdf.Ln(-1)
	}

	r.totalsRow(pdf, "Subtotal:", r.money(totals.Subtotal), false)
	for _, tax := range totals.TaxLines {
		r.totalsRow(pdf, "Tax ("+tax.Rate.String()+"%):", r.money(tax.Amount), false)
	}
	r.totalsRow(pdf, "Total:", r.money(totals.GrandTotal), true)
}

func (r *Renderer) totalsRow(pdf *gofpdf.Fpdf, label, value string, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	pdf.SetFont("Helvetica", style, 9)
	pdf.CellFormat(colWidths[0]+colWidths[1]+colWidths[2], 7, "", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colWidths[3], 7, label, "1", 0, "R", true, 0, "")
	pdf.CellFormat(colWidths[4], 7, value, "1", 0, "R", true, 0, "")
	pdf.Ln(-1)
}

func (r *Renderer) money(d decimal.Decimal) string {
	return r.Currency + d.StringFixed(2)
}
