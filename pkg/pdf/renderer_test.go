// pkg/pdf/renderer_test.go

package pdf

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/invoice-tools/invoicegen/pkg/invoice"
)

func sampleInvoice() *invoice.Invoice {
	inv := &invoice.Invoice{
		Number: "INV-20260831-001",
		Date:   time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		Company: invoice.CompanyInfo{
			Name:    "Acme Supplies Ltd",
			Address: "12 Industrial Way, Pune",
			Phone:   "+91 20 5550 1234",
			Email:   "billing@acme.example",
		},
		Customer: invoice.CustomerInfo{
			Name:    "Globex Trading",
			Address: "4 Market Road, Mumbai",
		},
	}
	inv.AddItem("Steel brackets", decimal.NewFromInt(10), decimal.RequireFromString("45.50"), decimal.NewFromInt(18))
	inv.AddItem("Delivery", decimal.NewFromInt(1), decimal.NewFromInt(500), decimal.NewFromInt(5))
	return inv
}

func TestRenderProducesPDF(t *testing.T) {
	var buf bytes.Buffer
	if err := New("").Render(&buf, sampleInvoice()); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "%PDF-") {
		t.Errorf("output does not start with %%PDF- header")
	}
	if buf.Len() < 1000 {
		t.Errorf("suspiciously small PDF: %d bytes", buf.Len())
	}
}

func TestRenderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoice_INV-20260831-001.pdf")
	if err := New("Rs.").RenderFile(path, sampleInvoice()); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("file does not start with %%PDF- header")
	}
}

func TestNewDefaultCurrency(t *testing.T) {
	if got := New("").Currency; got != DefaultCurrency {
		t.Errorf("Currency = %q, want %q", got, DefaultCurrency)
	}
	if got := New("$").Currency; got != "$" {
		t.Errorf("Currency = %q, want $", got)
	}
}

func TestMoneyFormatting(t *testing.T) {
	r := New("Rs.")
	if got := r.money(decimal.RequireFromString("45.5")); got != "Rs.45.50" {
		t.Errorf("money = %q, want Rs.45.50", got)
	}
}
