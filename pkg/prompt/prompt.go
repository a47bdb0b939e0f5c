// pkg/prompt/prompt.go

package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/invoice-tools/invoicegen/pkg/invoice"
)

// ErrInputClosed is returned when the input stream ends mid-session.
var ErrInputClosed = errors.New("input stream closed")

var hundred = decimal.NewFromInt(100)

// Prompter collects invoice data through interactive line-based prompts.
// Reads come from in and prompt text goes to out, so a session can be
// scripted in tests.
type Prompter struct {
	in       *bufio.Scanner
	out      io.Writer
	currency string
}

// New returns a Prompter. currency is only used in prompt text.
func New(in io.Reader, out io.Writer, currency string) *Prompter {
	return &Prompter{
		in:       bufio.NewScanner(in),
		out:      out,
		currency: currency,
	}
}

// CompanyInfo prompts for the issuing company details.
func (p *Prompter) CompanyInfo() (invoice.CompanyInfo, error) {
	fmt.Fprintln(p.out, "\n=== Company Information ===")

	var ci invoice.CompanyInfo
	var err error
	if ci.Name, err = p.line("Company Name: "); err != nil {
		return ci, err
	}
	if ci.Address, err = p.line("Address: "); err != nil {
		return ci, err
	}
	if ci.Phone, err = p.line("Phone: "); err != nil {
		return ci, err
	}
	if ci.Email, err = p.line("Email: "); err != nil {
		return ci, err
	}
	return ci, nil
}

// CustomerInfo prompts for the billed party details.
func (p *Prompter) CustomerInfo() (invoice.CustomerInfo, error) {
	fmt.Fprintln(p.out, "\n=== Customer Information ===")

	var ci invoice.CustomerInfo
	var err error
	if ci.Name, err = p.line("Customer Name: "); err != nil {
		return ci, err
	}
	if ci.Address, err = p.line("Address: "); err != nil {
		return ci, err
	}
	return ci, nil
}

// Items runs the item entry loop, appending to inv until the user enters
// "done". At least one item is required before the loop can finish.
func (p *Prompter) Items(inv *invoice.Invoice) error {
	fmt.Fprintln(p.out, "\n=== Add Items (enter 'done' when finished) ===")

	for {
		desc, err := p.line("\nItem description (or 'done'): ")
		if err != nil {
			return err
		}
		if strings.EqualFold(desc, "done") {
			if len(inv.Items) == 0 {
				fmt.Fprintln(p.out, "Please add at least one item.")
				continue
			}
			return nil
		}
		if desc == "" {
			continue
		}

		qty, err := p.number("Quantity: ", func(d decimal.Decimal) string {
			if !d.IsPositive() {
				return "Quantity must be greater than 0"
			}
			return ""
		})
		if err != nil {
			return err
		}

		price, err := p.number(fmt.Sprintf("Price per unit (%s): ", p.currency), func(d decimal.Decimal) string {
			if d.IsNegative() {
				return "Price cannot be negative"
			}
			return ""
		})
		if err != nil {
			return err
		}

		rate, err := p.taxRate()
		if err != nil {
			return err
		}

		inv.AddItem(desc, qty, price, rate)
		fmt.Fprintf(p.out, "Added: %s x %s @ %s%s (%s%% tax)\n",
			qty, desc, p.currency, price.StringFixed(2), rate)
	}
}

// line prints the label and reads one trimmed line of input.
func (p *Prompter) line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// number re-prompts until the input parses as a decimal and check returns
// no message.
func (p *Prompter) number(label string, check func(decimal.Decimal) string) (decimal.Decimal, error) {
	for {
		raw, err := p.line(label)
		if err != nil {
			return decimal.Zero, err
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a valid number")
			continue
		}
		if msg := check(d); msg != "" {
			fmt.Fprintln(p.out, msg)
			continue
		}
		return d, nil
	}
}

// taxRate reads a percentage in [0,100]. Empty input selects the default.
func (p *Prompter) taxRate() (decimal.Decimal, error) {
	for {
		raw, err := p.line("Tax rate (% - press Enter for 18%): ")
		if err != nil {
			return decimal.Zero, err
		}
		if raw == "" {
			return invoice.DefaultTaxRate, nil
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a valid number")
			continue
		}
		if d.IsNegative() || d.GreaterThan(hundred) {
			fmt.Fprintln(p.out, "Tax rate must be between 0% and 100%")
			continue
		}
		return d, nil
	}
}
