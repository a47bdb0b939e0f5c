// cmd/main.go

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/invoice-tools/invoicegen/pkg/invoice"
	"github.com/invoice-tools/invoicegen/pkg/pdf"
	"github.com/invoice-tools/invoicegen/pkg/prompt"
)

func main() {
	app := &cli.App{
		Name:  "invoicegen",
		Usage: "interactively build a styled PDF invoice",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output-dir",
				Aliases: []string{"o"},
				Value:   "invoices",
				Usage:   "directory for generated PDFs",
				EnvVars: []string{"INVOICE_OUTPUT_DIR"},
			},
			&cli.StringFlag{
				Name:    "currency",
				Value:   pdf.DefaultCurrency,
				Usage:   "currency marker printed before amounts",
				EnvVars: []string{"INVOICE_CURRENCY"},
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	logger := newLogger(c.Bool("verbose"))
	outputDir := c.String("output-dir")
	currency := c.String("currency")

	fmt.Println("=== Invoice Generator ===")

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	logger.Debug().Str("dir", outputDir).Msg("output directory ready")

	p := prompt.New(os.Stdin, os.Stdout, currency)

	company, err := p.CompanyInfo()
	if err != nil {
		return err
	}

	inv := &invoice.Invoice{Company: company, Date: time.Now()}
	if err := p.Items(inv); err != nil {
		return err
	}

	customer, err := p.CustomerInfo()
	if err != nil {
		return err
	}
	inv.Customer = customer

	number, err := invoice.NextNumber(outputDir, inv.Date)
	if err != nil {
		return err
	}
	inv.Number = number
	logger.Debug().Str("number", number).Int("items", len(inv.Items)).Msg("invoice assembled")

	fmt.Println("\nGenerating invoice...")
	path := filepath.Join(outputDir, invoice.Filename(number))
	if err := pdf.New(currency).RenderFile(path, inv); err != nil {
		return fmt.Errorf("generating invoice: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	totals := inv.Totals()
	logger.Info().
		Str("number", number).
		Str("grand_total", totals.GrandTotal.StringFixed(2)).
		Str("file", abs).
		Msg("invoice generated")
	fmt.Printf("\nInvoice generated successfully: %s\n", abs)
	return nil
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
