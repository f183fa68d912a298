package main

import (
	"fmt"
	"os"
	"time"

	"tradebook/internal/domain"
	"tradebook/internal/ingestion"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

var usd = money.GetCurrency(money.USD)

// formatCurrency renders d as US dollars rounded to the cent, e.g.
// "-$1,234.50".
func formatCurrency(d decimal.Decimal) string {
	cents := d.Shift(int32(usd.Fraction)).Round(0).IntPart()
	return usd.Formatter().Format(cents)
}

// formatCompactCurrency abbreviates thousands and millions, e.g. "$12.3K".
func formatCompactCurrency(d decimal.Decimal) string {
	abs := d.Abs()
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}

	switch {
	case abs.GreaterThanOrEqual(decimal.NewFromInt(1_000_000)):
		return fmt.Sprintf("%s%s%sM", sign, usd.Grapheme, abs.Div(decimal.NewFromInt(1_000_000)).StringFixed(2))
	case abs.GreaterThanOrEqual(decimal.NewFromInt(1_000)):
		return fmt.Sprintf("%s%s%sK", sign, usd.Grapheme, abs.Div(decimal.NewFromInt(1_000)).StringFixed(1))
	}
	return formatCurrency(d)
}

func formatQuantity(d decimal.Decimal) string {
	return d.Round(4).String()
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02")
}

func loadLedger(name string) (*domain.TransactionFile, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	file, err := ingestion.Parse(name, f)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", name, err)
	}
	return file, nil
}
