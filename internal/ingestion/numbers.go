package ingestion

import (
	"strings"

	"github.com/shopspring/decimal"
)

func numberStrToDecimal(in string) (decimal.Decimal, error) {
	s := strings.ReplaceAll(in, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	return decimal.NewFromString(strings.TrimSpace(s))
}

// parseAmount reads a signed cash value like "-$1,234.56". Blank or
// garbled amounts are zero.
func parseAmount(in string) decimal.Decimal {
	if strings.TrimSpace(in) == "" {
		return decimal.Zero
	}
	d, err := numberStrToDecimal(in)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseOptional reads a quantity, price or fee, returning nil when the
// broker left the field blank or it isn't a number.
func parseOptional(in string) *decimal.Decimal {
	if strings.TrimSpace(in) == "" {
		return nil
	}
	d, err := numberStrToDecimal(in)
	if err != nil {
		return nil
	}
	return &d
}
