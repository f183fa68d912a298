package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tradebook/internal/domain"
	"tradebook/internal/reconcile"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestFormatCurrency(t *testing.T) {
	cases := map[string]string{
		"0":        "$0.00",
		"1234.5":   "$1,234.50",
		"-12":      "-$12.00",
		"0.005":    "$0.01",
		"99.994":   "$99.99",
		"-1000000": "-$1,000,000.00",
	}
	for in, want := range cases {
		require.Equal(t, want, formatCurrency(decimal.RequireFromString(in)), in)
	}
}

func TestFormatCompactCurrency(t *testing.T) {
	cases := map[string]string{
		"999.5":    "$999.50",
		"1000":     "$1.0K",
		"12345":    "$12.3K",
		"-2500":    "-$2.5K",
		"1500000":  "$1.50M",
		"-3210000": "-$3.21M",
	}
	for in, want := range cases {
		require.Equal(t, want, formatCompactCurrency(decimal.RequireFromString(in)), in)
	}
}

func TestFormatDate(t *testing.T) {
	require.Equal(t, "-", formatDate(nil))
	d := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	require.Equal(t, "2024-03-09", formatDate(&d))
}

const ledgerCSV = `"Transactions for account XXXX-1234 as of 03/31/2024"
"Date","Action","Symbol","Description","Quantity","Price","Fees & Comm","Amount"
"01/03/2024","Buy","AAPL","APPLE INC","10","$100.00","","-$1,000.00"
"01/04/2024","Buy","AAPL","APPLE INC","10","$110.00","","-$1,100.00"
"01/05/2024","Sell","AAPL","APPLE INC","5","$120.00","$0.05","$599.95"
"01/05/2024","Qualified Dividend","MSFT","MICROSOFT CORP","","","","$7.50"
"Transactions Total","","","","","","","-$1,492.55"
`

func writeLedger(t *testing.T) string {
	name := filepath.Join(t.TempDir(), "history.csv")
	require.NoError(t, os.WriteFile(name, []byte(ledgerCSV), 0o600))
	return name
}

func TestWritePositionsMarkdown(t *testing.T) {
	file, err := loadLedger(writeLedger(t))
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, writePositionsMarkdown(buf, reconcile.Reconcile(file.Transactions)))
	out := buf.String()

	require.True(t, strings.HasPrefix(out, "# Open Positions"), out)
	require.Contains(t, out, "| AAPL | EQUITY | long | 15 | $105.00 | $1,575.00 | 2024-01-03 | 2024-01-05 | 3 |")
	require.Contains(t, out, "1 open positions, $1,575.00 total cost. 3 equity and 0 option transactions replayed, 1 ignored.")
}

func TestWritePositionsJSON(t *testing.T) {
	file, err := loadLedger(writeLedger(t))
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, writePositionsJSON(buf, reconcile.OpenPositions(file.Transactions)))

	var positions []domain.OpenPosition
	require.NoError(t, json.Unmarshal(buf.Bytes(), &positions))
	require.Len(t, positions, 1)
	require.Equal(t, "AAPL", positions[0].Symbol)
	require.True(t, decimal.NewFromInt(1575).Equal(positions[0].TotalCost))
}

func TestWriteSummaryMarkdown(t *testing.T) {
	file, err := loadLedger(writeLedger(t))
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, writeSummaryMarkdown(buf, file.Transactions))
	out := buf.String()

	require.Contains(t, out, "| Transactions | 4 |")
	require.Contains(t, out, "| Period | 2024-01-03 to 2024-01-05 |")
	require.Contains(t, out, "| Total Volume | $2.7K |")
	require.Contains(t, out, "| Buy | trade | 2 | -$2,100.00 | $0.00 |")
	require.Contains(t, out, "| Qualified Dividend | income | 1 | $7.50 | $0.00 |")
}

func TestWriteSymbolsMarkdown(t *testing.T) {
	file, err := loadLedger(writeLedger(t))
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, writeSymbolsMarkdown(buf, file.Transactions, 1))
	out := buf.String()

	require.Contains(t, out, "| AAPL | 3 | 20 | 5 | $105.00 | $120.00 | -$1,500.05 | $0.05 |")
	require.NotContains(t, out, "MSFT")
}
