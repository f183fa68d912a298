package summary

import (
	"testing"
	"time"

	"tradebook/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func ledger() []domain.Transaction {
	return []domain.Transaction{
		{Date: "01/03/2024", Action: "Buy", Symbol: "AAPL", Description: "APPLE INC", Quantity: decPtr("10"), Price: decPtr("100"), Amount: dec("-1000"), FeesAndComm: decPtr("0.50")},
		{Date: "01/05/2024", Action: "Buy", Symbol: "AAPL", Description: "APPLE INC", Quantity: decPtr("20"), Price: decPtr("110"), Amount: dec("-2200")},
		{Date: "01/10/2024 as of 01/09/2024", Action: "Sell", Symbol: "AAPL", Description: "APPLE INC", Quantity: decPtr("5"), Price: decPtr("120"), Amount: dec("600"), FeesAndComm: decPtr("0.16")},
		{Date: "01/05/2024", Action: "Qualified Dividend", Symbol: "MSFT", Description: "MICROSOFT CORP", Amount: dec("12.50")},
		{Date: "01/02/2024", Action: "MoneyLink Transfer", Amount: dec("5000")},
		{Date: "garbage", Action: "Service Fee", Amount: dec("-3")},
	}
}

func TestSummarize(t *testing.T) {
	out := Summarize(ledger())

	require.Equal(t, 6, out.TotalTransactions)
	require.True(t, dec("8815.5").Equal(out.TotalVolume), out.TotalVolume.String())
	require.True(t, dec("3200").Equal(out.TotalBuyVolume), out.TotalBuyVolume.String())
	require.True(t, dec("600").Equal(out.TotalSellVolume), out.TotalSellVolume.String())
	require.True(t, dec("0.66").Equal(out.TotalFees), out.TotalFees.String())
	require.True(t, dec("2409.5").Equal(out.NetCashFlow), out.NetCashFlow.String())
	require.Equal(t, 2, out.UniqueSymbols)
	require.Equal(t, map[string]int{
		"Buy":                2,
		"Sell":               1,
		"Qualified Dividend": 1,
		"MoneyLink Transfer": 1,
		"Service Fee":        1,
	}, out.ActionBreakdown)

	require.NotNil(t, out.DateRange.From)
	require.NotNil(t, out.DateRange.To)
	require.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), *out.DateRange.From)
	require.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), *out.DateRange.To)
}

func TestSummarize_empty(t *testing.T) {
	out := Summarize(nil)
	require.Equal(t, 0, out.TotalTransactions)
	require.True(t, out.TotalVolume.IsZero())
	require.Nil(t, out.DateRange.From)
	require.Nil(t, out.DateRange.To)
	require.Empty(t, out.ActionBreakdown)
}

func TestSymbolSummaries(t *testing.T) {
	out := SymbolSummaries(ledger())
	require.Len(t, out, 4)

	aapl := out[0]
	require.Equal(t, "AAPL", aapl.Symbol)
	require.Equal(t, "APPLE INC", aapl.Description)
	require.Equal(t, 3, aapl.TransactionCount)
	require.True(t, dec("30").Equal(aapl.TotalBuyQuantity))
	require.True(t, dec("5").Equal(aapl.TotalSellQuantity))
	require.True(t, dec("3200").Equal(aapl.BuyAmount))
	require.True(t, dec("600").Equal(aapl.SellAmount))
	require.True(t, dec("-2600").Equal(aapl.NetAmount))
	require.True(t, dec("0.66").Equal(aapl.TotalFees))
	require.NotNil(t, aapl.AvgBuyPrice)
	require.True(t, dec("105").Equal(*aapl.AvgBuyPrice), aapl.AvgBuyPrice.String())
	require.NotNil(t, aapl.AvgSellPrice)
	require.True(t, dec("120").Equal(*aapl.AvgSellPrice))
	require.True(t, dec("10").Equal(aapl.MedianTradeSize), aapl.MedianTradeSize.String())

	// ties on count fall back to symbol order
	require.Equal(t, "MSFT", out[1].Symbol)
	require.Equal(t, "[MoneyLink Transfer]", out[2].Symbol)
	require.Equal(t, "[Service Fee]", out[3].Symbol)

	msft := out[1]
	require.True(t, dec("12.5").Equal(msft.SellAmount))
	require.True(t, dec("12.5").Equal(msft.NetAmount))
	require.Nil(t, msft.AvgBuyPrice)
	require.Nil(t, msft.AvgSellPrice)
	require.True(t, msft.MedianTradeSize.IsZero())

	fee := out[3]
	require.True(t, dec("3").Equal(fee.BuyAmount))
	require.True(t, dec("-3").Equal(fee.NetAmount))
}

func TestActionSummaries(t *testing.T) {
	out := ActionSummaries(ledger())
	require.Len(t, out, 5)
	require.Equal(t, "Buy", out[0].Action)
	require.Equal(t, 2, out[0].TransactionCount)
	require.True(t, dec("-3200").Equal(out[0].TotalAmount))
	require.True(t, dec("0.5").Equal(out[0].TotalFees))

	names := []string{}
	for _, a := range out[1:] {
		names = append(names, a.Action)
	}
	require.Equal(t, []string{"MoneyLink Transfer", "Qualified Dividend", "Sell", "Service Fee"}, names)
}

func TestDailyVolumes(t *testing.T) {
	out := DailyVolumes(ledger())
	require.Len(t, out, 4)

	require.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), out[0].Date)
	require.Equal(t, 1, out[0].TransactionCount)
	require.True(t, out[0].NetVolume.IsZero())

	require.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), out[2].Date)
	require.Equal(t, 2, out[2].TransactionCount)
	require.True(t, dec("2200").Equal(out[2].BuyVolume))
	require.True(t, dec("-2200").Equal(out[2].NetVolume))

	require.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), out[3].Date)
	require.True(t, dec("600").Equal(out[3].SellVolume))
	require.True(t, dec("600").Equal(out[3].NetVolume))
}

func TestUniqueSymbolsAndActions(t *testing.T) {
	require.Equal(t, []string{"AAPL", "MSFT"}, UniqueSymbols(ledger()))
	require.Equal(t, []string{"Buy", "MoneyLink Transfer", "Qualified Dividend", "Sell", "Service Fee"}, UniqueActions(ledger()))
}
