package summary

import (
	"fmt"
	"sort"

	"tradebook/internal/domain"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

type SymbolSummary struct {
	Symbol            string
	Description       string
	TotalBuyQuantity  decimal.Decimal
	TotalSellQuantity decimal.Decimal
	BuyAmount         decimal.Decimal
	SellAmount        decimal.Decimal
	NetAmount         decimal.Decimal
	TotalFees         decimal.Decimal
	TransactionCount  int
	// nil when no line for the symbol carried an explicit price
	AvgBuyPrice  *decimal.Decimal
	AvgSellPrice *decimal.Decimal
	// median quantity per buy/sell line, zero when there were none
	MedianTradeSize decimal.Decimal
}

type symbolAccumulator struct {
	summary    SymbolSummary
	buyPrices  stats.Float64Data
	sellPrices stats.Float64Data
	tradeSizes stats.Float64Data
}

func symbolKey(t domain.Transaction) string {
	if t.Symbol != "" {
		return t.Symbol
	}
	return fmt.Sprintf("[%s]", t.Action)
}

// SymbolSummaries groups the ledger by symbol. Lines with no symbol are
// grouped under "[<action>]". For lines that are neither buys nor sells,
// incoming cash counts as sell amount and outgoing cash as buy amount.
func SymbolSummaries(txs []domain.Transaction) []SymbolSummary {
	bySymbol := map[string]*symbolAccumulator{}
	for _, t := range txs {
		key := symbolKey(t)
		acc, ok := bySymbol[key]
		if !ok {
			acc = &symbolAccumulator{
				summary: SymbolSummary{
					Symbol:            key,
					Description:       t.Description,
					TotalBuyQuantity:  decimal.Zero,
					TotalSellQuantity: decimal.Zero,
					BuyAmount:         decimal.Zero,
					SellAmount:        decimal.Zero,
					TotalFees:         decimal.Zero,
				},
			}
			bySymbol[key] = acc
		}

		s := &acc.summary
		s.TransactionCount++
		s.TotalFees = s.TotalFees.Add(t.FeesOrZero())

		switch {
		case isBuy(t.Action):
			s.TotalBuyQuantity = s.TotalBuyQuantity.Add(t.QuantityOrZero())
			s.BuyAmount = s.BuyAmount.Add(t.Amount.Abs())
			if t.Price != nil && !t.Price.IsZero() {
				acc.buyPrices = append(acc.buyPrices, t.Price.InexactFloat64())
			}
			if t.Quantity != nil {
				acc.tradeSizes = append(acc.tradeSizes, t.Quantity.InexactFloat64())
			}
		case isSell(t.Action):
			s.TotalSellQuantity = s.TotalSellQuantity.Add(t.QuantityOrZero())
			s.SellAmount = s.SellAmount.Add(t.Amount.Abs())
			if t.Price != nil && !t.Price.IsZero() {
				acc.sellPrices = append(acc.sellPrices, t.Price.InexactFloat64())
			}
			if t.Quantity != nil {
				acc.tradeSizes = append(acc.tradeSizes, t.Quantity.InexactFloat64())
			}
		default:
			if t.Amount.IsPositive() {
				s.SellAmount = s.SellAmount.Add(t.Amount)
			} else {
				s.BuyAmount = s.BuyAmount.Add(t.Amount.Abs())
			}
		}
	}

	out := make([]SymbolSummary, 0, len(bySymbol))
	for _, acc := range bySymbol {
		s := acc.summary
		s.NetAmount = s.SellAmount.Sub(s.BuyAmount)
		s.AvgBuyPrice = mean(acc.buyPrices)
		s.AvgSellPrice = mean(acc.sellPrices)
		s.MedianTradeSize = decimal.Zero
		if median, err := acc.tradeSizes.Median(); err == nil {
			s.MedianTradeSize = decimal.NewFromFloat(median)
		}
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].TransactionCount != out[j].TransactionCount {
			return out[i].TransactionCount > out[j].TransactionCount
		}
		return out[i].Symbol < out[j].Symbol
	})
	return out
}

func mean(data stats.Float64Data) *decimal.Decimal {
	m, err := data.Mean()
	if err != nil {
		return nil
	}
	d := decimal.NewFromFloat(m)
	return &d
}
