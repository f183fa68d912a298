// Package summary holds the simple, order-independent aggregations over
// a brokerage ledger: totals, per-symbol and per-action breakdowns, and
// daily volume.
package summary

import (
	"sort"
	"strings"
	"time"

	"tradebook/internal/domain"
	"tradebook/internal/util"

	"github.com/shopspring/decimal"
)

type DateRange struct {
	From *time.Time
	To   *time.Time
}

type TransactionSummary struct {
	TotalTransactions int
	TotalVolume       decimal.Decimal
	TotalBuyVolume    decimal.Decimal
	TotalSellVolume   decimal.Decimal
	TotalFees         decimal.Decimal
	NetCashFlow       decimal.Decimal
	UniqueSymbols     int
	DateRange         DateRange
	ActionBreakdown   map[string]int
}

func isBuy(action string) bool {
	return strings.Contains(strings.ToLower(action), "buy")
}

func isSell(action string) bool {
	return strings.Contains(strings.ToLower(action), "sell")
}

// Summarize totals the whole ledger. Volumes are gross: the absolute
// cash amount of every line.
func Summarize(txs []domain.Transaction) TransactionSummary {
	out := TransactionSummary{
		TotalTransactions: len(txs),
		TotalVolume:       decimal.Zero,
		TotalBuyVolume:    decimal.Zero,
		TotalSellVolume:   decimal.Zero,
		TotalFees:         decimal.Zero,
		NetCashFlow:       decimal.Zero,
		ActionBreakdown:   map[string]int{},
	}
	symbols := util.NewSet()

	for _, t := range txs {
		out.ActionBreakdown[t.Action]++

		absAmount := t.Amount.Abs()
		out.TotalVolume = out.TotalVolume.Add(absAmount)
		if isBuy(t.Action) {
			out.TotalBuyVolume = out.TotalBuyVolume.Add(absAmount)
		} else if isSell(t.Action) {
			out.TotalSellVolume = out.TotalSellVolume.Add(absAmount)
		}

		out.TotalFees = out.TotalFees.Add(t.FeesOrZero())
		out.NetCashFlow = out.NetCashFlow.Add(t.Amount)

		if t.Symbol != "" {
			symbols.Add(t.Symbol)
		}

		if d, ok := t.TradeDate(); ok {
			if out.DateRange.From == nil || d.Before(*out.DateRange.From) {
				from := d
				out.DateRange.From = &from
			}
			if out.DateRange.To == nil || d.After(*out.DateRange.To) {
				to := d
				out.DateRange.To = &to
			}
		}
	}
	out.UniqueSymbols = symbols.Length()

	return out
}

type ActionSummary struct {
	Action           string
	TotalAmount      decimal.Decimal
	TransactionCount int
	TotalFees        decimal.Decimal
}

// ActionSummaries groups the ledger by raw action string, most frequent
// first.
func ActionSummaries(txs []domain.Transaction) []ActionSummary {
	byAction := map[string]*ActionSummary{}
	for _, t := range txs {
		s, ok := byAction[t.Action]
		if !ok {
			s = &ActionSummary{
				Action:      t.Action,
				TotalAmount: decimal.Zero,
				TotalFees:   decimal.Zero,
			}
			byAction[t.Action] = s
		}
		s.TotalAmount = s.TotalAmount.Add(t.Amount)
		s.TotalFees = s.TotalFees.Add(t.FeesOrZero())
		s.TransactionCount++
	}

	out := make([]ActionSummary, 0, len(byAction))
	for _, s := range byAction {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TransactionCount != out[j].TransactionCount {
			return out[i].TransactionCount > out[j].TransactionCount
		}
		return out[i].Action < out[j].Action
	})
	return out
}

type DailyVolume struct {
	Date             time.Time
	BuyVolume        decimal.Decimal
	SellVolume       decimal.Decimal
	NetVolume        decimal.Decimal
	TransactionCount int
}

// DailyVolumes buckets buy and sell volume by trade date. Lines with an
// unreadable date are left out.
func DailyVolumes(txs []domain.Transaction) []DailyVolume {
	byDate := map[time.Time]*DailyVolume{}
	for _, t := range txs {
		d, ok := t.TradeDate()
		if !ok {
			continue
		}
		v, ok := byDate[d]
		if !ok {
			v = &DailyVolume{
				Date:       d,
				BuyVolume:  decimal.Zero,
				SellVolume: decimal.Zero,
			}
			byDate[d] = v
		}
		v.TransactionCount++
		if isBuy(t.Action) {
			v.BuyVolume = v.BuyVolume.Add(t.Amount.Abs())
		} else if isSell(t.Action) {
			v.SellVolume = v.SellVolume.Add(t.Amount.Abs())
		}
	}

	out := make([]DailyVolume, 0, len(byDate))
	for _, v := range byDate {
		v.NetVolume = v.SellVolume.Sub(v.BuyVolume)
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

func UniqueSymbols(txs []domain.Transaction) []string {
	s := util.NewSet()
	for _, t := range txs {
		if t.Symbol != "" {
			s.Add(t.Symbol)
		}
	}
	return s.List()
}

func UniqueActions(txs []domain.Transaction) []string {
	s := util.NewSet()
	for _, t := range txs {
		s.Add(t.Action)
	}
	return s.List()
}
