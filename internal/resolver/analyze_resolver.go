package resolver

import (
	"context"

	api_types "tradebook/api-types"
	"tradebook/internal/service"
	"tradebook/internal/summary"
)

func (r resolverHandler) Analyze(ctx context.Context, name string, raw []byte) (*api_types.AnalyzeResponse, error) {
	analysis, err := r.PositionsService.Analyze(ctx, name, raw)
	if err != nil {
		return nil, err
	}
	return analysisToApi(analysis), nil
}

func analysisToApi(a *service.Analysis) *api_types.AnalyzeResponse {
	return &api_types.AnalyzeResponse{
		Name:               a.Name,
		Positions:          positionsToApi(a.Reconciled.Positions),
		EquityTransactions: a.Reconciled.EquityTransactions,
		OptionTransactions: a.Reconciled.OptionTransactions,
		IgnoredCount:       a.Reconciled.Ignored,
		Summary:            transactionSummaryToApi(a.Summary),
		Symbols:            symbolSummariesToApi(a.Symbols),
		Actions:            actionSummariesToApi(a.Actions),
		DailyVolumes:       dailyVolumesToApi(a.DailyVolumes),
	}
}

func transactionSummaryToApi(s summary.TransactionSummary) api_types.TransactionSummary {
	return api_types.TransactionSummary{
		TotalTransactions: s.TotalTransactions,
		TotalVolume:       s.TotalVolume.InexactFloat64(),
		TotalBuyVolume:    s.TotalBuyVolume.InexactFloat64(),
		TotalSellVolume:   s.TotalSellVolume.InexactFloat64(),
		TotalFees:         s.TotalFees.InexactFloat64(),
		NetCashFlow:       s.NetCashFlow.InexactFloat64(),
		UniqueSymbols:     s.UniqueSymbols,
		FromDate:          formatDate(s.DateRange.From),
		ToDate:            formatDate(s.DateRange.To),
		ActionBreakdown:   s.ActionBreakdown,
	}
}

func symbolSummariesToApi(in []summary.SymbolSummary) []api_types.SymbolSummary {
	out := []api_types.SymbolSummary{}
	for _, s := range in {
		out = append(out, api_types.SymbolSummary{
			Symbol:            s.Symbol,
			Description:       s.Description,
			TotalBuyQuantity:  s.TotalBuyQuantity.InexactFloat64(),
			TotalSellQuantity: s.TotalSellQuantity.InexactFloat64(),
			BuyAmount:         s.BuyAmount.InexactFloat64(),
			SellAmount:        s.SellAmount.InexactFloat64(),
			NetAmount:         s.NetAmount.InexactFloat64(),
			TotalFees:         s.TotalFees.InexactFloat64(),
			TransactionCount:  s.TransactionCount,
			AvgBuyPrice:       optionalFloat(s.AvgBuyPrice),
			AvgSellPrice:      optionalFloat(s.AvgSellPrice),
			MedianTradeSize:   s.MedianTradeSize.InexactFloat64(),
		})
	}
	return out
}

func actionSummariesToApi(in []summary.ActionSummary) []api_types.ActionSummary {
	out := []api_types.ActionSummary{}
	for _, a := range in {
		out = append(out, api_types.ActionSummary{
			Action:           a.Action,
			TotalAmount:      a.TotalAmount.InexactFloat64(),
			TransactionCount: a.TransactionCount,
			TotalFees:        a.TotalFees.InexactFloat64(),
		})
	}
	return out
}

func dailyVolumesToApi(in []summary.DailyVolume) []api_types.DailyVolume {
	out := []api_types.DailyVolume{}
	for _, v := range in {
		out = append(out, api_types.DailyVolume{
			Date:             v.Date.Format(apiDateLayout),
			BuyVolume:        v.BuyVolume.InexactFloat64(),
			SellVolume:       v.SellVolume.InexactFloat64(),
			NetVolume:        v.NetVolume.InexactFloat64(),
			TransactionCount: v.TransactionCount,
		})
	}
	return out
}
