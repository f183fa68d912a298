package resolver

import (
	"context"
	"errors"
	"testing"
	"time"

	api_types "tradebook/api-types"
	tradebook_errors "tradebook/internal"
	"tradebook/internal/domain"
	"tradebook/internal/reconcile"
	"tradebook/internal/service"
	mock_service "tradebook/internal/service/mocks"
	"tradebook/internal/summary"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestPositionsToApi(t *testing.T) {
	first := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	last := time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC)
	in := []domain.OpenPosition{
		{
			Symbol:         "AAPL",
			Description:    "APPLE INC",
			Class:          domain.InstrumentClass_Equity,
			Side:           domain.Side_Long,
			Quantity:       decimal.NewFromInt(25),
			AvgCostBasis:   decimal.RequireFromString("106.5"),
			TotalCost:      decimal.RequireFromString("2662.5"),
			FirstTradeDate: &first,
			LastTradeDate:  &last,
			TradeCount:     3,
		},
		{
			Symbol:       "TSLA",
			Class:        domain.InstrumentClass_Equity,
			Side:         domain.Side_Short,
			Quantity:     decimal.NewFromInt(3),
			AvgCostBasis: decimal.NewFromInt(200),
			TotalCost:    decimal.NewFromInt(600),
			TradeCount:   1,
		},
	}

	firstStr, lastStr := "2024-01-03", "2024-02-14"
	expected := []api_types.OpenPosition{
		{
			Symbol:         "AAPL",
			Description:    "APPLE INC",
			InstrumentType: "EQUITY",
			Side:           "long",
			Quantity:       25,
			AvgCostBasis:   106.5,
			TotalCost:      2662.5,
			FirstTradeDate: &firstStr,
			LastTradeDate:  &lastStr,
			TradeCount:     3,
		},
		{
			Symbol:         "TSLA",
			InstrumentType: "EQUITY",
			Side:           "short",
			Quantity:       3,
			AvgCostBasis:   200,
			TotalCost:      600,
			TradeCount:     1,
		},
	}

	if diff := cmp.Diff(expected, positionsToApi(in)); diff != "" {
		t.Fatalf("unexpected api positions (-want +got):\n%s", diff)
	}
	require.Equal(t, []api_types.OpenPosition{}, positionsToApi(nil))
}

func TestAnalyze(t *testing.T) {
	ctrl := gomock.NewController(t)
	positionsService := mock_service.NewMockPositionsService(ctrl)
	r := NewResolver(nil, positionsService)

	day := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	avg := decimal.NewFromInt(100)
	positionsService.EXPECT().Analyze(gomock.Any(), "ledger.json", []byte("{}")).Return(&service.Analysis{
		Name: "ledger.json",
		Reconciled: reconcile.Result{
			Positions: []domain.OpenPosition{{
				Symbol:       "AAPL",
				Class:        domain.InstrumentClass_Equity,
				Side:         domain.Side_Long,
				Quantity:     decimal.NewFromInt(10),
				AvgCostBasis: decimal.NewFromInt(100),
				TotalCost:    decimal.NewFromInt(1000),
				TradeCount:   1,
			}},
			EquityTransactions: 1,
			Ignored:            2,
		},
		Summary: summary.TransactionSummary{
			TotalTransactions: 3,
			TotalVolume:       decimal.NewFromInt(1010),
			DateRange:         summary.DateRange{From: &day, To: &day},
			ActionBreakdown:   map[string]int{"Buy": 1, "Cash Dividend": 2},
		},
		Symbols: []summary.SymbolSummary{{Symbol: "AAPL", AvgBuyPrice: &avg, TransactionCount: 1}},
		Actions: []summary.ActionSummary{{Action: "Buy", TotalAmount: decimal.NewFromInt(-1000), TransactionCount: 1}},
		DailyVolumes: []summary.DailyVolume{{
			Date:             day,
			BuyVolume:        decimal.NewFromInt(1000),
			NetVolume:        decimal.NewFromInt(-1000),
			TransactionCount: 1,
		}},
	}, nil)

	resp, err := r.Analyze(context.Background(), "ledger.json", []byte("{}"))
	require.NoError(t, err)
	require.Len(t, resp.Positions, 1)
	require.Equal(t, 2, resp.IgnoredCount)
	require.Equal(t, float64(1010), resp.Summary.TotalVolume)
	require.Equal(t, "2024-01-03", *resp.Summary.FromDate)
	require.Equal(t, float64(100), *resp.Symbols[0].AvgBuyPrice)
	require.Nil(t, resp.Symbols[0].AvgSellPrice)
	require.Equal(t, "2024-01-03", resp.DailyVolumes[0].Date)
	require.Equal(t, float64(-1000), resp.Actions[0].TotalAmount)
}

func TestSyncPortfolio_invalidLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	positionsService := mock_service.NewMockPositionsService(ctrl)
	// no db: a ledger that can't be read must fail before a transaction is opened
	r := NewResolver(nil, positionsService)

	parseErr := tradebook_errors.ErrInvalidLedger{Name: "ledger.txt", Err: errors.New("unrecognized transaction file format")}
	positionsService.EXPECT().Parse("ledger.txt", []byte("nope")).Return(nil, parseErr)

	_, err := r.SyncPortfolio(context.Background(), uuid.New(), "ledger.txt", []byte("nope"))
	require.Error(t, err)
	require.True(t, errors.As(err, &tradebook_errors.ErrInvalidLedger{}))
}
