package service

import (
	"context"
	"errors"
	"testing"
	"time"

	tradebook_errors "tradebook/internal"
	"tradebook/internal/db/models/postgres/public/model"
	"tradebook/internal/domain"
	"tradebook/internal/metrics"
	mock_repository "tradebook/internal/repository/mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const ledgerJSON = `{
  "FromDate": "01/01/2024",
  "ToDate": "03/31/2024",
  "TotalTransactionsAmount": "-$1,500.00",
  "BrokerageTransactions": [
    {"Date": "01/03/2024", "Action": "Buy", "Symbol": "AAPL", "Description": "APPLE INC", "Quantity": "10", "Price": "$100.00", "Fees & Comm": "", "Amount": "-$1,000.00"},
    {"Date": "01/04/2024", "Action": "Buy", "Symbol": "AAPL", "Description": "APPLE INC", "Quantity": "5", "Price": "$100.00", "Fees & Comm": "", "Amount": "-$500.00"},
    {"Date": "01/05/2024", "Action": "Qualified Dividend", "Symbol": "AAPL", "Description": "APPLE INC", "Quantity": "", "Price": "", "Fees & Comm": "", "Amount": "$2.40"}
  ]
}`

type serviceFixture struct {
	portfolioRepository *mock_repository.MockPortfolioRepository
	positionsRepository *mock_repository.MockPositionsRepository
	metrics             *metrics.Metrics
	service             PositionsService
}

func newFixture(t *testing.T) serviceFixture {
	ctrl := gomock.NewController(t)
	f := serviceFixture{
		portfolioRepository: mock_repository.NewMockPortfolioRepository(ctrl),
		positionsRepository: mock_repository.NewMockPositionsRepository(ctrl),
		metrics:             metrics.NewMetrics(nil),
	}
	f.service = NewPositionsService(
		f.portfolioRepository,
		f.positionsRepository,
		cache.New(time.Minute, time.Minute),
		f.metrics,
	)
	return f
}

func TestAnalyze(t *testing.T) {
	t.Run("reconciles and summarizes", func(t *testing.T) {
		f := newFixture(t)
		analysis, err := f.service.Analyze(context.Background(), "transactions.json", []byte(ledgerJSON))
		require.NoError(t, err)

		require.Equal(t, "transactions.json", analysis.Name)
		require.Equal(t, "01/01/2024", analysis.File.FromDate)
		require.Len(t, analysis.Reconciled.Positions, 1)
		p := analysis.Reconciled.Positions[0]
		require.Equal(t, "AAPL", p.Symbol)
		require.True(t, decimal.NewFromInt(15).Equal(p.Quantity))
		require.True(t, decimal.NewFromInt(1500).Equal(p.TotalCost))
		require.Equal(t, 2, analysis.Reconciled.EquityTransactions)
		require.Equal(t, 1, analysis.Reconciled.Ignored)

		require.Equal(t, 3, analysis.Summary.TotalTransactions)
		require.Len(t, analysis.Symbols, 1)
		require.Len(t, analysis.Actions, 2)
		require.Len(t, analysis.DailyVolumes, 3)

		require.Equal(t, float64(2), testutil.ToFloat64(f.metrics.TransactionsTotal.WithLabelValues("EQUITY")))
		require.Equal(t, float64(1), testutil.ToFloat64(f.metrics.PositionsOpen))
	})

	t.Run("second call is cached", func(t *testing.T) {
		f := newFixture(t)
		first, err := f.service.Analyze(context.Background(), "a.json", []byte(ledgerJSON))
		require.NoError(t, err)
		second, err := f.service.Analyze(context.Background(), "a.json", []byte(ledgerJSON))
		require.NoError(t, err)

		require.NotSame(t, first, second)
		require.Equal(t, first, second)
		require.Equal(t, float64(1), testutil.ToFloat64(f.metrics.CacheHits))
		require.Equal(t, float64(1), testutil.ToFloat64(f.metrics.CacheMisses))
	})

	t.Run("changes to a result do not reach the cache", func(t *testing.T) {
		f := newFixture(t)
		first, err := f.service.Analyze(context.Background(), "a.json", []byte(ledgerJSON))
		require.NoError(t, err)

		first.Summary.ActionBreakdown["Buy"] = 99
		first.Reconciled.Positions[0].Symbol = "MSFT"
		first.File.Transactions[0].Action = "Sell"
		first.Symbols = nil

		second, err := f.service.Analyze(context.Background(), "a.json", []byte(ledgerJSON))
		require.NoError(t, err)
		require.Equal(t, 2, second.Summary.ActionBreakdown["Buy"])
		require.Equal(t, "AAPL", second.Reconciled.Positions[0].Symbol)
		require.Equal(t, "Buy", second.File.Transactions[0].Action)
		require.Len(t, second.Symbols, 1)

		second.Summary.ActionBreakdown["Buy"] = 7
		third, err := f.service.Analyze(context.Background(), "a.json", []byte(ledgerJSON))
		require.NoError(t, err)
		require.Equal(t, 2, third.Summary.ActionBreakdown["Buy"])
	})

	t.Run("unreadable ledger", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.Analyze(context.Background(), "a.json", []byte("{not json"))
		require.Error(t, err)
		require.True(t, errors.As(err, &tradebook_errors.ErrInvalidLedger{}), err)
		require.Equal(t, float64(1), testutil.ToFloat64(f.metrics.AnalyzeErrors.WithLabelValues("parse")))
	})
}

func TestCacheKey(t *testing.T) {
	require.Equal(t, cacheKey("a.json", []byte("x")), cacheKey("b.JSON", []byte("x")))
	require.NotEqual(t, cacheKey("a.json", []byte("x")), cacheKey("a.csv", []byte("x")))
	require.NotEqual(t, cacheKey("a.json", []byte("x")), cacheKey("a.json", []byte("y")))
}

func TestSyncPortfolio(t *testing.T) {
	portfolioID := uuid.New()
	txs := []domain.Transaction{
		{Date: "01/03/2024", Action: "Buy", Symbol: "AAPL", Quantity: domain.DecimalPtr(decimal.NewFromInt(10)), Price: domain.DecimalPtr(decimal.NewFromInt(100)), Amount: decimal.NewFromInt(-1000)},
		{Date: "01/04/2024", Action: "Sell", Symbol: "AAPL", Quantity: domain.DecimalPtr(decimal.NewFromInt(10)), Price: domain.DecimalPtr(decimal.NewFromInt(110)), Amount: decimal.NewFromInt(1100)},
		{Date: "01/05/2024", Action: "Sell Short", Symbol: "TSLA", Quantity: domain.DecimalPtr(decimal.NewFromInt(3)), Price: domain.DecimalPtr(decimal.NewFromInt(200)), Amount: decimal.NewFromInt(600)},
	}

	t.Run("replaces the stored snapshot", func(t *testing.T) {
		f := newFixture(t)
		gomock.InOrder(
			f.portfolioRepository.EXPECT().Get(gomock.Any(), portfolioID).Return(&model.Portfolio{PortfolioID: portfolioID}, nil),
			f.positionsRepository.EXPECT().DeleteAll(gomock.Any(), portfolioID).Return(nil),
			f.positionsRepository.EXPECT().Add(gomock.Any(), portfolioID, gomock.Len(1)).Return(nil),
		)

		positions, err := f.service.SyncPortfolio(context.Background(), nil, portfolioID, txs)
		require.NoError(t, err)
		require.Len(t, positions, 1)
		require.Equal(t, "TSLA", positions[0].Symbol)
		require.Equal(t, domain.Side_Short, positions[0].Side)
	})

	t.Run("unknown portfolio", func(t *testing.T) {
		f := newFixture(t)
		f.portfolioRepository.EXPECT().Get(gomock.Any(), portfolioID).Return(nil, tradebook_errors.ErrUnknownPortfolio{PortfolioID: portfolioID})

		_, err := f.service.SyncPortfolio(context.Background(), nil, portfolioID, txs)
		require.True(t, errors.As(err, &tradebook_errors.ErrUnknownPortfolio{}), err)
	})

	t.Run("persist failure", func(t *testing.T) {
		f := newFixture(t)
		f.portfolioRepository.EXPECT().Get(gomock.Any(), portfolioID).Return(&model.Portfolio{PortfolioID: portfolioID}, nil)
		f.positionsRepository.EXPECT().DeleteAll(gomock.Any(), portfolioID).Return(errors.New("connection reset"))

		_, err := f.service.SyncPortfolio(context.Background(), nil, portfolioID, txs)
		require.ErrorContains(t, err, "connection reset")
		require.Equal(t, float64(1), testutil.ToFloat64(f.metrics.AnalyzeErrors.WithLabelValues("persist")))
	})
}

func TestListPortfolio(t *testing.T) {
	f := newFixture(t)
	portfolioID := uuid.New()
	stored := []domain.OpenPosition{{Symbol: "AAPL", Quantity: decimal.NewFromInt(1)}}

	f.portfolioRepository.EXPECT().Get(gomock.Any(), portfolioID).Return(&model.Portfolio{PortfolioID: portfolioID}, nil)
	f.positionsRepository.EXPECT().List(gomock.Any(), portfolioID).Return(stored, nil)

	out, err := f.service.ListPortfolio(nil, portfolioID)
	require.NoError(t, err)
	require.Equal(t, stored, out)
}
