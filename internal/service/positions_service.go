package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"time"

	tradebook_errors "tradebook/internal"
	"tradebook/internal/db/models/postgres/public/model"
	"tradebook/internal/domain"
	"tradebook/internal/ingestion"
	"tradebook/internal/logger"
	"tradebook/internal/metrics"
	"tradebook/internal/reconcile"
	"tradebook/internal/repository"
	"tradebook/internal/summary"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

const CacheCleanupInterval = 30 * time.Minute

// Analysis is everything derived from one uploaded ledger.
type Analysis struct {
	Name         string
	File         *domain.TransactionFile
	Reconciled   reconcile.Result
	Summary      summary.TransactionSummary
	Symbols      []summary.SymbolSummary
	Actions      []summary.ActionSummary
	DailyVolumes []summary.DailyVolume
}

// copy returns an Analysis whose slices and maps are its own, so a cached
// result can be handed out without callers seeing each other's changes.
func (a *Analysis) copy() *Analysis {
	out := *a
	if a.File != nil {
		file := *a.File
		file.Transactions = slices.Clone(a.File.Transactions)
		out.File = &file
	}
	out.Reconciled.Positions = slices.Clone(a.Reconciled.Positions)
	out.Summary.ActionBreakdown = maps.Clone(a.Summary.ActionBreakdown)
	out.Symbols = slices.Clone(a.Symbols)
	out.Actions = slices.Clone(a.Actions)
	out.DailyVolumes = slices.Clone(a.DailyVolumes)
	return &out
}

//go:generate mockgen -source=positions_service.go -destination=mocks/positions_service.go -package=mock_service

type PositionsService interface {
	Parse(name string, raw []byte) (*domain.TransactionFile, error)
	Analyze(ctx context.Context, name string, raw []byte) (*Analysis, error)
	CreatePortfolio(tx *sql.Tx, name string) (*model.Portfolio, error)
	SyncPortfolio(ctx context.Context, tx *sql.Tx, portfolioID uuid.UUID, txs []domain.Transaction) ([]domain.OpenPosition, error)
	ListPortfolio(tx *sql.Tx, portfolioID uuid.UUID) ([]domain.OpenPosition, error)
}

type positionsServiceHandler struct {
	PortfolioRepository repository.PortfolioRepository
	PositionsRepository repository.PositionsRepository
	Cache               *cache.Cache
	Metrics             *metrics.Metrics
}

func NewPositionsService(
	portfolioRepository repository.PortfolioRepository,
	positionsRepository repository.PositionsRepository,
	analysisCache *cache.Cache,
	m *metrics.Metrics,
) PositionsService {
	return positionsServiceHandler{
		PortfolioRepository: portfolioRepository,
		PositionsRepository: positionsRepository,
		Cache:               analysisCache,
		Metrics:             m,
	}
}

// cacheKey includes the extension since it decides how the bytes are
// read.
func cacheKey(name string, raw []byte) string {
	sum := sha256.Sum256(raw)
	return strings.ToLower(filepath.Ext(name)) + ":" + hex.EncodeToString(sum[:])
}

func (h positionsServiceHandler) Parse(name string, raw []byte) (*domain.TransactionFile, error) {
	file, err := ingestion.Parse(name, bytes.NewReader(raw))
	if err != nil {
		h.Metrics.AnalyzeErrors.WithLabelValues("parse").Inc()
		return nil, tradebook_errors.ErrInvalidLedger{Name: name, Err: err}
	}
	return file, nil
}

func (h positionsServiceHandler) Analyze(ctx context.Context, name string, raw []byte) (*Analysis, error) {
	key := cacheKey(name, raw)
	if cached, found := h.Cache.Get(key); found {
		h.Metrics.CacheHits.Inc()
		return cached.(*Analysis).copy(), nil
	}
	h.Metrics.CacheMisses.Inc()

	start := time.Now()
	file, err := h.Parse(name, raw)
	if err != nil {
		return nil, err
	}

	txs := file.Transactions
	analysis := &Analysis{
		Name:         name,
		File:         file,
		Reconciled:   h.reconcile(ctx, txs),
		Summary:      summary.Summarize(txs),
		Symbols:      summary.SymbolSummaries(txs),
		Actions:      summary.ActionSummaries(txs),
		DailyVolumes: summary.DailyVolumes(txs),
	}
	h.Metrics.AnalyzeDuration.Observe(time.Since(start).Seconds())

	h.Cache.Set(key, analysis, cache.DefaultExpiration)
	return analysis.copy(), nil
}

func (h positionsServiceHandler) reconcile(ctx context.Context, txs []domain.Transaction) reconcile.Result {
	result := reconcile.Reconcile(txs)

	h.Metrics.TransactionsTotal.WithLabelValues(string(domain.InstrumentClass_Equity)).Add(float64(result.EquityTransactions))
	h.Metrics.TransactionsTotal.WithLabelValues(string(domain.InstrumentClass_Option)).Add(float64(result.OptionTransactions))
	h.Metrics.TransactionsTotal.WithLabelValues(string(domain.InstrumentClass_Ignored)).Add(float64(result.Ignored))
	h.Metrics.PositionsOpen.Set(float64(len(result.Positions)))

	logger.FromContext(ctx).Info("reconciled ledger",
		"transactions", len(txs),
		"equity", result.EquityTransactions,
		"option", result.OptionTransactions,
		"ignored", result.Ignored,
		"openPositions", len(result.Positions),
	)
	return result
}

func (h positionsServiceHandler) CreatePortfolio(tx *sql.Tx, name string) (*model.Portfolio, error) {
	return h.PortfolioRepository.Add(tx, name)
}

// SyncPortfolio replaces the stored positions of a portfolio with the
// ones implied by its full transaction history.
func (h positionsServiceHandler) SyncPortfolio(ctx context.Context, tx *sql.Tx, portfolioID uuid.UUID, txs []domain.Transaction) ([]domain.OpenPosition, error) {
	_, err := h.PortfolioRepository.Get(tx, portfolioID)
	if err != nil {
		return nil, err
	}

	ctx = logger.WithContext(ctx, "portfolioId", portfolioID.String())
	result := h.reconcile(ctx, txs)

	err = h.PositionsRepository.DeleteAll(tx, portfolioID)
	if err != nil {
		h.Metrics.AnalyzeErrors.WithLabelValues("persist").Inc()
		return nil, fmt.Errorf("failed to clear positions: %w", err)
	}
	err = h.PositionsRepository.Add(tx, portfolioID, result.Positions)
	if err != nil {
		h.Metrics.AnalyzeErrors.WithLabelValues("persist").Inc()
		return nil, fmt.Errorf("failed to save positions: %w", err)
	}

	return result.Positions, nil
}

func (h positionsServiceHandler) ListPortfolio(tx *sql.Tx, portfolioID uuid.UUID) ([]domain.OpenPosition, error) {
	_, err := h.PortfolioRepository.Get(tx, portfolioID)
	if err != nil {
		return nil, err
	}
	return h.PositionsRepository.List(tx, portfolioID)
}
