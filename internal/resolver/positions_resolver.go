package resolver

import (
	"context"
	"fmt"
	"time"

	api_types "tradebook/api-types"
	"tradebook/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const apiDateLayout = "2006-01-02"

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(apiDateLayout)
	return &s
}

func optionalFloat(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f := d.InexactFloat64()
	return &f
}

func positionsToApi(in []domain.OpenPosition) []api_types.OpenPosition {
	out := []api_types.OpenPosition{}
	for _, p := range in {
		out = append(out, api_types.OpenPosition{
			Symbol:         p.Symbol,
			Description:    p.Description,
			InstrumentType: string(p.Class),
			Side:           string(p.Side),
			Quantity:       p.Quantity.InexactFloat64(),
			AvgCostBasis:   p.AvgCostBasis.InexactFloat64(),
			TotalCost:      p.TotalCost.InexactFloat64(),
			FirstTradeDate: formatDate(p.FirstTradeDate),
			LastTradeDate:  formatDate(p.LastTradeDate),
			TradeCount:     p.TradeCount,
		})
	}
	return out
}

func (r resolverHandler) NewPortfolio(req api_types.NewPortfolioRequest) (*api_types.NewPortfolioResponse, error) {
	tx, err := r.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	portfolio, err := r.PositionsService.CreatePortfolio(tx, req.Name)
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, err
	}

	return &api_types.NewPortfolioResponse{
		PortfolioID: portfolio.PortfolioID.String(),
	}, nil
}

func (r resolverHandler) SyncPortfolio(ctx context.Context, portfolioID uuid.UUID, name string, raw []byte) (*api_types.PortfolioPositionsResponse, error) {
	file, err := r.PositionsService.Parse(name, raw)
	if err != nil {
		return nil, err
	}

	tx, err := r.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	positions, err := r.PositionsService.SyncPortfolio(ctx, tx, portfolioID, file.Transactions)
	if err != nil {
		return nil, fmt.Errorf("failed to sync portfolio %s: %w", portfolioID.String(), err)
	}

	err = tx.Commit()
	if err != nil {
		return nil, err
	}

	return &api_types.PortfolioPositionsResponse{
		PortfolioID: portfolioID.String(),
		Positions:   positionsToApi(positions),
	}, nil
}

func (r resolverHandler) GetPortfolioPositions(portfolioID uuid.UUID) (*api_types.PortfolioPositionsResponse, error) {
	tx, err := r.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	positions, err := r.PositionsService.ListPortfolio(tx, portfolioID)
	if err != nil {
		return nil, fmt.Errorf("failed to get positions for portfolio %s: %w", portfolioID.String(), err)
	}

	return &api_types.PortfolioPositionsResponse{
		PortfolioID: portfolioID.String(),
		Positions:   positionsToApi(positions),
	}, nil
}
