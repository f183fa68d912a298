package repository

//go:generate mockgen -source=positions_repository.go -destination=mocks/positions_repository.go -package=mock_repository

import (
	"database/sql"
	"fmt"
	"time"

	"tradebook/internal/db/models/postgres/public/model"
	. "tradebook/internal/db/models/postgres/public/table"
	"tradebook/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

// PositionsRepository stores the open-position snapshot of each
// portfolio. A snapshot is replaced by soft-deleting the old rows and
// inserting new ones.
type PositionsRepository interface {
	Add(tx *sql.Tx, portfolioID uuid.UUID, positions []domain.OpenPosition) error
	List(tx *sql.Tx, portfolioID uuid.UUID) ([]domain.OpenPosition, error)
	DeleteAll(tx *sql.Tx, portfolioID uuid.UUID) error
}

type positionsRepositoryHandler struct{}

func NewPositionsRepository() PositionsRepository {
	return positionsRepositoryHandler{}
}

func dbPositionToDomain(p model.OpenPosition) domain.OpenPosition {
	return domain.OpenPosition{
		Symbol:         p.Symbol,
		Description:    p.Description,
		Class:          domain.InstrumentClass(p.InstrumentClass),
		Side:           domain.Side(p.Side),
		Quantity:       p.Quantity,
		AvgCostBasis:   p.AvgCostBasis,
		TotalCost:      p.TotalCost,
		FirstTradeDate: p.FirstTradeDate,
		LastTradeDate:  p.LastTradeDate,
		TradeCount:     int(p.TradeCount),
	}
}

// positionsToModels keeps the order positions were ranked in as
// PositionRank, so List returns them the same way.
func positionsToModels(portfolioID uuid.UUID, positions []domain.OpenPosition, now time.Time) []model.OpenPosition {
	out := []model.OpenPosition{}
	for i, p := range positions {
		out = append(out, model.OpenPosition{
			OpenPositionID:  uuid.New(),
			PortfolioID:     portfolioID,
			Symbol:          p.Symbol,
			Description:     p.Description,
			InstrumentClass: string(p.Class),
			Side:            string(p.Side),
			Quantity:        p.Quantity,
			AvgCostBasis:    p.AvgCostBasis,
			TotalCost:       p.TotalCost,
			FirstTradeDate:  p.FirstTradeDate,
			LastTradeDate:   p.LastTradeDate,
			TradeCount:      int32(p.TradeCount),
			PositionRank:    int32(i),
			CreatedAt:       now,
		})
	}
	return out
}

func addPositionsQuery(models []model.OpenPosition) postgres.InsertStatement {
	return OpenPosition.INSERT(
		OpenPosition.AllColumns,
	).MODELS(
		models,
	)
}

func listPositionsQuery(portfolioID uuid.UUID) postgres.SelectStatement {
	return OpenPosition.SELECT(OpenPosition.AllColumns).
		WHERE(
			postgres.AND(
				OpenPosition.PortfolioID.EQ(postgres.UUID(portfolioID)),
				OpenPosition.DeletedAt.IS_NULL(),
			),
		).
		ORDER_BY(
			OpenPosition.PositionRank.ASC(),
		)
}

func deletePositionsQuery(portfolioID uuid.UUID, now time.Time) postgres.UpdateStatement {
	return OpenPosition.UPDATE(
		OpenPosition.DeletedAt,
	).SET(
		postgres.TimestampzT(now),
	).WHERE(
		postgres.AND(
			OpenPosition.PortfolioID.EQ(postgres.UUID(portfolioID)),
			OpenPosition.DeletedAt.IS_NULL(),
		),
	)
}

func (h positionsRepositoryHandler) Add(tx *sql.Tx, portfolioID uuid.UUID, positions []domain.OpenPosition) error {
	if len(positions) == 0 {
		return nil
	}

	query := addPositionsQuery(positionsToModels(portfolioID, positions, time.Now().UTC()))
	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to insert %d positions for portfolio %s: %w", len(positions), portfolioID.String(), err)
	}

	return nil
}

func (h positionsRepositoryHandler) List(tx *sql.Tx, portfolioID uuid.UUID) ([]domain.OpenPosition, error) {
	query := listPositionsQuery(portfolioID)

	var results []model.OpenPosition
	err := query.Query(tx, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions for portfolio %s: %w", portfolioID.String(), err)
	}

	out := make([]domain.OpenPosition, len(results))
	for i, p := range results {
		out[i] = dbPositionToDomain(p)
	}
	return out, nil
}

func (h positionsRepositoryHandler) DeleteAll(tx *sql.Tx, portfolioID uuid.UUID) error {
	query := deletePositionsQuery(portfolioID, time.Now().UTC())
	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to delete positions for portfolio %s: %w", portfolioID.String(), err)
	}
	return nil
}
